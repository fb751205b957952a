package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Triple is one 24-bit pixel in file channel order.
type Triple struct {
	B, G, R uint8
}

// PixelReader reads pixel triples and skips bytes on a forward-only stream.
// Any short read is reported as ErrTruncatedInput.
type PixelReader struct {
	r   *bufio.Reader
	buf [BytesPerPixel]byte
}

func NewPixelReader(r io.Reader) *PixelReader {
	return &PixelReader{r: bufio.NewReader(r)}
}

// ReadTriple reads the next pixel.
func (p *PixelReader) ReadTriple() (Triple, error) {
	if _, err := io.ReadFull(p.r, p.buf[:]); err != nil {
		return Triple{}, truncated(err, "reading pixel")
	}
	return Triple{B: p.buf[0], G: p.buf[1], R: p.buf[2]}, nil
}

// Skip advances the stream by n bytes without decoding them.
func (p *PixelReader) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	if _, err := p.r.Discard(n); err != nil {
		return truncated(err, fmt.Sprintf("skipping %d bytes", n))
	}
	return nil
}

// PixelWriter writes pixel rows followed by zero padding.
type PixelWriter struct {
	w   *bufio.Writer
	pad []byte
}

// NewPixelWriter returns a writer whose rows are padded for width pixels.
func NewPixelWriter(w io.Writer, width int) *PixelWriter {
	return &PixelWriter{w: bufio.NewWriter(w), pad: make([]byte, Padding(width))}
}

// WriteTriple writes one pixel in file channel order.
func (p *PixelWriter) WriteTriple(t Triple) error {
	if err := p.w.WriteByte(t.B); err != nil {
		return err
	}
	if err := p.w.WriteByte(t.G); err != nil {
		return err
	}
	return p.w.WriteByte(t.R)
}

// WriteRow writes row and the trailing padding.
func (p *PixelWriter) WriteRow(row []Triple) error {
	for _, t := range row {
		if err := p.WriteTriple(t); err != nil {
			return err
		}
	}
	_, err := p.w.Write(p.pad)
	return err
}

func (p *PixelWriter) Flush() error {
	return p.w.Flush()
}

func truncated(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrTruncatedInput, what)
	}
	return fmt.Errorf("%s: %w", what, err)
}
