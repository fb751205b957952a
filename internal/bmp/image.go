package bmp

import (
	"fmt"
	"io"
)

// Image is a decoded 24-bit bitmap. Pix holds Width*Height triples in display
// order: the top row first regardless of how the file stores rows.
type Image struct {
	Width   int
	Height  int
	TopDown bool // stored top row first (negative header height)
	Pix     []Triple
}

// NewImage allocates a black image.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]Triple, width*height)}
}

// At returns the pixel at column x of display row y.
func (m *Image) At(x, y int) Triple {
	return m.Pix[y*m.Width+x]
}

func (m *Image) Set(x, y int, t Triple) {
	m.Pix[y*m.Width+x] = t
}

// Headers returns consistent headers describing m.
func (m *Image) Headers() Headers {
	height := m.Height
	if m.TopDown {
		height = -height
	}
	return NewHeaders(m.Width, height)
}

// fileRow maps the i-th stored row to its display row.
func (m *Image) fileRow(i int) int {
	if m.TopDown {
		return i
	}
	return m.Height - 1 - i
}

// Encode writes m as an uncompressed 24-bit BMP.
func Encode(w io.Writer, m *Image) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", m.Width, m.Height)
	}
	if len(m.Pix) != m.Width*m.Height {
		return fmt.Errorf("expected %d pixels for %dx%d, got %d", m.Width*m.Height, m.Width, m.Height, len(m.Pix))
	}
	h := m.Headers()
	if err := h.Write(w); err != nil {
		return err
	}
	pw := NewPixelWriter(w, m.Width)
	for i := 0; i < m.Height; i++ {
		y := m.fileRow(i)
		if err := pw.WriteRow(m.Pix[y*m.Width : (y+1)*m.Width]); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return pw.Flush()
}

// Decode reads a BMP accepted by Validate.
func Decode(r io.Reader) (*Image, error) {
	h, err := ReadHeaders(r)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	height := int(h.Info.Height)
	if height < 0 {
		height = -height
	}
	m := NewImage(int(h.Info.Width), height)
	m.TopDown = h.TopDown()

	pr := NewPixelReader(r)
	pad := Padding(m.Width)
	for i := 0; i < m.Height; i++ {
		y := m.fileRow(i)
		for x := 0; x < m.Width; x++ {
			t, err := pr.ReadTriple()
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			m.Set(x, y, t)
		}
		if err := pr.Skip(pad); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return m, nil
}
