package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// Magic is the "BM" signature read as a little-endian uint16.
	Magic = 0x4D42

	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeadersSize    = FileHeaderSize + InfoHeaderSize

	BitsPerPixel  = 24
	BytesPerPixel = BitsPerPixel / 8

	// CompressionRGB is BI_RGB, the only compression value accepted.
	CompressionRGB = 0

	defaultPixelsPerMeter = 2835 // ~72 DPI
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrTruncatedInput    = errors.New("truncated input")
)

// FileHeader is BITMAPFILEHEADER. Field order and widths match the on-disk
// layout so encoding/binary can read and write it directly.
type FileHeader struct {
	Type      uint16 // must be Magic
	Size      uint32 // total file size in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // offset of the pixel array
}

// InfoHeader is BITMAPINFOHEADER.
type InfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32 // positive is bottom-up, negative is top-down
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// Headers is the file header and info header pair that precedes the pixels.
type Headers struct {
	File FileHeader
	Info InfoHeader
}

func (h *FileHeader) Read(r io.Reader) error {
	return readFixed(r, h, "file header")
}

func (h *FileHeader) Write(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, h)
}

func (h *InfoHeader) Read(r io.Reader) error {
	return readFixed(r, h, "info header")
}

func (h *InfoHeader) Write(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, h)
}

// ReadHeaders reads both headers from the start of a BMP stream. It does not
// validate them; see Validate.
func ReadHeaders(r io.Reader) (*Headers, error) {
	var h Headers
	if err := h.File.Read(r); err != nil {
		return nil, err
	}
	if err := h.Info.Read(r); err != nil {
		return nil, err
	}
	return &h, nil
}

// Write writes the file header followed by the info header.
func (h *Headers) Write(w io.Writer) error {
	if err := h.File.Write(w); err != nil {
		return fmt.Errorf("writing file header: %w", err)
	}
	if err := h.Info.Write(w); err != nil {
		return fmt.Errorf("writing info header: %w", err)
	}
	return nil
}

// Validate reports whether the headers describe an uncompressed 24-bit BMP
// with a 40-byte info header and the pixel array directly after it.
func (h *Headers) Validate() error {
	switch {
	case h.File.Type != Magic:
		return fmt.Errorf("%w: bad signature 0x%04x", ErrUnsupportedFormat, h.File.Type)
	case h.File.OffBits != HeadersSize:
		return fmt.Errorf("%w: pixel data offset %d (expected %d)", ErrUnsupportedFormat, h.File.OffBits, HeadersSize)
	case h.Info.Size != InfoHeaderSize:
		return fmt.Errorf("%w: info header size %d (expected %d)", ErrUnsupportedFormat, h.Info.Size, InfoHeaderSize)
	case h.Info.BitCount != BitsPerPixel:
		return fmt.Errorf("%w: %d bits per pixel (expected %d)", ErrUnsupportedFormat, h.Info.BitCount, BitsPerPixel)
	case h.Info.Compression != CompressionRGB:
		return fmt.Errorf("%w: compression %d (expected %d)", ErrUnsupportedFormat, h.Info.Compression, CompressionRGB)
	case h.Info.Width <= 0 || h.Info.Height == 0:
		return fmt.Errorf("%w: dimensions %dx%d", ErrUnsupportedFormat, h.Info.Width, h.Info.Height)
	}
	return nil
}

// NewHeaders returns consistent headers for a 24-bit image. A negative height
// marks a top-down image.
func NewHeaders(width, height int) Headers {
	h := Headers{
		File: FileHeader{Type: Magic, OffBits: HeadersSize},
		Info: InfoHeader{
			Size:        InfoHeaderSize,
			Width:       int32(width),
			Height:      int32(height),
			Planes:      1,
			BitCount:    BitsPerPixel,
			Compression: CompressionRGB,
			XPixelsPerM: defaultPixelsPerMeter,
			YPixelsPerM: defaultPixelsPerMeter,
		},
	}
	h.SetSizes()
	return h
}

// SetSizes recomputes SizeImage and the file size from width and height.
func (h *Headers) SetSizes() {
	h.Info.SizeImage = uint32(ImageSize(int(h.Info.Width), int(h.Info.Height)))
	h.File.Size = h.Info.SizeImage + HeadersSize
}

// TopDown reports whether rows are stored top row first.
func (h *Headers) TopDown() bool {
	return h.Info.Height < 0
}

func readFixed(r io.Reader, data any, what string) error {
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return truncated(err, "reading "+what)
	}
	return nil
}
