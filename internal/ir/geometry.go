package ir

import "github.com/davesmith10/bmpresize/internal/bmp"

// Geometry is the shape of a 24-bit pixel array as the header transformer
// computes it and the resampler consumes it. Height carries the row order:
// positive is bottom-up, negative is top-down.
type Geometry struct {
	Width  int
	Height int
}

// Rows returns the number of stored rows.
func (g Geometry) Rows() int {
	if g.Height < 0 {
		return -g.Height
	}
	return g.Height
}

// TopDown reports whether the first stored row is the top of the image.
func (g Geometry) TopDown() bool {
	return g.Height < 0
}

// Padding is derived from Width and never stored.
func (g Geometry) Padding() int {
	return bmp.Padding(g.Width)
}

// Stride returns the stored byte length of one row.
func (g Geometry) Stride() int {
	return bmp.Stride(g.Width)
}

// ImageSize returns the pixel array size in bytes.
func (g Geometry) ImageSize() int {
	return bmp.ImageSize(g.Width, g.Height)
}

// FromHeaders returns the geometry described by an info header.
func FromHeaders(h *bmp.Headers) Geometry {
	return Geometry{Width: int(h.Info.Width), Height: int(h.Info.Height)}
}
