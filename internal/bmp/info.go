package bmp

import (
	"bytes"
	"fmt"

	xbmp "golang.org/x/image/bmp"
)

// ImageInfo contains metadata about a BMP file.
type ImageInfo struct {
	Headers
	Width       int
	Height      int // absolute row count
	TopDown     bool
	Padding     int
	Stride      int
	PixelBytes  int   // bytes present after the headers
	Unsupported error // nil when the file passes Validate
}

// GetInfo reads BMP metadata without decoding the pixel array.
func GetInfo(data []byte) (*ImageInfo, error) {
	h, err := ReadHeaders(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	height := int(h.Info.Height)
	if height < 0 {
		height = -height
	}
	width := int(h.Info.Width)
	info := &ImageInfo{
		Headers:     *h,
		Width:       width,
		Height:      height,
		TopDown:     h.TopDown(),
		Padding:     Padding(width),
		Stride:      Stride(width),
		PixelBytes:  len(data) - HeadersSize,
		Unsupported: h.Validate(),
	}
	return info, nil
}

// Truncated reports whether fewer pixel bytes are present than the
// dimensions require.
func (i *ImageInfo) Truncated() bool {
	return i.PixelBytes < i.Stride*i.Height
}

// CheckDecodable decodes data with golang.org/x/image/bmp as an independent
// well-formedness check and returns the decoded bounds.
func CheckDecodable(data []byte) (width, height int, err error) {
	img, err := xbmp.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("x/image/bmp: %w", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
