package bmp

// Padding returns the number of zero bytes that pad a row of width pixels to
// a multiple of four bytes.
func Padding(width int) int {
	return (4 - (width*BytesPerPixel)%4) % 4
}

// Stride returns the byte length of one stored row including padding.
func Stride(width int) int {
	return width*BytesPerPixel + Padding(width)
}

// ImageSize returns the pixel array size for the given dimensions. The sign of
// height is ignored.
func ImageSize(width, height int) int {
	if height < 0 {
		height = -height
	}
	return Stride(width) * height
}
