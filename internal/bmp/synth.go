package bmp

import "fmt"

var (
	Red   = Triple{R: 255}
	Green = Triple{G: 255}
	Blue  = Triple{B: 255}
	White = Triple{B: 255, G: 255, R: 255}
	Black = Triple{}
)

// Patterns lists the names accepted by Synthesize.
var Patterns = []string{"solid", "gradient", "checker", "corners"}

// Synthesize builds a test image. color is used by the solid pattern and as
// the light square of the checker pattern.
func Synthesize(pattern string, width, height int, color Triple) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	m := NewImage(width, height)
	switch pattern {
	case "solid":
		for i := range m.Pix {
			m.Pix[i] = color
		}
	case "gradient":
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				m.Set(x, y, Triple{
					B: ramp(x+y, width+height-1),
					G: ramp(y, height),
					R: ramp(x, width),
				})
			}
		}
	case "checker":
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if (x+y)%2 == 0 {
					m.Set(x, y, color)
				} else {
					m.Set(x, y, Black)
				}
			}
		}
	case "corners":
		// Quadrants: red top-left, green top-right, blue bottom-left, white bottom-right.
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				left, top := x < (width+1)/2, y < (height+1)/2
				switch {
				case top && left:
					m.Set(x, y, Red)
				case top:
					m.Set(x, y, Green)
				case left:
					m.Set(x, y, Blue)
				default:
					m.Set(x, y, White)
				}
			}
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}
	return m, nil
}

func ramp(v, n int) uint8 {
	if n <= 1 {
		return 0
	}
	return uint8(v * 255 / (n - 1))
}
