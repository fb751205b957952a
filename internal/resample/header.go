package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/davesmith10/bmpresize/internal/bmp"
	"github.com/davesmith10/bmpresize/internal/scale"
)

var (
	ErrEmptyOutput    = errors.New("scale factor leaves no pixels")
	ErrOutputTooLarge = errors.New("output does not fit a BMP header")
)

// TransformHeader returns the output headers for in resized by plan. Fields
// other than the dimensions and sizes are copied unchanged; the sign of the
// height is preserved.
func TransformHeader(in *bmp.Headers, plan scale.Plan) (*bmp.Headers, error) {
	width, rows := plan.X.OutLen(), plan.Y.OutLen()
	if width == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: %dx%d -> %dx%d", ErrEmptyOutput, plan.X.In, plan.Y.In, width, rows)
	}
	stride := int64(width) * bmp.BytesPerPixel
	stride += (4 - stride%4) % 4
	if width > math.MaxInt32 || rows > math.MaxInt32 ||
		stride*int64(rows)+bmp.HeadersSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d", ErrOutputTooLarge, width, rows)
	}

	out := *in
	out.Info.Width = int32(width)
	if in.TopDown() {
		out.Info.Height = -int32(rows)
	} else {
		out.Info.Height = int32(rows)
	}
	out.SetSizes()
	return &out, nil
}
