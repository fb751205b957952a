package resample

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/davesmith10/bmpresize/internal/bmp"
	"github.com/davesmith10/bmpresize/internal/ir"
	"github.com/davesmith10/bmpresize/internal/scale"
)

var ErrGeometryMismatch = errors.New("emitted pixels do not match output header")

// WriteError wraps a failure of the output stream.
type WriteError struct {
	Row int
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing output row %d: %v", e.Row, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Stats summarises one resample run.
type Stats struct {
	RowsKept    int // input rows read
	RowsSkipped int // input rows passed over
	RowsWritten int // output rows, including replications
}

// RowBuffer holds one assembled output row so it can be written again for
// vertical replication. It grows only as pixels are appended, up to limit, and
// its storage is reused for every following row.
type RowBuffer struct {
	pix   []bmp.Triple
	limit int
}

// NewRowBuffer returns an empty buffer that accepts at most width pixels.
func NewRowBuffer(width int) *RowBuffer {
	return &RowBuffer{limit: width}
}

func (b *RowBuffer) Reset() { b.pix = b.pix[:0] }

// Append adds t and reports false if the buffer is already full.
func (b *RowBuffer) Append(t bmp.Triple) bool {
	if len(b.pix) >= b.limit {
		return false
	}
	b.pix = append(b.pix, t)
	return true
}

func (b *RowBuffer) Len() int { return len(b.pix) }

func (b *RowBuffer) Pixels() []bmp.Triple { return b.pix }

// Resampler drives the per-axis decision steppers over the input scanlines.
type Resampler struct {
	plan   scale.Plan
	in     ir.Geometry
	out    ir.Geometry
	row    *RowBuffer
	logger logrus.FieldLogger
}

// New returns a resampler from the in geometry to the out geometry produced
// by TransformHeader for the same plan.
func New(plan scale.Plan, in, out ir.Geometry, logger logrus.FieldLogger) *Resampler {
	if logger == nil {
		logger = DiscardLogger()
	}
	return &Resampler{
		plan:   plan,
		in:     in,
		out:    out,
		row:    NewRowBuffer(out.Width),
		logger: logger,
	}
}

// Run reads the input pixel array from src and writes the output pixel array
// to dst. Rows are handled in stored order. The writer is flushed on success.
func (r *Resampler) Run(src *bmp.PixelReader, dst *bmp.PixelWriter) (Stats, error) {
	var stats Stats
	vert := r.plan.Y.Stepper(r.plan.Mode)
	horiz := r.plan.X.Stepper(r.plan.Mode)
	inPad := r.in.Padding()
	outRows := r.out.Rows()

	for y := 0; y < r.in.Rows(); y++ {
		copies := vert.Next()
		if copies == 0 {
			if err := src.Skip(r.in.Stride()); err != nil {
				return stats, fmt.Errorf("skipping input row %d: %w", y, err)
			}
			stats.RowsSkipped++
			continue
		}

		if err := r.readRow(src, horiz, y); err != nil {
			return stats, err
		}
		if err := src.Skip(inPad); err != nil {
			return stats, fmt.Errorf("input row %d padding: %w", y, err)
		}
		stats.RowsKept++

		if r.row.Len() != r.out.Width {
			return stats, fmt.Errorf("%w: input row %d produced %d pixels, header width is %d",
				ErrGeometryMismatch, y, r.row.Len(), r.out.Width)
		}
		if stats.RowsWritten+copies > outRows {
			return stats, fmt.Errorf("%w: input row %d exceeds header height %d",
				ErrGeometryMismatch, y, outRows)
		}
		for c := 0; c < copies; c++ {
			if err := dst.WriteRow(r.row.Pixels()); err != nil {
				return stats, &WriteError{Row: stats.RowsWritten, Err: err}
			}
			stats.RowsWritten++
		}
	}

	if stats.RowsWritten != outRows {
		return stats, fmt.Errorf("%w: wrote %d rows, header height is %d",
			ErrGeometryMismatch, stats.RowsWritten, outRows)
	}
	if err := dst.Flush(); err != nil {
		return stats, &WriteError{Row: stats.RowsWritten, Err: err}
	}

	r.logger.WithFields(logrus.Fields{
		"rows_kept":    stats.RowsKept,
		"rows_skipped": stats.RowsSkipped,
		"rows_written": stats.RowsWritten,
	}).Debug("Resampled pixel array")
	return stats, nil
}

// readRow reads one input row into the row buffer, replicating or dropping
// each pixel as the horizontal stepper decides.
func (r *Resampler) readRow(src *bmp.PixelReader, horiz scale.Stepper, y int) error {
	r.row.Reset()
	horiz.Reset()
	for x := 0; x < r.in.Width; x++ {
		t, err := src.ReadTriple()
		if err != nil {
			return fmt.Errorf("input row %d column %d: %w", y, x, err)
		}
		for n := horiz.Next(); n > 0; n-- {
			if !r.row.Append(t) {
				return fmt.Errorf("%w: input row %d overflows header width %d",
					ErrGeometryMismatch, y, r.out.Width)
			}
		}
	}
	return nil
}

// DiscardLogger returns a logger that drops every entry.
func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
