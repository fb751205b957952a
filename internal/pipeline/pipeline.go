package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/davesmith10/bmpresize/internal/bmp"
	"github.com/davesmith10/bmpresize/internal/ir"
	"github.com/davesmith10/bmpresize/internal/resample"
	"github.com/davesmith10/bmpresize/internal/scale"
)

// Options controls one resize.
type Options struct {
	XFactor scale.Factor // horizontal factor
	YFactor scale.Factor // vertical factor; zero value means XFactor
	Mode    scale.Mode
	Logger  logrus.FieldLogger // optional
}

func (o Options) yFactor() scale.Factor {
	if o.YFactor.Value == 0 {
		return o.XFactor
	}
	return o.YFactor
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return resample.DiscardLogger()
}

// Result holds the output of a pipeline run.
type Result struct {
	In    ir.Geometry
	Out   ir.Geometry
	Stats resample.Stats
	Size  uint32 // output file size from the header
}

// Run resizes the BMP read from r and writes the result to w:
// read headers → validate → plan → transform header → resample pixels.
func Run(r io.Reader, w io.Writer, opts Options) (*Result, error) {
	logger := opts.logger()

	// 1. Headers
	in, err := bmp.ReadHeaders(r)
	if err != nil {
		return nil, fmt.Errorf("headers: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// 2. Plan both axes and derive the output header
	if opts.XFactor.Value == 0 {
		return nil, argumentError(errors.New("no scale factor given"))
	}
	plan := scale.NewPlan(int(in.Info.Width), int(in.Info.Height), opts.XFactor, opts.yFactor(), opts.Mode)
	out, err := resample.TransformHeader(in, plan)
	if err != nil {
		return nil, argumentError(err)
	}
	inGeom, outGeom := ir.FromHeaders(in), ir.FromHeaders(out)

	logger.WithFields(logrus.Fields{
		"mode":       opts.Mode.String(),
		"x_factor":   opts.XFactor.String(),
		"y_factor":   opts.yFactor().String(),
		"in_width":   inGeom.Width,
		"in_height":  inGeom.Height,
		"out_width":  outGeom.Width,
		"out_height": outGeom.Height,
	}).Debug("Planned resize")

	// 3. Output header, then pixels
	if err := out.Write(w); err != nil {
		return nil, &IOError{Op: "write", Err: err}
	}
	rs := resample.New(plan, inGeom, outGeom, logger)
	stats, err := rs.Run(bmp.NewPixelReader(r), bmp.NewPixelWriter(w, outGeom.Width))
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	return &Result{
		In:    inGeom,
		Out:   outGeom,
		Stats: stats,
		Size:  out.File.Size,
	}, nil
}

// RunFile resizes inPath into outPath. Both files are closed on every path and
// a partially written output is removed on failure.
func RunFile(inPath, outPath string, opts Options) (res *Result, err error) {
	inFile, err := os.Open(inPath)
	if err != nil {
		return nil, &IOError{Op: "open", Path: inPath, Err: err}
	}
	defer inFile.Close()

	if same, _ := sameFile(inFile, outPath); same {
		return nil, argumentError(fmt.Errorf("output %s is the input file", outPath))
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return nil, &IOError{Op: "create", Path: outPath, Err: err}
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "write", Path: outPath, Err: cerr}
		}
		if err != nil {
			os.Remove(outPath)
			res = nil
		}
	}()

	res, err = Run(inFile, outFile, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inPath, err)
	}

	opts.logger().WithFields(logrus.Fields{
		"input":      inPath,
		"output":     outPath,
		"out_width":  res.Out.Width,
		"out_height": res.Out.Height,
		"bytes":      res.Size,
	}).Info("Resized image")
	return res, nil
}

func sameFile(in *os.File, outPath string) (bool, error) {
	inInfo, err := in.Stat()
	if err != nil {
		return false, err
	}
	outInfo, err := os.Stat(outPath)
	if err != nil {
		return false, err
	}
	return os.SameFile(inInfo, outInfo), nil
}
