package pipeline

import (
	"errors"
	"fmt"

	"github.com/davesmith10/bmpresize/internal/bmp"
	"github.com/davesmith10/bmpresize/internal/resample"
	"github.com/davesmith10/bmpresize/internal/scale"
)

// ErrArgument marks usage errors: bad factors, factors that empty the image
// or overflow the header, and conflicting paths.
var ErrArgument = errors.New("invalid argument")

// Process exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitOpenInput   = 2
	ExitCreateOut   = 3
	ExitUnsupported = 4
	ExitTruncated   = 5
	ExitMismatch    = 6
)

// IOError is a failure to open, create or write one of the two files.
type IOError struct {
	Op   string // "open", "create" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	switch e.Op {
	case "open":
		return fmt.Sprintf("could not open %s: %v", e.Path, e.Err)
	case "create":
		return fmt.Sprintf("could not create %s: %v", e.Path, e.Err)
	default:
		if e.Path == "" {
			return fmt.Sprintf("%s: %v", e.Op, e.Err)
		}
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
}

func (e *IOError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by this package to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ioErr *IOError
	var writeErr *resample.WriteError
	switch {
	case errors.Is(err, ErrArgument),
		errors.Is(err, scale.ErrInvalidFactor),
		errors.Is(err, resample.ErrEmptyOutput),
		errors.Is(err, resample.ErrOutputTooLarge):
		return ExitUsage
	case errors.Is(err, bmp.ErrUnsupportedFormat):
		return ExitUnsupported
	case errors.Is(err, bmp.ErrTruncatedInput):
		return ExitTruncated
	case errors.Is(err, resample.ErrGeometryMismatch):
		return ExitMismatch
	case errors.As(err, &ioErr):
		if ioErr.Op == "open" {
			return ExitOpenInput
		}
		return ExitCreateOut
	case errors.As(err, &writeErr):
		return ExitCreateOut
	default:
		return ExitUsage
	}
}

func argumentError(err error) error {
	return fmt.Errorf("%w: %w", ErrArgument, err)
}
