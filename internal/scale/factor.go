package scale

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/knetic/govaluate"
)

// ErrInvalidFactor is returned for factors that are not finite and positive.
var ErrInvalidFactor = errors.New("invalid scale factor")

// Factor is a positive scale factor split into its integer part and the
// fractional remainder in [0, 1).
type Factor struct {
	Value float64
	Int   int
	Frac  float64
}

// NewFactor splits f. Zero, negative, NaN and infinite factors are rejected.
func NewFactor(f float64) (Factor, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return Factor{}, fmt.Errorf("%w: %v (must be a finite number > 0)", ErrInvalidFactor, f)
	}
	if f > math.MaxInt32 {
		return Factor{}, fmt.Errorf("%w: %v is too large", ErrInvalidFactor, f)
	}
	i, r := math.Modf(f)
	return Factor{Value: f, Int: int(i), Frac: r}, nil
}

// ParseFactor evaluates an arithmetic expression such as "2", "0.5" or "3/2".
func ParseFactor(expr string) (Factor, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Factor{}, fmt.Errorf("%w: empty expression", ErrInvalidFactor)
	}
	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return Factor{}, fmt.Errorf("%w: %q: %v", ErrInvalidFactor, expr, err)
	}
	if len(e.Vars()) > 0 {
		return Factor{}, fmt.Errorf("%w: %q references variables %v", ErrInvalidFactor, expr, e.Vars())
	}
	v, err := e.Evaluate(nil)
	if err != nil {
		return Factor{}, fmt.Errorf("%w: %q: %v", ErrInvalidFactor, expr, err)
	}
	f, ok := v.(float64)
	if !ok {
		return Factor{}, fmt.Errorf("%w: %q does not evaluate to a number", ErrInvalidFactor, expr)
	}
	return NewFactor(f)
}

func (f Factor) String() string {
	return fmt.Sprintf("%g", f.Value)
}
