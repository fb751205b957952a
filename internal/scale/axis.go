package scale

import "math"

// Axis is the resampling plan for one image axis. The fractional part of the
// factor is corrected to Ticks/In, where Ticks = round(In*Frac) is the number
// of elements that receive one extra copy. Spreading exactly Ticks extras over
// In elements makes the emitted total equal OutLen with no drift.
type Axis struct {
	In    int
	Int   int
	Ticks int
}

// NewAxis plans an axis of n input elements. The sign of n is ignored.
func NewAxis(n int, f Factor) Axis {
	if n < 0 {
		n = -n
	}
	return Axis{
		In:    n,
		Int:   f.Int,
		Ticks: int(math.Round(float64(n) * f.Frac)),
	}
}

// Frac returns the corrected fractional factor.
func (a Axis) Frac() float64 {
	if a.In == 0 {
		return 0
	}
	return float64(a.Ticks) / float64(a.In)
}

// OutLen is round(In * (Int + Frac())) computed without floating point.
func (a Axis) OutLen() int {
	return a.In*a.Int + a.Ticks
}

// Stepper returns a fresh decision stepper for the axis.
func (a Axis) Stepper(mode Mode) Stepper {
	var s Stepper
	if mode == ModeLegacy {
		s = &legacyStepper{base: a.Int, frac: a.Frac()}
	} else {
		s = &accumulator{base: a.Int, num: a.Ticks, den: a.In}
	}
	s.Reset()
	return s
}

// Plan holds both axes of a resize.
type Plan struct {
	X, Y Axis
	Mode Mode
}

// NewPlan plans a width x height image scaled by fx horizontally and fy
// vertically.
func NewPlan(width, height int, fx, fy Factor, mode Mode) Plan {
	return Plan{X: NewAxis(width, fx), Y: NewAxis(height, fy), Mode: mode}
}
