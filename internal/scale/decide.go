package scale

import (
	"fmt"
	"math"
)

// Mode selects how extra copies are distributed along an axis.
type Mode int

const (
	// ModeExact spreads extras with an integer error accumulator.
	ModeExact Mode = iota
	// ModeLegacy uses per-index floating point tie-breaking.
	ModeLegacy
)

// legacyTolerance is how close idx*frac must be to an integer to count as one.
const legacyTolerance = 1e-4

// ParseMode converts a mode name to a Mode; the empty string means exact.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "exact":
		return ModeExact, nil
	case "legacy":
		return ModeLegacy, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (expected exact or legacy)", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Stepper yields, for consecutive indices along an axis starting at 0, how
// many times the element at that index is emitted. Zero means the element is
// skipped.
type Stepper interface {
	Next() int
	Reset()
}

// accumulator is a Bresenham-style DDA: num extras are spread over den
// elements, the first element always receiving one when num > 0.
type accumulator struct {
	base     int
	num, den int
	err      int
}

func (s *accumulator) Reset() {
	s.err = s.den - 1
}

func (s *accumulator) Next() int {
	n := s.base
	s.err += s.num
	if s.err >= s.den {
		s.err -= s.den
		n++
	}
	return n
}

type legacyStepper struct {
	base int
	frac float64
	idx  int
}

func (s *legacyStepper) Reset() {
	s.idx = 0
}

func (s *legacyStepper) Next() int {
	n := s.base
	if Tick(s.idx, s.frac) {
		n++
	}
	s.idx++
	return n
}

// Tick reports whether idx receives an extra copy under the floating point
// rule. For frac <= 0.5 an index ticks when idx*frac lands on an integer; above
// one half the comparison is inverted so that skipping the extra becomes the
// sparse event.
func Tick(idx int, frac float64) bool {
	if frac == 0 {
		return false
	}
	x := float64(idx) * frac
	d := math.Abs(math.Round(x) - x)
	if frac <= 0.5 {
		return d <= legacyTolerance
	}
	return d >= legacyTolerance
}
