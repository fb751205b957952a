package scale

import (
	"fmt"
	"math"
	"testing"
)

var (
	testDims    = []int{1, 2, 3, 7, 100, 101}
	testFactors = []float64{0.3, 0.5, 0.7, 1.5, 2.0, 3.33}
)

func mustFactor(t *testing.T, f float64) Factor {
	t.Helper()
	fac, err := NewFactor(f)
	if err != nil {
		t.Fatalf("NewFactor(%v): %v", f, err)
	}
	return fac
}

// counts runs a stepper over n indices.
func counts(s Stepper, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestExactEmitsOutLen(t *testing.T) {
	for _, n := range testDims {
		for _, f := range testFactors {
			t.Run(fmt.Sprintf("n=%d/f=%v", n, f), func(t *testing.T) {
				fac := mustFactor(t, f)
				a := NewAxis(n, fac)

				want := int(math.Round(float64(n) * (float64(fac.Int) + a.Frac())))
				if a.OutLen() != want {
					t.Fatalf("OutLen = %d, expected round(n*(i+frac)) = %d", a.OutLen(), want)
				}
				if d := a.OutLen() - int(math.Round(float64(n)*f)); d < -1 || d > 1 {
					t.Errorf("OutLen = %d drifts from round(n*f) by %d", a.OutLen(), d)
				}

				got := counts(a.Stepper(ModeExact), n)
				if sum(got) != a.OutLen() {
					t.Errorf("emitted %d elements, expected %d (counts %v)", sum(got), a.OutLen(), got)
				}
				for i, c := range got {
					if c != fac.Int && c != fac.Int+1 {
						t.Errorf("index %d emitted %d times, expected %d or %d", i, c, fac.Int, fac.Int+1)
					}
				}
			})
		}
	}
}

func TestExactSpreadsEvenly(t *testing.T) {
	// 3 extras over 7 elements: no two adjacent gaps differ by more than one.
	a := Axis{In: 7, Int: 0, Ticks: 3}
	got := counts(a.Stepper(ModeExact), 7)
	var kept []int
	for i, c := range got {
		if c > 0 {
			kept = append(kept, i)
		}
	}
	if len(kept) != 3 || kept[0] != 0 {
		t.Fatalf("kept %v, expected three indices starting at 0", kept)
	}
	for i := 1; i < len(kept); i++ {
		if gap := kept[i] - kept[i-1]; gap < 2 || gap > 3 {
			t.Errorf("uneven spacing in %v", kept)
		}
	}
}

func TestStepperReset(t *testing.T) {
	a := NewAxis(5, mustFactor(t, 1.4))
	for _, mode := range []Mode{ModeExact, ModeLegacy} {
		s := a.Stepper(mode)
		first := counts(s, 5)
		s.Reset()
		second := counts(s, 5)
		if fmt.Sprint(first) != fmt.Sprint(second) {
			t.Errorf("%v: counts after Reset %v differ from %v", mode, second, first)
		}
	}
}

func TestLegacyMatchesExactForIntegerFactors(t *testing.T) {
	for _, n := range testDims {
		for _, k := range []float64{1, 2, 3} {
			a := NewAxis(n, mustFactor(t, k))
			exact := counts(a.Stepper(ModeExact), n)
			legacy := counts(a.Stepper(ModeLegacy), n)
			if fmt.Sprint(exact) != fmt.Sprint(legacy) {
				t.Errorf("n=%d k=%v: legacy %v, exact %v", n, k, legacy, exact)
			}
		}
	}
}

func TestTick(t *testing.T) {
	tests := []struct {
		idx  int
		frac float64
		want bool
	}{
		{0, 0, false},
		{3, 0, false},
		{0, 0.5, true},
		{1, 0.5, false},
		{2, 0.5, true},
		{0, 0.25, true},
		{1, 0.25, false},
		{4, 0.25, true},
		// above one half the rule inverts
		{0, 0.75, false},
		{1, 0.75, true},
		{4, 0.75, false},
		// near-integer within tolerance
		{3, 1.0 / 3.0, true},
	}
	for _, tt := range tests {
		if got := Tick(tt.idx, tt.frac); got != tt.want {
			t.Errorf("Tick(%d, %v) = %v, expected %v", tt.idx, tt.frac, got, tt.want)
		}
	}
}

func TestNewAxisIgnoresSign(t *testing.T) {
	f := mustFactor(t, 0.5)
	if NewAxis(-4, f) != NewAxis(4, f) {
		t.Error("negative length planned differently from positive")
	}
}
