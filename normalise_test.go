package knob

import (
	"math"
	"testing"
)

const normTolerance = 1e-4

func approxEqual(a, b, tol float32) bool {
	if isNaN32(a) || isNaN32(b) {
		return false
	}
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return a == b
	}
	return absf(a-b) <= tol
}

func TestNormalisedFromValue_Linear(t *testing.T) {
	spec := DefaultMapSpec()

	tests := []struct {
		name     string
		value    float32
		min, max float32
		want     float32
	}{
		{"min maps to zero", 0, 0, 100, 0},
		{"max maps to one", 100, 0, 100, 1},
		{"midpoint", 50, 0, 100, 0.5},
		{"quarter", 25, 0, 100, 0.25},
		{"below range clamps", -10, 0, 100, 0},
		{"above range clamps", 200, 0, 100, 1},
		{"negative range", -5, -10, 0, 0.5},
		{"offset range", 75, 50, 100, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalisedFromValue(tt.value, tt.min, tt.max, spec)
			if !approxEqual(got, tt.want, normTolerance) {
				t.Errorf("NormalisedFromValue(%v, %v, %v) = %v, want %v",
					tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestValueFromNormalised_Linear(t *testing.T) {
	spec := DefaultMapSpec()

	tests := []struct {
		name       string
		normalised float32
		min, max   float32
		want       float32
	}{
		{"zero maps to min", 0, 0, 100, 0},
		{"one maps to max", 1, 0, 100, 100},
		{"midpoint", 0.5, 0, 100, 50},
		{"below zero clamps to min", -0.5, 0, 100, 0},
		{"above one clamps to max", 1.5, 0, 100, 100},
		{"offset range", 0.5, 50, 100, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueFromNormalised(tt.normalised, tt.min, tt.max, spec)
			if !approxEqual(got, tt.want, normTolerance) {
				t.Errorf("ValueFromNormalised(%v, %v, %v) = %v, want %v",
					tt.normalised, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestValueFromNormalised_ExactBoundaries(t *testing.T) {
	// 0 and 1 must return the bounds exactly, with no interpolation error.
	spec := MapSpec{Logarithmic: true, SmallestFinite: 1e-6, LargestFinite: 1e6}

	if got := ValueFromNormalised(0, 10, 1000, spec); got != 10 {
		t.Errorf("ValueFromNormalised(0) = %v, want exactly 10", got)
	}
	if got := ValueFromNormalised(1, 10, 1000, spec); got != 1000 {
		t.Errorf("ValueFromNormalised(1) = %v, want exactly 1000", got)
	}
}

func TestDegenerateRange(t *testing.T) {
	spec := DefaultMapSpec()

	// Every position collapses to the single value.
	for _, n := range []float32{0, 0.25, 0.5, 1} {
		if got := ValueFromNormalised(n, 5, 5, spec); got != 5 {
			t.Errorf("ValueFromNormalised(%v, 5, 5) = %v, want 5", n, got)
		}
	}

	// Every value shows the center of travel.
	for _, v := range []float32{0, 5, 100} {
		if got := NormalisedFromValue(v, 5, 5, spec); got != 0.5 {
			t.Errorf("NormalisedFromValue(%v, 5, 5) = %v, want 0.5", v, got)
		}
	}
}

func TestInvertedRange(t *testing.T) {
	spec := DefaultMapSpec()

	// A 100..0 range runs backwards: larger values sit at lower positions.
	if got := NormalisedFromValue(75, 100, 0, spec); !approxEqual(got, 0.25, normTolerance) {
		t.Errorf("NormalisedFromValue(75, 100, 0) = %v, want 0.25", got)
	}
	if got := NormalisedFromValue(100, 100, 0, spec); got != 0 {
		t.Errorf("NormalisedFromValue(100, 100, 0) = %v, want 0", got)
	}
	if got := NormalisedFromValue(0, 100, 0, spec); got != 1 {
		t.Errorf("NormalisedFromValue(0, 100, 0) = %v, want 1", got)
	}

	if got := ValueFromNormalised(0.25, 100, 0, spec); !approxEqual(got, 75, normTolerance) {
		t.Errorf("ValueFromNormalised(0.25, 100, 0) = %v, want 75", got)
	}
	if got := ValueFromNormalised(0, 100, 0, spec); got != 100 {
		t.Errorf("ValueFromNormalised(0, 100, 0) = %v, want 100", got)
	}
}

func TestNaNPropagation(t *testing.T) {
	spec := DefaultMapSpec()
	nan := nan32()

	if got := NormalisedFromValue(5, nan, 10, spec); !isNaN32(got) {
		t.Errorf("NaN min: got %v, want NaN", got)
	}
	if got := NormalisedFromValue(5, 0, nan, spec); !isNaN32(got) {
		t.Errorf("NaN max: got %v, want NaN", got)
	}
	if got := ValueFromNormalised(0.5, nan, 10, spec); !isNaN32(got) {
		t.Errorf("NaN min: got %v, want NaN", got)
	}
	if got := NormalisedFromValue(nan, 0, 10, spec); !isNaN32(got) {
		t.Errorf("NaN value: got %v, want NaN", got)
	}
}

func TestLogarithmic_PositiveRange(t *testing.T) {
	spec := MapSpec{Logarithmic: true, SmallestFinite: 1e-6, LargestFinite: 1e6}

	// 10..1000 spans two decades; 100 is the geometric midpoint.
	if got := NormalisedFromValue(100, 10, 1000, spec); !approxEqual(got, 0.5, normTolerance) {
		t.Errorf("NormalisedFromValue(100, 10, 1000) = %v, want 0.5", got)
	}
	if got := ValueFromNormalised(0.5, 10, 1000, spec); !approxEqual(got, 100, 0.01) {
		t.Errorf("ValueFromNormalised(0.5, 10, 1000) = %v, want 100", got)
	}
}

func TestLogarithmic_NegativeRange(t *testing.T) {
	spec := MapSpec{Logarithmic: true, SmallestFinite: 1e-6, LargestFinite: 1e6}

	// -1000..-10 mirrors 10..1000: -100 is the geometric midpoint.
	if got := NormalisedFromValue(-100, -1000, -10, spec); !approxEqual(got, 0.5, normTolerance) {
		t.Errorf("NormalisedFromValue(-100, -1000, -10) = %v, want 0.5", got)
	}
	if got := ValueFromNormalised(0.5, -1000, -10, spec); !approxEqual(got, -100, 0.01) {
		t.Errorf("ValueFromNormalised(0.5, -1000, -10) = %v, want -100", got)
	}
}

func TestLogarithmic_ZeroStraddlingRange(t *testing.T) {
	spec := MapSpec{Logarithmic: true, SmallestFinite: 1e-6, LargestFinite: 1e6}

	// -10..10 splits evenly: equal magnitudes on each side.
	if got := logarithmicZeroCutoff(-10, 10); !approxEqual(got, 0.5, normTolerance) {
		t.Errorf("logarithmicZeroCutoff(-10, 10) = %v, want 0.5", got)
	}

	if got := NormalisedFromValue(-10, -10, 10, spec); got != 0 {
		t.Errorf("min endpoint: got %v, want 0", got)
	}
	if got := NormalisedFromValue(10, -10, 10, spec); got != 1 {
		t.Errorf("max endpoint: got %v, want 1", got)
	}
	if got := NormalisedFromValue(0, -10, 10, spec); !approxEqual(got, 0.5, normTolerance) {
		t.Errorf("zero: got %v, want 0.5", got)
	}

	// Position 0.5 sits at the zero cutoff.
	if got := ValueFromNormalised(0.5, -10, 10, spec); !approxEqual(got, 0, normTolerance) {
		t.Errorf("ValueFromNormalised(0.5, -10, 10) = %v, want 0", got)
	}
	if got := ValueFromNormalised(0, -10, 10, spec); got != -10 {
		t.Errorf("ValueFromNormalised(0, -10, 10) = %v, want -10", got)
	}
	if got := ValueFromNormalised(1, -10, 10, spec); got != 10 {
		t.Errorf("ValueFromNormalised(1, -10, 10) = %v, want 10", got)
	}
}

func TestLogarithmic_InfiniteBounds(t *testing.T) {
	spec := MapSpec{Logarithmic: true, SmallestFinite: 1e-6, LargestFinite: 1e6}
	posInf := float32(math.Inf(1))
	negInf := float32(math.Inf(-1))

	// 0..+inf spans log10(1e-6)=-6 up to 10 decades.
	if got := NormalisedFromValue(1, 0, posInf, spec); !approxEqual(got, 6.0/16.0, normTolerance) {
		t.Errorf("NormalisedFromValue(1, 0, +inf) = %v, want %v", got, 6.0/16.0)
	}
	if got := ValueFromNormalised(6.0/16.0, 0, posInf, spec); !approxEqual(got, 1, 0.001) {
		t.Errorf("ValueFromNormalised(6/16, 0, +inf) = %v, want 1", got)
	}

	// Endpoints still map exactly.
	if got := ValueFromNormalised(0, 0, posInf, spec); got != 0 {
		t.Errorf("ValueFromNormalised(0, 0, +inf) = %v, want 0", got)
	}
	if got := ValueFromNormalised(1, 0, posInf, spec); !isPosInf32(got) {
		t.Errorf("ValueFromNormalised(1, 0, +inf) = %v, want +inf", got)
	}

	// -inf..10 works through the straddle split with a 10-decade negative side.
	if got := NormalisedFromValue(negInf, negInf, 10, spec); got != 0 {
		t.Errorf("NormalisedFromValue(-inf, -inf, 10) = %v, want 0", got)
	}
	if got := NormalisedFromValue(10, negInf, 10, spec); got != 1 {
		t.Errorf("NormalisedFromValue(10, -inf, 10) = %v, want 1", got)
	}
}

func TestRangeLog10(t *testing.T) {
	spec := MapSpec{Logarithmic: true, SmallestFinite: 1e-6, LargestFinite: 1e6}
	posInf := float32(math.Inf(1))

	tests := []struct {
		name             string
		min, max         float32
		wantMin, wantMax float32
	}{
		{"finite range", 10, 1000, 1, 3},
		{"zero to infinity", 0, posInf, -6, 10},
		{"zero min with large max", 0, 100, -6, 2},
		{"zero min with tiny max", 0, 1e-9, -19, -9},
		{"infinite max below cutoff", 10, posInf, 1, 6},
		{"infinite max above cutoff", 1e8, posInf, 8, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := rangeLog10(tt.min, tt.max, spec)
			if !approxEqual(gotMin, tt.wantMin, normTolerance) || !approxEqual(gotMax, tt.wantMax, normTolerance) {
				t.Errorf("rangeLog10(%v, %v) = (%v, %v), want (%v, %v)",
					tt.min, tt.max, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestRoundTrip_Linear(t *testing.T) {
	spec := DefaultMapSpec()

	for _, v := range []float32{0, 12.5, 25, 50, 99, 100} {
		pos := NormalisedFromValue(v, 0, 100, spec)
		back := ValueFromNormalised(pos, 0, 100, spec)
		if !approxEqual(back, v, 0.001) {
			t.Errorf("round trip %v -> %v -> %v", v, pos, back)
		}
	}
}

func TestRoundTrip_Logarithmic(t *testing.T) {
	spec := MapSpec{Logarithmic: true, SmallestFinite: 1e-6, LargestFinite: 1e6}

	for _, v := range []float32{10, 31.6, 100, 500, 1000} {
		pos := NormalisedFromValue(v, 10, 1000, spec)
		back := ValueFromNormalised(pos, 10, 1000, spec)
		if !approxEqual(back, v, v*0.001) {
			t.Errorf("round trip %v -> %v -> %v", v, pos, back)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	specs := map[string]MapSpec{
		"linear": DefaultMapSpec(),
		"log":    {Logarithmic: true, SmallestFinite: 1e-6, LargestFinite: 1e6},
	}

	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			prev := float32(-1)
			for i := 0; i <= 100; i++ {
				v := float32(1) + float32(i)*9.99 // 1..1000
				pos := NormalisedFromValue(v, 1, 1000, spec)
				if pos < prev {
					t.Fatalf("position decreased at value %v: %v < %v", v, pos, prev)
				}
				if pos < 0 || pos > 1 {
					t.Fatalf("position %v outside [0,1] at value %v", pos, v)
				}
				prev = pos
			}
		})
	}
}

func TestRemapHelpers(t *testing.T) {
	if got := remapf(5, 0, 10, 0, 100); got != 50 {
		t.Errorf("remapf = %v, want 50", got)
	}
	// remapf does not clamp
	if got := remapf(15, 0, 10, 0, 100); got != 150 {
		t.Errorf("remapf beyond range = %v, want 150", got)
	}
	// remapClampf does
	if got := remapClampf(15, 0, 10, 0, 100); got != 100 {
		t.Errorf("remapClampf beyond range = %v, want 100", got)
	}
	if got := lerpf(10, 20, 0.5); got != 15 {
		t.Errorf("lerpf = %v, want 15", got)
	}
}
