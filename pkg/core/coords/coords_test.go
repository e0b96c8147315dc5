package coords

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParamToWorld(t *testing.T) {
	tests := []struct {
		name                    string
		value, min, max, spread float64
		want                    float64
	}{
		{"Minimum", 0, 0, 100, 50, -50},
		{"Maximum", 100, 0, 100, 50, 50},
		{"Midpoint", 50, 0, 100, 50, 0},
		{"Quarter", 25, 0, 100, 10, -5},
		{"NegativeRange", -5, -10, 0, 1, 0},
		{"OutsideRange", 200, 0, 100, 50, 150},
		{"Degenerate", 7, 5, 5, 50, 0},
		{"DegenerateAtValue", 5, 5, 5, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParamToWorld(tt.value, tt.min, tt.max, tt.spread)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ParamToWorld(%v, %v, %v, %v) = %v, want %v",
					tt.value, tt.min, tt.max, tt.spread, got, tt.want)
			}
		})
	}
}

func TestWorldToParam(t *testing.T) {
	if got := WorldToParam(-50, 0, 100, 50); got != 0 {
		t.Errorf("WorldToParam(-50) = %v, want 0", got)
	}
	if got := WorldToParam(50, 0, 100, 50); got != 100 {
		t.Errorf("WorldToParam(50) = %v, want 100", got)
	}
	if got := WorldToParam(123, 7, 9, 0); got != 7 {
		t.Errorf("WorldToParam with zero spread = %v, want min 7", got)
	}
}

func TestRange(t *testing.T) {
	r := EmptyRange()
	if r.Valid() {
		t.Error("EmptyRange should not be valid")
	}
	for _, v := range []float64{3, -1, 8, 2} {
		r = r.Extend(v)
	}
	if r.Min != -1 || r.Max != 8 {
		t.Errorf("Extend range = %+v, want {-1 8}", r)
	}
	if !r.Valid() || r.Degenerate() {
		t.Errorf("range %+v should be valid and non-degenerate", r)
	}
	if r.Span() != 9 {
		t.Errorf("Span = %v, want 9", r.Span())
	}
	if !r.Contains(0) || r.Contains(9) {
		t.Error("Contains mismatch")
	}

	single := EmptyRange().Extend(4)
	if !single.Degenerate() {
		t.Error("single-value range should be degenerate")
	}
	if got := single.ToWorld(4, 10); got != 0 {
		t.Errorf("degenerate ToWorld = %v, want 0", got)
	}
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("world to param inverts param to world", prop.ForAll(
		func(min, width, frac, spread float64) bool {
			max := min + width
			value := min + frac*width
			back := WorldToParam(ParamToWorld(value, min, max, spread), min, max, spread)
			tol := 1e-9 * math.Max(1, math.Max(math.Abs(min), math.Abs(max)))
			return math.Abs(back-value) <= tol
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(1e-3, 1e6),
		gen.Float64Range(0, 1),
		gen.Float64Range(1e-3, 1e5),
	))

	properties.Property("degenerate range maps to center", prop.ForAll(
		func(v, spread float64) bool {
			return ParamToWorld(v, 5, 5, spread) == 0
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0, 1e5),
	))

	properties.Property("in-range values stay inside the world", prop.ForAll(
		func(frac, spread float64) bool {
			w := ParamToWorld(frac*100, 0, 100, spread)
			return w >= -spread-1e-9 && w <= spread+1e-9
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(1e-3, 1e5),
	))

	properties.TestingRun(t)
}
