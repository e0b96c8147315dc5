// Package coords maps node parameter values onto layout world coordinates.
//
// A parameter's data range [Min, Max] is projected linearly onto the
// symmetric world range [-spread, +spread]. Node placement and axis tick
// placement both go through this package, so a tick labelled v always sits
// exactly where a node with value v is drawn.
//
//	x := coords.ParamToWorld(42, 0, 100, 50)   // -8
//	v := coords.WorldToParam(x, 0, 100, 50)    // 42
package coords

import "math"

// Range is the observed [Min, Max] of one parameter.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Degenerate reports whether the range collapses to a single value.
func (r Range) Degenerate() bool { return r.Max == r.Min }

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether v lies within the closed range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Extend widens the range to include v. A zero Range extended for the
// first time should start from EmptyRange.
func (r Range) Extend(v float64) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// EmptyRange returns a range that any Extend call will overwrite.
func EmptyRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Valid reports whether the range holds at least one finite value.
func (r Range) Valid() bool {
	return !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && r.Min <= r.Max
}

// ParamToWorld maps value from [min, max] to [-spread, +spread].
// A degenerate range (max == min) maps every value to the center, 0.
func ParamToWorld(value, min, max, spread float64) float64 {
	if max == min {
		return 0
	}
	return (value-min)/(max-min)*2*spread - spread
}

// WorldToParam is the inverse of ParamToWorld. With spread == 0 the world
// has no extent and every position maps back to min.
func WorldToParam(world, min, max, spread float64) float64 {
	if spread == 0 {
		return min
	}
	return min + (world+spread)/(2*spread)*(max-min)
}

// ToWorld is ParamToWorld over r.
func (r Range) ToWorld(value, spread float64) float64 {
	return ParamToWorld(value, r.Min, r.Max, spread)
}

// ToParam is WorldToParam over r.
func (r Range) ToParam(world, spread float64) float64 {
	return WorldToParam(world, r.Min, r.Max, spread)
}
