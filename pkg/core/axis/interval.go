package axis

import (
	"math"
	"strconv"
)

// TargetDivisions is the number of subdivisions NiceInterval aims for.
const TargetDivisions = 15

// mantissaTolerance absorbs floating point noise when classifying
// mantissas and magnitudes.
const mantissaTolerance = 1e-9

// NiceInterval returns a tick spacing for visibleRange restricted to
// {1, 2.5, 5} x 10^n. Non-positive or non-finite ranges return 0, which
// callers treat as "no ticks".
func NiceInterval(visibleRange float64) float64 {
	if !(visibleRange > 0) || math.IsInf(visibleRange, 0) {
		return 0
	}
	rough := visibleRange / TargetDivisions
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	normalized := rough / magnitude

	var nice float64
	switch {
	case normalized < 1.5:
		nice = 1
	case normalized <= 3.5:
		nice = 2.5
	case normalized <= 7.5:
		nice = 5
	default:
		nice = 10
	}
	return nice * magnitude
}

// Mantissa splits v > 0 into m x 10^exp with 1 <= m < 10.
func Mantissa(v float64) (m float64, exp int) {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0, 0
	}
	exp = int(math.Floor(math.Log10(v) + mantissaTolerance))
	m = v / math.Pow(10, float64(exp))
	return m, exp
}

// DecimalPlaces returns the number of fractional digits needed to print
// ticks spaced by interval without ambiguity.
func DecimalPlaces(interval float64) int {
	m, exp := Mantissa(interval)
	if m == 0 {
		return 0
	}
	places := -exp
	// 2.5 x 10^n carries one digit more than 1 or 5 at the same magnitude.
	if math.Abs(m-2.5) < 1e-6 {
		places++
	}
	if places < 0 {
		return 0
	}
	return places
}

// FormatTick renders v with the given number of decimals. Negative zero
// prints as "0".
func FormatTick(v float64, places int) string {
	s := strconv.FormatFloat(v, 'f', places, 64)
	if isNegativeZero(s) {
		return s[1:]
	}
	return s
}

func isNegativeZero(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, c := range s[1:] {
		if c != '0' && c != '.' {
			return false
		}
	}
	return true
}
