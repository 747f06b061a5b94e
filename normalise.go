package knob

import "math"

// Helpers for converting a knob's value range to/from the normalized [0,1]
// drag position. Always clamps. Logarithmic ranges are allowed to include
// zero and infinity, even though mathematically that doesn't make sense;
// a fixed number of decades stands in for the unbounded part.

// infRangeMagnitude is the scale used when the range is infinitely large
// (e.g. logarithmic from zero): the mapping spans this many orders of
// magnitude in place of the unbounded end.
const infRangeMagnitude float32 = 10.0

// MapSpec configures how a value range maps onto the normalized position.
type MapSpec struct {
	// Logarithmic selects log10 interpolation instead of linear.
	Logarithmic bool

	// SmallestFinite is the smallest positive magnitude a logarithmic range
	// distinguishes from zero. Absolute value; must be > 0.
	SmallestFinite float32

	// LargestFinite is the largest magnitude a logarithmic range
	// distinguishes from infinity. Absolute value; must be > 0.
	LargestFinite float32
}

// DefaultMapSpec returns a linear spec with the default logarithmic cutoffs
// (1e-6 and 1e6).
func DefaultMapSpec() MapSpec {
	return MapSpec{
		Logarithmic:    false,
		SmallestFinite: 1e-6,
		LargestFinite:  1e6,
	}
}

// ValueFromNormalised converts a normalized position in [0,1] back into a
// value in the range [minVal, maxVal].
//
// Edge cases, in precedence order: NaN bounds propagate NaN; a degenerate
// range (minVal == maxVal) collapses every position to minVal; an inverted
// range (minVal > maxVal) reflects the position and delegates to the
// non-inverted mapping; positions outside [0,1] clamp to the nearer bound.
func ValueFromNormalised(normalised, minVal, maxVal float32, spec MapSpec) float32 {
	switch {
	case isNaN32(minVal) || isNaN32(maxVal):
		return nan32()
	case minVal == maxVal:
		return minVal
	case minVal > maxVal:
		return ValueFromNormalised(1.0-normalised, maxVal, minVal, spec)
	case normalised <= 0.0:
		return minVal
	case normalised >= 1.0:
		return maxVal
	case spec.Logarithmic:
		switch {
		case maxVal <= 0.0:
			// Non-positive range: negate, solve, negate back.
			return -ValueFromNormalised(normalised, -minVal, -maxVal, spec)
		case 0.0 <= minVal:
			minLog, maxLog := rangeLog10(minVal, maxVal, spec)
			return pow10f(lerpf(minLog, maxLog, normalised))
		default:
			debugAssert(minVal < 0.0 && 0.0 < maxVal, "zero-straddling range expected")
			cutoff := logarithmicZeroCutoff(minVal, maxVal)
			if normalised < cutoff {
				// Negative side.
				return ValueFromNormalised(remapf(normalised, 0.0, cutoff, 0.0, 1.0), minVal, 0.0, spec)
			}
			// Positive side.
			return ValueFromNormalised(remapf(normalised, cutoff, 1.0, 0.0, 1.0), 0.0, maxVal, spec)
		}
	default:
		debugAssert(isFinite32(minVal) && isFinite32(maxVal), "use a logarithmic range for infinite bounds")
		return lerpf(minVal, maxVal, clampf(normalised, 0.0, 1.0))
	}
}

// NormalisedFromValue converts a value in the range [minVal, maxVal] into a
// normalized position in [0,1]. It is the inverse of ValueFromNormalised and
// applies the same edge-case precedence; a degenerate range maps every value
// to 0.5 (center of travel), and values outside the range clamp to 0 or 1.
func NormalisedFromValue(value, minVal, maxVal float32, spec MapSpec) float32 {
	switch {
	case isNaN32(minVal) || isNaN32(maxVal):
		return nan32()
	case minVal == maxVal:
		return 0.5 // Empty range, show center of travel.
	case minVal > maxVal:
		return 1.0 - NormalisedFromValue(value, maxVal, minVal, spec)
	case value <= minVal:
		return 0.0
	case value >= maxVal:
		return 1.0
	case spec.Logarithmic:
		switch {
		case maxVal <= 0.0:
			return NormalisedFromValue(-value, -minVal, -maxVal, spec)
		case 0.0 <= minVal:
			minLog, maxLog := rangeLog10(minVal, maxVal, spec)
			return remapf(log10f(value), minLog, maxLog, 0.0, 1.0)
		default:
			debugAssert(minVal < 0.0 && 0.0 < maxVal, "zero-straddling range expected")
			cutoff := logarithmicZeroCutoff(minVal, maxVal)
			if value < cutoff {
				// Negative side.
				return remapf(NormalisedFromValue(value, minVal, 0.0, spec), 0.0, 1.0, 0.0, cutoff)
			}
			// Positive side.
			return remapf(NormalisedFromValue(value, 0.0, maxVal, spec), 0.0, 1.0, cutoff, 1.0)
		}
	default:
		debugAssert(isFinite32(minVal) && isFinite32(maxVal), "use a logarithmic range for infinite bounds")
		return remapClampf(value, minVal, maxVal, 0.0, 1.0)
	}
}

// rangeLog10 returns the log10 interpolation bounds for a non-negative range.
// Zero and infinity are replaced by the spec's finite cutoffs; when the cutoff
// itself falls outside the range, an infRangeMagnitude-decade span anchored at
// the finite end is used instead. log10(0) is never evaluated.
func rangeLog10(minVal, maxVal float32, spec MapSpec) (minLog, maxLog float32) {
	debugAssert(spec.Logarithmic, "rangeLog10 requires a logarithmic spec")
	debugAssert(minVal <= maxVal, "rangeLog10 requires an ordered range")
	debugAssert(spec.SmallestFinite > 0 && spec.LargestFinite > 0, "finite cutoffs must be positive")

	switch {
	case minVal == 0.0 && isPosInf32(maxVal):
		return log10f(spec.SmallestFinite), infRangeMagnitude
	case minVal == 0.0:
		if spec.SmallestFinite < maxVal {
			return log10f(spec.SmallestFinite), log10f(maxVal)
		}
		return log10f(maxVal) - infRangeMagnitude, log10f(maxVal)
	case isPosInf32(maxVal):
		if minVal < spec.LargestFinite {
			return log10f(minVal), log10f(spec.LargestFinite)
		}
		return log10f(minVal), log10f(minVal) + infRangeMagnitude
	default:
		return log10f(minVal), log10f(maxVal)
	}
}

// logarithmicZeroCutoff returns where in the normalized [0,1] position the
// zero point of a straddling range (minVal < 0 < maxVal) sits. The split is
// proportional to the decade magnitude of each side, with infinite endpoints
// counted as infRangeMagnitude decades.
func logarithmicZeroCutoff(minVal, maxVal float32) float32 {
	debugAssert(minVal < 0.0 && 0.0 < maxVal, "cutoff requires a zero-straddling range")

	minMagnitude := infRangeMagnitude
	if !isNegInf32(minVal) {
		minMagnitude = absf(log10f(absf(minVal)))
	}
	maxMagnitude := infRangeMagnitude
	if !isPosInf32(maxVal) {
		maxMagnitude = absf(log10f(maxVal))
	}

	cutoff := minMagnitude / (minMagnitude + maxMagnitude)
	debugAssert(0.0 <= cutoff && cutoff <= 1.0, "cutoff outside [0,1]")
	return cutoff
}

// lerpf linearly interpolates between a and b by t.
func lerpf(a, b, t float32) float32 {
	return a + (b-a)*t
}

// remapf maps x from the range [fromMin, fromMax] to [toMin, toMax]
// without clamping.
func remapf(x, fromMin, fromMax, toMin, toMax float32) float32 {
	t := (x - fromMin) / (fromMax - fromMin)
	return lerpf(toMin, toMax, t)
}

// remapClampf maps x from [fromMin, fromMax] to [toMin, toMax], clamping the
// result to the target range.
func remapClampf(x, fromMin, fromMax, toMin, toMax float32) float32 {
	if x <= fromMin {
		return toMin
	}
	if x >= fromMax {
		return toMax
	}
	return remapf(x, fromMin, fromMax, toMin, toMax)
}

func log10f(x float32) float32 {
	return float32(math.Log10(float64(x)))
}

func pow10f(x float32) float32 {
	return float32(math.Pow(10, float64(x)))
}

func isNaN32(x float32) bool {
	return x != x
}

func nan32() float32 {
	return float32(math.NaN())
}

func isFinite32(x float32) bool {
	return !isNaN32(x) && !math.IsInf(float64(x), 0)
}

func isPosInf32(x float32) bool {
	return math.IsInf(float64(x), 1)
}

func isNegInf32(x float32) bool {
	return math.IsInf(float64(x), -1)
}
