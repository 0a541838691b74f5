package geom

import "math"

// ZeroTolerance is the absolute float32 difference below which two values
// are considered the same.
const ZeroTolerance float32 = 1e-6

// Values whose ordered IEEE-754 representations are at most this many
// units in the last place apart still compare near-equal.
const maxULPs = 4

// IsZero reports whether a is strictly within ZeroTolerance of zero.
func IsZero(a float32) bool {
	return a > -ZeroTolerance && a < ZeroTolerance
}

// WithinEpsilon reports whether a and b differ by no more than eps.
func WithinEpsilon(a, b, eps float32) bool {
	d := a - b
	return -eps <= d && d <= eps
}

// NearEqual reports whether a and b are approximately equal. The test
// passes when the difference is inside ZeroTolerance, or when both values
// share a sign and their bit patterns are within maxULPs of each other.
// It absorbs rounding error without treating distinct values as equal.
func NearEqual(a, b float32) bool {
	if IsZero(a - b) {
		return true
	}

	ai := int32(math.Float32bits(a))
	bi := int32(math.Float32bits(b))
	if (ai < 0) != (bi < 0) {
		return false
	}

	ulp := ai - bi
	if ulp < 0 {
		ulp = -ulp
	}
	return ulp <= maxULPs
}
