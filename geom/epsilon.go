package geom

import "math"

// Epsilon is the shared numeric tolerance used throughout the kernel. The
// predicates' tolerance decisions go through EqualF/LessF/GreaterF and
// friends below rather than bare operators, so the whole package moves in
// lockstep if the tolerance is ever retuned.
const Epsilon = 1e-6

// EqualF reports whether a and b are within Epsilon of each other.
func EqualF(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// LessF reports whether a is strictly less than b, outside Epsilon.
func LessF(a, b float64) bool {
	return !EqualF(a, b) && a < b
}

// GreaterF reports whether a is strictly greater than b, outside Epsilon.
func GreaterF(a, b float64) bool {
	return !EqualF(a, b) && a > b
}

// LessEqF reports a <= b within Epsilon.
func LessEqF(a, b float64) bool {
	return EqualF(a, b) || a < b
}

// GreaterEqF reports a >= b within Epsilon.
func GreaterEqF(a, b float64) bool {
	return EqualF(a, b) || a > b
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// sign returns -1, 0, or +1 classifying f against zero with Epsilon
// tolerance. Used for orientation tests: the 0 branch is the collinear case.
func sign(f float64) int {
	switch {
	case GreaterF(f, 0):
		return 1
	case LessF(f, 0):
		return -1
	default:
		return 0
	}
}
