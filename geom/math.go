package geom

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the default per-axis tolerance for comparing converted
// coordinates.
const Tolerance = 0.001

type SignedNumber interface {
	constraints.Signed | constraints.Float
}

func Abs[T SignedNumber](v T) T {
	if v >= T(0) {
		return v
	}
	return -v
}

// IsOdd reports whether v is odd, for negative values too.
func IsOdd[T constraints.Signed](v T) bool {
	return Abs(v)%2 == 1
}

// RoundHalfDown rounds v to the nearest integer, sending exact .5 ties
// toward negative infinity.
func RoundHalfDown(v float64) int {
	return int(math.Ceil(v - 0.5))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func near(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}
