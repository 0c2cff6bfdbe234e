package geom

import (
	"fmt"
	"math"
)

// Abs is an absolute length in typographic points.
type Abs float64

// Zero is the zero length.
const Zero Abs = 0

// Pt creates a length from a value in points.
func Pt(v float64) Abs {
	return Abs(v)
}

// Inf returns an infinite length, used for unbounded regions.
func Inf() Abs {
	return Abs(math.Inf(1))
}

// Points returns the length in points.
func (a Abs) Points() float64 {
	return float64(a)
}

// IsInf reports whether the length is infinite.
func (a Abs) IsInf() bool {
	return math.IsInf(float64(a), 0)
}

// Min returns the smaller of two lengths.
func (a Abs) Min(b Abs) Abs {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of two lengths.
func (a Abs) Max(b Abs) Abs {
	if b > a {
		return b
	}
	return a
}

// Fits reports whether a piece of extent b fits into available extent a,
// with a small tolerance against float jitter.
func (a Abs) Fits(b Abs) bool {
	return a+epsilon >= b
}

// ApproxEq reports whether two lengths are equal within tolerance.
func (a Abs) ApproxEq(b Abs) bool {
	if a.IsInf() || b.IsInf() {
		return a == b
	}
	return math.Abs(float64(a-b)) < epsilon
}

const epsilon = 1e-6

func (a Abs) String() string {
	if a.IsInf() {
		return "inf"
	}
	return fmt.Sprintf("%gpt", float64(a))
}
