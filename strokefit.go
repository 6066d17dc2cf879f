/*
Package strokefit turns noisy pointer input into smooth, variable-width
centerline curves. The root package provides points and the small amount of
plane geometry the fitting packages share.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package strokefit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strokefit'
func tracer() tracing.Trace {
	return tracing.Select("strokefit")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D-point or a 2D-vector.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Length is the euclidean length of p as a vector.
func (p Pair) Length() float64 {
	return cmplx.Abs(p.C())
}

// Dist is the euclidean distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return (q - p).Length()
}

// Phase is the direction angle of p as a vector, in -π … π.
func (p Pair) Phase() float64 {
	return cmplx.Phase(p.C())
}

// Perp returns p rotated counter-clockwise by 90°, i.e. (-y, x).
// The result is exact, no trigonometry is involved.
func (p Pair) Perp() Pair {
	return P(-p.Y(), p.X())
}

// Dir returns the unit vector for angle theta.
func Dir(theta float64) Pair {
	return P(math.Cos(theta), math.Sin(theta))
}

// Unit returns p normalized to length 1. If the length of p does not exceed
// eps, deflt is returned instead.
func (p Pair) Unit(eps float64, deflt Pair) Pair {
	l := p.Length()
	if l <= eps {
		return deflt
	}
	return P(p.X()/l, p.Y()/l)
}

// === Angles ================================================================

// SupplementaryAngle is the turning angle at p1 when travelling from p0 over
// p1 to p2. Three aligned points (in this order) have an angle of 0, a full
// reversal has an angle of π. If one of the segments has zero length, the
// angle is 0. Angles below Epsilon are flushed to 0.
func SupplementaryAngle(p0, p1, p2 Pair) float64 {
	d1, d2 := p1-p0, p2-p1
	if d1 == 0 || d2 == 0 {
		return 0
	}
	// arg(d2 · conj(d1)) is the signed turn from d1 to d2
	return Zap(math.Abs(cmplx.Phase(d2.C() * cmplx.Conj(d1.C()))))
}

// ReduceAngle reduces an angle to the representative closest to ref,
// i.e. to ref-π … ref+π.
func ReduceAngle(a, ref float64) float64 {
	if a > ref+math.Pi {
		a -= 2 * math.Pi
	} else if a < ref-math.Pi {
		a += 2 * math.Pi
	}
	return a
}
