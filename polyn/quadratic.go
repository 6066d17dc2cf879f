// Package polyn is for quadratic polynomial curves and their least-squares fit.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokefit"
)

// T traces to the 'polyn' tracer.
func T() tracing.Trace {
	return tracing.Select("polyn")
}

// Quadratic is a parametric quadratic curve
//
//	Q(u) = C0 + C1⋅u + C2⋅u²
//
// with 2D coefficients. Fitted curves are parametrized over u ∈ [0,1].
type Quadratic struct {
	C0, C1, C2 strokefit.Pair
}

// Pos evaluates the curve at parameter u.
func (q Quadratic) Pos(u float64) strokefit.Pair {
	return q.C0 + q.C1.Scaled(u) + q.C2.Scaled(u*u)
}

func (q Quadratic) String() string {
	return fmt.Sprintf("%v + %v u + %v u²", q.C0, q.C1, q.C2)
}

// FitQuadratic finds the quadratic curve which best approximates a sequence
// of points in a least-squares sense. Point j of k points is attached to
// the parameter
//
//	u.j = j / (k-1)
//
// so the first point belongs to u=0 and the last one to u=1.
//
// FitQuadratic never fails: for a single point the result is constant,
// for two points it is the line through both, and for three points it
// interpolates exactly. FitQuadratic panics if points is empty.
func FitQuadratic(points []strokefit.Pair) Quadratic {
	k := len(points)
	switch k {
	case 0:
		panic("cannot fit quadratic to empty list of points")
	case 1:
		return Quadratic{C0: points[0]}
	case 2:
		return Quadratic{C0: points[0], C1: points[1] - points[0]}
	}
	// Normal equations
	//
	//   | Σ1   Σu   Σu² | | c0 |   | Σp   |
	//   | Σu   Σu²  Σu³ | | c1 | = | Σup  |
	//   | Σu²  Σu³  Σu⁴ | | c2 |   | Σu²p |
	//
	// solved for x and y at once: the right hand side is complex.
	var s [5]float64
	var b [3]complex128
	for j, p := range points {
		u := float64(j) / float64(k-1)
		um := 1.0
		for m := 0; m < 5; m++ {
			s[m] += um
			if m < 3 {
				b[m] += complex(um, 0) * p.C()
			}
			um *= u
		}
	}
	var A matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			A[row][col] = complex(s[row+col], 0)
		}
	}
	det := A.det()
	if det == 0 { // cannot happen for k ≥ 3 distinct parameters
		T().Errorf("singular normal equations for %d points", k)
		return Quadratic{C0: points[0], C1: points[k-1] - points[0]}
	}
	q := Quadratic{
		C0: strokefit.C2P(A.withColumn(0, b).det() / det),
		C1: strokefit.C2P(A.withColumn(1, b).det() / det),
		C2: strokefit.C2P(A.withColumn(2, b).det() / det),
	}
	return q
}

// 3x3 matrix for Cramer's rule
type matrix3 [3][3]complex128

func (m matrix3) det() complex128 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Returns a copy of m with column col replaced by v.
func (m matrix3) withColumn(col int, v [3]complex128) matrix3 {
	for row := 0; row < 3; row++ {
		m[row][col] = v[row]
	}
	return m
}

// === Windowed regression ===================================================

// MaxWindow is the maximum number of consecutive points a single fit covers.
const MaxWindow = 5

// FitWindows fits a quadratic curve to every window of k consecutive points,
// where k = min(MaxWindow, n) for n points. There are n-k+1 windows, fit i
// covering points i … i+k-1. The fits are appended to fits[:0], so callers
// may recycle a slice.
func FitWindows(points []strokefit.Pair, fits []Quadratic) []Quadratic {
	n := len(points)
	if n == 0 {
		panic("cannot fit windows to empty list of points")
	}
	k := min(MaxWindow, n)
	fits = fits[:0]
	for i := 0; i+k <= n; i++ {
		fits = append(fits, FitQuadratic(points[i:i+k]))
	}
	return fits
}

// bell is a non-normalized bell-shaped weight, centered at 0.5:
// w(0) = w(1) = 0 and w'(0) = w'(0.5) = w'(1) = 0.
func bell(u float64) float64 {
	return u * u * (1 - u) * (1 - u)
}

// Blend averages a set of window fits, as produced by FitWindows for n
// points, into one position per point. Point i collects the position of
// every fit covering it, evaluated at the point's parameter within that fit
// and weighted by a bell-shaped kernel. The first and last positions are
// pinned to the first and last of the original points.
//
// Positions are appended to out[:0]. Consecutive results may coincide.
func Blend(points []strokefit.Pair, fits []Quadratic, out []strokefit.Pair) []strokefit.Pair {
	n, numFits := len(points), len(fits)
	if n == 0 || numFits == 0 || numFits > n {
		panic(fmt.Sprintf("cannot blend %d fits for %d points", numFits, n))
	}
	k := n - numFits + 1 // points per fit
	if k < 3 && n > 2 {
		panic(fmt.Sprintf("window of %d points too small for %d points", k, n))
	}
	out = append(out[:0], points[0])
	for i := 1; i < n-1; i++ {
		var pos strokefit.Pair
		var sumW float64
		// j = 0 and j = k-1 have weight 0
		for j := 1; j < k-1; j++ {
			f := i - j // fit whose j-th point is point i
			if f < 0 || f >= numFits {
				continue
			}
			u := float64(j) / float64(k-1)
			w := bell(u)
			pos += fits[f].Pos(u).Scaled(w)
			sumW += w
		}
		out = append(out, pos.Scaled(1/sumW))
	}
	if n > 1 {
		out = append(out, points[n-1])
	}
	return out
}
