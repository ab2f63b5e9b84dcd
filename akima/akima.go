// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package akima implements a shape-preserving Akima spline whose weights use a smoothed
// absolute value, so that the interpolant is continuously differentiable with respect to
// the control points. Derivatives are computed with dual numbers and are exact.
//  References:
//   [1] Akima H (1970) A new method of interpolation and smooth curve fitting based on
//       local procedures, Journal of the ACM, 17(4) 589-602
//   [2] Ning SA (2013) CCBlade documentation, NREL/TP-5000-58819
package akima

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/num/dual"
)

// DefaultDelta is the default half-width of the region where |x| is smoothed
const DefaultDelta = 0.1

// Spline holds control points of an Akima spline
type Spline struct {
	Xpt   []float64 // abscissae of control points (strictly increasing)
	Ypt   []float64 // ordinates of control points
	Delta float64   // half-width of smoothing region of |·|

	// derived: coefficients of each segment; computed by New
	xd             []dual.Number
	p0, p1, p2, p3 []dual.Number
}

// New returns a new spline. delta ≤ 0 selects DefaultDelta
func New(xpt, ypt []float64, delta float64) (o *Spline, err error) {
	if err = validate(len(xpt), len(ypt)); err != nil {
		return
	}
	for i := 1; i < len(xpt); i++ {
		if xpt[i] <= xpt[i-1] {
			return nil, chk.Err("akima: control abscissae must be strictly increasing; x[%d]=%g ≤ x[%d]=%g\n", i, xpt[i], i-1, xpt[i-1])
		}
	}
	if delta <= 0 {
		delta = DefaultDelta
	}
	o = &Spline{Xpt: append([]float64{}, xpt...), Ypt: append([]float64{}, ypt...), Delta: delta}
	o.xd = lift(o.Xpt, -1)
	o.p0, o.p1, o.p2, o.p3 = Coefficients(o.xd, lift(o.Ypt, -1), delta)
	return
}

// Eval evaluates y(x) and dy/dx
func (o *Spline) Eval(x float64) (y, dydx float64) {
	v := polynomial(dual.Number{Real: x, Emag: 1}, o.xd, o.p0, o.p1, o.p2, o.p3)
	return v.Real, v.Emag
}

// Interp evaluates the spline at many points together with all derivatives
//  dydxpt[i][k] = ∂y(x[i])/∂xpt[k]   and   dydypt[i][k] = ∂y(x[i])/∂ypt[k]
func (o *Spline) Interp(x []float64) (y, dydx []float64, dydxpt, dydypt [][]float64) {
	n, m := len(o.Xpt), len(x)
	y = make([]float64, m)
	dydx = make([]float64, m)
	dydxpt = alloc(m, n)
	dydypt = alloc(m, n)
	for i := 0; i < m; i++ {
		y[i], dydx[i] = o.Eval(x[i])
	}
	xd := make([]dual.Number, m)
	for i := 0; i < m; i++ {
		xd[i].Real = x[i]
	}
	for k := 0; k < n; k++ {
		yd := InterpDual(xd, lift(o.Xpt, k), lift(o.Ypt, -1), o.Delta)
		for i := 0; i < m; i++ {
			dydxpt[i][k] = yd[i].Emag
		}
		yd = InterpDual(xd, lift(o.Xpt, -1), lift(o.Ypt, k), o.Delta)
		for i := 0; i < m; i++ {
			dydypt[i][k] = yd[i].Emag
		}
	}
	return
}

// InterpDual interpolates at many points with dual-number control data
//  The caller seeds the Emag parts to select a derivative direction. Control abscissae
//  must be strictly increasing (not checked) and there must be at least two points.
func InterpDual(x, xpt, ypt []dual.Number, delta float64) (y []dual.Number) {
	p0, p1, p2, p3 := Coefficients(xpt, ypt, delta)
	y = make([]dual.Number, len(x))
	for i, xx := range x {
		y[i] = polynomial(xx, xpt, p0, p1, p2, p3)
	}
	return
}

// EvalDual evaluates the spline at one point with dual-number control data
func EvalDual(x dual.Number, xpt, ypt []dual.Number, delta float64) dual.Number {
	p0, p1, p2, p3 := Coefficients(xpt, ypt, delta)
	return polynomial(x, xpt, p0, p1, p2, p3)
}

// Coefficients computes the cubic coefficients of each segment
//  y = p0 + p1 dx + p2 dx² + p3 dx³ with dx = x - xpt[j]
func Coefficients(xpt, ypt []dual.Number, delta float64) (p0, p1, p2, p3 []dual.Number) {

	// check
	n := len(xpt)
	if n < 2 || len(ypt) != n {
		chk.Panic("akima: need at least 2 control points with matching sizes; got %d and %d\n", n, len(ypt))
	}
	p0 = make([]dual.Number, n-1)
	p1 = make([]dual.Number, n-1)
	p2 = make([]dual.Number, n-1)
	p3 = make([]dual.Number, n-1)

	// linear
	if n == 2 {
		s := div(dual.Sub(ypt[1], ypt[0]), dual.Sub(xpt[1], xpt[0]))
		p0[0], p1[0] = ypt[0], s
		return
	}

	// segment slopes with two extrapolated slopes on each side
	m := make([]dual.Number, n+3)
	for i := 0; i < n-1; i++ {
		m[i+2] = div(dual.Sub(ypt[i+1], ypt[i]), dual.Sub(xpt[i+1], xpt[i]))
	}
	m[1] = dual.Sub(dual.Scale(2, m[2]), m[3])
	m[0] = dual.Sub(dual.Scale(2, m[1]), m[2])
	m[n+1] = dual.Sub(dual.Scale(2, m[n]), m[n-1])
	m[n+2] = dual.Sub(dual.Scale(2, m[n+1]), m[n])

	// slopes at knots
	t := make([]dual.Number, n)
	for i := 0; i < n; i++ {
		m1, m2, m3, m4 := m[i], m[i+1], m[i+2], m[i+3]
		w1 := SmoothAbs(dual.Sub(m4, m3), delta)
		w2 := SmoothAbs(dual.Sub(m2, m1), delta)
		w := dual.Add(w1, w2)
		if w.Real < 1e-30 {
			t[i] = dual.Scale(0.5, dual.Add(m2, m3))
			continue
		}
		t[i] = div(dual.Add(dual.Mul(w1, m2), dual.Mul(w2, m3)), w)
	}

	// cubic coefficients
	for i := 0; i < n-1; i++ {
		h := dual.Sub(xpt[i+1], xpt[i])
		mi := m[i+2]
		p0[i] = ypt[i]
		p1[i] = t[i]
		p2[i] = div(dual.Sub(dual.Sub(dual.Scale(3, mi), dual.Scale(2, t[i])), t[i+1]), h)
		p3[i] = div(dual.Sub(dual.Add(t[i], t[i+1]), dual.Scale(2, mi)), dual.Mul(h, h))
	}
	return
}

// SmoothAbs computes |x| with a quadratic blend inside (-delta, delta)
func SmoothAbs(x dual.Number, delta float64) dual.Number {
	switch {
	case x.Real >= delta:
		return x
	case x.Real <= -delta:
		return dual.Scale(-1, x)
	}
	return dual.Add(dual.Scale(1/(2*delta), dual.Mul(x, x)), dual.Number{Real: delta / 2})
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// polynomial evaluates the cubic of the segment containing x; end segments extrapolate
func polynomial(x dual.Number, xpt, p0, p1, p2, p3 []dual.Number) dual.Number {
	j := segment(x.Real, xpt)
	dx := dual.Sub(x, xpt[j])
	dx2 := dual.Mul(dx, dx)
	dx3 := dual.Mul(dx2, dx)
	res := dual.Add(p0[j], dual.Mul(p1[j], dx))
	res = dual.Add(res, dual.Mul(p2[j], dx2))
	return dual.Add(res, dual.Mul(p3[j], dx3))
}

// segment finds j such that xpt[j] ≤ x < xpt[j+1], clamped to [0, n-2]
func segment(x float64, xpt []dual.Number) int {
	n := len(xpt)
	lo, hi := 0, n-1
	if x <= xpt[0].Real {
		return 0
	}
	if x >= xpt[n-1].Real {
		return n - 2
	}
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x < xpt[mid].Real {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

func div(a, b dual.Number) dual.Number {
	return dual.Mul(a, dual.Inv(b))
}

// lift converts values to dual numbers, seeding component k (k < 0 seeds nothing)
func lift(v []float64, k int) (res []dual.Number) {
	res = make([]dual.Number, len(v))
	for i, x := range v {
		res[i].Real = x
	}
	if k >= 0 {
		res[k].Emag = 1
	}
	return
}

func validate(nx, ny int) error {
	if nx != ny {
		return chk.Err("akima: number of abscissae (%d) and ordinates (%d) must be equal\n", nx, ny)
	}
	if nx < 2 {
		return chk.Err("akima: at least 2 control points are required; %d given\n", nx)
	}
	return nil
}

func alloc(m, n int) (res [][]float64) {
	res = make([][]float64, m)
	for i := range res {
		res[i] = make([]float64, n)
	}
	return
}
