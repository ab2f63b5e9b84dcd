// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivetrain

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
)

// SmoothAbs returns |x| with a quadratic blend for |x| < dx
func SmoothAbs(x, dx float64) (y, dydx float64) {
	switch {
	case x <= -dx:
		return -x, -1
	case x >= dx:
		return x, 1
	}
	return x*x/(2*dx) + dx/2, x / dx
}

// SmoothMin returns min(x,ymin) with a cubic blend for x within ±pct·ymin of ymin
func SmoothMin(x, ymin, pct float64) (y, dydx, dydymin float64) {
	a := smoothMin(dual.Number{Real: x, Emag: 1}, dual.Number{Real: ymin}, pct)
	b := smoothMin(dual.Number{Real: x}, dual.Number{Real: ymin, Emag: 1}, pct)
	return a.Real, a.Emag, b.Emag
}

// smoothMin joins y = x at x1 = (1-pct)·ymin to y = ymin at x2 = (1+pct)·ymin with a cubic
// Hermite polynomial matching values and slopes at both ends
func smoothMin(x, ymin dual.Number, pct float64) dual.Number {
	x1 := dual.Scale(1-pct, ymin)
	x2 := dual.Scale(1+pct, ymin)
	lo, hi := math.Min(x1.Real, x2.Real), math.Max(x1.Real, x2.Real)
	switch {
	case x.Real <= lo:
		return x
	case x.Real >= hi:
		return ymin
	}
	h := dual.Sub(x2, x1)
	t := dual.Mul(dual.Sub(x, x1), dual.Inv(h))
	t2 := dual.Mul(t, t)
	t3 := dual.Mul(t2, t)
	h00 := dual.Add(dual.Sub(dual.Scale(2, t3), dual.Scale(3, t2)), dual.Number{Real: 1})
	h10 := dual.Add(dual.Sub(t3, dual.Scale(2, t2)), t)
	h01 := dual.Sub(dual.Scale(3, t2), dual.Scale(2, t3))
	y := dual.Mul(h00, x1)
	y = dual.Add(y, dual.Mul(h10, h)) // slope 1 at x1
	y = dual.Add(y, dual.Mul(h01, ymin))
	return y
}
