// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"
)

// number of points per surface of CST airfoils
const cstNpts = 120

// class function exponents (round nose and sharp trailing edge)
const (
	cstN1 = 0.5
	cstN2 = 1.0
)

// coordinates generates the closed loop TE → upper → LE → lower → TE
func (o *CST) coordinates(npts int) (x, y []float64, err error) {
	if len(o.Upper) == 0 || len(o.Lower) == 0 {
		return nil, nil, configErr("airfoil: CST weights of both surfaces are required; got %d upper and %d lower\n", len(o.Upper), len(o.Lower))
	}
	xc := make([]float64, npts)
	for i, b := range utl.LinSpace(0, math.Pi, npts) {
		xc[i] = 0.5 * (1 - math.Cos(b))
	}
	xc[npts-1] = 1
	wu, wl := o.surfaces()
	yu := make([]float64, npts)
	yl := make([]float64, npts)
	for i, xx := range xc {
		c := math.Pow(xx, cstN1) * math.Pow(1-xx, cstN2)
		yu[i] = c*bernstein(wu, xx) + xx*o.TE/2
		yl[i] = -c*bernstein(wl, xx) - xx*o.TE/2
	}
	return loop(xc, yu, xc, yl)
}

// surfaces returns the weights of the upper and lower surfaces
//  The surface with the larger mean height is taken as the upper one; weight sets given
//  upside down are swapped.
func (o *CST) surfaces() (wu, wl []float64) {
	hl := make([]float64, len(o.Lower))
	for i, w := range o.Lower {
		hl[i] = -w
	}
	if stat.Mean(hl, nil) < stat.Mean(o.Upper, nil) {
		return o.Upper, o.Lower
	}
	wl = make([]float64, len(o.Upper))
	for i, w := range o.Upper {
		wl[i] = -w
	}
	return hl, wl
}

// bernstein computes the shape function Σ w_i K_i x^i (1-x)^(n-i)
func bernstein(w []float64, x float64) (s float64) {
	n := len(w) - 1
	for i, wi := range w {
		k := float64(combin.Binomial(n, i))
		s += wi * k * math.Pow(x, float64(i)) * math.Pow(1-x, float64(n-i))
	}
	return
}
