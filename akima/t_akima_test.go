// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package akima

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/interp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_akima01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("akima01. control points and linear data")

	xpt := []float64{0, 1, 2.5, 4, 5}
	ypt := []float64{1, 3, 2, 2.2, 0}
	o, err := New(xpt, ypt, 0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	y, _, _, _ := o.Interp(xpt)
	chk.Array(tst, "y @ control points", 1e-14, y, ypt)

	// straight line is reproduced, including extrapolation
	lin, err := New([]float64{0, 1, 3, 4}, []float64{1, 3, 7, 9}, 0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	for _, x := range []float64{-1, 0.5, 2, 3.7, 5} {
		v, d := lin.Eval(x)
		chk.Float64(tst, io.Sf("line(%g)", x), 1e-13, v, 1+2*x)
		chk.Float64(tst, io.Sf("slope(%g)", x), 1e-13, d, 2)
	}

	// two points
	two, err := New([]float64{1, 3}, []float64{2, 6}, 0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	v, d := two.Eval(2)
	chk.Float64(tst, "two points: y", 1e-15, v, 4)
	chk.Float64(tst, "two points: dy/dx", 1e-15, d, 2)
}

func Test_akima02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("akima02. errors")

	if _, err := New([]float64{1}, []float64{1}, 0); err == nil {
		tst.Errorf("one point should have failed\n")
	}
	if _, err := New([]float64{1, 2}, []float64{1}, 0); err == nil {
		tst.Errorf("size mismatch should have failed\n")
	}
	if _, err := New([]float64{1, 1, 2}, []float64{1, 2, 3}, 0); err == nil {
		tst.Errorf("repeated abscissa should have failed\n")
	}
}

func Test_akima03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("akima03. tiny smoothing equals classic Akima")

	xpt := []float64{0, 1, 2, 3, 4, 5, 6}
	ypt := []float64{0, 0.5, 2, 1.5, 1.5, 3, 1}
	o, err := New(xpt, ypt, 1e-12)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	var ref interp.AkimaSpline
	ref.Fit(xpt, ypt)
	for _, x := range utl.LinSpace(0, 6, 25) {
		v, d := o.Eval(x)
		chk.Float64(tst, io.Sf("y(%.2f)", x), 1e-12, v, ref.Predict(x))
		chk.Float64(tst, io.Sf("dydx(%.2f)", x), 1e-11, d, ref.PredictDerivative(x))
	}
}

func Test_akima04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("akima04. derivatives w.r.t control points")

	xpt := []float64{0, 0.8, 1.9, 3.1, 4}
	ypt := []float64{1, 1.3, 0.7, 0.75, -0.2}
	x := []float64{-0.3, 0.1, 0.8, 1.2, 2.6, 3.9, 4.4}
	o, err := New(xpt, ypt, 0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	_, dydx, dydxpt, dydypt := o.Interp(x)

	h := 1e-6
	for i, xi := range x {
		yp, _ := o.Eval(xi + h)
		ym, _ := o.Eval(xi - h)
		chk.AnaNum(tst, io.Sf("dy/dx @ %g", xi), 1e-7, dydx[i], (yp-ym)/(2*h), chk.Verbose)
	}
	for k := range xpt {
		for _, shiftX := range []bool{true, false} {
			xp, yp := append([]float64{}, xpt...), append([]float64{}, ypt...)
			xm, ym := append([]float64{}, xpt...), append([]float64{}, ypt...)
			if shiftX {
				xp[k] += h
				xm[k] -= h
			} else {
				yp[k] += h
				ym[k] -= h
			}
			sp, _ := New(xp, yp, 0)
			sm, _ := New(xm, ym, 0)
			for i, xi := range x {
				fp, _ := sp.Eval(xi)
				fm, _ := sm.Eval(xi)
				num := (fp - fm) / (2 * h)
				if shiftX {
					chk.AnaNum(tst, io.Sf("dy(%g)/dxpt[%d]", xi, k), 1e-7*math.Max(1, math.Abs(num)), dydxpt[i][k], num, chk.Verbose)
				} else {
					chk.AnaNum(tst, io.Sf("dy(%g)/dypt[%d]", xi, k), 1e-7*math.Max(1, math.Abs(num)), dydypt[i][k], num, chk.Verbose)
				}
			}
		}
	}
}
