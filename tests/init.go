// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests holds reference data and helpers shared by the tests of other packages
package tests

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/num/dual"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Blade holds the reference 5MW blade at 17 stations
type Blade struct {
	R, Chord, Theta    []float64
	Rhub, Rtip         float64
	Precone, Tilt, Yaw float64
	HubHt, ShearExp    float64
	B                  int
	Rho, Mu            float64
}

// Blade5MW returns the NREL 5MW reference blade
func Blade5MW() *Blade {
	return &Blade{
		R: []float64{2.8667, 5.6000, 8.3333, 11.7500, 15.8500, 19.9500, 24.0500,
			28.1500, 32.2500, 36.3500, 40.4500, 44.5500, 48.6500, 52.7500,
			56.1667, 58.9000, 61.6333},
		Chord: []float64{3.542, 3.854, 4.167, 4.557, 4.652, 4.458, 4.249, 4.007, 3.748,
			3.502, 3.256, 3.010, 2.764, 2.518, 2.313, 2.086, 1.419},
		Theta: []float64{13.308, 13.308, 13.308, 13.308, 11.480, 10.162, 9.011, 7.795,
			6.544, 5.361, 4.188, 3.125, 2.319, 1.526, 0.863, 0.370, 0.106},
		Rhub:     1.5,
		Rtip:     63.0,
		Precone:  2.5,
		Tilt:     5.0,
		Yaw:      0.0,
		HubHt:    90.0,
		ShearExp: 0.2,
		B:        3,
		Rho:      1.225,
		Mu:       1.81206e-5,
	}
}

// SmoothPolar is a smooth analytic airfoil
//  cl = Slope/2·sin(2α) and cd = Cd0 + K·sin²α + Cf/√Re
type SmoothPolar struct {
	Slope float64 // lift slope at zero incidence (1/rad)
	Cd0   float64 // profile drag
	K     float64 // drag rise
	Cf    float64 // Reynolds number dependence
}

// NewSmoothPolar returns a thin-airfoil-like polar
func NewSmoothPolar() *SmoothPolar {
	return &SmoothPolar{Slope: 2 * math.Pi * 0.9, Cd0: 0.006, K: 0.6, Cf: 2.0}
}

// EvaluateDual computes lift and drag at alpha (rad) and Re
func (o *SmoothPolar) EvaluateDual(alpha, Re dual.Number) (cl, cd dual.Number) {
	cl = dual.Scale(o.Slope/2, dual.Sin(dual.Scale(2, alpha)))
	s := dual.Sin(alpha)
	cd = dual.Add(dual.Number{Real: o.Cd0}, dual.Scale(o.K, dual.Mul(s, s)))
	cd = dual.Add(cd, dual.Scale(o.Cf, dual.Inv(dual.Sqrt(Re))))
	return
}
