// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"math"
	"strconv"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/interp"
)

// thickness distribution with closed trailing edge
var nacaA = []float64{0.2969, -0.1260, -0.3516, 0.2843, -0.1036}

// standard 5-digit mean lines: position of max camber, m and k1
var (
	naca5P  = []float64{0.05, 0.10, 0.15, 0.20, 0.25}
	naca5M  = []float64{0.0580, 0.1260, 0.2025, 0.2900, 0.3910}
	naca5K1 = []float64{361.4, 51.64, 15.957, 6.643, 3.230}
)

// coordinates generates the closed loop TE → upper → LE → lower → TE
func (o *NACA) coordinates(npts int) (x, y []float64, err error) {
	d := make([]int, len(o.Digits))
	for i, c := range o.Digits {
		v, e := strconv.Atoi(string(c))
		if e != nil {
			return nil, nil, configErr("airfoil: NACA designation %q must contain digits only\n", o.Digits)
		}
		d[i] = v
	}
	var camber func(x float64) (yc, dyc float64)
	var t float64
	switch len(d) {
	case 4:
		m, p := float64(d[0])/100.0, float64(d[1])/10.0
		t = float64(10*d[2]+d[3]) / 100.0
		camber = func(x float64) (yc, dyc float64) {
			if m == 0 || p == 0 {
				return
			}
			if x < p {
				return m / (p * p) * (2*p*x - x*x), 2 * m / (p * p) * (p - x)
			}
			q := (1 - p) * (1 - p)
			return m / q * (1 - 2*p + 2*p*x - x*x), 2 * m / q * (p - x)
		}
	case 5:
		if d[2] != 0 {
			return nil, nil, configErr("airfoil: reflexed NACA mean lines such as %q are not available\n", o.Digits)
		}
		if d[1] < 1 || d[1] > 5 {
			return nil, nil, configErr("airfoil: NACA %q: second digit must be within [1,5]\n", o.Digits)
		}
		scale := 0.15 * float64(d[0]) / 0.3
		p := float64(d[1]) / 20.0
		var pm, pk interp.PiecewiseLinear
		pm.Fit(naca5P, naca5M)
		pk.Fit(naca5P, naca5K1)
		m, k1 := pm.Predict(p), pk.Predict(p)
		t = float64(10*d[3]+d[4]) / 100.0
		camber = func(x float64) (yc, dyc float64) {
			if x < m {
				yc = k1 / 6 * (x*x*x - 3*m*x*x + m*m*(3-m)*x)
				dyc = k1 / 6 * (3*x*x - 6*m*x + m*m*(3-m))
			} else {
				yc = k1 * m * m * m / 6 * (1 - x)
				dyc = -k1 * m * m * m / 6
			}
			return scale * yc, scale * dyc
		}
	default:
		return nil, nil, configErr("airfoil: NACA designation %q must have 4 or 5 digits\n", o.Digits)
	}
	if t <= 0 {
		return nil, nil, configErr("airfoil: NACA %q has zero thickness\n", o.Digits)
	}

	// cosine spacing
	β := utl.LinSpace(0, math.Pi, npts)
	xu, yu := make([]float64, npts), make([]float64, npts)
	xl, yl := make([]float64, npts), make([]float64, npts)
	for i, b := range β {
		xc := 0.5 * (1 - math.Cos(b))
		yt := 5 * t * (nacaA[0]*math.Sqrt(xc) + xc*(nacaA[1]+xc*(nacaA[2]+xc*(nacaA[3]+xc*nacaA[4]))))
		yc, dyc := camber(xc)
		θ := math.Atan(dyc)
		xu[i], yu[i] = xc-yt*math.Sin(θ), yc+yt*math.Cos(θ)
		xl[i], yl[i] = xc+yt*math.Sin(θ), yc-yt*math.Cos(θ)
	}
	return loop(xu, yu, xl, yl)
}

// loop joins surfaces given from LE to TE into TE → upper → LE → lower → TE
func loop(xu, yu, xl, yl []float64) (x, y []float64, err error) {
	n := len(xu)
	x = make([]float64, 0, 2*n-1)
	y = make([]float64, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- {
		x = append(x, xu[i])
		y = append(y, yu[i])
	}
	for i := 1; i < n; i++ {
		x = append(x, xl[i])
		y = append(y, yl[i])
	}
	return
}
