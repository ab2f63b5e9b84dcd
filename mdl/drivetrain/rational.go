// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivetrain

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/rotorse/jac"
)

// Rational implements the three-coefficient efficiency curve
type Rational struct {

	// parameters
	Constant  float64 // loss independent of load
	Linear    float64 // loss proportional to load
	Quadratic float64 // loss proportional to load squared
	Dx        float64 // half-width of smooth absolute value
	Pct       float64 // relative offset of smooth minimum

	// defaults
	c0, l0, q0 float64
}

// add models to factory
func init() {
	allocators["geared"] = func() Model { return newRational(0.01289, 0.08510, 0.0) }
	allocators["single_stage"] = func() Model { return newRational(0.01331, 0.03655, 0.06107) }
	allocators["multi_drive"] = func() Model { return newRational(0.01547, 0.04463, 0.05790) }
	allocators["pm_direct_drive"] = func() Model { return newRational(0.01007, 0.02000, 0.06899) }
}

func newRational(c, l, q float64) *Rational {
	return &Rational{Constant: c, Linear: l, Quadratic: q, Dx: 0.01, Pct: 0.01, c0: c, l0: l, q0: q}
}

// Init initialises model. Missing parameters keep the values of the curve family
func (o *Rational) Init(prms dbf.Params) (err error) {
	o.Constant, o.Linear, o.Quadratic = o.c0, o.l0, o.q0
	o.Dx, o.Pct = 0.01, 0.01
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "constant":
			o.Constant = p.V
		case "linear":
			o.Linear = p.V
		case "quadratic":
			o.Quadratic = p.V
		case "dx":
			o.Dx = p.V
		case "pct":
			o.Pct = p.V
		default:
			return chk.Err("drivetrain: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Dx <= 0 || o.Pct <= 0 || o.Pct >= 1 {
		return chk.Err("drivetrain: dx=%g must be positive and pct=%g must be in (0,1)\n", o.Dx, o.Pct)
	}
	if o.Constant < 0 {
		return chk.Err("drivetrain: constant loss %g must not be negative\n", o.Constant)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Rational) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		{N: "constant", V: o.c0},
		{N: "linear", V: o.l0},
		{N: "quadratic", V: o.q0},
		{N: "dx", V: 0.01},
		{N: "pct", V: 0.01},
	}
}

// Efficiency computes the efficiency and its derivatives w.r.t. aerodynamic and rated power
//  All results are NaN when ratedPower is not positive.
func (o Rational) Efficiency(aeroPower, ratedPower float64) (eff, dEdPa, dEdPr float64) {
	if !(ratedPower > 0) {
		nan := math.NaN()
		return nan, nan, nan
	}
	P0 := aeroPower / ratedPower
	P1, dP1 := SmoothAbs(P0, o.Dx)
	P, dP, _ := SmoothMin(P1, 1.0, o.Pct)
	eff = 1.0 - (o.Constant/P + o.Linear + o.Quadratic*P)
	d := dP * dP1 * (o.Constant/(P*P) - o.Quadratic)
	dEdPa = d / ratedPower
	dEdPr = -d * aeroPower / (ratedPower * ratedPower)
	return
}

// Power computes the electrical power and ∂power/∂{aeroPower,ratedPower}
func (o Rational) Power(aeroPower []float64, ratedPower float64) (power []float64, J *jac.Jacobian) {
	n := len(aeroPower)
	power = make([]float64, n)
	J = jac.New([]jac.Var{{Name: "power", Size: n}}, []jac.Var{{Name: "aeroPower", Size: n}, {Name: "ratedPower", Size: 1}})
	for i, Pa := range aeroPower {
		eff, dEdPa, dEdPr := o.Efficiency(Pa, ratedPower)
		power[i] = Pa * eff
		J.Set("power", "aeroPower", i, i, eff+Pa*dEdPa)
		J.Set("power", "ratedPower", i, 0, Pa*dEdPr)
	}
	return
}
