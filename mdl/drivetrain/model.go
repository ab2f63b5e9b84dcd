// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package drivetrain implements models for the efficiency of drivetrains
//  The efficiency is a rational function of the normalised power Pbar = P/Prated:
//    eff = 1 - (constant/Pbar + linear + quadratic·Pbar)
//  Pbar is passed through a smooth absolute value and a smooth minimum with 1 so that
//  electrical power is continuously differentiable for motoring and above-rated points.
//  References:
//   [1] Fingersh L, Hand M and Laxson A (2006) Wind turbine design cost and scaling model,
//       NREL/TP-500-40566
package drivetrain

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/rotorse/jac"
)

// Model defines drivetrain efficiency models
type Model interface {
	Init(prms dbf.Params) error                                               // Init initialises this structure
	GetPrms(example bool) dbf.Params                                          // gets (an example) of parameters
	Efficiency(aeroPower, ratedPower float64) (eff, dEdPa, dEdPr float64)     // efficiency and its derivatives
	Power(aeroPower []float64, ratedPower float64) ([]float64, *jac.Jacobian) // electrical power and ∂power/∂{aeroPower,ratedPower}
}

// New drivetrain model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'drivetrain' database", name)
	}
	return allocator(), nil
}

// Names returns the available models
func Names() []string {
	return []string{"geared", "single_stage", "multi_drive", "pm_direct_drive"}
}

// allocators holds all available models
var allocators = map[string]func() Model{}
