// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wind

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Rayleigh implements F(x) = 1 - exp(-π/4·(x/xbar)²)
//  This is the Weibull distribution with k = 2 and A = 2·xbar/√π
type Rayleigh struct {
	Xbar float64 // mean value
}

// add model to factory
func init() {
	allocators["rayleigh"] = func() Model { return new(Rayleigh) }
}

// Init initialises model
func (o *Rayleigh) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "xbar":
			o.Xbar = p.V
		default:
			return chk.Err("rayleigh: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Xbar <= 0 {
		return chk.Err("rayleigh: xbar=%g must be positive\n", o.Xbar)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Rayleigh) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		{N: "xbar", V: 6.0},
	}
}

// Param returns "xbar"
func (o Rayleigh) Param() string { return "xbar" }

// F computes the CDF
func (o Rayleigh) F(x float64) float64 {
	if x < 0 {
		return 0
	}
	return -math.Expm1(-math.Pi / 4 * math.Pow(x/o.Xbar, 2))
}

// Dx computes ∂F/∂x
func (o Rayleigh) Dx(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pi / 2 * x / (o.Xbar * o.Xbar) * math.Exp(-math.Pi/4*math.Pow(x/o.Xbar, 2))
}

// Dprm computes ∂F/∂xbar
func (o Rayleigh) Dprm(x float64) float64 {
	return -x / o.Xbar * o.Dx(x)
}
