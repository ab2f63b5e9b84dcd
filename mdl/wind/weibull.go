// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wind

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/stat/distuv"
)

// Weibull implements F(x) = 1 - exp(-(x/A)^k)
type Weibull struct {
	A float64 // scale factor
	K float64 // shape factor
}

// add model to factory
func init() {
	allocators["weibull"] = func() Model { return new(Weibull) }
}

// Init initialises model
func (o *Weibull) Init(prms dbf.Params) (err error) {
	o.K = 2
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a":
			o.A = p.V
		case "k":
			o.K = p.V
		default:
			return chk.Err("weibull: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.A <= 0 || o.K <= 0 {
		return chk.Err("weibull: A=%g and k=%g must be positive\n", o.A, o.K)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Weibull) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		{N: "A", V: 8.0},
		{N: "k", V: 2.0},
	}
}

// Param returns "A"
func (o Weibull) Param() string { return "A" }

// F computes the CDF
func (o Weibull) F(x float64) float64 {
	return o.dist().CDF(x)
}

// Dx computes ∂F/∂x; i.e. the density
//  At x = 0 the derivative from the right is returned: k/A·(x/A)^(k-1) → +Inf, 1/A or 0
//  for k < 1, k = 1 and k > 1.
func (o Weibull) Dx(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x == 0 {
		switch {
		case o.K < 1:
			return math.Inf(1)
		case o.K == 1:
			return 1 / o.A
		}
		return 0
	}
	return o.dist().Prob(x)
}

// Dprm computes ∂F/∂A
func (o Weibull) Dprm(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -x / o.A * o.dist().Prob(x)
}

func (o Weibull) dist() distuv.Weibull {
	return distuv.Weibull{K: o.K, Lambda: o.A}
}

// WeibullMean implements the Weibull CDF with scale A = xbar/Γ(1+1/k)
type WeibullMean struct {
	Xbar float64 // mean value
	K    float64 // shape factor
}

// add model to factory
func init() {
	allocators["weibull-mean"] = func() Model { return new(WeibullMean) }
}

// Init initialises model
func (o *WeibullMean) Init(prms dbf.Params) (err error) {
	o.K = 2
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "xbar":
			o.Xbar = p.V
		case "k":
			o.K = p.V
		default:
			return chk.Err("weibull-mean: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Xbar <= 0 || o.K <= 0 {
		return chk.Err("weibull-mean: xbar=%g and k=%g must be positive\n", o.Xbar, o.K)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o WeibullMean) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		{N: "xbar", V: 8.0},
		{N: "k", V: 2.0},
	}
}

// Param returns "xbar"
func (o WeibullMean) Param() string { return "xbar" }

// Scale returns A
func (o WeibullMean) Scale() float64 {
	return o.Xbar / math.Gamma(1.0+1.0/o.K)
}

func (o WeibullMean) F(x float64) float64    { return o.weibull().F(x) }
func (o WeibullMean) Dx(x float64) float64   { return o.weibull().Dx(x) }
func (o WeibullMean) Dprm(x float64) float64 { return o.weibull().Dprm(x) * o.Scale() / o.Xbar }

func (o WeibullMean) weibull() Weibull {
	return Weibull{A: o.Scale(), K: o.K}
}
