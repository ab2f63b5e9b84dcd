// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wind implements cumulative distribution functions of wind speed
package wind

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/rotorse/jac"
)

// Model defines a cumulative distribution function F(x) of wind speed x
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Param() string                   // name of the differentiable parameter
	F(x float64) float64             // F returns the probability of a speed below x
	Dx(x float64) float64            // Dx returns ∂F/∂x
	Dprm(x float64) float64          // Dprm returns ∂F/∂(scale or mean)
}

// New CDF model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'wind' database", name)
	}
	return allocator(), nil
}

// Calc evaluates F at many speeds and returns ∂F/∂{x,prm}
func Calc(mdl Model, x []float64) (F []float64, J *jac.Jacobian) {
	n := len(x)
	F = make([]float64, n)
	prm := mdl.Param()
	J = jac.New([]jac.Var{{Name: "F", Size: n}}, []jac.Var{{Name: "x", Size: n}, {Name: prm, Size: 1}})
	for i, v := range x {
		F[i] = mdl.F(v)
		J.Set("F", "x", i, i, mdl.Dx(v))
		J.Set("F", prm, i, 0, mdl.Dprm(v))
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
