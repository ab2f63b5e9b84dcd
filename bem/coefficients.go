// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/rotorse/jac"
)

// Coefficients holds nondimensional power, thrust and torque
type Coefficients struct {
	CP []float64     // P / (q·U·A)
	CT []float64     // T / (q·A)
	CQ []float64     // Q / (q·A·R)
	J  *jac.Jacobian // ∂{CP,CT,CQ}/∂{P,T,Q,Uinf,R}
}

// Coefficients normalises perf by the dynamic pressure q = ½ρU² and the disc area A = πR²
//  R is the radius projected on the rotor plane.
func (o *Solver) Coefficients(perf *Performance, Uinf []float64, R float64) (res *Coefficients, err error) {
	npts := len(Uinf)
	if len(perf.P) != npts {
		return nil, chk.Err("bem: number of wind speeds (%d) must equal number of points (%d)\n", npts, len(perf.P))
	}
	if R <= 0 {
		return nil, chk.Err("bem: projected radius must be positive; R=%g is invalid\n", R)
	}
	outs := []jac.Var{{Name: "CP", Size: npts}, {Name: "CT", Size: npts}, {Name: "CQ", Size: npts}}
	ins := []jac.Var{{Name: "P", Size: npts}, {Name: "T", Size: npts}, {Name: "Q", Size: npts}, {Name: "Uinf", Size: npts}, {Name: "R", Size: 1}}
	res = &Coefficients{
		CP: make([]float64, npts),
		CT: make([]float64, npts),
		CQ: make([]float64, npts),
		J:  jac.New(outs, ins),
	}
	A := math.Pi * R * R
	for k, U := range Uinf {
		if U <= 0 {
			return nil, chk.Err("bem: wind speed must be positive; Uinf[%d]=%g is invalid\n", k, U)
		}
		q := 0.5 * o.Rho * U * U
		res.CP[k] = perf.P[k] / (q * A * U)
		res.CT[k] = perf.T[k] / (q * A)
		res.CQ[k] = perf.Q[k] / (q * A * R)

		// d ln(q·A) = 2 dU/U + 2 dR/R
		res.J.Set("CP", "P", k, k, 1/(q*A*U))
		res.J.Set("CT", "T", k, k, 1/(q*A))
		res.J.Set("CQ", "Q", k, k, 1/(q*A*R))
		res.J.Set("CP", "Uinf", k, k, -3*res.CP[k]/U)
		res.J.Set("CT", "Uinf", k, k, -2*res.CT[k]/U)
		res.J.Set("CQ", "Uinf", k, k, -2*res.CQ[k]/U)
		res.J.Set("CP", "R", k, 0, -2*res.CP[k]/R)
		res.J.Set("CT", "R", k, 0, -2*res.CT[k]/R)
		res.J.Set("CQ", "R", k, 0, -3*res.CQ[k]/R)
	}
	return
}
