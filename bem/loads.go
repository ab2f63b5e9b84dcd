// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"github.com/cpmech/rotorse/jac"
)

// Loads holds distributed loads along one blade at a given azimuth
//  Arrays include the hub and tip, where loads are zero.
type Loads struct {
	Op OperatingPoint // operating point
	R  []float64      // radius (m)
	Px []float64      // load normal to the rotor plane (N/m)
	Py []float64      // load tangent to the rotor plane (N/m)
	Pz []float64      // radial load (N/m); always zero
	J  *jac.Jacobian  // ∂loads/∂inputs
}

// LoadsInputs returns the input variables of the loads Jacobian
func (o *Solver) LoadsInputs() []jac.Var {
	n := len(o.R)
	return []jac.Var{
		{Name: "r", Size: n},
		{Name: "chord", Size: n},
		{Name: "theta", Size: n},
		{Name: "Rhub", Size: 1},
		{Name: "Rtip", Size: 1},
		{Name: "hubHt", Size: 1},
		{Name: "precone", Size: 1},
		{Name: "tilt", Size: 1},
		{Name: "yaw", Size: 1},
		{Name: "Uinf", Size: 1},
		{Name: "Omega", Size: 1},
		{Name: "pitch", Size: 1},
		{Name: "azimuth", Size: 1},
		{Name: "precurve", Size: n},
	}
}

// DistributedLoads computes the loads of one blade at the azimuth of op
//  Init is called first.
func (o *Solver) DistributedLoads(op OperatingPoint) (res *Loads, err error) {
	if err = o.Init(); err != nil {
		return
	}
	sol, err := o.solve(0, op, false)
	if err != nil {
		return
	}
	n := len(o.R)
	m := n + 2
	outs := []jac.Var{
		{Name: "loads.r", Size: m},
		{Name: "loads.Px", Size: m},
		{Name: "loads.Py", Size: m},
		{Name: "loads.Pz", Size: m},
		{Name: "loads.V", Size: 1},
		{Name: "loads.Omega", Size: 1},
		{Name: "loads.pitch", Size: 1},
		{Name: "loads.azimuth", Size: 1},
	}
	res = &Loads{
		Op: op,
		R:  make([]float64, m),
		Px: make([]float64, m),
		Py: make([]float64, m),
		Pz: make([]float64, m),
		J:  jac.New(outs, o.LoadsInputs()),
	}

	// values
	res.R[0], res.R[m-1] = o.Rhub, o.Rtip
	copy(res.R[1:], o.R)
	Np, Tp := o.distributed(o.seed(op, "", 0), sol)
	for i := 0; i < n; i++ {
		res.Px[i+1] = Np[0][i].Real
		res.Py[i+1] = -Tp[0][i].Real
	}

	// derivatives
	for _, v := range res.J.Ins {
		for j := 0; j < v.Size; j++ {
			Np, Tp = o.distributed(o.seed(op, v.Name, j), sol)
			for i := 0; i < n; i++ {
				res.J.Set("loads.Px", v.Name, i+1, j, Np[0][i].Emag)
				res.J.Set("loads.Py", v.Name, i+1, j, -Tp[0][i].Emag)
			}
		}
	}
	for i := 0; i < n; i++ {
		res.J.Set("loads.r", "r", i+1, i, 1)
	}
	res.J.Set("loads.r", "Rhub", 0, 0, 1)
	res.J.Set("loads.r", "Rtip", m-1, 0, 1)
	res.J.Set("loads.V", "Uinf", 0, 0, 1)
	res.J.Set("loads.Omega", "Omega", 0, 0, 1)
	res.J.Set("loads.pitch", "pitch", 0, 0, 1)
	res.J.Set("loads.azimuth", "azimuth", 0, 0, 1)
	return
}
