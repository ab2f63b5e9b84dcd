// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/jac"
	"gonum.org/v1/gonum/num/dual"
)

// Performance holds power, thrust and torque at a set of operating points
type Performance struct {
	P []float64     // power (W)
	T []float64     // thrust (N)
	Q []float64     // torque (N·m)
	J *jac.Jacobian // ∂{P,T,Q}/∂inputs; angles per degree and rotor speed per rpm
}

// solution holds the converged inflow angles of one operating point
type solution struct {
	sweep    bool        // integrate over azimuthal sectors; otherwise use the azimuth of the operating point
	rotating bool        // rotor speed is not zero
	phi      [][]float64 // [sector][station] inflow angle (rad)
	dRdphi   [][]float64 // [sector][station] ∂residual/∂φ at the root
}

// PerfInputs returns the input variables of the performance Jacobian
func (o *Solver) PerfInputs(npts int) []jac.Var {
	n := len(o.R)
	return []jac.Var{
		{Name: "precone", Size: 1},
		{Name: "tilt", Size: 1},
		{Name: "hubHt", Size: 1},
		{Name: "Rhub", Size: 1},
		{Name: "Rtip", Size: 1},
		{Name: "yaw", Size: 1},
		{Name: "Uinf", Size: npts},
		{Name: "Omega", Size: npts},
		{Name: "pitch", Size: npts},
		{Name: "r", Size: n},
		{Name: "chord", Size: n},
		{Name: "theta", Size: n},
		{Name: "precurve", Size: n},
		{Name: "precurveTip", Size: 1},
	}
}

// Evaluate computes power, thrust and torque with derivatives at npts operating points
//  Init is called first; hence data changed since the last call is checked again.
func (o *Solver) Evaluate(Uinf, Omega, Pitch []float64) (res *Performance, err error) {
	if err = o.Init(); err != nil {
		return
	}
	npts := len(Uinf)
	if npts < 1 || len(Omega) != npts || len(Pitch) != npts {
		return nil, chk.Err("bem: sizes of Uinf (%d), Omega (%d) and pitch (%d) must be equal and positive\n", npts, len(Omega), len(Pitch))
	}
	outs := []jac.Var{{Name: "P", Size: npts}, {Name: "T", Size: npts}, {Name: "Q", Size: npts}}
	res = &Performance{
		P: make([]float64, npts),
		T: make([]float64, npts),
		Q: make([]float64, npts),
		J: jac.New(outs, o.PerfInputs(npts)),
	}

	// each point writes to its own entries only
	errs := make([]error, npts)
	if o.Parallel && npts > 1 {
		var wg sync.WaitGroup
		for k := 0; k < npts; k++ {
			wg.Add(1)
			go func(k int) {
				defer wg.Done()
				errs[k] = o.point(res, k, OperatingPoint{Uinf: Uinf[k], Omega: Omega[k], Pitch: Pitch[k]})
			}(k)
		}
		wg.Wait()
	} else {
		for k := 0; k < npts; k++ {
			errs[k] = o.point(res, k, OperatingPoint{Uinf: Uinf[k], Omega: Omega[k], Pitch: Pitch[k]})
		}
	}
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return
}

// point evaluates operating point k and fills row k of each output
func (o *Solver) point(res *Performance, k int, op OperatingPoint) (err error) {
	sol, err := o.solve(k, op, true)
	if err != nil {
		return
	}
	P, T, Q := o.integrate(o.seed(op, "", 0), sol)
	res.P[k], res.T[k], res.Q[k] = P.Real, T.Real, Q.Real
	for _, v := range res.J.Ins {
		pointwise := v.Name == "Uinf" || v.Name == "Omega" || v.Name == "pitch"
		for j := 0; j < v.Size; j++ {
			if pointwise && j != k {
				continue
			}
			idx := j
			if pointwise {
				idx = 0
			}
			P, T, Q = o.integrate(o.seed(op, v.Name, idx), sol)
			res.J.Set("P", v.Name, k, j, P.Emag)
			res.J.Set("T", v.Name, k, j, T.Emag)
			res.J.Set("Q", v.Name, k, j, Q.Emag)
		}
	}
	if io.Verbose {
		io.Pf("bem: point %d: U=%g Ω=%g pitch=%g  P=%g T=%g Q=%g\n", k, op.Uinf, op.Omega, op.Pitch, res.P[k], res.T[k], res.Q[k])
	}
	return
}

// integrate returns power, thrust and torque of the whole rotor
func (o *Solver) integrate(x *inputs, sol *solution) (P, T, Q dual.Number) {
	Np, Tp := o.distributed(x, sol)
	for j := range Np {
		t, q := o.thrustTorque(x, Np[j], Tp[j])
		T = dual.Add(T, t)
		Q = dual.Add(Q, q)
	}
	f := float64(o.B) / float64(len(Np))
	T, Q = dual.Scale(f, T), dual.Scale(f, Q)
	P = dual.Mul(Q, dual.Scale(rpm2rad, x.omega))
	return
}

// azimuths returns the azimuth (deg) of each sector
func (o *Solver) azimuths(x *inputs, sweep bool) (res []dual.Number) {
	if !sweep {
		return []dual.Number{x.az}
	}
	nsec := o.nsector()
	res = make([]dual.Number, nsec)
	for j := 0; j < nsec; j++ {
		res[j].Real = 360.0 * float64(j) / float64(nsec)
	}
	return
}

// solve finds the inflow angle at every station and sector without derivatives
func (o *Solver) solve(k int, op OperatingPoint, sweep bool) (sol *solution, err error) {
	x := o.seed(op, "", 0)
	c := newCurvature(x.r, x.precurve, rad(x.precone))
	az := o.azimuths(x, sweep)
	n := len(o.R)
	sol = &solution{
		sweep:    sweep,
		rotating: op.Omega != 0,
		phi:      make([][]float64, len(az)),
		dRdphi:   make([][]float64, len(az)),
	}
	for j := range az {
		sol.phi[j] = make([]float64, n)
		sol.dRdphi[j] = make([]float64, n)
		for i := 0; i < n; i++ {
			if !sol.rotating {
				sol.phi[j][i] = math.Pi / 2
				continue
			}
			sec := o.section(x, c, i, az[j])
			φ, e := o.inflow(sec)
			if e != nil {
				e.Station, e.Sector, e.Point = i, j, k
				return nil, e
			}
			fz, _, _ := o.residual(dual.Number{Real: φ, Emag: 1}, sec)
			sol.phi[j][i], sol.dRdphi[j][i] = φ, fz.Emag
		}
	}
	return
}

// inflow brackets and finds the root of the residual
func (o *Solver) inflow(sec *section) (φ float64, err *ConvergenceError) {
	f := func(φ float64) float64 {
		fz, _, _ := o.residual(dual.Number{Real: φ}, sec)
		return fz.Real
	}
	const ε = 1e-6
	lo, hi := ε, math.Pi/2
	flo, fhi := f(lo), f(hi)
	if !(flo*fhi <= 0) {
		if f(-math.Pi/4) < 0 && f(-ε) > 0 {
			lo, hi = -math.Pi/4, -ε
		} else {
			lo, hi = math.Pi/2, math.Pi-ε
		}
		flo, fhi = f(lo), f(hi)
		if !(flo*fhi <= 0) {
			return 0, &ConvergenceError{Resid: fhi, Reason: "no bracket"}
		}
	}
	φ, it, ok := brent(f, lo, hi, flo, fhi, o.MaxIter)
	if !ok {
		return 0, &ConvergenceError{Iter: it, Resid: f(φ), Reason: "iteration cap"}
	}
	return φ, nil
}

// distributed computes loads per unit length with derivatives in the seeded direction
//  The derivative of the inflow angle follows from the residual: dφ = -∂R/∂x / ∂R/∂φ
func (o *Solver) distributed(x *inputs, sol *solution) (Np, Tp [][]dual.Number) {
	c := newCurvature(x.r, x.precurve, rad(x.precone))
	az := o.azimuths(x, sol.sweep)
	n := len(o.R)
	Np = make([][]dual.Number, len(az))
	Tp = make([][]dual.Number, len(az))
	for j := range az {
		Np[j] = make([]dual.Number, n)
		Tp[j] = make([]dual.Number, n)
		for i := 0; i < n; i++ {
			sec := o.section(x, c, i, az[j])
			φ := dual.Number{Real: sol.phi[j][i]}
			if sol.rotating {
				fz, _, _ := o.residual(φ, sec)
				if sol.dRdphi[j][i] != 0 {
					φ.Emag = -fz.Emag / sol.dRdphi[j][i]
				}
			}
			Np[j][i], Tp[j][i] = o.loads(φ, sec, sol.rotating)
		}
	}
	return
}
