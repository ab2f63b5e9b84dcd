// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the blade planform: radial stations with chord, twist and
// precurve obtained from a few control points, and the projected rotor radius
package geom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/rotorse/akima"
	"github.com/cpmech/rotorse/jac"
	"gonum.org/v1/gonum/num/dual"
)

// Geometry holds blade stations
type Geometry struct {
	R        []float64     // radius of stations (m)
	Chord    []float64     // chord (m)
	Theta    []float64     // twist (deg)
	Precurve []float64     // precurve (m); currently always zero
	J        *jac.Jacobian // ∂{r,chord,theta,precurve}/∂{r_af,r_max_chord,Rhub,Rtip,chord_sub,theta_sub}
}

// Spline computes blade stations from control points
//  chord abscissae: [Rhub, linspace(rmax, Rtip, nc-1)] with rmax = Rhub + (Rtip-Rhub)·RMaxChord
//  twist abscissae: linspace(rcyl, Rtip, nt) with rcyl = r[IdxCylinder]
//  stations inboard of IdxCylinder have the twist of station IdxCylinder
type Spline struct {
	RAf         []float64 // station positions as a fraction of the blade length, in [0,1]
	IdxCylinder int       // index of the first station outside the cylindrical root
	RMaxChord   float64   // location of max chord as a fraction of the blade length
	Rhub        float64   // hub radius (m)
	Rtip        float64   // tip radius (m)
	ChordSub    []float64 // chord at control points (m)
	ThetaSub    []float64 // twist at control points (deg)
	PrecurveSub []float64 // precurve at control points; ignored: precurve is forced to zero
	Delta       float64   // smoothing of Akima weights; 0 means default
}

// Check validates control data
func (o *Spline) Check() error {
	n := len(o.RAf)
	if n < 2 {
		return chk.Err("geom: at least 2 stations are required; %d given\n", n)
	}
	for i := 0; i < n; i++ {
		if o.RAf[i] < 0 || o.RAf[i] > 1 {
			return chk.Err("geom: station fraction r_af[%d]=%g is outside [0,1]\n", i, o.RAf[i])
		}
		if i > 0 && o.RAf[i] <= o.RAf[i-1] {
			return chk.Err("geom: station fractions must be strictly increasing; r_af[%d]=%g ≤ r_af[%d]=%g\n", i, o.RAf[i], i-1, o.RAf[i-1])
		}
	}
	if o.Rtip <= o.Rhub || o.Rhub < 0 {
		return chk.Err("geom: invalid radii: Rhub=%g and Rtip=%g\n", o.Rhub, o.Rtip)
	}
	if len(o.ChordSub) < 3 {
		return chk.Err("geom: at least 3 chord control points are required; %d given\n", len(o.ChordSub))
	}
	if len(o.ThetaSub) < 2 {
		return chk.Err("geom: at least 2 twist control points are required; %d given\n", len(o.ThetaSub))
	}
	if o.RMaxChord <= 0 || o.RMaxChord >= 1 {
		return chk.Err("geom: r_max_chord=%g must be within (0,1)\n", o.RMaxChord)
	}
	if o.IdxCylinder < 0 || o.IdxCylinder >= n-1 {
		return chk.Err("geom: cylinder index %d is outside [0,%d)\n", o.IdxCylinder, n-1)
	}
	return nil
}

// Inputs returns the declared inputs of the Jacobian
func (o *Spline) Inputs() []jac.Var {
	return []jac.Var{
		{Name: "r_af", Size: len(o.RAf)},
		{Name: "r_max_chord", Size: 1},
		{Name: "Rhub", Size: 1},
		{Name: "Rtip", Size: 1},
		{Name: "chord_sub", Size: len(o.ChordSub)},
		{Name: "theta_sub", Size: len(o.ThetaSub)},
	}
}

// Calc computes stations and the exact Jacobian
func (o *Spline) Calc() (g *Geometry, err error) {
	if err = o.Check(); err != nil {
		return
	}
	n := len(o.RAf)
	g = &Geometry{Precurve: make([]float64, n)}
	outs := []jac.Var{{Name: "r", Size: n}, {Name: "chord", Size: n}, {Name: "theta", Size: n}, {Name: "precurve", Size: n}}
	ins := o.Inputs()
	g.J = jac.New(outs, ins)

	// values
	x := o.pack()
	r, chord, theta := o.eval(x)
	g.R, g.Chord, g.Theta = reals(r), reals(chord), reals(theta)

	// one dual pass per input component
	k := 0
	for _, in := range ins {
		for j := 0; j < in.Size; j++ {
			x[k].Emag = 1
			r, chord, theta = o.eval(x)
			x[k].Emag = 0
			for i := 0; i < n; i++ {
				g.J.Set("r", in.Name, i, j, r[i].Emag)
				g.J.Set("chord", in.Name, i, j, chord[i].Emag)
				g.J.Set("theta", in.Name, i, j, theta[i].Emag)
			}
			k++
		}
	}
	return
}

// pack collects all inputs in the order of Inputs
func (o *Spline) pack() (x []dual.Number) {
	x = make([]dual.Number, 0, len(o.RAf)+3+len(o.ChordSub)+len(o.ThetaSub))
	for _, v := range o.RAf {
		x = append(x, dual.Number{Real: v})
	}
	x = append(x, dual.Number{Real: o.RMaxChord}, dual.Number{Real: o.Rhub}, dual.Number{Real: o.Rtip})
	for _, v := range o.ChordSub {
		x = append(x, dual.Number{Real: v})
	}
	for _, v := range o.ThetaSub {
		x = append(x, dual.Number{Real: v})
	}
	return
}

// eval computes stations from packed inputs
func (o *Spline) eval(x []dual.Number) (r, chord, theta []dual.Number) {

	// unpack
	n, nc, nt := len(o.RAf), len(o.ChordSub), len(o.ThetaSub)
	raf := x[:n]
	rmaxChord, rhub, rtip := x[n], x[n+1], x[n+2]
	chordSub := x[n+3 : n+3+nc]
	thetaSub := x[n+3+nc : n+3+nc+nt]

	// stations
	span := dual.Sub(rtip, rhub)
	r = make([]dual.Number, n)
	for i := 0; i < n; i++ {
		r[i] = dual.Add(rhub, dual.Mul(span, raf[i]))
	}

	// chord
	rmax := dual.Add(rhub, dual.Mul(span, rmaxChord))
	rc := append([]dual.Number{rhub}, linspace(rmax, rtip, nc-1)...)
	chord = akima.InterpDual(r, rc, chordSub, o.Delta)

	// twist
	rt := linspace(r[o.IdxCylinder], rtip, nt)
	theta = akima.InterpDual(r, rt, thetaSub, o.Delta)
	for i := 0; i < o.IdxCylinder; i++ {
		theta[i] = theta[o.IdxCylinder]
	}
	return
}

// linspace returns n ≥ 2 equally spaced dual numbers
func linspace(a, b dual.Number, n int) (res []dual.Number) {
	res = make([]dual.Number, n)
	d := dual.Sub(b, a)
	for i := 0; i < n; i++ {
		res[i] = dual.Add(a, dual.Scale(float64(i)/float64(n-1), d))
	}
	res[n-1] = b
	return
}

func reals(v []dual.Number) (res []float64) {
	res = make([]float64, len(v))
	for i, x := range v {
		res[i] = x.Real
	}
	return
}
