// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/rotorse/akima"
	"gonum.org/v1/gonum/num/dual"
)

// Table holds coefficients at one Reynolds number
type Table struct {
	Re    float64   // Reynolds number
	Alpha []float64 // angles of attack (deg); strictly increasing
	Cl    []float64 // lift coefficients
	Cd    []float64 // drag coefficients
	Cm    []float64 // moment coefficients about the quarter chord
}

// Polar holds lift, drag and moment coefficients versus angle of attack and Reynolds number
//  A Polar is read-only after NewPolar and may be shared by many goroutines.
type Polar struct {
	Tables     []*Table     // tables sorted by Reynolds number
	Correction Correction3D // rotational correction applied to the tables
	Degenerate []float64    // angles (deg) at which the viscous analysis failed

	// splines in alpha (rad)
	cl, cd []*akima.Spline
}

// NewPolar returns a new polar from tables with distinct Reynolds numbers
func NewPolar(tables ...*Table) (o *Polar, err error) {
	if len(tables) == 0 {
		return nil, chk.Err("airfoil: polar needs at least one table\n")
	}
	o = &Polar{Tables: append([]*Table{}, tables...)}
	sort.Slice(o.Tables, func(i, j int) bool { return o.Tables[i].Re < o.Tables[j].Re })
	for k, t := range o.Tables {
		if k > 0 && t.Re == o.Tables[k-1].Re {
			return nil, chk.Err("airfoil: tables must have distinct Reynolds numbers; Re=%g is repeated\n", t.Re)
		}
		if err = t.check(); err != nil {
			return nil, err
		}
		rad := make([]float64, len(t.Alpha))
		for i, a := range t.Alpha {
			rad[i] = a * math.Pi / 180.0
		}
		scl, e := akima.New(rad, t.Cl, 0)
		if e != nil {
			return nil, e
		}
		scd, e := akima.New(rad, t.Cd, 0)
		if e != nil {
			return nil, e
		}
		o.cl = append(o.cl, scl)
		o.cd = append(o.cd, scd)
	}
	return
}

// Cylinder returns the polar of a circular section
func Cylinder(re, cd float64) *Polar {
	o, err := NewPolar(&Table{
		Re:    re,
		Alpha: []float64{-180, 0, 180},
		Cl:    []float64{0, 0, 0},
		Cd:    []float64{cd, cd, cd},
		Cm:    []float64{0, 0, 0},
	})
	if err != nil {
		chk.Panic("%v", err)
	}
	return o
}

// Evaluate computes cl and cd at alpha (rad) and Re with their partial derivatives
//  Interpolation is Akima in alpha and linear in Re; Re outside the tables is clamped.
func (o *Polar) Evaluate(alpha, Re float64) (cl, cd, dclDa, dclDre, dcdDa, dcdDre float64) {
	n := len(o.Tables)
	if n == 1 || Re <= o.Tables[0].Re {
		cl, dclDa = o.cl[0].Eval(alpha)
		cd, dcdDa = o.cd[0].Eval(alpha)
		return
	}
	if Re >= o.Tables[n-1].Re {
		cl, dclDa = o.cl[n-1].Eval(alpha)
		cd, dcdDa = o.cd[n-1].Eval(alpha)
		return
	}
	k := sort.Search(n, func(i int) bool { return o.Tables[i].Re > Re }) - 1
	r0, r1 := o.Tables[k].Re, o.Tables[k+1].Re
	w := (Re - r0) / (r1 - r0)
	cl0, dcl0 := o.cl[k].Eval(alpha)
	cl1, dcl1 := o.cl[k+1].Eval(alpha)
	cd0, dcd0 := o.cd[k].Eval(alpha)
	cd1, dcd1 := o.cd[k+1].Eval(alpha)
	cl, dclDa, dclDre = (1-w)*cl0+w*cl1, (1-w)*dcl0+w*dcl1, (cl1-cl0)/(r1-r0)
	cd, dcdDa, dcdDre = (1-w)*cd0+w*cd1, (1-w)*dcd0+w*dcd1, (cd1-cd0)/(r1-r0)
	return
}

// EvaluateDual computes cl and cd with dual-number arguments
func (o *Polar) EvaluateDual(alpha, Re dual.Number) (cl, cd dual.Number) {
	l, d, dla, dlr, dda, ddr := o.Evaluate(alpha.Real, Re.Real)
	cl = dual.Number{Real: l, Emag: dla*alpha.Emag + dlr*Re.Emag}
	cd = dual.Number{Real: d, Emag: dda*alpha.Emag + ddr*Re.Emag}
	return
}

// Range returns the smallest and largest angles (deg) covered by all tables
func (o *Polar) Range() (amin, amax float64) {
	amin, amax = math.Inf(-1), math.Inf(1)
	for _, t := range o.Tables {
		amin = math.Max(amin, t.Alpha[0])
		amax = math.Min(amax, t.Alpha[len(t.Alpha)-1])
	}
	return
}

func (o *Table) check() error {
	n := len(o.Alpha)
	if n < 2 || len(o.Cl) != n || len(o.Cd) != n || len(o.Cm) != n {
		return chk.Err("airfoil: table at Re=%g must have at least 2 angles and equal sizes; got %d, %d, %d and %d\n", o.Re, n, len(o.Cl), len(o.Cd), len(o.Cm))
	}
	return nil
}

func (o *Table) clone() *Table {
	return &Table{
		Re:    o.Re,
		Alpha: append([]float64{}, o.Alpha...),
		Cl:    append([]float64{}, o.Cl...),
		Cd:    append([]float64{}, o.Cd...),
		Cm:    append([]float64{}, o.Cm...),
	}
}
