// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// thinAirfoil fails at some angles
type thinAirfoil struct {
	fail map[float64]bool
}

func (o *thinAirfoil) Solve(alpha float64) (cl, cd, cm float64, ok bool) {
	if o.fail[alpha] {
		return 0, 0, 0, false
	}
	α := alpha * math.Pi / 180.0
	cl = 2 * math.Pi * α
	if alpha > 12 {
		cl = 2*math.Pi*12*math.Pi/180 - 0.05*(alpha-12)
	}
	return cl, 0.008 + 0.01*cl*cl, -0.05, true
}

func Test_panel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("panel01. NACA 0012")

	s := NewSettings()
	x, y, err := Shape(&NACA{"0012"}, s)
	if err != nil {
		tst.Errorf("Shape failed: %v\n", err)
		return
	}
	ana, err := NewPanel(x, y, s.Re, s.Mach, s.Iter)
	if err != nil {
		tst.Errorf("NewPanel failed: %v\n", err)
		return
	}
	cl0, cd0, cm0, ok := ana.Solve(0)
	if !ok {
		tst.Errorf("Solve failed\n")
		return
	}
	io.Pforan("cl0=%g cd0=%g cm0=%g\n", cl0, cd0, cm0)
	chk.Float64(tst, "cl(0)", 1e-8, cl0, 0)
	chk.Float64(tst, "cm(0)", 1e-8, cm0, 0)
	if cd0 <= 0 || cd0 > 0.02 {
		tst.Errorf("zero-lift drag %g is not realistic\n", cd0)
	}
	cl5, _, _, ok := ana.Solve(5)
	if !ok {
		tst.Errorf("Solve failed\n")
		return
	}
	io.Pforan("cl(5°) = %g\n", cl5)
	if cl5 < 0.45 || cl5 > 0.75 {
		tst.Errorf("cl(5°)=%g is not realistic\n", cl5)
	}
	clm5, _, _, _ := ana.Solve(-5)
	chk.Float64(tst, "cl(-5) = -cl(5)", 1e-8, clm5, -cl5)

	// stall
	cl20, cd20, _, _ := ana.Solve(20)
	if cl20 >= 2*math.Pi*20*math.Pi/180 {
		tst.Errorf("cl(20°)=%g should be below the potential flow value\n", cl20)
	}
	if cd20 <= cd0 {
		tst.Errorf("cd(20°)=%g should be larger than cd(0)=%g\n", cd20, cd0)
	}
}

func Test_panel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("panel02. CST lift slope")

	s := NewSettings()
	for _, d := range []*CST{
		{Upper: []float64{0.17, 0.2, 0.19, 0.21}, Lower: []float64{0.12, 0.05, 0.1, 0.08}},
		{Upper: []float64{0.1, 0.1, 0.1}, Lower: []float64{0.1, 0.1, 0.1}},
		{Upper: []float64{0.25, 0.3, 0.2, 0.25, 0.2}, Lower: []float64{0.2, 0.1, 0.15, 0.05, 0.1}, TE: 0.005},
	} {
		x, y, err := Shape(d, s)
		if err != nil {
			tst.Errorf("Shape failed: %v\n", err)
			return
		}
		ana, err := NewPanel(x, y, s.Re, s.Mach, s.Iter)
		if err != nil {
			tst.Errorf("NewPanel failed: %v\n", err)
			return
		}
		clp, _, _, okp := ana.Solve(1)
		clm, _, _, okm := ana.Solve(-1)
		if !okp || !okm {
			tst.Errorf("Solve failed\n")
			return
		}
		slope := (clp - clm) / (2 * math.Pi / 180)
		io.Pforan("lift slope = %g\n", slope)
		if slope <= 0 || math.IsInf(slope, 0) || math.IsNaN(slope) {
			tst.Errorf("lift slope %g must be positive and finite\n", slope)
		}
	}
}

func Test_polar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar01. build with degenerate angles")

	s := NewSettings()
	s.Ncyl = 2
	s.Nalpha = 41
	fails := map[float64]bool{3: true, -7: true}
	b := NewBuilder(s)
	b.Factory = func(x, y []float64, re, mach float64, iter int) (Analyzer, error) {
		return &thinAirfoil{fail: fails}, nil
	}
	w := []float64{0.17, 0.15, 0.2}
	descs := []Descriptor{&CST{w, w, 0}, &CST{w, w, 0}, &CST{w, w, 0}, &NACA{"4412"}}
	polars, err := b.Build(descs)
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of polars", len(polars), 4)

	// cylinders
	for i := 0; i < 2; i++ {
		cl, cd, dcl, _, dcd, _ := polars[i].Evaluate(0.3, 1e6)
		chk.Float64(tst, "cylinder cl", 1e-15, cl, 0)
		chk.Float64(tst, "cylinder cd", 1e-15, cd, 0.5)
		chk.Float64(tst, "cylinder dcl", 1e-15, dcl, 0)
		chk.Float64(tst, "cylinder dcd", 1e-15, dcd, 0)
	}

	// analysed stations
	for i := 2; i < 4; i++ {
		p := polars[i]
		chk.Array(tst, "degenerate", 1e-15, p.Degenerate, []float64{-7, 3})
		amin, amax := p.Range()
		if amin > -180 || amax < 180 {
			tst.Errorf("polar must cover [-180,180]; got [%g,%g]\n", amin, amax)
		}
		if !p.Correction.Applied {
			tst.Errorf("correction flag should be set\n")
		}
		t := p.Tables[0]
		for j := 1; j < len(t.Alpha); j++ {
			if t.Alpha[j] <= t.Alpha[j-1] {
				tst.Errorf("angles must be strictly increasing: %g, %g\n", t.Alpha[j-1], t.Alpha[j])
				return
			}
		}
		for j := range t.Alpha {
			if math.IsNaN(t.Cl[j]) || math.IsNaN(t.Cd[j]) || math.IsNaN(t.Cm[j]) || t.Cd[j] < 0.001 {
				tst.Errorf("invalid coefficients at %g: %g, %g, %g\n", t.Alpha[j], t.Cl[j], t.Cd[j], t.Cm[j])
				return
			}
		}
	}

	// construction failure is fatal
	b.Factory = func(x, y []float64, re, mach float64, iter int) (Analyzer, error) {
		return nil, configErr("cannot run")
	}
	if _, err = b.Build(descs); err == nil {
		tst.Errorf("failure to create analysis should be fatal\n")
	}
}

func Test_polar02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar02. corrections")

	ana := &thinAirfoil{}
	t, _ := Sweep(ana, utl.LinSpace(-20, 20, 41), 1e6)
	c := NewCorrection3D(NewSettings())
	res, err := Correct3D(t, c)
	if err != nil {
		tst.Errorf("Correct3D failed: %v\n", err)
		return
	}
	for i, a := range t.Alpha {
		if math.Abs(a) <= 10 {
			chk.Float64(tst, io.Sf("cl(%g) in linear region", a), 1e-12, res.Cl[i], t.Cl[i])
		}
		if a > 13 && res.Cl[i] <= t.Cl[i] {
			tst.Errorf("stalled lift should increase: %g ≤ %g\n", res.Cl[i], t.Cl[i])
		}
	}

	ext, err := Extrapolate(res, 1.3)
	if err != nil {
		tst.Errorf("Extrapolate failed: %v\n", err)
		return
	}
	n := len(ext.Alpha)
	chk.Float64(tst, "first angle", 1e-12, ext.Alpha[0], -180)
	chk.Float64(tst, "last angle", 1e-12, ext.Alpha[n-1], 180)
	p, err := NewPolar(ext)
	if err != nil {
		tst.Errorf("NewPolar failed: %v\n", err)
		return
	}
	_, cd90, _, _, _, _ := p.Evaluate(math.Pi/2, 1e6)
	chk.Float64(tst, "cd(90°)", 1e-12, cd90, 1.3)
	cl0, _, _, _, _, _ := p.Evaluate(0, 1e6)
	chk.Float64(tst, "cl(0)", 1e-12, cl0, 0)
}

func Test_polar03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar03. derivatives")

	alpha := utl.LinSpace(-30, 30, 31)
	mk := func(re, f float64) *Table {
		t := &Table{Re: re, Alpha: alpha}
		for _, a := range alpha {
			α := a * math.Pi / 180
			t.Cl = append(t.Cl, f*math.Sin(2*α))
			t.Cd = append(t.Cd, 0.01+f*α*α)
			t.Cm = append(t.Cm, 0)
		}
		return t
	}
	p, err := NewPolar(mk(2e6, 1.1), mk(5e5, 0.9))
	if err != nil {
		tst.Errorf("NewPolar failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sorted", 1e-17, p.Tables[0].Re, 5e5)
	α, re := 0.1, 1.2e6
	_, _, dla, dlr, dda, ddr := p.Evaluate(α, re)
	h := 1e-6
	clp, cdp, _, _, _, _ := p.Evaluate(α+h, re)
	clm, cdm, _, _, _, _ := p.Evaluate(α-h, re)
	chk.AnaNum(tst, "dcl/dα", 1e-7, dla, (clp-clm)/(2*h), chk.Verbose)
	chk.AnaNum(tst, "dcd/dα", 1e-7, dda, (cdp-cdm)/(2*h), chk.Verbose)
	hr := 10.0
	clp, cdp, _, _, _, _ = p.Evaluate(α, re+hr)
	clm, cdm, _, _, _, _ = p.Evaluate(α, re-hr)
	chk.AnaNum(tst, "dcl/dRe", 1e-12, dlr, (clp-clm)/(2*hr), chk.Verbose)
	chk.AnaNum(tst, "dcd/dRe", 1e-12, ddr, (cdp-cdm)/(2*hr), chk.Verbose)

	// clamped
	_, _, _, dlr, _, _ = p.Evaluate(α, 1e7)
	chk.Float64(tst, "clamped dcl/dRe", 1e-17, dlr, 0)

	if _, err = NewPolar(mk(1e6, 1), mk(1e6, 2)); err == nil {
		tst.Errorf("repeated Reynolds number should have failed\n")
	}
}

func Test_map01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("map01")

	p := []*Polar{Cylinder(1e6, 0.5), Cylinder(1e6, 0.4), Cylinder(1e6, 0.3)}
	res, err := MapToStations([]float64{0.1, 0.5, 0.9}, p, []float64{0, 0.2, 0.35, 0.71, 1})
	if err != nil {
		tst.Errorf("MapToStations failed: %v\n", err)
		return
	}
	idx := []int{0, 0, 1, 2, 2}
	for i, k := range idx {
		if res[i] != p[k] {
			tst.Errorf("station %d should use polar %d\n", i, k)
		}
	}
	if _, err = MapToStations([]float64{0.1}, p, []float64{0}); err == nil {
		tst.Errorf("size mismatch should have failed\n")
	}
}

func Test_polar05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar05. extrapolation grid next to the table")

	t := &Table{
		Re:    1e6,
		Alpha: []float64{-5, 0, 5, 10},
		Cl:    []float64{-0.3, 0.25, 0.8, 1.2},
		Cd:    []float64{0.01, 0.008, 0.01, 0.02},
		Cm:    []float64{0, 0, 0, 0},
	}
	ext, err := Extrapolate(t, 1.3)
	if err != nil {
		tst.Errorf("Extrapolate failed: %v\n", err)
		return
	}

	// segments: 15 + 14 + 14 + 13 (-αh → αl) + 4 (table) + 3·14
	chk.Int(tst, "number of angles", len(ext.Alpha), 102)
	for i := 1; i < len(ext.Alpha); i++ {
		if ext.Alpha[i] <= ext.Alpha[i-1] {
			tst.Errorf("angles must be strictly increasing: %g ≤ %g\n", ext.Alpha[i], ext.Alpha[i-1])
			return
		}
	}
	k := 15 + 14 + 14 + 13
	chk.Float64(tst, "first table angle", 1e-12, ext.Alpha[k], -5)
	chk.Float64(tst, "sample next to αl", 1e-12, ext.Alpha[k-1], -10+13.0/14.0*5)
	chk.Float64(tst, "cl next to αl", 1e-12, ext.Cl[k-1], -1.2*0.7+13.0/14.0*(-0.3+1.2*0.7))
}
