// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// Builder computes polars of blade stations
type Builder struct {
	Settings *Settings      // constants
	Factory  AnalyzerFactory // creates the viscous analysis; NewPanel by default
	Verbose  bool           // show messages
}

// NewBuilder returns a builder with the panel analyzer. nil settings means defaults
func NewBuilder(s *Settings) *Builder {
	if s == nil {
		s = NewSettings()
	}
	return &Builder{Settings: s, Factory: NewPanel}
}

// Build computes one polar per station. Stations are analysed concurrently
func (o *Builder) Build(descs []Descriptor) (polars []*Polar, err error) {
	if err = o.Settings.check(); err != nil {
		return
	}
	polars = make([]*Polar, len(descs))
	errs := make([]error, len(descs))
	var wg sync.WaitGroup
	for i, d := range descs {
		wg.Add(1)
		go func(i int, d Descriptor) {
			defer wg.Done()
			polars[i], errs[i] = o.Station(i, d)
		}(i, d)
	}
	wg.Wait()
	for i, e := range errs {
		if e != nil {
			return nil, chk.Err("airfoil: station %d failed:\n%v", i, e)
		}
	}
	return
}

// Station computes the polar of station i
//  Stations described by a polar file use its tables as given. Other root stations get
//  the polar of a cylinder regardless of their descriptor.
func (o *Builder) Station(i int, d Descriptor) (p *Polar, err error) {
	if pf, ok := d.(*PolarFile); ok {
		if p, err = ReadAerodyn(pf.File); err != nil {
			return
		}
		if o.Verbose {
			io.Pfyel("station %2d: %d tables from %s\n", i, len(p.Tables), pf.File)
		}
		return
	}
	s := o.Settings
	if i < s.Ncyl {
		if o.Verbose {
			io.Pfyel("station %2d: cylinder with cd = %g\n", i, s.CylinderDrag(i))
		}
		return Cylinder(s.Re, s.CylinderDrag(i)), nil
	}

	// shape and analysis
	x, y, err := Shape(d, s)
	if err != nil {
		return
	}
	factory := o.Factory
	if factory == nil {
		factory = NewPanel
	}
	ana, err := factory(x, y, s.Re, s.Mach, s.Iter)
	if err != nil {
		return nil, chk.Err("airfoil: cannot create analysis of station %d:\n%v", i, err)
	}

	// sweep
	raw, degenerate := Sweep(ana, utl.LinSpace(s.AlphaMin, s.AlphaMax, s.Nalpha), s.Re)
	if len(degenerate) > 0 && o.Verbose {
		io.Pforan("station %2d: %d degenerate angles: %v\n", i, len(degenerate), degenerate)
	}
	t := raw.finite()
	if len(t.Alpha) < 2 {
		return nil, chk.Err("airfoil: station %d: analysis failed at %d of %d angles\n", i, len(degenerate), s.Nalpha)
	}

	// corrections
	cor := NewCorrection3D(s)
	t, err = Correct3D(t, cor)
	if err != nil {
		return
	}
	cor.Applied = true
	t, err = Extrapolate(t, s.CdMax)
	if err != nil {
		return
	}
	p, err = NewPolar(t)
	if err != nil {
		return
	}
	p.Correction = cor
	p.Degenerate = degenerate
	if o.Verbose {
		io.Pf("station %2d: %d angles; cl ∈ [%.3f,%.3f]\n", i, len(t.Alpha), floats.Min(t.Cl), floats.Max(t.Cl))
	}
	return
}

// Sweep runs the analysis at many angles (deg)
//  Failed angles keep NaN coefficients and are listed in degenerate.
func Sweep(ana Analyzer, alpha []float64, re float64) (t *Table, degenerate []float64) {
	n := len(alpha)
	t = &Table{Re: re, Alpha: append([]float64{}, alpha...), Cl: make([]float64, n), Cd: make([]float64, n), Cm: make([]float64, n)}
	for i, a := range alpha {
		cl, cd, cm, ok := ana.Solve(a)
		if !ok || !isFinite(cl) || !isFinite(cd) || !isFinite(cm) {
			t.Cl[i], t.Cd[i], t.Cm[i] = math.NaN(), math.NaN(), math.NaN()
			degenerate = append(degenerate, a)
			continue
		}
		t.Cl[i], t.Cd[i], t.Cm[i] = cl, cd, cm
	}
	return
}

// MapToStations assigns to each station the polar of the nearest airfoil location
//  locations and stations are fractions of the blade length.
func MapToStations(locations []float64, polars []*Polar, stations []float64) (res []*Polar, err error) {
	if len(locations) != len(polars) || len(locations) == 0 {
		return nil, chk.Err("airfoil: number of locations (%d) and polars (%d) must be equal and positive\n", len(locations), len(polars))
	}
	res = make([]*Polar, len(stations))
	for i, r := range stations {
		res[i] = polars[floats.NearestIdx(locations, r)]
	}
	return
}

// finite returns a copy without non-finite rows
func (o *Table) finite() (res *Table) {
	res = &Table{Re: o.Re}
	for i := range o.Alpha {
		if isFinite(o.Cl[i]) && isFinite(o.Cd[i]) && isFinite(o.Cm[i]) {
			res.Alpha = append(res.Alpha, o.Alpha[i])
			res.Cl = append(res.Cl, o.Cl[i])
			res.Cd = append(res.Cd, o.Cd[i])
			res.Cm = append(res.Cm, o.Cm[i])
		}
	}
	return
}
