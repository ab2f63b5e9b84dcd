// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of rotor results
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/airfoil"
	"github.com/cpmech/rotorse/bem"
	"github.com/cpmech/rotorse/rotor"
)

// PlotPolar plots cl and cd versus the angle of attack of every table in a polar
func PlotPolar(dirout, fname string, p *airfoil.Polar) (files []string, err error) {
	if p == nil || len(p.Tables) == 0 {
		return nil, chk.Err("out: polar is empty\n")
	}
	Reset()
	Splot("cl", "lift")
	SplotConfig("alpha", "deg", "cl", "", 0, 0)
	for _, t := range p.Tables {
		Plot(t.Alpha, t.Cl, io.Sf("Re=%g", t.Re), Style{})
	}
	Splot("cd", "drag")
	SplotConfig("alpha", "deg", "cd", "", 0, 0)
	for _, t := range p.Tables {
		Plot(t.Alpha, t.Cd, io.Sf("Re=%g", t.Re), Style{})
	}
	return Draw(dirout, fname)
}

// PlotLoads plots the distributed loads along the blade
func PlotLoads(dirout, fname string, l *bem.Loads) (files []string, err error) {
	if l == nil || len(l.R) == 0 {
		return nil, chk.Err("out: there are no loads to plot\n")
	}
	Reset()
	Splot("loads", io.Sf("U=%g m/s Ω=%g rpm azimuth=%g°", l.Op.Uinf, l.Op.Omega, l.Op.Azimuth))
	SplotConfig("r", "m", "load", "kN/m", 1, 1e-3)
	Plot(l.R, l.Px, "Px", Style{L: GetLabel("Px", "")})
	Plot(l.R, l.Py, "Py", Style{L: GetLabel("Py", ""), D: true})
	return Draw(dirout, fname)
}

// PlotPowerCurve plots the aerodynamic and electrical power and the power coefficient
func PlotPowerCurve(dirout, fname string, pw *rotor.Power) (files []string, err error) {
	if pw == nil || len(pw.Uinf) == 0 {
		return nil, chk.Err("out: power curve is empty\n")
	}
	Reset()
	Splot("power", "power curve")
	SplotConfig("Uinf", "m/s", "P", "MW", 1, 1e-6)
	Plot(pw.Uinf, pw.P, "P", Style{L: "aerodynamic", M: true})
	Plot(pw.Uinf, pw.Elec, "Pelec", Style{L: "electrical", D: true, M: true})
	Splot("cp", "power coefficient")
	SplotConfig("Uinf", "m/s", "CP", "", 1, 1)
	Plot(pw.Uinf, pw.CP, "CP", Style{M: true})
	return Draw(dirout, fname)
}
