// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/airfoil"
	"github.com/cpmech/rotorse/bem"
	"github.com/cpmech/rotorse/rotor"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func checkFiles(tst *testing.T, files []string, names ...string) {
	chk.Int(tst, "number of files", len(files), len(names))
	for i, f := range files {
		chk.String(tst, filepath.Base(f), names[i])
		info, err := os.Stat(f)
		if err != nil {
			tst.Errorf("Stat failed: %v\n", err)
			return
		}
		if info.Size() == 0 {
			tst.Errorf("file %q is empty\n", f)
		}
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	Reset()
	_, err := Draw(tst.TempDir(), "empty.png")
	if err == nil {
		tst.Errorf("Draw should have failed with no subplots\n")
		return
	}

	Reset()
	Splot("a", "single")
	SplotConfig("r", "m", "Px", "N/m", 1, 1)
	chk.String(tst, Csplot.Xlbl, "r (m)")
	chk.String(tst, Csplot.Ylbl, "P_x (N/m)")
	Plot([]float64{0, 1, 2}, []float64{0, 1, 4}, "y", Style{M: true})
	Plot([]float64{0, 1, 2}, []float64{0, 2, 3}, "z", Style{D: true, W: 2})
	dir := tst.TempDir()
	files, err := Draw(dir, "single.png")
	if err != nil {
		tst.Errorf("Draw failed: %v\n", err)
		return
	}
	checkFiles(tst, files, "single.png")

	defer func() {
		if recover() == nil {
			tst.Errorf("Plot should have panicked on mismatched lengths\n")
		}
	}()
	Plot([]float64{0, 1}, []float64{0}, "bad", Style{})
}

func Test_plot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot02")

	dir := tst.TempDir()
	p, err := airfoil.NewPolar(
		&airfoil.Table{Re: 1e6, Alpha: []float64{-10, 0, 10}, Cl: []float64{-1, 0, 1}, Cd: []float64{0.02, 0.01, 0.02}, Cm: []float64{0, 0, 0}},
		&airfoil.Table{Re: 3e6, Alpha: []float64{-10, 0, 10}, Cl: []float64{-1.1, 0, 1.1}, Cd: []float64{0.015, 0.008, 0.015}, Cm: []float64{0, 0, 0}},
	)
	if err != nil {
		tst.Errorf("NewPolar failed: %v\n", err)
		return
	}
	files, err := PlotPolar(dir, "polar.png", p)
	if err != nil {
		tst.Errorf("PlotPolar failed: %v\n", err)
		return
	}
	checkFiles(tst, files, "polar_cl.png", "polar_cd.png")

	l := &bem.Loads{
		Op: bem.OperatingPoint{Uinf: 10, Omega: 12, Azimuth: 90},
		R:  []float64{1.5, 10, 30, 63},
		Px: []float64{0, 1200, 3400, 0},
		Py: []float64{0, -300, -500, 0},
		Pz: []float64{0, 0, 0, 0},
	}
	files, err = PlotLoads(dir, "loads.png", l)
	if err != nil {
		tst.Errorf("PlotLoads failed: %v\n", err)
		return
	}
	checkFiles(tst, files, "loads.png")

	pw := &rotor.Power{
		Uinf: []float64{4, 8, 12},
		P:    []float64{2e5, 1.8e6, 5.5e6},
		Elec: []float64{1.7e5, 1.6e6, 5.0e6},
		CP:   []float64{0.45, 0.48, 0.44},
	}
	files, err = PlotPowerCurve(dir, "power.png", pw)
	if err != nil {
		tst.Errorf("PlotPowerCurve failed: %v\n", err)
		return
	}
	checkFiles(tst, files, "power_power.png", "power_cp.png")

	if _, err = PlotLoads(dir, "x.png", nil); err == nil {
		tst.Errorf("PlotLoads should have failed with nil loads\n")
	}
}
