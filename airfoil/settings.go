// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/fun/dbf"
)

// Settings holds the constants used to build polars
type Settings struct {

	// rotational correction and extrapolation
	ROverR     float64 // representative r/R
	ChordOverR float64 // representative c/r
	Tsr        float64 // design tip-speed ratio
	CdMax      float64 // drag coefficient at 90°

	// viscous analysis
	Re       float64 // Reynolds number
	Mach     float64 // Mach number
	Iter     int     // iteration cap passed to the analyzer
	AlphaMin float64 // first angle of sweep (deg)
	AlphaMax float64 // last angle of sweep (deg)
	Nalpha   int     // number of angles in sweep
	Npanel   int     // number of points per surface of NACA sections

	// root stations
	Ncyl       int       // number of cylindrical stations at the root
	CylinderCd []float64 // drag of cylindrical stations; the last value repeats
}

// NewSettings returns the default settings
func NewSettings() (o *Settings) {
	o = new(Settings)
	o.Init(nil)
	return
}

// Init initialises settings. Missing parameters take default values
func (o *Settings) Init(prms dbf.Params) (err error) {
	o.ROverR, o.ChordOverR, o.Tsr, o.CdMax = 0.5, 0.15, 7.55, 1.5
	o.Re, o.Mach, o.Iter = 1e6, 0.03, 1000
	o.AlphaMin, o.AlphaMax, o.Nalpha, o.Npanel = -20, 20, 80, 60
	o.Ncyl = 3
	o.CylinderCd = []float64{0.5, 0.5, 0.35}
	cyl := make(map[int]float64)
	for _, p := range prms {
		key := strings.ToLower(p.N)
		switch key {
		case "roverr":
			o.ROverR = p.V
		case "chordoverr":
			o.ChordOverR = p.V
		case "tsr":
			o.Tsr = p.V
		case "cdmax":
			o.CdMax = p.V
		case "re":
			o.Re = p.V
		case "mach":
			o.Mach = p.V
		case "iter":
			o.Iter = int(p.V)
		case "alphamin":
			o.AlphaMin = p.V
		case "alphamax":
			o.AlphaMax = p.V
		case "nalpha":
			o.Nalpha = int(p.V)
		case "npanel":
			o.Npanel = int(p.V)
		case "ncyl":
			o.Ncyl = int(p.V)
		default:
			if strings.HasPrefix(key, "cdcyl") {
				idx, e := strconv.Atoi(strings.TrimPrefix(key, "cdcyl"))
				if e == nil && idx >= 0 {
					cyl[idx] = p.V
					continue
				}
			}
			return configErr("airfoil: parameter named %q is incorrect\n", p.N)
		}
	}
	if len(cyl) > 0 {
		o.CylinderCd = make([]float64, len(cyl))
		for i := range o.CylinderCd {
			v, ok := cyl[i]
			if !ok {
				return configErr("airfoil: cylinder drag coefficients must be numbered sequentially from cdcyl0; cdcyl%d is missing\n", i)
			}
			o.CylinderCd[i] = v
		}
	}
	return o.check()
}

// GetPrms gets (an example) of parameters
func (o Settings) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		{N: "rOverR", V: 0.5},
		{N: "chordOverR", V: 0.15},
		{N: "tsr", V: 7.55},
		{N: "cdMax", V: 1.5},
		{N: "re", V: 1e6},
		{N: "mach", V: 0.03},
		{N: "iter", V: 1000},
		{N: "alphaMin", V: -20},
		{N: "alphaMax", V: 20},
		{N: "nalpha", V: 80},
		{N: "npanel", V: 60},
		{N: "ncyl", V: 3},
		{N: "cdcyl0", V: 0.5},
		{N: "cdcyl1", V: 0.5},
		{N: "cdcyl2", V: 0.35},
	}
}

// CylinderDrag returns the drag coefficient of cylindrical station i
func (o *Settings) CylinderDrag(i int) float64 {
	if i >= len(o.CylinderCd) {
		return o.CylinderCd[len(o.CylinderCd)-1]
	}
	return o.CylinderCd[i]
}

func (o *Settings) check() error {
	if o.ROverR <= 0 || o.ROverR > 1 {
		return configErr("airfoil: r/R=%g must be within (0,1]\n", o.ROverR)
	}
	if o.ChordOverR <= 0 || o.Tsr <= 0 || o.CdMax <= 0 {
		return configErr("airfoil: c/r=%g, tsr=%g and cdMax=%g must be positive\n", o.ChordOverR, o.Tsr, o.CdMax)
	}
	if o.Re <= 0 || o.Mach < 0 || o.Mach >= 1 {
		return configErr("airfoil: invalid flow conditions: Re=%g, Mach=%g\n", o.Re, o.Mach)
	}
	if o.AlphaMin >= o.AlphaMax || o.AlphaMax >= 90 || o.AlphaMin <= -90 {
		return configErr("airfoil: sweep [%g,%g] must be increasing and within (-90,90)\n", o.AlphaMin, o.AlphaMax)
	}
	if o.Nalpha < 3 || o.Npanel < 5 {
		return configErr("airfoil: nalpha=%d must be ≥ 3 and npanel=%d must be ≥ 5\n", o.Nalpha, o.Npanel)
	}
	if o.Ncyl < 0 || len(o.CylinderCd) == 0 {
		return configErr("airfoil: ncyl=%d must be non-negative and cylinder drag must be given\n", o.Ncyl)
	}
	return nil
}
