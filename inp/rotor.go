// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.rotor) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// BladeData holds control points of the blade planform
type BladeData struct {
	RAf         []float64 `json:"raf"`         // station positions as fractions of the blade length
	IdxCylinder int       `json:"idxcylinder"` // index of first station outside the cylindrical root
	RMaxChord   float64   `json:"rmaxchord"`   // location of max chord as a fraction of the blade length
	Rhub        float64   `json:"rhub"`        // hub radius (m)
	Rtip        float64   `json:"rtip"`        // tip radius (m)
	ChordSub    []float64 `json:"chordsub"`    // chord at control points (m)
	ThetaSub    []float64 `json:"thetasub"`    // twist at control points (deg)
	PrecurveTip float64   `json:"precurvetip"` // precurve at tip (m)
	Precone     float64   `json:"precone"`     // precone (deg)
	Tilt        float64   `json:"tilt"`        // tilt (deg)
	Yaw         float64   `json:"yaw"`         // yaw (deg)
	B           int       `json:"nblades"`     // number of blades
}

// AtmosphereData holds air properties and the wind profile
type AtmosphereData struct {
	Rho      float64 `json:"rho"`      // density (kg/m³)
	Mu       float64 `json:"mu"`       // dynamic viscosity (kg/(m·s))
	ShearExp float64 `json:"shearexp"` // power-law shear exponent
	HubHt    float64 `json:"hubht"`    // hub height (m)
}

// OptionsData holds options of the aerodynamic analysis
type OptionsData struct {
	NSector      int  `json:"nsector"`      // number of azimuthal sectors
	TipLoss      bool `json:"tiploss"`      // Prandtl tip loss
	HubLoss      bool `json:"hubloss"`      // Prandtl hub loss
	WakeRotation bool `json:"wakerotation"` // tangential induction
	UseCd        bool `json:"usecd"`        // drag in induction factors
	MaxIter      int  `json:"maxiter"`      // iteration cap of the inflow search
	Parallel     bool `json:"parallel"`     // concurrent operating points
}

// OperationData holds operating points
//  Rotor speed follows from Tsr when Omega is empty.
type OperationData struct {
	Uinf    []float64 `json:"uinf"`    // wind speeds (m/s)
	Omega   []float64 `json:"omega"`   // rotor speeds (rpm)
	Pitch   []float64 `json:"pitch"`   // pitch angles (deg); empty means zero
	Tsr     float64   `json:"tsr"`     // tip-speed ratio
	Azimuth float64   `json:"azimuth"` // azimuth of distributed loads (deg)
}

// Rotor holds all input data
type Rotor struct {

	// input
	Desc       string         `json:"desc"`       // description
	DirOut     string         `json:"dirout"`     // directory for output; e.g. /tmp/rotorse
	Blade      BladeData      `json:"blade"`      // planform
	Atmosphere AtmosphereData `json:"atmosphere"` // air and wind
	Options    OptionsData    `json:"options"`    // BEM options
	Airfoils   AirfoilsData   `json:"airfoils"`   // airfoil shapes
	Drivetrain ModelData      `json:"drivetrain"` // drivetrain efficiency model
	Cdf        ModelData      `json:"cdf"`        // wind speed distribution
	Operation  OperationData  `json:"operation"`  // operating points
	RatedPower float64        `json:"ratedpower"` // rated power (W)

	// derived
	Key string // file name key; e.g. nrel5mw.rotor => nrel5mw
	Dir string // directory of input file
}

// SetDefault sets default values
func (o *Rotor) SetDefault() {
	o.Blade.B = 3
	o.Atmosphere.Rho = 1.225
	o.Atmosphere.Mu = 1.81206e-5
	o.Options.NSector = 4
	o.Options.TipLoss = true
	o.Options.HubLoss = true
	o.Options.WakeRotation = true
	o.Options.UseCd = true
	o.Options.MaxIter = 100
	o.Drivetrain.Model = "geared"
	o.Cdf.Model = "weibull-mean"
	o.Cdf.Prms = dbf.Params{{N: "xbar", V: 6}, {N: "k", V: 2}}
	o.Operation.Tsr = 7.55
}

// ReadRotor reads all rotor data from a JSON file
func ReadRotor(dir, fn string) (o *Rotor, err error) {

	// read file
	path := filepath.Join(os.ExpandEnv(dir), fn)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("ReadRotor: cannot read rotor file %q:\n%v", path, err)
	}

	// decode
	o = new(Rotor)
	o.SetDefault()
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadRotor: cannot unmarshal rotor file %q:\n%v", path, err)
	}

	// derived
	o.Dir = filepath.Dir(path)
	o.Key = io.FnKey(fn)
	if o.DirOut == "" {
		o.DirOut = "/tmp/rotorse/" + o.Key
	}
	o.Airfoils.resolve(o.Dir)
	return o, o.Check()
}

// Check validates data
func (o *Rotor) Check() error {
	bl := o.Blade
	if len(bl.RAf) < 2 {
		return chk.Err("rotor: at least 2 stations are required in blade.raf\n")
	}
	if bl.Rhub <= 0 || bl.Rtip <= bl.Rhub {
		return chk.Err("rotor: invalid radii: rhub=%g and rtip=%g\n", bl.Rhub, bl.Rtip)
	}
	if len(bl.ChordSub) < 3 || len(bl.ThetaSub) < 2 {
		return chk.Err("rotor: at least 3 chord and 2 twist control points are required; %d and %d given\n", len(bl.ChordSub), len(bl.ThetaSub))
	}
	if bl.B < 1 {
		return chk.Err("rotor: number of blades %d must be positive\n", bl.B)
	}
	if o.Atmosphere.HubHt <= 0 {
		return chk.Err("rotor: hub height %g must be positive\n", o.Atmosphere.HubHt)
	}
	op := o.Operation
	if len(op.Omega) > 0 && len(op.Omega) != len(op.Uinf) {
		return chk.Err("rotor: sizes of operation.uinf (%d) and operation.omega (%d) differ\n", len(op.Uinf), len(op.Omega))
	}
	if len(op.Pitch) > 0 && len(op.Pitch) != len(op.Uinf) {
		return chk.Err("rotor: sizes of operation.uinf (%d) and operation.pitch (%d) differ\n", len(op.Uinf), len(op.Pitch))
	}
	if len(op.Omega) == 0 && op.Tsr <= 0 {
		return chk.Err("rotor: tip-speed ratio %g must be positive when omega is not given\n", op.Tsr)
	}
	if !(o.RatedPower > 0) {
		return chk.Err("rotor: rated power %g must be positive\n", o.RatedPower)
	}
	return o.Airfoils.check(len(bl.RAf))
}
