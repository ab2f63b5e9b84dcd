// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/airfoil"
)

// AirfoilData holds the shape of one airfoil
type AirfoilData struct {
	Name   string    `json:"name"`   // name of airfoil. ex: DU40, NACA64
	Loc    float64   `json:"loc"`    // location as a fraction of the blade length
	Type   string    `json:"type"`   // "cylinder", "coords", "naca" or "cst"
	File   string    `json:"file"`   // coords: file with surface points; relative to the input file
	X      []float64 `json:"x"`      // coords: surface points
	Y      []float64 `json:"y"`      // coords: surface points
	Digits string    `json:"digits"` // naca: designation. ex: 2412
	Upper  []float64 `json:"upper"`  // cst: weights of upper surface
	Lower  []float64 `json:"lower"`  // cst: weights of lower surface
	TE     float64   `json:"te"`     // cst: trailing edge thickness
	Polar  string    `json:"polar"`  // AeroDyn polar file when tool is "files"; relative to the input file
}

// AirfoilsData holds all airfoils along the blade
//  With the "panel" tool, cylinders must come first and their number sets the ncyl setting.
//  With the "files" tool, every section reads its polar from an AeroDyn file and ncyl is zero.
//
//  CST weights: Lower holds thicknesses measured downwards from the chord line, i.e. the
//  lower surface is y = -C(x)·S(x; Lower). A conventional airfoil therefore has positive Upper
//  and positive Lower weights. Weight sets written with the lower surface as +C·S (negative
//  lower weights) must be negated before use.
type AirfoilsData struct {
	Tool     string         `json:"tool"`     // "panel" (default) or "files"
	Settings dbf.Params     `json:"settings"` // parameters of airfoil.Settings
	Sections []*AirfoilData `json:"sections"` // airfoils sorted by location
}

// analysis tools
const (
	ToolPanel = "panel"
	ToolFiles = "files"
)

// GetSettings returns the settings of polar generation
//  A given ncyl setting must agree with the number of leading cylinder sections.
func (o AirfoilsData) GetSettings() (s *airfoil.Settings, err error) {
	ncyl := o.ncyl()
	prms := dbf.Params{}
	for _, p := range o.Settings {
		if strings.ToLower(p.N) == "ncyl" {
			if int(p.V) != ncyl || p.V != float64(int(p.V)) {
				return nil, &airfoil.ConfigError{Msg: chk.Err("rotor: ncyl=%g disagrees with the %d leading cylinder sections\n", p.V, ncyl).Error()}
			}
			continue
		}
		prms = append(prms, p)
	}
	prms = append(prms, dbf.Params{{N: "ncyl", V: float64(ncyl)}}...)
	s = new(airfoil.Settings)
	err = s.Init(prms)
	return
}

// Descriptors returns the shape descriptors; cylinders have none
func (o AirfoilsData) Descriptors() (res []airfoil.Descriptor) {
	res = make([]airfoil.Descriptor, len(o.Sections))
	for i, a := range o.Sections {
		if o.files() {
			res[i] = &airfoil.PolarFile{File: a.Polar}
			continue
		}
		switch a.Type {
		case "coords":
			res[i] = &airfoil.Coordinates{File: a.File, X: a.X, Y: a.Y}
		case "naca":
			res[i] = &airfoil.NACA{Digits: a.Digits}
		case "cst":
			res[i] = &airfoil.CST{Upper: a.Upper, Lower: a.Lower, TE: a.TE}
		}
	}
	return
}

// Locations returns the locations of all airfoils
func (o AirfoilsData) Locations() (res []float64) {
	res = make([]float64, len(o.Sections))
	for i, a := range o.Sections {
		res[i] = a.Loc
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// files tells whether polars are read from files
func (o AirfoilsData) files() bool {
	return strings.ToLower(o.Tool) == ToolFiles
}

// ncyl returns the number of leading cylinders; zero when polars come from files
func (o AirfoilsData) ncyl() (n int) {
	if o.files() {
		return 0
	}
	for _, a := range o.Sections {
		if a.Type != "cylinder" {
			break
		}
		n++
	}
	return
}

// resolve makes file names relative to dir
func (o AirfoilsData) resolve(dir string) {
	for _, a := range o.Sections {
		if a.File != "" && !filepath.IsAbs(a.File) {
			a.File = filepath.Join(dir, a.File)
		}
		if a.Polar != "" && !filepath.IsAbs(a.Polar) {
			a.Polar = filepath.Join(dir, a.Polar)
		}
	}
}

func (o AirfoilsData) check(nstations int) error {
	if len(o.Sections) == 0 {
		return chk.Err("rotor: at least one airfoil is required\n")
	}
	switch strings.ToLower(o.Tool) {
	case "", ToolPanel, ToolFiles:
	default:
		return chk.Err("rotor: airfoil tool %q is incorrect; options are \"panel\" and \"files\"\n", o.Tool)
	}
	ncyl := o.ncyl()
	for i, a := range o.Sections {
		if a.Loc < 0 || a.Loc > 1 {
			return chk.Err("rotor: location %g of airfoil %q is outside [0,1]\n", a.Loc, a.Name)
		}
		if o.files() {
			if a.Polar == "" {
				return chk.Err("rotor: airfoil %q needs a polar file with the \"files\" tool\n", a.Name)
			}
			continue
		}
		switch a.Type {
		case "cylinder":
			if i >= ncyl {
				return chk.Err("rotor: cylinder %q must come before all other airfoils\n", a.Name)
			}
		case "coords":
			if a.File == "" && len(a.X) == 0 {
				return chk.Err("rotor: airfoil %q needs a file or surface points\n", a.Name)
			}
		case "naca", "cst":
		default:
			return chk.Err("rotor: type %q of airfoil %q is incorrect; options are \"cylinder\", \"coords\", \"naca\" and \"cst\"\n", a.Type, a.Name)
		}
	}
	return nil
}

// String prints one airfoil
func (o AirfoilData) String() string {
	return io.Sf("    {\"name\":%q, \"loc\":%g, \"type\":%q}", o.Name, o.Loc, o.Type)
}
