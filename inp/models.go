// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/rotorse/mdl/drivetrain"
	"github.com/cpmech/rotorse/mdl/wind"
)

// ModelData holds the name and parameters of a model
type ModelData struct {
	Model string     `json:"model"` // name of model; e.g. "geared", "weibull-mean"
	Prms  dbf.Params `json:"prms"`  // parameters; missing ones take defaults
}

// GetDrivetrain allocates and initialises the drivetrain model
func (o ModelData) GetDrivetrain() (mdl drivetrain.Model, err error) {
	mdl, err = drivetrain.New(o.Model)
	if err != nil {
		return
	}
	if err = mdl.Init(o.Prms); err != nil {
		return nil, chk.Err("cannot initialise drivetrain model %q:\n%v", o.Model, err)
	}
	return
}

// GetCdf allocates and initialises the wind speed distribution
func (o ModelData) GetCdf() (mdl wind.Model, err error) {
	mdl, err = wind.New(o.Model)
	if err != nil {
		return
	}
	if err = mdl.Init(o.Prms); err != nil {
		return nil, chk.Err("cannot initialise wind model %q:\n%v", o.Model, err)
	}
	return
}
