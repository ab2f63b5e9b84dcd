// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/rotorse/jac"
)

// Projection computes the radius of the rotor disc projected on the rotor plane
type Projection struct {
	Rtip        float64 // tip radius (m)
	PrecurveTip float64 // precurve at tip (m)
	Precone     float64 // precone angle (deg)
}

// Radius returns R = Rtip·cos(precone) + precurveTip·sin(precone) and ∂R/∂{Rtip,precurveTip,precone}
//  The precone derivative is per degree.
func (o Projection) Radius() (R float64, J *jac.Jacobian) {
	pc := o.Precone * math.Pi / 180.0
	s, c := math.Sin(pc), math.Cos(pc)
	R = o.Rtip*c + o.PrecurveTip*s
	J = jac.New([]jac.Var{{Name: "R", Size: 1}}, []jac.Var{{Name: "Rtip", Size: 1}, {Name: "precurveTip", Size: 1}, {Name: "precone", Size: 1}})
	J.Set("R", "Rtip", 0, 0, c)
	J.Set("R", "precurveTip", 0, 0, s)
	J.Set("R", "precone", 0, 0, (-o.Rtip*s+o.PrecurveTip*c)*math.Pi/180.0)
	return
}

// Diameter returns 2R
func (o Projection) Diameter() float64 {
	R, _ := o.Radius()
	return 2 * R
}
