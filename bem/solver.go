// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bem implements the blade element momentum method with exact derivatives
//  The inflow angle is found by a bracketed root search on a one-dimensional residual.
//  Derivatives of the converged solution are obtained with the implicit function theorem
//  and forward-mode dual numbers, one input component at a time.
//  References:
//   [1] Ning SA (2014) A simple solution method for the blade element momentum equations
//       with guaranteed convergence, Wind Energy, 17(9) 1327-1345
//   [2] Buhl ML (2005) A new empirical relationship between thrust coefficient and
//       induction factor for the turbulent windmill state, NREL/TP-500-36834
package bem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/num/dual"
)

// Polar computes lift and drag coefficients at angle of attack (rad) and Reynolds number
type Polar interface {
	EvaluateDual(alpha, Re dual.Number) (cl, cd dual.Number)
}

// OperatingPoint holds the independent variables of one evaluation
type OperatingPoint struct {
	Uinf    float64 // hub-height wind speed (m/s)
	Omega   float64 // rotor speed (rpm)
	Pitch   float64 // blade pitch (deg)
	Azimuth float64 // azimuth angle (deg); loads only
}

// ConvergenceError reports a failure of the inflow angle search
type ConvergenceError struct {
	Station int     // station index
	Sector  int     // azimuthal sector
	Point   int     // operating point
	Iter    int     // number of iterations
	Resid   float64 // residual at the last iterate
	Reason  string  // "no bracket" or "iteration cap"
}

func (e *ConvergenceError) Error() string {
	return io.Sf("bem: inflow angle search failed (%s) at station %d, sector %d, point %d after %d iterations; residual = %g", e.Reason, e.Station, e.Sector, e.Point, e.Iter, e.Resid)
}

// Solver holds rotor data
type Solver struct {

	// blade
	R           []float64 // radius of stations (m); excludes hub and tip
	Chord       []float64 // chord (m)
	Theta       []float64 // twist (deg)
	Precurve    []float64 // precurve (m); nil means zero
	PrecurveTip float64   // precurve at tip (m)
	Polars      []Polar   // airfoil of each station
	Rhub        float64   // hub radius (m)
	Rtip        float64   // tip radius (m)
	B           int       // number of blades

	// atmosphere
	Rho      float64 // air density (kg/m³)
	Mu       float64 // dynamic viscosity (kg/(m·s))
	ShearExp float64 // exponent of power-law wind shear
	HubHt    float64 // hub height (m)

	// orientation
	Precone float64 // precone (deg)
	Tilt    float64 // tilt (deg)
	Yaw     float64 // yaw (deg)

	// options
	NSector      int  // number of azimuthal sectors when the flow is not axisymmetric; at least 4 are used
	TipLoss      bool // include Prandtl tip loss
	HubLoss      bool // include Prandtl hub loss
	WakeRotation bool // include tangential induction
	UseCd        bool // use drag in the induction factors
	MaxIter      int  // iteration cap of the root search
	Parallel     bool // evaluate operating points concurrently
}

// New returns a solver with default options
func New() *Solver {
	return &Solver{
		B:            3,
		Rho:          1.225,
		Mu:           1.81206e-5,
		NSector:      4,
		TipLoss:      true,
		HubLoss:      true,
		WakeRotation: true,
		UseCd:        true,
		MaxIter:      100,
	}
}

// Init checks data and sets defaults
func (o *Solver) Init() error {
	n := len(o.R)
	if n < 2 {
		return chk.Err("bem: at least 2 stations are required; %d given\n", n)
	}
	if len(o.Chord) != n || len(o.Theta) != n || len(o.Polars) != n {
		return chk.Err("bem: sizes of r (%d), chord (%d), theta (%d) and polars (%d) must be equal\n", n, len(o.Chord), len(o.Theta), len(o.Polars))
	}
	if o.Precurve == nil {
		o.Precurve = make([]float64, n)
	}
	if len(o.Precurve) != n {
		return chk.Err("bem: size of precurve (%d) must equal the number of stations (%d)\n", len(o.Precurve), n)
	}
	if o.Rhub <= 0 || o.Rtip <= o.Rhub {
		return chk.Err("bem: invalid radii: Rhub=%g and Rtip=%g\n", o.Rhub, o.Rtip)
	}
	for i := 0; i < n; i++ {
		if (i == 0 && o.R[i] <= o.Rhub) || (i > 0 && o.R[i] <= o.R[i-1]) || o.R[i] >= o.Rtip {
			return chk.Err("bem: radii must increase strictly within (Rhub,Rtip); r[%d]=%g is invalid\n", i, o.R[i])
		}
		if o.Polars[i] == nil {
			return chk.Err("bem: polar of station %d is missing\n", i)
		}
	}
	if o.B < 1 || o.Rho <= 0 || o.Mu <= 0 {
		return chk.Err("bem: B=%d, rho=%g and mu=%g must be positive\n", o.B, o.Rho, o.Mu)
	}
	if o.HubHt <= 0 {
		return chk.Err("bem: hub height %g must be positive\n", o.HubHt)
	}
	if o.MaxIter < 1 {
		o.MaxIter = 100
	}
	return nil
}

// nsector returns the number of azimuthal sectors
func (o *Solver) nsector() int {
	if o.Tilt == 0 && o.Yaw == 0 && o.ShearExp == 0 {
		return 1
	}
	if o.NSector < 4 {
		return 4
	}
	return o.NSector
}
