// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rotor composes planform, airfoils, aerodynamics and drivetrain
//  Each stage returns values and a Jacobian; derivatives w.r.t. the design variables
//  follow from jac.Chain in the order planform → aerodynamics → drivetrain.
package rotor

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/airfoil"
	"github.com/cpmech/rotorse/bem"
	"github.com/cpmech/rotorse/geom"
	"github.com/cpmech/rotorse/inp"
	"github.com/cpmech/rotorse/jac"
	"github.com/cpmech/rotorse/mdl/drivetrain"
	"github.com/cpmech/rotorse/mdl/wind"
)

// Analysis holds the models of a rotor
type Analysis struct {
	Data       *inp.Rotor       // input data
	Spline     *geom.Spline     // planform
	Builder    *airfoil.Builder // polar generation
	Drivetrain drivetrain.Model // efficiency model
	Cdf        wind.Model       // wind speed distribution
	Polars     []*airfoil.Polar // polar of each airfoil section
	Verbose    bool             // show messages

	// cache
	polarKey string // airfoil data used to build Polars
}

// Power holds results of performance mode
type Power struct {
	Uinf, Omega, Pitch []float64     // operating points
	P, T, Q            []float64     // aerodynamic power (W), thrust (N) and torque (N·m)
	Elec               []float64     // electrical power (W)
	CP, CT, CQ         []float64     // coefficients
	Jaero              *jac.Jacobian // ∂{P,T,Q}/∂design
	Jelec              *jac.Jacobian // ∂power/∂design
	Jcoef              *jac.Jacobian // ∂{CP,CT,CQ}/∂design
}

// New returns an initialised analysis
func New(data *inp.Rotor, verbose bool) (o *Analysis, err error) {
	o = &Analysis{Verbose: verbose}
	err = o.Init(data)
	return
}

// Init allocates models and builds polars
//  Polars are kept when the airfoil data did not change since the previous call.
func (o *Analysis) Init(data *inp.Rotor) (err error) {
	if err = data.Check(); err != nil {
		return
	}
	o.Data = data
	bl := data.Blade
	o.Spline = &geom.Spline{
		RAf:         bl.RAf,
		IdxCylinder: bl.IdxCylinder,
		RMaxChord:   bl.RMaxChord,
		Rhub:        bl.Rhub,
		Rtip:        bl.Rtip,
		ChordSub:    bl.ChordSub,
		ThetaSub:    bl.ThetaSub,
	}
	if err = o.Spline.Check(); err != nil {
		return
	}
	if o.Drivetrain, err = data.Drivetrain.GetDrivetrain(); err != nil {
		return
	}
	if o.Cdf, err = data.Cdf.GetCdf(); err != nil {
		return
	}
	return o.BuildPolars()
}

// BuildPolars computes the polars of all airfoil sections unless they are up to date
func (o *Analysis) BuildPolars() (err error) {
	b, err := json.Marshal(o.Data.Airfoils)
	if err != nil {
		return
	}
	key := string(b)
	if o.Polars != nil && key == o.polarKey {
		return
	}
	s, err := o.Data.Airfoils.GetSettings()
	if err != nil {
		return
	}
	if o.Builder == nil {
		o.Builder = airfoil.NewBuilder(s)
	}
	o.Builder.Settings = s
	o.Builder.Verbose = o.Verbose
	if o.Polars, err = o.Builder.Build(o.Data.Airfoils.Descriptors()); err != nil {
		o.Polars = nil
		return
	}
	o.polarKey = key
	return
}

// Geometry computes blade stations and their Jacobian
func (o *Analysis) Geometry() (*geom.Geometry, error) {
	return o.Spline.Calc()
}

// Radius returns the rotor radius projected on the rotor plane with ∂R/∂{Rtip,precurveTip,precone}
func (o *Analysis) Radius() (R float64, J *jac.Jacobian) {
	return geom.Projection{Rtip: o.Data.Blade.Rtip, PrecurveTip: o.Data.Blade.PrecurveTip, Precone: o.Data.Blade.Precone}.Radius()
}

// Solver returns the aerodynamic model of geometry g
func (o *Analysis) Solver(g *geom.Geometry) (s *bem.Solver, err error) {
	polars, err := airfoil.MapToStations(o.Data.Airfoils.Locations(), o.Polars, o.Data.Blade.RAf)
	if err != nil {
		return
	}
	d := o.Data
	s = bem.New()
	s.R, s.Chord, s.Theta, s.Precurve = g.R, g.Chord, g.Theta, g.Precurve
	s.PrecurveTip = d.Blade.PrecurveTip
	s.Polars = make([]bem.Polar, len(polars))
	for i, p := range polars {
		s.Polars[i] = p
	}
	s.Rhub, s.Rtip, s.B = d.Blade.Rhub, d.Blade.Rtip, d.Blade.B
	s.Precone, s.Tilt, s.Yaw = d.Blade.Precone, d.Blade.Tilt, d.Blade.Yaw
	s.Rho, s.Mu, s.ShearExp, s.HubHt = d.Atmosphere.Rho, d.Atmosphere.Mu, d.Atmosphere.ShearExp, d.Atmosphere.HubHt
	s.NSector = d.Options.NSector
	s.TipLoss, s.HubLoss = d.Options.TipLoss, d.Options.HubLoss
	s.WakeRotation, s.UseCd = d.Options.WakeRotation, d.Options.UseCd
	s.MaxIter, s.Parallel = d.Options.MaxIter, d.Options.Parallel
	err = s.Init()
	return
}

// Power computes aerodynamic and electrical power at operating points
func (o *Analysis) Power(Uinf, Omega, Pitch []float64) (res *Power, err error) {

	// planform and aerodynamics
	g, err := o.Geometry()
	if err != nil {
		return
	}
	s, err := o.Solver(g)
	if err != nil {
		return
	}
	perf, err := s.Evaluate(Uinf, Omega, Pitch)
	if err != nil {
		return
	}
	res = &Power{Uinf: Uinf, Omega: Omega, Pitch: Pitch, P: perf.P, T: perf.T, Q: perf.Q}
	res.Jaero = jac.Chain(perf.J, g.J)

	// drivetrain; aerodynamic power enters as aeroPower
	elec, Jdt := o.Drivetrain.Power(perf.P, o.Data.RatedPower)
	Jdt.RenameIn("aeroPower", "P")
	res.Elec = elec
	res.Jelec = jac.Chain(Jdt, res.Jaero)

	// coefficients
	R, Jr := o.Radius()
	c, err := s.Coefficients(perf, Uinf, R)
	if err != nil {
		return nil, err
	}
	res.CP, res.CT, res.CQ = c.CP, c.CT, c.CQ
	res.Jcoef = jac.Chain(jac.Chain(c.J, res.Jaero), Jr)

	if o.Verbose {
		for k := range Uinf {
			io.Pf("U=%6.2f Ω=%6.3f pitch=%5.2f  P=%12.5e  Pelec=%12.5e  CP=%.4f\n", Uinf[k], Omega[k], Pitch[k], res.P[k], res.Elec[k], res.CP[k])
		}
	}
	return
}

// PowerCurve runs the operating points of the input data
//  Rotor speed follows from the tip-speed ratio when not given
func (o *Analysis) PowerCurve() (*Power, error) {
	op := o.Data.Operation
	n := len(op.Uinf)
	if n == 0 {
		return nil, chk.Err("rotor: no wind speeds given\n")
	}
	Omega, Pitch := op.Omega, op.Pitch
	if len(Omega) == 0 {
		R, _ := o.Radius()
		Omega = make([]float64, n)
		for k, U := range op.Uinf {
			Omega[k] = TipSpeedOmega(U, op.Tsr, R)
		}
	}
	if len(Pitch) == 0 {
		Pitch = make([]float64, n)
	}
	return o.Power(op.Uinf, Omega, Pitch)
}

// Loads computes distributed loads with ∂loads/∂design
func (o *Analysis) Loads(op bem.OperatingPoint) (res *bem.Loads, J *jac.Jacobian, err error) {
	g, err := o.Geometry()
	if err != nil {
		return
	}
	s, err := o.Solver(g)
	if err != nil {
		return
	}
	res, err = s.DistributedLoads(op)
	if err != nil {
		return
	}
	J = jac.Chain(res.J, g.J)
	return
}

// Distribution returns the probability of wind speeds below V with ∂F/∂{x,prm}
func (o *Analysis) Distribution(V []float64) ([]float64, *jac.Jacobian) {
	return wind.Calc(o.Cdf, V)
}

// TipSpeedOmega returns the rotor speed (rpm) for tip-speed ratio tsr
func TipSpeedOmega(V, tsr, R float64) float64 {
	return V * tsr / R * 30.0 / math.Pi
}
