// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/jac"
	"github.com/cpmech/rotorse/tests"
	"gonum.org/v1/gonum/num/dual"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// rotor5MW returns a solver for the reference blade
func rotor5MW(tst *testing.T) *Solver {
	b := tests.Blade5MW()
	o := New()
	o.R, o.Chord, o.Theta = b.R, b.Chord, b.Theta
	o.Rhub, o.Rtip, o.B = b.Rhub, b.Rtip, b.B
	o.Rho, o.Mu = b.Rho, b.Mu
	o.Precone, o.Tilt, o.Yaw = b.Precone, b.Tilt, b.Yaw
	o.HubHt, o.ShearExp = b.HubHt, b.ShearExp
	o.Polars = make([]Polar, len(b.R))
	for i := range o.Polars {
		o.Polars[i] = tests.NewSmoothPolar()
	}
	if err := o.Init(); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return o
}

// rpm returns the rotor speed for tip-speed ratio tsr
func rpm(U, tsr, Rtip float64) float64 {
	return U * tsr / Rtip * 30.0 / math.Pi
}

// nanPolar returns NaN coefficients
type nanPolar struct{}

func (nanPolar) EvaluateDual(alpha, Re dual.Number) (cl, cd dual.Number) {
	return dual.Number{Real: math.NaN()}, dual.Number{Real: math.NaN()}
}

func Test_brent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent01")

	f := func(x float64) float64 { return math.Cos(x) - x }
	x, it, ok := brent(f, 0, 1, f(0), f(1), 100)
	if !ok {
		tst.Errorf("brent should converge\n")
		return
	}
	io.Pforan("x = %v (%d iterations)\n", x, it)
	chk.Float64(tst, "root of cos(x)-x", 1e-11, x, 0.7390851332151607)

	_, it, ok = brent(f, 0, 1, f(0), f(1), 2)
	if ok || it != 2 {
		tst.Errorf("iteration cap should be reported\n")
	}
}

func Test_bem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bem01")

	o := rotor5MW(tst)
	U := []float64{5, 10, 11}
	Ω := []float64{rpm(5, 7.55, o.Rtip), rpm(10, 7.55, o.Rtip), 12.1}
	pitch := []float64{0, 0, 1}

	res, err := o.Evaluate(U, Ω, pitch)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	for k := range U {
		io.Pforan("U=%5.2f  P=%12.4e  T=%12.4e  Q=%12.4e\n", U[k], res.P[k], res.T[k], res.Q[k])
		if !(res.P[k] > 0) || !(res.T[k] > 0) || !(res.Q[k] > 0) {
			tst.Errorf("P, T and Q must be positive at point %d\n", k)
			return
		}
		chk.Float64(tst, "P = Q·Ω", 1e-8*res.P[k], res.P[k], res.Q[k]*Ω[k]*math.Pi/30)
	}
	if !(res.P[1] > res.P[0]) {
		tst.Errorf("power must increase with wind speed at constant tip-speed ratio\n")
	}

	// repeatable
	again, err := o.Evaluate(U, Ω, pitch)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	chk.Array(tst, "P (again)", 1e-15, again.P, res.P)
	chk.Array(tst, "T (again)", 1e-15, again.T, res.T)

	// concurrent points
	o.Parallel = true
	par, err := o.Evaluate(U, Ω, pitch)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	chk.Array(tst, "P (parallel)", 1e-15, par.P, res.P)
	chk.Array(tst, "Q (parallel)", 1e-15, par.Q, res.Q)
	chk.Array(tst, "dP/dchord (parallel)", 1e-15, par.J.Stack([]string{"P"}, "chord").RawMatrix().Data, res.J.Stack([]string{"P"}, "chord").RawMatrix().Data)

	// pointwise inputs only affect their own point
	chk.Float64(tst, "dP0/dUinf1", 1e-17, res.J.Get("P", "Uinf", 0, 1), 0)
	chk.Float64(tst, "dT2/dpitch0", 1e-17, res.J.Get("T", "pitch", 2, 0), 0)

	// axisymmetric flow uses one sector
	o.Tilt, o.ShearExp = 0, 0
	chk.Int(tst, "nsector", o.nsector(), 1)
	o.Tilt = 5
	o.NSector = 2
	chk.Int(tst, "nsector", o.nsector(), 4)
}

func Test_bem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bem02")

	U, Ω, pitch := 10.0, rpm(10, 7.55, 63), 1.0
	base := rotor5MW(tst)
	res, err := base.Evaluate([]float64{U}, []float64{Ω}, []float64{pitch})
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}

	// perturbed evaluation
	run := func(set func(o *Solver, x []float64, u, w, p *float64), x []float64) ([]float64, error) {
		o := rotor5MW(tst)
		u, w, p := U, Ω, pitch
		set(o, x, &u, &w, &p)
		r, err := o.Evaluate([]float64{u}, []float64{w}, []float64{p})
		if err != nil {
			return nil, err
		}
		return []float64{r.P[0], r.T[0], r.Q[0]}, nil
	}
	check := func(in string, x []float64, set func(o *Solver, x []float64, u, w, p *float64)) {
		J := jac.New([]jac.Var{{Name: "PTQ", Size: 3}}, []jac.Var{{Name: in, Size: len(x)}})
		J.SetBlock("PTQ", in, res.J.Stack([]string{"P", "T", "Q"}, in))
		jac.CheckBlock(tst, J, "PTQ", in, x, 1e-6, 1e-4, chk.Verbose, func(x []float64) ([]float64, error) {
			return run(set, x)
		})
	}

	check("Uinf", []float64{U}, func(o *Solver, x []float64, u, w, p *float64) { *u = x[0] })
	check("Omega", []float64{Ω}, func(o *Solver, x []float64, u, w, p *float64) { *w = x[0] })
	check("pitch", []float64{pitch}, func(o *Solver, x []float64, u, w, p *float64) { *p = x[0] })
	check("precone", []float64{base.Precone}, func(o *Solver, x []float64, u, w, p *float64) { o.Precone = x[0] })
	check("tilt", []float64{base.Tilt}, func(o *Solver, x []float64, u, w, p *float64) { o.Tilt = x[0] })
	check("yaw", []float64{base.Yaw}, func(o *Solver, x []float64, u, w, p *float64) { o.Yaw = x[0] })
	check("hubHt", []float64{base.HubHt}, func(o *Solver, x []float64, u, w, p *float64) { o.HubHt = x[0] })
	check("Rhub", []float64{base.Rhub}, func(o *Solver, x []float64, u, w, p *float64) { o.Rhub = x[0] })
	check("Rtip", []float64{base.Rtip}, func(o *Solver, x []float64, u, w, p *float64) { o.Rtip = x[0] })
	check("precurveTip", []float64{0}, func(o *Solver, x []float64, u, w, p *float64) { o.PrecurveTip = x[0] })
	check("chord", base.Chord, func(o *Solver, x []float64, u, w, p *float64) { o.Chord = x })
	check("theta", base.Theta, func(o *Solver, x []float64, u, w, p *float64) { o.Theta = x })
	check("r", base.R, func(o *Solver, x []float64, u, w, p *float64) { o.R = x })
	check("precurve", base.Precurve, func(o *Solver, x []float64, u, w, p *float64) { o.Precurve = x })
}

func Test_bem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bem03")

	o := rotor5MW(tst)
	op := OperatingPoint{Uinf: 10, Omega: rpm(10, 7.55, o.Rtip), Pitch: 0, Azimuth: 90}
	res, err := o.DistributedLoads(op)
	if err != nil {
		tst.Errorf("DistributedLoads failed: %v\n", err)
		return
	}
	n := len(o.R)
	chk.Int(tst, "number of points", len(res.R), n+2)
	chk.Float64(tst, "r[0]", 1e-15, res.R[0], o.Rhub)
	chk.Float64(tst, "r[n+1]", 1e-15, res.R[n+1], o.Rtip)
	chk.Float64(tst, "Px at hub", 1e-15, res.Px[0], 0)
	chk.Float64(tst, "Px at tip", 1e-15, res.Px[n+1], 0)
	chk.Float64(tst, "Py at tip", 1e-15, res.Py[n+1], 0)
	chk.Array(tst, "Pz", 1e-15, res.Pz, make([]float64, n+2))
	for i := 5; i <= n; i++ {
		if !(res.Px[i] > 0) {
			tst.Errorf("outboard normal load must be positive: Px[%d] = %g\n", i, res.Px[i])
			return
		}
	}

	// identity blocks
	chk.Float64(tst, "dV/dUinf", 1e-15, res.J.Get("loads.V", "Uinf", 0, 0), 1)
	chk.Float64(tst, "daz/daz", 1e-15, res.J.Get("loads.azimuth", "azimuth", 0, 0), 1)
	chk.Float64(tst, "dr[3]/dr[2]", 1e-15, res.J.Get("loads.r", "r", 3, 2), 1)
	chk.Float64(tst, "dr[0]/dRhub", 1e-15, res.J.Get("loads.r", "Rhub", 0, 0), 1)

	// derivatives against finite differences
	loads := func(set func(o *Solver, x []float64, op *OperatingPoint), x []float64) ([]float64, error) {
		s := rotor5MW(tst)
		p := op
		set(s, x, &p)
		r, err := s.DistributedLoads(p)
		if err != nil {
			return nil, err
		}
		return append(append([]float64{}, r.Px...), r.Py...), nil
	}
	check := func(in string, x []float64, set func(o *Solver, x []float64, op *OperatingPoint)) {
		J := jac.New([]jac.Var{{Name: "P", Size: 2 * (n + 2)}}, []jac.Var{{Name: in, Size: len(x)}})
		J.SetBlock("P", in, res.J.Stack([]string{"loads.Px", "loads.Py"}, in))
		jac.CheckBlock(tst, J, "P", in, x, 1e-6, 1e-4, chk.Verbose, func(x []float64) ([]float64, error) {
			return loads(set, x)
		})
	}
	check("azimuth", []float64{op.Azimuth}, func(o *Solver, x []float64, op *OperatingPoint) { op.Azimuth = x[0] })
	check("Uinf", []float64{op.Uinf}, func(o *Solver, x []float64, op *OperatingPoint) { op.Uinf = x[0] })
	check("Omega", []float64{op.Omega}, func(o *Solver, x []float64, op *OperatingPoint) { op.Omega = x[0] })
	check("tilt", []float64{o.Tilt}, func(o *Solver, x []float64, op *OperatingPoint) { o.Tilt = x[0] })
	check("theta", o.Theta, func(o *Solver, x []float64, op *OperatingPoint) { o.Theta = x })
	check("chord", o.Chord, func(o *Solver, x []float64, op *OperatingPoint) { o.Chord = x })
}

func Test_bem04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bem04. parked rotor")

	o := rotor5MW(tst)
	res, err := o.Evaluate([]float64{8}, []float64{0}, []float64{90})
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	io.Pforan("P=%v T=%v Q=%v\n", res.P[0], res.T[0], res.Q[0])
	chk.Float64(tst, "P", 1e-15, res.P[0], 0)
	if math.IsNaN(res.T[0]) || math.IsNaN(res.Q[0]) {
		tst.Errorf("thrust and torque must be finite\n")
	}

	loads, err := o.DistributedLoads(OperatingPoint{Uinf: 8, Pitch: 90})
	if err != nil {
		tst.Errorf("DistributedLoads failed: %v\n", err)
		return
	}
	for i, v := range loads.Px {
		if math.IsNaN(v) || math.IsNaN(loads.Py[i]) {
			tst.Errorf("loads must be finite\n")
			return
		}
	}
}

func Test_bem05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bem05. errors")

	o := rotor5MW(tst)
	if _, err := o.Evaluate([]float64{10, 11}, []float64{10}, []float64{0, 0}); err == nil {
		tst.Errorf("size mismatch should fail\n")
	}

	o.Polars[4] = nanPolar{}
	_, err := o.Evaluate([]float64{10}, []float64{10}, []float64{0})
	var cerr *ConvergenceError
	if !errors.As(err, &cerr) {
		tst.Errorf("ConvergenceError expected; got %v\n", err)
		return
	}
	io.Pforan("%v\n", err)
	chk.Int(tst, "station", cerr.Station, 4)
	chk.Int(tst, "sector", cerr.Sector, 0)

	s := New()
	s.R, s.Chord, s.Theta = []float64{2, 3}, []float64{1, 1}, []float64{0}
	s.Polars = []Polar{nanPolar{}, nanPolar{}}
	s.Rhub, s.Rtip, s.HubHt = 1, 4, 10
	if err := s.Init(); err == nil {
		tst.Errorf("theta size mismatch should fail\n")
	}
	s.Theta = []float64{0, 0}
	s.R = []float64{3, 2}
	if err := s.Init(); err == nil {
		tst.Errorf("decreasing radii should fail\n")
	}
	s.R = []float64{2, 3}
	if err := s.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
	}
}

func Test_bem06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bem06. solver used without Init")

	// reference with explicit zero precurve
	ref := rotor5MW(tst)
	U, Om, pitch := []float64{10}, []float64{12}, []float64{0}
	want, err := ref.Evaluate(U, Om, pitch)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	op := OperatingPoint{Uinf: 10, Omega: 12, Azimuth: 90}
	wantLoads, err := ref.DistributedLoads(op)
	if err != nil {
		tst.Errorf("DistributedLoads failed: %v\n", err)
		return
	}

	// same data, nil precurve and no Init
	b := tests.Blade5MW()
	fresh := func() *Solver {
		o := New()
		o.R, o.Chord, o.Theta = b.R, b.Chord, b.Theta
		o.Rhub, o.Rtip, o.B = b.Rhub, b.Rtip, b.B
		o.Rho, o.Mu = b.Rho, b.Mu
		o.Precone, o.Tilt, o.Yaw = b.Precone, b.Tilt, b.Yaw
		o.HubHt, o.ShearExp = b.HubHt, b.ShearExp
		o.Polars = make([]Polar, len(b.R))
		for i := range o.Polars {
			o.Polars[i] = tests.NewSmoothPolar()
		}
		return o
	}
	o := fresh()
	res, err := o.Evaluate(U, Om, pitch)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	chk.Array(tst, "precurve", 1e-17, o.Precurve, make([]float64, len(b.R)))
	chk.Float64(tst, "P", 1e-17, res.P[0], want.P[0])
	chk.Float64(tst, "T", 1e-17, res.T[0], want.T[0])

	o = fresh()
	loads, err := o.DistributedLoads(op)
	if err != nil {
		tst.Errorf("DistributedLoads failed: %v\n", err)
		return
	}
	chk.Array(tst, "Px", 1e-17, loads.Px, wantLoads.Px)

	// invalid data is reported instead of crashing
	o = fresh()
	o.Theta = o.Theta[:3]
	if _, err = o.Evaluate(U, Om, pitch); err == nil {
		tst.Errorf("Evaluate with a short theta should fail\n")
	}
	if _, err = o.DistributedLoads(op); err == nil {
		tst.Errorf("DistributedLoads with a short theta should fail\n")
	}
}

func Test_coef01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coef01")

	o := rotor5MW(tst)
	U := []float64{8, 10}
	perf, err := o.Evaluate(U, []float64{rpm(8, 7.55, 63), rpm(10, 7.55, 63)}, []float64{0, 0})
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	R := 62.9
	res, err := o.Coefficients(perf, U, R)
	if err != nil {
		tst.Errorf("Coefficients failed: %v\n", err)
		return
	}
	for k := range U {
		io.Pforan("CP=%.4f CT=%.4f CQ=%.4f\n", res.CP[k], res.CT[k], res.CQ[k])
		if !(res.CP[k] > 0 && res.CP[k] < 16.0/27.0) {
			tst.Errorf("CP must lie below the Betz limit: %g\n", res.CP[k])
		}
		q := 0.5 * o.Rho * U[k] * U[k] * math.Pi * R * R
		chk.Float64(tst, "CT", 1e-14, res.CT[k], perf.T[k]/q)
	}

	// derivatives against finite differences
	coef := func(u []float64, r float64) []float64 {
		c, _ := o.Coefficients(perf, u, r)
		return append(append(c.CP, c.CT...), c.CQ...)
	}
	J := jac.New([]jac.Var{{Name: "C", Size: 6}}, []jac.Var{{Name: "Uinf", Size: 2}, {Name: "R", Size: 1}})
	J.SetBlock("C", "Uinf", res.J.Stack([]string{"CP", "CT", "CQ"}, "Uinf"))
	J.SetBlock("C", "R", res.J.Stack([]string{"CP", "CT", "CQ"}, "R"))
	jac.CheckBlock(tst, J, "C", "Uinf", U, 1e-6, 1e-6, chk.Verbose, func(x []float64) ([]float64, error) {
		return coef(x, R), nil
	})
	jac.CheckBlock(tst, J, "C", "R", []float64{R}, 1e-6, 1e-6, chk.Verbose, func(x []float64) ([]float64, error) {
		return coef(U, x[0]), nil
	})

	if _, err := o.Coefficients(perf, []float64{1}, R); err == nil {
		tst.Errorf("size mismatch should fail\n")
	}
}
