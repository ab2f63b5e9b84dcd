// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
)

const deg2rad = math.Pi / 180.0
const rpm2rad = math.Pi / 30.0

// inputs holds all differentiable quantities of one evaluation
type inputs struct {
	r, chord, theta, precurve []dual.Number
	precurveTip, rhub, rtip   dual.Number
	precone, tilt, yaw, hubHt dual.Number
	uinf, omega, pitch, az    dual.Number
}

// seed returns the inputs with the Emag part of component idx of name set to one
//  An empty name seeds nothing.
func (o *Solver) seed(op OperatingPoint, name string, idx int) (x *inputs) {
	x = &inputs{
		r:           lift(o.R),
		chord:       lift(o.Chord),
		theta:       lift(o.Theta),
		precurve:    lift(o.Precurve),
		precurveTip: dual.Number{Real: o.PrecurveTip},
		rhub:        dual.Number{Real: o.Rhub},
		rtip:        dual.Number{Real: o.Rtip},
		precone:     dual.Number{Real: o.Precone},
		tilt:        dual.Number{Real: o.Tilt},
		yaw:         dual.Number{Real: o.Yaw},
		hubHt:       dual.Number{Real: o.HubHt},
		uinf:        dual.Number{Real: op.Uinf},
		omega:       dual.Number{Real: op.Omega},
		pitch:       dual.Number{Real: op.Pitch},
		az:          dual.Number{Real: op.Azimuth},
	}
	switch name {
	case "r":
		x.r[idx].Emag = 1
	case "chord":
		x.chord[idx].Emag = 1
	case "theta":
		x.theta[idx].Emag = 1
	case "precurve":
		x.precurve[idx].Emag = 1
	case "precurveTip":
		x.precurveTip.Emag = 1
	case "Rhub":
		x.rhub.Emag = 1
	case "Rtip":
		x.rtip.Emag = 1
	case "precone":
		x.precone.Emag = 1
	case "tilt":
		x.tilt.Emag = 1
	case "yaw":
		x.yaw.Emag = 1
	case "hubHt":
		x.hubHt.Emag = 1
	case "Uinf":
		x.uinf.Emag = 1
	case "Omega":
		x.omega.Emag = 1
	case "pitch":
		x.pitch.Emag = 1
	case "azimuth":
		x.az.Emag = 1
	}
	return
}

// curvature holds coordinates in the azimuthal system, total cone angle and path length
type curvature struct {
	xaz, zaz, cone, s []dual.Number
}

// newCurvature computes the blade shape with precone (rad)
func newCurvature(r, precurve []dual.Number, precone dual.Number) (c *curvature) {
	n := len(r)
	c = &curvature{
		xaz:  make([]dual.Number, n),
		zaz:  make([]dual.Number, n),
		cone: make([]dual.Number, n),
		s:    make([]dual.Number, n),
	}
	sp, cp := dual.Sin(precone), dual.Cos(precone)
	for i := 0; i < n; i++ {
		c.xaz[i] = dual.Add(dual.Mul(dual.Scale(-1, r[i]), sp), dual.Mul(precurve[i], cp))
		c.zaz[i] = dual.Add(dual.Mul(r[i], cp), dual.Mul(precurve[i], sp))
	}
	slope := func(i int) dual.Number {
		return atan2(dual.Scale(-1, dual.Sub(c.xaz[i+1], c.xaz[i])), dual.Sub(c.zaz[i+1], c.zaz[i]))
	}
	c.cone[0] = slope(0)
	for i := 1; i < n-1; i++ {
		c.cone[i] = dual.Scale(0.5, dual.Add(slope(i-1), slope(i)))
	}
	c.cone[n-1] = slope(n - 2)
	for i := 1; i < n; i++ {
		dp, dr := dual.Sub(precurve[i], precurve[i-1]), dual.Sub(r[i], r[i-1])
		c.s[i] = dual.Add(c.s[i-1], dual.Sqrt(dual.Add(dual.Mul(dp, dp), dual.Mul(dr, dr))))
	}
	return
}

// section holds the data of one station in one sector
type section struct {
	r, chord, theta, vx, vy dual.Number
	rhub, rtip, pitch       dual.Number
	polar                   Polar
}

// section computes the velocities at station i for azimuth az (deg)
func (o *Solver) section(x *inputs, c *curvature, i int, az dual.Number) (s *section) {
	sy, cy := dual.Sin(rad(x.yaw)), dual.Cos(rad(x.yaw))
	st, ct := dual.Sin(rad(x.tilt)), dual.Cos(rad(x.tilt))
	sa, ca := dual.Sin(rad(az)), dual.Cos(rad(az))
	sc, cc := dual.Sin(c.cone[i]), dual.Cos(c.cone[i])

	// height in wind-aligned system (blade has no presweep)
	h := dual.Sub(dual.Mul(dual.Mul(c.zaz[i], ca), ct), dual.Mul(c.xaz[i], st))

	// wind with shear
	V := x.uinf
	if o.ShearExp != 0 {
		V = dual.Mul(x.uinf, dual.PowReal(dual.Add(dual.Number{Real: 1}, div(h, x.hubHt)), o.ShearExp))
	}

	// blade coordinate system
	cyst := dual.Mul(cy, st)
	vwx := dual.Mul(V, dual.Add(dual.Mul(dual.Add(dual.Mul(cyst, ca), dual.Mul(sy, sa)), sc), dual.Mul(dual.Mul(cy, ct), cc)))
	vwy := dual.Mul(V, dual.Sub(dual.Mul(cyst, sa), dual.Mul(sy, ca)))
	Ω := dual.Scale(rpm2rad, x.omega)
	vry := dual.Mul(Ω, c.zaz[i])

	return &section{
		r:     x.r[i],
		chord: x.chord[i],
		theta: rad(x.theta[i]),
		vx:    vwx,
		vy:    dual.Add(vwy, vry),
		rhub:  x.rhub,
		rtip:  x.rtip,
		pitch: rad(x.pitch),
		polar: o.Polars[i],
	}
}

// relativeWind computes angle of attack, relative speed and Reynolds number
func (o *Solver) relativeWind(φ, a, ap dual.Number, s *section) (alpha, W, Re dual.Number) {
	alpha = dual.Sub(φ, dual.Add(s.theta, s.pitch))
	one := dual.Number{Real: 1}
	switch {
	case math.Abs(a.Real) > 10:
		W = div(dual.Mul(s.vy, dual.Add(one, ap)), dual.Cos(φ))
	case math.Abs(ap.Real) > 10:
		W = div(dual.Mul(s.vx, dual.Sub(one, a)), dual.Sin(φ))
	default:
		u := dual.Mul(s.vx, dual.Sub(one, a))
		v := dual.Mul(s.vy, dual.Add(one, ap))
		W = dual.Sqrt(dual.Add(dual.Mul(u, u), dual.Mul(v, v)))
	}
	Re = dual.Scale(o.Rho/o.Mu, dual.Mul(W, s.chord))
	return
}

// induction computes the residual and induction factors at inflow angle φ
func (o *Solver) induction(φ, cl, cd dual.Number, s *section) (fzero, a, ap dual.Number) {
	B := float64(o.B)
	one := dual.Number{Real: 1}
	σ := dual.Scale(B/(2*math.Pi), div(s.chord, s.r))
	sφ, cφ := dual.Sin(φ), dual.Cos(φ)

	// normal and tangential coefficients
	cn, ct := dual.Mul(cl, cφ), dual.Mul(cl, sφ)
	if o.UseCd {
		cn = dual.Add(cn, dual.Mul(cd, sφ))
		ct = dual.Sub(ct, dual.Mul(cd, cφ))
	}

	// Prandtl's tip and hub losses
	F := one
	asφ := dual.Abs(sφ)
	if o.TipLoss {
		f := dual.Scale(B/2, div(dual.Sub(s.rtip, s.r), dual.Mul(s.r, asφ)))
		F = dual.Mul(F, dual.Scale(2/math.Pi, dual.Acos(dual.Exp(dual.Scale(-1, f)))))
	}
	if o.HubLoss {
		f := dual.Scale(B/2, div(dual.Sub(s.r, s.rhub), dual.Mul(s.rhub, asφ)))
		F = dual.Mul(F, dual.Scale(2/math.Pi, dual.Acos(dual.Exp(dual.Scale(-1, f)))))
	}

	// momentum parameters
	k := div(dual.Mul(σ, cn), dual.Scale(4, dual.Mul(F, dual.Mul(sφ, sφ))))
	kp := div(dual.Mul(σ, ct), dual.Scale(4, dual.Mul(F, dual.Mul(sφ, cφ))))

	// axial induction
	if φ.Real > 0 {
		if k.Real <= 2.0/3.0 {
			a = div(k, dual.Add(one, k))
		} else {
			Fk := dual.Scale(2, dual.Mul(F, k))
			g1 := dual.Sub(Fk, dual.Sub(dual.Number{Real: 10.0 / 9.0}, F))
			g2 := dual.Sub(Fk, dual.Mul(F, dual.Sub(dual.Number{Real: 4.0 / 3.0}, F)))
			g3 := dual.Sub(Fk, dual.Sub(dual.Number{Real: 25.0 / 9.0}, dual.Scale(2, F)))
			if math.Abs(g3.Real) < 1e-6 {
				a = dual.Sub(one, dual.Scale(0.5, dual.Inv(dual.Sqrt(g2))))
			} else {
				a = div(dual.Sub(g1, dual.Sqrt(g2)), g3)
			}
		}
	} else {
		if k.Real > 1 {
			a = div(k, dual.Sub(k, one))
		}
	}

	// tangential induction
	ap = div(kp, dual.Sub(one, kp))
	if !o.WakeRotation {
		ap, kp = dual.Number{}, dual.Number{}
	}

	// residual
	λr := div(s.vy, s.vx)
	if φ.Real > 0 {
		fzero = dual.Sub(div(sφ, dual.Sub(one, a)), dual.Mul(div(cφ, λr), dual.Sub(one, kp)))
	} else {
		fzero = dual.Sub(dual.Mul(sφ, dual.Sub(one, k)), dual.Mul(div(cφ, λr), dual.Sub(one, kp)))
	}
	return
}

// residual evaluates the inflow residual using the Reynolds number without induction
func (o *Solver) residual(φ dual.Number, s *section) (fzero, a, ap dual.Number) {
	alpha, _, Re := o.relativeWind(φ, dual.Number{}, dual.Number{}, s)
	cl, cd := s.polar.EvaluateDual(alpha, Re)
	return o.induction(φ, cl, cd, s)
}

// loads computes normal and tangential loads per unit length at inflow angle φ
func (o *Solver) loads(φ dual.Number, s *section, rotating bool) (Np, Tp dual.Number) {
	var a, ap dual.Number
	if rotating {
		_, a, ap = o.residual(φ, s)
	}
	alpha, W, Re := o.relativeWind(φ, a, ap, s)
	cl, cd := s.polar.EvaluateDual(alpha, Re)
	sφ, cφ := dual.Sin(φ), dual.Cos(φ)
	cn := dual.Add(dual.Mul(cl, cφ), dual.Mul(cd, sφ))
	ct := dual.Sub(dual.Mul(cl, sφ), dual.Mul(cd, cφ))
	qc := dual.Mul(dual.Scale(0.5*o.Rho, dual.Mul(W, W)), s.chord)
	return dual.Mul(cn, qc), dual.Mul(ct, qc)
}

// thrustTorque integrates loads of one blade from hub to tip; loads vanish at both ends
func (o *Solver) thrustTorque(x *inputs, Np, Tp []dual.Number) (T, Q dual.Number) {
	n := len(Np)
	rf := make([]dual.Number, n+2)
	pf := make([]dual.Number, n+2)
	npf := make([]dual.Number, n+2)
	tpf := make([]dual.Number, n+2)
	rf[0], rf[n+1] = x.rhub, x.rtip
	pf[n+1] = x.precurveTip
	for i := 0; i < n; i++ {
		rf[i+1], pf[i+1] = x.r[i], x.precurve[i]
		npf[i+1], tpf[i+1] = Np[i], Tp[i]
	}
	c := newCurvature(rf, pf, rad(x.precone))
	for i := 0; i < n+1; i++ {
		ds := dual.Scale(0.5, dual.Sub(c.s[i+1], c.s[i]))
		thrust := dual.Add(dual.Mul(npf[i], dual.Cos(c.cone[i])), dual.Mul(npf[i+1], dual.Cos(c.cone[i+1])))
		torque := dual.Add(dual.Mul(tpf[i], c.zaz[i]), dual.Mul(tpf[i+1], c.zaz[i+1]))
		T = dual.Add(T, dual.Mul(ds, thrust))
		Q = dual.Add(Q, dual.Mul(ds, torque))
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func lift(v []float64) (res []dual.Number) {
	res = make([]dual.Number, len(v))
	for i, x := range v {
		res[i].Real = x
	}
	return
}

func rad(deg dual.Number) dual.Number {
	return dual.Scale(deg2rad, deg)
}

func div(a, b dual.Number) dual.Number {
	return dual.Mul(a, dual.Inv(b))
}

// atan2 returns the angle of (x,y) with its derivative
func atan2(y, x dual.Number) dual.Number {
	d := x.Real*x.Real + y.Real*y.Real
	return dual.Number{
		Real: math.Atan2(y.Real, x.Real),
		Emag: (x.Real*y.Emag - y.Real*x.Emag) / d,
	}
}
