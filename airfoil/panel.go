// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Analyzer computes section coefficients at one angle of attack (deg)
//  ok is false if the analysis did not produce a usable solution.
type Analyzer interface {
	Solve(alpha float64) (cl, cd, cm float64, ok bool)
}

// AnalyzerFactory creates an analyzer for a closed loop of surface points
type AnalyzerFactory func(x, y []float64, re, mach float64, iter int) (Analyzer, error)

// Panel implements a linear-strength vortex panel method with a boundary-layer surrogate
//  Pressure coefficients follow from the inviscid solution [1]. Viscous effects are included
//  by: Kirchhoff flow with the static separation point of Beddoes-Leishman; turbulent
//  flat-plate skin friction with a thickness form factor; Prandtl-Glauert compressibility.
type Panel struct {

	// flow
	Re   float64 // Reynolds number
	Mach float64 // Mach number

	// separation
	Alpha1 float64 // angle of static stall measured from zero lift (deg)
	S1, S2 float64 // separation constants before and after stall (deg)

	// geometry (clockwise, unit chord, leading edge at x=0)
	xb, yb  []float64 // boundary points
	xm, ym  []float64 // control points
	s, θ    []float64 // panel lengths and angles
	thick   float64   // thickness ratio

	// influence
	at  *mat.Dense // tangential velocity coefficients
	lu  mat.LU     // factorised normal velocity coefficients
	a0  float64    // zero-lift angle (rad)
	cd0 float64    // zero-lift drag
}

// NewPanel allocates a panel analyzer. iter is unused since the solution is direct
func NewPanel(x, y []float64, re, mach float64, iter int) (Analyzer, error) {
	o := &Panel{Re: re, Mach: mach, Alpha1: 14, S1: 3, S2: 2}
	if err := o.init(x, y); err != nil {
		return nil, err
	}
	return o, nil
}

// Solve computes coefficients at alpha (deg)
func (o *Panel) Solve(alpha float64) (cl, cd, cm float64, ok bool) {
	α := alpha * math.Pi / 180.0

	// inviscid
	cli, cmi, ok := o.inviscid(α)
	if !ok {
		return
	}

	// separation point
	αe := math.Abs(α-o.a0) * 180.0 / math.Pi
	var f float64
	if αe <= o.Alpha1 {
		f = 1 - 0.3*math.Exp((αe-o.Alpha1)/o.S1)
	} else {
		f = 0.04 + 0.66*math.Exp((o.Alpha1-αe)/o.S2)
	}
	k := math.Pow((1+math.Sqrt(f))/2, 2)

	// compressibility
	β := math.Sqrt(1 - o.Mach*o.Mach)

	// coefficients
	cl = cli * k / β
	sa := math.Sin(α - o.a0)
	cd = o.cd0 + 0.01*cl*cl + 2.0*math.Pow(1-math.Sqrt(f), 2)*sa*sa
	cn := cl*math.Cos(α) + cd*math.Sin(α)
	cm = cmi/β + cn*(-0.135*(1-f)+0.04*math.Sin(math.Pi*f*f))
	ok = isFinite(cl) && isFinite(cd) && isFinite(cm)
	return
}

// init sets geometry and factorises the influence matrix
func (o *Panel) init(x, y []float64) error {

	// check
	if len(x) != len(y) || len(x) < 4 {
		return configErr("airfoil: panel method needs at least 4 points; got %d and %d\n", len(x), len(y))
	}
	if o.Re <= 0 || o.Mach < 0 || o.Mach >= 1 {
		return configErr("airfoil: invalid flow conditions: Re=%g, Mach=%g\n", o.Re, o.Mach)
	}

	// unit chord
	xmin, xmax := floats.Min(x), floats.Max(x)
	c := xmax - xmin
	if c <= 0 {
		return configErr("airfoil: coordinates have zero chord\n")
	}
	o.xb, o.yb = make([]float64, len(x)), make([]float64, len(y))
	for i := range x {
		o.xb[i] = (x[i] - xmin) / c
		o.yb[i] = y[i] / c
	}
	o.thick = (floats.Max(o.yb) - floats.Min(o.yb))

	// closed and clockwise
	n := len(o.xb)
	if o.xb[0] != o.xb[n-1] || o.yb[0] != o.yb[n-1] {
		o.xb = append(o.xb, o.xb[0])
		o.yb = append(o.yb, o.yb[0])
	}
	area := 0.0
	for i := 0; i < len(o.xb)-1; i++ {
		area += o.xb[i]*o.yb[i+1] - o.xb[i+1]*o.yb[i]
	}
	if area == 0 {
		return configErr("airfoil: coordinates enclose no area\n")
	}
	if area > 0 {
		floats.Reverse(o.xb)
		floats.Reverse(o.yb)
	}

	// panels
	m := len(o.xb) - 1
	o.xm, o.ym = make([]float64, m), make([]float64, m)
	o.s, o.θ = make([]float64, m), make([]float64, m)
	for i := 0; i < m; i++ {
		dx, dy := o.xb[i+1]-o.xb[i], o.yb[i+1]-o.yb[i]
		o.xm[i] = 0.5 * (o.xb[i] + o.xb[i+1])
		o.ym[i] = 0.5 * (o.yb[i] + o.yb[i+1])
		o.s[i] = math.Hypot(dx, dy)
		o.θ[i] = math.Atan2(dy, dx)
		if o.s[i] == 0 {
			return configErr("airfoil: panel %d has zero length\n", i)
		}
	}

	// influence coefficients
	an := mat.NewDense(m+1, m+1, nil)
	o.at = mat.NewDense(m, m+1, nil)
	cn1, cn2 := make([]float64, m), make([]float64, m)
	ct1, ct2 := make([]float64, m), make([]float64, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				cn1[j], cn2[j] = -1, 1
				ct1[j], ct2[j] = math.Pi/2, math.Pi/2
				continue
			}
			dx, dy := o.xm[i]-o.xb[j], o.ym[i]-o.yb[j]
			sj, cj := math.Sin(o.θ[j]), math.Cos(o.θ[j])
			A := -dx*cj - dy*sj
			B := dx*dx + dy*dy
			C := math.Sin(o.θ[i] - o.θ[j])
			D := math.Cos(o.θ[i] - o.θ[j])
			E := dx*sj - dy*cj
			F := math.Log(1 + o.s[j]*(o.s[j]+2*A)/B)
			G := math.Atan2(E*o.s[j], B+A*o.s[j])
			P := dx*math.Sin(o.θ[i]-2*o.θ[j]) + dy*math.Cos(o.θ[i]-2*o.θ[j])
			Q := dx*math.Cos(o.θ[i]-2*o.θ[j]) - dy*math.Sin(o.θ[i]-2*o.θ[j])
			cn2[j] = D + 0.5*Q*F/o.s[j] - (A*C+D*E)*G/o.s[j]
			cn1[j] = 0.5*D*F + C*G - cn2[j]
			ct2[j] = C + 0.5*P*F/o.s[j] + (A*D-C*E)*G/o.s[j]
			ct1[j] = 0.5*C*F - D*G - ct2[j]
		}
		an.Set(i, 0, cn1[0])
		an.Set(i, m, cn2[m-1])
		o.at.Set(i, 0, ct1[0])
		o.at.Set(i, m, ct2[m-1])
		for j := 1; j < m; j++ {
			an.Set(i, j, cn1[j]+cn2[j-1])
			o.at.Set(i, j, ct1[j]+ct2[j-1])
		}
	}

	// Kutta condition
	an.Set(m, 0, 1)
	an.Set(m, m, 1)
	o.lu.Factorize(an)
	if c := o.lu.Cond(); math.IsInf(c, 1) || c > 1e14 {
		return chk.Err("airfoil: panel influence matrix is singular (cond=%g)\n", c)
	}

	// zero-lift angle
	cl0, _, ok0 := o.inviscid(0)
	clp, _, okp := o.inviscid(math.Pi / 180.0)
	clm, _, okm := o.inviscid(-math.Pi / 180.0)
	if !ok0 || !okp || !okm {
		return chk.Err("airfoil: panel method failed at small angles of attack\n")
	}
	slope := (clp - clm) / (2 * math.Pi / 180.0)
	if slope <= 0 {
		return chk.Err("airfoil: non-positive lift slope %g; check the ordering of coordinates\n", slope)
	}
	o.a0 = -cl0 / slope

	// skin friction of both surfaces with form factor
	cf := 0.455 / math.Pow(math.Log10(o.Re), 2.58)
	o.cd0 = 2 * cf * (1 + 2*o.thick + 60*math.Pow(o.thick, 4))
	return nil
}

// inviscid computes the lift and quarter-chord moment of the potential flow at α (rad)
func (o *Panel) inviscid(α float64) (cl, cm float64, ok bool) {
	m := len(o.s)
	rhs := mat.NewVecDense(m+1, nil)
	for i := 0; i < m; i++ {
		rhs.SetVec(i, math.Sin(o.θ[i]-α))
	}
	var γ mat.VecDense
	if err := o.lu.SolveVecTo(&γ, false, rhs); err != nil {
		return
	}
	var fx, fy, mz float64
	for i := 0; i < m; i++ {
		v := math.Cos(o.θ[i] - α)
		for j := 0; j <= m; j++ {
			v += o.at.At(i, j) * γ.AtVec(j)
		}
		cp := 1 - v*v
		dfx := cp * math.Sin(o.θ[i]) * o.s[i]
		dfy := -cp * math.Cos(o.θ[i]) * o.s[i]
		fx += dfx
		fy += dfy
		mz += (o.xm[i]-0.25)*dfy - o.ym[i]*dfx
	}
	cl = fy*math.Cos(α) - fx*math.Sin(α)
	cm = -mz
	ok = isFinite(cl) && isFinite(cm)
	return
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
