// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

// Correction3D holds the parameters of the rotational correction of a polar
type Correction3D struct {
	ROverR      float64 // representative r/R
	ChordOverR  float64 // local c/r
	Tsr         float64 // design tip-speed ratio
	AlphaMaxCor float64 // angle beyond which the correction fades out (deg)
	AlphaLinMin float64 // start of linear region (deg)
	AlphaLinMax float64 // end of linear region (deg)
	CdMax       float64 // drag coefficient used to extrapolate
	Applied     bool    // correction has been applied
}

// NewCorrection3D returns the parameters of the rotational correction
func NewCorrection3D(s *Settings) Correction3D {
	return Correction3D{
		ROverR:      s.ROverR,
		ChordOverR:  s.ChordOverR,
		Tsr:         s.Tsr,
		AlphaMaxCor: 30,
		AlphaLinMin: -5,
		AlphaLinMax: 5,
		CdMax:       s.CdMax,
	}
}

// Correct3D applies the Du-Selig lift and Eggers drag corrections for rotational effects [3]
//  alpha is in degrees. A new table is returned.
func Correct3D(t *Table, c Correction3D) (res *Table, err error) {

	// linear region
	var xa, ya []float64
	for i, a := range t.Alpha {
		if a >= c.AlphaLinMin && a <= c.AlphaLinMax {
			xa = append(xa, a*math.Pi/180.0)
			ya = append(ya, t.Cl[i])
		}
	}
	if len(xa) < 2 {
		return nil, chk.Err("airfoil: linear region [%g,%g] has %d points; at least 2 are required\n", c.AlphaLinMin, c.AlphaLinMax, len(xa))
	}
	b, m := stat.LinearRegression(xa, ya, nil, false)
	if m <= 0 {
		return nil, chk.Err("airfoil: lift slope %g of linear region is not positive\n", m)
	}
	α0 := -b / m

	// Du-Selig factor
	λ := c.Tsr / math.Sqrt(1+c.Tsr*c.Tsr)
	expon := 1.0 / (λ * c.ROverR)
	cr := math.Pow(c.ChordOverR, expon)
	fcl := 1.0 / m * (1.6*c.ChordOverR/0.1267*(1-cr)/(1+cr) - 1)

	// corrected coefficients
	αmax := c.AlphaMaxCor * math.Pi / 180.0
	res = t.clone()
	for i, a := range t.Alpha {
		α := a * math.Pi / 180.0
		adj := 1.0
		if α > αmax {
			adj = math.Pow((math.Pi/2-α)/(math.Pi/2-αmax), 2)
		}
		dcl := fcl * (m*(α-α0) - t.Cl[i]) * adj
		res.Cl[i] = t.Cl[i] + dcl
		res.Cd[i] = t.Cd[i] + dcl*(math.Sin(α)-0.12*math.Cos(α))/(math.Cos(α)+0.12*math.Sin(α))
	}
	return
}

// Extrapolate extends a table to [-180°,180°] with Viterna's method [4]
//  The table must be within (-90°,90°) and sorted by alpha.
func Extrapolate(t *Table, cdmax float64) (res *Table, err error) {

	// constants
	const nalpha = 15
	const cladj = 0.7
	const cdmin = 0.001

	// check
	n := len(t.Alpha)
	if n < 2 {
		return nil, chk.Err("airfoil: at least 2 angles are required for extrapolation\n")
	}
	αh := t.Alpha[n-1] * math.Pi / 180.0
	αl := t.Alpha[0] * math.Pi / 180.0
	if αh >= math.Pi/2 || αl <= -math.Pi/2 || αh <= 0 {
		return nil, chk.Err("airfoil: cannot extrapolate table covering [%g,%g]\n", t.Alpha[0], t.Alpha[n-1])
	}
	clh, cdh, cmh := t.Cl[n-1], t.Cd[n-1], t.Cm[n-1]
	cll, cdl := t.Cl[0], t.Cd[0]

	// Viterna constants
	cdmax = math.Max(floats.Max(t.Cd), cdmax)
	sa, ca := math.Sin(αh), math.Cos(αh)
	A := (clh - cdmax*sa*ca) * sa / (ca * ca)
	B := (cdh - cdmax*sa*sa) / ca
	viterna := func(α, adj float64) (cl, cd float64) {
		α = math.Max(α, 1e-4)
		cl = adj * (cdmax/2*math.Sin(2*α) + A*math.Cos(α)*math.Cos(α)/math.Sin(α))
		cd = cdmax*math.Sin(α)*math.Sin(α) + B*math.Cos(α)
		return
	}

	// angles (rad) of each segment with cl and cd
	var alpha, cl, cd []float64
	add := func(a, l, d float64) {
		alpha = append(alpha, a)
		cl = append(cl, l)
		cd = append(cd, d)
	}

	// -180 → -180+αh
	for _, a := range utl.LinSpace(-math.Pi, -math.Pi+αh, nalpha) {
		_, d := viterna(a+math.Pi, 1)
		add(a, (a+math.Pi)/αh*clh*cladj, d)
	}

	// -180+αh → -90
	for _, a := range utl.LinSpace(-math.Pi+αh, -math.Pi/2, nalpha)[1:] {
		l, d := viterna(a+math.Pi, cladj)
		add(a, l, d)
	}

	// -90 → -αh, then -αh → αl
	//  only the endpoint αl is dropped since it is the first row of the table; every
	//  interior sample is kept (airfoilprep's [1:-2] also drops the sample next to αl)
	seg := utl.LinSpace(-math.Pi/2, αl, nalpha)[1 : nalpha-1]
	if αl > -αh {
		seg = utl.LinSpace(-math.Pi/2, -αh, nalpha)[1:]
	}
	for _, a := range seg {
		l, d := viterna(-a, -cladj)
		add(a, l, d)
	}
	if αl > -αh {
		for _, a := range utl.LinSpace(-αh, αl, nalpha)[1 : nalpha-1] {
			l := -clh*cladj + (a+αh)/(αl+αh)*(cll+clh*cladj)
			d := cdl + (a-αl)/(-αh-αl)*(cdh-cdl)
			add(a, l, d)
		}
	}

	// table
	for i, a := range t.Alpha {
		add(a*math.Pi/180.0, t.Cl[i], t.Cd[i])
	}

	// αh → 90
	for _, a := range utl.LinSpace(αh, math.Pi/2, nalpha)[1:] {
		l, d := viterna(a, 1)
		add(a, l, d)
	}

	// 90 → 180-αh
	for _, a := range utl.LinSpace(math.Pi/2, math.Pi-αh, nalpha)[1:] {
		l, d := viterna(math.Pi-a, -cladj)
		add(a, l, d)
	}

	// 180-αh → 180
	for _, a := range utl.LinSpace(math.Pi-αh, math.Pi, nalpha)[1:] {
		_, d := viterna(math.Pi-a, 1)
		add(a, (a-math.Pi)/αh*clh*cladj, d)
	}

	// results
	res = &Table{Re: t.Re, Alpha: make([]float64, len(alpha)), Cl: cl, Cd: cd}
	for i, a := range alpha {
		res.Alpha[i] = a * 180.0 / math.Pi
		res.Cd[i] = math.Max(res.Cd[i], cdmin)
	}
	res.Cm = extrapolateCm(t, res.Alpha, cl, cd, clh, cdh, cmh)
	return
}

// extrapolateCm moves the centre of pressure from its value at the end of the table
// towards mid-chord; near ±180° tabulated values of flat plates are used
func extrapolateCm(t *Table, alpha, cl, cd []float64, clh, cdh, cmh float64) (cm []float64) {
	n := len(t.Alpha)
	cm = make([]float64, len(alpha))
	nonzero := false
	for _, v := range t.Cm {
		if v != 0 {
			nonzero = true
			break
		}
	}

	// grid with 10° steps outside the table
	var acm, vcm []float64
	for a := -180.0; a < t.Alpha[0]; a += 10 {
		acm = append(acm, a)
		vcm = append(vcm, 0)
	}
	k0 := len(acm)
	acm = append(acm, t.Alpha...)
	vcm = append(vcm, t.Cm...)
	k1 := len(acm)
	for a := math.Ceil(t.Alpha[n-1]/10+1e-12) * 10; a <= 180; a += 10 {
		acm = append(acm, a)
		vcm = append(vcm, 0)
	}

	if nonzero {
		var pl, pd interp.PiecewiseLinear
		pl.Fit(alpha, cl)
		pd.Fit(alpha, cd)
		αh := t.Alpha[n-1] * math.Pi / 180.0
		cnh := clh*math.Cos(αh) + cdh*math.Sin(αh)
		xm := 0.25 - cmh/cnh
		coef := (xm - 0.25) / math.Tan(αh-math.Pi/2)
		flat := map[float64]float64{165: -0.4, 170: -0.5, 175: -0.25, 180: 0, -165: 0.35, -170: 0.4, -175: 0.2, -180: 0}
		for i, a := range acm {
			if i >= k0 && i < k1 {
				continue
			}
			if v, ok := flat[a]; ok && math.Abs(a) >= 165 {
				vcm[i] = v
				continue
			}
			if math.Abs(a) < 0.01 {
				continue
			}
			α := a * math.Pi / 180.0
			l, d := pl.Predict(a), pd.Predict(a)
			if a > 0 {
				x := coef*math.Tan(α-math.Pi/2) + 0.25
				vcm[i] = -(x - 0.25) * (l*math.Cos(α) + d*math.Sin(α))
			} else {
				x := coef*math.Tan(-α-math.Pi/2) + 0.25
				vcm[i] = (x - 0.25) * (-l*math.Cos(α) + d*math.Sin(α))
			}
		}
	}
	var pm interp.PiecewiseLinear
	pm.Fit(acm, vcm)
	for i, a := range alpha {
		cm[i] = pm.Predict(a)
	}
	return
}
