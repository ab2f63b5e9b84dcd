// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

const aerodynHeader = `AeroDyn airfoil file.  Compatible with AeroDyn v13.0.
DU21 polar for tests
Generated with a few rows only
`

const aerodynParams = `0     Control setting
8     Stall angle (deg)
-3.0  Zero lift angle of attack (deg)
6.2   Cn slope for zero lift (dimensionless)
1.4   Cn at stall value for positive angle of attack
-0.8  Cn at stall value for negative angle of attack
0.0   Angle of attack for minimum CD (deg)
0.006 Minimum CD value
`

func writeAerodyn(tst *testing.T, dir, fn, data string) string {
	path := filepath.Join(dir, fn)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		tst.Fatalf("cannot write file: %v\n", err)
	}
	return path
}

func Test_aerodyn01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("aerodyn01. reading AeroDyn polar files")

	dir := tst.TempDir()
	data := aerodynHeader + "2     Number of airfoil tables in this file\n" +
		"0.75  Reynolds number in millions\n" + aerodynParams +
		"-180.0  0.000  0.0185  0.0000\n" +
		"-10.0  -0.800  0.0200 -0.0100\n" +
		"0.0     0.250  0.0070 -0.0800\n" +
		"10.0    1.300  0.0150 -0.0900\n" +
		"180.0   0.000  0.0185  0.0000\n" +
		"EOT\n" +
		"1.5   Reynolds number in millions\n" + aerodynParams +
		"-180.0  0.000  0.0180\n" +
		"0.0     0.300  0.0060\n" +
		"\n" +
		"180.0   0.000  0.0180\n" +
		"EOT 2\n"
	fn := writeAerodyn(tst, dir, "du21.dat", data)
	p, err := ReadAerodyn(fn)
	if err != nil {
		tst.Errorf("ReadAerodyn failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of tables", len(p.Tables), 2)
	chk.Float64(tst, "Re0", 1e-8, p.Tables[0].Re, 0.75e6)
	chk.Float64(tst, "Re1", 1e-8, p.Tables[1].Re, 1.5e6)
	chk.Array(tst, "alpha0", 1e-15, p.Tables[0].Alpha, []float64{-180, -10, 0, 10, 180})
	chk.Array(tst, "cl0", 1e-15, p.Tables[0].Cl, []float64{0, -0.8, 0.25, 1.3, 0})
	chk.Array(tst, "cm0", 1e-15, p.Tables[0].Cm, []float64{0, -0.01, -0.08, -0.09, 0})
	chk.Array(tst, "cm1", 1e-15, p.Tables[1].Cm, []float64{0, 0, 0})

	// tabulated values are reproduced at the tabulated angles
	cl, cd, _, _, _, _ := p.Evaluate(10*math.Pi/180, 0.75e6)
	chk.Float64(tst, "cl(10°)", 1e-12, cl, 1.3)
	chk.Float64(tst, "cd(10°)", 1e-12, cd, 0.015)
	cl, _, _, _, _, _ = p.Evaluate(0, 1.125e6)
	chk.Float64(tst, "cl(0°, mid Re)", 1e-12, cl, 0.275)

	// the builder uses the file as given, even at root stations
	b := NewBuilder(nil)
	q, err := b.Station(0, &PolarFile{File: fn})
	if err != nil {
		tst.Errorf("Station failed: %v\n", err)
		return
	}
	chk.Int(tst, "tables from builder", len(q.Tables), 2)
	if q.Correction.Applied {
		tst.Errorf("polar files must not be corrected\n")
	}
	if _, _, err = Shape(&PolarFile{File: fn}, NewSettings()); err == nil {
		tst.Errorf("a polar file has no shape\n")
	}
}

func Test_aerodyn02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("aerodyn02. malformed AeroDyn files")

	dir := tst.TempDir()
	var cerr *ConfigError
	var ferr *FileError

	_, err := ReadAerodyn(filepath.Join(dir, "missing.dat"))
	if !errors.As(err, &ferr) {
		tst.Errorf("missing file should have failed with FileError. err = %v\n", err)
	}

	bad := map[string]string{
		"header":  "only one line\n",
		"ntables": aerodynHeader + "zero tables\n",
		"noEOT":   aerodynHeader + "1\n1.0\n" + aerodynParams + "0 0.1 0.01 0\n10 1.0 0.02 0\n",
		"columns": aerodynHeader + "1\n1.0\n" + aerodynParams + "0 0.1\nEOT\n",
		"number":  aerodynHeader + "1\n1.0\n" + aerodynParams + "0 x 0.01 0\nEOT\n",
		"params":  aerodynHeader + "1\n1.0\n0 Control setting\n",
	}
	for name, data := range bad {
		fn := writeAerodyn(tst, dir, name+".dat", data)
		_, err = ReadAerodyn(fn)
		if !errors.As(err, &cerr) {
			tst.Errorf("%s: should have failed with ConfigError. err = %v\n", name, err)
		}
		io.Pforan("%s: %v\n", name, err)
	}
}
