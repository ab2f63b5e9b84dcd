// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// PolarFile describes an airfoil by a pre-tabulated AeroDyn polar file
//  The tables are used as given; no viscous analysis, rotational correction or
//  extrapolation is applied.
type PolarFile struct {
	File string // AeroDyn (v13) airfoil file
}

func (*PolarFile) descriptor() {}

// number of AeroDyn parameter lines after the Reynolds number of each table
const aerodynNprm = 8

// ReadAerodyn reads a polar from an AeroDyn airfoil file
//  Layout:
//   3 header lines
//   number of tables
//   for each table:
//     Reynolds number in millions
//     8 parameter lines (control setting, stall angle, ...); ignored
//     rows of alpha(deg) cl cd [cm] until a line containing EOT
//  cm is zero when the column is absent.
func ReadAerodyn(path string) (p *Polar, err error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, &FileError{Path: path, Err: e}
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}
	first := func(what string) (v float64, err error) {
		s, ok := next()
		if !ok {
			return 0, configErr("airfoil: file %q ended before %s\n", path, what)
		}
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return 0, configErr("airfoil: file %q line %d: %s is missing\n", path, line, what)
		}
		v, e := strconv.ParseFloat(fields[0], 64)
		if e != nil {
			return 0, configErr("airfoil: file %q line %d: cannot read %s from %q\n", path, line, what, fields[0])
		}
		return v, nil
	}

	// header
	for i := 0; i < 3; i++ {
		if _, ok := next(); !ok {
			return nil, configErr("airfoil: file %q has an incomplete header\n", path)
		}
	}
	nt, err := first("number of tables")
	if err != nil {
		return
	}
	if nt < 1 {
		return nil, configErr("airfoil: file %q must have at least one table; got %g\n", path, nt)
	}

	// tables
	tables := make([]*Table, int(nt))
	for k := range tables {
		re, e := first("Reynolds number")
		if e != nil {
			return nil, e
		}
		for j := 0; j < aerodynNprm; j++ {
			if _, e = first("table parameter"); e != nil {
				return nil, e
			}
		}
		t := &Table{Re: re * 1e6}
		for {
			s, ok := next()
			if !ok {
				return nil, configErr("airfoil: file %q: table %d has no EOT marker\n", path, k)
			}
			if strings.Contains(s, "EOT") {
				break
			}
			fields := strings.Fields(s)
			if len(fields) == 0 {
				continue
			}
			if len(fields) < 3 {
				return nil, configErr("airfoil: file %q line %d: alpha, cl and cd are required\n", path, line)
			}
			var v [4]float64
			for j := 0; j < len(fields) && j < 4; j++ {
				if v[j], e = strconv.ParseFloat(fields[j], 64); e != nil {
					return nil, configErr("airfoil: file %q line %d: cannot read %q\n", path, line, fields[j])
				}
			}
			t.Alpha = append(t.Alpha, v[0])
			t.Cl = append(t.Cl, v[1])
			t.Cd = append(t.Cd, v[2])
			t.Cm = append(t.Cm, v[3])
		}
		tables[k] = t
	}
	if e = sc.Err(); e != nil {
		return nil, &FileError{Path: path, Err: e}
	}
	return NewPolar(tables...)
}
