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

// ReadCoordinates reads whitespace-separated (x,y) pairs, one per line
//  Lines that cannot be parsed as two numbers are skipped.
func ReadCoordinates(path string) (x, y []float64, err error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, nil, &FileError{Path: path, Err: e}
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		a, ea := strconv.ParseFloat(fields[0], 64)
		b, eb := strconv.ParseFloat(fields[1], 64)
		if ea != nil || eb != nil {
			continue
		}
		x = append(x, a)
		y = append(y, b)
	}
	if e = sc.Err(); e != nil {
		return nil, nil, &FileError{Path: path, Err: e}
	}
	if len(x) < 3 {
		return nil, nil, configErr("airfoil: file %q has %d valid points; at least 3 are required\n", path, len(x))
	}
	return
}
