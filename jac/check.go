// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jac

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckBlock compares the ∂out/∂in block against central differences
//  fcn computes the output vector for perturbed input x. The step is h·max(1,|x_j|)
//  and the tolerance is tol·max(1,|num|).
func CheckBlock(tst *testing.T, J *Jacobian, out, in string, x []float64, h, tol float64, verbose bool, fcn func(x []float64) ([]float64, error)) {
	blk := J.Block(out, in)
	nr, nc := blk.Dims()
	if nc != len(x) {
		tst.Errorf("CheckBlock: input %q has %d components but x has %d\n", in, nc, len(x))
		return
	}
	xx := make([]float64, len(x))
	for j := 0; j < nc; j++ {
		copy(xx, x)
		δ := h * math.Max(1, math.Abs(x[j]))
		xx[j] = x[j] + δ
		fp, err := fcn(xx)
		if err != nil {
			tst.Errorf("CheckBlock: %v\n", err)
			return
		}
		xx[j] = x[j] - δ
		fm, err := fcn(xx)
		if err != nil {
			tst.Errorf("CheckBlock: %v\n", err)
			return
		}
		if len(fp) != nr || len(fm) != nr {
			tst.Errorf("CheckBlock: output %q has %d components but function returned %d\n", out, nr, len(fp))
			return
		}
		for i := 0; i < nr; i++ {
			num := (fp[i] - fm[i]) / (2 * δ)
			chk.AnaNum(tst, io.Sf("∂%s[%d]/∂%s[%d]", out, i, in, j), tol*math.Max(1, math.Abs(num)), blk.At(i, j), num, verbose)
		}
	}
}
