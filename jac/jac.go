// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package jac implements Jacobian matrices made of named blocks
//  Each block holds ∂out/∂in where out and in are named vectors. All declared
//  (out,in) pairs exist; pairs that are never set remain zero.
package jac

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Var holds the name and size of a vector variable
type Var struct {
	Name string // name of variable
	Size int    // number of components
}

// Jacobian holds derivatives of outputs with respect to inputs
type Jacobian struct {
	Outs []Var      // outputs (row blocks)
	Ins  []Var      // inputs (column blocks)
	M    *mat.Dense // all derivatives [nrow][ncol]

	// internal
	row map[string]int // offsets of output blocks
	col map[string]int // offsets of input blocks
}

// New allocates a new Jacobian filled with zeros
func New(outs, ins []Var) (o *Jacobian) {
	o = new(Jacobian)
	o.Outs = append([]Var{}, outs...)
	o.Ins = append([]Var{}, ins...)
	o.row = offsets(o.Outs, "output")
	o.col = offsets(o.Ins, "input")
	nrow, ncol := total(o.Outs), total(o.Ins)
	o.M = mat.NewDense(nrow, ncol, nil)
	return
}

// HasOut tells whether an output named out exists
func (o *Jacobian) HasOut(out string) bool {
	_, ok := o.row[out]
	return ok
}

// HasIn tells whether an input named in exists
func (o *Jacobian) HasIn(in string) bool {
	_, ok := o.col[in]
	return ok
}

// OutSize returns the size of output block
func (o *Jacobian) OutSize(out string) int {
	return o.Outs[o.outIndex(out)].Size
}

// InSize returns the size of input block
func (o *Jacobian) InSize(in string) int {
	return o.Ins[o.inIndex(in)].Size
}

// Block returns a view of the ∂out/∂in block. Changing the view changes the Jacobian
func (o *Jacobian) Block(out, in string) *mat.Dense {
	i, j := o.outIndex(out), o.inIndex(in)
	r0, c0 := o.row[out], o.col[in]
	return o.M.Slice(r0, r0+o.Outs[i].Size, c0, c0+o.Ins[j].Size).(*mat.Dense)
}

// Get returns ∂out[i]/∂in[j]
func (o *Jacobian) Get(out, in string, i, j int) float64 {
	return o.Block(out, in).At(i, j)
}

// Set sets ∂out[i]/∂in[j]
func (o *Jacobian) Set(out, in string, i, j int, v float64) {
	o.Block(out, in).Set(i, j, v)
}

// Add adds v to ∂out[i]/∂in[j]
func (o *Jacobian) Add(out, in string, i, j int, v float64) {
	b := o.Block(out, in)
	b.Set(i, j, b.At(i, j)+v)
}

// SetBlock copies a whole block
func (o *Jacobian) SetBlock(out, in string, b mat.Matrix) {
	blk := o.Block(out, in)
	r, c := b.Dims()
	rr, cc := blk.Dims()
	if r != rr || c != cc {
		chk.Panic("jac: block ∂%s/∂%s has size %d×%d; cannot copy %d×%d matrix\n", out, in, rr, cc, r, c)
	}
	blk.Copy(b)
}

// Stack stacks the blocks of many outputs for the same input
func (o *Jacobian) Stack(outs []string, in string) *mat.Dense {
	nrow := 0
	for _, out := range outs {
		nrow += o.OutSize(out)
	}
	res := mat.NewDense(nrow, o.InSize(in), nil)
	r0 := 0
	for _, out := range outs {
		b := o.Block(out, in)
		n, m := b.Dims()
		res.Slice(r0, r0+n, 0, m).(*mat.Dense).Copy(b)
		r0 += n
	}
	return res
}

// RenameOut renames an output block
func (o *Jacobian) RenameOut(from, to string) {
	i := o.outIndex(from)
	if o.HasOut(to) {
		chk.Panic("jac: cannot rename output %q to existing %q\n", from, to)
	}
	o.Outs[i].Name = to
	o.row[to] = o.row[from]
	delete(o.row, from)
}

// RenameIn renames an input block
func (o *Jacobian) RenameIn(from, to string) {
	j := o.inIndex(from)
	if o.HasIn(to) {
		chk.Panic("jac: cannot rename input %q to existing %q\n", from, to)
	}
	o.Ins[j].Name = to
	o.col[to] = o.col[from]
	delete(o.col, from)
}

// Chain applies the chain rule to compute ∂down/∂x given ∂down/∂y and ∂y/∂x
//  The inputs of down that are produced by up (same name) are eliminated. The
//  result has the inputs of up followed by the remaining inputs of down; when
//  down and up share an input name, both contributions are summed.
func Chain(down, up *Jacobian) (o *Jacobian) {

	// inputs of result
	ins := append([]Var{}, up.Ins...)
	for _, v := range down.Ins {
		if up.HasOut(v.Name) {
			if up.OutSize(v.Name) != v.Size {
				chk.Panic("jac: size mismatch for %q: down uses %d, up produces %d\n", v.Name, v.Size, up.OutSize(v.Name))
			}
			continue
		}
		if up.HasIn(v.Name) {
			if up.InSize(v.Name) != v.Size {
				chk.Panic("jac: size mismatch for shared input %q: %d != %d\n", v.Name, v.Size, up.InSize(v.Name))
			}
			continue
		}
		ins = append(ins, v)
	}
	o = New(down.Outs, ins)

	// contributions
	var tmp mat.Dense
	for _, y := range down.Ins {
		for _, z := range down.Outs {
			dzdy := down.Block(z.Name, y.Name)
			if !up.HasOut(y.Name) {
				blk := o.Block(z.Name, y.Name)
				blk.Add(blk, dzdy)
				continue
			}
			for _, x := range up.Ins {
				tmp.Reset()
				tmp.Mul(dzdy, up.Block(y.Name, x.Name))
				blk := o.Block(z.Name, x.Name)
				blk.Add(blk, &tmp)
			}
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Jacobian) outIndex(name string) int {
	for i, v := range o.Outs {
		if v.Name == name {
			return i
		}
	}
	chk.Panic("jac: output %q is not declared\n", name)
	return -1
}

func (o *Jacobian) inIndex(name string) int {
	for j, v := range o.Ins {
		if v.Name == name {
			return j
		}
	}
	chk.Panic("jac: input %q is not declared\n", name)
	return -1
}

func offsets(vars []Var, kind string) (res map[string]int) {
	res = make(map[string]int)
	k := 0
	for _, v := range vars {
		if v.Size < 1 {
			chk.Panic("jac: %s %q must have positive size; %d is invalid\n", kind, v.Name, v.Size)
		}
		if _, ok := res[v.Name]; ok {
			chk.Panic("jac: %s %q is declared twice\n", kind, v.Name)
		}
		res[v.Name] = k
		k += v.Size
	}
	return
}

func total(vars []Var) (n int) {
	for _, v := range vars {
		n += v.Size
	}
	return
}
