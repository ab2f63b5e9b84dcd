// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style holds line options
type Style struct {
	C color.Color // colour; nil means next default colour
	L string      // label; "" means alias
	W float64     // line width (points); 0 means 1.5
	D bool        // dashed
	M bool        // show markers
}

// line sets a line style; idx selects the default colour
func (o Style) line(ls *draw.LineStyle, idx int) {
	ls.Color = o.C
	if ls.Color == nil {
		ls.Color = plotutil.Color(idx)
	}
	ls.Width = vg.Points(1.5)
	if o.W > 0 {
		ls.Width = vg.Points(o.W)
	}
	if o.D {
		ls.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
}

// GetLabel returns the axis label of a quantity
func GetLabel(key, unit string) string {
	l := key
	switch key {
	case "alpha":
		l = "α"
	case "cl":
		l = "c_l"
	case "cd":
		l = "c_d"
	case "cm":
		l = "c_m"
	case "r":
		l = "r"
	case "Px":
		l = "P_x"
	case "Py":
		l = "P_y"
	case "Uinf":
		l = "U∞"
	case "P":
		l = "P"
	case "Pelec":
		l = "P_elec"
	case "CP":
		l = "C_P"
	case "F":
		l = "F(U)"
	}
	if unit != "" {
		l += " (" + unit + ")"
	}
	return l
}
