// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Style Style     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xrange []float64    // x range
	Yrange []float64    // y range
	Xlbl   string       // x-axis label
	Ylbl   string       // y-axis label
	Data   []*PltEntity // data and styles to be plotted
}

// Global variables
var (
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Reset clears all subplots
func Reset() {
	Splots = nil
	Csplot = nil
}

// Splot activates a new subplot window
func Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures labels and scales of axes
//  xkey and ykey are keys of GetLabel; e.g. "alpha" or "cl"
func SplotConfig(xkey, xunit, ykey, yunit string, xscale, yscale float64) {
	if Csplot != nil {
		Csplot.Xlbl = GetLabel(xkey, xunit)
		Csplot.Ylbl = GetLabel(ykey, yunit)
		Csplot.Xscale = xscale
		Csplot.Yscale = yscale
	}
}

// Plot adds a curve to the current subplot
func Plot(x, y []float64, alias string, sty Style) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if Csplot == nil {
		Splot(io.Sf("%d", len(Splots)), "")
	}
	Csplot.Data = append(Csplot.Data, &PltEntity{Alias: alias, X: x, Y: y, Style: sty})
}

// Draw saves one figure per subplot
//  dirout -- directory to save figures
//  fname  -- file name; e.g. polar.png. Subplots are saved as polar_<id>.png when there is more than one
func Draw(dirout, fname string) (files []string, err error) {
	if len(Splots) == 0 {
		return nil, chk.Err("out: there is nothing to draw\n")
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return nil, chk.Err("out: cannot create directory %q:\n%v", dirout, err)
	}
	ext := filepath.Ext(fname)
	fnk := strings.TrimSuffix(fname, ext)
	for _, spl := range Splots {
		p, e := spl.render()
		if e != nil {
			return nil, e
		}
		fn := fnk + ext
		if len(Splots) > 1 {
			fn = fnk + "_" + spl.Id + ext
		}
		path := filepath.Join(dirout, fn)
		if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return nil, chk.Err("out: cannot save %q:\n%v", path, err)
		}
		files = append(files, path)
	}
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// render creates the plot of one subplot
func (o *SplotDat) render() (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	p.Add(plotter.NewGrid())
	for i, d := range o.Data {
		pts := make(plotter.XYs, len(d.X))
		for j := range d.X {
			pts[j].X, pts[j].Y = scale(d.X[j], o.Xscale), scale(d.Y[j], o.Yscale)
		}
		line, e := plotter.NewLine(pts)
		if e != nil {
			return nil, chk.Err("out: cannot plot %q:\n%v", d.Alias, e)
		}
		d.Style.line(&line.LineStyle, i)
		p.Add(line)
		label := d.Style.L
		if label == "" {
			label = d.Alias
		}
		if d.Style.M {
			sc, e := plotter.NewScatter(pts)
			if e != nil {
				return nil, e
			}
			sc.GlyphStyle.Color = line.LineStyle.Color
			sc.GlyphStyle.Radius = vg.Points(2.5)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(sc)
			p.Legend.Add(label, line, sc)
		} else {
			p.Legend.Add(label, line)
		}
	}
	if len(o.Xrange) == 2 {
		p.X.Min, p.X.Max = o.Xrange[0], o.Xrange[1]
	}
	if len(o.Yrange) == 2 {
		p.Y.Min, p.Y.Max = o.Yrange[0], o.Yrange[1]
	}
	p.Legend.Top = true
	return
}

func scale(v, s float64) float64 {
	if s == 0 {
		return v
	}
	return v * s
}
