// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/out"
	"github.com/spf13/cobra"
)

var polarsCmd = &cobra.Command{
	Use:   "polars FILE.rotor",
	Short: "Build the polars of all airfoil sections",
	Long: `Build lift and drag polars of every airfoil section in the input file,
extrapolated to ±180° and corrected for rotation. Sections whose viscous
analysis failed at some angles are reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runPolars,
}

func init() {
	rootCmd.AddCommand(polarsCmd)
}

func runPolars(cmd *cobra.Command, args []string) (err error) {
	data, a, err := analysis(args[0])
	if err != nil {
		return
	}
	io.Pf("\n%-12s %8s %6s %8s %8s %10s\n", "section", "loc", "tables", "αmin", "αmax", "degenerate")
	for i, p := range a.Polars {
		sec := data.Airfoils.Sections[i]
		amin, amax := p.Range()
		io.Pf("%-12s %8.4f %6d %8.1f %8.1f %10d\n", sec.Name, sec.Loc, len(p.Tables), amin, amax, len(p.Degenerate))
		if flagPlot {
			files, e := out.PlotPolar(data.DirOut, io.Sf("%s_%s.png", data.Key, sec.Name), p)
			if e != nil {
				return e
			}
			showFiles(files)
		}
	}
	return
}
