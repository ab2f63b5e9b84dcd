// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/out"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var flagGradients bool

var powerCmd = &cobra.Command{
	Use:   "power FILE.rotor",
	Short: "Compute the power curve",
	Long: `Compute aerodynamic and electrical power, thrust, torque and the power
coefficient at the operating points of the input file. The rotor speed
follows from the tip-speed ratio when the file gives none.`,
	Args: cobra.ExactArgs(1),
	RunE: runPower,
}

func init() {
	rootCmd.AddCommand(powerCmd)
	powerCmd.Flags().BoolVarP(&flagGradients, "gradients", "g", false, "print ∂Pelec/∂design for each wind speed")
}

func runPower(cmd *cobra.Command, args []string) (err error) {
	data, a, err := analysis(args[0])
	if err != nil {
		return
	}
	pw, err := a.PowerCurve()
	if err != nil {
		return
	}

	// table
	io.Pf("\n%8s %8s %7s %13s %13s %13s %13s %7s\n", "U(m/s)", "Ω(rpm)", "pitch", "P(W)", "Pelec(W)", "T(N)", "Q(N·m)", "CP")
	for k := range pw.Uinf {
		io.Pf("%8.3f %8.4f %7.2f %13.6e %13.6e %13.6e %13.6e %7.4f\n", pw.Uinf[k], pw.Omega[k], pw.Pitch[k], pw.P[k], pw.Elec[k], pw.T[k], pw.Q[k], pw.CP[k])
	}

	// terminal graph
	if len(pw.Elec) > 1 {
		mw := make([]float64, len(pw.Elec))
		for k, p := range pw.Elec {
			mw[k] = p * 1e-6
		}
		io.Pf("\n%s\n\n", asciigraph.Plot(mw, asciigraph.Height(12), asciigraph.Width(60), asciigraph.Caption("electrical power (MW)")))
	}

	// gradients
	if flagGradients {
		for _, v := range pw.Jelec.Ins {
			io.Pf("∂power/∂%s:\n", v.Name)
			for k := range pw.Uinf {
				io.Pf("  U=%6.2f %v\n", pw.Uinf[k], pw.Jelec.Block("power", v.Name).RawRowView(k))
			}
		}
	}

	// aep weights
	F, _ := a.Distribution(pw.Uinf)
	io.Pf("\nwind speed probability: %v\n", F)

	if flagPlot {
		files, e := out.PlotPowerCurve(data.DirOut, data.Key+"_power.png", pw)
		if e != nil {
			return e
		}
		showFiles(files)
	}
	return
}
