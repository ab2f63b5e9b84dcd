// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/bem"
	"github.com/cpmech/rotorse/out"
	"github.com/cpmech/rotorse/rotor"
	"github.com/spf13/cobra"
)

var (
	loadsUinf    float64
	loadsOmega   float64
	loadsPitch   float64
	loadsAzimuth float64
)

var loadsCmd = &cobra.Command{
	Use:   "loads FILE.rotor",
	Short: "Compute distributed loads along the blade",
	Long: `Compute the loads per unit length normal and tangent to the rotor plane
at one blade azimuth. The rotor speed follows from the tip-speed ratio
when --omega is not given; the azimuth defaults to the input file value.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)
	loadsCmd.Flags().Float64VarP(&loadsUinf, "uinf", "u", 10, "hub-height wind speed (m/s)")
	loadsCmd.Flags().Float64Var(&loadsOmega, "omega", 0, "rotor speed (rpm)")
	loadsCmd.Flags().Float64Var(&loadsPitch, "pitch", 0, "blade pitch (deg)")
	loadsCmd.Flags().Float64VarP(&loadsAzimuth, "azimuth", "a", -1, "blade azimuth (deg)")
}

func runLoads(cmd *cobra.Command, args []string) (err error) {
	data, a, err := analysis(args[0])
	if err != nil {
		return
	}
	op := bem.OperatingPoint{Uinf: loadsUinf, Omega: loadsOmega, Pitch: loadsPitch, Azimuth: data.Operation.Azimuth}
	if op.Omega == 0 {
		R, _ := a.Radius()
		op.Omega = rotor.TipSpeedOmega(op.Uinf, data.Operation.Tsr, R)
	}
	if cmd.Flags().Changed("azimuth") {
		op.Azimuth = loadsAzimuth
	}
	l, _, err := a.Loads(op)
	if err != nil {
		return
	}
	io.Pf("\nU=%g m/s  Ω=%.4f rpm  pitch=%g°  azimuth=%g°\n", op.Uinf, op.Omega, op.Pitch, op.Azimuth)
	io.Pf("%10s %14s %14s\n", "r(m)", "Px(N/m)", "Py(N/m)")
	for i := range l.R {
		io.Pf("%10.4f %14.6e %14.6e\n", l.R[i], l.Px[i], l.Py[i])
	}
	if flagPlot {
		files, e := out.PlotLoads(data.DirOut, data.Key+"_loads.png", l)
		if e != nil {
			return e
		}
		showFiles(files)
	}
	return
}
