// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface of rotorse
package cmd

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rotorse/inp"
	"github.com/cpmech/rotorse/rotor"
	"github.com/spf13/cobra"
)

// flags shared by all subcommands
var (
	flagVerbose bool
	flagPlot    bool
	flagDirOut  string
)

var rootCmd = &cobra.Command{
	Use:   "rotorse",
	Short: "Rotor aerodynamics with analytic gradients",
	Long: `rotorse - wind turbine rotor aerodynamics

Computes airfoil polars, blade element momentum loads and the power curve
of a rotor described by a (.rotor) JSON file. Every result comes with its
Jacobian with respect to the blade design variables.

Examples:
  rotorse power inp/data/nrel5mw.rotor --plot
  rotorse loads inp/data/nrel5mw.rotor --uinf 10 --azimuth 90
  rotorse polars inp/data/nrel5mw.rotor`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "show progress messages")
	rootCmd.PersistentFlags().BoolVarP(&flagPlot, "plot", "p", false, "save figures to the output directory")
	rootCmd.PersistentFlags().StringVarP(&flagDirOut, "dirout", "o", "", "output directory (overrides the input file)")
}

// analysis reads the input file and allocates the analysis
func analysis(fn string) (data *inp.Rotor, a *rotor.Analysis, err error) {
	data, err = inp.ReadRotor(filepath.Dir(fn), filepath.Base(fn))
	if err != nil {
		return
	}
	if flagDirOut != "" {
		data.DirOut = flagDirOut
	}
	if flagVerbose {
		io.Pfyel("%s: %s\n", data.Key, data.Desc)
	}
	a, err = rotor.New(data, flagVerbose)
	if err != nil {
		return nil, nil, chk.Err("cannot initialise analysis of %q:\n%v", fn, err)
	}
	return
}

// showFiles prints the names of saved figures
func showFiles(files []string) {
	for _, f := range files {
		io.Pforan("file <%s> written\n", f)
	}
}
