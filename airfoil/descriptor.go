// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package airfoil implements airfoil shapes and their lift, drag and moment polars
//  References:
//   [1] Kuethe AM and Chow CY (1998) Foundations of Aerodynamics, 5th edition, Wiley
//   [2] Kulfan BM (2008) Universal parametric geometry representation method,
//       Journal of Aircraft, 45(1) 142-158
//   [3] Du Z and Selig MS (1998) A 3-D stall-delay model for horizontal axis wind
//       turbine performance prediction, AIAA-98-0021
//   [4] Viterna LA and Corrigan RD (1982) Fixed pitch rotor performance of large
//       horizontal axis wind turbines, NASA CP-2230
package airfoil

// Descriptor describes the shape of an airfoil
//  Implemented by *Coordinates, *NACA, *CST and *PolarFile only.
type Descriptor interface {
	descriptor()
}

// Coordinates describes an airfoil by surface points
//  Points are read from File when X is empty.
type Coordinates struct {
	File string    // two-column text file
	X, Y []float64 // surface points
}

// NACA describes an airfoil by its 4- or 5-digit designation
type NACA struct {
	Digits string
}

// CST describes an airfoil by class-shape-transformation weights
//  Lower weights are thicknesses measured downwards from the chord line; hence equal
//  Upper and Lower weights give a symmetric airfoil.
type CST struct {
	Upper []float64 // Bernstein weights of upper surface
	Lower []float64 // Bernstein weights of lower surface
	TE    float64   // trailing edge thickness
}

func (*Coordinates) descriptor() {}
func (*NACA) descriptor()        {}
func (*CST) descriptor()         {}

// Shape returns the closed loop of surface points of a descriptor
func Shape(d Descriptor, s *Settings) (x, y []float64, err error) {
	switch v := d.(type) {
	case *Coordinates:
		x, y = v.X, v.Y
		if len(x) == 0 {
			x, y, err = ReadCoordinates(v.File)
			if err != nil {
				return
			}
		}
		if len(x) != len(y) || len(x) < 3 {
			return nil, nil, configErr("airfoil: coordinates need at least 3 (x,y) pairs; got %d and %d values\n", len(x), len(y))
		}
		x, y = append([]float64{}, x...), append([]float64{}, y...)
	case *NACA:
		x, y, err = v.coordinates(s.Npanel)
	case *CST:
		x, y, err = v.coordinates(cstNpts)
	case *PolarFile:
		err = configErr("airfoil: polar file %q describes coefficients, not a shape\n", v.File)
	case nil:
		err = configErr("airfoil: descriptor is missing\n")
	default:
		err = configErr("airfoil: descriptor %T is not available\n", d)
	}
	return
}
