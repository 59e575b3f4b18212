// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command peribond-plot runs a short uniaxial-stretch loading path through
// the correspondence kinematics kernel and plots the resulting stress-
// strain response, grounded on tools/LocCmDriver.go's use of gosl/plt to
// render a material-point driver's output.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/gofemx/peribond"
	"github.com/gofemx/peribond/kinematics"
	"github.com/gofemx/peribond/material"
	"github.com/gofemx/peribond/scalar"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	nSteps := io.ArgToInt(0, 50)
	lambdaMax := io.ArgToFloat64(1, 1.1)

	b := peribond.NewBody[scalar.Real](7, scalar.NewReal)
	refs := [][3]float64{{0, 0, 0}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	for i, r := range refs {
		b.State.RefX[i] = r
		b.State.Volume[i] = 1
	}
	b.Kinematics.Delta = 1.5
	b.Kinematics.Influence = func(r, delta float64) float64 {
		if r <= delta {
			return 1
		}
		return 0
	}
	b.Elastic = material.IsoLinElastic{Ey: 1, Nu: 0.25}

	flat := []int{6, 1, 2, 3, 4, 5, 6, 0, 0, 0, 0, 0, 0}
	nl, err := kinematics.NewNeighborList(flat, 7)
	if err != nil {
		chk.Panic("%v", err)
	}

	eps := make([]float64, nSteps)
	sig := make([]float64, nSteps)
	for step := 0; step < nSteps; step++ {
		lambda := 1 + (lambdaMax-1)*float64(step+1)/float64(nSteps)
		for i, r := range refs {
			b.State.CurX[i] = kinematics.S3[scalar.Real]{
				X: scalar.Real(lambda * r[0]), Y: scalar.Real(r[1]), Z: scalar.Real(r[2]),
			}
		}
		if _, fault := b.Step(nl, scalar.NewReal); fault != nil {
			io.PfYel("step %d: fault %v\n", step, fault)
		}
		eps[step] = float64(0.5 * (b.State.F[0].XX*b.State.F[0].XX - 1))
		sig[step] = float64(b.Sigma[0].XX)
	}

	plt.Plot(eps, sig, &plt.A{C: "b", M: "o", L: "point 0, xx"})
	plt.Gll("$\\varepsilon_{xx}$", "$\\sigma_{xx}$", nil)
	plt.Save("/tmp", "peribond_uniaxial")
	io.Pf("saved plot to /tmp/peribond_uniaxial.png\n")
}
