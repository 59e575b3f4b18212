// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command peribond-step is an example driver demonstrating the
// correspondence kinematics kernel's per-step contract: it is not part of
// the kernel (spec.md §1's Non-goals exclude a time-integration loop from
// the library itself), but shows a caller composing the kernel with an
// external ODE solver the way gofem's tools/LocCmDriver.go composes a
// material model with a path driver.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/utl"

	"github.com/gofemx/peribond"
	"github.com/gofemx/peribond/internal/registry"
	"github.com/gofemx/peribond/kinematics"
	"github.com/gofemx/peribond/material"
	"github.com/gofemx/peribond/scalar"
)

// buildSixAxisBody assembles the spec.md §8 scenario-1 geometry: point 0 with
// six neighbors on the axes at reference distance 1. All seven points are
// owned; points 1..6 have no neighbors of their own, so each Step reports a
// singular-shape-tensor fault for them.
func buildSixAxisBody() (*peribond.Body[scalar.Real], *kinematics.NeighborList) {
	b := peribond.NewBody[scalar.Real](7, scalar.NewReal)
	refs := [][3]float64{{0, 0, 0}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	for i, r := range refs {
		b.State.RefX[i] = r
		b.State.Volume[i] = 1
		b.State.CurX[i] = kinematics.S3[scalar.Real]{X: scalar.Real(r[0]), Y: scalar.Real(r[1]), Z: scalar.Real(r[2])}
	}
	b.Kinematics.Delta = 1.5
	b.Kinematics.Influence = func(r, delta float64) float64 {
		if r <= delta {
			return 1
		}
		return 0
	}
	b.Elastic = material.IsoLinElastic{Ey: 1e5, Nu: 0.25}
	b.Hourglass.Delta = 1.5
	b.Hourglass.CH = 1
	b.Hourglass.BulkModulus = b.Elastic.Ey / (3 * (1 - 2*b.Elastic.Nu))

	// point 0's own entry plus a zero-neighbor count for each of its six
	// neighbors (utl.IntRange builds the contiguous neighbor-index run).
	flat := append([]int{6}, utl.IntRange(6)...)
	for i := range flat[1:] {
		flat[1+i]++ // neighbors are points 1..6, not 0..5
	}
	for range refs[1:] {
		flat = append(flat, 0)
	}
	nl, err := kinematics.NewNeighborList(flat, 7)
	if err != nil {
		chk.Panic("%v", err)
	}
	return b, nl
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	nSteps := io.ArgToInt(0, 20)
	dt := io.ArgToFloat64(1, 1e-3)

	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"number of steps", "nSteps", nSteps,
		"time step", "dt", dt,
	))

	b, nl := buildSixAxisBody()
	b.Kinematics.Dt = dt

	reg := registry.New[scalar.Real]()
	registry.DefaultFields(reg)

	// velocity is advanced externally by an explicit ODE solver; the kernel
	// itself never integrates time (spec.md §1, §5).
	vel := []float64{0.05, 0, 0}

	var solver ode.Solver
	fcn := func(f []float64, h, x float64, y []float64) error {
		// trivial unit-mass point-0 acceleration driven by its own hourglass
		// force density, recomputed from the current kernel state.
		force, _ := b.Step(nl, scalar.NewReal)
		f[0] = float64(force[0].X)
		f[1] = float64(force[0].Y)
		f[2] = float64(force[0].Z)
		return nil
	}
	solver.Init("FwEuler", 3, fcn, nil, nil, nil)

	for step := 0; step < nSteps; step++ {
		b.State.CurX[0].X += scalar.Real(vel[0] * dt)
		b.State.CurX[0].Y += scalar.Real(vel[1] * dt)
		b.State.CurX[0].Z += scalar.Real(vel[2] * dt)

		_, fault := b.Step(nl, scalar.NewReal)
		if fault != nil {
			io.PfYel("step %d: fault %v\n", step, fault)
		}

		if err := solver.Solve(vel, float64(step), float64(step+1), 1, false); err != nil {
			chk.Panic("ode solve failed: %v", err)
		}

		reg.Snapshot(b.State, b.Sigma)
	}

	io.Pf("%v", reg.Report())
}
