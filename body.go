// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peribond

import (
	"github.com/gofemx/peribond/hourglass"
	"github.com/gofemx/peribond/kinematics"
	"github.com/gofemx/peribond/material"
	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/status"
	"github.com/gofemx/peribond/tsr"
)

// Body ties the correspondence kinematics state together with the material
// model and the hourglass stabilization into the single per-step call
// sequence spec.md §2's data-flow diagram describes: shape tensor -> F ->
// kinematic update -> strain -> stress -> rotate -> hourglass. It owns no
// neighbor topology of its own; a *kinematics.NeighborList is supplied to
// Step so the same Body can be reused across steps without reallocating it.
type Body[S scalar.Number[S]] struct {
	State      *kinematics.State[S]
	Kinematics kinematics.Params
	Elastic    material.IsoLinElastic
	Hourglass  hourglass.Params

	// Sigma is the rotated (spatial-frame) Cauchy stress of the most
	// recent Step, one entry per owned point.
	Sigma []tsr.Tensor3[S]
}

// NewBody allocates a Body for n owned points, initializing State's R and V
// to identity (spec.md §3).
func NewBody[S scalar.Number[S]](n int, lit scalar.Lit[S]) *Body[S] {
	b := &Body[S]{
		State: kinematics.NewState[S](n, lit),
		Sigma: make([]tsr.Tensor3[S], n),
	}
	b.Kinematics.Influence = kinematics.ZeroInfluenceBeyondHorizon
	b.Kinematics.BondDamage = kinematics.ZeroDamage
	return b
}

// Step advances one time step and returns the hourglass force density
// (additive, one S3 per owned point) plus the first fault latched across
// the shape-tensor build and the kinematic update (spec.md §7); the
// per-point material evaluation reports no faults. A nonzero fault never halts the
// step; every point still receives a defined F, D, Sigma and force.
func (b *Body[S]) Step(nl *kinematics.NeighborList, lit scalar.Lit[S]) ([]kinematics.S3[S], *status.Fault) {
	var fault *status.Fault

	if f := kinematics.BuildShape(b.State, nl, &b.Kinematics, lit); f != nil {
		fault = status.Latch(fault, f.Code, "%s", f.Error())
	}
	if f := kinematics.Update(b.State, nl, &b.Kinematics, lit); f != nil {
		fault = status.Latch(fault, f.Code, "%s", f.Error())
	}

	for i := 0; i < b.State.N; i++ {
		e := material.GreenStrain(b.State.F[i], lit)
		sigmaHat := material.Stress(b.Elastic, e, lit)
		b.Sigma[i] = material.Rotate(sigmaHat, b.State.R[i])
	}

	force := make([]kinematics.S3[S], b.State.N)
	hourglass.Compute(b.State, nl, &b.Kinematics, &b.Hourglass, force, lit)

	return force, fault
}
