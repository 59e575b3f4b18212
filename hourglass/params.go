// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hourglass implements the hourglass force density stabilization
// from spec.md §4.E: a per-bond penalty on the discrepancy between the
// actual neighbor position and the position the reconstructed deformation
// gradient F[i] predicts for it.
package hourglass

import "github.com/cpmech/gosl/fun"

// Params collects the two material constants the hourglass constant kappa
// is built from, plus the horizon delta it shares with kinematics.Params
// (spec.md §4.E).
type Params struct {
	Delta      float64 // horizon
	CH         float64 // hourglass coefficient
	BulkModulus float64
}

// Init connects Params to a gosl/fun parameter list, mirroring
// kinematics.Params.Init.
func (p *Params) Init(prms fun.Prms) (err error) {
	prms.Connect(&p.Delta, "delta", "hourglass stabilization")
	prms.Connect(&p.CH, "C_H", "hourglass stabilization")
	prms.Connect(&p.BulkModulus, "K_bulk", "hourglass stabilization")
	return
}

// GetPrms returns example parameters, following the msolid GetPrms idiom.
func (p Params) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "delta", V: p.Delta},
		&fun.Prm{N: "C_H", V: p.CH},
		&fun.Prm{N: "K_bulk", V: p.BulkModulus},
	}
}

// Kappa returns the hoisted constant 18*C_H*K_bulk/(pi*delta^4) (spec.md
// §4.E item 4), computed once per call rather than once per bond.
func (p Params) Kappa() float64 {
	const pi = 3.1415926536 // matches the original source's literal, not math.Pi
	return 18 * p.CH * p.BulkModulus / (pi * p.Delta * p.Delta * p.Delta * p.Delta)
}
