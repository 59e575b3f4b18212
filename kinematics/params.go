// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import "github.com/cpmech/gosl/fun"

// Influence is the scalar influence function omega(r, delta), a pure
// function of bond length and horizon supplied by the caller (spec.md §1:
// "only the scalar influence function omega(xi, delta) is consumed").
// Implementations must be safe to call concurrently (spec.md §5).
type Influence func(r, delta float64) float64

// BondDamage returns the damage scalar b in [0,1] for bond (i,j). The
// kernel multiplies every bond weight by (1-b); the hook is reserved but
// currently inert (spec.md §1) -- ZeroDamage, the default, always returns 0.
type BondDamage func(i, j int) float64

// ZeroDamage is the inert default bond-damage hook.
func ZeroDamage(i, j int) float64 { return 0 }

// Params collects the kernel-level scalars the shape-tensor builder and the
// kinematic updater need beyond the per-point state: the horizon delta, the
// time step dt, the influence function and the (currently inert) bond
// damage hook (spec.md §4.B, §4.C).
type Params struct {
	Delta      float64
	Dt         float64
	Influence  Influence
	BondDamage BondDamage
}

// Init connects Params to a gosl/fun parameter list, in the same style
// material models in msolid/mdl use to read {delta, dt} from an input deck;
// Influence and BondDamage are supplied programmatically, not via Prms,
// since they are functions rather than scalars.
func (p *Params) Init(prms fun.Prms) (err error) {
	prms.Connect(&p.Delta, "delta", "correspondence kinematics")
	prms.Connect(&p.Dt, "dt", "correspondence kinematics")
	if p.Influence == nil {
		p.Influence = ZeroInfluenceBeyondHorizon
	}
	if p.BondDamage == nil {
		p.BondDamage = ZeroDamage
	}
	return
}

// GetPrms returns example parameters, following the msolid GetPrms() idiom.
func (p Params) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "delta", V: p.Delta},
		&fun.Prm{N: "dt", V: p.Dt},
	}
}

// ZeroInfluenceBeyondHorizon is a minimal constant influence function,
// omega(r,delta) = 1 for r <= delta and 0 beyond it; a placeholder default
// for callers that don't supply their own influence-function library
// (spec.md §1 treats the influence-function library as an external
// collaborator).
func ZeroInfluenceBeyondHorizon(r, delta float64) float64 {
	if r <= delta {
		return 1
	}
	return 0
}
