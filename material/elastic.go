// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/fun"

	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/tsr"
)

// IsoLinElastic is the isotropic linear elastic Cauchy stress model from
// spec.md §4.D: σ(ε) with c = E_y / ((1+ν)(1-2ν)). It carries no internal
// variables -- Stress is a pure function of the strain tensor -- but
// follows the msolid Init/GetPrms convention so it plugs into a
// fun.Prms-driven material registry the same way the teacher's solid
// models do.
type IsoLinElastic struct {
	Ey float64 // Young's modulus
	Nu float64 // Poisson's ratio
}

// Init reads {E_y, nu} out of a parameter list (gosl/fun convention).
func (m *IsoLinElastic) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E_y":
			m.Ey = p.V
		case "nu":
			m.Nu = p.V
		}
	}
	return
}

// GetPrms returns an example parameter list, mirroring the teacher's
// msolid models.
func (m IsoLinElastic) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "E_y", V: m.Ey},
		&fun.Prm{N: "nu", V: m.Nu},
	}
}

// constant returns c = E_y / ((1+nu)(1-2nu)).
func (m IsoLinElastic) constant() float64 {
	return m.Ey / ((1 + m.Nu) * (1 - 2*m.Nu))
}

// Stress evaluates σ(ε) for the strain tensor e, returning a tensor that
// is symmetric by construction even if e is not (spec.md §4.D): only the
// upper-triangular strain components feed the formula, and the lower
// triangle of σ is set equal to the upper. Go methods cannot carry their
// own type parameters, so Stress is a free function taking the model by
// value.
func Stress[S scalar.Number[S]](m IsoLinElastic, e tsr.Tensor3[S], lit scalar.Lit[S]) tsr.Tensor3[S] {
	c := lit(m.constant())
	nu := lit(m.Nu)
	one := lit(1)
	oneMinusNu := one.Sub(nu)
	offDiag := one.Sub(nu.Mul(lit(2)))

	sxx := c.Mul(oneMinusNu.Mul(e.XX).Add(nu.Mul(e.YY)).Add(nu.Mul(e.ZZ)))
	syy := c.Mul(oneMinusNu.Mul(e.YY).Add(nu.Mul(e.XX)).Add(nu.Mul(e.ZZ)))
	szz := c.Mul(oneMinusNu.Mul(e.ZZ).Add(nu.Mul(e.XX)).Add(nu.Mul(e.YY)))

	sxy := c.Mul(offDiag).Mul(e.XY)
	sxz := c.Mul(offDiag).Mul(e.XZ)
	syz := c.Mul(offDiag).Mul(e.YZ)

	return tsr.Tensor3[S]{
		XX: sxx, XY: sxy, XZ: sxz,
		YX: sxy, YY: syy, YZ: syz,
		ZX: sxz, ZY: syz, ZZ: szz,
	}
}
