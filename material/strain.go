// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the strain and stress half of the
// correspondence kinematics kernel (spec.md §4.D): Green-Lagrange strain
// from the approximate deformation gradient, an isotropic linear elastic
// Cauchy stress, and the rotate/unrotate push-forward and pull-back of
// that stress by the incremental rotation tensor.
package material

import (
	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/tsr"
)

// GreenStrain returns E = 1/2(FᵀF - I), nine explicit scalar assignments
// via tsr.Combine rather than a hand-unrolled loop (spec.md §4.D).
func GreenStrain[S scalar.Number[S]](f tsr.Tensor3[S], lit scalar.Lit[S]) tsr.Tensor3[S] {
	ftf := tsr.Multiply(tsr.Transpose(f), f)
	id := tsr.Identity[S](lit)
	return tsr.Combine(lit(0.5), ftf, lit(-0.5), id)
}
