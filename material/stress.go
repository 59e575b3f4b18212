// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/tsr"
)

// Rotate pushes an unrotated Cauchy stress forward into the spatial frame,
// σ = R·σ̂·Rᵀ (spec.md §4.D, §4.A).
func Rotate[S scalar.Number[S]](sigmaHat, r tsr.Tensor3[S]) tsr.Tensor3[S] {
	return tsr.Rotate(sigmaHat, r)
}

// Unrotate pulls a spatial Cauchy stress back into the material frame,
// σ̂ = Rᵀ·σ·R. The original Peridigm source carried only a commented-out
// mirror of this operation; SPEC_FULL.md §4 restores it as a first-class
// function since spec.md §4.D specifies it "for completeness though
// optional in callers".
func Unrotate[S scalar.Number[S]](sigma, r tsr.Tensor3[S]) tsr.Tensor3[S] {
	return tsr.Unrotate(sigma, r)
}
