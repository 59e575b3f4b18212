// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/tsr"
)

// State holds the per-point reference geometry and kinematic state from
// spec.md §3. Buffers are owned by the caller's Body wrapper; State itself
// is a plain value bag so it composes with callers' own field registries.
type State[S scalar.Number[S]] struct {
	N int

	// reference geometry, immutable over a step
	Volume []float64   // V[i]
	RefX   [][3]float64 // X[i]

	// kinematic state
	CurX []S3[S]          // x[i]
	Vel  []S3[S]          // v[i]
	Kinv []tsr.Tensor3[S] // K^-1[i]
	F    []tsr.Tensor3[S] // F[i]
	R    []tsr.Tensor3[S] // R[i], proper orthogonal
	V    []tsr.Tensor3[S] // V[i], symmetric positive definite (left stretch)
	D    []tsr.Tensor3[S] // unrotated rate-of-deformation d[i]
}

// S3 is a 3-component vector of scalar type S, used for current position
// and velocity, both of which must be differentiable (spec.md §3, §4.F).
type S3[S scalar.Number[S]] struct{ X, Y, Z S }

// NewState allocates a State for n points, initializing R and V to identity
// per spec.md §3 ("At step zero callers must initialize R = I, V = I").
// Callers overwrite RefX, Volume, CurX and Vel before the first step.
func NewState[S scalar.Number[S]](n int, lit scalar.Lit[S]) *State[S] {
	id := tsr.Identity[S](lit)
	zero3 := S3[S]{lit(0), lit(0), lit(0)}
	st := &State[S]{
		N:      n,
		Volume: make([]float64, n),
		RefX:   make([][3]float64, n),
		CurX:   make([]S3[S], n),
		Vel:    make([]S3[S], n),
		Kinv:   make([]tsr.Tensor3[S], n),
		F:      make([]tsr.Tensor3[S], n),
		R:      make([]tsr.Tensor3[S], n),
		V:      make([]tsr.Tensor3[S], n),
		D:      make([]tsr.Tensor3[S], n),
	}
	for i := 0; i < n; i++ {
		st.CurX[i] = zero3
		st.Vel[i] = zero3
		st.R[i] = id
		st.V[i] = id
	}
	return st
}
