// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peribond

import (
	"github.com/cpmech/gosl/la"

	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/tsr"
)

// Tensor9 is the component-wise external representation of spec.md §6:
// "nine separate arrays of length N for each 3x3 tensor, one array per
// tensor component". It exists only at the package boundary; every kernel
// in kinematics, material and hourglass works on the first-class
// tsr.Tensor3[S] value internally (spec.md §9, "Nine-scalar tensor ABI").
type Tensor9[S scalar.Number[S]] struct {
	XX, XY, XZ []S
	YX, YY, YZ []S
	ZX, ZY, ZZ []S
}

// NewTensor9 allocates nine length-n arrays.
func NewTensor9[S scalar.Number[S]](n int) Tensor9[S] {
	mk := func() []S { return make([]S, n) }
	return Tensor9[S]{
		XX: mk(), XY: mk(), XZ: mk(),
		YX: mk(), YY: mk(), YZ: mk(),
		ZX: mk(), ZY: mk(), ZZ: mk(),
	}
}

// Pack copies the tensors into the nine component arrays, tensor i into
// index i of each array.
func (t Tensor9[S]) Pack(tensors []tsr.Tensor3[S]) {
	for i, a := range tensors {
		t.XX[i], t.XY[i], t.XZ[i] = a.XX, a.XY, a.XZ
		t.YX[i], t.YY[i], t.YZ[i] = a.YX, a.YY, a.YZ
		t.ZX[i], t.ZY[i], t.ZZ[i] = a.ZX, a.ZY, a.ZZ
	}
}

// Unpack builds first-class tensors from the nine component arrays.
func (t Tensor9[S]) Unpack() []tsr.Tensor3[S] {
	n := len(t.XX)
	out := make([]tsr.Tensor3[S], n)
	for i := range out {
		out[i] = tsr.Tensor3[S]{
			XX: t.XX[i], XY: t.XY[i], XZ: t.XZ[i],
			YX: t.YX[i], YY: t.YY[i], YZ: t.YZ[i],
			ZX: t.ZX[i], ZY: t.ZY[i], ZZ: t.ZZ[i],
		}
	}
	return out
}

// Vector9 is the component-wise external representation of a per-point
// 3-vector (position, velocity, or force density), the same ABI shape as
// Tensor9 but for three arrays instead of nine.
type Vector9[S scalar.Number[S]] struct {
	X, Y, Z []S
}

// NewVector9 allocates three length-n arrays.
func NewVector9[S scalar.Number[S]](n int) Vector9[S] {
	mk := func() []S { return make([]S, n) }
	return Vector9[S]{X: mk(), Y: mk(), Z: mk()}
}

// RealTensor9Vectors exposes a real-scalar Tensor9's nine component arrays
// as gosl/la.Vector, the vector type the teacher's linear-solver and
// assembly code (fem.Domain.Kb, la.VecFill) expects, for callers that want
// to feed peribond's output directly into la-based post-processing. Only
// the real instantiation is exposed this way: la.Vector is a plain
// []float64 and has no AD-carrying counterpart.
func RealTensor9Vectors(t Tensor9[scalar.Real]) (xx, xy, xz, yx, yy, yz, zx, zy, zz la.Vector) {
	conv := func(s []scalar.Real) la.Vector {
		v := make(la.Vector, len(s))
		for i, c := range s {
			v[i] = float64(c)
		}
		return v
	}
	return conv(t.XX), conv(t.XY), conv(t.XZ),
		conv(t.YX), conv(t.YY), conv(t.YZ),
		conv(t.ZX), conv(t.ZY), conv(t.ZZ)
}
