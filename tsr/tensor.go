// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsr implements the small algebra of 3x3 tensor primitives that the
// correspondence kinematics kernel is built from: multiply, affine combine,
// inverse-with-singularity-flag, rotate and unrotate. A Tensor3 is a
// first-class value, generic over any scalar.Number instantiation, so
// callers never juggle nine loose scalars in a function signature -- the
// nine-scalar layout from the original Peridigm correspondence.cxx routines
// is confined to the package boundary (see FromNine/Nine) where the external
// component-wise-array ABI (spec.md §6) requires it.
package tsr

import "github.com/gofemx/peribond/scalar"

// Tensor3 is a 3x3 matrix stored row-major: XX XY XZ / YX YY YZ / ZX ZY ZZ.
type Tensor3[S scalar.Number[S]] struct {
	XX, XY, XZ S
	YX, YY, YZ S
	ZX, ZY, ZZ S
}

// Zero returns the zero tensor for the given Number instantiation.
func Zero[S scalar.Number[S]](lit scalar.Lit[S]) Tensor3[S] {
	z := lit(0)
	return Tensor3[S]{z, z, z, z, z, z, z, z, z}
}

// Identity returns the 3x3 identity tensor.
func Identity[S scalar.Number[S]](lit scalar.Lit[S]) Tensor3[S] {
	z, o := lit(0), lit(1)
	return Tensor3[S]{o, z, z, z, o, z, z, z, o}
}

// Transpose returns Aᵀ. Used internally by Rotate/Unrotate -- the transpose
// is realized by reordering which field is read, matching the original's
// "pass R transposed by re-ordering the arguments" idiom (spec.md §4.A).
func Transpose[S scalar.Number[S]](a Tensor3[S]) Tensor3[S] {
	return Tensor3[S]{
		XX: a.XX, XY: a.YX, XZ: a.ZX,
		YX: a.XY, YY: a.YY, YZ: a.ZY,
		ZX: a.XZ, ZY: a.YZ, ZZ: a.ZZ,
	}
}

// Trace returns XX + YY + ZZ.
func Trace[S scalar.Number[S]](a Tensor3[S]) S {
	return a.XX.Add(a.YY).Add(a.ZZ)
}

// OuterProduct returns the outer product u vᵀ of two 3-vectors given as
// (x,y,z) scalar triples, used to accumulate bond contributions to the
// shape tensor and to the deformation-gradient first term.
func OuterProduct[S scalar.Number[S]](ux, uy, uz, vx, vy, vz S) Tensor3[S] {
	return Tensor3[S]{
		XX: ux.Mul(vx), XY: ux.Mul(vy), XZ: ux.Mul(vz),
		YX: uy.Mul(vx), YY: uy.Mul(vy), YZ: uy.Mul(vz),
		ZX: uz.Mul(vx), ZY: uz.Mul(vy), ZZ: uz.Mul(vz),
	}
}

// Scale returns k*A, elementwise.
func Scale[S scalar.Number[S]](k S, a Tensor3[S]) Tensor3[S] {
	return Tensor3[S]{
		XX: k.Mul(a.XX), XY: k.Mul(a.XY), XZ: k.Mul(a.XZ),
		YX: k.Mul(a.YX), YY: k.Mul(a.YY), YZ: k.Mul(a.YZ),
		ZX: k.Mul(a.ZX), ZY: k.Mul(a.ZY), ZZ: k.Mul(a.ZZ),
	}
}

// FromNine builds a Tensor3 from nine separate scalars in the row-major
// order the external ABI uses (spec.md §6: "nine separate arrays ... one
// array per tensor component").
func FromNine[S scalar.Number[S]](xx, xy, xz, yx, yy, yz, zx, zy, zz S) Tensor3[S] {
	return Tensor3[S]{xx, xy, xz, yx, yy, yz, zx, zy, zz}
}

// Nine unpacks a Tensor3 back into its nine row-major components, for
// writing into the caller's component-wise arrays.
func (a Tensor3[S]) Nine() (xx, xy, xz, yx, yy, yz, zx, zy, zz S) {
	return a.XX, a.XY, a.XZ, a.YX, a.YY, a.YZ, a.ZX, a.ZY, a.ZZ
}
