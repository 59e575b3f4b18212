// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "github.com/gofemx/peribond/scalar"

// Multiply returns C = A*B, the nine standard sums of products. Output never
// aliases either input; callers stage temporaries when they need to multiply
// in place (spec.md §4.A).
func Multiply[S scalar.Number[S]](a, b Tensor3[S]) Tensor3[S] {
	return Tensor3[S]{
		XX: a.XX.Mul(b.XX).Add(a.XY.Mul(b.YX)).Add(a.XZ.Mul(b.ZX)),
		XY: a.XX.Mul(b.XY).Add(a.XY.Mul(b.YY)).Add(a.XZ.Mul(b.ZY)),
		XZ: a.XX.Mul(b.XZ).Add(a.XY.Mul(b.YZ)).Add(a.XZ.Mul(b.ZZ)),
		YX: a.YX.Mul(b.XX).Add(a.YY.Mul(b.YX)).Add(a.YZ.Mul(b.ZX)),
		YY: a.YX.Mul(b.XY).Add(a.YY.Mul(b.YY)).Add(a.YZ.Mul(b.ZY)),
		YZ: a.YX.Mul(b.XZ).Add(a.YY.Mul(b.YZ)).Add(a.YZ.Mul(b.ZZ)),
		ZX: a.ZX.Mul(b.XX).Add(a.ZY.Mul(b.YX)).Add(a.ZZ.Mul(b.ZX)),
		ZY: a.ZX.Mul(b.XY).Add(a.ZY.Mul(b.YY)).Add(a.ZZ.Mul(b.ZY)),
		ZZ: a.ZX.Mul(b.XZ).Add(a.ZY.Mul(b.YZ)).Add(a.ZZ.Mul(b.ZZ)),
	}
}

// Combine returns C = alpha*A + beta*B, elementwise (spec.md §4.A).
func Combine[S scalar.Number[S]](alpha S, a Tensor3[S], beta S, b Tensor3[S]) Tensor3[S] {
	return Tensor3[S]{
		XX: alpha.Mul(a.XX).Add(beta.Mul(b.XX)),
		XY: alpha.Mul(a.XY).Add(beta.Mul(b.XY)),
		XZ: alpha.Mul(a.XZ).Add(beta.Mul(b.XZ)),
		YX: alpha.Mul(a.YX).Add(beta.Mul(b.YX)),
		YY: alpha.Mul(a.YY).Add(beta.Mul(b.YY)),
		YZ: alpha.Mul(a.YZ).Add(beta.Mul(b.YZ)),
		ZX: alpha.Mul(a.ZX).Add(beta.Mul(b.ZX)),
		ZY: alpha.Mul(a.ZY).Add(beta.Mul(b.ZY)),
		ZZ: alpha.Mul(a.ZZ).Add(beta.Mul(b.ZZ)),
	}
}

// Inverse computes adj(A)/det(A) by cofactor expansion along the first row.
// If det(A) is bit-exactly the literal 0, it returns the zero tensor and
// ok=false; the equality test is intentionally bit-exact (spec.md §4.A,
// §7): near-singular inputs are not special-cased, so the same branch-free
// code path stays differentiable up to that single exact-zero test.
func Inverse[S scalar.Number[S]](a Tensor3[S], lit scalar.Lit[S]) (inv Tensor3[S], ok bool) {
	minor0 := a.YY.Mul(a.ZZ).Sub(a.YZ.Mul(a.ZY))
	minor1 := a.YX.Mul(a.ZZ).Sub(a.YZ.Mul(a.ZX))
	minor2 := a.YX.Mul(a.ZY).Sub(a.YY.Mul(a.ZX))
	minor3 := a.XY.Mul(a.ZZ).Sub(a.XZ.Mul(a.ZY))
	minor4 := a.XX.Mul(a.ZZ).Sub(a.ZX.Mul(a.XZ))
	minor5 := a.XX.Mul(a.ZY).Sub(a.XY.Mul(a.ZX))
	minor6 := a.XY.Mul(a.YZ).Sub(a.XZ.Mul(a.YY))
	minor7 := a.XX.Mul(a.YZ).Sub(a.XZ.Mul(a.YX))
	minor8 := a.XX.Mul(a.YY).Sub(a.XY.Mul(a.YX))

	det := a.XX.Mul(minor0).Sub(a.XY.Mul(minor1)).Add(a.XZ.Mul(minor2))

	if det.IsZero() {
		return Zero[S](lit), false
	}

	return Tensor3[S]{
		XX: minor0.Div(det), XY: minor3.Div(det).Neg(), XZ: minor6.Div(det),
		YX: minor1.Div(det).Neg(), YY: minor4.Div(det), YZ: minor7.Div(det).Neg(),
		ZX: minor2.Div(det), ZY: minor5.Div(det).Neg(), ZZ: minor8.Div(det),
	}, true
}

// Rotate returns C = R*A*Rᵀ, the push-forward of a material-frame tensor
// into the spatial frame. The transpose is realized by passing R's fields
// reordered into Multiply rather than by building a transposed copy first
// (spec.md §4.A).
func Rotate[S scalar.Number[S]](a, r Tensor3[S]) Tensor3[S] {
	temp := Multiply(a, Transpose(r))
	return Multiply(r, temp)
}

// Unrotate returns C = Rᵀ*A*R, the pull-back of a spatial-frame tensor into
// the material frame; the inverse pairing of Rotate. Spec.md §9 notes the
// original shipped only a commented-out mirror of this -- it is included
// here at the same per-point cost as Rotate.
func Unrotate[S scalar.Number[S]](a, r Tensor3[S]) Tensor3[S] {
	temp := Multiply(a, r)
	return Multiply(Transpose(r), temp)
}

// MulVec returns A*v for a 3-vector v given as scalar components.
func MulVec[S scalar.Number[S]](a Tensor3[S], vx, vy, vz S) (rx, ry, rz S) {
	rx = a.XX.Mul(vx).Add(a.XY.Mul(vy)).Add(a.XZ.Mul(vz))
	ry = a.YX.Mul(vx).Add(a.YY.Mul(vy)).Add(a.YZ.Mul(vz))
	rz = a.ZX.Mul(vx).Add(a.ZY.Mul(vy)).Add(a.ZZ.Mul(vz))
	return
}

// Skew builds the skew-symmetric tensor Ω with Ω_ij = ε_ikj ω_k, i.e. the
// tensor whose off-diagonal entries are ±ωx, ±ωy, ±ωz and whose diagonal is
// exactly zero, assigning all nine components explicitly (spec.md §9: the
// original left ZZ implicitly zero-initialized rather than assigned).
func Skew[S scalar.Number[S]](wx, wy, wz S, lit scalar.Lit[S]) Tensor3[S] {
	z := lit(0)
	return Tensor3[S]{
		XX: z, XY: wz.Neg(), XZ: wy,
		YX: wz, YY: z, YZ: wx.Neg(),
		ZX: wy.Neg(), ZY: wx, ZZ: z,
	}
}
