// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar provides the arithmetic abstraction that every kinematics,
// material and hourglass routine in peribond is written against. A single
// algebra -- add, subtract, multiply, divide, square root, sine, cosine and
// exact comparison against the literal 0 -- is enough to express the
// whole correspondence kernel, and two unrelated number representations can
// satisfy it: a plain float64 (Real) for the forward solve, and a forward-mode
// dual number (Dual) that carries derivatives through the same code path for
// tangent assembly.
//
// Kernels are written as generic functions over a Number type parameter so
// that each instantiation is monomorphic and branch-free on the hot path;
// no instantiation ever inspects which concrete type it was built with.
package scalar

// Number is the algebra every scalar type used inside a kernel must supply.
// T is the concrete scalar type itself (F-bounded), so Add/Sub/... return the
// same type they're called on.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Sqrt() T
	Sin() T
	Cos() T
	Neg() T

	// IsZero reports whether the value is bit-exactly the literal 0. Per the
	// kernel's error-handling contract (spec §7), singularity tests compare
	// against this exact literal; near-singular inputs are never special-cased.
	IsZero() bool

	// Float returns the underlying real value, e.g. for building output
	// buffers or for external comparisons that don't need to be differentiable.
	Float() float64
}

// Lit constructs a T from a floating-point literal. It is a free function
// rather than a Number method because construction from a bare float has no
// natural receiver.
type Lit[T any] func(float64) T
