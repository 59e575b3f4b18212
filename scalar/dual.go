// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "math"

// Dual is a forward-mode automatic-differentiation scalar: a value paired
// with a vector of first-order derivatives, propagated elementwise through
// every operation in Number by the chain rule. Seeding Dual.D with a unit
// vector at construction time and running a kernel once on Duals yields, in
// the same pass as the forward solve, the Jacobian of that kernel's outputs
// with respect to whichever inputs carried nonzero seeds.
//
// Binary operations accept derivative vectors of different lengths: the
// shorter one is read as zero-padded, and the result carries the longer
// length.
type Dual struct {
	V float64
	D []float64
}

// NewDual builds a Dual with a zero derivative of length 0; satisfies Lit[Dual].
// Kernels that only need the value (not a seeded derivative) can use this
// directly since a zero-length D propagates as "no derivative contribution"
// in every binary op below.
func NewDual(v float64) Dual { return Dual{V: v} }

// Seed builds a Dual carrying a unit derivative in direction k of an n-length
// derivative vector.
func Seed(v float64, n, k int) Dual {
	d := make([]float64, n)
	d[k] = 1
	return Dual{V: v, D: d}
}

func (a Dual) dlen(b Dual) int {
	if len(a.D) > len(b.D) {
		return len(a.D)
	}
	return len(b.D)
}

func (a Dual) at(i int) float64 {
	if i < len(a.D) {
		return a.D[i]
	}
	return 0
}

func combine(a, b Dual, v float64, da, db float64) Dual {
	n := a.dlen(b)
	if n == 0 {
		return Dual{V: v}
	}
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = da*a.at(i) + db*b.at(i)
	}
	return Dual{V: v, D: d}
}

func (a Dual) Add(b Dual) Dual { return combine(a, b, a.V+b.V, 1, 1) }
func (a Dual) Sub(b Dual) Dual { return combine(a, b, a.V-b.V, 1, -1) }
func (a Dual) Mul(b Dual) Dual { return combine(a, b, a.V*b.V, b.V, a.V) }

func (a Dual) Div(b Dual) Dual {
	return combine(a, b, a.V/b.V, 1/b.V, -a.V/(b.V*b.V))
}

func (a Dual) Neg() Dual {
	n := len(a.D)
	if n == 0 {
		return Dual{V: -a.V}
	}
	d := make([]float64, n)
	for i, v := range a.D {
		d[i] = -v
	}
	return Dual{V: -a.V, D: d}
}

func (a Dual) scaled(v float64, k float64) Dual {
	if len(a.D) == 0 {
		return Dual{V: v}
	}
	d := make([]float64, len(a.D))
	for i, ai := range a.D {
		d[i] = k * ai
	}
	return Dual{V: v, D: d}
}

// Sqrt propagates d/dx sqrt(x) = 1/(2*sqrt(x)).
func (a Dual) Sqrt() Dual {
	s := math.Sqrt(a.V)
	return a.scaled(s, 0.5/s)
}

// Sin propagates d/dx sin(x) = cos(x).
func (a Dual) Sin() Dual { return a.scaled(math.Sin(a.V), math.Cos(a.V)) }

// Cos propagates d/dx cos(x) = -sin(x).
func (a Dual) Cos() Dual { return a.scaled(math.Cos(a.V), -math.Sin(a.V)) }

func (a Dual) IsZero() bool   { return a.V == 0 }
func (a Dual) Float() float64 { return a.V }
