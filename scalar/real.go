// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "math"

// Real is the thin alias over a native double-precision float used for the
// forward solve. It is the cheapest possible Number instantiation: every
// method compiles down to a single float64 operation.
type Real float64

// NewReal builds a Real from a literal; satisfies Lit[Real].
func NewReal(v float64) Real { return Real(v) }

func (a Real) Add(b Real) Real { return a + b }
func (a Real) Sub(b Real) Real { return a - b }
func (a Real) Mul(b Real) Real { return a * b }
func (a Real) Div(b Real) Real { return a / b }
func (a Real) Neg() Real       { return -a }
func (a Real) Sqrt() Real      { return Real(math.Sqrt(float64(a))) }
func (a Real) Sin() Real       { return Real(math.Sin(float64(a))) }
func (a Real) Cos() Real       { return Real(math.Cos(float64(a))) }
func (a Real) IsZero() bool    { return a == 0 }
func (a Real) Float() float64  { return float64(a) }
