// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// TestDualSqrtDeriv cross-checks Dual.Sqrt's propagated derivative against
// gosl/num.DerivCentral directly, independent of the chk.DerivScaSca helper
// used elsewhere, the way mdl/gen/t_diffu_test.go cross-checks a model's
// analytic derivative against a central-difference reference.
func TestDualSqrtDeriv(tst *testing.T) {
	chk.PrintTitle("DualSqrtDeriv")
	x0 := 4.0
	got := Seed(x0, 1, 0).Sqrt().D[0]
	dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 {
		return math.Sqrt(x)
	}, x0, 1e-3)
	chk.Scalar(tst, "d/dx sqrt(x)", 1e-8, got, dnum)
}

// TestDualCosDeriv mirrors TestDualSqrtDeriv for the trigonometric ops.
func TestDualCosDeriv(tst *testing.T) {
	chk.PrintTitle("DualCosDeriv")
	x0 := 0.7
	got := Seed(x0, 1, 0).Cos().D[0]
	dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 {
		return math.Cos(x)
	}, x0, 1e-3)
	chk.Scalar(tst, "d/dx cos(x)", 1e-8, got, dnum)
}
