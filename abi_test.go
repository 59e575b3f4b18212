// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peribond

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/tsr"
)

func TestTensor9PackUnpackRoundTrip(tst *testing.T) {
	chk.PrintTitle("Tensor9PackUnpackRoundTrip")
	tensors := []tsr.Tensor3[scalar.Real]{
		tsr.FromNine[scalar.Real](1, 2, 3, 4, 5, 6, 7, 8, 9),
		tsr.Identity[scalar.Real](scalar.NewReal),
	}
	t9 := NewTensor9[scalar.Real](2)
	t9.Pack(tensors)

	chk.Scalar(tst, "XX[0]", 1e-15, float64(t9.XX[0]), 1)
	chk.Scalar(tst, "YZ[0]", 1e-15, float64(t9.YZ[0]), 6)
	chk.Scalar(tst, "ZZ[1]", 1e-15, float64(t9.ZZ[1]), 1)

	back := t9.Unpack()
	chk.Scalar(tst, "back[0].XY", 1e-15, float64(back[0].XY), 2)
	chk.Scalar(tst, "back[1].XX", 1e-15, float64(back[1].XX), 1)
}

func TestRealTensor9Vectors(tst *testing.T) {
	chk.PrintTitle("RealTensor9Vectors")
	t9 := NewTensor9[scalar.Real](1)
	t9.XX[0], t9.YY[0], t9.ZZ[0] = 1, 2, 3

	xx, _, _, _, yy, _, _, _, zz := RealTensor9Vectors(t9)
	chk.Scalar(tst, "xx[0]", 1e-15, xx[0], 1)
	chk.Scalar(tst, "yy[0]", 1e-15, yy[0], 2)
	chk.Scalar(tst, "zz[0]", 1e-15, zz[0], 3)
}
