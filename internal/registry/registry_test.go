// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gofemx/peribond/kinematics"
	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/tsr"
)

func TestRegistrySnapshot(tst *testing.T) {
	chk.PrintTitle("RegistrySnapshot")
	st := kinematics.NewState[scalar.Real](2, scalar.NewReal)
	st.F[0] = tsr.Identity[scalar.Real](scalar.NewReal)
	st.F[1] = tsr.Identity[scalar.Real](scalar.NewReal)
	sigma := make([]tsr.Tensor3[scalar.Real], 2)

	r := New[scalar.Real]()
	DefaultFields(r)
	snap := r.Snapshot(st, sigma)

	chk.Scalar(tst, "F.XX[0]", 1e-15, snap["F.XX"][0], 1)
	chk.Scalar(tst, "F.XX[1]", 1e-15, snap["F.XX"][1], 1)
	if len(r.History) != 1 {
		tst.Fatalf("expected 1 snapshot, got %d", len(r.History))
	}
}
