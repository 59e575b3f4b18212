// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gofemx/peribond/scalar"
)

// TestUpdateRigidRotationRate exercises spec.md §8's concrete scenario 3:
// the six-axis-neighbor point at rest (x = X) with v[j] = omega x X[j] for
// angular velocity (0,0,omega_z); after one step R should equal
// Rot_z(omega_z*dt) and the unrotated rate-of-deformation should vanish.
func TestUpdateRigidRotationRate(tst *testing.T) {
	chk.PrintTitle("UpdateRigidRotationRate")
	st, nl := sixNeighborAxisState()
	p := &Params{Delta: 1.5, Dt: 1.0, Influence: constantInfluence, BondDamage: ZeroDamage}

	omegaZ := 0.01
	for i := 0; i < 7; i++ {
		x, y := st.RefX[i][0], st.RefX[i][1]
		st.Vel[i] = S3[scalar.Real]{X: scalar.Real(-omegaZ * y), Y: scalar.Real(omegaZ * x), Z: 0}
	}

	BuildShape(st, nl, p, scalar.NewReal)
	fault := Update(st, nl, p, scalar.NewReal)
	if fault != nil {
		tst.Fatalf("unexpected fault: %v", fault)
	}

	theta := omegaZ * p.Dt
	c, s := math.Cos(theta), math.Sin(theta)
	chk.Scalar(tst, "R.XX", 1e-10, float64(st.R[0].XX), c)
	chk.Scalar(tst, "R.XY", 1e-10, float64(st.R[0].XY), -s)
	chk.Scalar(tst, "R.YX", 1e-10, float64(st.R[0].YX), s)
	chk.Scalar(tst, "R.YY", 1e-10, float64(st.R[0].YY), c)
	chk.Scalar(tst, "R.ZZ", 1e-10, float64(st.R[0].ZZ), 1)

	chk.Scalar(tst, "D.XX", 1e-14, float64(st.D[0].XX), 0)
	chk.Scalar(tst, "D.XY", 1e-14, float64(st.D[0].XY), 0)
	chk.Scalar(tst, "D.YY", 1e-14, float64(st.D[0].YY), 0)
}

// TestUpdateIdentityStart exercises spec.md §8's "identity start" invariant:
// x == X and v == 0 must leave F, Fdot, L, D, W, R, V, d unchanged.
func TestUpdateIdentityStart(tst *testing.T) {
	chk.PrintTitle("UpdateIdentityStart")
	st, nl := sixNeighborAxisState()
	p := &Params{Delta: 1.5, Dt: 1.0, Influence: constantInfluence, BondDamage: ZeroDamage}

	BuildShape(st, nl, p, scalar.NewReal)
	fault := Update(st, nl, p, scalar.NewReal)
	if fault != nil {
		tst.Fatalf("unexpected fault: %v", fault)
	}

	chk.Scalar(tst, "R.XX", 1e-14, float64(st.R[0].XX), 1)
	chk.Scalar(tst, "R.XY", 1e-14, float64(st.R[0].XY), 0)
	chk.Scalar(tst, "V.XX", 1e-14, float64(st.V[0].XX), 1)
	chk.Scalar(tst, "V.XY", 1e-14, float64(st.V[0].XY), 0)
	chk.Scalar(tst, "D.XX", 1e-14, float64(st.D[0].XX), 0)
	chk.Scalar(tst, "D.YZ", 1e-14, float64(st.D[0].YZ), 0)
}

// TestUpdateRigidTranslation exercises spec.md §8's rigid-body translation
// invariant: a constant offset in x leaves F = I and d = 0.
func TestUpdateRigidTranslation(tst *testing.T) {
	chk.PrintTitle("UpdateRigidTranslation")
	st, nl := sixNeighborAxisState()
	offset := [3]float64{3, -2, 5}
	for i := 0; i < 7; i++ {
		st.CurX[i] = S3[scalar.Real]{
			X: scalar.Real(st.RefX[i][0] + offset[0]),
			Y: scalar.Real(st.RefX[i][1] + offset[1]),
			Z: scalar.Real(st.RefX[i][2] + offset[2]),
		}
	}
	p := &Params{Delta: 1.5, Dt: 1.0, Influence: constantInfluence, BondDamage: ZeroDamage}

	BuildShape(st, nl, p, scalar.NewReal)
	Update(st, nl, p, scalar.NewReal)

	chk.Scalar(tst, "F.XX", 1e-14, float64(st.F[0].XX), 1)
	chk.Scalar(tst, "F.XY", 1e-14, float64(st.F[0].XY), 0)
	chk.Scalar(tst, "D.XX", 1e-14, float64(st.D[0].XX), 0)
}
