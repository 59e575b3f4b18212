// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gofemx/peribond/scalar"
)

// sixNeighborAxisState builds the concrete scenario from spec.md §8 item 1:
// one owned point at the origin with six neighbors on the axes at reference
// distance 1, unit volumes, constant influence omega = 1.
func sixNeighborAxisState() (*State[scalar.Real], *NeighborList) {
	st := NewState[scalar.Real](7, scalar.NewReal)
	st.RefX[0] = [3]float64{0, 0, 0}
	st.RefX[1] = [3]float64{1, 0, 0}
	st.RefX[2] = [3]float64{-1, 0, 0}
	st.RefX[3] = [3]float64{0, 1, 0}
	st.RefX[4] = [3]float64{0, -1, 0}
	st.RefX[5] = [3]float64{0, 0, 1}
	st.RefX[6] = [3]float64{0, 0, -1}
	for i := 0; i < 7; i++ {
		st.Volume[i] = 1
		st.CurX[i] = S3[scalar.Real]{
			X: scalar.Real(st.RefX[i][0]),
			Y: scalar.Real(st.RefX[i][1]),
			Z: scalar.Real(st.RefX[i][2]),
		}
	}
	// only point 0 is owned; points 1..6 are its neighbors and are not
	// processed as points of their own.
	st.N = 1
	flat := []int{6, 1, 2, 3, 4, 5, 6, 0, 0, 0, 0, 0, 0}
	nl, err := NewNeighborList(flat, 7)
	if err != nil {
		panic(err)
	}
	return st, nl
}

func TestBuildShapeSixAxisNeighbors(tst *testing.T) {
	chk.PrintTitle("BuildShapeSixAxisNeighbors")
	st, nl := sixNeighborAxisState()
	p := &Params{Delta: 1.5, Influence: constantInfluence, BondDamage: ZeroDamage}

	BuildShape(st, nl, p, scalar.NewReal)

	chk.Scalar(tst, "Kinv.XX", 1e-14, float64(st.Kinv[0].XX), 0.5)
	chk.Scalar(tst, "Kinv.YY", 1e-14, float64(st.Kinv[0].YY), 0.5)
	chk.Scalar(tst, "Kinv.ZZ", 1e-14, float64(st.Kinv[0].ZZ), 0.5)
	chk.Scalar(tst, "Kinv.XY", 1e-14, float64(st.Kinv[0].XY), 0)

	chk.Scalar(tst, "F.XX", 1e-14, float64(st.F[0].XX), 1)
	chk.Scalar(tst, "F.YY", 1e-14, float64(st.F[0].YY), 1)
	chk.Scalar(tst, "F.ZZ", 1e-14, float64(st.F[0].ZZ), 1)
	chk.Scalar(tst, "F.XY", 1e-14, float64(st.F[0].XY), 0)
}

func TestBuildShapeUniaxialStretch(tst *testing.T) {
	chk.PrintTitle("BuildShapeUniaxialStretch")
	st, nl := sixNeighborAxisState()
	lambda := 1.1
	for i := 0; i < 7; i++ {
		st.CurX[i] = S3[scalar.Real]{
			X: scalar.Real(lambda * st.RefX[i][0]),
			Y: scalar.Real(st.RefX[i][1]),
			Z: scalar.Real(st.RefX[i][2]),
		}
	}
	p := &Params{Delta: 1.5, Influence: constantInfluence, BondDamage: ZeroDamage}

	BuildShape(st, nl, p, scalar.NewReal)

	chk.Scalar(tst, "F.XX", 1e-14, float64(st.F[0].XX), lambda)
	chk.Scalar(tst, "F.YY", 1e-14, float64(st.F[0].YY), 1)
	chk.Scalar(tst, "F.ZZ", 1e-14, float64(st.F[0].ZZ), 1)
}

func TestBuildShapeDegenerateColinear(tst *testing.T) {
	chk.PrintTitle("BuildShapeDegenerateColinear")
	st := NewState[scalar.Real](3, scalar.NewReal)
	st.RefX[0] = [3]float64{0, 0, 0}
	st.RefX[1] = [3]float64{1, 0, 0}
	st.RefX[2] = [3]float64{2, 0, 0}
	for i := 0; i < 3; i++ {
		st.Volume[i] = 1
		st.CurX[i] = S3[scalar.Real]{X: scalar.Real(st.RefX[i][0])}
	}
	flat := []int{2, 1, 2, 0, 0}
	nl, err := NewNeighborList(flat, 3)
	if err != nil {
		tst.Fatal(err)
	}
	p := &Params{Delta: 3, Influence: constantInfluence, BondDamage: ZeroDamage}

	fault := BuildShape(st, nl, p, scalar.NewReal)
	if fault == nil {
		tst.Fatal("expected a singular-shape-tensor fault for colinear neighbors")
	}
	chk.Scalar(tst, "Kinv[0].XX", 1e-14, float64(st.Kinv[0].XX), 0)
	chk.Scalar(tst, "F[0].XX", 1e-14, float64(st.F[0].XX), 0)
}

func constantInfluence(r, delta float64) float64 { return 1 }
