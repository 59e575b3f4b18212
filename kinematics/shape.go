// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"math"

	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/status"
	"github.com/gofemx/peribond/tsr"
)

// BuildShape implements spec.md §4.B: for every owned point, accumulate the
// weighted bond outer products into the nonlocal shape tensor K and the
// first term of the deformation gradient F1, invert K, and set F = F1*K^-1.
//
// A single neighbor traversal produces both K and F1 in one pass, mirroring
// the original Peridigm computeShapeTensorInverseAndApproximateDeformationGradient
// routine rather than splitting them into two loops (see SPEC_FULL.md §4).
//
// A singular K at any point does not stop the loop: that point's Kinv and F
// are left at zero (tsr.Inverse's own singular behavior) and the first such
// point's fault is latched into the returned *status.Fault, exactly as
// spec.md §4.B's failure policy requires.
func BuildShape[S scalar.Number[S]](st *State[S], nl *NeighborList, p *Params, lit scalar.Lit[S]) *status.Fault {
	var fault *status.Fault
	for i := 0; i < st.N; i++ {
		k := tsr.Zero[S](lit)
		f1 := tsr.Zero[S](lit)

		for _, j := range nl.Neighbors(i) {
			xix := st.RefX[j][0] - st.RefX[i][0]
			xiy := st.RefX[j][1] - st.RefX[i][1]
			xiz := st.RefX[j][2] - st.RefX[i][2]
			r := math.Sqrt(xix*xix + xiy*xiy + xiz*xiz)

			etax := st.CurX[j].X.Sub(st.CurX[i].X)
			etay := st.CurX[j].Y.Sub(st.CurX[i].Y)
			etaz := st.CurX[j].Z.Sub(st.CurX[i].Z)

			omega := p.Influence(r, p.Delta)
			b := p.BondDamage(i, j)
			w := lit((1 - b) * omega * st.Volume[j])

			lxix, lxiy, lxiz := lit(xix), lit(xiy), lit(xiz)
			wxix, wxiy, wxiz := w.Mul(lxix), w.Mul(lxiy), w.Mul(lxiz)
			wetax, wetay, wetaz := w.Mul(etax), w.Mul(etay), w.Mul(etaz)

			k = tsr.Combine(lit(1), k, lit(1), tsr.OuterProduct(wxix, wxiy, wxiz, lxix, lxiy, lxiz))
			f1 = tsr.Combine(lit(1), f1, lit(1), tsr.OuterProduct(wetax, wetay, wetaz, lxix, lxiy, lxiz))
		}

		kinv, ok := tsr.Inverse(k, lit)
		if !ok {
			fault = status.Latch(fault, status.SingularShapeTensor,
				"point %d: singular shape tensor (rank-deficient neighbor set)", i)
		}
		st.Kinv[i] = kinv
		st.F[i] = tsr.Multiply(f1, kinv)
	}
	return fault
}
