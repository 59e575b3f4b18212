// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hourglass

import (
	"math"

	"github.com/gofemx/peribond/kinematics"
	"github.com/gofemx/peribond/scalar"
)

// Compute accumulates the hourglass force density into force, which the
// caller owns and must size to st.N and pre-zero (or carry forward
// contributions from a prior source) before the call. It visits every
// directed bond (i,j) with i ranging over every owned point, predicting
// j's position from F[i] and writing the reaction onto j as well; when the
// neighbor list is reciprocal this processes each undirected bond twice,
// once under F[i] and once under F[j] (spec.md §4.E's documented
// asymmetry -- see SPEC_FULL.md §5). Unlike every other kernel in this
// module, Compute performs additive writes to both bond endpoints, so it
// is not safe to parallelize over i without partitioning or atomics
// (spec.md §5).
func Compute[S scalar.Number[S]](st *kinematics.State[S], nl *kinematics.NeighborList, kp *kinematics.Params, hp *Params, force []kinematics.S3[S], lit scalar.Lit[S]) {
	kappa := lit(hp.Kappa())
	for i := 0; i < st.N; i++ {
		for _, j := range nl.Neighbors(i) {
			xix := st.RefX[j][0] - st.RefX[i][0]
			xiy := st.RefX[j][1] - st.RefX[i][1]
			xiz := st.RefX[j][2] - st.RefX[i][2]
			xiLen := math.Sqrt(xix*xix + xiy*xiy + xiz*xiz)

			etax := st.CurX[j].X.Sub(st.CurX[i].X)
			etay := st.CurX[j].Y.Sub(st.CurX[i].Y)
			etaz := st.CurX[j].Z.Sub(st.CurX[i].Z)
			etaLen := etax.Mul(etax).Add(etay.Mul(etay)).Add(etaz.Mul(etaz)).Sqrt()

			lxix, lxiy, lxiz := lit(xix), lit(xiy), lit(xiz)
			f := st.F[i]
			etaHatX := f.XX.Mul(lxix).Add(f.XY.Mul(lxiy)).Add(f.XZ.Mul(lxiz))
			etaHatY := f.YX.Mul(lxix).Add(f.YY.Mul(lxiy)).Add(f.YZ.Mul(lxiz))
			etaHatZ := f.ZX.Mul(lxix).Add(f.ZY.Mul(lxiy)).Add(f.ZZ.Mul(lxiz))

			hx := etaHatX.Sub(etax)
			hy := etaHatY.Sub(etay)
			hz := etaHatZ.Sub(etaz)

			dot := hx.Mul(etax).Add(hy.Mul(etay)).Add(hz.Mul(etaz))
			b := lit(kp.BondDamage(i, j))
			one := lit(1)
			p := one.Sub(b).Mul(kappa).Mul(dot.Neg()).Div(lit(xiLen)).Div(etaLen)

			volI, volJ := lit(st.Volume[i]), lit(st.Volume[j])
			contribX, contribY, contribZ := p.Mul(etax), p.Mul(etay), p.Mul(etaz)

			force[i].X = force[i].X.Add(contribX.Mul(volJ))
			force[i].Y = force[i].Y.Add(contribY.Mul(volJ))
			force[i].Z = force[i].Z.Add(contribZ.Mul(volJ))

			force[j].X = force[j].X.Sub(contribX.Mul(volI))
			force[j].Y = force[j].Y.Sub(contribY.Mul(volI))
			force[j].Z = force[j].Z.Sub(contribZ.Mul(volI))
		}
	}
}
