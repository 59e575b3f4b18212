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

// tinyRotationRate is the squared-angular-velocity tolerance below which
// the Flanagan-Taylor update falls back to Q = I instead of dividing by
// Omega (spec.md §4.C, §7): "a numeric guard with a specified fallback",
// not an error. The comparison reads the underlying float value (via
// Number.Float) rather than testing for exact zero, since it is a
// tolerance test, not the exact-zero singularity test spec.md §4.A reserves
// for inverses.
const tinyRotationRate = 1e-30

// Update implements the Flanagan & Taylor (1987) incremental polar
// decomposition from spec.md §4.C: it reconstructs the velocity gradient
// from Kinv, F and neighbor velocities, advances the rotation Rn -> Rnp1 in
// closed (Rodrigues) form, advances the left stretch Vn -> Vnp1 by a
// first-order increment, and emits the unrotated rate-of-deformation d.
//
// Two singular-inverse sites can latch a fault without stopping the loop
// (spec.md §7): the deformation gradient F, and the trace(V)*I - V matrix
// solved for the angular-velocity vector.
func Update[S scalar.Number[S]](st *State[S], nl *NeighborList, p *Params, lit scalar.Lit[S]) *status.Fault {
	var fault *status.Fault
	dt := lit(p.Dt)
	half := lit(0.5)

	for i := 0; i < st.N; i++ {
		// Fdot1 = sum w * (v_j - v_i) xi^T
		fdot1 := tsr.Zero[S](lit)
		for _, j := range nl.Neighbors(i) {
			xix := st.RefX[j][0] - st.RefX[i][0]
			xiy := st.RefX[j][1] - st.RefX[i][1]
			xiz := st.RefX[j][2] - st.RefX[i][2]
			r := math.Sqrt(xix*xix + xiy*xiy + xiz*xiz)

			omega := p.Influence(r, p.Delta)
			b := p.BondDamage(i, j)
			w := lit((1 - b) * omega * st.Volume[j])

			lxix, lxiy, lxiz := lit(xix), lit(xiy), lit(xiz)
			velx := st.Vel[j].X.Sub(st.Vel[i].X)
			vely := st.Vel[j].Y.Sub(st.Vel[i].Y)
			velz := st.Vel[j].Z.Sub(st.Vel[i].Z)
			wvx, wvy, wvz := w.Mul(velx), w.Mul(vely), w.Mul(velz)

			fdot1 = tsr.Combine(lit(1), fdot1, lit(1), tsr.OuterProduct(wvx, wvy, wvz, lxix, lxiy, lxiz))
		}
		fdot := tsr.Multiply(fdot1, st.Kinv[i])

		finv, ok := tsr.Inverse(st.F[i], lit)
		if !ok {
			fault = status.Latch(fault, status.SingularDeformationGradient,
				"point %d: singular deformation gradient", i)
		}

		l := tsr.Multiply(fdot, finv)
		lt := tsr.Transpose(l)
		d := tsr.Combine(half, l, half, lt) // rate-of-deformation D = 1/2(L+Lt)
		w := tsr.Combine(half, l, half.Neg(), lt) // spin W = 1/2(L-Lt)

		vn := st.V[i]

		// z_i = eps_ikj D_jm V_mk (Flanagan & Taylor Eq. 13), expanded.
		zx := vn.XZ.Neg().Mul(d.YX).Sub(vn.YZ.Mul(d.YY)).Sub(vn.ZZ.Mul(d.YZ)).
			Add(vn.XY.Mul(d.ZX)).Add(vn.YY.Mul(d.ZY)).Add(vn.ZY.Mul(d.ZZ))
		zy := vn.XZ.Mul(d.XX).Add(vn.YZ.Mul(d.XY)).Add(vn.ZZ.Mul(d.XZ)).
			Sub(vn.XX.Mul(d.ZX)).Sub(vn.YX.Mul(d.ZY)).Sub(vn.ZX.Mul(d.ZZ))
		zz := vn.XY.Neg().Mul(d.XX).Sub(vn.YY.Mul(d.XY)).Sub(vn.ZY.Mul(d.XZ)).
			Add(vn.XX.Mul(d.YX)).Add(vn.YX.Mul(d.YY)).Add(vn.ZX.Mul(d.YZ))

		// w_i = -1/2 eps_ijk W_jk (Flanagan & Taylor Eq. 11).
		wx := half.Mul(w.YZ.Neg().Add(w.ZY))
		wy := half.Mul(w.XZ.Sub(w.ZX))
		wz := half.Mul(w.XY.Neg().Add(w.YX))

		traceV := tsr.Trace(vn)
		id := tsr.Identity[S](lit)
		t := tsr.Combine(traceV, id, lit(-1), vn)
		tinv, ok := tsr.Inverse(t, lit)
		if !ok {
			fault = status.Latch(fault, status.SingularStretchSolve,
				"point %d: singular trace(V)*I - V in rotation solve", i)
		}

		tzx, tzy, tzz := tsr.MulVec(tinv, zx, zy, zz)
		omegaX := wx.Add(tzx)
		omegaY := wy.Add(tzy)
		omegaZ := wz.Add(tzz)

		omegaTensor := tsr.Skew(omegaX, omegaY, omegaZ, lit)

		omegaSq := omegaX.Mul(omegaX).Add(omegaY.Mul(omegaY)).Add(omegaZ.Mul(omegaZ))

		var q tsr.Tensor3[S]
		if omegaSq.Float() > tinyRotationRate {
			magnitude := omegaSq.Sqrt()
			theta := dt.Mul(magnitude)
			scale1 := theta.Sin().Div(magnitude)
			temp := tsr.Combine(lit(1), id, scale1, omegaTensor)
			omegaSqMat := tsr.Multiply(omegaTensor, omegaTensor)
			scale2 := lit(1).Sub(theta.Cos()).Div(omegaSq)
			q = tsr.Combine(lit(1), temp, scale2, omegaSqMat)
		} else {
			// Guards the divide-by-zero in scale1/scale2 above and preserves
			// AD sensitivity for tiny rotation rates (spec.md §4.C, §7).
			q = id
		}

		st.R[i] = tsr.Multiply(q, st.R[i])

		// Vdot = L*Vn - Vn*Omega
		lv := tsr.Multiply(l, vn)
		vOmega := tsr.Multiply(vn, omegaTensor)
		vdot := tsr.Combine(lit(1), lv, lit(-1), vOmega)
		st.V[i] = tsr.Combine(lit(1), vn, dt, vdot)

		st.D[i] = tsr.Unrotate(d, st.R[i])
	}
	return fault
}
