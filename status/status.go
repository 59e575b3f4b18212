// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package status defines the fault-code contract shared by the kinematics
// kernels and the top-level peribond package, so kinematics can report the
// exact numeric code spec.md §6/§7 requires without importing peribond
// (which itself imports kinematics).
package status

import "github.com/cpmech/gosl/chk"

// Fault codes for the singular-inverse sites named in spec.md §7.
const (
	None = iota
	SingularShapeTensor
	SingularDeformationGradient
	SingularStretchSolve
)

// Fault is the error a kernel call returns when a per-point inversion hit
// the exact-zero determinant test. It never halts processing of the
// remaining points (spec.md §7); callers latch the first one with Latch.
type Fault struct {
	Code int
	err  error
}

// New builds a Fault carrying the given code and a formatted message.
func New(code int, format string, args ...interface{}) *Fault {
	return &Fault{Code: code, err: chk.Err(format, args...)}
}

func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	return f.err.Error()
}

// Latch keeps the first nonzero fault encountered in a per-point loop,
// matching the original's "if (inversionReturnCode > 0) returnCode =
// inversionReturnCode" policy: later faults never overwrite an earlier one,
// and a zero code never overwrites anything.
func Latch(current *Fault, code int, format string, args ...interface{}) *Fault {
	if current != nil {
		return current
	}
	if code == None {
		return nil
	}
	return New(code, format, args...)
}
