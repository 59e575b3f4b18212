// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peribond orchestrates the correspondence kinematics kernel
// packages (scalar, tsr, kinematics, material, hourglass) into a per-step
// Body and exposes the fault-code contract from spec.md §6/§7.
package peribond

import "github.com/gofemx/peribond/status"

// Fault and the fault-code constants are re-exported from status so callers
// of the top-level peribond API don't need a second import for them.
type Fault = status.Fault

const (
	FaultNone                        = status.None
	FaultSingularShapeTensor         = status.SingularShapeTensor
	FaultSingularDeformationGradient = status.SingularDeformationGradient
	FaultSingularStretchSolve        = status.SingularStretchSolve
)
