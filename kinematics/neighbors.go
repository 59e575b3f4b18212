// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinematics implements components B and C of the correspondence
// kernel (spec.md §4.B, §4.C): the nonlocal shape-tensor / approximate
// deformation-gradient builder, and the Flanagan-Taylor incremental
// kinematic updater that advances rotation and left stretch and emits the
// unrotated rate-of-deformation.
package kinematics

import "github.com/cpmech/gosl/chk"

// NeighborList is the flat per-point neighbor encoding from spec.md §3: for
// each owned point i, a count followed by that many neighbor indices
// (possibly including ghosts), with no ordering requirement beyond
// deterministic traversal. It exposes the same flat layout as the external
// ABI (spec.md §6: "[count0, n0_0, ..., n0_{count0-1}, count1, ...]") while
// giving callers indexed access instead of manual pointer walking.
type NeighborList struct {
	flat    []int
	offsets []int // offsets[i] is the index into flat of point i's count
}

// NewNeighborList parses a flat neighbor encoding for n owned points.
func NewNeighborList(flat []int, n int) (*NeighborList, error) {
	offsets := make([]int, n)
	pos := 0
	for i := 0; i < n; i++ {
		if pos >= len(flat) {
			return nil, chk.Err("neighbor list truncated before point %d", i)
		}
		offsets[i] = pos
		count := flat[pos]
		pos += 1 + count
		if pos > len(flat) {
			return nil, chk.Err("neighbor list truncated within point %d's neighbors", i)
		}
	}
	return &NeighborList{flat: flat, offsets: offsets}, nil
}

// Count returns the number of neighbors of point i.
func (nl *NeighborList) Count(i int) int {
	return nl.flat[nl.offsets[i]]
}

// Neighbors returns the neighbor indices of point i as a slice view into the
// underlying flat encoding (not a copy).
func (nl *NeighborList) Neighbors(i int) []int {
	start := nl.offsets[i] + 1
	return nl.flat[start : start+nl.Count(i)]
}

// Flat returns the underlying flat encoding, for round-tripping through the
// external ABI unchanged.
func (nl *NeighborList) Flat() []int { return nl.flat }
