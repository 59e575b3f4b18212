// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry implements a diagnostic field-registry for peribond
// drivers, grounded on the teacher's out package: out.ResultsMap maps
// string aliases to FE output points; Registry maps string aliases to a
// per-point scalar extractor and records one snapshot per call, the same
// "alias -> values" shape scaled down to a stateless kernel's needs.
package registry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gofemx/peribond/kinematics"
	"github.com/gofemx/peribond/scalar"
	"github.com/gofemx/peribond/tsr"
)

// Field extracts one scalar diagnostic value for point i from the current
// kinematic state and rotated stress.
type Field[S scalar.Number[S]] func(st *kinematics.State[S], sigma []tsr.Tensor3[S], i int) float64

// Registry holds named Fields and the snapshot history taken of them, the
// way out's ResultsMap accumulates named output points across time steps.
type Registry[S scalar.Number[S]] struct {
	fields  map[string]Field[S]
	order   []string
	History []map[string][]float64
}

// New returns an empty Registry.
func New[S scalar.Number[S]]() *Registry[S] {
	return &Registry[S]{fields: make(map[string]Field[S])}
}

// Register adds a named field extractor. Registering the same name twice
// is a programmer error, mirrored on chk.Panic as the teacher's out package
// does for malformed result requests.
func (r *Registry[S]) Register(name string, f Field[S]) {
	if _, exists := r.fields[name]; exists {
		chk.Panic("registry: field %q already registered", name)
	}
	r.fields[name] = f
	r.order = append(r.order, name)
}

// Snapshot evaluates every registered field over all n points and appends
// the result to History, also returning it.
func (r *Registry[S]) Snapshot(st *kinematics.State[S], sigma []tsr.Tensor3[S]) map[string][]float64 {
	snap := make(map[string][]float64, len(r.fields))
	for _, name := range r.order {
		f := r.fields[name]
		vals := make([]float64, st.N)
		for i := 0; i < st.N; i++ {
			vals[i] = f(st, sigma, i)
		}
		snap[name] = vals
	}
	r.History = append(r.History, snap)
	return snap
}

// Report formats the most recent snapshot as a table, in the teacher's
// io.Pf voice.
func (r *Registry[S]) Report() string {
	if len(r.History) == 0 {
		return "registry: no snapshots recorded\n"
	}
	snap := r.History[len(r.History)-1]
	out := io.Sf("registry: step %d\n", len(r.History)-1)
	for _, name := range r.order {
		out += io.Sf("  %-12s %v\n", name, snap[name])
	}
	return out
}

// DefaultFields registers the diagnostics a peribond driver almost always
// wants: the diagonal of F and of the rotated Cauchy stress.
func DefaultFields[S scalar.Number[S]](r *Registry[S]) {
	r.Register("F.XX", func(st *kinematics.State[S], sigma []tsr.Tensor3[S], i int) float64 { return st.F[i].XX.Float() })
	r.Register("F.YY", func(st *kinematics.State[S], sigma []tsr.Tensor3[S], i int) float64 { return st.F[i].YY.Float() })
	r.Register("F.ZZ", func(st *kinematics.State[S], sigma []tsr.Tensor3[S], i int) float64 { return st.F[i].ZZ.Float() })
	r.Register("Sigma.XX", func(st *kinematics.State[S], sigma []tsr.Tensor3[S], i int) float64 { return sigma[i].XX.Float() })
	r.Register("Sigma.YY", func(st *kinematics.State[S], sigma []tsr.Tensor3[S], i int) float64 { return sigma[i].YY.Float() })
}
