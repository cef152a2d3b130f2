// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package run executes the clause-inference pipeline for one task region:
// structural validation, loop-context construction, the body walk deriving
// the clause sets, and the wholesale clause-node swap.
package run

import (
	"context"
	"runtime/trace"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"

	"fillmore-labs.com/taskguard/diag"
	"fillmore-labs.com/taskguard/internal/access"
	"fillmore-labs.com/taskguard/internal/affine"
	"fillmore-labs.com/taskguard/internal/config"
	"fillmore-labs.com/taskguard/internal/depend"
	"fillmore-labs.com/taskguard/kir"
)

// shape is the validated structure of a task region.
type shape struct {
	// parallel is the enclosing parallel region.
	parallel kir.NodeID

	// payload is the single loop forming the task body.
	payload kir.NodeID
}

// Validate checks the structural constraints of a task region without
// computing clauses: a reachable parallel region, the single-executor
// section when required, and the single-loop body shape.
func (o *Options) Validate(a *kir.Arena, task kir.NodeID) error {
	_, err := o.validate(a, task)

	return err
}

func (o *Options) validate(a *kir.Arena, task kir.NodeID) (shape, error) {
	if k := a.Kind(task); k != kir.KindTaskRegion {
		panic(diag.Faultf("validating %s node %d", k, task))
	}

	parallel := a.Ancestor(task, kir.KindParallelRegion)
	if !parallel.Valid() {
		return shape{}, diag.Reject(diag.MissingEnclosingRegion, task.Index(), "",
			"task region outside any parallel region")
	}

	if o.Behavior.Enabled(config.RequireSerialAncestor) && !serialBetween(a, task, parallel) {
		return shape{}, diag.Reject(diag.MissingEnclosingRegion, task.Index(), "",
			"task region needs a single-executor section inside the parallel region")
	}

	body := a.TaskBody(task)
	if a.NumChildren(body) != 1 || a.Kind(a.Child(body, 0)) != kir.KindLoop {
		return shape{}, diag.Reject(diag.MalformedTaskBody, task.Index(), "",
			"task body must be a single loop")
	}

	return shape{parallel: parallel, payload: a.Child(body, 0)}, nil
}

// serialBetween reports whether a serial region sits on the ancestor chain
// strictly between the task and its parallel region.
func serialBetween(a *kir.Arena, task, parallel kir.NodeID) bool {
	for p := range a.Ancestors(task) {
		if p == parallel {
			return false
		}

		if a.Kind(p) == kir.KindSerialRegion {
			return true
		}
	}

	return false
}

// environment assembles the loop context of a validated task: the payload
// variable, the loop variables nested strictly inside the payload, the
// ancestor loops up to the parallel region, and the chunked-parent proxy.
func (o *Options) environment(a *kir.Arena, task kir.NodeID, s shape) affine.Env {
	env := affine.Env{
		Payload:   a.LoopVar(s.payload),
		Proxy:     kir.InvalidSymbol,
		Nested:    roaring.New(),
		Ancestors: make(map[kir.SymbolID]kir.NodeID),
	}

	for l := range a.Walk(a.LoopBody(s.payload), kir.KindLoop) {
		env.Nested.Add(uint32(a.LoopVar(l)))
	}

	parent := kir.InvalidNode

	for p := range a.Ancestors(task) {
		if p == s.parallel {
			break
		}

		if a.Kind(p) != kir.KindLoop {
			continue
		}

		if !parent.Valid() {
			parent = p
		}

		env.Ancestors[a.LoopVar(p)] = p
	}

	// A payload loop starting at the parent loop's variable iterates one chunk
	// of the parent's range: the payload variable stands in for the parent's.
	if start := a.LoopStart(s.payload); parent.Valid() &&
		a.Kind(start) == kir.KindReference && a.Sym(start) == a.LoopVar(parent) {
		env.Proxy = a.LoopVar(parent)
	}

	return env
}

// Compute derives the five clause sets for one task region. The arena is
// only read: concurrent computes over distinct tasks of a shared arena are
// safe. The returned error is always a [diag.Rejection].
func (o *Options) Compute(a *kir.Arena, task kir.NodeID) (kir.ClauseSets, error) {
	ctx := context.Background()

	ctx, tr := trace.NewTask(ctx, "TaskGuard.Compute")
	defer tr.End()

	trace.Log(ctx, "task", strconv.Itoa(int(task.Index())))

	s, err := o.validate(a, task)
	if err != nil {
		return kir.ClauseSets{}, err
	}

	cls := &access.Classifier{
		Arena:  a,
		Env:    o.environment(a, task, s),
		Region: o.resolver(a, s.parallel),
		Limits: o.Limits,
		Sets:   access.NewSets(a, o.Dialect),
	}

	return depend.New(a, cls).Build(s.payload)
}
