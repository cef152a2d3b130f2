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

// Package depend derives the clause sets of a task region by walking its body
// in source order. The walk fails closed: the first statement or reference
// outside the supported forms aborts the build, since a partially analyzed
// task is unsafe to run concurrently.
package depend

import (
	"fillmore-labs.com/taskguard/diag"
	"fillmore-labs.com/taskguard/internal/access"
	"fillmore-labs.com/taskguard/kir"
)

// Builder accumulates the clause sets for one task region. Statements feed
// the access classifier reference by reference; loop variables owned by the
// task are forced private.
type Builder struct {
	arena *kir.Arena
	cls   *access.Classifier
}

// New creates a builder over the given classifier.
func New(a *kir.Arena, cls *access.Classifier) *Builder {
	return &Builder{arena: a, cls: cls}
}

// Build walks the payload loop and returns the finished clause sets. The
// returned error is always a [diag.Rejection]; the partial sets are
// discarded by the caller on error.
func (b *Builder) Build(payload kir.NodeID) (kir.ClauseSets, error) {
	if err := b.loop(payload); err != nil {
		return kir.ClauseSets{}, err
	}

	return b.cls.Sets.Finalize(), nil
}

// loop handles a counted loop: its induction variable becomes task-private
// unconditionally, the bound expressions are read, the body is walked.
func (b *Builder) loop(loop kir.NodeID) error {
	// Loop variables owned by the task are never initialized by the caller,
	// so an earlier first-private record is revoked.
	b.cls.Sets.ForcePrivate(b.arena.LoopVar(loop))

	for _, bound := range []kir.NodeID{
		b.arena.LoopStart(loop), b.arena.LoopStop(loop), b.arena.LoopStep(loop),
	} {
		if err := b.bound(bound); err != nil {
			return err
		}
	}

	return b.schedule(b.arena.LoopBody(loop))
}

// bound feeds a loop bound expression's references as reads. Subscripted
// references in bounds are outside the supported task shape.
func (b *Builder) bound(expr kir.NodeID) error {
	for ref := range b.arena.References(expr) {
		if b.arena.Kind(ref) == kir.KindArrayReference {
			return diag.Reject(diag.MalformedTaskBody, ref.Index(),
				b.arena.SymbolName(b.arena.Sym(ref)), "array reference in loop bounds")
		}

		if err := b.cls.Read(ref); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) schedule(sched kir.NodeID) error {
	for stmt := range b.arena.Children(sched) {
		if err := b.statement(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) statement(stmt kir.NodeID) error {
	switch kind := b.arena.Kind(stmt); kind {
	case kir.KindAssignment:
		return b.assignment(stmt)

	case kir.KindLoop:
		return b.loop(stmt)

	case kir.KindIfBlock:
		return b.ifBlock(stmt)

	default:
		return diag.Reject(diag.MalformedTaskBody, stmt.Index(), "",
			"unsupported statement kind "+kind.String())
	}
}

// assignment classifies the left side as a write and every reference of the
// right side as a read, in source order.
func (b *Builder) assignment(stmt kir.NodeID) error {
	if err := b.cls.Write(b.arena.Child(stmt, 0)); err != nil {
		return err
	}

	for ref := range b.arena.References(b.arena.Child(stmt, 1)) {
		if err := b.cls.Read(ref); err != nil {
			return err
		}
	}

	return nil
}

// ifBlock reads the condition's references; the branch bodies are ordinary
// statement sequences.
func (b *Builder) ifBlock(stmt kir.NodeID) error {
	for ref := range b.arena.References(b.arena.Child(stmt, 0)) {
		if err := b.cls.Read(ref); err != nil {
			return err
		}
	}

	for i := 1; i < b.arena.NumChildren(stmt); i++ {
		if err := b.schedule(b.arena.Child(stmt, i)); err != nil {
			return err
		}
	}

	return nil
}
