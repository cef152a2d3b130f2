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

package run

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/taskguard/diag"
	"fillmore-labs.com/taskguard/kir"
)

// Materialize recomputes the clause sets of a task region and swaps its five
// clause nodes in one step. When the attached clauses already match the
// recomputed sets the tree is left untouched, so repeated calls over an
// unchanged body are cheap and structurally idempotent. On error the old
// clause nodes stay attached.
func (o *Options) Materialize(a *kir.Arena, task kir.NodeID) (kir.ClauseSets, error) {
	ctx := context.Background()

	ctx, tr := trace.NewTask(ctx, "TaskGuard.Materialize")
	defer tr.End()

	sets, err := o.Compute(a, task)
	if err != nil {
		return kir.ClauseSets{}, err
	}

	if o.Attach(a, task, sets) {
		trace.Log(ctx, "clauses", "stale")
	} else {
		trace.Log(ctx, "clauses", "current")
	}

	return sets, nil
}

// Attach replaces the attached clause nodes of a task region with nodes
// materialized from sets. When the attached clauses already render identically
// the tree is left untouched. Reports whether the tree changed.
func (o *Options) Attach(a *kir.Arena, task kir.NodeID, sets kir.ClauseSets) bool {
	if a.ClauseFingerprint(task, o.Dialect) == sets.Fingerprint(a, o.Dialect) {
		return false
	}

	children := make([]kir.NodeID, 0, 1+5)
	children = append(children, a.TaskBody(task),
		a.NewClause(kir.ClausePrivate, references(a, sets.Private)...),
		a.NewClause(kir.ClauseFirstprivate, references(a, sets.Firstprivate)...),
		a.NewClause(kir.ClauseShared, references(a, sets.Shared)...),
		a.NewClause(kir.ClauseDependIn, entries(a, sets.In)...),
		a.NewClause(kir.ClauseDependOut, entries(a, sets.Out)...))

	a.SetChildren(task, children)

	return true
}

func references(a *kir.Arena, syms []kir.SymbolID) []kir.NodeID {
	refs := make([]kir.NodeID, len(syms))
	for i, sym := range syms {
		refs[i] = a.NewReference(sym)
	}

	return refs
}

func entries(a *kir.Arena, terms []kir.Term) []kir.NodeID {
	nodes := make([]kir.NodeID, len(terms))
	for i, t := range terms {
		nodes[i] = entry(a, t)
	}

	return nodes
}

// entry builds the clause-entry node for one dependency term. The node
// renders identically to the term, keeping descriptor fingerprints and
// attached-clause fingerprints interchangeable.
func entry(a *kir.Arena, t kir.Term) kir.NodeID {
	if len(t.Dims) == 0 {
		return a.NewReference(t.Sym)
	}

	dims := make([]kir.NodeID, len(t.Dims))
	for i, ix := range t.Dims {
		dims[i] = index(a, t.Sym, ix)
	}

	return a.NewArrayReference(t.Sym, dims...)
}

func index(a *kir.Arena, base kir.SymbolID, ix kir.IndexTerm) kir.NodeID {
	switch ix.Kind {
	case kir.IndexExpr:
		// Body expression nodes stay attached to the body; clauses get a copy.
		return a.Clone(ix.Expr)

	case kir.IndexOffset:
		switch {
		case ix.Delta > 0:
			return a.NewBinary(kir.OpAdd, a.NewReference(ix.Var), a.NewIntLiteral(ix.Delta))
		case ix.Delta < 0:
			return a.NewBinary(kir.OpSub, a.NewReference(ix.Var), a.NewIntLiteral(-ix.Delta))
		default:
			return a.NewReference(ix.Var)
		}

	case kir.IndexReversed:
		return a.NewBinary(kir.OpSub, a.NewIntLiteral(ix.Delta), a.NewReference(ix.Var))

	case kir.IndexSpan:
		return a.NewFullRange(base, ix.Dim)

	default:
		panic(diag.Faultf("materializing index term of kind %d", ix.Kind))
	}
}
