// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package kir

import (
	"strconv"

	"fillmore-labs.com/taskguard/diag"
)

// Child slot layout of fixed-shape nodes.
const (
	loopStartSlot = 0
	loopStopSlot  = 1
	loopStepSlot  = 2
	loopBodySlot  = 3
	loopChildren  = 4

	taskBodySlot    = 0
	taskPrivateSlot = 1
	taskChildren    = 6

	parallelChildren = 2
)

// taskSlotOrder is the fixed clause slot order of a task region, starting at
// [taskPrivateSlot].
var taskSlotOrder = [...]ClauseKind{ClausePrivate, ClauseFirstprivate, ClauseShared, ClauseDependIn, ClauseDependOut}

// NewLiteral creates a literal node with the given text.
func (a *Arena) NewLiteral(text string) NodeID {
	if text == "" {
		panic(diag.Faultf("literal node without text"))
	}

	return a.add(node{kind: KindLiteral, sym: InvalidSymbol, lit: text})
}

// NewIntLiteral creates an integer literal node.
func (a *Arena) NewIntLiteral(v int64) NodeID {
	return a.add(node{kind: KindLiteral, sym: InvalidSymbol, lit: strconv.FormatInt(v, 10)})
}

// NewReference creates a bare reference to an entity.
func (a *Arena) NewReference(sym SymbolID) NodeID {
	a.Symbol(sym)

	return a.add(node{kind: KindReference, sym: sym})
}

// NewArrayReference creates a subscripted reference. The entity must be an
// array and the index count must match its rank.
func (a *Arena) NewArrayReference(sym SymbolID, indices ...NodeID) NodeID {
	s := a.Symbol(sym)
	if s.Kind != SymbolArray {
		panic(diag.Faultf("subscripting %s %s", s.Kind, s.Name))
	}

	if len(indices) != s.Rank {
		panic(diag.Faultf("%s has rank %d, got %d indices", s.Name, s.Rank, len(indices)))
	}

	return a.add(node{kind: KindArrayReference, sym: sym, children: indices})
}

// NewStructureReference creates a component access on a structure entity. The
// path is the component chain without the base name, e.g. "inner%flag".
func (a *Arena) NewStructureReference(sym SymbolID, path string) NodeID {
	s := a.Symbol(sym)
	if s.Kind != SymbolStructure {
		panic(diag.Faultf("component access on %s %s", s.Kind, s.Name))
	}

	if path == "" {
		panic(diag.Faultf("component access on %s without a path", s.Name))
	}

	return a.add(node{kind: KindStructureReference, sym: sym, lit: path})
}

// NewBinary creates a binary operation node.
func (a *Arena) NewBinary(op Operator, left, right NodeID) NodeID {
	if op == OpNone {
		panic(diag.Faultf("binary node without an operator"))
	}

	return a.add(node{kind: KindBinary, op: op, sym: InvalidSymbol, children: []NodeID{left, right}})
}

// NewRange creates a dimension span from start to stop.
func (a *Arena) NewRange(start, stop NodeID) NodeID {
	return a.add(node{kind: KindRange, sym: InvalidSymbol, children: []NodeID{start, stop}})
}

// NewFullRange creates the span covering all of dimension dim of an array
// entity: LBOUND(sym,dim):UBOUND(sym,dim). Dimensions are one-based.
func (a *Arena) NewFullRange(sym SymbolID, dim int) NodeID {
	s := a.Symbol(sym)
	if s.Kind != SymbolArray || dim < 1 || dim > s.Rank {
		panic(diag.Faultf("full range of dimension %d of %s %s", dim, s.Kind, s.Name))
	}

	lo := a.NewBinary(OpLBound, a.NewReference(sym), a.NewIntLiteral(int64(dim)))
	hi := a.NewBinary(OpUBound, a.NewReference(sym), a.NewIntLiteral(int64(dim)))

	return a.NewRange(lo, hi)
}

// NewAssignment creates an assignment statement. The left side must be a
// reference.
func (a *Arena) NewAssignment(lhs, rhs NodeID) NodeID {
	if k := a.Kind(lhs); !k.Referential() {
		panic(diag.Faultf("assignment to %s node %d", k, lhs))
	}

	return a.add(node{kind: KindAssignment, sym: InvalidSymbol, children: []NodeID{lhs, rhs}})
}

// NewIfBlock creates a conditional statement. The else schedule is optional;
// pass [InvalidNode] for a plain if.
func (a *Arena) NewIfBlock(cond, then, els NodeID) NodeID {
	if k := a.Kind(then); k != KindSchedule {
		panic(diag.Faultf("if-block then branch is %s, want schedule", k))
	}

	children := []NodeID{cond, then}

	if els.Valid() {
		if k := a.Kind(els); k != KindSchedule {
			panic(diag.Faultf("if-block else branch is %s, want schedule", k))
		}

		children = append(children, els)
	}

	return a.add(node{kind: KindIfBlock, sym: InvalidSymbol, children: children})
}

// NewSchedule creates an ordered statement sequence.
func (a *Arena) NewSchedule(stmts ...NodeID) NodeID {
	return a.add(node{kind: KindSchedule, sym: InvalidSymbol, children: stmts})
}

// NewLoop creates a counted loop over the induction variable v with the given
// bound expressions and body schedule.
func (a *Arena) NewLoop(v SymbolID, start, stop, step, body NodeID) NodeID {
	a.Symbol(v)

	return a.add(node{kind: KindLoop, sym: v, children: []NodeID{start, stop, step, body}})
}

// NewClause creates a clause node. Every entry must be a reference or a
// dependency term.
func (a *Arena) NewClause(kind ClauseKind, entries ...NodeID) NodeID {
	if kind == ClauseNone {
		panic(diag.Faultf("clause node without a role"))
	}

	for _, e := range entries {
		if k := a.Kind(e); !k.Referential() {
			panic(diag.Faultf("%s clause entry is %s node %d", kind, k, e))
		}
	}

	return a.add(node{kind: KindClause, clause: kind, sym: InvalidSymbol, children: entries})
}

// NewTaskRegion creates a task region around a body schedule. The five clause
// slots are created empty; they are derived data, replaced wholesale whenever
// clauses are materialized from the body.
func (a *Arena) NewTaskRegion(body NodeID) NodeID {
	children := make([]NodeID, 0, taskChildren)
	children = append(children, body)

	for _, kind := range taskSlotOrder {
		children = append(children, a.NewClause(kind))
	}

	return a.add(node{kind: KindTaskRegion, sym: InvalidSymbol, children: children})
}

// NewParallelRegion creates a parallel region around a body schedule, with the
// given entities authored as region-private.
func (a *Arena) NewParallelRegion(body NodeID, private ...SymbolID) NodeID {
	refs := make([]NodeID, len(private))
	for i, sym := range private {
		refs[i] = a.NewReference(sym)
	}

	clause := a.NewClause(ClausePrivate, refs...)

	return a.add(node{kind: KindParallelRegion, sym: InvalidSymbol, children: []NodeID{body, clause}})
}

// NewSerialRegion creates a single-executor section around a body schedule.
func (a *Arena) NewSerialRegion(body NodeID) NodeID {
	return a.add(node{kind: KindSerialRegion, sym: InvalidSymbol, children: []NodeID{body}})
}

// LoopVar returns a loop's induction variable.
func (a *Arena) LoopVar(loop NodeID) SymbolID {
	a.expect(loop, KindLoop)

	return a.node(loop).sym
}

// LoopStart returns a loop's start expression.
func (a *Arena) LoopStart(loop NodeID) NodeID {
	a.expect(loop, KindLoop)

	return a.node(loop).children[loopStartSlot]
}

// LoopStop returns a loop's stop expression.
func (a *Arena) LoopStop(loop NodeID) NodeID {
	a.expect(loop, KindLoop)

	return a.node(loop).children[loopStopSlot]
}

// LoopStep returns a loop's step expression.
func (a *Arena) LoopStep(loop NodeID) NodeID {
	a.expect(loop, KindLoop)

	return a.node(loop).children[loopStepSlot]
}

// LoopBody returns a loop's body schedule.
func (a *Arena) LoopBody(loop NodeID) NodeID {
	a.expect(loop, KindLoop)

	return a.node(loop).children[loopBodySlot]
}

// TaskBody returns a task region's body schedule.
func (a *Arena) TaskBody(task NodeID) NodeID {
	a.expect(task, KindTaskRegion)

	return a.node(task).children[taskBodySlot]
}

// TaskClause returns the clause node in a task region's slot for kind.
func (a *Arena) TaskClause(task NodeID, kind ClauseKind) NodeID {
	a.expect(task, KindTaskRegion)

	for i, k := range taskSlotOrder {
		if k == kind {
			return a.node(task).children[taskPrivateSlot+i]
		}
	}

	panic(diag.Faultf("task region has no %s slot", kind))
}

// RegionBody returns the body schedule of a parallel or serial region.
func (a *Arena) RegionBody(region NodeID) NodeID {
	if k := a.Kind(region); k != KindParallelRegion && k != KindSerialRegion {
		panic(diag.Faultf("region body of %s node %d", k, region))
	}

	return a.node(region).children[0]
}

// RegionPrivateClause returns the authored private clause of a parallel region.
func (a *Arena) RegionPrivateClause(region NodeID) NodeID {
	a.expect(region, KindParallelRegion)

	return a.node(region).children[1]
}

func (a *Arena) expect(id NodeID, want Kind) {
	if k := a.Kind(id); k != want {
		panic(diag.Faultf("%s operation on %s node %d", want, k, id))
	}
}
