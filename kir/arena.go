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
	"iter"
	"slices"
	"strconv"

	"fillmore-labs.com/taskguard/diag"
)

// NodeID addresses a node in an [Arena]. Handles are dense and stay valid for
// the lifetime of the arena.
type NodeID int32

// InvalidNode is the handle of no node.
const InvalidNode NodeID = -1

// Valid reports whether the handle refers to an arena node.
func (id NodeID) Valid() bool {
	return id >= 0
}

// Index returns the raw arena index for diagnostics, -1 for [InvalidNode].
func (id NodeID) Index() int32 {
	return int32(id)
}

// node is the arena-internal representation. All node kinds share it; which
// fields are meaningful depends on the kind.
type node struct {
	kind     Kind
	op       Operator
	clause   ClauseKind
	sym      SymbolID
	lit      string
	children []NodeID
}

// Arena holds the nodes and entities of one kernel tree. The zero value is
// not usable; create arenas with [New].
type Arena struct {
	nodes   []node
	parents []NodeID

	symbols []Symbol
	byName  map[string]SymbolID
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{byName: make(map[string]SymbolID)}
}

// Len returns the number of nodes in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

func (a *Arena) node(id NodeID) *node {
	if !id.Valid() || int(id) >= len(a.nodes) {
		panic(diag.Faultf("node handle %d outside arena of %d nodes", id, len(a.nodes)))
	}

	return &a.nodes[id]
}

// Kind returns the node's kind.
func (a *Arena) Kind(id NodeID) Kind {
	return a.node(id).kind
}

// Operator returns the operator of a binary node, [OpNone] for other kinds.
func (a *Arena) Operator(id NodeID) Operator {
	return a.node(id).op
}

// Clause returns the role of a clause node, [ClauseNone] for other kinds.
func (a *Arena) Clause(id NodeID) ClauseKind {
	return a.node(id).clause
}

// Sym returns the entity of a reference or loop node, [InvalidSymbol] for
// kinds that name no entity.
func (a *Arena) Sym(id NodeID) SymbolID {
	return a.node(id).sym
}

// Lit returns the text of a literal node, or the component path of a
// structure reference.
func (a *Arena) Lit(id NodeID) string {
	return a.node(id).lit
}

// LitInt parses the text of a literal node as a signed integer.
func (a *Arena) LitInt(id NodeID) (int64, bool) {
	n := a.node(id)
	if n.kind != KindLiteral {
		return 0, false
	}

	v, err := strconv.ParseInt(n.lit, 10, 64)

	return v, err == nil
}

// NumChildren returns the number of children of a node.
func (a *Arena) NumChildren(id NodeID) int {
	return len(a.node(id).children)
}

// Child returns the i-th child of a node.
func (a *Arena) Child(id NodeID, i int) NodeID {
	n := a.node(id)
	if i < 0 || i >= len(n.children) {
		panic(diag.Faultf("child %d of %s node %d with %d children", i, n.kind, id, len(n.children)))
	}

	return n.children[i]
}

// Children yields the children of a node in order.
func (a *Arena) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, c := range a.node(id).children {
			if !yield(c) {
				return
			}
		}
	}
}

// Parent returns the parent of a node, [InvalidNode] for roots.
func (a *Arena) Parent(id NodeID) NodeID {
	a.node(id)

	return a.parents[id]
}

// add appends a node, attaching the given children. Children must exist and
// must not be attached elsewhere.
func (a *Arena) add(n node) NodeID {
	id := NodeID(len(a.nodes))

	a.checkChildren(id, n.children)
	a.validateShape(id, &n)

	for _, c := range n.children {
		a.parents[c] = id
	}

	a.nodes = append(a.nodes, n)
	a.parents = append(a.parents, InvalidNode)

	return id
}

// SetChildren replaces the child list of a node wholesale. The candidate list
// is validated against the node's shape before anything is attached, so the
// swap is all-or-nothing: on a fault the previous children remain in place.
func (a *Arena) SetChildren(id NodeID, children []NodeID) {
	n := a.node(id)
	cs := slices.Clone(children)

	a.checkChildren(id, cs)

	probe := *n
	probe.children = cs
	a.validateShape(id, &probe)

	for _, c := range n.children {
		a.parents[c] = InvalidNode
	}

	for _, c := range cs {
		a.parents[c] = id
	}

	n.children = cs
}

// checkChildren verifies candidate children without mutating anything: the
// handles must be in range, unclaimed or already claimed by parent, and
// pairwise distinct.
func (a *Arena) checkChildren(parent NodeID, children []NodeID) {
	for i, c := range children {
		if !c.Valid() || int(c) >= len(a.nodes) {
			panic(diag.Faultf("child handle %d outside arena of %d nodes", c, len(a.nodes)))
		}

		if p := a.parents[c]; p.Valid() && p != parent {
			panic(diag.Faultf("node %d already attached to %d", c, p))
		}

		if slices.Contains(children[:i], c) {
			panic(diag.Faultf("node %d attached twice to %d", c, parent))
		}
	}
}

// Clone deep-copies the subtree at id and returns the copy's root. The copy is
// unattached.
func (a *Arena) Clone(id NodeID) NodeID {
	n := a.node(id)

	cs := make([]NodeID, len(n.children))
	for i, c := range n.children {
		cs[i] = a.Clone(c)
	}

	return a.add(node{kind: n.kind, op: n.op, clause: n.clause, sym: n.sym, lit: n.lit, children: cs})
}

// validateShape checks the child layout a node kind requires. Violations are
// faults: trees are produced by the constructors in this package, so a bad
// layout is a bug, not kernel input.
func (a *Arena) validateShape(id NodeID, n *node) {
	switch n.kind {
	case KindLiteral, KindReference, KindStructureReference:
		if len(n.children) != 0 {
			panic(diag.Faultf("%s node %d with %d children", n.kind, id, len(n.children)))
		}

	case KindArrayReference:
		if len(n.children) == 0 {
			panic(diag.Faultf("array-reference node %d without indices", id))
		}

	case KindBinary, KindRange, KindAssignment:
		if len(n.children) != 2 {
			panic(diag.Faultf("%s node %d with %d children, want 2", n.kind, id, len(n.children)))
		}

	case KindIfBlock:
		if len(n.children) != 2 && len(n.children) != 3 {
			panic(diag.Faultf("if-block node %d with %d children, want 2 or 3", id, len(n.children)))
		}

	case KindLoop:
		if len(n.children) != loopChildren {
			panic(diag.Faultf("loop node %d with %d children, want %d", id, len(n.children), loopChildren))
		}

		if k := a.nodes[n.children[loopBodySlot]].kind; k != KindSchedule {
			panic(diag.Faultf("loop node %d body is %s, want schedule", id, k))
		}

	case KindTaskRegion:
		a.validateTaskShape(id, n)

	case KindParallelRegion:
		if len(n.children) != parallelChildren {
			panic(diag.Faultf("parallel-region node %d with %d children, want %d", id, len(n.children), parallelChildren))
		}

		if k := a.nodes[n.children[0]].kind; k != KindSchedule {
			panic(diag.Faultf("parallel-region node %d body is %s, want schedule", id, k))
		}

		if c := &a.nodes[n.children[1]]; c.kind != KindClause || c.clause != ClausePrivate {
			panic(diag.Faultf("parallel-region node %d clause slot holds %s", id, c.kind))
		}

	case KindSerialRegion:
		if len(n.children) != 1 || a.nodes[n.children[0]].kind != KindSchedule {
			panic(diag.Faultf("serial-region node %d needs exactly one schedule child", id))
		}

	case KindSchedule, KindClause:
		// Any number of children.

	default:
		panic(diag.Faultf("node %d has unknown kind %d", id, n.kind))
	}
}

// validateTaskShape enforces the fixed task slot order: body schedule, then
// private, firstprivate, shared, depend-in and depend-out clauses.
func (a *Arena) validateTaskShape(id NodeID, n *node) {
	if len(n.children) != taskChildren {
		panic(diag.Faultf("task-region node %d with %d children, want %d", id, len(n.children), taskChildren))
	}

	if k := a.nodes[n.children[taskBodySlot]].kind; k != KindSchedule {
		panic(diag.Faultf("task-region node %d body is %s, want schedule", id, k))
	}

	for i, want := range taskSlotOrder {
		c := &a.nodes[n.children[taskPrivateSlot+i]]
		if c.kind != KindClause || c.clause != want {
			panic(diag.Faultf("task-region node %d slot %d holds %s, want %s clause", id, taskPrivateSlot+i, c.kind, want))
		}
	}
}
