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

package kir

import (
	"strconv"

	"fillmore-labs.com/taskguard/diag"
)

// Dialect fixes the spellings canonical rendering uses. It replaces ambient
// naming configuration: the value is immutable and passed down explicitly.
// The zero value is not usable; start from [DefaultDialect].
type Dialect struct {
	// LowerBound is the lower-bound query spelling for full-range tokens.
	LowerBound string

	// UpperBound is the upper-bound query spelling for full-range tokens.
	UpperBound string

	// ComponentSep separates a structure base from its component path.
	ComponentSep string
}

// DefaultDialect returns the Fortran-flavored canonical spellings.
func DefaultDialect() Dialect {
	return Dialect{LowerBound: "LBOUND", UpperBound: "UBOUND", ComponentSep: "%"}
}

// Append appends the canonical rendering of the subtree at id to dst. The
// canonical form is deterministic: equal renderings mean structurally equal
// trees for every shape this module synthesizes. Statements and regions render
// as indented lines, expressions as compact text.
func (a *Arena) Append(dst []byte, id NodeID, d Dialect) []byte {
	return a.appendNode(dst, id, d, 0)
}

// Render returns the canonical rendering of the subtree at id.
func (a *Arena) Render(id NodeID, d Dialect) string {
	return string(a.Append(nil, id, d))
}

func (a *Arena) appendNode(dst []byte, id NodeID, d Dialect, depth int) []byte {
	n := a.node(id)

	switch n.kind {
	case KindLiteral:
		return append(dst, n.lit...)

	case KindReference:
		return append(dst, a.SymbolName(n.sym)...)

	case KindArrayReference:
		dst = append(dst, a.SymbolName(n.sym)...)
		dst = append(dst, '(')

		for i, c := range n.children {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = a.appendNode(dst, c, d, depth)
		}

		return append(dst, ')')

	case KindStructureReference:
		dst = append(dst, a.SymbolName(n.sym)...)
		dst = append(dst, d.ComponentSep...)

		return append(dst, n.lit...)

	case KindBinary:
		return a.appendBinary(dst, n, d, depth)

	case KindRange:
		dst = a.appendNode(dst, n.children[0], d, depth)
		dst = append(dst, ':')

		return a.appendNode(dst, n.children[1], d, depth)

	case KindAssignment:
		dst = indent(dst, depth)
		dst = a.appendNode(dst, n.children[0], d, depth)
		dst = append(dst, " = "...)
		dst = a.appendNode(dst, n.children[1], d, depth)

		return append(dst, '\n')

	case KindIfBlock:
		return a.appendIfBlock(dst, n, d, depth)

	case KindLoop:
		return a.appendLoop(dst, n, d, depth)

	case KindSchedule:
		for _, c := range n.children {
			dst = a.appendNode(dst, c, d, depth)
		}

		return dst

	case KindTaskRegion, KindParallelRegion, KindSerialRegion:
		return a.appendRegion(dst, n, d, depth)

	case KindClause:
		return a.appendClause(dst, n, d)

	default:
		panic(diag.Faultf("rendering node %d of kind %d", id, n.kind))
	}
}

// appendBinary renders bound queries in call form with the dialect spelling,
// and everything else infix. Binary operands are parenthesized to keep the
// form unambiguous without precedence rules.
func (a *Arena) appendBinary(dst []byte, n *node, d Dialect, depth int) []byte {
	if n.op.Bound() {
		switch n.op {
		case OpLBound:
			dst = append(dst, d.LowerBound...)
		case OpUBound:
			dst = append(dst, d.UpperBound...)
		}

		dst = append(dst, '(')
		dst = a.appendNode(dst, n.children[0], d, depth)
		dst = append(dst, ',')
		dst = a.appendNode(dst, n.children[1], d, depth)

		return append(dst, ')')
	}

	dst = a.appendOperand(dst, n.children[0], d, depth)
	dst = append(dst, n.op.String()...)

	return a.appendOperand(dst, n.children[1], d, depth)
}

func (a *Arena) appendOperand(dst []byte, id NodeID, d Dialect, depth int) []byte {
	if n := a.node(id); n.kind == KindBinary && !n.op.Bound() {
		dst = append(dst, '(')
		dst = a.appendNode(dst, id, d, depth)

		return append(dst, ')')
	}

	return a.appendNode(dst, id, d, depth)
}

func (a *Arena) appendIfBlock(dst []byte, n *node, d Dialect, depth int) []byte {
	dst = indent(dst, depth)
	dst = append(dst, "if ("...)
	dst = a.appendNode(dst, n.children[0], d, depth)
	dst = append(dst, ") then\n"...)
	dst = a.appendNode(dst, n.children[1], d, depth+1)

	if len(n.children) == 3 {
		dst = indent(dst, depth)
		dst = append(dst, "else\n"...)
		dst = a.appendNode(dst, n.children[2], d, depth+1)
	}

	dst = indent(dst, depth)

	return append(dst, "end if\n"...)
}

func (a *Arena) appendLoop(dst []byte, n *node, d Dialect, depth int) []byte {
	dst = indent(dst, depth)
	dst = append(dst, "do "...)
	dst = append(dst, a.SymbolName(n.sym)...)
	dst = append(dst, " = "...)
	dst = a.appendNode(dst, n.children[loopStartSlot], d, depth)
	dst = append(dst, ", "...)
	dst = a.appendNode(dst, n.children[loopStopSlot], d, depth)
	dst = append(dst, ", "...)
	dst = a.appendNode(dst, n.children[loopStepSlot], d, depth)
	dst = append(dst, '\n')
	dst = a.appendNode(dst, n.children[loopBodySlot], d, depth+1)
	dst = indent(dst, depth)

	return append(dst, "end do\n"...)
}

func (a *Arena) appendRegion(dst []byte, n *node, d Dialect, depth int) []byte {
	dst = indent(dst, depth)

	switch n.kind {
	case KindTaskRegion:
		dst = append(dst, "task"...)
		for _, c := range n.children[taskPrivateSlot:] {
			dst = append(dst, ' ')
			dst = a.appendNode(dst, c, d, depth)
		}

	case KindParallelRegion:
		dst = append(dst, "parallel "...)
		dst = a.appendNode(dst, n.children[1], d, depth)

	case KindSerialRegion:
		dst = append(dst, "serial"...)
	}

	dst = append(dst, '\n')
	dst = a.appendNode(dst, n.children[0], d, depth+1)
	dst = indent(dst, depth)
	dst = append(dst, "end "...)

	switch n.kind {
	case KindTaskRegion:
		dst = append(dst, "task"...)
	case KindParallelRegion:
		dst = append(dst, "parallel"...)
	case KindSerialRegion:
		dst = append(dst, "serial"...)
	}

	return append(dst, '\n')
}

func (a *Arena) appendClause(dst []byte, n *node, d Dialect) []byte {
	switch n.clause {
	case ClauseDependIn:
		dst = append(dst, "depend(in:"...)
	case ClauseDependOut:
		dst = append(dst, "depend(out:"...)
	default:
		dst = append(dst, n.clause.String()...)
		dst = append(dst, '(')
	}

	sep := n.clause == ClauseDependIn || n.clause == ClauseDependOut

	for i, c := range n.children {
		switch {
		case i > 0:
			dst = append(dst, ", "...)
		case sep:
			dst = append(dst, ' ')
		}

		dst = a.appendNode(dst, c, d, 0)
	}

	return append(dst, ')')
}

// AppendTaskClauses appends the five attached clause nodes of a task region,
// one per line in slot order. This is the serialized form used to detect a
// stale clause state.
func (a *Arena) AppendTaskClauses(dst []byte, task NodeID, d Dialect) []byte {
	a.expect(task, KindTaskRegion)

	for _, c := range a.node(task).children[taskPrivateSlot:] {
		dst = a.appendNode(dst, c, d, 0)
		dst = append(dst, '\n')
	}

	return dst
}

// Append appends the canonical clause text of the sets: five clauses, one per
// line in slot order, empty clauses included. The form matches
// [Arena.AppendTaskClauses] for clause nodes materialized from the same sets.
func (s ClauseSets) Append(dst []byte, a *Arena, d Dialect) []byte {
	dst = appendSymbolClause(dst, a, "private(", s.Private)
	dst = appendSymbolClause(dst, a, "firstprivate(", s.Firstprivate)
	dst = appendSymbolClause(dst, a, "shared(", s.Shared)
	dst = appendTermClause(dst, a, d, "depend(in:", s.In)
	dst = appendTermClause(dst, a, d, "depend(out:", s.Out)

	return dst
}

// Render returns the canonical clause text of the sets.
func (s ClauseSets) Render(a *Arena, d Dialect) string {
	return string(s.Append(nil, a, d))
}

func appendSymbolClause(dst []byte, a *Arena, prefix string, syms []SymbolID) []byte {
	dst = append(dst, prefix...)

	for i, sym := range syms {
		if i > 0 {
			dst = append(dst, ", "...)
		}

		dst = append(dst, a.SymbolName(sym)...)
	}

	return append(dst, ')', '\n')
}

func appendTermClause(dst []byte, a *Arena, d Dialect, prefix string, terms []Term) []byte {
	dst = append(dst, prefix...)

	for i, t := range terms {
		if i > 0 {
			dst = append(dst, ", "...)
		} else {
			dst = append(dst, ' ')
		}

		dst = t.Append(dst, a, d)
	}

	return append(dst, ')', '\n')
}

// Append appends the canonical rendering of the term.
func (t Term) Append(dst []byte, a *Arena, d Dialect) []byte {
	dst = append(dst, a.SymbolName(t.Sym)...)
	if len(t.Dims) == 0 {
		return dst
	}

	dst = append(dst, '(')

	for i, ix := range t.Dims {
		if i > 0 {
			dst = append(dst, ',')
		}

		dst = ix.append(dst, a, d, t.Sym)
	}

	return append(dst, ')')
}

// Render returns the canonical rendering of the term.
func (t Term) Render(a *Arena, d Dialect) string {
	return string(t.Append(nil, a, d))
}

func (ix IndexTerm) append(dst []byte, a *Arena, d Dialect, base SymbolID) []byte {
	switch ix.Kind {
	case IndexExpr:
		return a.appendNode(dst, ix.Expr, d, 0)

	case IndexOffset:
		dst = append(dst, a.SymbolName(ix.Var)...)

		switch {
		case ix.Delta > 0:
			dst = append(dst, '+')
			dst = strconv.AppendInt(dst, ix.Delta, 10)
		case ix.Delta < 0:
			dst = append(dst, '-')
			dst = strconv.AppendInt(dst, -ix.Delta, 10)
		}

		return dst

	case IndexReversed:
		dst = strconv.AppendInt(dst, ix.Delta, 10)
		dst = append(dst, '-')

		return append(dst, a.SymbolName(ix.Var)...)

	case IndexSpan:
		name := a.SymbolName(base)
		dim := strconv.Itoa(ix.Dim)

		dst = append(dst, d.LowerBound...)
		dst = append(dst, '(')
		dst = append(dst, name...)
		dst = append(dst, ',')
		dst = append(dst, dim...)
		dst = append(dst, "):"...)
		dst = append(dst, d.UpperBound...)
		dst = append(dst, '(')
		dst = append(dst, name...)
		dst = append(dst, ',')
		dst = append(dst, dim...)

		return append(dst, ')')

	default:
		panic(diag.Faultf("rendering index term of kind %d", ix.Kind))
	}
}

func indent(dst []byte, depth int) []byte {
	for range depth {
		dst = append(dst, "  "...)
	}

	return dst
}
