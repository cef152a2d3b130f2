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

// IndexKind discriminates how one dimension of a dependency term is indexed.
type IndexKind uint8

//go:generate go tool stringer -type IndexKind -linecomment
const (
	// IndexExpr is a concrete index taken verbatim from the task body.
	IndexExpr IndexKind = iota // expr
	// IndexOffset is a synthesized displacement of an induction variable.
	IndexOffset // offset
	// IndexReversed is a synthesized literal-minus-variable displacement.
	IndexReversed // reversed
	// IndexSpan is the full-range token covering an entire dimension.
	IndexSpan // span
)

// Term is one dependency-set entry: an access to an entity, qualified per
// dimension when the entity is an array. Terms describe accesses without
// owning tree nodes; existing nodes are referenced read-only.
type Term struct {
	// Sym is the accessed entity.
	Sym SymbolID

	// Dims holds one index per dimension, empty for whole-variable terms.
	Dims []IndexTerm
}

// IndexTerm qualifies one dimension of a [Term].
type IndexTerm struct {
	// Kind selects which of the remaining fields apply.
	Kind IndexKind

	// Expr is the body node rendered verbatim ([IndexExpr]).
	Expr NodeID

	// Var is the displaced induction variable ([IndexOffset], [IndexReversed]).
	Var SymbolID

	// Delta is the signed literal displacement ([IndexOffset]); zero renders
	// as the bare variable. For [IndexReversed] it is the positive literal the
	// variable is subtracted from.
	Delta int64

	// Dim is the one-based dimension of the term's entity ([IndexSpan]).
	Dim int
}

// ExprIndex returns the index term rendering the existing node expr verbatim.
func ExprIndex(expr NodeID) IndexTerm {
	return IndexTerm{Kind: IndexExpr, Expr: expr, Var: InvalidSymbol}
}

// OffsetIndex returns the index term v+delta (or v-|delta|, or bare v).
func OffsetIndex(v SymbolID, delta int64) IndexTerm {
	return IndexTerm{Kind: IndexOffset, Expr: InvalidNode, Var: v, Delta: delta}
}

// ReversedIndex returns the index term delta-v.
func ReversedIndex(v SymbolID, delta int64) IndexTerm {
	return IndexTerm{Kind: IndexReversed, Expr: InvalidNode, Var: v, Delta: delta}
}

// SpanIndex returns the full-range token for the one-based dimension dim.
func SpanIndex(dim int) IndexTerm {
	return IndexTerm{Kind: IndexSpan, Expr: InvalidNode, Var: InvalidSymbol, Dim: dim}
}

// Whole returns the whole-variable term for an entity.
func Whole(sym SymbolID) Term {
	return Term{Sym: sym}
}
