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

// Package affine classifies array-subscript expressions against the loop
// structure around a task region. The supported subset is deliberately small:
// a literal, a bare variable reference, or a single additive displacement of
// one by the other. Everything else classifies as [Unsupported] and is
// rejected by the caller rather than approximated.
package affine

import (
	"github.com/RoaringBitmap/roaring/v2"

	"fillmore-labs.com/taskguard/internal/config"
	"fillmore-labs.com/taskguard/kir"
)

// Env is the loop context a subscript is classified against. It is assembled
// once per task region and read-only afterwards.
type Env struct {
	// Payload is the induction variable of the task's top-level loop.
	Payload kir.SymbolID

	// Proxy is the enclosing loop variable the payload variable stands in
	// for when the payload loop iterates one chunk of its parent.
	// [kir.InvalidSymbol] when the payload loop is not chunked.
	Proxy kir.SymbolID

	// Nested holds the induction variables of loops strictly inside the
	// payload loop.
	Nested *roaring.Bitmap

	// Ancestors maps each enclosing loop variable between the task and its
	// parallel region to the loop owning it.
	Ancestors map[kir.SymbolID]kir.NodeID
}

// NestedVar reports whether v drives a loop strictly inside the payload loop.
func (e Env) NestedVar(v kir.SymbolID) bool {
	return e.Nested != nil && v.Valid() && e.Nested.Contains(uint32(v))
}

// Class is the result of classifying one subscript expression.
type Class struct {
	// Kind discriminates the classification.
	Kind Kind

	// Var is the classified variable: the induction variable for [Payload],
	// [Nested] and [Ancestor], the referenced variable for variable
	// constants, [kir.InvalidSymbol] for literal constants.
	Var kir.SymbolID

	// Loop is the enclosing loop owning Var, for [Ancestor] only.
	Loop kir.NodeID

	// Offset is the signed literal displacement of Var; for the reversed
	// form it is the literal the variable is subtracted from.
	Offset int64

	// Reversed marks the literal-minus-variable form.
	Reversed bool

	// Expr is the classified subscript expression.
	Expr kir.NodeID
}

// Classify resolves one subscript expression against env. It is total:
// out-of-subset forms yield [Unsupported], never an error, so the caller can
// report the rejection with the access context the classifier does not have.
func Classify(a *kir.Arena, expr kir.NodeID, env Env, limits config.Limits) Class {
	switch a.Kind(expr) {
	case kir.KindLiteral:
		return Class{Kind: Constant, Var: kir.InvalidSymbol, Loop: kir.InvalidNode, Expr: expr}

	case kir.KindReference:
		return classifyVar(expr, a.Sym(expr), 0, false, env, limits)

	case kir.KindBinary:
		return classifyBinary(a, expr, env, limits)

	default:
		return unsupported(expr)
	}
}

// classifyBinary matches the two affine shapes, reference op literal and
// literal op reference, for the additive operators.
func classifyBinary(a *kir.Arena, expr kir.NodeID, env Env, limits config.Limits) Class {
	op := a.Operator(expr)
	if !op.Additive() {
		return unsupported(expr)
	}

	left, right := a.Child(expr, 0), a.Child(expr, 1)

	var (
		ref      kir.NodeID
		offset   int64
		reversed bool
	)

	switch {
	case a.Kind(left) == kir.KindReference && a.Kind(right) == kir.KindLiteral:
		k, ok := a.LitInt(right)
		if !ok {
			return unsupported(expr)
		}

		ref, offset = left, k
		if op == kir.OpSub {
			offset = -k
		}

	case a.Kind(left) == kir.KindLiteral && a.Kind(right) == kir.KindReference:
		k, ok := a.LitInt(left)
		if !ok {
			return unsupported(expr)
		}

		ref, offset = right, k
		reversed = op == kir.OpSub

	default:
		return unsupported(expr)
	}

	return classifyVar(expr, a.Sym(ref), offset, reversed, env, limits)
}

func classifyVar(expr kir.NodeID, v kir.SymbolID, offset int64, reversed bool, env Env, limits config.Limits) Class {
	if offset > limits.MaxOffsetLiteral || offset < -limits.MaxOffsetLiteral {
		return unsupported(expr)
	}

	cls := Class{Var: v, Loop: kir.InvalidNode, Offset: offset, Reversed: reversed, Expr: expr}

	switch {
	case v == env.Payload && env.Proxy.Valid():
		// Chunked payload loop: the access stands for one on the real parent
		// variable.
		cls.Kind = Ancestor
		cls.Var = env.Proxy
		cls.Loop = env.Ancestors[env.Proxy]

	case v == env.Payload:
		cls.Kind = Payload

	case env.NestedVar(v):
		cls.Kind = Nested

	default:
		if loop, ok := env.Ancestors[v]; ok {
			cls.Kind = Ancestor
			cls.Loop = loop
		} else {
			cls.Kind = Constant
		}
	}

	return cls
}

func unsupported(expr kir.NodeID) Class {
	return Class{Kind: Unsupported, Var: kir.InvalidSymbol, Loop: kir.InvalidNode, Expr: expr}
}
