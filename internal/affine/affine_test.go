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

package affine_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"

	. "fillmore-labs.com/taskguard/internal/affine"
	"fillmore-labs.com/taskguard/internal/config"
	"fillmore-labs.com/taskguard/kir"
)

// kernel declares the entities and the ancestor loop the classification tests
// share: ii is the variable of an enclosing loop with step 32, i the payload
// variable, j a nested loop variable, n a plain scalar.
func kernel(tb testing.TB) (a *kir.Arena, env Env) {
	tb.Helper()

	a = kir.New()
	i := a.Declare("i", kir.SymbolScalar, 0)
	j := a.Declare("j", kir.SymbolScalar, 0)
	ii := a.Declare("ii", kir.SymbolScalar, 0)
	a.Declare("n", kir.SymbolScalar, 0)
	a.Declare("c", kir.SymbolArray, 1)

	loop := a.NewLoop(ii, a.NewIntLiteral(1), a.NewIntLiteral(320), a.NewIntLiteral(32),
		a.NewSchedule())

	nested := roaring.New()
	nested.Add(uint32(j))

	env = Env{
		Payload:   i,
		Proxy:     kir.InvalidSymbol,
		Nested:    nested,
		Ancestors: map[kir.SymbolID]kir.NodeID{ii: loop},
	}

	return a, env
}

func sym(tb testing.TB, a *kir.Arena, name string) kir.SymbolID {
	tb.Helper()

	id, ok := a.Lookup(name)
	if !ok {
		tb.Fatalf("entity %s not declared", name)
	}

	return id
}

func TestClassify(t *testing.T) {
	t.Parallel()

	a, env := kernel(t)
	i := sym(t, a, "i")
	j := sym(t, a, "j")
	ii := sym(t, a, "ii")
	n := sym(t, a, "n")
	c := sym(t, a, "c")

	ref := func(v kir.SymbolID) kir.NodeID { return a.NewReference(v) }
	add := func(l, r kir.NodeID) kir.NodeID { return a.NewBinary(kir.OpAdd, l, r) }
	sub := func(l, r kir.NodeID) kir.NodeID { return a.NewBinary(kir.OpSub, l, r) }

	tests := [...]struct {
		name string
		expr kir.NodeID
		want Class
	}{
		{"literal", a.NewIntLiteral(4), Class{Kind: Constant, Var: kir.InvalidSymbol}},
		{"payload", ref(i), Class{Kind: Payload, Var: i}},
		{"nested", ref(j), Class{Kind: Nested, Var: j}},
		{"ancestor", ref(ii), Class{Kind: Ancestor, Var: ii, Loop: env.Ancestors[ii]}},
		{"plain", ref(n), Class{Kind: Constant, Var: n}},
		{"payload minus", sub(ref(i), a.NewIntLiteral(1)), Class{Kind: Payload, Var: i, Offset: -1}},
		{"literal plus payload", add(a.NewIntLiteral(1), ref(i)), Class{Kind: Payload, Var: i, Offset: 1}},
		{"literal minus payload", sub(a.NewIntLiteral(3), ref(i)),
			Class{Kind: Payload, Var: i, Offset: 3, Reversed: true}},
		{"nested offset", add(ref(j), a.NewIntLiteral(1)), Class{Kind: Nested, Var: j, Offset: 1}},
		{"ancestor offset", add(ref(ii), a.NewIntLiteral(33)),
			Class{Kind: Ancestor, Var: ii, Loop: env.Ancestors[ii], Offset: 33}},
		{"plain offset", add(ref(n), a.NewIntLiteral(2)), Class{Kind: Constant, Var: n, Offset: 2}},
		{"multiplicative", a.NewBinary(kir.OpMul, ref(i), a.NewIntLiteral(2)),
			Class{Kind: Unsupported, Var: kir.InvalidSymbol}},
		{"nested binary", add(sub(ref(i), a.NewIntLiteral(1)), a.NewIntLiteral(1)),
			Class{Kind: Unsupported, Var: kir.InvalidSymbol}},
		{"two references", add(ref(i), ref(n)), Class{Kind: Unsupported, Var: kir.InvalidSymbol}},
		{"subscripted index", a.NewArrayReference(c, ref(i)),
			Class{Kind: Unsupported, Var: kir.InvalidSymbol}},
		{"oversized offset", add(ref(i), a.NewIntLiteral(1<<17)),
			Class{Kind: Unsupported, Var: kir.InvalidSymbol}},
	}

	limits := config.DefaultLimits()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(a, tt.expr, env, limits)

			want := tt.want
			want.Expr = tt.expr
			if want.Kind != Ancestor {
				want.Loop = kir.InvalidNode
			}

			if got != want {
				t.Errorf("Classify() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestClassifyProxy(t *testing.T) {
	t.Parallel()

	a, env := kernel(t)
	i := sym(t, a, "i")
	ii := sym(t, a, "ii")

	env.Proxy = ii

	expr := a.NewBinary(kir.OpSub, a.NewReference(i), a.NewIntLiteral(1))

	want := Class{Kind: Ancestor, Var: ii, Loop: env.Ancestors[ii], Offset: -1, Expr: expr}
	if got := Classify(a, expr, env, config.DefaultLimits()); got != want {
		t.Errorf("Classify(proxy offset) = %+v, want %+v", got, want)
	}

	bare := a.NewReference(i)

	want = Class{Kind: Ancestor, Var: ii, Loop: env.Ancestors[ii], Expr: bare}
	if got := Classify(a, bare, env, config.DefaultLimits()); got != want {
		t.Errorf("Classify(proxy bare) = %+v, want %+v", got, want)
	}
}
