// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package kir_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/taskguard/kir"
)

func TestWalkPreorder(t *testing.T) {
	t.Parallel()

	a := New()
	i := a.Declare("i", SymbolScalar, 0)
	c := a.Declare("c", SymbolArray, 1)

	assign := a.NewAssignment(a.NewArrayReference(c, a.NewReference(i)), a.NewIntLiteral(0))
	loop := a.NewLoop(i, a.NewIntLiteral(1), a.NewIntLiteral(4), a.NewIntLiteral(1),
		a.NewSchedule(assign))

	var kinds []Kind
	for id := range a.Walk(loop) {
		kinds = append(kinds, a.Kind(id))
	}

	want := []Kind{
		KindLoop,
		KindLiteral, KindLiteral, KindLiteral,
		KindSchedule,
		KindAssignment,
		KindArrayReference, KindReference,
		KindLiteral,
	}
	if !slices.Equal(kinds, want) {
		t.Errorf("Walk(loop) kinds = %v, want %v", kinds, want)
	}
}

func TestWalkFilter(t *testing.T) {
	t.Parallel()

	a, task, loop := buildScenario(t)

	var loops []NodeID
	for id := range a.Walk(task, KindLoop) {
		loops = append(loops, id)
	}

	if want := []NodeID{loop}; !slices.Equal(loops, want) {
		t.Errorf("Walk(task, loop) = %v, want %v", loops, want)
	}

	// The filter selects what is yielded, not where the walk descends:
	// references inside the loop are still found.
	var refs int
	for range a.Walk(task, KindReference, KindArrayReference) {
		refs++
	}

	if got, want := refs, 5; got != want {
		t.Errorf("Walk(task, references) yields %d nodes, want %d", got, want)
	}
}

func TestWalkRestart(t *testing.T) {
	t.Parallel()

	a, task, _ := buildScenario(t)

	first := func() NodeID {
		for id := range a.Walk(task, KindAssignment) {
			return id
		}

		return InvalidNode
	}

	one, two := first(), first()
	if one != two || !one.Valid() {
		t.Errorf("restarted walk yields %d then %d, want the same valid node", one, two)
	}
}

func TestReferences(t *testing.T) {
	t.Parallel()

	a, task, _ := buildScenario(t)

	var names []string
	for id := range a.References(task) {
		names = append(names, a.SymbolName(a.Sym(id)))
	}

	// c(i) with its subscript i, then c(i-1) with its i, then d.
	want := []string{"c", "i", "c", "i", "d"}
	if !slices.Equal(names, want) {
		t.Errorf("References(task) = %v, want %v", names, want)
	}
}

func TestAncestors(t *testing.T) {
	t.Parallel()

	a, task, loop := buildScenario(t)

	assign := InvalidNode
	for id := range a.Walk(task, KindAssignment) {
		assign = id
	}

	var chain []Kind
	for id := range a.Ancestors(assign) {
		chain = append(chain, a.Kind(id))
	}

	want := []Kind{KindSchedule, KindLoop, KindSchedule, KindTaskRegion}
	if !slices.Equal(chain, want) {
		t.Errorf("Ancestors(assign) kinds = %v, want %v", chain, want)
	}

	if got, want := a.Ancestor(assign, KindLoop), loop; got != want {
		t.Errorf("Ancestor(assign, loop) = %d, want %d", got, want)
	}

	if got, want := a.Ancestor(assign, KindTaskRegion), task; got != want {
		t.Errorf("Ancestor(assign, task) = %d, want %d", got, want)
	}

	if got, want := a.Ancestor(task, KindLoop), InvalidNode; got != want {
		t.Errorf("Ancestor(task, loop) = %d, want %d", got, want)
	}
}
