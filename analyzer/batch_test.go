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

package analyzer_test

import (
	"context"
	"errors"
	"testing"

	. "fillmore-labs.com/taskguard/analyzer"
	"fillmore-labs.com/taskguard/diag"
	"fillmore-labs.com/taskguard/internal/kirtest"
	"fillmore-labs.com/taskguard/kir"
)

// twoStencils assembles two independent backward-difference tasks over
// disjoint arrays in one arena.
func twoStencils() (kirtest.Kernel, kirtest.Kernel) {
	a := kir.New()
	i := a.Declare("i", kir.SymbolScalar, 0)
	j := a.Declare("j", kir.SymbolScalar, 0)
	c := a.Declare("c", kir.SymbolArray, 1)
	b := a.Declare("b", kir.SymbolArray, 1)

	first := a.NewLoop(i, a.NewIntLiteral(1), a.NewIntLiteral(10), a.NewIntLiteral(1),
		a.NewSchedule(a.NewAssignment(
			a.NewArrayReference(c, a.NewReference(i)),
			a.NewArrayReference(c, a.NewBinary(kir.OpSub, a.NewReference(i), a.NewIntLiteral(1))))))

	second := a.NewLoop(j, a.NewIntLiteral(1), a.NewIntLiteral(10), a.NewIntLiteral(1),
		a.NewSchedule(a.NewAssignment(
			a.NewArrayReference(b, a.NewReference(j)),
			a.NewArrayReference(b, a.NewBinary(kir.OpSub, a.NewReference(j), a.NewIntLiteral(1))))))

	return kirtest.Wrap(a, first, i), kirtest.Wrap(a, second, j)
}

// floatingTask adds a task region outside any parallel region to the arena.
func floatingTask(k kirtest.Kernel, v string) kir.NodeID {
	a := k.Arena
	loop := a.NewLoop(k.Sym(v), a.NewIntLiteral(1), a.NewIntLiteral(4), a.NewIntLiteral(1),
		a.NewSchedule())

	return a.NewTaskRegion(a.NewSchedule(loop))
}

func TestComputeAll(t *testing.T) {
	t.Parallel()

	k1, k2 := twoStencils()
	tasks := []kir.NodeID{k1.Task, k2.Task}

	batch, err := Default.ComputeAll(context.Background(), k1.Arena, tasks)
	if err != nil {
		t.Fatalf("ComputeAll() error %v", err)
	}

	if got, want := len(batch), len(tasks); got != want {
		t.Fatalf("ComputeAll() yielded %d results, want %d", got, want)
	}

	// Batch results match task-by-task sequential derivation.
	d := kir.DefaultDialect()
	for n, task := range tasks {
		sets, err := Default.Compute(k1.Arena, task)
		if err != nil {
			t.Fatalf("Compute() error %v", err)
		}

		if got, want := batch[n].Render(k1.Arena, d), sets.Render(k1.Arena, d); got != want {
			t.Errorf("batch result %d = %q, want %q", n, got, want)
		}
	}
}

func TestComputeAllRejection(t *testing.T) {
	t.Parallel()

	k1, _ := twoStencils()
	floating := floatingTask(k1, "i")

	batch, err := Default.ComputeAll(context.Background(), k1.Arena, []kir.NodeID{k1.Task, floating})
	if !diag.IsKind(err, diag.MissingEnclosingRegion) {
		t.Errorf("ComputeAll() error %v, want a missing enclosing region rejection", err)
	}

	if batch != nil {
		t.Errorf("ComputeAll() yielded %d results, want none", len(batch))
	}
}

func TestComputeAllCanceled(t *testing.T) {
	t.Parallel()

	k1, k2 := twoStencils()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Default.ComputeAll(ctx, k1.Arena, []kir.NodeID{k1.Task, k2.Task}); !errors.Is(err, context.Canceled) {
		t.Errorf("ComputeAll() error %v, want %v", err, context.Canceled)
	}
}

func TestMaterializeAll(t *testing.T) {
	t.Parallel()

	k1, k2 := twoStencils()
	tasks := []kir.NodeID{k1.Task, k2.Task}

	batch, err := Default.MaterializeAll(context.Background(), k1.Arena, tasks)
	if err != nil {
		t.Fatalf("MaterializeAll() error %v", err)
	}

	d := kir.DefaultDialect()
	for n, task := range tasks {
		if got, want := string(k1.Arena.AppendTaskClauses(nil, task, d)), batch[n].Render(k1.Arena, d); got != want {
			t.Errorf("attached clauses %d = %q, want %q", n, got, want)
		}
	}
}

func TestMaterializeAllAtomic(t *testing.T) {
	t.Parallel()

	k1, _ := twoStencils()
	floating := floatingTask(k1, "j")

	d := kir.DefaultDialect()
	before := string(k1.Arena.AppendTaskClauses(nil, k1.Task, d))

	_, err := Default.MaterializeAll(context.Background(), k1.Arena, []kir.NodeID{k1.Task, floating})
	if !diag.IsKind(err, diag.MissingEnclosingRegion) {
		t.Fatalf("MaterializeAll() error %v, want a missing enclosing region rejection", err)
	}

	// A failing batch leaves every task untouched.
	if got := string(k1.Arena.AppendTaskClauses(nil, k1.Task, d)); got != before {
		t.Errorf("attached clauses = %q, want %q", got, before)
	}
}
