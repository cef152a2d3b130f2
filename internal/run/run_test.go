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

package run_test

import (
	"testing"

	"fillmore-labs.com/taskguard/diag"
	"fillmore-labs.com/taskguard/internal/config"
	"fillmore-labs.com/taskguard/internal/kirtest"
	. "fillmore-labs.com/taskguard/internal/run"
	"fillmore-labs.com/taskguard/kir"
)

func TestComputeStencil(t *testing.T) {
	t.Parallel()

	k := kirtest.Stencil()

	sets, err := DefaultOptions().Compute(k.Arena, k.Task)
	if err != nil {
		t.Fatalf("Compute() error %v", err)
	}

	want := "private(i)\n" +
		"firstprivate()\n" +
		"shared(c, d)\n" +
		"depend(in: c(i-1), d)\n" +
		"depend(out: c(i))\n"
	if got := sets.Render(k.Arena, kir.DefaultDialect()); got != want {
		t.Errorf("clause sets = %q, want %q", got, want)
	}
}

func TestComputeChunked(t *testing.T) {
	t.Parallel()

	k := kirtest.Chunked()

	sets, err := DefaultOptions().Compute(k.Arena, k.Task)
	if err != nil {
		t.Fatalf("Compute() error %v", err)
	}

	// The payload variable stands in for the chunk variable ii: offsets expand
	// against the chunk loop's step of 32, reaching into the previous chunk.
	want := "private(i)\n" +
		"firstprivate(ii)\n" +
		"shared(c, d)\n" +
		"depend(in: c(ii-32), c(ii), d)\n" +
		"depend(out: c(ii))\n"
	if got := sets.Render(k.Arena, kir.DefaultDialect()); got != want {
		t.Errorf("clause sets = %q, want %q", got, want)
	}
}

func TestComputeIsReadOnly(t *testing.T) {
	t.Parallel()

	k := kirtest.Stencil()
	before := k.Arena.Len()

	if _, err := DefaultOptions().Compute(k.Arena, k.Task); err != nil {
		t.Fatalf("Compute() error %v", err)
	}

	if got, want := k.Arena.Len(), before; got != want {
		t.Errorf("arena grew to %d nodes, want %d", got, want)
	}
}

// emptyPayload builds the trivial do v = 1, 4 loop.
func emptyPayload(a *kir.Arena) (kir.SymbolID, kir.NodeID) {
	v := a.Declare("v", kir.SymbolScalar, 0)
	payload := a.NewLoop(v, a.NewIntLiteral(1), a.NewIntLiteral(4), a.NewIntLiteral(1),
		a.NewSchedule())

	return v, payload
}

// floating builds a task region with no parallel ancestor.
func floating() kirtest.Kernel {
	a := kir.New()
	_, payload := emptyPayload(a)
	task := a.NewTaskRegion(a.NewSchedule(payload))

	return kirtest.Kernel{
		Arena: a, Parallel: kir.InvalidNode, Serial: kir.InvalidNode, Task: task, Payload: payload,
	}
}

// noSerial wraps a task directly in a parallel region.
func noSerial() kirtest.Kernel {
	a := kir.New()
	v, payload := emptyPayload(a)
	task := a.NewTaskRegion(a.NewSchedule(payload))
	parallel := a.NewParallelRegion(a.NewSchedule(task), v)

	return kirtest.Kernel{
		Arena: a, Parallel: parallel, Serial: kir.InvalidNode, Task: task, Payload: payload,
	}
}

// serialOutside nests the parallel region inside the serial one, leaving no
// serial section between task and parallel.
func serialOutside() kirtest.Kernel {
	a := kir.New()
	v, payload := emptyPayload(a)
	task := a.NewTaskRegion(a.NewSchedule(payload))
	parallel := a.NewParallelRegion(a.NewSchedule(task), v)
	serial := a.NewSerialRegion(a.NewSchedule(parallel))

	return kirtest.Kernel{
		Arena: a, Parallel: parallel, Serial: serial, Task: task, Payload: payload,
	}
}

// twoStatements builds a task whose body schedule holds two loops.
func twoStatements() kirtest.Kernel {
	a := kir.New()
	v, first := emptyPayload(a)
	w := a.Declare("w", kir.SymbolScalar, 0)
	second := a.NewLoop(w, a.NewIntLiteral(1), a.NewIntLiteral(4), a.NewIntLiteral(1),
		a.NewSchedule())

	task := a.NewTaskRegion(a.NewSchedule(first, second))
	serial := a.NewSerialRegion(a.NewSchedule(task))
	parallel := a.NewParallelRegion(a.NewSchedule(serial), v, w)

	return kirtest.Kernel{
		Arena: a, Parallel: parallel, Serial: serial, Task: task, Payload: kir.InvalidNode,
	}
}

// notALoop builds a task whose body is a single assignment.
func notALoop() kirtest.Kernel {
	a := kir.New()
	v := a.Declare("v", kir.SymbolScalar, 0)
	stmt := a.NewAssignment(a.NewReference(v), a.NewIntLiteral(0))

	task := a.NewTaskRegion(a.NewSchedule(stmt))
	serial := a.NewSerialRegion(a.NewSchedule(task))
	parallel := a.NewParallelRegion(a.NewSchedule(serial), v)

	return kirtest.Kernel{
		Arena: a, Parallel: parallel, Serial: serial, Task: task, Payload: kir.InvalidNode,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	relaxed := DefaultOptions()
	relaxed.Behavior.Disable(config.RequireSerialAncestor)

	tests := [...]struct {
		name  string
		o     *Options
		build func() kirtest.Kernel
		kind  diag.RejectionKind
		ok    bool
	}{
		{name: "stencil", o: DefaultOptions(), build: kirtest.Stencil, ok: true},
		{name: "chunked", o: DefaultOptions(), build: kirtest.Chunked, ok: true},
		{name: "no parallel", o: DefaultOptions(), build: floating,
			kind: diag.MissingEnclosingRegion},
		{name: "no serial", o: DefaultOptions(), build: noSerial,
			kind: diag.MissingEnclosingRegion},
		{name: "no serial relaxed", o: relaxed, build: noSerial, ok: true},
		{name: "serial outside parallel", o: DefaultOptions(), build: serialOutside,
			kind: diag.MissingEnclosingRegion},
		{name: "two statements", o: DefaultOptions(), build: twoStatements,
			kind: diag.MalformedTaskBody},
		{name: "body not a loop", o: DefaultOptions(), build: notALoop,
			kind: diag.MalformedTaskBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			k := tt.build()

			err := tt.o.Validate(k.Arena, k.Task)
			if tt.ok {
				if err != nil {
					t.Fatalf("Validate() error %v, want success", err)
				}

				return
			}

			if !diag.IsKind(err, tt.kind) {
				t.Errorf("Validate() error %v, want %s rejection", err, tt.kind)
			}
		})
	}
}

func TestValidateFault(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected fault")
		}

		if err, ok := r.(error); !ok || !diag.IsFault(err) {
			t.Errorf("recovered %v, want a fault", r)
		}
	}()

	k := kirtest.Stencil()
	_ = DefaultOptions().Validate(k.Arena, k.Payload)
}
