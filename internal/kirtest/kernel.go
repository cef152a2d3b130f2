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

// Package kirtest assembles canned kernel trees for pipeline tests.
//
// It is designed to remove the region-nesting boilerplate from analyzer and
// pipeline tests: a test builds or picks a payload loop and receives the
// fully wrapped parallel/serial/task structure around it.
package kirtest

import "fillmore-labs.com/taskguard/kir"

// Kernel bundles the handles of an assembled kernel tree.
type Kernel struct {
	// Arena holds the tree.
	Arena *kir.Arena

	// Parallel is the outermost parallel region.
	Parallel kir.NodeID

	// Serial is the single-executor section, [kir.InvalidNode] when the
	// kernel has none.
	Serial kir.NodeID

	// Task is the task region under analysis.
	Task kir.NodeID

	// Payload is the single loop forming the task body.
	Payload kir.NodeID
}

// Sym resolves a declared entity by name. Looking up an undeclared name is a
// fixture bug and panics.
func (k Kernel) Sym(name string) kir.SymbolID {
	id, ok := k.Arena.Lookup(name)
	if !ok {
		panic("kirtest: entity " + name + " not declared")
	}

	return id
}

// Wrap places a payload loop inside task, serial and parallel regions, with
// the listed entities authored region-private.
func Wrap(a *kir.Arena, payload kir.NodeID, private ...kir.SymbolID) Kernel {
	task := a.NewTaskRegion(a.NewSchedule(payload))
	serial := a.NewSerialRegion(a.NewSchedule(task))
	parallel := a.NewParallelRegion(a.NewSchedule(serial), private...)

	return Kernel{Arena: a, Parallel: parallel, Serial: serial, Task: task, Payload: payload}
}

// Stencil assembles the backward-difference kernel
//
//	parallel private(i)
//	  serial
//	    task
//	      do i = 1, 10
//	        c(i) = c(i-1) + d
//
// with c and d region-shared.
func Stencil() Kernel {
	a := kir.New()
	i := a.Declare("i", kir.SymbolScalar, 0)
	c := a.Declare("c", kir.SymbolArray, 1)
	d := a.Declare("d", kir.SymbolScalar, 0)

	assign := a.NewAssignment(
		a.NewArrayReference(c, a.NewReference(i)),
		a.NewBinary(kir.OpAdd,
			a.NewArrayReference(c, a.NewBinary(kir.OpSub, a.NewReference(i), a.NewIntLiteral(1))),
			a.NewReference(d)))

	payload := a.NewLoop(i, a.NewIntLiteral(1), a.NewIntLiteral(10), a.NewIntLiteral(1),
		a.NewSchedule(assign))

	return Wrap(a, payload, i)
}

// Chunked assembles the chunked sweep
//
//	parallel private(i, ii)
//	  serial
//	    do ii = 1, 320, 32
//	      task
//	        do i = ii, ii+31
//	          c(i) = c(i-1) + d
//
// where the task's payload loop walks one chunk of the enclosing loop's
// range, making i a proxy for ii.
func Chunked() Kernel {
	a := kir.New()
	i := a.Declare("i", kir.SymbolScalar, 0)
	ii := a.Declare("ii", kir.SymbolScalar, 0)
	c := a.Declare("c", kir.SymbolArray, 1)
	d := a.Declare("d", kir.SymbolScalar, 0)

	assign := a.NewAssignment(
		a.NewArrayReference(c, a.NewReference(i)),
		a.NewBinary(kir.OpAdd,
			a.NewArrayReference(c, a.NewBinary(kir.OpSub, a.NewReference(i), a.NewIntLiteral(1))),
			a.NewReference(d)))

	payload := a.NewLoop(i,
		a.NewReference(ii),
		a.NewBinary(kir.OpAdd, a.NewReference(ii), a.NewIntLiteral(31)),
		a.NewIntLiteral(1),
		a.NewSchedule(assign))

	task := a.NewTaskRegion(a.NewSchedule(payload))

	chunk := a.NewLoop(ii, a.NewIntLiteral(1), a.NewIntLiteral(320), a.NewIntLiteral(32),
		a.NewSchedule(task))

	serial := a.NewSerialRegion(a.NewSchedule(chunk))
	parallel := a.NewParallelRegion(a.NewSchedule(serial), i, ii)

	return Kernel{Arena: a, Parallel: parallel, Serial: serial, Task: task, Payload: payload}
}
