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

// Kind discriminates the closed set of node kinds.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindInvalid is the kind of no node.
	KindInvalid Kind = iota // invalid
	// KindLiteral is a literal value; the text is in the node's literal field.
	KindLiteral // literal
	// KindReference is a bare read or write occurrence of a named entity.
	KindReference // reference
	// KindArrayReference is a subscripted occurrence, one index child per dimension.
	KindArrayReference // array-reference
	// KindStructureReference is a component access chaining through a base entity.
	KindStructureReference // structure-reference
	// KindBinary is a binary operation with two operand children.
	KindBinary // binary
	// KindRange is a dimension span with start and stop children.
	KindRange // range
	// KindAssignment is a statement with one reference child written and one
	// expression child read.
	KindAssignment // assignment
	// KindIfBlock is a conditional with a condition child, a then schedule and
	// an optional else schedule.
	KindIfBlock // if-block
	// KindLoop is a counted loop: start, stop and step children plus a body
	// schedule, with the induction variable in the node's symbol field.
	KindLoop // loop
	// KindSchedule is an ordered statement sequence.
	KindSchedule // schedule
	// KindTaskRegion is an asynchronous task: a body schedule plus five derived
	// clause slots.
	KindTaskRegion // task-region
	// KindParallelRegion is the region establishing the privacy context: a body
	// schedule plus an authored private clause slot.
	KindParallelRegion // parallel-region
	// KindSerialRegion is a single-executor section inside a parallel region.
	KindSerialRegion // serial-region
	// KindClause is a data-sharing or dependency clause owned by a region.
	KindClause // clause
)

// Referential reports whether the kind denotes a named-entity access.
func (k Kind) Referential() bool {
	return k == KindReference || k == KindArrayReference || k == KindStructureReference
}

// Region reports whether the kind is a region carrying clause slots.
func (k Kind) Region() bool {
	return k == KindTaskRegion || k == KindParallelRegion || k == KindSerialRegion
}
