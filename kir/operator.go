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

// Operator identifies the operator of a binary expression node.
type Operator uint8

//go:generate go tool stringer -type Operator -linecomment
const (
	// OpNone marks nodes that are not operations.
	OpNone Operator = iota // <none>
	// OpAdd is addition.
	OpAdd // +
	// OpSub is subtraction.
	OpSub // -
	// OpMul is multiplication.
	OpMul // *
	// OpDiv is division.
	OpDiv // /
	// OpEq is equality.
	OpEq // ==
	// OpNe is inequality.
	OpNe // /=
	// OpLt is less-than.
	OpLt // <
	// OpLe is less-or-equal.
	OpLe // <=
	// OpGt is greater-than.
	OpGt // >
	// OpGe is greater-or-equal.
	OpGe // >=
	// OpAnd is logical conjunction.
	OpAnd // .AND.
	// OpOr is logical disjunction.
	OpOr // .OR.
	// OpLBound queries the lower bound of an array dimension.
	OpLBound // LBOUND
	// OpUBound queries the upper bound of an array dimension.
	OpUBound // UBOUND
)

// Additive reports whether the operator is addition or subtraction, the only
// operators admissible in affine index expressions.
func (o Operator) Additive() bool {
	return o == OpAdd || o == OpSub
}

// Bound reports whether the operator is an array-bound query. Bound operations
// render in call form rather than infix form.
func (o Operator) Bound() bool {
	return o == OpLBound || o == OpUBound
}
