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

package diag

import "errors"

// RejectionKind enumerates the closed set of reasons clause inference refuses
// a task region.
type RejectionKind uint8

//go:generate go tool stringer -type RejectionKind -linecomment
const (
	// UnsupportedIndexForm indicates an array subscript that is not a literal,
	// a bare induction-variable reference, or a bounded affine offset of one.
	UnsupportedIndexForm RejectionKind = iota // unsupported-index-form
	// NonLiteralStepUnsupported indicates offset expansion against a loop whose
	// step does not reduce to a nonzero integer literal.
	NonLiteralStepUnsupported // non-literal-step
	// SharedUsedAsIndex indicates a region-shared variable used as an array index.
	SharedUsedAsIndex // shared-used-as-index
	// MissingEnclosingRegion indicates a task without the required parallel or
	// serial ancestor region.
	MissingEnclosingRegion // missing-enclosing-region
	// MalformedTaskBody indicates a task body outside the supported shape: a
	// body that is not a single top-level loop, a statement kind the walk does
	// not handle, or an array reference in loop bounds.
	MalformedTaskBody // malformed-task-body
)

// Rejection is the error returned when a kernel construct is outside the
// supported form. The node index and rendered detail identify the offending
// statement or reference for the surrounding pipeline's reporting.
type Rejection struct {
	// Kind is the taxonomy entry.
	Kind RejectionKind

	// Node is the arena index of the offending node, negative when unknown.
	Node int32

	// Symbol names the entity involved, when one is known.
	Symbol string

	// Detail carries the canonical rendering of the offending construct or a
	// short explanation.
	Detail string
}

// Reject creates a [Rejection] of the given kind for the node at arena index node.
func Reject(kind RejectionKind, node int32, symbol, detail string) *Rejection {
	return &Rejection{Kind: kind, Node: node, Symbol: symbol, Detail: detail}
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	msg := r.Kind.String()
	if r.Symbol != "" {
		msg += ": " + r.Symbol
	}

	if r.Detail != "" {
		msg += ": " + r.Detail
	}

	return msg
}

// AsRejection extracts a [Rejection] from err's chain.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	ok := errors.As(err, &r)

	return r, ok
}

// IsKind reports whether err's chain contains a [Rejection] of the given kind.
func IsKind(err error, kind RejectionKind) bool {
	r, ok := AsRejection(err)

	return ok && r.Kind == kind
}
