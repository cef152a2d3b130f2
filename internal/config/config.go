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

// Package config holds the immutable knobs of the clause derivation. Values
// are assembled once by the analyzer options and passed down explicitly; no
// package reads ambient state.
package config

// Flags represents behavioral options of the clause derivation.
type Flags uint8

const (
	// RequireSerialAncestor demands a single-executor section between a task
	// region and its enclosing parallel region. Without the flag, a task
	// directly inside a parallel region is accepted.
	RequireSerialAncestor Flags = 1 << iota
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Flags]

// DefaultBehavior returns the derivation defaults. Tasks are required to sit
// inside a single-executor section.
func DefaultBehavior() Behavior {
	return NewBitMask(RequireSerialAncestor)
}

// DefaultMaxOffsetLiteral bounds the magnitude of literal offsets accepted in
// affine subscripts.
const DefaultMaxOffsetLiteral = 1 << 16

// Limits holds the numeric bounds of the derivation.
type Limits struct {
	// MaxOffsetLiteral is the largest literal magnitude accepted as an affine
	// subscript offset. Larger offsets make the subscript unsupported.
	MaxOffsetLiteral int64
}

// DefaultLimits returns the default derivation bounds.
func DefaultLimits() Limits {
	return Limits{MaxOffsetLiteral: DefaultMaxOffsetLiteral}
}
