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

package kir

// ClauseKind identifies the role of a clause attached to a region.
type ClauseKind uint8

//go:generate go tool stringer -type ClauseKind -linecomment
const (
	// ClauseNone marks nodes that are not clauses.
	ClauseNone ClauseKind = iota // <none>
	// ClausePrivate lists entities receiving an uninitialized per-task copy.
	ClausePrivate // private
	// ClauseFirstprivate lists entities copied in at task creation.
	ClauseFirstprivate // firstprivate
	// ClauseShared lists entities accessed in place.
	ClauseShared // shared
	// ClauseDependIn lists terms the task must wait on.
	ClauseDependIn // depend-in
	// ClauseDependOut lists terms later tasks may wait on.
	ClauseDependOut // depend-out
)

// ClauseSets is the result of clause inference for one task region: the three
// data-sharing sets as entities and the two dependency sets as access terms.
// Entries appear in first-recorded order; recomputing over an unchanged body
// reproduces the sets exactly.
//
// The sets are plain values describing the task's current body. They hold no
// arena nodes of their own; materialization builds clause nodes from them.
type ClauseSets struct {
	// Private entities get an uninitialized fresh copy per task instance.
	Private []SymbolID

	// Firstprivate entities get a copy initialized at task creation.
	Firstprivate []SymbolID

	// Shared entities are accessed in place and ordered by dependency terms.
	Shared []SymbolID

	// In holds the access terms the task waits on.
	In []Term

	// Out holds the access terms later tasks wait on.
	Out []Term
}

// Empty reports whether every set is empty.
func (s ClauseSets) Empty() bool {
	return len(s.Private) == 0 && len(s.Firstprivate) == 0 && len(s.Shared) == 0 &&
		len(s.In) == 0 && len(s.Out) == 0
}
