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

import (
	"iter"
	"slices"
)

// Walk yields root and its descendants depth-first in source order. When kinds
// are listed, only nodes of those kinds are yielded; the traversal still
// descends through all of them. The sequence is lazy and restartable.
func (a *Arena) Walk(root NodeID, kinds ...Kind) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		a.walk(root, kinds, yield)
	}
}

func (a *Arena) walk(id NodeID, kinds []Kind, yield func(NodeID) bool) bool {
	n := a.node(id)

	if len(kinds) == 0 || slices.Contains(kinds, n.kind) {
		if !yield(id) {
			return false
		}
	}

	for _, c := range n.children {
		if !a.walk(c, kinds, yield) {
			return false
		}
	}

	return true
}

// References yields every reference at or below root in source order,
// including references nested inside array subscripts.
func (a *Arena) References(root NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for id := range a.Walk(root) {
			if !a.node(id).kind.Referential() {
				continue
			}

			if !yield(id) {
				return
			}
		}
	}
}

// Ancestors yields the parent chain of id, nearest first.
func (a *Arena) Ancestors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for p := a.Parent(id); p.Valid(); p = a.Parent(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// Ancestor returns the nearest ancestor of id whose kind is one of kinds,
// [InvalidNode] when there is none.
func (a *Arena) Ancestor(id NodeID, kinds ...Kind) NodeID {
	for p := range a.Ancestors(id) {
		if slices.Contains(kinds, a.node(p).kind) {
			return p
		}
	}

	return InvalidNode
}
