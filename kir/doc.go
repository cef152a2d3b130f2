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

// Package kir models numerical kernels as trees of nodes held in an [Arena].
//
// # Overview
//
// Nodes are addressed by stable [NodeID] handles into a growable arena rather
// than by pointers. Handles stay valid for the lifetime of the arena, child
// lists are plain handle slices, and every node tracks its parent, so the
// analyses in this module can walk up and down the tree without back-pointer
// bookkeeping.
//
// The node vocabulary is the closed [Kind] enum: expressions (literals,
// references, affine binary operations, ranges), statements (assignments,
// conditionals, counted loops, schedules) and regions (task, parallel,
// serial). Regions carry clause slots in a fixed order; task clause slots are
// derived data, rebuilt wholesale from the task body.
//
// # Mutation discipline
//
// The arena is append-only while an analysis runs: building new nodes never
// disturbs existing ones. The only structural mutation is [Arena.SetChildren],
// which validates the candidate child list against the node's shape and then
// swaps the whole list at once, so a region's clause slots are never observable
// in a half-replaced state.
//
// Misuse (an out-of-range handle, attaching a node twice, a malformed clause
// slot layout) is a bug in the embedding program, not a property of the
// kernel, and panics with a [fillmore-labs.com/taskguard/diag.Fault].
package kir
