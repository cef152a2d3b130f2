// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

import "github.com/zeebo/xxh3"

// Fingerprint hashes the canonical rendering of the subtree at id. Equal
// fingerprints are treated as structural equality wherever this module
// deduplicates terms or detects unchanged clause state.
func (a *Arena) Fingerprint(id NodeID, d Dialect) uint64 {
	return xxh3.Hash(a.Append(nil, id, d))
}

// Fingerprint hashes the canonical clause text of the sets. Comparing against
// the hash of [Arena.AppendTaskClauses] detects whether attached clause nodes
// are stale.
func (s ClauseSets) Fingerprint(a *Arena, d Dialect) uint64 {
	return xxh3.Hash(s.Append(nil, a, d))
}

// Fingerprint hashes the canonical rendering of the term.
func (t Term) Fingerprint(a *Arena, d Dialect) uint64 {
	return xxh3.Hash(t.Append(nil, a, d))
}

// ClauseFingerprint hashes the serialized form of a task's attached clause
// nodes.
func (a *Arena) ClauseFingerprint(task NodeID, d Dialect) uint64 {
	return xxh3.Hash(a.AppendTaskClauses(nil, task, d))
}
