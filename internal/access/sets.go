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

package access

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"fillmore-labs.com/taskguard/kir"
)

// Sets accumulates the five clause sets while a task body is walked. Entities
// keep their first-insertion order, so two walks over the same body produce
// identical clause sets. Dependency terms are deduplicated by canonical-render
// fingerprint.
type Sets struct {
	arena *kir.Arena
	d     kir.Dialect

	private      *roaring.Bitmap
	firstprivate *roaring.Bitmap
	shared       *roaring.Bitmap

	privateOrder      []kir.SymbolID
	firstprivateOrder []kir.SymbolID
	sharedOrder       []kir.SymbolID

	in      []kir.Term
	out     []kir.Term
	inSeen  map[uint64]struct{}
	outSeen map[uint64]struct{}
}

// NewSets creates empty clause sets. The dialect fixes the term fingerprints
// used for deduplication.
func NewSets(a *kir.Arena, d kir.Dialect) *Sets {
	return &Sets{
		arena:        a,
		d:            d,
		private:      roaring.New(),
		firstprivate: roaring.New(),
		shared:       roaring.New(),
		inSeen:       make(map[uint64]struct{}),
		outSeen:      make(map[uint64]struct{}),
	}
}

// Recorded reports whether v already has a private or first-private record.
func (s *Sets) Recorded(v kir.SymbolID) bool {
	return s.private.Contains(uint32(v)) || s.firstprivate.Contains(uint32(v))
}

// AddPrivate records v as task-private. Entities already recorded keep their
// class: the first record wins.
func (s *Sets) AddPrivate(v kir.SymbolID) {
	if s.Recorded(v) {
		return
	}

	s.private.Add(uint32(v))
	s.privateOrder = append(s.privateOrder, v)
}

// AddFirstprivate records v as first-private. Entities already recorded keep
// their class.
func (s *Sets) AddFirstprivate(v kir.SymbolID) {
	if s.Recorded(v) {
		return
	}

	s.firstprivate.Add(uint32(v))
	s.firstprivateOrder = append(s.firstprivateOrder, v)
}

// ForcePrivate records v as task-private, revoking an earlier first-private
// record. Induction variables owned by the task are never initialized by the
// caller, so first-private is never correct for them.
func (s *Sets) ForcePrivate(v kir.SymbolID) {
	if s.private.Contains(uint32(v)) {
		return
	}

	if s.firstprivate.Contains(uint32(v)) {
		s.firstprivate.Remove(uint32(v))

		if i := slices.Index(s.firstprivateOrder, v); i >= 0 {
			s.firstprivateOrder = slices.Delete(s.firstprivateOrder, i, i+1)
		}
	}

	s.private.Add(uint32(v))
	s.privateOrder = append(s.privateOrder, v)
}

// AddShared records v as shared.
func (s *Sets) AddShared(v kir.SymbolID) {
	if s.shared.Contains(uint32(v)) {
		return
	}

	s.shared.Add(uint32(v))
	s.sharedOrder = append(s.sharedOrder, v)
}

// AddIn appends an input-dependency term unless a structurally equal term is
// already present.
func (s *Sets) AddIn(t kir.Term) {
	fp := t.Fingerprint(s.arena, s.d)
	if _, ok := s.inSeen[fp]; ok {
		return
	}

	s.inSeen[fp] = struct{}{}
	s.in = append(s.in, t)
}

// AddOut appends an output-dependency term unless a structurally equal term
// is already present.
func (s *Sets) AddOut(t kir.Term) {
	fp := t.Fingerprint(s.arena, s.d)
	if _, ok := s.outSeen[fp]; ok {
		return
	}

	s.outSeen[fp] = struct{}{}
	s.out = append(s.out, t)
}

// Finalize returns the accumulated clause sets in insertion order.
func (s *Sets) Finalize() kir.ClauseSets {
	return kir.ClauseSets{
		Private:      s.privateOrder,
		Firstprivate: s.firstprivateOrder,
		Shared:       s.sharedOrder,
		In:           s.in,
		Out:          s.out,
	}
}
