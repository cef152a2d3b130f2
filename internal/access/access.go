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

// Package access decides the data-sharing class of single references inside a
// task body. Region-private entities follow the write-first rule: the first
// write makes an entity task-private, anything else first-private.
// Region-shared entities stay shared and contribute dependency terms instead.
package access

import (
	"slices"

	"fillmore-labs.com/taskguard/diag"
	"fillmore-labs.com/taskguard/internal/affine"
	"fillmore-labs.com/taskguard/internal/config"
	"fillmore-labs.com/taskguard/kir"
)

// Resolver reports the authored privacy of an entity at the enclosing
// parallel region.
type Resolver interface {
	RegionPrivate(v kir.SymbolID) bool
}

// Classifier classifies one reference at a time against the enclosing region
// and the loop context, mutating its [Sets]. A returned error is always a
// [diag.Rejection]; the sets are unusable afterwards.
type Classifier struct {
	// Arena holds the kernel tree.
	Arena *kir.Arena

	// Env is the task's loop context.
	Env affine.Env

	// Region resolves entity privacy at the enclosing parallel region.
	Region Resolver

	// Limits bounds the affine subset.
	Limits config.Limits

	// Sets receives the classifications.
	Sets *Sets
}

// Read classifies a read occurrence of a reference.
func (c *Classifier) Read(ref kir.NodeID) error {
	return c.classify(ref, false)
}

// Write classifies a write occurrence of a reference.
func (c *Classifier) Write(ref kir.NodeID) error {
	return c.classify(ref, true)
}

func (c *Classifier) classify(ref kir.NodeID, write bool) error {
	kind := c.Arena.Kind(ref)
	if !kind.Referential() {
		panic(diag.Faultf("classifying %s node %d", kind, ref))
	}

	base := c.Arena.Sym(ref)

	if c.Region.RegionPrivate(base) {
		if write && !c.Sets.Recorded(base) {
			c.Sets.AddPrivate(base)
		} else {
			c.Sets.AddFirstprivate(base)
		}

		if kind != kir.KindArrayReference {
			return nil
		}

		// No dependency terms for region-private entities, but the subscripts
		// still read their index variables and stay bound to the affine subset.
		_, err := c.resolveIndices(ref, false)

		return err
	}

	c.Sets.AddShared(base)

	if kind != kir.KindArrayReference {
		if write {
			c.Sets.AddOut(kir.Whole(base))
		} else {
			c.Sets.AddIn(kir.Whole(base))
		}

		return nil
	}

	terms, err := c.resolveIndices(ref, true)
	if err != nil {
		return err
	}

	for _, t := range terms {
		if write {
			c.Sets.AddOut(t)
		} else {
			c.Sets.AddIn(t)
		}
	}

	return nil
}

// resolveIndices resolves every dimension of a subscripted reference and,
// when terms is set, combines the per-dimension alternatives into concrete
// dependency terms. A chunked dimension contributes up to two alternatives;
// the result is their Cartesian product in dimension order, last dimension
// varying fastest.
func (c *Classifier) resolveIndices(ref kir.NodeID, terms bool) ([]kir.Term, error) {
	base := c.Arena.Sym(ref)
	rank := c.Arena.NumChildren(ref)

	alts := make([][]kir.IndexTerm, rank)
	for dim := range rank {
		choices, err := c.resolveIndex(base, c.Arena.Child(ref, dim), dim+1, terms)
		if err != nil {
			return nil, err
		}

		alts[dim] = choices
	}

	if !terms {
		return nil, nil
	}

	return product(base, alts), nil
}

// resolveIndex classifies one subscript expression, records its index
// variable and yields the alternative index terms for the dimension.
func (c *Classifier) resolveIndex(base kir.SymbolID, ix kir.NodeID, dim int, terms bool) ([]kir.IndexTerm, error) {
	cls := affine.Classify(c.Arena, ix, c.Env, c.Limits)

	if cls.Kind == affine.Unsupported {
		return nil, diag.Reject(diag.UnsupportedIndexForm, ix.Index(), c.Arena.SymbolName(base),
			c.Arena.Render(ix, c.Sets.d))
	}

	// Index variables must be usable inside the task: region-private ones
	// become first-private unless already recorded, region-shared ones are
	// invalid as indices.
	if cls.Var.Valid() && !c.Sets.Recorded(cls.Var) {
		if !c.Region.RegionPrivate(cls.Var) {
			return nil, diag.Reject(diag.SharedUsedAsIndex, ix.Index(), c.Arena.SymbolName(cls.Var),
				"array subscripts must be private, first-private or loop-local")
		}

		c.Sets.AddFirstprivate(cls.Var)
	}

	if !terms {
		return nil, nil
	}

	switch cls.Kind {
	case affine.Constant, affine.Payload:
		return []kir.IndexTerm{kir.ExprIndex(ix)}, nil

	case affine.Nested:
		// The nested loop sweeps the whole dimension.
		return []kir.IndexTerm{kir.SpanIndex(dim)}, nil

	case affine.Ancestor:
		return affine.ExpandOffset(c.Arena, cls)

	default:
		panic(diag.Faultf("index classification %s for node %d", cls.Kind, ix))
	}
}

func product(base kir.SymbolID, alts [][]kir.IndexTerm) []kir.Term {
	total := 1
	for _, as := range alts {
		total *= len(as)
	}

	terms := make([]kir.Term, 0, total)
	dims := make([]kir.IndexTerm, len(alts))

	var expand func(int)
	expand = func(d int) {
		if d == len(alts) {
			terms = append(terms, kir.Term{Sym: base, Dims: slices.Clone(dims)})

			return
		}

		for _, ix := range alts[d] {
			dims[d] = ix
			expand(d + 1)
		}
	}
	expand(0)

	return terms
}
