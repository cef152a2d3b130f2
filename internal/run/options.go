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

package run

import (
	"fillmore-labs.com/taskguard/internal/config"
	"fillmore-labs.com/taskguard/kir"
)

// Options bundle the inputs shared by every pipeline stage. The value is
// immutable while the pipeline runs.
type Options struct {
	// Behavior holds the structural validation switches.
	Behavior config.Behavior

	// Limits bounds the affine index subset.
	Limits config.Limits

	// Dialect fixes the canonical rendering and with it the clause
	// fingerprints.
	Dialect kir.Dialect

	// Region resolves entity privacy at the enclosing parallel region. Nil
	// selects the authored private clause of the region.
	Region Resolver
}

// DefaultOptions initializes and returns a new Options instance with default
// values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
		Limits:   config.DefaultLimits(),
		Dialect:  kir.DefaultDialect(),
	}
}

// Resolver reports the authored privacy of an entity at a parallel region.
type Resolver interface {
	RegionPrivate(a *kir.Arena, region kir.NodeID, v kir.SymbolID) bool
}

// AuthoredPrivate reports whether the parallel region's authored private
// clause lists v. It is the default [Resolver] behavior.
func AuthoredPrivate(a *kir.Arena, region kir.NodeID, v kir.SymbolID) bool {
	for ref := range a.Children(a.RegionPrivateClause(region)) {
		if a.Sym(ref) == v {
			return true
		}
	}

	return false
}

type authoredResolver struct{}

func (authoredResolver) RegionPrivate(a *kir.Arena, region kir.NodeID, v kir.SymbolID) bool {
	return AuthoredPrivate(a, region, v)
}

// boundResolver narrows a region-aware [Resolver] to the single-region
// interface the access classifier consumes.
type boundResolver struct {
	a      *kir.Arena
	region kir.NodeID
	r      Resolver
}

func (b boundResolver) RegionPrivate(v kir.SymbolID) bool {
	return b.r.RegionPrivate(b.a, b.region, v)
}

func (o *Options) resolver(a *kir.Arena, region kir.NodeID) boundResolver {
	r := o.Region
	if r == nil {
		r = authoredResolver{}
	}

	return boundResolver{a: a, region: region, r: r}
}
