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

package analyzer

import (
	"fillmore-labs.com/taskguard/internal/run"
	"fillmore-labs.com/taskguard/kir"
)

// Analyzer derives data-sharing and dependence clauses for task regions. A
// configured Analyzer is immutable and safe for concurrent use; construct
// instances with [New].
type Analyzer struct {
	r *runOptions
}

// New creates a new instance of the taskguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into a compilation pipeline. The
// pre-configured [Default] instance is sufficient for most callers.
func New(opts ...Option) *Analyzer {
	return &Analyzer{r: makeRunOptions(Options(opts))}
}

// Default is a pre-configured [Analyzer] with default options.
var Default = New()

// Validate checks the structural preconditions of a task region without
// deriving clauses: an enclosing parallel region, the single-executor section
// when required, and the single-loop body shape. It reports the same
// rejections as [Analyzer.Compute].
func (an *Analyzer) Validate(a *kir.Arena, task kir.NodeID) error {
	return an.r.options.Validate(a, task)
}

// Compute derives the clause sets of a task region. The arena is only read.
func (an *Analyzer) Compute(a *kir.Arena, task kir.NodeID) (kir.ClauseSets, error) {
	return an.r.options.Compute(a, task)
}

// Materialize derives the clause sets of a task region and attaches them to
// the tree, replacing the previously attached clause nodes in one step. On
// error the tree is left untouched.
func (an *Analyzer) Materialize(a *kir.Arena, task kir.NodeID) (kir.ClauseSets, error) {
	return an.r.options.Materialize(a, task)
}

// Resolver reports the authored privacy of an entity at a parallel region.
// Implementations adapt the symbol tables of an embedding compiler. A [New]
// analyzer without [WithResolver] uses [RegionResolver].
type Resolver interface {
	// RegionPrivate reports whether v is private to the parallel region.
	RegionPrivate(a *kir.Arena, region kir.NodeID, v kir.SymbolID) bool
}

// RegionResolver resolves privacy from the private clause authored on the
// parallel region node.
type RegionResolver struct{}

// RegionPrivate implements [Resolver].
func (RegionResolver) RegionPrivate(a *kir.Arena, region kir.NodeID, v kir.SymbolID) bool {
	return run.AuthoredPrivate(a, region, v)
}
