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

package analyzer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/taskguard/kir"
)

// ComputeAll derives the clause sets of several task regions of one arena.
// Derivations run concurrently up to the configured parallelism; the arena is
// only read. Results align with tasks by position. The first error cancels the
// remaining derivations and is returned.
func (an *Analyzer) ComputeAll(ctx context.Context, a *kir.Arena, tasks []kir.NodeID) ([]kir.ClauseSets, error) {
	sets := make([]kir.ClauseSets, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	if n := an.r.parallelism; n > 0 {
		g.SetLimit(n)
	}

	for i, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := an.r.options.Compute(a, task)
			if err != nil {
				return err
			}

			sets[i] = s

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sets, nil
}

// MaterializeAll derives and attaches the clause sets of several task regions
// of one arena. Derivations run concurrently like [Analyzer.ComputeAll]; the
// tree is then mutated task by task from a single goroutine. On error no task
// is modified.
func (an *Analyzer) MaterializeAll(ctx context.Context, a *kir.Arena, tasks []kir.NodeID) ([]kir.ClauseSets, error) {
	sets, err := an.ComputeAll(ctx, a, tasks)
	if err != nil {
		return nil, err
	}

	for i, task := range tasks {
		an.r.options.Attach(a, task, sets[i])
	}

	return sets, nil
}
