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

// Package analyzer derives data-sharing and dependence clauses for task
// regions over the kernel IR of package [fillmore-labs.com/taskguard/kir].
//
// # Overview
//
// TaskGuard classifies every entity a task body touches as private,
// firstprivate or shared and synthesizes depend(in:) and depend(out:) entries
// for the shared ones, so that tasks created inside a single-executor section
// of a parallel region order themselves through their data.
//
// # Example
//
// For a task region wrapping the loop
//
//	do i = 1, 10, 1
//	  c(i) = c(i-1) + d
//	end do
//
// inside a parallel region that declares i private, [Analyzer.Compute]
// derives
//
//	private(i)
//	firstprivate()
//	shared(c, d)
//	depend(in: c(i-1), d)
//	depend(out: c(i))
//
// and [Analyzer.Materialize] attaches the matching clause nodes to the task
// region node.
//
// # Configuration
//
// Construct analyzers with [New] and [Option] values, or decode options from
// YAML settings files with [ParseSettings] and from the environment with
// [SettingsFromEnv].
package analyzer
