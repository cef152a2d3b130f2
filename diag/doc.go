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

// Package diag defines the two error categories of clause inference.
//
// A [Rejection] states that a kernel construct is outside the supported form.
// Rejections are ordinary error values with a closed [RejectionKind] taxonomy;
// they propagate unchanged to the caller, which decides whether to abort the
// transformation or leave the task unmodified. Inference never substitutes a
// best-effort classification for a rejection, since a guessed dependency set
// can race.
//
// A [Fault] states that an internal invariant was violated, such as a region
// node with a malformed clause slot layout. Faults indicate bugs, not kernel
// properties, and carry a captured stack trace. They are delivered by panic
// from the package that detects them.
package diag
