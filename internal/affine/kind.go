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

package affine

// Kind classifies one subscript expression relative to the loops around the
// access.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Constant is a literal or an access that is invariant for the task's
	// duration.
	Constant Kind = iota // constant

	// Payload names the induction variable of the task's top-level loop.
	Payload // payload

	// Nested names an induction variable of a loop strictly inside the
	// payload loop.
	Nested // nested

	// Ancestor names an induction variable of an enclosing loop outside the
	// task.
	Ancestor // ancestor

	// Unsupported is any form outside the affine subset.
	Unsupported // unsupported
)
