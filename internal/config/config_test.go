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

package config_test

import (
	"testing"

	. "fillmore-labs.com/taskguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(RequireSerialAncestor)
	if !b.Enabled(RequireSerialAncestor) {
		t.Error("flag passed to NewBitMask is not enabled")
	}

	b.Disable(RequireSerialAncestor)
	if b.Enabled(RequireSerialAncestor) {
		t.Error("disabled flag reports enabled")
	}

	b.Set(RequireSerialAncestor, true)
	if !b.Enabled(RequireSerialAncestor) {
		t.Error("Set(flag, true) did not enable the flag")
	}

	b.Set(RequireSerialAncestor, false)
	if b.Enabled(RequireSerialAncestor) {
		t.Error("Set(flag, false) did not disable the flag")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	if !DefaultBehavior().Enabled(RequireSerialAncestor) {
		t.Error("serial-ancestor requirement not enabled by default")
	}

	if got, want := DefaultLimits().MaxOffsetLiteral, int64(1<<16); got != want {
		t.Errorf("DefaultLimits().MaxOffsetLiteral = %d, want %d", got, want)
	}
}
