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

package analyzer_test

import (
	"slices"
	"testing"

	"github.com/xyproto/env/v2"

	. "fillmore-labs.com/taskguard/analyzer"
)

const allSettings = `
serial-ancestor: false
max-offset: 64
parallelism: 4
lower-bound: lb
upper-bound: ub
component-sep: "."
`

// attrs flattens options into key=value strings for comparison.
func attrs(opts []Option) []string {
	var as []string
	for _, o := range opts {
		a := o.LogAttr()
		as = append(as, a.Key+"="+a.Value.String())
	}

	return as
}

func TestParseSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     []string
	}{
		// The three spelling overrides collapse into one dialect option.
		{"all", allSettings, []string{"serial-ancestor=false", "max-offset=64", "parallelism=4", "dialect=lb/ub"}},
		{"none", "", nil},
		{"empty", "{}\n", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := ParseSettings([]byte(tc.settings))
			if err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := attrs(s.Options()); !slices.Equal(got, tc.want) {
				t.Errorf("Got options %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseSettingsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseSettings([]byte("max-lines: 3\n")); err == nil {
		t.Errorf("Expected an unknown settings key to be rejected")
	}
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("TASKGUARD_SERIAL_ANCESTOR", "false")
	t.Setenv("TASKGUARD_MAX_OFFSET", "64")
	t.Setenv("TASKGUARD_PARALLELISM", "4")
	t.Setenv("TASKGUARD_LOWER_BOUND", "lb")
	t.Setenv("TASKGUARD_UPPER_BOUND", "ub")
	t.Setenv("TASKGUARD_COMPONENT_SEP", ".")

	// env/v2 snapshots the environment on first use; re-read it so the
	// values set through t.Setenv are visible.
	env.Load()

	y, err := ParseSettings([]byte(allSettings))
	if err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	// Environment and settings file describe the same option state.
	if got, want := attrs(SettingsFromEnv().Options()), attrs(y.Options()); !slices.Equal(got, want) {
		t.Errorf("Environment settings decode to %q, YAML settings to %q", got, want)
	}
}

func TestSettingsFromEnvSparse(t *testing.T) {
	t.Setenv("TASKGUARD_PARALLELISM", "4")

	// env/v2 snapshots the environment on first use; re-read it so the
	// values set through t.Setenv are visible.
	env.Load()

	s := SettingsFromEnv()
	if s.SerialAncestor != nil || s.MaxOffset != nil || s.LowerBound != nil {
		t.Errorf("Got settings %+v, want only parallelism set", s)
	}

	if got, want := attrs(s.Options()), []string{"parallelism=4"}; !slices.Equal(got, want) {
		t.Errorf("Got options %q, want %q", got, want)
	}
}
