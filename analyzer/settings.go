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
	"bytes"
	"errors"
	"io"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/taskguard/internal/config"
	"fillmore-labs.com/taskguard/kir"
)

// Settings represents the configuration of an [Analyzer] as read from a
// settings file or the environment. Nil fields keep the default.
type Settings struct {
	// SerialAncestor demands a single-executor section around task regions.
	SerialAncestor *bool `yaml:"serial-ancestor,omitempty"`
	// MaxOffset sets the largest literal offset accepted in affine subscripts.
	MaxOffset *int64 `yaml:"max-offset,omitempty"`
	// Parallelism bounds concurrent derivations in batch operations.
	Parallelism *int `yaml:"parallelism,omitempty"`
	// LowerBound overrides the lower-bound query spelling.
	LowerBound *string `yaml:"lower-bound,omitempty"`
	// UpperBound overrides the upper-bound query spelling.
	UpperBound *string `yaml:"upper-bound,omitempty"`
	// ComponentSep overrides the structure component separator.
	ComponentSep *string `yaml:"component-sep,omitempty"`
}

// ParseSettings decodes [Settings] from YAML. Unknown keys are rejected,
// empty input yields empty settings.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Settings{}, nil
		}

		return Settings{}, err
	}

	return s, nil
}

// SettingsFromEnv reads [Settings] from TASKGUARD_* environment variables.
// Unset variables keep the default.
func SettingsFromEnv() Settings {
	var s Settings

	if env.Has("TASKGUARD_SERIAL_ANCESTOR") {
		v := env.Bool("TASKGUARD_SERIAL_ANCESTOR")
		s.SerialAncestor = &v
	}

	if env.Has("TASKGUARD_MAX_OFFSET") {
		v := int64(env.Int("TASKGUARD_MAX_OFFSET", config.DefaultMaxOffsetLiteral))
		s.MaxOffset = &v
	}

	if env.Has("TASKGUARD_PARALLELISM") {
		v := env.Int("TASKGUARD_PARALLELISM", 0)
		s.Parallelism = &v
	}

	if env.Has("TASKGUARD_LOWER_BOUND") {
		v := env.Str("TASKGUARD_LOWER_BOUND")
		s.LowerBound = &v
	}

	if env.Has("TASKGUARD_UPPER_BOUND") {
		v := env.Str("TASKGUARD_UPPER_BOUND")
		s.UpperBound = &v
	}

	if env.Has("TASKGUARD_COMPONENT_SEP") {
		v := env.Str("TASKGUARD_COMPONENT_SEP")
		s.ComponentSep = &v
	}

	return s
}

// Options converts [Settings] into a list of [Option] values for [New].
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []Option {
	var opts []Option

	opts = appendOption(opts, s.SerialAncestor, WithSerialAncestor)
	opts = appendOption(opts, s.MaxOffset, WithMaxOffset)
	opts = appendOption(opts, s.Parallelism, WithParallelism)

	if d, ok := s.dialect(); ok {
		opts = append(opts, WithDialect(d))
	}

	return opts
}

// dialect assembles a rendering dialect from the spelling overrides.
func (s Settings) dialect() (kir.Dialect, bool) {
	if s.LowerBound == nil && s.UpperBound == nil && s.ComponentSep == nil {
		return kir.Dialect{}, false
	}

	d := kir.DefaultDialect()

	if s.LowerBound != nil {
		d.LowerBound = *s.LowerBound
	}

	if s.UpperBound != nil {
		d.UpperBound = *s.UpperBound
	}

	if s.ComponentSep != nil {
		d.ComponentSep = *s.ComponentSep
	}

	return d, true
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts []Option, value *T, constructor func(T) Option) []Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
