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
	"fmt"
	"log/slog"

	"fillmore-labs.com/taskguard/internal/config"
	"fillmore-labs.com/taskguard/kir"
)

// Option configures specific behavior of a [New] taskguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSerialAncestor is an [Option] to configure whether task regions must sit
// inside a single-executor section of their parallel region.
func WithSerialAncestor(serial bool) Option { return serialOption{serial: serial} }

type serialOption struct{ serial bool }

func (o serialOption) apply(r *runOptions) {
	r.options.Behavior.Set(config.RequireSerialAncestor, o.serial)
}

func (o serialOption) LogAttr() slog.Attr {
	return slog.Bool("serial-ancestor", o.serial)
}

// WithMaxOffset is an [Option] to configure the largest literal offset accepted
// in affine subscripts.
func WithMaxOffset(maxOffset int64) Option { return maxOffsetOption{maxOffset: maxOffset} }

type maxOffsetOption struct{ maxOffset int64 }

func (o maxOffsetOption) apply(r *runOptions) {
	r.options.Limits.MaxOffsetLiteral = o.maxOffset
}

func (o maxOffsetOption) LogAttr() slog.Attr {
	return slog.Int64("max-offset", o.maxOffset)
}

// WithDialect is an [Option] to configure the canonical rendering spellings.
func WithDialect(dialect kir.Dialect) Option { return dialectOption{dialect: dialect} }

type dialectOption struct{ dialect kir.Dialect }

func (o dialectOption) apply(r *runOptions) {
	r.options.Dialect = o.dialect
}

func (o dialectOption) LogAttr() slog.Attr {
	return slog.String("dialect", o.dialect.LowerBound+"/"+o.dialect.UpperBound)
}

// WithResolver is an [Option] to configure how entity privacy is resolved at
// the enclosing parallel region.
func WithResolver(resolver Resolver) Option { return resolverOption{resolver: resolver} }

type resolverOption struct{ resolver Resolver }

func (o resolverOption) apply(r *runOptions) {
	r.options.Region = o.resolver
}

func (o resolverOption) LogAttr() slog.Attr {
	return slog.String("resolver", fmt.Sprintf("%T", o.resolver))
}

// WithParallelism is an [Option] to bound the number of concurrent derivations
// in [Analyzer.ComputeAll] and [Analyzer.MaterializeAll]. Non-positive values
// lift the bound.
func WithParallelism(parallelism int) Option { return parallelismOption{parallelism: parallelism} }

type parallelismOption struct{ parallelism int }

func (o parallelismOption) apply(r *runOptions) {
	r.parallelism = o.parallelism
}

func (o parallelismOption) LogAttr() slog.Attr {
	return slog.Int("parallelism", o.parallelism)
}
