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

package analyzer

import (
	"log/slog"
	"strings"

	"fillmore-labs.com/specguard/internal/config"
)

// Option configures specific behavior of a [New] specguard analyzer.
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

// WithBehavior is an [Option] to configure what emitted checks do on failure.
func WithBehavior(behavior Behavior) Option { return behaviorOption{behavior: behavior} }

type behaviorOption struct{ behavior Behavior }

func (o behaviorOption) apply(r *runOptions) {
	r.behavior = o.behavior
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.String("behavior", o.behavior.String())
}

// WithCfg is an [Option] to configure the enabled build configuration names.
func WithCfg(names ...string) Option { return cfgOption{names: names} }

type cfgOption struct{ names []string }

func (o cfgOption) apply(r *runOptions) {
	r.cfg = append(r.cfg, o.names...)
}

func (o cfgOption) LogAttr() slog.Attr {
	return slog.String("cfg", strings.Join(o.names, ","))
}

// WithGenerated is an [Option] to configure instrumentation of generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.files.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithTests is an [Option] to configure instrumentation of _test.go files.
func WithTests(tests bool) Option { return testsOption{tests: tests} }

type testsOption struct{ tests bool }

func (o testsOption) apply(r *runOptions) {
	r.files.Set(config.IncludeTests, o.tests)
}

func (o testsOption) LogAttr() slog.Attr {
	return slog.Bool("tests", o.tests)
}
