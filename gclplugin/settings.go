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

package gclplugin

import specguard "fillmore-labs.com/specguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Behavior selects what emitted checks do on failure: "abort",
	// "report" or "nocheck".
	Behavior *string `json:"behavior,omitzero"`
	// Cfg lists the enabled build configuration names.
	Cfg []string `json:"cfg,omitzero"`
	// Generated enables instrumentation of generated files.
	Generated *bool `json:"generated,omitzero"`
	// Tests enables instrumentation of _test.go files.
	Tests *bool `json:"tests,omitzero"`
}

// Options converts [Settings] into a list of [specguard.Option] for the specguard analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() ([]specguard.Option, error) {
	var opts []specguard.Option

	if s.Behavior != nil {
		behavior, err := specguard.ParseBehavior(*s.Behavior)
		if err != nil {
			return nil, err
		}

		opts = append(opts, specguard.WithBehavior(behavior))
	}

	if len(s.Cfg) > 0 {
		opts = append(opts, specguard.WithCfg(s.Cfg...))
	}

	opts = appendOption(opts, s.Generated, specguard.WithGenerated)
	opts = appendOption(opts, s.Tests, specguard.WithTests)

	return opts, nil
}

// appendOption appends a non-nil setting to a [specguard.Option] list.
func appendOption[T any](opts []specguard.Option, value *T, constructor func(T) specguard.Option) []specguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
