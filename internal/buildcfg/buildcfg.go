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

// Package buildcfg evaluates build predicates against the set of
// configuration names enabled for a run.
//
// The instrumentation engine does not interpret predicates itself; it
// only wraps or unwraps checks based on their truth. This package is
// the stand-in for the host build system: the enabled names come from
// the `-cfg` flag (or plugin settings), and settings expressions
// support bare names plus `not(...)`, `any(...)` and `all(...)`.
package buildcfg

import (
	"fmt"
	"strings"
)

// Config is the set of enabled build configuration names.
type Config struct {
	enabled map[string]struct{}
}

// New returns a Config with the given names enabled.
func New(names ...string) *Config {
	enabled := make(map[string]struct{}, len(names))

	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			enabled[name] = struct{}{}
		}
	}

	return &Config{enabled: enabled}
}

// Names returns the enabled names in unspecified order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.enabled))
	for name := range c.enabled {
		names = append(names, name)
	}

	return names
}

// Eval evaluates a predicate settings expression such as `debug`,
// `not(release)` or `any(debug, trace)`.
func (c *Config) Eval(settings string) (bool, error) {
	e := evaluator{cfg: c, src: settings}

	value, err := e.expr()
	if err != nil {
		return false, err
	}

	e.skipSpace()
	if e.pos < len(e.src) {
		return false, fmt.Errorf("invalid `cfg` settings %q: unexpected %q", settings, e.src[e.pos:])
	}

	return value, nil
}

type evaluator struct {
	cfg *Config
	src string
	pos int
}

func (e *evaluator) expr() (bool, error) {
	name, err := e.name()
	if err != nil {
		return false, err
	}

	e.skipSpace()
	if e.pos >= len(e.src) || e.src[e.pos] != '(' {
		_, enabled := e.cfg.enabled[name]

		return enabled, nil
	}
	e.pos++ // '('

	var value bool

	switch name {
	case "not":
		inner, err := e.expr()
		if err != nil {
			return false, err
		}

		value = !inner

	case "any", "all":
		value, err = e.list(name == "all")
		if err != nil {
			return false, err
		}

	default:
		return false, fmt.Errorf("invalid `cfg` settings %q: unknown operator %q", e.src, name)
	}

	e.skipSpace()
	if e.pos >= len(e.src) || e.src[e.pos] != ')' {
		return false, fmt.Errorf("invalid `cfg` settings %q: missing `)`", e.src)
	}
	e.pos++ // ')'

	return value, nil
}

// list evaluates a comma-separated operand list. With all set the
// result is the conjunction, otherwise the disjunction.
func (e *evaluator) list(all bool) (bool, error) {
	result := all

	for {
		value, err := e.expr()
		if err != nil {
			return false, err
		}

		if all {
			result = result && value
		} else {
			result = result || value
		}

		e.skipSpace()
		if e.pos < len(e.src) && e.src[e.pos] == ',' {
			e.pos++
			continue
		}

		return result, nil
	}
}

func (e *evaluator) name() (string, error) {
	e.skipSpace()

	start := e.pos
	for e.pos < len(e.src) && isNameByte(e.src[e.pos]) {
		e.pos++
	}

	if e.pos == start {
		return "", fmt.Errorf("invalid `cfg` settings %q: expected a configuration name", e.src)
	}

	return e.src[start:e.pos], nil
}

func (e *evaluator) skipSpace() {
	for e.pos < len(e.src) && (e.src[e.pos] == ' ' || e.src[e.pos] == '\t') {
		e.pos++
	}
}

func isNameByte(c byte) bool {
	return c == '_' || c == '-' || c == '.' ||
		c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
