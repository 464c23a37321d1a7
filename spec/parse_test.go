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

package spec_test

import (
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/specguard/spec"
)

func conditionSources(conds []Condition) []string {
	sources := make([]string, len(conds))
	for i, c := range conds {
		sources[i] = c.Expr.Source
	}

	return sources
}

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse("requires: b != 0, maintains: a >= 0, captures: a, binds: q, ensures: q*b <= old_a")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := conditionSources(s.Requires); len(got) != 1 || got[0] != "b != 0" {
		t.Errorf("Requires = %q, want [b != 0]", got)
	}

	if got := conditionSources(s.Maintains); len(got) != 1 || got[0] != "a >= 0" {
		t.Errorf("Maintains = %q, want [a >= 0]", got)
	}

	if len(s.Captures) != 1 || s.Captures[0].Alias != "old_a" || !s.Captures[0].Shorthand() {
		t.Errorf("Captures = %+v, want shorthand capture of a", s.Captures)
	}

	if s.Binds == nil || s.Binds.Source != "q" {
		t.Errorf("Binds = %+v, want q", s.Binds)
	}

	if len(s.Ensures) != 1 || s.Ensures[0].Source != "q*b <= old_a" || s.Ensures[0].Binds != nil {
		t.Errorf("Ensures = %+v, want one shared-binder condition", s.Ensures)
	}
}

func TestParseConditionLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "List",
			src:  "requires: [x > 0, y > 0]",
			want: []string{"x > 0", "y > 0"},
		},
		{
			name: "ListTrailingComma",
			src:  "requires: [x > 0, y > 0,]",
			want: []string{"x > 0", "y > 0"},
		},
		{
			name: "SliceLiteralIsOneExpression",
			src:  "requires: []bool{x > 0, y > 0}[0]",
			want: []string{"[]bool{x > 0, y > 0}[0]"},
		},
		{
			name: "IndexExpressionIsOneExpression",
			src:  "requires: [2]bool{x > 0, y > 0}[i]",
			want: []string{"[2]bool{x > 0, y > 0}[i]"},
		},
		{
			name: "Parenthesized",
			src:  "requires: (a || b) && c",
			want: []string{"(a || b) && c"},
		},
		{
			name: "FollowedByGroup",
			src:  "requires: [x > 0, y > 0], ensures: output > 0",
			want: []string{"x > 0", "y > 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.src, err)
			}

			got := conditionSources(s.Requires)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %q, want %q", tt.src, got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %q, want %q", tt.src, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseCaptures(t *testing.T) {
	t.Parallel()

	t.Run("List", func(t *testing.T) {
		t.Parallel()

		s, err := Parse("captures: [count, len(s) as n]")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}

		if len(s.Captures) != 2 {
			t.Fatalf("Got %d captures, want 2", len(s.Captures))
		}

		if c := s.Captures[0]; c.Alias != "old_count" || !c.Shorthand() {
			t.Errorf("Captures[0] = %+v, want shorthand old_count", c)
		}

		if c := s.Captures[1]; c.Alias != "n" || c.Expr.Source != "len(s)" || c.Shorthand() {
			t.Errorf("Captures[1] = %+v, want len(s) as n", c)
		}
	})

	t.Run("AliasedArrayIsOneCapture", func(t *testing.T) {
		t.Parallel()

		s, err := Parse("captures: [2]int{a, b} as pair")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}

		if len(s.Captures) != 1 || s.Captures[0].Expr.Source != "[2]int{a, b}" || s.Captures[0].Alias != "pair" {
			t.Errorf("Captures = %+v, want one capture aliased pair", s.Captures)
		}
	})
}

func TestParsePostConditions(t *testing.T) {
	t.Parallel()

	s, err := Parse("ensures: [output > 0, v => v%2 == 0]")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(s.Ensures) != 2 {
		t.Fatalf("Got %d postconditions, want 2", len(s.Ensures))
	}

	if p := s.Ensures[0]; p.Binds != nil || p.Source != "output > 0" {
		t.Errorf("Ensures[0] = %+v, want shared-binder condition", p)
	}

	p := s.Ensures[1]
	if p.Binds == nil || p.Binds.Source != "v" || p.Expr.Source != "v%2 == 0" {
		t.Errorf("Ensures[1] = %+v, want binder v", p)
	}

	if p.Source != "v => v%2 == 0" {
		t.Errorf("Ensures[1].Source = %q, want the full form", p.Source)
	}
}

func TestParsePatternAmbiguity(t *testing.T) {
	t.Parallel()

	// A parenthesized expression is not a binder pattern unless `=>` follows.
	s, err := Parse("ensures: (a || b) == output")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(s.Ensures) != 1 || s.Ensures[0].Binds != nil {
		t.Errorf("Ensures = %+v, want one shared-binder condition", s.Ensures)
	}
}

func TestParsePredicates(t *testing.T) {
	t.Parallel()

	s, err := Parse("#[cfg(debug)] requires: [x > 0, y > 0], requires: z > 0, #[cfg(any(debug, trace))] ensures: output > 0")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(s.Requires) != 3 {
		t.Fatalf("Got %d preconditions, want 3", len(s.Requires))
	}

	if cfg := s.Requires[0].Cfg; cfg == nil || cfg.Settings != "debug" {
		t.Errorf("Requires[0].Cfg = %+v, want debug", cfg)
	}

	if s.Requires[0].Cfg != s.Requires[1].Cfg {
		t.Error("Conditions of one group must share the predicate")
	}

	if s.Requires[2].Cfg != nil {
		t.Errorf("Requires[2].Cfg = %+v, want none", s.Requires[2].Cfg)
	}

	if cfg := s.Ensures[0].Cfg; cfg == nil || cfg.Settings != "any(debug, trace)" {
		t.Errorf("Ensures[0].Cfg = %+v, want any(debug, trace)", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "OutOfOrder",
			src:  "ensures: output > 0, requires: x > 0",
			want: "parameters are out of order: their order must be `requires`, `maintains`, `captures`, `binds`, `ensures`",
		},
		{
			name: "SecondCaptures",
			src:  "captures: a, captures: b",
			want: "at most one `captures` parameter is allowed; to capture multiple values, use a list: `captures: [expr1, expr2, ...]`",
		},
		{
			name: "SecondBinds",
			src:  "binds: a, binds: b",
			want: "multiple `binds` parameters are not allowed",
		},
		{
			name: "UnknownKeyword",
			src:  "assumes: x > 0",
			want: "unknown parameter `assumes`: expected `requires`, `maintains`, `captures`, `binds`, or `ensures`",
		},
		{
			name: "MissingColon",
			src:  "requires x > 0",
			want: "expected `:` after `requires`",
		},
		{
			name: "ComplexCaptureWithoutAlias",
			src:  "captures: len(s)",
			want: "complex expressions require an explicit alias using `as`",
		},
		{
			name: "AliasNotIdent",
			src:  "captures: x as a.b",
			want: "alias must be a simple identifier",
		},
		{
			name: "DuplicateAlias",
			src:  "captures: [x as v, y as v]",
			want: "duplicate capture alias `v`",
		},
		{
			name: "EmptyCaptureList",
			src:  "captures: []",
			want: "expected a capture",
		},
		{
			name: "CfgOnCaptures",
			src:  "#[cfg(debug)] captures: a",
			want: "`cfg` is not supported on `captures`",
		},
		{
			name: "CfgOnBinds",
			src:  "#[cfg(debug)] binds: q",
			want: "`cfg` is not supported on `binds`",
		},
		{
			name: "UnsupportedAttribute",
			src:  "#[inline] requires: x > 0",
			want: "unsupported attribute; only `cfg` is allowed",
		},
		{
			name: "DoubleAttribute",
			src:  "#[cfg(a)] #[cfg(b)] requires: x > 0",
			want: "multiple `cfg` attributes are not supported",
		},
		{
			name: "EmptySettings",
			src:  "#[cfg()] requires: x > 0",
			want: "expected configuration settings",
		},
		{
			name: "UnbalancedExpression",
			src:  "requires: (x > 0",
			want: "missing `)`",
		},
		{
			name: "StrayCloser",
			src:  "requires: x > 0)",
			want: "unexpected `)`",
		},
		{
			name: "EmptyValue",
			src:  "requires: , ensures: output > 0",
			want: "expected an expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error %q", tt.src, tt.want)
			}

			if got := err.Error(); got != tt.want {
				t.Errorf("Parse(%q) error = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseErrorSpan(t *testing.T) {
	t.Parallel()

	src := "requires: x > 0, assumes: y > 0"

	_, err := Parse(src)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse(%q) error = %T, want *ParseError", src, err)
	}

	if got := src[perr.Span.Start:perr.Span.End]; got != "assumes" {
		t.Errorf("Error span covers %q, want %q", got, "assumes")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "Canonical",
			src:  "requires: b != 0, ensures: output*b <= a",
			want: "requires: b != 0, ensures: output*b <= a",
		},
		{
			name: "Groups",
			src:  "#[cfg(debug)] requires: [x > 0, y > 0], captures: [count, len(s) as n], binds: (q, r), ensures: v => v%2 == 0",
			want: "#[cfg(debug)] requires: [x > 0, y > 0], captures: [count, len(s) as n], binds: (q, r), ensures: v => v%2 == 0",
		},
		{
			name: "TrailingCommaDropped",
			src:  "requires: [x > 0, y > 0,],",
			want: "requires: [x > 0, y > 0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.src, err)
			}

			if got := s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			// The canonical form must parse back to the same canonical form.
			again, err := Parse(s.String())
			if err != nil {
				t.Fatalf("Parse(String()) failed: %v", err)
			}

			if got := again.String(); got != tt.want {
				t.Errorf("Parse(String()).String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringListRendering(t *testing.T) {
	t.Parallel()

	s, err := Parse("requires: [x > 0]")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Singleton groups render in the single-item form.
	if got := s.String(); strings.Contains(got, "[") {
		t.Errorf("String() = %q, want no brackets", got)
	}
}
