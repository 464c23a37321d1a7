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

package spec

import (
	"strings"

	"fillmore-labs.com/specguard/internal/scan"
)

// DefaultBinder is the implicit identifier naming the return value in
// postconditions when no `binds` parameter is given.
const DefaultBinder = "output"

// AliasPrefix derives the alias of a bare-identifier capture, e.g.
// `count` is captured as `old_count`.
const AliasPrefix = "old_"

// Spec is the canonical parsed form of one function's contract.
//
// Consumers must treat a Spec as read-only; it is constructed once per
// annotated function and never mutated.
type Spec struct {
	// Requires are the preconditions, checked on entry in order.
	Requires []Condition

	// Maintains are the invariants, checked on entry after the
	// preconditions and again on exit before the postconditions.
	Maintains []Condition

	// Captures are values snapshotted on entry for use in postconditions.
	Captures []Capture

	// Binds names the return value for postconditions. A nil pattern
	// means the implicit [DefaultBinder] identifier.
	Binds *Pattern

	// Ensures are the postconditions, checked on exit in order.
	Ensures []PostCondition
}

// Expr is an opaque boolean-valued expression, kept as source text.
type Expr struct {
	Source string
	Span   scan.Span
}

// Predicate is a build configuration predicate attached to a condition
// group, e.g. `#[cfg(debug)]`. Settings are opaque to the parser; they
// are evaluated by the build configuration.
type Predicate struct {
	Settings string
	Span     scan.Span
}

// Condition is a checked expression with an optional build predicate.
type Condition struct {
	Expr Expr
	Cfg  *Predicate
}

// Capture snapshots the value of Expr at function entry under Alias.
type Capture struct {
	Expr      Expr
	Alias     string
	AliasSpan scan.Span
}

// Shorthand reports whether the capture was written as a bare
// identifier whose alias was derived with [AliasPrefix].
func (c Capture) Shorthand() bool {
	return c.Alias == AliasPrefix+c.Expr.Source
}

// PostCondition is a condition checked on exit. A nil Binds means the
// expression uses the specification's shared binder; otherwise the
// local pattern shadows the shared binder for this condition only.
type PostCondition struct {
	Binds  *Pattern
	Expr   Expr
	Cfg    *Predicate
	Source string // original text, including a local binder if present
}

// Pattern names (and optionally destructures) the return value. It is
// either a single identifier, the blank identifier, or a flat tuple of
// those, mirroring Go's multi-value assignment.
type Pattern struct {
	Source string
	Names  []string // identifiers in order, "_" for blanks
	Span   scan.Span
}

// Idents returns the non-blank names of the pattern.
func (p *Pattern) Idents() []string {
	idents := make([]string, 0, len(p.Names))

	for _, name := range p.Names {
		if name != "_" {
			idents = append(idents, name)
		}
	}

	return idents
}

// String renders the specification back to canonical parameter-list
// text. Singleton groups use the single-item form, everything else the
// bracketed list form; conditions sharing a build predicate are
// rendered as one group.
func (s *Spec) String() string {
	var groups []string

	groups = appendConditionGroups(groups, "requires", s.Requires)
	groups = appendConditionGroups(groups, "maintains", s.Maintains)

	if len(s.Captures) > 0 {
		items := make([]string, len(s.Captures))
		for i, c := range s.Captures {
			if c.Shorthand() {
				items[i] = c.Expr.Source
			} else {
				items[i] = c.Expr.Source + " as " + c.Alias
			}
		}

		groups = append(groups, "captures: "+renderItems(items))
	}

	if s.Binds != nil {
		groups = append(groups, "binds: "+s.Binds.Source)
	}

	for _, group := range groupByPredicate(s.Ensures, func(p PostCondition) *Predicate { return p.Cfg }) {
		items := make([]string, len(group.items))
		for i, p := range group.items {
			items[i] = p.Source
		}

		groups = append(groups, group.prefix()+"ensures: "+renderItems(items))
	}

	return strings.Join(groups, ", ")
}

func appendConditionGroups(groups []string, keyword string, conds []Condition) []string {
	for _, group := range groupByPredicate(conds, func(c Condition) *Predicate { return c.Cfg }) {
		items := make([]string, len(group.items))
		for i, c := range group.items {
			items[i] = c.Expr.Source
		}

		groups = append(groups, group.prefix()+keyword+": "+renderItems(items))
	}

	return groups
}

type predicateGroup[T any] struct {
	cfg   *Predicate
	items []T
}

func (g predicateGroup[T]) prefix() string {
	if g.cfg == nil {
		return ""
	}

	return "#[cfg(" + g.cfg.Settings + ")] "
}

// groupByPredicate splits a flattened condition list into runs sharing
// the same build predicate, restoring the group structure for rendering.
func groupByPredicate[T any](items []T, cfg func(T) *Predicate) []predicateGroup[T] {
	var groups []predicateGroup[T]

	for _, item := range items {
		if n := len(groups); n > 0 && groups[n-1].cfg == cfg(item) {
			groups[n-1].items = append(groups[n-1].items, item)
			continue
		}

		groups = append(groups, predicateGroup[T]{cfg: cfg(item), items: []T{item}})
	}

	return groups
}

func renderItems(items []string) string {
	if len(items) == 1 {
		return items[0]
	}

	return "[" + strings.Join(items, ", ") + "]"
}
