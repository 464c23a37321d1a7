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
	"errors"
	"fmt"

	"fillmore-labs.com/specguard/internal/scan"
)

// ParseError is a parse or validation error with the byte span of the
// offending tokens in the directive source.
type ParseError struct {
	Span scan.Span
	Msg  string
}

func (e *ParseError) Error() string { return e.Msg }

func errorAt(span scan.Span, format string, args ...any) *ParseError {
	return &ParseError{Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Parse parses the parameter list of a contract directive into a [Spec].
//
// The whole specification is rejected on the first error; no partial
// model is produced.
func Parse(src string) (*Spec, error) {
	c, err := scan.NewCursor(src)
	if err != nil {
		var serr *scan.Error
		if errors.As(err, &serr) {
			return nil, &ParseError{Span: serr.Span, Msg: serr.Msg}
		}

		return nil, err
	}

	p := &parser{c: c, aliases: make(map[string]struct{})}

	return p.parse()
}

// Parameter group order. Groups must appear in non-decreasing order;
// repeating `requires`, `maintains` or `ensures` groups is allowed.
type argOrder int8

const (
	orderNone argOrder = iota
	orderRequires
	orderMaintains
	orderCaptures
	orderBinds
	orderEnsures
)

const orderMsg = "parameters are out of order: their order must be `requires`, `maintains`, `captures`, `binds`, `ensures`"

type parser struct {
	c       *scan.Cursor
	aliases map[string]struct{}
	last    argOrder
}

func (p *parser) parse() (*Spec, error) {
	s := &Spec{}

	for !p.c.EOF() {
		if err := p.parseArg(s); err != nil {
			return nil, err
		}

		// Each group is terminated by a comma; the final one may omit it.
		if p.c.EOF() {
			break
		}

		if comma := p.c.Next(); !comma.Is(",") {
			return nil, errorAt(comma.Span, "expected `,` after parameter, got `%s`", comma.Text)
		}
	}

	return s, nil
}

func (p *parser) parseArg(s *Spec) error {
	cfg, err := p.parsePredicate()
	if err != nil {
		return err
	}

	kw := p.c.Peek()
	if kw.Kind != scan.Ident {
		return errorAt(kw.Span, "expected a parameter keyword")
	}

	order, ok := keywordOrder(kw.Text)
	if !ok {
		return errorAt(kw.Span,
			"unknown parameter `%s`: expected `requires`, `maintains`, `captures`, `binds`, or `ensures`", kw.Text)
	}

	if order < p.last {
		return errorAt(kw.Span, orderMsg)
	}
	p.last = order

	p.c.Next() // keyword

	if colon := p.c.Next(); !colon.Is(":") {
		return errorAt(colon.Span, "expected `:` after `%s`", kw.Text)
	}

	switch order {
	case orderRequires:
		exprs, err := p.parseConditions()
		if err != nil {
			return err
		}

		s.Requires = appendConditions(s.Requires, exprs, cfg)

	case orderMaintains:
		exprs, err := p.parseConditions()
		if err != nil {
			return err
		}

		s.Maintains = appendConditions(s.Maintains, exprs, cfg)

	case orderCaptures:
		if cfg != nil {
			return errorAt(cfg.Span, "`cfg` is not supported on `captures`")
		}

		if len(s.Captures) > 0 {
			return errorAt(kw.Span,
				"at most one `captures` parameter is allowed; to capture multiple values, use a list: `captures: [expr1, expr2, ...]`")
		}

		caps, err := p.parseCaptures()
		if err != nil {
			return err
		}

		s.Captures = caps

	case orderBinds:
		if cfg != nil {
			return errorAt(cfg.Span, "`cfg` is not supported on `binds`")
		}

		if s.Binds != nil {
			return errorAt(kw.Span, "multiple `binds` parameters are not allowed")
		}

		pat, err := parsePattern(p.c)
		if err != nil {
			return err
		}

		s.Binds = pat

	case orderEnsures:
		posts, err := p.parsePostConditions()
		if err != nil {
			return err
		}

		for i := range posts {
			posts[i].Cfg = cfg
		}

		s.Ensures = append(s.Ensures, posts...)

	case orderNone: // unreachable, keywordOrder never returns it
	}

	return nil
}

func keywordOrder(keyword string) (argOrder, bool) {
	switch keyword {
	case "requires":
		return orderRequires, true
	case "maintains":
		return orderMaintains, true
	case "captures":
		return orderCaptures, true
	case "binds":
		return orderBinds, true
	case "ensures":
		return orderEnsures, true
	default:
		return orderNone, false
	}
}

func appendConditions(conds []Condition, exprs []Expr, cfg *Predicate) []Condition {
	for _, expr := range exprs {
		conds = append(conds, Condition{Expr: expr, Cfg: cfg})
	}

	return conds
}

// parsePredicate parses an optional `#[cfg(settings)]` prefix.
func (p *parser) parsePredicate() (*Predicate, error) {
	if !p.c.Peek().Is("#") {
		return nil, nil
	}

	hash := p.c.Next()

	if open := p.c.Next(); !open.Is("[") {
		return nil, errorAt(open.Span, "expected `[` after `#`")
	}

	if name := p.c.Next(); !name.IsIdent("cfg") {
		return nil, errorAt(name.Span, "unsupported attribute; only `cfg` is allowed")
	}

	if lparen := p.c.Next(); !lparen.Is("(") {
		return nil, errorAt(lparen.Span, "expected `(` after `cfg`")
	}

	settings, err := p.scanSettings()
	if err != nil {
		return nil, err
	}

	rbrack := p.c.Next()
	if !rbrack.Is("]") {
		return nil, errorAt(rbrack.Span, "expected `]` to close the attribute")
	}

	if p.c.Peek().Is("#") {
		return nil, errorAt(p.c.Peek().Span, "multiple `cfg` attributes are not supported")
	}

	return &Predicate{
		Settings: p.c.Text(settings),
		Span:     hash.Span.Join(rbrack.Span),
	}, nil
}

// scanSettings consumes the balanced settings tokens up to and
// including the closing parenthesis and returns the settings span.
func (p *parser) scanSettings() (scan.Span, error) {
	var (
		span  scan.Span
		first = true
		depth = 0
	)

	for {
		tok := p.c.Next()

		switch tok.Kind {
		case scan.EOF:
			return span, errorAt(tok.Span, "missing `)` in `cfg` attribute")

		case scan.Open:
			depth++

		case scan.Close:
			if depth == 0 {
				if !tok.Is(")") {
					return span, errorAt(tok.Span, "unexpected `%s` in `cfg` attribute", tok.Text)
				}

				if first {
					return span, errorAt(tok.Span, "expected configuration settings")
				}

				return span, nil
			}
			depth--

		case scan.Ident, scan.Literal, scan.Op:
		}

		if first {
			span = tok.Span
			first = false
		} else {
			span = span.Join(tok.Span)
		}
	}
}
