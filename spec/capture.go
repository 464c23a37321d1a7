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

import "fillmore-labs.com/specguard/internal/scan"

// parseCaptures parses the value of a `captures` parameter.
//
// A bracketed value is usually a list of captures, but `[a, b] as pair`
// is a single capture whose expression is an array literal. The single
// interpretation is probed first on a fork by looking for a top-level
// `as` after the balanced bracket.
func (p *parser) parseCaptures() ([]Capture, error) {
	if p.c.Peek().Is("[") {
		fork := p.c.Fork()
		if expr, _, err := scanExpr(fork, exprStops{as: true}); err == nil && fork.Peek().IsIdent("as") {
			capture, err := p.parseAlias(fork, expr)
			if err != nil {
				return nil, err
			}

			p.c.Commit(fork)

			return []Capture{capture}, nil
		}

		return p.parseCaptureList()
	}

	capture, err := p.parseCaptureExpr(p.c, exprStops{as: true})
	if err != nil {
		return nil, err
	}

	return []Capture{capture}, nil
}

// parseCaptureList parses `[ capture {"," capture} [","] ]`. Unlike
// conditions there is no fallback: once the bracket is not an aliased
// single capture, element errors are reported, not recovered.
func (p *parser) parseCaptureList() ([]Capture, error) {
	p.c.Next() // `[`

	var caps []Capture

	for {
		if p.c.Peek().Is("]") {
			if len(caps) == 0 {
				return nil, errorAt(p.c.Here(), "expected a capture")
			}

			p.c.Next()

			return caps, nil
		}

		capture, err := p.parseCaptureExpr(p.c, exprStops{close: "]", as: true})
		if err != nil {
			return nil, err
		}

		caps = append(caps, capture)

		switch tok := p.c.Peek(); {
		case tok.Is(","):
			p.c.Next()
		case tok.Is("]"):
		default:
			return nil, errorAt(tok.Span, "expected `,` or `]` in capture list")
		}
	}
}

// parseCaptureExpr parses one capture: a bare identifier (alias derived
// with [AliasPrefix]) or `expr as alias`. Anything else must carry an
// explicit alias.
func (p *parser) parseCaptureExpr(c *scan.Cursor, stops exprStops) (Capture, error) {
	expr, toks, err := scanExpr(c, stops)
	if err != nil {
		return Capture{}, err
	}

	if c.Peek().IsIdent("as") {
		return p.parseAlias(c, expr)
	}

	if len(toks) == 1 && toks[0].Kind == scan.Ident {
		return p.addCapture(Capture{
			Expr:      expr,
			Alias:     AliasPrefix + toks[0].Text,
			AliasSpan: expr.Span,
		})
	}

	return Capture{}, errorAt(expr.Span, "complex expressions require an explicit alias using `as`")
}

// parseAlias consumes `as alias` after a capture expression.
func (p *parser) parseAlias(c *scan.Cursor, expr Expr) (Capture, error) {
	c.Next() // `as`

	alias := c.Next()
	if alias.Kind != scan.Ident {
		return Capture{}, errorAt(alias.Span, "alias must be a simple identifier")
	}

	// The alias must end the capture; `x as a.b` is not an identifier.
	if tok := c.Peek(); tok.Kind != scan.EOF && !tok.Is(",") && !tok.Is("]") {
		return Capture{}, errorAt(tok.Span, "alias must be a simple identifier")
	}

	return p.addCapture(Capture{Expr: expr, Alias: alias.Text, AliasSpan: alias.Span})
}

func (p *parser) addCapture(c Capture) (Capture, error) {
	if _, dup := p.aliases[c.Alias]; dup {
		return Capture{}, errorAt(c.AliasSpan, "duplicate capture alias `%s`", c.Alias)
	}
	p.aliases[c.Alias] = struct{}{}

	return c, nil
}
