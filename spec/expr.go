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

// exprStops controls which top-level tokens end an expression scan.
// A comma always does; the zero value describes a whole parameter value.
type exprStops struct {
	// close is a closing delimiter ending the expression, e.g. "]" for
	// list elements. Empty at the top level, where a stray closer is an
	// error instead.
	close string

	// as stops at a top-level `as` (capture aliases).
	as bool

	// arrow stops at a top-level `=>` (postcondition binders).
	arrow bool
}

// scanExpr consumes an opaque expression: a balanced token run up to
// the first top-level stop token. The expression's content is not
// interpreted; its well-formedness is left to the Go compiler.
func scanExpr(c *scan.Cursor, stops exprStops) (Expr, []scan.Token, error) {
	var (
		toks  []scan.Token
		nest  []string // expected closing delimiters, innermost last
		first = true
		span  scan.Span
	)

scan:
	for {
		tok := c.Peek()

		switch tok.Kind {
		case scan.EOF:
			if len(nest) > 0 {
				return Expr{}, nil, errorAt(tok.Span, "missing `%s`", nest[len(nest)-1])
			}

			break scan

		case scan.Open:
			nest = append(nest, closerFor(tok.Text))

		case scan.Close:
			if len(nest) == 0 {
				if stops.close != "" && tok.Text == stops.close {
					break scan
				}

				return Expr{}, nil, errorAt(tok.Span, "unexpected `%s`", tok.Text)
			}

			if want := nest[len(nest)-1]; tok.Text != want {
				return Expr{}, nil, errorAt(tok.Span, "expected `%s`, got `%s`", want, tok.Text)
			}
			nest = nest[:len(nest)-1]

		case scan.Ident, scan.Literal, scan.Op:
			if len(nest) == 0 {
				switch {
				case tok.Is(","):
					break scan
				case stops.as && tok.IsIdent("as"):
					break scan
				case stops.arrow && tok.Is("=>"):
					break scan
				}
			}
		}

		toks = append(toks, c.Next())

		if first {
			span = toks[0].Span
			first = false
		} else {
			span = span.Join(toks[len(toks)-1].Span)
		}
	}

	if len(toks) == 0 {
		return Expr{}, nil, errorAt(c.Here(), "expected an expression")
	}

	return Expr{Source: c.Text(span), Span: span}, toks, nil
}

func closerFor(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	default:
		return "}"
	}
}

// parseConditions parses the value of a `requires` or `maintains`
// parameter: either a single expression or a bracketed list.
//
// A bracketed value is ambiguous: it may be a list of conditions or a
// single expression that happens to start with `[` (say, a slice
// literal). The list interpretation is tried first on a fork; it only
// commits when every element scans as an expression and the bracket is
// the entire parameter value. Otherwise nothing has been consumed and
// the whole value is scanned as one opaque expression.
func (p *parser) parseConditions() ([]Expr, error) {
	if p.c.Peek().Is("[") {
		fork := p.c.Fork()
		if exprs, ok := tryExprList(fork); ok {
			p.c.Commit(fork)

			return exprs, nil
		}
	}

	expr, _, err := scanExpr(p.c, exprStops{})
	if err != nil {
		return nil, err
	}

	return []Expr{expr}, nil
}

// tryExprList speculatively parses `[ expr {"," expr} [","] ]` on a
// fork. It reports failure instead of an error so the caller can fall
// back without having consumed input.
func tryExprList(fork *scan.Cursor) ([]Expr, bool) {
	fork.Next() // `[`

	var exprs []Expr

	for {
		if fork.Peek().Is("]") { // end of list, also after a trailing comma
			if len(exprs) == 0 {
				return nil, false
			}

			fork.Next()

			break
		}

		expr, _, err := scanExpr(fork, exprStops{close: "]"})
		if err != nil {
			return nil, false
		}

		exprs = append(exprs, expr)

		switch tok := fork.Peek(); {
		case tok.Is(","):
			fork.Next()
		case tok.Is("]"):
		default:
			return nil, false
		}
	}

	// The brackets must span the whole parameter value; trailing tokens
	// mean this was the start of a larger expression like `[]int{...}`.
	if tok := fork.Peek(); tok.Kind != scan.EOF && !tok.Is(",") {
		return nil, false
	}

	return exprs, true
}
