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

// parsePostConditions parses the value of an `ensures` parameter,
// with the same list-versus-expression speculation as conditions.
func (p *parser) parsePostConditions() ([]PostCondition, error) {
	if p.c.Peek().Is("[") {
		fork := p.c.Fork()
		if posts, ok := tryPostList(fork); ok {
			p.c.Commit(fork)

			return posts, nil
		}
	}

	post, err := parsePostExpr(p.c, exprStops{arrow: true})
	if err != nil {
		return nil, err
	}

	return []PostCondition{post}, nil
}

func tryPostList(fork *scan.Cursor) ([]PostCondition, bool) {
	fork.Next() // `[`

	var posts []PostCondition

	for {
		if fork.Peek().Is("]") {
			if len(posts) == 0 {
				return nil, false
			}

			fork.Next()

			break
		}

		post, err := parsePostExpr(fork, exprStops{close: "]", arrow: true})
		if err != nil {
			return nil, false
		}

		posts = append(posts, post)

		switch tok := fork.Peek(); {
		case tok.Is(","):
			fork.Next()
		case tok.Is("]"):
		default:
			return nil, false
		}
	}

	if tok := fork.Peek(); tok.Kind != scan.EOF && !tok.Is(",") {
		return nil, false
	}

	return posts, true
}

// parsePostExpr parses one postcondition: `pattern => expr` or a bare
// expression. A leading pattern is parsed speculatively on a fork and
// only committed when the `=>` separator follows; otherwise the whole
// unit is an expression that merely starts with pattern-like tokens.
func parsePostExpr(c *scan.Cursor, stops exprStops) (PostCondition, error) {
	fork := c.Fork()

	if pat, err := parsePattern(fork); err == nil && fork.Peek().Is("=>") {
		fork.Next() // `=>`

		expr, _, err := scanExpr(fork, stops)
		if err != nil {
			return PostCondition{}, err
		}

		c.Commit(fork)
		span := pat.Span.Join(expr.Span)

		return PostCondition{
			Binds:  pat,
			Expr:   expr,
			Source: c.Text(span),
		}, nil
	}

	expr, _, err := scanExpr(c, stops)
	if err != nil {
		return PostCondition{}, err
	}

	return PostCondition{Expr: expr, Source: expr.Source}, nil
}
