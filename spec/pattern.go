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

// parsePattern parses a binder pattern: an identifier, the blank
// identifier, or a flat parenthesized tuple of those, matching Go's
// multi-value assignment forms.
func parsePattern(c *scan.Cursor) (*Pattern, error) {
	tok := c.Peek()

	switch {
	case tok.Kind == scan.Ident:
		c.Next()

		return &Pattern{Source: tok.Text, Names: []string{tok.Text}, Span: tok.Span}, nil

	case tok.Is("("):
		return parseTuplePattern(c)

	default:
		return nil, errorAt(tok.Span, "expected a pattern")
	}
}

func parseTuplePattern(c *scan.Cursor) (*Pattern, error) {
	open := c.Next() // `(`

	var names []string

	for {
		id := c.Next()
		if id.Kind != scan.Ident {
			return nil, errorAt(id.Span, "expected an identifier in pattern")
		}

		names = append(names, id.Text)

		sep := c.Next()

		switch {
		case sep.Is(")"):
			span := open.Span.Join(sep.Span)

			return &Pattern{Source: c.Text(span), Names: names, Span: span}, nil

		case sep.Is(","):
			if closing := c.Peek(); closing.Is(")") { // trailing comma
				c.Next()
				span := open.Span.Join(closing.Span)

				return &Pattern{Source: c.Text(span), Names: names, Span: span}, nil
			}

		default:
			return nil, errorAt(sep.Span, "expected `,` or `)` in pattern")
		}
	}
}
