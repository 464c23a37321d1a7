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

package scan

// Kind classifies a token.
type Kind uint8

const (
	// EOF marks the end of the input.
	EOF Kind = iota

	// Ident is an identifier, including keywords like `requires` or `as`,
	// which are only meaningful in context.
	Ident

	// Literal is a number, string, raw string or rune literal.
	Literal

	// Op is an operator or other punctuation, e.g. `==`, `=>`, `,` or `#`.
	Op

	// Open is an opening delimiter: `(`, `[` or `{`.
	Open

	// Close is a closing delimiter: `)`, `]` or `}`.
	Close
)

// Span is a half-open byte range [Start, End) into the scanned source.
type Span struct {
	Start, End int
}

// Join returns the smallest span covering both s and t.
func (s Span) Join(t Span) Span {
	if t.Start < s.Start {
		s.Start = t.Start
	}

	if t.End > s.End {
		s.End = t.End
	}

	return s
}

// Token is a single lexical element with its source span.
type Token struct {
	Kind Kind
	Text string
	Span Span
}

// Is reports whether the token is an operator or delimiter with the given text.
func (t Token) Is(text string) bool {
	switch t.Kind {
	case Op, Open, Close:
		return t.Text == text
	default:
		return false
	}
}

// IsIdent reports whether the token is the given identifier.
func (t Token) IsIdent(name string) bool {
	return t.Kind == Ident && t.Text == name
}
