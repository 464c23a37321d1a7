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

// Cursor is a position into a scanned token stream supporting
// speculative parsing: Fork yields an independent cursor over the same
// tokens, and Commit adopts a fork's position. A parse attempt that
// fails on a fork leaves the original cursor untouched.
type Cursor struct {
	src  string
	toks []Token
	pos  int
}

// NewCursor scans src and returns a cursor at the first token.
func NewCursor(src string) (*Cursor, error) {
	toks, err := Tokens(src)
	if err != nil {
		return nil, err
	}

	return &Cursor{src: src, toks: toks}, nil
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() Token {
	return c.toks[c.pos]
}

// Next consumes and returns the current token. At the end of input it
// keeps returning the EOF token.
func (c *Cursor) Next() Token {
	tok := c.toks[c.pos]
	if tok.Kind != EOF {
		c.pos++
	}

	return tok
}

// EOF reports whether the cursor is at the end of input.
func (c *Cursor) EOF() bool {
	return c.toks[c.pos].Kind == EOF
}

// Fork returns a new cursor at the same position. The fork shares the
// underlying tokens, so advancing it never consumes input from c.
func (c *Cursor) Fork() *Cursor {
	fork := *c
	return &fork
}

// Commit moves c to the fork's position.
func (c *Cursor) Commit(fork *Cursor) {
	c.pos = fork.pos
}

// Text returns the source text covered by the span, with surrounding
// whitespace already excluded by token bounds.
func (c *Cursor) Text(span Span) string {
	return c.src[span.Start:span.End]
}

// Here returns the span of the current token, used to pinpoint errors
// at the cursor position.
func (c *Cursor) Here() Span {
	start := c.toks[c.pos].Span.Start
	return Span{start, c.toks[c.pos].Span.End}
}
