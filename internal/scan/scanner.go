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

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Error is a scan error with the byte span of the offending input.
type Error struct {
	Span Span
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Tokens scans src into a token slice. Expressions are not interpreted;
// the scanner only needs to delimit tokens well enough that balanced
// delimiters and top-level separators can be found, so literals are
// scanned permissively.
func Tokens(src string) ([]Token, error) {
	s := scanner{src: src}

	var toks []Token

	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) next() (Token, error) {
	s.skipSpace()

	start := s.pos
	if s.pos >= len(s.src) {
		return Token{Kind: EOF, Span: Span{start, start}}, nil
	}

	r, size := utf8.DecodeRuneInString(s.src[s.pos:])

	switch {
	case isIdentStart(r):
		s.scanIdent()
		return s.token(Ident, start), nil

	case r >= '0' && r <= '9':
		s.scanNumber()
		return s.token(Literal, start), nil

	case r == '"' || r == '\'':
		if err := s.scanQuoted(byte(r)); err != nil {
			return Token{}, err
		}

		return s.token(Literal, start), nil

	case r == '`':
		if err := s.scanRaw(); err != nil {
			return Token{}, err
		}

		return s.token(Literal, start), nil

	case r == '(' || r == '[' || r == '{':
		s.pos += size
		return s.token(Open, start), nil

	case r == ')' || r == ']' || r == '}':
		s.pos += size
		return s.token(Close, start), nil

	case isOpStart(r):
		s.scanOp()
		return s.token(Op, start), nil

	default:
		return Token{}, &Error{
			Span: Span{start, start + size},
			Msg:  fmt.Sprintf("unexpected character %q", r),
		}
	}
}

func (s *scanner) token(kind Kind, start int) Token {
	return Token{Kind: kind, Text: s.src[start:s.pos], Span: Span{start, s.pos}}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (s *scanner) scanIdent() {
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isIdentPart(r) {
			return
		}

		s.pos += size
	}
}

// scanNumber consumes a numeric literal, including hex, floats and
// exponents. A sign directly after an exponent marker belongs to the
// literal (`1e+5`), everything else ends it.
func (s *scanner) scanNumber() {
	var prev byte

	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '.':
		case (c == '+' || c == '-') && (prev == 'e' || prev == 'E' || prev == 'p' || prev == 'P'):
		default:
			return
		}

		prev = c
		s.pos++
	}
}

func (s *scanner) scanQuoted(quote byte) error {
	start := s.pos
	s.pos++ // opening quote

	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2

		case quote:
			s.pos++
			return nil

		default:
			s.pos++
		}
	}

	return &Error{Span: Span{start, len(s.src)}, Msg: "unterminated literal"}
}

func (s *scanner) scanRaw() error {
	start := s.pos
	s.pos++ // opening backquote

	for s.pos < len(s.src) {
		if s.src[s.pos] == '`' {
			s.pos++
			return nil
		}

		s.pos++
	}

	return &Error{Span: Span{start, len(s.src)}, Msg: "unterminated raw literal"}
}

func isOpStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '&', '|', '^', '<', '>', '=', '!', ':', ';', '.', ',', '?', '~', '#', '@':
		return true
	default:
		return false
	}
}

// operators lists multi-character operators, longest first, so that
// maximal munch applies. `=>` is the postcondition binder arrow; it is
// not a Go operator but part of the annotation grammar.
var operators = []string{
	"<<=", ">>=", "&^=", "...",
	"==", "!=", "<=", ">=", "&&", "||", "<-", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<<", ">>", "&^", ":=", "=>",
}

func (s *scanner) scanOp() {
	rest := s.src[s.pos:]

	for _, op := range operators {
		if len(rest) >= len(op) && rest[:len(op)] == op {
			s.pos += len(op)
			return
		}
	}

	s.pos++ // single-character operator
}
