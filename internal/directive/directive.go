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

// Package directive locates contract directives in doc comments.
//
// A contract is written as one or more `//specguard:spec` lines in a
// function's doc comment. The payloads of all lines form a single
// parameter list; a fragment table maps byte offsets in the joined
// payload back to exact token positions for error reporting.
package directive

import (
	"go/ast"
	"go/token"
	"strings"

	"fillmore-labs.com/specguard/internal/scan"
)

// Marker starts a contract directive line, in the style of `//go:`
// build directives: no space after the comment slashes.
const Marker = "//specguard:spec"

// Source is the joined payload of a function's directive lines.
type Source struct {
	Text  string
	frags []fragment
}

// fragment records where a directive line's payload landed in the
// joined text and where it begins in the file.
type fragment struct {
	start int // offset in Text
	end   int // offset in Text
	pos   token.Pos
}

// FromDoc extracts the contract directive from a doc comment group.
// The second result reports whether any directive line was found.
func FromDoc(doc *ast.CommentGroup) (Source, bool) {
	if doc == nil {
		return Source{}, false
	}

	var (
		b     strings.Builder
		frags []fragment
	)

	for _, comment := range doc.List {
		payload, offset, ok := payloadOf(comment.Text)
		if !ok {
			continue
		}

		if b.Len() > 0 {
			// Successive lines are separate parameter runs; add the
			// group separator unless the previous line brought its own.
			if prev := strings.TrimRight(b.String(), " \t"); !strings.HasSuffix(prev, ",") {
				b.WriteString(",")
			}

			b.WriteString(" ")
		}

		frags = append(frags, fragment{
			start: b.Len(),
			end:   b.Len() + len(payload),
			pos:   comment.Pos() + token.Pos(offset),
		})
		b.WriteString(payload)
	}

	if len(frags) == 0 {
		return Source{}, false
	}

	return Source{Text: b.String(), frags: frags}, true
}

// payloadOf splits a comment line into the directive payload and its
// byte offset within the comment, if the line is a directive.
func payloadOf(text string) (payload string, offset int, ok bool) {
	if !strings.HasPrefix(text, Marker) {
		return "", 0, false
	}

	rest := text[len(Marker):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", 0, false // a different directive, e.g. //specguard:specs
	}

	trimmed := strings.TrimLeft(rest, " \t")
	offset = len(text) - len(trimmed)

	return strings.TrimRight(trimmed, " \t\r"), offset, true
}

// Pos maps a byte offset in the joined payload to a file position.
// Offsets falling into a join separator map to the following fragment.
func (s Source) Pos(offset int) token.Pos {
	for _, frag := range s.frags {
		if offset < frag.start {
			return frag.pos
		}

		if offset <= frag.end {
			return frag.pos + token.Pos(offset-frag.start)
		}
	}

	last := s.frags[len(s.frags)-1]

	return last.pos + token.Pos(last.end-last.start)
}

// SpanRange maps a span in the joined payload to file positions.
func (s Source) SpanRange(span scan.Span) (pos, end token.Pos) {
	return s.Pos(span.Start), s.Pos(span.End)
}
