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

package directive_test

import (
	"go/ast"
	"go/token"
	"strings"
	"testing"

	. "fillmore-labs.com/specguard/internal/directive"
)

// doc builds a comment group whose comments start at increasing
// positions, 100 bytes apart.
func doc(lines ...string) *ast.CommentGroup {
	list := make([]*ast.Comment, len(lines))
	for i, line := range lines {
		list[i] = &ast.Comment{Slash: token.Pos(1 + 100*i), Text: line}
	}

	return &ast.CommentGroup{List: list}
}

func TestFromDoc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  string
		found bool
	}{
		{
			name:  "Single",
			lines: []string{"//specguard:spec requires: x > 0"},
			want:  "requires: x > 0",
			found: true,
		},
		{
			name: "Joined",
			lines: []string{
				"// Fact computes the factorial of n.",
				"//specguard:spec requires: n >= 0",
				"//specguard:spec ensures: output >= 1",
			},
			want:  "requires: n >= 0, ensures: output >= 1",
			found: true,
		},
		{
			name: "TrailingCommaKept",
			lines: []string{
				"//specguard:spec requires: n >= 0,",
				"//specguard:spec ensures: output >= 1",
			},
			want:  "requires: n >= 0, ensures: output >= 1",
			found: true,
		},
		{
			name:  "NotADirective",
			lines: []string{"// specguard:spec requires: x > 0"},
		},
		{
			name:  "DifferentDirective",
			lines: []string{"//specguard:specs requires: x > 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, found := FromDoc(doc(tt.lines...))
			if found != tt.found {
				t.Fatalf("FromDoc found = %v, want %v", found, tt.found)
			}

			if src.Text != tt.want {
				t.Errorf("FromDoc text = %q, want %q", src.Text, tt.want)
			}
		})
	}
}

func TestFromDocNil(t *testing.T) {
	t.Parallel()

	if _, found := FromDoc(nil); found {
		t.Error("FromDoc(nil) found a directive")
	}
}

func TestPos(t *testing.T) {
	t.Parallel()

	group := doc(
		"//specguard:spec requires: n >= 0,",
		"//specguard:spec ensures: output >= 1",
	)

	src, found := FromDoc(group)
	if !found {
		t.Fatal("FromDoc found no directive")
	}

	tests := []struct {
		needle  string
		comment int
	}{
		{needle: "n >= 0", comment: 0},
		{needle: "output", comment: 1},
	}

	for _, tt := range tests {
		offset := strings.Index(src.Text, tt.needle)
		if offset < 0 {
			t.Fatalf("Joined text misses %q", tt.needle)
		}

		// The mapped position points at the matching comment text.
		comment := group.List[tt.comment]
		rel := int(src.Pos(offset) - comment.Slash)

		if rel < 0 || rel >= len(comment.Text) || !strings.HasPrefix(comment.Text[rel:], tt.needle) {
			t.Errorf("Pos(%d) maps to offset %d of comment %d, want %q", offset, rel, tt.comment, tt.needle)
		}
	}
}
