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

package instrument

import "strings"

// reindent inserts prefix after every newline in src, shifting the
// nested body one level deeper. Newlines inside raw string literals
// are left untouched; they are part of the value.
func reindent(src, prefix string) string {
	if !strings.Contains(src, "\n") {
		return src
	}

	var b strings.Builder
	b.Grow(len(src) + 8*len(prefix))

	const (
		code = iota
		interpreted // "..."
		runeLit     // '...'
		raw         // `...`
		lineComment
		blockComment
	)

	state := code

	for i := 0; i < len(src); i++ {
		c := src[i]
		b.WriteByte(c)

		switch state {
		case code:
			switch c {
			case '"':
				state = interpreted
			case '\'':
				state = runeLit
			case '`':
				state = raw
			case '/':
				if i+1 < len(src) {
					switch src[i+1] {
					case '/':
						state = lineComment
					case '*':
						state = blockComment
					}
				}
			case '\n':
				b.WriteString(prefix)
			}

		case interpreted, runeLit:
			switch {
			case c == '\\' && i+1 < len(src):
				b.WriteByte(src[i+1])
				i++
			case c == '"' && state == interpreted, c == '\'' && state == runeLit:
				state = code
			case c == '\n': // unterminated literal, give up on tracking
				state = code
				b.WriteString(prefix)
			}

		case raw:
			if c == '`' {
				state = code
			}

		case lineComment:
			if c == '\n' {
				state = code
				b.WriteString(prefix)
			}

		case blockComment:
			switch {
			case c == '*' && i+1 < len(src) && src[i+1] == '/':
				b.WriteByte('/')
				i++
				state = code
			case c == '\n':
				b.WriteString(prefix)
			}
		}
	}

	return b.String()
}
