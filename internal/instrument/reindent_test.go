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

import "testing"

func TestReindent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "SingleLine",
			src:  " return x ",
			want: " return x ",
		},
		{
			name: "Statements",
			src:  "\n\tx++\n\treturn x\n",
			want: "\n\t\tx++\n\t\treturn x\n\t",
		},
		{
			name: "RawStringUntouched",
			src:  "\n\ts := `a\nb`\n",
			want: "\n\t\ts := `a\nb`\n\t",
		},
		{
			name: "InterpretedString",
			src:  "\n\ts := \"a\\\"b\"\n\tx++\n",
			want: "\n\t\ts := \"a\\\"b\"\n\t\tx++\n\t",
		},
		{
			name: "LineComment",
			src:  "\n\tx++ // trailing `backquote\n\treturn x\n",
			want: "\n\t\tx++ // trailing `backquote\n\t\treturn x\n\t",
		},
		{
			name: "BlockComment",
			src:  "\n\t/* a\n\tcomment */\n\tx++\n",
			want: "\n\t\t/* a\n\t\tcomment */\n\t\tx++\n\t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := reindent(tt.src, "\t"); got != tt.want {
				t.Errorf("reindent(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}
