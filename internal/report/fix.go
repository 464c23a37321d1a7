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

package report

import (
	"go/ast"

	"fillmore-labs.com/specguard/internal/astutil"
	"fillmore-labs.com/specguard/internal/instrument"
)

// FuncSource extracts the verbatim source pieces of a declaration that
// the instrumenter needs. Text is sliced from the original file, not
// re-printed, so the fix preserves the author's formatting.
func FuncSource(file astutil.CurrentFile, src []byte, fun *ast.FuncDecl) instrument.Func {
	f := instrument.Func{
		Body: file.Slice(src, fun.Body.Lbrace, fun.Body.Rbrace+1),
	}

	if results := fun.Type.Results; results != nil {
		f.ResultsDecl = file.Slice(src, results.Pos(), results.End())

		for _, field := range results.List {
			typeText := file.Slice(src, field.Type.Pos(), field.Type.End())

			// A grouped declaration like `(q, r int)` has one type for
			// several result values.
			n := len(field.Names)
			if n == 0 {
				n = 1
			}

			for range n {
				f.ResultTypes = append(f.ResultTypes, typeText)
			}
		}
	}

	if fun.Recv != nil {
		f.DeclaredNames = appendFieldNames(f.DeclaredNames, fun.Recv)
	}

	f.DeclaredNames = appendFieldNames(f.DeclaredNames, fun.Type.Params)
	f.DeclaredNames = appendFieldNames(f.DeclaredNames, fun.Type.Results)

	return f
}

func appendFieldNames(names []string, fields *ast.FieldList) []string {
	if fields == nil {
		return names
	}

	for _, field := range fields.List {
		for _, id := range field.Names {
			if id.Name != "_" {
				names = append(names, id.Name)
			}
		}
	}

	return names
}
