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

// Package report turns parsed contracts into analysis diagnostics with
// suggested fixes, and maps contract errors back to file positions.
package report

import (
	"errors"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/specguard/internal/directive"
	"fillmore-labs.com/specguard/internal/instrument"
	"fillmore-labs.com/specguard/internal/scan"
	"fillmore-labs.com/specguard/spec"
)

// Contract reports that fun carries a contract and attaches the
// replacement body as a suggested fix. The message renders the contract
// in canonical form, so equivalent spellings produce one message.
func Contract(p *analysis.Pass, fun *ast.FuncDecl, s *spec.Spec, body string) {
	message := fmt.Sprintf("%s has contract `%s`", fun.Name.Name, s)

	p.Report(analysis.Diagnostic{
		Pos:     fun.Pos(),
		End:     fun.Name.End(),
		Message: message,
		SuggestedFixes: []analysis.SuggestedFix{{
			Message: "Instrument function body",
			TextEdits: []analysis.TextEdit{{
				Pos:     fun.Body.Lbrace,
				End:     fun.Body.Rbrace + 1,
				NewText: []byte(body),
			}},
		}},
	})
}

// ContractError reports a contract parse or binding error at the exact
// directive position the error's span points into.
func ContractError(p *analysis.Pass, fun *ast.FuncDecl, dir directive.Source, err error) {
	span, ok := errorSpan(err)
	if !ok {
		p.Report(analysis.Diagnostic{
			Pos:     fun.Pos(),
			End:     fun.Name.End(),
			Message: err.Error(),
		})

		return
	}

	pos, end := dir.SpanRange(span)

	p.Report(analysis.Diagnostic{Pos: pos, End: end, Message: err.Error()})
}

func errorSpan(err error) (scan.Span, bool) {
	var (
		parseErr *spec.ParseError
		instErr  *instrument.Error
		scanErr  *scan.Error
	)

	switch {
	case errors.As(err, &parseErr):
		return parseErr.Span, true
	case errors.As(err, &instErr):
		return instErr.Span, true
	case errors.As(err, &scanErr):
		return scanErr.Span, true
	default:
		return scan.Span{}, false
	}
}
