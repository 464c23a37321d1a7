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

package analyzer

import (
	"errors"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/specguard/internal/astutil"
	"fillmore-labs.com/specguard/internal/buildcfg"
	"fillmore-labs.com/specguard/internal/config"
	"fillmore-labs.com/specguard/internal/directive"
	"fillmore-labs.com/specguard/internal/instrument"
	"fillmore-labs.com/specguard/internal/report"
	"fillmore-labs.com/specguard/spec"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the specguard analyzer's pipeline: find contract
// directives, parse them, and report the instrumented body as a
// suggested fix.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("specguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	cfg := buildcfg.New(r.cfg...)

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated and test files unless configured otherwise
		if currentFile.Generated() && !r.files.Enabled(config.IncludeGenerated) {
			continue
		}

		if currentFile.Test() && !r.files.Enabled(config.IncludeTests) {
			continue
		}

		// The fix slices verbatim source text, so the file is read once
		// and only when it contains a directive.
		var src []byte

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			dir, ok := directive.FromDoc(fun.Doc)
			if !ok {
				continue
			}

			// Skip functions with nolint comment
			if astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
				continue
			}

			if fun.Body == nil {
				p.Report(analysis.Diagnostic{
					Pos:     fun.Pos(),
					End:     fun.Name.End(),
					Message: fmt.Sprintf("cannot instrument %s: function has no body", fun.Name.Name),
				})

				continue
			}

			if src == nil {
				content, err := p.ReadFile(currentFile.Name())
				if err != nil {
					return nil, err
				}

				src = content
			}

			r.instrument(p, currentFile, src, fun, dir, cfg)
		}
	}

	return nil, nil
}

// instrument parses one directive and reports either the suggested fix
// or the contract error.
func (r *runOptions) instrument(p *analysis.Pass, currentFile astutil.CurrentFile, src []byte,
	fun *ast.FuncDecl, dir directive.Source, cfg *buildcfg.Config,
) {
	s, err := spec.Parse(dir.Text)
	if err != nil {
		report.ContractError(p, fun, dir, err)

		return
	}

	fn := report.FuncSource(currentFile, src, fun)

	body, err := instrument.Instrument(fn, s, r.behavior, cfg)
	if err != nil {
		report.ContractError(p, fun, dir, err)

		return
	}

	report.Contract(p, fun, s, body)
}
