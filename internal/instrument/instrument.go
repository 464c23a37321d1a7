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

// Package instrument rewrites annotated function bodies so that the
// contract is checked at runtime.
//
// The original body is wrapped in an immediately invoked closure whose
// results are bound to hygienic temporaries. Declaration order then
// enforces the scoping rules structurally: entry checks and capture
// snapshots precede the closure, exit checks and binder aliases follow
// it, so the body can never observe a capture alias or binder name.
//
// Emitted checks use only the predeclared panic and println functions;
// instrumented packages gain no new imports.
package instrument

import (
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/specguard/internal/buildcfg"
	"fillmore-labs.com/specguard/internal/scan"
	"fillmore-labs.com/specguard/spec"
)

// Func describes the host function to instrument. All text fields are
// verbatim source slices.
type Func struct {
	// ResultsDecl is the result list as written, e.g. "(q, r int)",
	// "error", or "" for a function without results.
	ResultsDecl string

	// ResultTypes holds one type per result value, expanded so that
	// grouped declarations like "(q, r int)" yield one entry per name.
	ResultTypes []string

	// DeclaredNames are the receiver, parameter and named result
	// identifiers already in scope in the body.
	DeclaredNames []string

	// Body is the original body block, including the braces.
	Body string
}

// Error is a semantic error binding a contract to a function, located
// by a span in the contract source.
type Error struct {
	Span scan.Span
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func errorAt(span scan.Span, format string, args ...any) *Error {
	return &Error{Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Diagnostic kinds in check messages, in emission order.
const (
	kindPrecondition  = "Precondition"
	kindPreInvariant  = "Pre-invariant"
	kindPostInvariant = "Post-invariant"
	kindPostcondition = "Postcondition"
)

// Temporary name prefixes. The underscores keep them out of the user's
// namespace; gopls-style completion never suggests them.
func resultTemp(i int) string { return "__specguard_r" + strconv.Itoa(i) }

func captureTemp(i int) string { return "__specguard_c" + strconv.Itoa(i) }

// Instrument renders the replacement body block for fn under s. The
// result starts with the opening brace and ends with the closing brace
// on its own line, ready to substitute for the original block.
func Instrument(fn Func, s *spec.Spec, behavior Behavior, cfg *buildcfg.Config) (string, error) {
	binder, err := sharedBinder(fn, s)
	if err != nil {
		return "", err
	}

	w := writer{behavior: behavior, cfg: cfg}
	w.b.WriteString("{\n")

	for _, cond := range s.Requires {
		if err := w.check(cond.Expr.Source, cond.Cfg, kindPrecondition, cond.Expr.Source); err != nil {
			return "", err
		}
	}

	for _, cond := range s.Maintains {
		if err := w.check(cond.Expr.Source, cond.Cfg, kindPreInvariant, cond.Expr.Source); err != nil {
			return "", err
		}
	}

	for i, capture := range s.Captures {
		w.line(1, captureTemp(i)+" := "+capture.Expr.Source)
	}

	w.callBody(fn)

	for _, cond := range s.Maintains {
		if err := w.check(cond.Expr.Source, cond.Cfg, kindPostInvariant, cond.Expr.Source); err != nil {
			return "", err
		}
	}

	declared := make(map[string]bool, len(fn.DeclaredNames))
	for _, name := range fn.DeclaredNames {
		declared[name] = true
	}

	var fresh []string

	if len(s.Captures) > 0 {
		names := make([]string, len(s.Captures))
		rhs := make([]string, len(s.Captures))

		for i, capture := range s.Captures {
			names[i] = capture.Alias
			rhs[i] = captureTemp(i)
		}

		fresh = append(fresh, w.bind(names, rhs, declared)...)
	}

	if binder != nil {
		rhs := make([]string, len(fn.ResultTypes))
		for i := range fn.ResultTypes {
			rhs[i] = resultTemp(i)
		}

		fresh = append(fresh, w.bind(binder.Names, rhs, declared)...)
	}

	// Postcondition expressions are opaque; a fresh binding they do not
	// mention would otherwise be flagged as declared and not used.
	if len(fresh) > 0 {
		blanks := strings.Repeat("_, ", len(fresh)-1) + "_"
		w.line(1, blanks+" = "+strings.Join(fresh, ", "))
	}

	for _, post := range s.Ensures {
		cond := post.Expr.Source
		if post.Binds != nil {
			cond = localBinderCheck(fn, post)
		}

		if err := w.check(cond, post.Cfg, kindPostcondition, post.Source); err != nil {
			return "", err
		}
	}

	if n := len(fn.ResultTypes); n > 0 {
		temps := make([]string, n)
		for i := range temps {
			temps[i] = resultTemp(i)
		}

		w.line(1, "return "+strings.Join(temps, ", "))
	}

	w.b.WriteString("}")

	return w.b.String(), nil
}

// sharedBinder validates the binder patterns against the function's
// result arity and returns the pattern to bind for shared use, or nil
// when no binding is needed.
//
// A zero-result function binds nothing; postconditions may still refer
// to parameters or package state. Functions with several results need
// an explicit pattern of matching arity, there is no implicit tuple.
func sharedBinder(fn Func, s *spec.Spec) (*spec.Pattern, error) {
	results := len(fn.ResultTypes)

	if s.Binds != nil {
		if results == 0 {
			return nil, errorAt(s.Binds.Span, "cannot bind the results of a function without results")
		}

		if len(s.Binds.Names) != results {
			return nil, errorAt(s.Binds.Span,
				"binder pattern has %d names, but the function has %d results", len(s.Binds.Names), results)
		}
	}

	shared := false

	for _, post := range s.Ensures {
		if post.Binds == nil {
			shared = true

			continue
		}

		if results == 0 {
			return nil, errorAt(post.Binds.Span, "cannot bind the results of a function without results")
		}

		if len(post.Binds.Names) != results {
			return nil, errorAt(post.Binds.Span,
				"binder pattern has %d names, but the function has %d results", len(post.Binds.Names), results)
		}
	}

	if !shared || results == 0 {
		return nil, nil
	}

	if s.Binds == nil {
		if results > 1 {
			for _, post := range s.Ensures {
				if post.Binds == nil {
					return nil, errorAt(post.Expr.Span,
						"functions with multiple results require an explicit `binds` pattern")
				}
			}
		}

		return &spec.Pattern{Source: spec.DefaultBinder, Names: []string{spec.DefaultBinder}}, nil
	}

	return s.Binds, nil
}

// localBinderCheck renders an explicitly bound postcondition as an
// immediately invoked predicate over the result temporaries, so the
// local binder shadows nothing outside the condition.
func localBinderCheck(fn Func, post spec.PostCondition) string {
	params := make([]string, len(post.Binds.Names))
	args := make([]string, len(post.Binds.Names))

	for i, name := range post.Binds.Names {
		params[i] = name + " " + fn.ResultTypes[i]
		args[i] = resultTemp(i)
	}

	return "func(" + strings.Join(params, ", ") + ") bool { return " + post.Expr.Source + " }(" +
		strings.Join(args, ", ") + ")"
}

type writer struct {
	b        strings.Builder
	behavior Behavior
	cfg      *buildcfg.Config
}

func (w *writer) line(depth int, text string) {
	for range depth {
		w.b.WriteString("\t")
	}

	w.b.WriteString(text)
	w.b.WriteString("\n")
}

// check emits one runtime check. Checks whose build predicate is false,
// and all checks under [NoCheck], are wrapped in a dead branch: the
// host compiler still type-checks them, but they have no runtime
// presence.
func (w *writer) check(cond string, predicate *spec.Predicate, kind, source string) error {
	depth := 1

	dead := w.behavior == NoCheck

	if predicate != nil {
		enabled, err := w.enabled(predicate)
		if err != nil {
			return err
		}

		dead = dead || !enabled
	}

	if dead {
		w.line(depth, "if false {")
		depth++
	}

	w.line(depth, "if !("+cond+") {")

	msg := strconv.Quote(kind + " failed: " + source)
	if w.behavior == Report {
		w.line(depth+1, "println("+msg+")")
	} else {
		w.line(depth+1, "panic("+msg+")")
	}

	w.line(depth, "}")

	if dead {
		w.line(depth-1, "}")
	}

	return nil
}

func (w *writer) enabled(predicate *spec.Predicate) (bool, error) {
	if w.cfg == nil {
		return false, nil
	}

	enabled, err := w.cfg.Eval(predicate.Settings)
	if err != nil {
		return false, errorAt(predicate.Span, "%s", err)
	}

	return enabled, nil
}

// callBody wraps the original body in an immediately invoked closure
// and binds its results to the result temporaries.
func (w *writer) callBody(fn Func) {
	var stmt strings.Builder

	if n := len(fn.ResultTypes); n > 0 {
		for i := range n {
			if i > 0 {
				stmt.WriteString(", ")
			}

			stmt.WriteString(resultTemp(i))
		}

		stmt.WriteString(" := ")
	}

	stmt.WriteString("func() ")

	if fn.ResultsDecl != "" {
		stmt.WriteString(fn.ResultsDecl)
		stmt.WriteString(" ")
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(fn.Body, "{"), "}")

	stmt.WriteString("{")
	stmt.WriteString(reindent(inner, "\t"))
	stmt.WriteString("}()")

	w.line(1, stmt.String())
}

// bind emits one assignment of rhs to names, choosing `=` when every
// non-blank name is already in scope and `:=` otherwise. It records the
// names it declares and returns the freshly declared ones.
func (w *writer) bind(names, rhs []string, declared map[string]bool) []string {
	var fresh []string

	for _, name := range names {
		if name != "_" && !declared[name] {
			fresh = append(fresh, name)
		}
	}

	op := " = "
	if len(fresh) > 0 {
		op = " := "
	}

	w.line(1, strings.Join(names, ", ")+op+strings.Join(rhs, ", "))

	for _, name := range fresh {
		declared[name] = true
	}

	return fresh
}
