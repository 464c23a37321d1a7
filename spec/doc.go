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

// Package spec defines the contract specification model and its parser.
//
// A specification is the parsed form of a `//specguard:spec` directive.
// Its parameter list follows a fixed grammar:
//
//	params    = requires* , maintains* , captures? , binds? , ensures* ;
//	requires  = [predicate], "requires:", conditions, ",";
//	maintains = [predicate], "maintains:", conditions, ",";
//	captures  = "captures:", capture_list, ",";
//	binds     = "binds:", pattern, ",";
//	ensures   = [predicate], "ensures:", post_conditions, ",";
//	predicate = "#[cfg(" settings ")]";
//
// Conditions, captures and postconditions accept either a single item
// or a bracketed list of items. Condition expressions are opaque: the
// parser finds balanced delimiters and top-level separators (`,`, `as`,
// `=>`) and leaves well-formedness and typing to the Go compiler.
//
// A parsed [Spec] is immutable. It is consumed by the instrumentation
// engine and by external tooling such as annotation reformatters, which
// re-render it through [Spec.String].
package spec
