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

// Package analyzer implements the specguard analysis pass.
//
// # Overview
//
// SpecGuard finds functions annotated with a contract directive and
// offers a suggested fix that instruments the body with runtime checks
// for the contract.
//
// # Example
//
// Before:
//
//	//specguard:spec requires: b != 0, ensures: output*b <= a
//	func div(a, b int) int {
//	    return a / b
//	}
//
// After applying specguard's suggested fix:
//
//	//specguard:spec requires: b != 0, ensures: output*b <= a
//	func div(a, b int) int {
//	    if !(b != 0) {
//	        panic("Precondition failed: b != 0")
//	    }
//	    __specguard_r0 := func() int {
//	        return a / b
//	    }()
//	    output := __specguard_r0
//	    _ = output
//	    if !(output*b <= a) {
//	        panic("Postcondition failed: output*b <= a")
//	    }
//	    return __specguard_r0
//	}
//
// # Contract parameters
//
// A directive carries a comma-separated parameter list in the order
// `requires`, `maintains`, `captures`, `binds`, `ensures`. See the
// [fillmore-labs.com/specguard/spec] package for the grammar.
package analyzer
