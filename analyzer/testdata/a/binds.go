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

package a

//specguard:spec requires: b != 0, binds: (q, r), ensures: [a == q*b+r, (x, _) => x*b <= a]
func DivMod(a, b int) (int, int) { // want "DivMod has contract"
	return a / b, a % b
}

// Named results already in scope are assigned, not redeclared.
//
//specguard:spec binds: quotient, ensures: quotient >= 0
func Half(a int) (quotient int) { // want "Half has contract"
	quotient = a / 2
	if quotient < 0 {
		quotient = -quotient
	}
	return quotient
}
