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

//specguard:spec #[cfg(debug)] requires: x > 0, #[cfg(trace)] ensures: output >= x
func Square(x int) int { // want "Square has contract"
	return x * x
}

//specguard:spec #[cfg(any(debug, trace))] requires: x != 0, #[cfg(not(debug))] requires: x < 1000
func Cube(x int) int { // want "Cube has contract"
	return x * x * x
}
