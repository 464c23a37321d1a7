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

//specguard:spec captures: count, ensures: output == old_count+1
func Increment(count int) int { // want "Increment has contract"
	return count + 1
}

//specguard:spec requires: len(s) > 0, captures: [len(s) as n, s[0] as first], ensures: [len(output) == n+1, output[0] == first]
func Push(s []int, v int) []int { // want "Push has contract"
	return append(s, v)
}

//specguard:spec captures: [2]int{a, b} as pair, ensures: output == pair[0]+pair[1]
func Sum(a, b int) int { // want "Sum has contract"
	return a + b
}
