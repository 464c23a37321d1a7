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

type Counter struct {
	n int
}

//specguard:spec maintains: c.n >= 0
func (c *Counter) Add(delta int) { // want "Add has contract"
	c.n += delta
}

//specguard:spec maintains: [c.n >= 0, delta != 0], ensures: output == c.n
func (c *Counter) AddGet(delta int) int { // want "AddGet has contract"
	c.n += delta
	return c.n
}
