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

package instrument

import "fmt"

// Behavior selects what an emitted check does when its condition is
// false. It applies build-wide, not per contract.
type Behavior uint8

const (
	// Abort panics with a diagnostic message.
	Abort Behavior = iota // abort

	// Report prints the diagnostic message and continues.
	Report // report

	// NoCheck emits the checks inside dead branches: they are still
	// type-checked by the host compiler but never run.
	NoCheck // nocheck
)

//go:generate go tool stringer -type=Behavior -linecomment

// ParseBehavior converts a flag or settings value to a [Behavior].
func ParseBehavior(value string) (Behavior, error) {
	for behavior := Abort; behavior <= NoCheck; behavior++ {
		if behavior.String() == value {
			return behavior, nil
		}
	}

	return Abort, fmt.Errorf("unknown behavior %q", value)
}
