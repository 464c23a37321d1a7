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

import "fillmore-labs.com/specguard/internal/instrument"

// Behavior selects what emitted checks do when a condition fails. It
// applies to the whole run; contracts cannot override it.
type Behavior = instrument.Behavior

const (
	// Abort panics with a diagnostic message.
	Abort = instrument.Abort

	// Report prints the diagnostic message and continues.
	Report = instrument.Report

	// NoCheck emits the checks inside dead branches, so they are
	// type-checked but never run.
	NoCheck = instrument.NoCheck
)

// ParseBehavior converts a configuration string to a [Behavior].
func ParseBehavior(value string) (Behavior, error) {
	return instrument.ParseBehavior(value)
}
