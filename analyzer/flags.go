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
	"flag"

	"fillmore-labs.com/specguard/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(behaviorValue{r: r}, "behavior", "failure behavior of emitted checks (abort, report or nocheck)")
	flags.Var(cfgValue{r: r}, "cfg", "comma-separated build configuration names enabled for `cfg` predicates")
	flags.Var(boolValue[config.Config, *config.BitMask[config.Config]]{
		flags: &r.files, value: config.IncludeGenerated,
	}, "generated", "instrument generated files")
	flags.Var(boolValue[config.Config, *config.BitMask[config.Config]]{
		flags: &r.files, value: config.IncludeTests,
	}, "tests", "instrument _test.go files")
}
