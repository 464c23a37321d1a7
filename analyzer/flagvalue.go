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
	"strconv"
	"strings"

	"fillmore-labs.com/specguard/internal/instrument"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// behaviorValue adapts the check behavior to a [flag.Value].
type behaviorValue struct {
	r *runOptions
}

// Set implements [flag.Value].
func (f behaviorValue) Set(s string) error {
	behavior, err := instrument.ParseBehavior(s)
	if err != nil {
		return err
	}

	f.r.behavior = behavior

	return nil
}

// String implements [flag.Value].
func (f behaviorValue) String() string {
	if f.r == nil {
		return instrument.Abort.String()
	}

	return f.r.behavior.String()
}

// Get implements [flag.Getter].
func (f behaviorValue) Get() any {
	if f.r == nil {
		return instrument.Abort
	}

	return f.r.behavior
}

// cfgValue adapts the enabled configuration names to a [flag.Value].
// Repeated flags accumulate.
type cfgValue struct {
	r *runOptions
}

// Set implements [flag.Value].
func (f cfgValue) Set(s string) error {
	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			f.r.cfg = append(f.r.cfg, name)
		}
	}

	return nil
}

// String implements [flag.Value].
func (f cfgValue) String() string {
	if f.r == nil {
		return ""
	}

	return strings.Join(f.r.cfg, ",")
}

// Get implements [flag.Getter].
func (f cfgValue) Get() any {
	if f.r == nil {
		return []string(nil)
	}

	return f.r.cfg
}
