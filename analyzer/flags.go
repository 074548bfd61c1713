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

	"fillmore-labs.com/optfmt/internal/config"
)

// registerFlags binds the run options to command line flag values.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	flags.Var(checkFlag(r, config.ManualMapCheck), "map", "detect manual optional mapping")
	flags.Var(checkFlag(r, config.NewlineCheck), "newline", "detect redundant newlines in format strings")
	flags.Var(checkFlag(r, config.EmptyStringCheck), "empty-string", "detect empty string operands in println-style calls")
	flags.Var(checkFlag(r, config.LiteralCheck), "literal", "detect literal arguments foldable into the format string")
	flags.Var(checkFlag(r, config.DebugCheck), "debug", "detect %#v formatting outside GoString implementations")
	flags.Var(checkFlag(r, config.PrintCallCheck), "print-calls", "detect direct writes to stdout and stderr")

	flags.Var(behaviorFlag(r, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(behaviorFlag(r, config.Conservative), "conservative", "only suggest machine-applicable fixes")
}

func checkFlag(r *runOptions, value config.Check) boolValue[config.Check, *config.BitMask[config.Check]] {
	return boolValue[config.Check, *config.BitMask[config.Check]]{flags: &r.checks, value: value}
}

func behaviorFlag(r *runOptions, value config.Behavior) boolValue[config.Behavior, *config.BitMask[config.Behavior]] {
	return boolValue[config.Behavior, *config.BitMask[config.Behavior]]{flags: &r.behavior, value: value}
}
