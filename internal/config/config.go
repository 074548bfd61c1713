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

package config

// Check represents individual optfmt checks.
type Check uint8

const (
	// ManualMapCheck detects hand-written branching equivalent to mapping over an optional value.
	ManualMapCheck Check = 1 << iota

	// NewlineCheck detects format strings duplicating the line terminator of the called function.
	NewlineCheck

	// EmptyStringCheck detects empty string operands in line-terminated print calls.
	EmptyStringCheck

	// LiteralCheck detects literal arguments that can be folded into the format string.
	LiteralCheck

	// DebugCheck detects %#v formatting outside GoString implementations.
	DebugCheck

	// PrintCallCheck detects stray print calls to stdout and stderr. Off by default.
	PrintCallCheck
)

// Behavior represents behavioral options for the checks.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// Conservative restricts suggested fixes to machine-applicable rewrites.
	Conservative
)
