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

package report

// Code identifies a check in diagnostic messages.
type Code uint8

//go:generate go tool stringer -type Code -linecomment
const (
	// ManualMap marks a hand-written optional mapping.
	ManualMap Code = iota // map

	// Newline marks a format string duplicating the call's newline.
	Newline // nl

	// EmptyString marks an empty string operand to a println-style call.
	EmptyString // empty

	// Literal marks a literal argument foldable into the format string.
	Literal // lit

	// Debug marks debug formatting outside GoString methods.
	Debug // dbg

	// PrintCall marks direct output to the process streams.
	PrintCall // out
)
