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

// Package fmtnofix collects print calls that must not receive a
// suggested fix, with or without a diagnostic.
package fmtnofix

import "fmt"

type point struct {
	x, y int
}

// GoString implementations produce Go syntax on purpose.
func (p point) GoString() string {
	return fmt.Sprintf("point{x: %d, y: %d}", p.x, p.y)
}

// Debug formatting is flagged elsewhere, without a fix.
func dump(p point) string {
	return fmt.Sprintf("%#v", p) // want "Go-syntax formatting"
}

// Quoting changes the output; %q is not a default rendition.
func quote() {
	fmt.Printf("%q", "x")
}

// Explicit argument indexes make removal index-shifting unsound.
func indexed() {
	fmt.Printf("%[1]s and %[1]s", "x")
}

// Two newlines are deliberate layout.
func twoLines() {
	fmt.Printf("a\nb\n")
}

// Non-literal arguments stay where they are.
func dynamic(name string) {
	fmt.Printf("%s", name)
}

// A backquote cannot be represented in the raw format string; the
// diagnostic carries no fix.
func tick() {
	fmt.Printf(`%s!`, "a`b") // want "inlined"
}

// An escape decoding to a percent sign hides the directive structure.
func hidden() {
	fmt.Printf("\x25s", "x")
}

// Mismatched arity is fmt's problem, not ours.
func broken() {
	fmt.Printf("%s %s", "x")
}
