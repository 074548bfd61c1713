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

package fmtfix

import (
	"fmt"
	"io"
	"log"
)

// A trailing newline in a pure literal format renames the call.
func done() {
	fmt.Printf("done\n") // want "use fmt.Println"
}

// A format that is only a newline drops the operand entirely.
func bare() {
	fmt.Printf("\n") // want "use fmt.Println"
}

func report(w io.Writer) {
	fmt.Fprintf(w, "done\n") // want "use fmt.Fprintln"
}

// The log sink appends the newline itself; the call keeps its
// arguments.
func start(name string) {
	log.Printf("start: %s\n", name) // want "logger appends"
}

// Literal arguments fold into the format string.
func hello() {
	fmt.Printf("%s", "hello") // want "inlined"
}

func flag() {
	fmt.Printf("value: %v\n", true) // want "use fmt.Println" "inlined"
}

func grade() {
	fmt.Printf("%c rating", 'A') // want "inlined"
}

// Percent signs in the inlined text are doubled.
func discount() {
	fmt.Printf("%s off", "50%") // want "inlined"
}

// Inlining into a raw format string unescapes the literal.
func path() string {
	return fmt.Sprintf(`%s bin`, "C:\\go") // want "inlined"
}

// Escapes stay escaped between interpreted literals.
func quoted() {
	fmt.Printf("%s!\n", "say \"hi\"") // want "use fmt.Println" "inlined"
}

// Empty string operands in println-style calls.
func blank() {
	fmt.Println("") // want "Empty string literal"
}

func blankWriter(w io.Writer) {
	fmt.Fprintln(w, "") // want "Empty string literal"
}
