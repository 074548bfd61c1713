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

package format

// Spec describes a print-like function from the standard library.
type Spec struct {
	// FormatIdx is the index of the format operand, -1 for functions
	// without one.
	FormatIdx int

	// ArgStart is the index of the first value operand.
	ArgStart int

	// LnName names the newline-appending counterpart, empty when the
	// function has none or renaming would change formatting semantics.
	LnName string

	// IsLn marks functions appending a newline themselves.
	IsLn bool

	// Terminates marks functions whose sink terminates each message with
	// a newline regardless, such as the log package.
	Terminates bool

	// Stdout marks functions writing to process standard output.
	Stdout bool

	// Writer marks functions taking an explicit io.Writer first.
	Writer bool
}

// Formatted reports whether the function interprets a format string.
func (s Spec) Formatted() bool { return s.FormatIdx >= 0 }

// specs maps [types.Func.FullName] results to their descriptions.
// Renames stay within the same family, so suggested fixes never change
// where or how the output is written.
var specs = map[string]Spec{
	// fmt, formatted
	"fmt.Printf":  {FormatIdx: 0, ArgStart: 1, LnName: "Println", Stdout: true},
	"fmt.Fprintf": {FormatIdx: 1, ArgStart: 2, LnName: "Fprintln", Writer: true},
	"fmt.Sprintf": {FormatIdx: 0, ArgStart: 1, LnName: "Sprintln"},
	"fmt.Errorf":  {FormatIdx: 0, ArgStart: 1},

	// fmt, plain
	"fmt.Print":    {FormatIdx: -1, Stdout: true},
	"fmt.Println":  {FormatIdx: -1, IsLn: true, Stdout: true},
	"fmt.Fprint":   {FormatIdx: -1, ArgStart: 1, Writer: true},
	"fmt.Fprintln": {FormatIdx: -1, ArgStart: 1, IsLn: true, Writer: true},
	"fmt.Sprint":   {FormatIdx: -1},
	"fmt.Sprintln": {FormatIdx: -1, IsLn: true},

	// log, formatted; the sink appends the final newline itself
	"log.Printf": {FormatIdx: 0, ArgStart: 1, Terminates: true},
	"log.Fatalf": {FormatIdx: 0, ArgStart: 1, Terminates: true},
	"log.Panicf": {FormatIdx: 0, ArgStart: 1, Terminates: true},

	"(*log.Logger).Printf": {FormatIdx: 0, ArgStart: 1, Terminates: true},
	"(*log.Logger).Fatalf": {FormatIdx: 0, ArgStart: 1, Terminates: true},
	"(*log.Logger).Panicf": {FormatIdx: 0, ArgStart: 1, Terminates: true},

	// log, plain
	"log.Print":   {FormatIdx: -1, Terminates: true},
	"log.Println": {FormatIdx: -1, IsLn: true, Terminates: true},
	"log.Fatal":   {FormatIdx: -1, Terminates: true},
	"log.Fatalln": {FormatIdx: -1, IsLn: true, Terminates: true},
	"log.Panic":   {FormatIdx: -1, Terminates: true},
	"log.Panicln": {FormatIdx: -1, IsLn: true, Terminates: true},

	"(*log.Logger).Print":   {FormatIdx: -1, Terminates: true},
	"(*log.Logger).Println": {FormatIdx: -1, IsLn: true, Terminates: true},
	"(*log.Logger).Fatal":   {FormatIdx: -1, Terminates: true},
	"(*log.Logger).Fatalln": {FormatIdx: -1, IsLn: true, Terminates: true},
	"(*log.Logger).Panic":   {FormatIdx: -1, Terminates: true},
	"(*log.Logger).Panicln": {FormatIdx: -1, IsLn: true, Terminates: true},
}
