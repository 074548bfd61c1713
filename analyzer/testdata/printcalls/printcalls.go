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

// Package printcalls exercises the opt-in check for direct writes to
// the process streams.
package printcalls

import (
	"fmt"
	"io"
	"log"
	"os"
)

func debug() {
	fmt.Println("here") // want "writes directly to standard output"
}

func trace(n int) {
	fmt.Fprintf(os.Stderr, "%d\n", n) // want "use fmt.Fprintln" "writes directly to standard error"
}

// The log package owns its destination.
func logged() {
	log.Println("here")
}

// Arbitrary writers are fine.
func stream(w io.Writer) {
	fmt.Fprintln(w, "data")
}
