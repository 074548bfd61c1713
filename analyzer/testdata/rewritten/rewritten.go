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

// Package rewritten holds the output forms of the suggested fixes.
// Running the analyzer over it must report nothing: applying a fix and
// analyzing again reaches a fixed point.
package rewritten

import (
	"fmt"
	"log"

	"test/option"
)

func increment(o option.Option[int]) option.Option[int] {
	return option.Map(o, func(v int) int { return v + 1 })
}

func toString(v int) string {
	return fmt.Sprint(v)
}

func render(o option.Option[int]) option.Option[string] {
	return option.Map(o, toString)
}

func done() {
	fmt.Println("done")
	fmt.Println()
}

func banner() {
	fmt.Printf("hello")
}

func start(name string) {
	log.Printf("start: %s", name)
}
