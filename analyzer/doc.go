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

// Package analyzer implements the optfmt static analysis pass.
//
// # Overview
//
// OptFmt detects hand-written code that re-implements what an optional
// type's Map combinator or a println-style call already does.
//
// # Example
//
// Before:
//
//	func double(o option.Option[int]) option.Option[int] {
//	    if v, ok := o.Get(); ok {
//	        return option.Of(v * 2)
//	    }
//	    return option.Empty[int]()
//	}
//
// After applying optfmt's suggested fix:
//
//	func double(o option.Option[int]) option.Option[int] {
//	    return option.Map(o, func(v int) int { return v * 2 })
//	}
//
// # Checks
//
// The analyzer detects:
//
//   - Conditionals re-wrapping an optional value (map)
//   - Format strings duplicating the call's newline (nl)
//   - Empty string operands in println-style calls (empty)
//   - Literal arguments foldable into the format string (lit)
//   - Go-syntax %#v formatting left in output (dbg)
//   - Direct writes to the process streams, off by default (out)
package analyzer
