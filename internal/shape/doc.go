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

// Package shape recognizes the canonical forms of hand-written optional
// mapping.
//
// A candidate is a two-armed conditional destructuring an optional value
// through its comma-ok accessor, where exactly one arm rebuilds a
// present value and the other produces the absent value:
//
//	if v, ok := o.Get(); ok {
//		r = option.Of(v + 1)
//	} else {
//		r = option.Empty[int]()
//	}
//
// The option protocol (the optional type, its constructors and its Map
// combinator) is resolved structurally from type information, never by
// textual name matching, so any library following the protocol is
// recognized. Unrecognized or ambiguous forms yield no match; callers
// abstain rather than guess.
package shape
