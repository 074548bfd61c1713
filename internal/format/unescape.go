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

import "strings"

// Outcome classifies the result of [Unescape].
type Outcome uint8

const (
	// Fixable means the produced text is a faithful raw-literal
	// rendition of the escaped body.
	Fixable Outcome = iota

	// LintOnly means the content cannot be represented inside a raw
	// literal, but a diagnostic without a fix is still warranted.
	LintOnly

	// Abstain means nothing can be said about the content.
	Abstain
)

// Unescape converts the body of an interpreted string literal to raw
// literal content.
//
// The transform is greedy left-to-right with no backtracking and only
// handles the two escapes whose raw rendition is trivial: `\\` and
// `\"`. Any other escape aborts with [Abstain], as do carriage returns,
// which raw literals discard. A backquote downgrades to [LintOnly]
// since it would terminate the raw literal.
func Unescape(body string) (string, Outcome) {
	var out strings.Builder

	outcome := Fixable

	for i := 0; i < len(body); {
		switch c := body[i]; c {
		case '`':
			outcome = LintOnly

			out.WriteByte(c)
			i++

		case '\r':
			return "", Abstain

		case '\\':
			if i+1 >= len(body) {
				return "", Abstain
			}

			switch next := body[i+1]; next {
			case '\\', '"':
				out.WriteByte(next)
				i += 2

			default:
				return "", Abstain
			}

		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), outcome
}
