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

package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/optfmt/internal/format"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    string
		outcome Outcome
	}{
		{
			name:    "Plain",
			body:    "abc",
			want:    "abc",
			outcome: Fixable,
		},
		{
			name:    "Backslash",
			body:    `a\\b`,
			want:    `a\b`,
			outcome: Fixable,
		},
		{
			name:    "Quote",
			body:    `\"hi\"`,
			want:    `"hi"`,
			outcome: Fixable,
		},
		{
			name:    "Backquote",
			body:    "a`b",
			want:    "a`b",
			outcome: LintOnly,
		},
		{
			name:    "CarriageReturnEscape",
			body:    `a\rb`,
			outcome: Abstain,
		},
		{
			name:    "CarriageReturnByte",
			body:    "a\rb",
			outcome: Abstain,
		},
		{
			name:    "TrailingBackslash",
			body:    `a\`,
			outcome: Abstain,
		},
		{
			name:    "Empty",
			body:    "",
			want:    "",
			outcome: Fixable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, outcome := Unescape(tt.body)

			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.want, got)
		})
	}
}
