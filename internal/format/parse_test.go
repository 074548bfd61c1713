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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string // literal source text, delimiters included
		check func(t *testing.T, f *Format)
	}{
		{
			name:  "SingleVerb",
			value: `"%d items"`,
			check: func(t *testing.T, f *Format) {
				t.Helper()

				require.Len(t, f.Verbs, 1)
				assert.Equal(t, 'd', f.Verbs[0].Letter)
				assert.Equal(t, Span{Lo: 1, Hi: 3}, f.Verbs[0].Src)
				assert.True(t, f.Verbs[0].Default())
				assert.Equal(t, 1, f.NumConsumed)

				require.Len(t, f.Parts, 1)
				assert.Equal(t, " items", f.Parts[0].Text)
				assert.Equal(t, Span{Lo: 3, Hi: 9}, f.Parts[0].Src)
			},
		},
		{
			name:  "TrailingNewline",
			value: `"done\n"`,
			check: func(t *testing.T, f *Format) {
				t.Helper()

				assert.True(t, f.EndsNewline)
				assert.Equal(t, Span{Lo: 5, Hi: 7}, f.TailSrc)
				assert.Equal(t, 1, f.VerticalCount)
			},
		},
		{
			name:  "NewlineBeforeVerb",
			value: `"a\n%d"`,
			check: func(t *testing.T, f *Format) {
				t.Helper()

				assert.False(t, f.EndsNewline)
				assert.Equal(t, 1, f.VerticalCount)
			},
		},
		{
			name:  "DoubledPercent",
			value: `"a%%b"`,
			check: func(t *testing.T, f *Format) {
				t.Helper()

				assert.Empty(t, f.Verbs)
				require.Len(t, f.Parts, 1)
				assert.Equal(t, "a%b", f.Parts[0].Text)
				assert.Equal(t, Span{Lo: 1, Hi: 5}, f.Parts[0].Src)
			},
		},
		{
			name:  "ExplicitIndex",
			value: `"%[1]s"`,
			check: func(t *testing.T, f *Format) {
				t.Helper()

				assert.True(t, f.AnyIndexed)
				require.Len(t, f.Verbs, 1)
				assert.True(t, f.Verbs[0].Indexed)
				assert.Equal(t, []int{0}, f.Verbs[0].Consumes)
			},
		},
		{
			name:  "StarWidth",
			value: `"%*d"`,
			check: func(t *testing.T, f *Format) {
				t.Helper()

				require.Len(t, f.Verbs, 1)
				assert.True(t, f.Verbs[0].HasWidth)
				assert.Equal(t, []int{0, 1}, f.Verbs[0].Consumes)
				assert.Equal(t, 2, f.NumConsumed)
			},
		},
		{
			name:  "WidthAndPrecision",
			value: `"%6.2f"`,
			check: func(t *testing.T, f *Format) {
				t.Helper()

				require.Len(t, f.Verbs, 1)
				assert.True(t, f.Verbs[0].HasWidth)
				assert.True(t, f.Verbs[0].HasPrec)
				assert.False(t, f.Verbs[0].Default())
				assert.Equal(t, []int{0}, f.Verbs[0].Consumes)
			},
		},
		{
			name:  "Flags",
			value: `"%#v"`,
			check: func(t *testing.T, f *Format) {
				t.Helper()

				require.Len(t, f.Verbs, 1)
				assert.Equal(t, 'v', f.Verbs[0].Letter)
				assert.Equal(t, "#", f.Verbs[0].Flags)
			},
		},
		{
			name:  "RawLiteral",
			value: "`a%sb`",
			check: func(t *testing.T, f *Format) {
				t.Helper()

				assert.True(t, f.Raw)
				require.Len(t, f.Verbs, 1)
				assert.Equal(t, 's', f.Verbs[0].Letter)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, ok := parseFormat(tt.value)

			require.True(t, ok)
			tt.check(t, f)
		})
	}
}

func TestParseFormatAbstains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "EscapedPercent", value: `"\x25d"`},
		{name: "EscapedVerbLetter", value: `"%\x64"`},
		{name: "UnknownVerb", value: `"%z"`},
		{name: "TrailingPercent", value: `"100%"`},
		{name: "UnterminatedIndex", value: `"%[1s"`},
		{name: "ZeroIndex", value: `"%[0]s"`},
		{name: "NotAString", value: `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := parseFormat(tt.value)

			assert.False(t, ok)
		})
	}
}
