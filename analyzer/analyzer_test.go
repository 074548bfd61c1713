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

package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/optfmt/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name: "MapFix",
			dir:  "./mapfix",
			fix:  true,
		},
		{
			name: "MapNoFix",
			dir:  "./mapnofix",
		},
		{
			name: "FmtFix",
			dir:  "./fmtfix",
			fix:  true,
		},
		{
			name: "FmtNoFix",
			dir:  "./fmtnofix",
		},
		{
			name:    "PrintCalls",
			dir:     "./printcalls",
			options: WithPrintCalls(true),
		},
		{
			name: "Rewritten",
			dir:  "./rewritten",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}
