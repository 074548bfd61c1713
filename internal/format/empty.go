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
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/report"
	"fillmore-labs.com/optfmt/internal/suggest"
)

// CheckEmptyString detects a println-style call whose only value
// operand is the empty string: the call prints the line terminator with
// or without it.
func CheckEmptyString(fc *Call) (report.Finding, bool) {
	if !fc.Spec.IsLn || len(fc.Args) != 1 {
		return report.Finding{}, false
	}

	lit, ok := astutil.PeelParens(fc.Args[0]).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING || !emptyString(lit.Value) {
		return report.Finding{}, false
	}

	lo, hi := fc.deleteArg(0)

	return report.Finding{
		Code:       report.EmptyString,
		Pos:        fc.Call.Pos(),
		End:        fc.Call.End(),
		Message:    fmt.Sprintf("Empty string literal passed to %s", calleeRef(fc)),
		FixMessage: "Remove the empty string",
		Edits:      []analysis.TextEdit{{Pos: lo, End: hi}},
		App:        suggest.MachineApplicable,
	}, true
}

func emptyString(value string) bool {
	return value == `""` || value == "``"
}
