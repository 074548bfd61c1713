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
	"go/types"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/report"
)

// CheckPrintCall detects direct output to the process streams, a
// common debugging leftover. The log package is deliberately excluded;
// writing to standard error is what it is for.
func CheckPrintCall(info *types.Info, fc *Call) (report.Finding, bool) {
	var stream string

	switch {
	case fc.Spec.Stdout:
		stream = "output"

	case fc.Spec.Writer && len(fc.Call.Args) > 0:
		switch stdStream(info, fc.Call.Args[0]) {
		case "Stdout":
			stream = "output"

		case "Stderr":
			stream = "error"

		default:
			return report.Finding{}, false
		}

	default:
		return report.Finding{}, false
	}

	return report.Finding{
		Code:    report.PrintCall,
		Pos:     fc.Call.Pos(),
		End:     fc.Call.End(),
		Message: fmt.Sprintf("%s writes directly to standard %s", calleeRef(fc), stream),
	}, true
}

// stdStream resolves an expression to "Stdout" or "Stderr" when it
// names the corresponding os variable.
func stdStream(info *types.Info, expr ast.Expr) string {
	sel, ok := astutil.PeelParens(expr).(*ast.SelectorExpr)
	if !ok {
		return ""
	}

	v, ok := info.Uses[sel.Sel].(*types.Var)
	if !ok || v.Pkg() == nil || v.Pkg().Path() != "os" {
		return ""
	}

	switch v.Name() {
	case "Stdout", "Stderr":
		return v.Name()
	default:
		return ""
	}
}
