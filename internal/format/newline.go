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

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/report"
	"fillmore-labs.com/optfmt/internal/suggest"
)

// CheckNewline detects a format string ending in the newline the
// newline-appending counterpart, or the sink itself, would supply.
//
// The condition requires exactly one vertical-whitespace rune, so
// deliberately multi-line output is left alone.
func CheckNewline(fc *Call) (report.Finding, bool) {
	f := fc.Format
	if f == nil || !f.EndsNewline || f.VerticalCount != 1 {
		return report.Finding{}, false
	}

	if fc.Spec.Terminates {
		return trimNewline(fc), true
	}

	if fc.Spec.LnName == "" {
		return report.Finding{}, false
	}

	return renameToLn(fc), true
}

// trimNewline handles the self-terminating log family: the sink appends
// the newline, so the one in the format string doubles it. The call is
// kept as is, arguments and all.
func trimNewline(fc *Call) report.Finding {
	lo, hi := fc.SpanPos(fc.Format.TailSrc)

	return report.Finding{
		Code:       report.Newline,
		Pos:        fc.Call.Pos(),
		End:        fc.Call.End(),
		Message:    fmt.Sprintf("Format string of %s ends in a newline the logger appends anyway", calleeRef(fc)),
		FixMessage: "Remove the trailing newline",
		Edits:      []analysis.TextEdit{{Pos: lo, End: hi}},
		App:        suggest.MachineApplicable,
	}
}

// renameToLn handles the fmt family. The newline-appending counterparts
// do not interpret a format string, so the rewrite is only offered when
// neither directives nor arguments remain; otherwise the finding
// carries no fix.
func renameToLn(fc *Call) report.Finding {
	f := report.Finding{
		Code:    report.Newline,
		Pos:     fc.Call.Pos(),
		End:     fc.Call.End(),
		Message: fmt.Sprintf("Format string ends in a single newline, use %s", lnRef(fc)),
	}

	if len(fc.Args) > 0 || len(fc.Format.Verbs) > 0 {
		return f
	}

	f.FixMessage = fmt.Sprintf("Replace with %s", lnRef(fc))
	f.Edits = []analysis.TextEdit{renameEdit(fc), formatEdit(fc)}
	f.App = suggest.MachineApplicable

	return f
}

// renameEdit replaces the callee name with its newline-appending
// counterpart.
func renameEdit(fc *Call) analysis.TextEdit {
	name := fc.Spec.LnName

	switch fun := astutil.PeelParens(fc.Call.Fun).(type) {
	case *ast.SelectorExpr:
		return analysis.TextEdit{Pos: fun.Sel.Pos(), End: fun.Sel.End(), NewText: []byte(name)}

	default:
		return analysis.TextEdit{Pos: fun.Pos(), End: fun.End(), NewText: []byte(name)}
	}
}

// formatEdit trims the trailing newline, deleting the whole operand
// when nothing else remains in it.
func formatEdit(fc *Call) analysis.TextEdit {
	f := fc.Format

	if len(f.Parts) == 1 && f.Parts[0].Text == "\n" {
		lit := fc.Call.Args[fc.Spec.FormatIdx]
		if fc.Spec.FormatIdx > 0 {
			prev := fc.Call.Args[fc.Spec.FormatIdx-1]

			return analysis.TextEdit{Pos: prev.End(), End: lit.End()}
		}

		return analysis.TextEdit{Pos: lit.Pos(), End: lit.End()}
	}

	lo, hi := fc.SpanPos(f.TailSrc)

	return analysis.TextEdit{Pos: lo, End: hi}
}

// calleeRef renders the callee the way the call spells it.
func calleeRef(fc *Call) string {
	if sel, ok := astutil.PeelParens(fc.Call.Fun).(*ast.SelectorExpr); ok {
		if x, ok := sel.X.(*ast.Ident); ok {
			return x.Name + "." + sel.Sel.Name
		}

		return sel.Sel.Name
	}

	return fc.Fn.Name()
}

// lnRef renders the newline-appending counterpart in the call's
// namespace.
func lnRef(fc *Call) string {
	if sel, ok := astutil.PeelParens(fc.Call.Fun).(*ast.SelectorExpr); ok {
		if x, ok := sel.X.(*ast.Ident); ok {
			return x.Name + "." + fc.Spec.LnName
		}
	}

	return fc.Spec.LnName
}
