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

// Package optmap detects hand-written conditionals equivalent to
// mapping over an optional value and rewrites them to the type's Map
// combinator.
package optmap

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/capture"
	"fillmore-labs.com/optfmt/internal/report"
	"fillmore-labs.com/optfmt/internal/shape"
	"fillmore-labs.com/optfmt/internal/suggest"
)

// Check inspects one if statement.
//
// next is the statement following it in the enclosing block, if any,
// completing the tail-return form. Check is total: every unrecognized
// or unsafe shape returns false.
func Check(p *analysis.Pass, current astutil.CurrentFile, stmt *ast.IfStmt, next ast.Stmt) (report.Finding, bool) {
	info := p.TypesInfo

	cand, ok := shape.Classify(info, current, stmt, next)
	if !ok {
		return report.Finding{}, false
	}

	// The comma-ok boolean has no equivalent inside the closure, and a
	// payload writing to the scrutinee's root binding would interleave
	// with the combinator's own read of it.
	captures, ok := capture.Compute(info, cand.Payload, cand.OkVar)
	if !ok || capture.Conflicts(info, cand.Scrutinee, captures) {
		return report.Finding{}, false
	}

	text, app, ok := suggest.Synthesize(p.Fset, info, p.Pkg, current.File(), current, cand)
	if !ok {
		return report.Finding{}, false
	}

	replacement := replacementFor(cand, text)

	return report.Finding{
		Code:       report.ManualMap,
		Pos:        cand.If.Pos(),
		End:        cand.End(),
		Message:    fmt.Sprintf("Conditional re-wraps an optional value, use %s", cand.Proto.MapName),
		FixMessage: fmt.Sprintf("Replace with %s", text),
		Edits: []analysis.TextEdit{
			{Pos: cand.If.Pos(), End: cand.End(), NewText: []byte(replacement)},
		},
		App: app,
	}, true
}

// replacementFor renders the full statement replacing the conditional.
func replacementFor(cand *shape.Candidate, text string) string {
	switch cand.Form {
	case shape.FormAssign:
		return cand.Target.Name + " = " + text

	default:
		return "return " + text
	}
}
