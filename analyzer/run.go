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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/config"
	"fillmore-labs.com/optfmt/internal/format"
	"fillmore-labs.com/optfmt/internal/optmap"
	"fillmore-labs.com/optfmt/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the optfmt checks.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("optfmt: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "OptFmt")
	defer task.End()

	// Remember the current file over all functions declared in it
	var currentFile astutil.CurrentFile

	root, types := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
	}

	// Loop over all function and method declarations
	root.Inspect(types, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			descend := r.behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

			return descend

		case *ast.FuncDecl:
			if node.Body == nil {
				return false
			}

			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Function declaration %s without file info", node.Name.Name)

				return false
			}

			// Skip functions with nolint comment
			if node.Doc != nil && astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1]) {
				return false
			}

			body := i.ChildAt(edge.FuncDecl_Body, -1)

			r.checkFunc(ctx, p, currentFile, node, body)

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}

// checkFunc runs all enabled checks over one function body.
//
// Whether the body belongs to a GoString implementation is decided here
// and passed down; nested function literals inherit the enclosing
// declaration's verdict, matching how their output surfaces.
func (r *runOptions) checkFunc(
	ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, decl *ast.FuncDecl, body inspector.Cursor,
) {
	defer trace.StartRegion(ctx, "CheckFunc").End()

	inGoString := astutil.IsGoStringMethod(decl)

	for c := range body.Preorder((*ast.IfStmt)(nil), (*ast.CallExpr)(nil)) {
		switch node := c.Node().(type) {
		case *ast.IfStmt:
			if !r.checks.Enabled(config.ManualMapCheck) {
				continue
			}

			if f, ok := optmap.Check(p, currentFile, node, nextStmt(c)); ok {
				report.Emit(p, currentFile, f, r.behavior)
			}

		case *ast.CallExpr:
			r.checkCall(p, currentFile, node, inGoString)
		}
	}
}

// nextStmt returns the statement following c in its enclosing statement
// list, if any.
func nextStmt(c inspector.Cursor) ast.Stmt {
	switch ek, _ := c.ParentEdge(); ek {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
		if sib, ok := c.NextSibling(); ok {
			if stmt, ok := sib.Node().(ast.Stmt); ok {
				return stmt
			}
		}
	}

	return nil
}

// checkCall runs the print-call checks over one call expression.
func (r *runOptions) checkCall(
	p *analysis.Pass, currentFile astutil.CurrentFile, call *ast.CallExpr, inGoString bool,
) {
	fc, ok := format.Decompose(p.TypesInfo, call)
	if !ok {
		return
	}

	if r.checks.Enabled(config.NewlineCheck) {
		if f, ok := format.CheckNewline(fc); ok {
			report.Emit(p, currentFile, f, r.behavior)
		}
	}

	if r.checks.Enabled(config.EmptyStringCheck) {
		if f, ok := format.CheckEmptyString(fc); ok {
			report.Emit(p, currentFile, f, r.behavior)
		}
	}

	if r.checks.Enabled(config.LiteralCheck) {
		for _, f := range format.CheckLiteral(p.TypesInfo, currentFile, fc) {
			report.Emit(p, currentFile, f, r.behavior)
		}
	}

	if r.checks.Enabled(config.DebugCheck) {
		for _, f := range format.CheckDebug(fc, inGoString) {
			report.Emit(p, currentFile, f, r.behavior)
		}
	}

	if r.checks.Enabled(config.PrintCallCheck) {
		if f, ok := format.CheckPrintCall(p.TypesInfo, fc); ok {
			report.Emit(p, currentFile, f, r.behavior)
		}
	}
}
