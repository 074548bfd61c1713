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

package astutil

import (
	"go/ast"
	"go/token"
)

// PeelParens removes any number of surrounding parentheses from an expression.
func PeelParens(expr ast.Expr) ast.Expr {
	for {
		paren, ok := expr.(*ast.ParenExpr)
		if !ok {
			return expr
		}

		expr = paren.X
	}
}

// PeelAddrOf removes leading address-of operators, returning the peeled
// expression and the number of layers removed. Parentheses between
// layers are peeled as well.
func PeelAddrOf(expr ast.Expr) (ast.Expr, int) {
	count := 0

	for {
		switch e := expr.(type) {
		case *ast.ParenExpr:
			expr = e.X

		case *ast.UnaryExpr:
			if e.Op != token.AND {
				return expr, count
			}

			expr = e.X
			count++

		default:
			return expr, count
		}
	}
}

// SingleStatement peels nested single-statement blocks, returning the
// innermost statement. A nil or empty block yields nil.
func SingleStatement(stmt ast.Stmt) ast.Stmt {
	for {
		block, ok := stmt.(*ast.BlockStmt)
		if !ok {
			return stmt
		}

		if len(block.List) != 1 {
			return nil
		}

		stmt = block.List[0]
	}
}

// IsGoStringMethod reports whether the function declaration is a
// `GoString() string` method, the [fmt.GoStringer] implementation that
// legitimately formats values in Go syntax.
func IsGoStringMethod(decl *ast.FuncDecl) bool {
	if decl == nil || decl.Recv == nil || decl.Name == nil || decl.Name.Name != "GoString" {
		return false
	}

	ft := decl.Type
	if ft.Params != nil && len(ft.Params.List) != 0 {
		return false
	}

	if ft.Results == nil || len(ft.Results.List) != 1 {
		return false
	}

	result, ok := ft.Results.List[0].Type.(*ast.Ident)

	return ok && result.Name == "string" && len(ft.Results.List[0].Names) == 0
}
