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

// Package capture approximates how outer bindings would be captured if
// an expression were relocated into a closure.
//
// The analysis is a deliberate under-approximation: it abstains on
// anything it cannot prove relocatable, so callers never emit an unsound
// rewrite. Refinements must keep this fail-closed bias.
package capture

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/optfmt/internal/astutil"
)

// Kind describes how a binding would be captured.
type Kind uint8

const (
	// Read marks a binding that is only read.
	Read Kind = iota

	// Write marks a binding that is assigned, incremented, or has its
	// address taken. Address-taking is treated as a write because the
	// resulting pointer may outlive the inspected expression.
	Write
)

// Captures maps outer bindings to the strongest capture observed.
type Captures map[*types.Var]Kind

// Compute walks expr and reports how each outer binding would be
// captured by a closure containing it.
//
// forbidden lists bindings with no closure equivalent (the comma-ok
// boolean of the destructured conditional); any reference to one makes
// the expression non-relocatable and Compute returns false.
func Compute(info *types.Info, expr ast.Expr, forbidden ...*types.Var) (Captures, bool) {
	w := &walker{
		info:      info,
		captures:  make(Captures),
		forbidden: forbidden,
		lo:        expr.Pos(),
		hi:        expr.End(),
	}

	w.expr(expr)

	if !w.ok {
		return nil, false
	}

	return w.captures, true
}

type walker struct {
	info      *types.Info
	captures  Captures
	forbidden []*types.Var
	lo, hi    token.Pos
	ok        bool
}

func (w *walker) expr(expr ast.Expr) {
	w.ok = true

	ast.Inspect(expr, func(n ast.Node) bool {
		if !w.ok {
			return false
		}

		switch n := n.(type) {
		case *ast.Ident:
			w.use(n, Read)

		case *ast.UnaryExpr:
			if n.Op == token.AND {
				w.write(n.X)
			}

		case *ast.AssignStmt:
			// Only reachable inside nested function literals.
			for _, lhs := range n.Lhs {
				w.write(lhs)
			}

		case *ast.IncDecStmt:
			w.write(n.X)
		}

		return true
	})
}

// use records a capture for identifiers resolving to bindings declared
// outside the inspected expression.
func (w *walker) use(id *ast.Ident, kind Kind) {
	v, ok := w.info.Uses[id].(*types.Var)
	if !ok || v.IsField() {
		return
	}

	if v.Pos() >= w.lo && v.Pos() < w.hi {
		return // declared within the expression, not a capture
	}

	for _, f := range w.forbidden {
		if v == f {
			w.ok = false

			return
		}
	}

	if kind > w.captures[v] {
		w.captures[v] = kind
	}
}

// write records a write capture for the root binding of an lvalue chain.
func (w *walker) write(expr ast.Expr) {
	if id, ok := Root(expr); ok {
		w.use(id, Write)
	}
}

// Root peels an expression through field selections, indexes, derefs and
// address-of operators down to its innermost identifier.
func Root(expr ast.Expr) (*ast.Ident, bool) {
	for {
		switch e := astutil.PeelParens(expr).(type) {
		case *ast.Ident:
			return e, true

		case *ast.SelectorExpr:
			expr = e.X

		case *ast.IndexExpr:
			expr = e.X

		case *ast.StarExpr:
			expr = e.X

		case *ast.UnaryExpr:
			if e.Op != token.AND {
				return nil, false
			}

			expr = e.X

		default:
			return nil, false
		}
	}
}

// Conflicts reports whether relocating an expression with the given
// captures would conflict with the scrutinee it is destructured from.
//
// The scrutinee is peeled to its root binding; a write capture of that
// root rejects the rewrite. Plain reads never conflict.
func Conflicts(info *types.Info, scrutinee ast.Expr, captures Captures) bool {
	id, ok := Root(scrutinee)
	if !ok {
		return false // no single root binding to conflict with
	}

	v, ok := info.Uses[id].(*types.Var)
	if !ok {
		return false
	}

	return captures[v] == Write
}
