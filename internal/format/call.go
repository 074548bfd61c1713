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

// Package format analyzes calls to the standard print-like functions:
// redundant newlines, empty operands, literal arguments that belong in
// the format string, and leftover debug formatting.
package format

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/optfmt/internal/astutil"
)

// Call is a decomposed call to a known print-like function.
type Call struct {
	// Call is the call expression.
	Call *ast.CallExpr

	// Fn is the resolved callee.
	Fn *types.Func

	// Spec describes the callee.
	Spec Spec

	// Lit is the format operand, nil for unformatted functions.
	Lit *ast.BasicLit

	// Format is the parsed format literal, nil for unformatted
	// functions.
	Format *Format

	// Args are the value operands following the format operand.
	Args []ast.Expr
}

// Decompose identifies call against the table of print-like functions
// and parses its format operand.
//
// It is total: unknown callees, spread calls, non-literal or malformed
// format operands, and operand/directive arity mismatches all return
// false. A false result is an abstention, never an error.
func Decompose(info *types.Info, call *ast.CallExpr) (*Call, bool) {
	if call.Ellipsis.IsValid() {
		return nil, false
	}

	fn := typeutil.StaticCallee(info, call)
	if fn == nil {
		return nil, false
	}

	spec, ok := specs[fn.FullName()]
	if !ok {
		return nil, false
	}

	fc := &Call{Call: call, Fn: fn, Spec: spec}

	if !spec.Formatted() {
		if len(call.Args) < spec.ArgStart {
			return nil, false
		}

		fc.Args = call.Args[spec.ArgStart:]

		return fc, true
	}

	if len(call.Args) <= spec.FormatIdx {
		return nil, false
	}

	lit, ok := astutil.PeelParens(call.Args[spec.FormatIdx]).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return nil, false
	}

	f, ok := parseFormat(lit.Value)
	if !ok {
		return nil, false
	}

	fc.Lit, fc.Format = lit, f
	fc.Args = call.Args[spec.FormatIdx+1:]

	// The host fmt call would print a %! error for mismatched arity;
	// such calls are broken in a way no rewrite here addresses.
	if f.NumConsumed != len(fc.Args) {
		return nil, false
	}

	return fc, true
}

// SpanPos converts a span within the format literal to token positions.
func (fc *Call) SpanPos(s Span) (token.Pos, token.Pos) {
	return fc.Lit.ValuePos + token.Pos(s.Lo), fc.Lit.ValuePos + token.Pos(s.Hi)
}

// refCount is the number of directives consuming the value operand at
// the given index.
func (fc *Call) refCount(idx int) int {
	n := 0

	for _, v := range fc.Format.Verbs {
		for _, c := range v.Consumes {
			if c == idx {
				n++
			}
		}
	}

	return n
}

// deleteArg is the source range removing the value operand at the given
// index, including the separating comma.
func (fc *Call) deleteArg(idx int) (token.Pos, token.Pos) {
	args := fc.Call.Args
	off := len(args) - len(fc.Args) + idx

	if off > 0 {
		return args[off-1].End(), args[off].End()
	}

	if len(args) > 1 {
		return args[0].Pos(), args[1].Pos()
	}

	return args[0].Pos(), args[0].End()
}
