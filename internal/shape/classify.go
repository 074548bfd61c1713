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

package shape

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/optfmt/internal/astutil"
)

// Form describes the syntactic form of a recognized candidate.
type Form uint8

const (
	// FormAssign covers conditionals whose arms assign to the same variable.
	FormAssign Form = iota

	// FormReturn covers conditionals whose arms both return.
	FormReturn

	// FormTailReturn covers a return in the conditional body followed by
	// a sibling return statement instead of an else arm.
	FormTailReturn
)

// Candidate is a recognized manual optional mapping.
type Candidate struct {
	// If is the conditional being replaced.
	If *ast.IfStmt

	// Scrutinee is the receiver of the comma-ok accessor, with leading
	// address-of operators peeled.
	Scrutinee ast.Expr

	// RefDepth is the number of pointer layers between the scrutinee's
	// type and the optional value.
	RefDepth int

	// Binding is the comma-ok value binding; "_" for a wildcard payload.
	Binding *ast.Ident

	// BindVar is the object of Binding, nil for the blank identifier.
	BindVar *types.Var

	// OkVar is the object of the comma-ok boolean binding.
	OkVar *types.Var

	// Payload is the expression wrapped in the present constructor.
	Payload ast.Expr

	// Ctor is the present-constructor call wrapping Payload.
	Ctor *ast.CallExpr

	// ValueType is the payload binding's type (the closure parameter type).
	ValueType types.Type

	// Form is the recognized syntactic form.
	Form Form

	// Target is the assignment target for [FormAssign].
	Target *ast.Ident

	// Tail is the sibling return statement for [FormTailReturn].
	Tail *ast.ReturnStmt

	// Proto is the resolved option protocol.
	Proto Protocol
}

// End returns the end of the source range replaced by the rewrite.
func (c *Candidate) End() token.Pos {
	if c.Form == FormTailReturn {
		return c.Tail.End()
	}

	return c.If.End()
}

// Classify recognizes a manual optional mapping rooted at stmt.
//
// next is the statement following stmt in its enclosing block, if any;
// it completes the tail-return form. Classification is total: any
// unrecognized shape returns false and the caller abstains.
func Classify(info *types.Info, file astutil.CurrentFile, stmt *ast.IfStmt, next ast.Stmt) (*Candidate, bool) {
	c := &Candidate{If: stmt}

	if !classifyInit(info, c) {
		return nil, false
	}

	presentOnTrue, ok := classifyCond(info, stmt.Cond, c.OkVar)
	if !ok {
		return nil, false
	}

	thenStmt := astutil.SingleStatement(stmt.Body)
	if thenStmt == nil {
		return nil, false
	}

	var elseStmt ast.Stmt

	switch {
	case stmt.Else != nil:
		if elseStmt = astutil.SingleStatement(stmt.Else); elseStmt == nil {
			return nil, false // else-if chain or multi-statement arm
		}

	case next != nil:
		ret, ok := next.(*ast.ReturnStmt)
		if !ok {
			return nil, false
		}

		c.Form, c.Tail, elseStmt = FormTailReturn, ret, ret

	default:
		return nil, false
	}

	present, absent := thenStmt, elseStmt
	if !presentOnTrue {
		present, absent = absent, present
	}

	if !classifyArms(info, c, present, absent) {
		return nil, false
	}

	// Every piece of lifted text must share the hygiene context.
	for _, n := range []ast.Node{stmt, c.Scrutinee, c.Payload} {
		if !file.NodeSubstitutable(n) {
			return nil, false
		}
	}

	return c, true
}

// classifyInit recognizes the comma-ok destructuring
// `v, ok := scrutinee.Get()` in the conditional's init statement.
func classifyInit(info *types.Info, c *Candidate) bool {
	init, ok := c.If.Init.(*ast.AssignStmt)
	if !ok || init.Tok != token.DEFINE || len(init.Lhs) != 2 || len(init.Rhs) != 1 {
		return false
	}

	bind, ok := init.Lhs[0].(*ast.Ident)
	if !ok {
		return false
	}

	okIdent, ok := init.Lhs[1].(*ast.Ident)
	if !ok || okIdent.Name == "_" {
		return false
	}

	call, ok := astutil.PeelParens(init.Rhs[0]).(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	method, ok := info.Uses[sel.Sel].(*types.Func)
	if !ok || method.Type().(*types.Signature).Recv() == nil {
		return false
	}

	sig := method.Type().(*types.Signature)
	if sig.Params().Len() != 0 || sig.Results().Len() != 2 {
		return false
	}

	if basic, ok := sig.Results().At(1).Type().(*types.Basic); !ok || basic.Kind() != types.Bool {
		return false
	}

	scrutinee, _ := astutil.PeelAddrOf(sel.X)

	named, depth, ok := optionOrigin(info.TypeOf(scrutinee))
	if !ok {
		return false
	}

	proto, ok := resolveProtocol(named)
	if !ok {
		return false
	}

	okVar, ok := info.Defs[okIdent].(*types.Var)
	if !ok {
		return false
	}

	c.Scrutinee, c.RefDepth, c.Proto, c.OkVar = scrutinee, depth, proto, okVar
	c.Binding = bind
	c.ValueType = sig.Results().At(0).Type()

	if bind.Name != "_" {
		if c.BindVar, ok = info.Defs[bind].(*types.Var); !ok {
			return false
		}
	}

	return true
}

// classifyCond accepts `ok` or `!ok` conditions, reporting whether the
// present arm is the then branch.
func classifyCond(info *types.Info, cond ast.Expr, okVar *types.Var) (presentOnTrue, ok bool) {
	cond = astutil.PeelParens(cond)

	if not, isNot := cond.(*ast.UnaryExpr); isNot && not.Op == token.NOT {
		presentOnTrue = false
		cond = astutil.PeelParens(not.X)
	} else {
		presentOnTrue = true
	}

	id, isIdent := cond.(*ast.Ident)

	return presentOnTrue, isIdent && info.Uses[id] == okVar
}

// classifyArms validates that the present arm rebuilds a wrapped value
// and the absent arm produces the absent value, with both arms in the
// same syntactic form.
func classifyArms(info *types.Info, c *Candidate, present, absent ast.Stmt) bool {
	presentExpr, ok := armValue(info, c, present)
	if !ok {
		return false
	}

	absentExpr, ok := armValue(info, c, absent)
	if !ok {
		return false
	}

	ctor, payload, ok := ExtractWrapped(info, c.Proto, presentExpr)
	if !ok {
		return false
	}

	if !IsAbsentValue(info, c.Proto, absentExpr) {
		return false
	}

	c.Ctor, c.Payload = ctor, payload

	return true
}

// armValue extracts the value expression of an arm, enforcing matching
// forms between the arms. Assignment arms must target the same variable.
func armValue(info *types.Info, c *Candidate, arm ast.Stmt) (ast.Expr, bool) {
	switch arm := arm.(type) {
	case *ast.AssignStmt:
		if c.Form == FormReturn || c.Form == FormTailReturn {
			return nil, false
		}

		if arm.Tok != token.ASSIGN || len(arm.Lhs) != 1 || len(arm.Rhs) != 1 {
			return nil, false
		}

		target, ok := arm.Lhs[0].(*ast.Ident)
		if !ok || target.Name == "_" {
			return nil, false
		}

		if c.Target == nil {
			c.Target = target

			return arm.Rhs[0], true
		}

		// Both arms must assign to the same variable.
		return arm.Rhs[0], info.Uses[target] != nil && info.Uses[target] == info.Uses[c.Target]

	case *ast.ReturnStmt:
		if c.Target != nil || len(arm.Results) != 1 {
			return nil, false
		}

		if c.Form == FormAssign {
			c.Form = FormReturn
		}

		return arm.Results[0], true

	default:
		return nil, false
	}
}

// ExtractWrapped recognizes an expression wrapped in the present
// constructor after peeling parentheses, returning the constructor call
// and the contained expression.
func ExtractWrapped(info *types.Info, proto Protocol, expr ast.Expr) (ctor *ast.CallExpr, payload ast.Expr, ok bool) {
	call, isCall := astutil.PeelParens(expr).(*ast.CallExpr)
	if !isCall || len(call.Args) != 1 {
		return nil, nil, false
	}

	fn := calleeFunc(info, call)
	if fn == nil || fn.Pkg() != proto.Pkg() || !isPresentConstructor(fn.Origin(), proto.Option) {
		return nil, nil, false
	}

	return call, call.Args[0], true
}

// IsAbsentValue recognizes the absent value: an absent-constructor call
// or the empty composite literal of the optional type. Only parentheses
// are peeled, never pointers.
func IsAbsentValue(info *types.Info, proto Protocol, expr ast.Expr) bool {
	switch expr := astutil.PeelParens(expr).(type) {
	case *ast.CallExpr:
		if len(expr.Args) != 0 {
			return false
		}

		fn := calleeFunc(info, expr)

		return fn != nil && fn.Pkg() == proto.Pkg() && isAbsentConstructor(fn.Origin(), proto.Option)

	case *ast.CompositeLit:
		if len(expr.Elts) != 0 {
			return false
		}

		named, ok := info.TypeOf(expr).(*types.Named)

		return ok && named.Origin() == proto.Option

	default:
		return false
	}
}
