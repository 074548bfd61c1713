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

// Package suggest synthesizes replacement text for recognized optional
// mappings.
package suggest

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/shape"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Synthesize produces the combinator call replacing a recognized manual
// mapping, e.g. `option.Map(o, func(v int) int { return v + 1 })`.
//
// The returned applicability is the minimum across all sub-decisions
// that contributed text. A false result is an abstention: no diagnostic
// should be raised at all.
func Synthesize(
	fset *token.FileSet, info *types.Info, pkg *types.Package, file *ast.File,
	current astutil.CurrentFile, cand *shape.Candidate,
) (string, Applicability, bool) {
	app := MachineApplicable

	mapRef, ok := combinatorRef(cand)
	if !ok {
		return "", Unspecified, false
	}

	scrutinee, scrApp, ok := scrutineeText(fset, cand)
	if !ok {
		return "", Unspecified, false
	}

	app = app.Min(scrApp)

	body, bodyApp, ok := bodyText(fset, info, pkg, file, current, cand)
	if !ok {
		return "", Unspecified, false
	}

	app = app.Min(bodyApp)

	return mapRef + "(" + scrutinee + ", " + body + ")", app, true
}

// combinatorRef derives the reference text for the Map combinator from
// the way the present constructor is spelled at the call site, keeping
// the rewrite inside the caller's namespace.
func combinatorRef(cand *shape.Candidate) (string, bool) {
	fun := astutil.PeelParens(cand.Ctor.Fun)

	// Peel explicit instantiations like option.Of[int].
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	switch f := astutil.PeelParens(fun).(type) {
	case *ast.SelectorExpr:
		pkg, ok := f.X.(*ast.Ident)
		if !ok {
			return "", false
		}

		return pkg.Name + "." + cand.Proto.MapName, true

	case *ast.Ident:
		// Same package or dot import.
		return cand.Proto.MapName, true

	default:
		return "", false
	}
}

// scrutineeText renders the scrutinee with deref adapters prepended for
// each pointer layer between its type and the optional value.
func scrutineeText(fset *token.FileSet, cand *shape.Candidate) (string, Applicability, bool) {
	text, ok := render(fset, cand.Scrutinee)
	if !ok {
		return "..", HasPlaceholders, true
	}

	if cand.RefDepth > 0 {
		if needsParens(cand.Scrutinee) {
			text = "(" + text + ")"
		}

		text = strings.Repeat("*", cand.RefDepth) + text
	}

	return text, MachineApplicable, true
}

// needsParens reports whether prefixing a deref operator to the
// expression would bind differently than intended.
func needsParens(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.BinaryExpr, *ast.KeyValueExpr:
		return true
	default:
		return false
	}
}

// bodyText implements the closure decision table: point-free form when
// the payload is a single function application of the binding, a
// synthesized closure otherwise, abstention for identity mappings.
func bodyText(
	fset *token.FileSet, info *types.Info, pkg *types.Package, file *ast.File,
	current astutil.CurrentFile, cand *shape.Candidate,
) (string, Applicability, bool) {
	payload := astutil.PeelParens(cand.Payload)

	// Identity mapping: `Of(v)` is a plain copy, not a map.
	if id, ok := payload.(*ast.Ident); ok && cand.BindVar != nil && info.Uses[id] == cand.BindVar {
		return "", Unspecified, false
	}

	if fn, ok := passAsFunc(fset, info, current, cand, payload); ok {
		return fn, MachineApplicable, true
	}

	qual := newQualifier(info, pkg, file)

	paramType, ok := qual.typeText(cand.ValueType)
	if !ok {
		return "", Unspecified, false
	}

	wrapped, ok := wrappedType(info, cand.Ctor)
	if !ok {
		return "", Unspecified, false
	}

	// The payload's recorded type is its final type: untyped constants
	// are recorded after conversion to the constructor's parameter type.
	// A mismatch means the constructor applied an implicit conversion the
	// combinator would not, e.g. Of[error](err) with a concrete err.
	if payloadType := info.TypeOf(cand.Payload); payloadType == nil || !types.Identical(payloadType, wrapped) {
		return "", Unspecified, false
	}

	resultType, ok := qual.typeText(wrapped)
	if !ok {
		return "", Unspecified, false
	}

	body, ok := render(fset, cand.Payload)
	app := MachineApplicable

	if !ok {
		body, app = "..", HasPlaceholders
	}

	return "func(" + cand.Binding.Name + " " + paramType + ") " + resultType + " { return " + body + " }",
		app, true
}

// passAsFunc checks whether the payload is a single application of a
// plain function to the binding, so the function can be passed to the
// combinator directly.
func passAsFunc(
	fset *token.FileSet, info *types.Info, current astutil.CurrentFile, cand *shape.Candidate, payload ast.Expr,
) (string, bool) {
	call, ok := payload.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || cand.BindVar == nil {
		return "", false
	}

	arg, ok := astutil.PeelParens(call.Args[0]).(*ast.Ident)
	if !ok || info.Uses[arg] != cand.BindVar {
		return "", false
	}

	fn := typeutil.StaticCallee(info, call)
	if fn == nil || fn.Origin().Type().(*types.Signature).TypeParams().Len() != 0 {
		return "", false // nothing static, or generic and not instantiable by name alone
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() != nil || sig.Variadic() || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return "", false
	}

	// The combinator applies no implicit conversions, so the parameter
	// type must match the binding exactly and the result must match the
	// constructor's instantiated type argument.
	if !types.Identical(sig.Params().At(0).Type(), cand.ValueType) {
		return "", false
	}

	wrapped, ok := wrappedType(info, cand.Ctor)
	if !ok || !types.Identical(sig.Results().At(0).Type(), wrapped) {
		return "", false
	}

	if !plainFuncRef(info, call.Fun) || !current.NodeSubstitutable(call.Fun) {
		return "", false
	}

	return render(fset, call.Fun)
}

// wrappedType extracts the type argument of the instantiated optional
// type the constructor call produces.
func wrappedType(info *types.Info, ctor *ast.CallExpr) (types.Type, bool) {
	named, ok := info.TypeOf(ctor).(*types.Named)
	if !ok || named.TypeArgs().Len() != 1 {
		return nil, false
	}

	return named.TypeArgs().At(0), true
}

// plainFuncRef accepts identifiers and package-qualified selectors.
// Method values are rejected: extracting them would reorder receiver
// evaluation.
func plainFuncRef(info *types.Info, fun ast.Expr) bool {
	switch f := astutil.PeelParens(fun).(type) {
	case *ast.Ident:
		return true

	case *ast.SelectorExpr:
		pkg, ok := f.X.(*ast.Ident)
		if !ok {
			return false
		}

		_, isPkg := info.Uses[pkg].(*types.PkgName)

		return isPkg

	default:
		return false
	}
}

// qualifier resolves packages to their import names in the given file.
// Packages the file does not import, and blank imports, set the missing
// flag when referenced.
type qualifier struct {
	pkg     *types.Package
	names   map[*types.Package]string
	missing bool
}

func newQualifier(info *types.Info, pkg *types.Package, file *ast.File) *qualifier {
	names := make(map[*types.Package]string, len(file.Imports))

	for _, imp := range file.Imports {
		pkgName := info.PkgNameOf(imp)
		if pkgName == nil {
			continue
		}

		name := pkgName.Name()
		if imp.Name != nil {
			name = imp.Name.Name
		}

		names[pkgName.Imported()] = name
	}

	return &qualifier{pkg: pkg, names: names}
}

func (q *qualifier) qualify(p *types.Package) string {
	if p == q.pkg {
		return ""
	}

	switch name := q.names[p]; name {
	case "":
		q.missing = true

		return p.Name()

	case ".":
		return ""

	case "_":
		q.missing = true

		return p.Name()

	default:
		return name
	}
}

// typeText renders a type for use in the file, failing when it
// references packages outside the file's import set or is untyped.
func (q *qualifier) typeText(typ types.Type) (string, bool) {
	if typ == nil {
		return "", false
	}

	if basic, ok := typ.(*types.Basic); ok && basic.Info()&types.IsUntyped != 0 {
		return "", false
	}

	q.missing = false
	text := types.TypeString(typ, q.qualify)

	return text, !q.missing
}

// render prints a node in raw format, as it would appear in source.
func render(fset *token.FileSet, node ast.Node) (string, bool) {
	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, fset, node); err != nil {
		return "", false
	}

	return buf.String(), true
}
