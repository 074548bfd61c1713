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
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Protocol is the resolved option protocol at a candidate site.
type Protocol struct {
	// Option is the origin (uninstantiated) optional type.
	Option *types.Named

	// MapName is the name of the Map combinator exported by the option package.
	MapName string
}

// Pkg returns the package declaring the optional type.
func (p Protocol) Pkg() *types.Package {
	return p.Option.Obj().Pkg()
}

// resolveProtocol resolves the option protocol from the scrutinee's
// optional type. It returns false when the type's package exports no
// suitable Map combinator.
func resolveProtocol(option *types.Named) (Protocol, bool) {
	origin := option.Origin()

	pkg := origin.Obj().Pkg()
	if pkg == nil {
		return Protocol{}, false // universe type
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		if isMapCombinator(fn, origin) {
			return Protocol{Option: origin, MapName: name}, true
		}
	}

	return Protocol{}, false
}

// isMapCombinator reports whether fn has the shape
// func[T, U any](O[T], func(T) U) O[U].
func isMapCombinator(fn *types.Func, origin *types.Named) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Variadic() {
		return false
	}

	tparams := sig.TypeParams()
	if tparams.Len() != 2 || sig.Params().Len() != 2 || sig.Results().Len() != 1 {
		return false
	}

	t, u := tparams.At(0), tparams.At(1)

	if !isOptionOf(sig.Params().At(0).Type(), origin, t) {
		return false
	}

	f, ok := sig.Params().At(1).Type().(*types.Signature)
	if !ok || f.Params().Len() != 1 || f.Results().Len() != 1 || f.Variadic() {
		return false
	}

	if !isTypeParam(f.Params().At(0).Type(), t) || !isTypeParam(f.Results().At(0).Type(), u) {
		return false
	}

	return isOptionOf(sig.Results().At(0).Type(), origin, u)
}

// isPresentConstructor reports whether fn has the shape func[T any](T) O[T].
func isPresentConstructor(fn *types.Func, origin *types.Named) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Variadic() || sig.Recv() != nil {
		return false
	}

	tparams := sig.TypeParams()
	if tparams.Len() != 1 || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	t := tparams.At(0)

	return isTypeParam(sig.Params().At(0).Type(), t) && isOptionOf(sig.Results().At(0).Type(), origin, t)
}

// isAbsentConstructor reports whether fn has the shape func[T any]() O[T].
func isAbsentConstructor(fn *types.Func, origin *types.Named) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() != nil {
		return false
	}

	return sig.TypeParams().Len() == 1 && sig.Params().Len() == 0 && sig.Results().Len() == 1 &&
		isOptionOf(sig.Results().At(0).Type(), origin, sig.TypeParams().At(0))
}

// isOptionOf reports whether typ is O[t] for the given origin O and type parameter t.
func isOptionOf(typ types.Type, origin *types.Named, t *types.TypeParam) bool {
	named, ok := typ.(*types.Named)
	if !ok || named.Origin() != origin {
		return false
	}

	args := named.TypeArgs()

	return args.Len() == 1 && isTypeParam(args.At(0), t)
}

func isTypeParam(typ types.Type, t *types.TypeParam) bool {
	p, ok := typ.(*types.TypeParam)

	return ok && p == t
}

// optionOrigin peels pointer layers from typ and returns the named
// origin type together with the pointer depth, or false for unnamed
// scrutinee types.
func optionOrigin(typ types.Type) (*types.Named, int, bool) {
	depth := 0

	for {
		if ptr, ok := typ.Underlying().(*types.Pointer); ok {
			typ = ptr.Elem()
			depth++

			continue
		}

		named, ok := typ.(*types.Named)
		if !ok {
			return nil, 0, false
		}

		return named, depth, true
	}
}

// calleeFunc resolves the called function of an expression, peeling
// explicit instantiations.
func calleeFunc(info *types.Info, call *ast.CallExpr) *types.Func {
	return typeutil.StaticCallee(info, call)
}
