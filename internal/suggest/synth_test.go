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

package suggest_test

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/shape"
	. "fillmore-labs.com/optfmt/internal/suggest"
	"fillmore-labs.com/optfmt/internal/testsource"
)

const synthSrc = `
type Option[T any] struct {
	value T
	ok    bool
}

func Of[T any](value T) Option[T] { return Option[T]{value: value, ok: true} }

func Empty[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Of(fn(v))
	}
	return Empty[U]()
}

func str(v int) string { return "" }

func incr(o Option[int]) Option[int] {
	if v, ok := o.Get(); ok {
		return Of(v + 1)
	}
	return Empty[int]()
}

func toStr(o Option[int]) Option[string] {
	if v, ok := o.Get(); ok {
		return Of(str(v))
	}
	return Empty[string]()
}

func identity(o Option[int]) Option[int] {
	if v, ok := o.Get(); ok {
		return Of(v)
	}
	return Empty[int]()
}

func ptr(p *Option[int]) Option[int] {
	if v, ok := p.Get(); ok {
		return Of(v + 1)
	}
	return Empty[int]()
}

func wild(o Option[int]) Option[string] {
	if _, ok := o.Get(); ok {
		return Of("set")
	}
	return Empty[string]()
}
`

func TestSynthesize(t *testing.T) {
	t.Parallel()

	fset, f, _, _ := testsource.ParseFile(t, synthSrc)
	pkg, info := testsource.Check(t, fset, f)
	current := astutil.NewCurrentFile(fset, f)

	tests := []struct {
		name string
		fn   string
		ok   bool
		want string
		app  Applicability
	}{
		{
			name: "Closure",
			fn:   "incr",
			ok:   true,
			want: "Map(o, func(v int) int { return v + 1 })",
			app:  MachineApplicable,
		},
		{
			name: "PointFree",
			fn:   "toStr",
			ok:   true,
			want: "Map(o, str)",
			app:  MachineApplicable,
		},
		{
			name: "Identity",
			fn:   "identity",
		},
		{
			name: "PointerScrutinee",
			fn:   "ptr",
			ok:   true,
			want: "Map(*p, func(v int) int { return v + 1 })",
			app:  MachineApplicable,
		},
		{
			name: "WildcardBinding",
			fn:   "wild",
			ok:   true,
			want: `Map(o, func(_ int) string { return "set" })`,
			app:  MachineApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmt, next := findConditional(t, f, tt.fn)

			cand, ok := shape.Classify(info, current, stmt, next)
			require.True(t, ok)

			text, app, ok := Synthesize(fset, info, pkg, f, current, cand)

			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}

			assert.Equal(t, tt.want, text)
			assert.Equal(t, tt.app, app)
		})
	}
}

func findConditional(tb testing.TB, f *ast.File, name string) (stmt *ast.IfStmt, next ast.Stmt) {
	tb.Helper()

	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name.Name != name {
			continue
		}

		for i, s := range fn.Body.List {
			ifStmt, ok := s.(*ast.IfStmt)
			if !ok {
				continue
			}

			if i+1 < len(fn.Body.List) {
				next = fn.Body.List[i+1]
			}

			return ifStmt, next
		}
	}

	tb.Fatalf("no conditional in function %q", name)

	return nil, nil
}
