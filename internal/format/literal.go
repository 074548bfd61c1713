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
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/report"
	"fillmore-labs.com/optfmt/internal/suggest"
)

// CheckLiteral detects literal arguments that can be folded into the
// format string.
//
// A candidate argument is consumed exactly once, by a bare default
// directive matching its kind. Explicit argument indexes anywhere in
// the format string disable the check, since removing an argument
// shifts the indexes of everything after it.
func CheckLiteral(info *types.Info, current astutil.CurrentFile, fc *Call) []report.Finding {
	f := fc.Format
	if f == nil || f.AnyIndexed {
		return nil
	}

	var findings []report.Finding

	for _, v := range f.Verbs {
		if !v.Default() || len(v.Consumes) != 1 {
			continue
		}

		idx := v.Consumes[0]

		arg := fc.Args[idx]
		if !current.NodeSubstitutable(arg) || fc.refCount(idx) != 1 {
			continue
		}

		text, outcome := inlineText(info, astutil.PeelParens(arg), v.Letter, f.Raw)
		if outcome == Abstain {
			continue
		}

		finding := report.Finding{
			Code:    report.Literal,
			Pos:     arg.Pos(),
			End:     arg.End(),
			Message: "Literal argument can be inlined into the format string",
		}

		if outcome == Fixable {
			lo, hi := fc.SpanPos(v.Src)
			dlo, dhi := fc.deleteArg(idx)

			finding.FixMessage = "Inline the literal"
			finding.Edits = []analysis.TextEdit{
				{Pos: lo, End: hi, NewText: []byte(text)},
				{Pos: dlo, End: dhi},
			}
			finding.App = suggest.MachineApplicable
		}

		findings = append(findings, finding)
	}

	return findings
}

// inlineText renders a literal argument as format-string content,
// escaped for the target literal kind, with percent signs doubled.
func inlineText(info *types.Info, arg ast.Expr, letter rune, raw bool) (string, Outcome) {
	switch arg := arg.(type) {
	case *ast.BasicLit:
		switch arg.Kind {
		case token.STRING:
			if letter != 's' && letter != 'v' {
				return "", Abstain
			}

			return inlineString(arg.Value, raw)

		case token.CHAR:
			if letter != 'c' {
				return "", Abstain
			}

			return inlineChar(arg.Value, raw)

		default:
			return "", Abstain
		}

	case *ast.Ident:
		// The predeclared booleans print as their names.
		if letter != 't' && letter != 'v' {
			return "", Abstain
		}

		if info.Uses[arg] != types.Universe.Lookup(arg.Name) {
			return "", Abstain
		}

		return arg.Name, Fixable

	default:
		return "", Abstain
	}
}

// inlineString converts a string literal's source text for insertion,
// crossing literal kinds where necessary.
func inlineString(value string, raw bool) (string, Outcome) {
	if len(value) < 2 {
		return "", Abstain
	}

	body := value[1 : len(value)-1]

	switch {
	case value[0] == '`' && raw:
		// Both raw; carriage returns are discarded either way.
		return doublePercent(strings.ReplaceAll(body, "\r", "")), Fixable

	case value[0] == '`':
		// Raw source into an interpreted format: re-escape.
		return doublePercent(quoteBody(strings.ReplaceAll(body, "\r", ""))), Fixable

	case raw:
		// Interpreted source into a raw format.
		text, outcome := Unescape(body)

		return doublePercent(text), outcome

	default:
		// Both interpreted; the body is already escaped. An escape
		// decoding to a percent sign would assemble a directive at
		// run time, so those abstain.
		if escapedPercent(body) {
			return "", Abstain
		}

		return doublePercent(body), Fixable
	}
}

// inlineChar converts a rune literal for insertion under a %c verb.
func inlineChar(value string, raw bool) (string, Outcome) {
	if len(value) < 2 {
		return "", Abstain
	}

	r, _, tail, err := strconv.UnquoteChar(value[1:len(value)-1], '\'')
	if err != nil || tail != "" {
		return "", Abstain
	}

	if raw {
		switch r {
		case '`':
			return "", LintOnly

		case '\r':
			return "", Abstain

		case '%':
			return "%%", Fixable

		default:
			return string(r), Fixable
		}
	}

	return doublePercent(quoteBody(string(r))), Fixable
}

// quoteBody escapes text for an interpreted string literal.
func quoteBody(s string) string {
	q := strconv.Quote(s)

	return q[1 : len(q)-1]
}

// doublePercent escapes percent signs for format-string context.
func doublePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// escapedPercent reports an escape sequence decoding to '%' in an
// interpreted literal body.
func escapedPercent(body string) bool {
	for len(body) > 0 {
		r, _, tail, err := strconv.UnquoteChar(body, '"')
		if err != nil {
			return true // undecodable, treat as unsafe
		}

		if r == '%' && body[0] == '\\' {
			return true
		}

		body = tail
	}

	return false
}
