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

// Package report turns findings into diagnostics, applying the fix
// attachment policy and nolint suppression.
package report

import (
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/optfmt/internal/astutil"
	"fillmore-labs.com/optfmt/internal/config"
	"fillmore-labs.com/optfmt/internal/suggest"
)

// Finding is one detected issue, possibly carrying a rewrite.
type Finding struct {
	// Code identifies the check that produced the finding.
	Code Code

	// Pos and End delimit the reported source range.
	Pos, End token.Pos

	// Message is the diagnostic text, without the trailing code tag.
	Message string

	// Related carries additional source locations shown with the
	// diagnostic.
	Related []analysis.RelatedInformation

	// FixMessage describes the suggested fix; defaults to Message.
	FixMessage string

	// Edits are the fix's text edits; empty when no rewrite exists.
	Edits []analysis.TextEdit

	// App rates how safely the edits can be applied.
	App suggest.Applicability
}

// Emit reports the finding on the pass.
//
// A suggested fix is attached only when the finding's applicability
// meets the threshold: [suggest.MaybeIncorrect] by default,
// [suggest.MachineApplicable] under conservative behavior. Findings
// suppressed with a //nolint comment on their line are dropped.
func Emit(p *analysis.Pass, file astutil.CurrentFile, f Finding, option config.BitMask[config.Behavior]) {
	if file.NoLintComment(f.Pos) {
		return
	}

	diagnostic := analysis.Diagnostic{
		Pos:     f.Pos,
		End:     f.End,
		Message: fmt.Sprintf("%s (of:%s)", f.Message, f.Code),
		Related: f.Related,
	}

	threshold := suggest.MaybeIncorrect
	if option.Enabled(config.Conservative) {
		threshold = suggest.MachineApplicable
	}

	if len(f.Edits) > 0 && f.App >= threshold {
		if !editsDisjoint(f.Edits) {
			astutil.InternalError(p, span{f.Pos, f.End}, "Overlapping text edits for %s", f.Code)

			return
		}

		message := f.FixMessage
		if message == "" {
			message = f.Message
		}

		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: message, TextEdits: f.Edits}}
	}

	p.Report(diagnostic)
}

type span struct {
	pos, end token.Pos
}

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }

// editsDisjoint verifies that no two edits overlap; the analysis host
// rejects fixes with overlapping edits wholesale.
func editsDisjoint(edits []analysis.TextEdit) bool {
	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b analysis.TextEdit) int { return int(a.Pos - b.Pos) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Pos < sorted[i-1].End {
			return false
		}
	}

	return true
}
