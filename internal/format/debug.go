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
	"strings"

	"fillmore-labs.com/optfmt/internal/report"
)

// CheckDebug detects Go-syntax %#v directives, which are debugging
// output rather than user-facing formatting.
//
// inGoString suppresses the check inside GoString implementations,
// where producing Go syntax is the point.
func CheckDebug(fc *Call, inGoString bool) []report.Finding {
	if fc.Format == nil || inGoString {
		return nil
	}

	var findings []report.Finding

	for _, v := range fc.Format.Verbs {
		if v.Letter != 'v' || !strings.ContainsRune(v.Flags, '#') {
			continue
		}

		lo, hi := fc.SpanPos(v.Src)

		findings = append(findings, report.Finding{
			Code:    report.Debug,
			Pos:     lo,
			End:     hi,
			Message: "Go-syntax formatting %#v used in output",
		})
	}

	return findings
}
