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

package gclplugin

import optfmt "fillmore-labs.com/optfmt/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Map enables the manual-optional-mapping check.
	Map *bool `json:"map,omitzero"`
	// Newline enables the redundant-newline check.
	Newline *bool `json:"newline,omitzero"`
	// EmptyString enables the empty-string check.
	EmptyString *bool `json:"empty-string,omitzero"`
	// Literal enables the literal-inlining check.
	Literal *bool `json:"literal,omitzero"`
	// Debug enables the debug-formatting check.
	Debug *bool `json:"debug,omitzero"`
	// PrintCalls enables the print-call check.
	PrintCalls *bool `json:"print-calls,omitzero"`
	// Conservative restricts suggested fixes to machine-applicable rewrites.
	Conservative *bool `json:"conservative,omitzero"`
}

// Options converts [Settings] into a list of [optfmt.Option] for the optfmt analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []optfmt.Option {
	var opts []optfmt.Option

	opts = appendOption(opts, s.Map, optfmt.WithManualMap)
	opts = appendOption(opts, s.Newline, optfmt.WithNewline)
	opts = appendOption(opts, s.EmptyString, optfmt.WithEmptyString)
	opts = appendOption(opts, s.Literal, optfmt.WithLiteral)
	opts = appendOption(opts, s.Debug, optfmt.WithDebug)
	opts = appendOption(opts, s.PrintCalls, optfmt.WithPrintCalls)
	opts = appendOption(opts, s.Conservative, optfmt.WithConservative)

	return opts
}

// appendOption appends a non-nil setting to an [optfmt.Option] list.
func appendOption[T any](opts []optfmt.Option, value *T, constructor func(T) optfmt.Option) []optfmt.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
