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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/optfmt/internal/config"
)

// Option configures specific behavior of a [New] optfmt analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithConservative is an [Option] to restrict suggested fixes to machine-applicable rewrites.
func WithConservative(conservative bool) Option {
	return conservativeOption{conservative: conservative}
}

type conservativeOption struct{ conservative bool }

func (o conservativeOption) apply(r *runOptions) {
	r.behavior.Set(config.Conservative, o.conservative)
}

func (o conservativeOption) LogAttr() slog.Attr {
	return slog.Bool("conservative", o.conservative)
}

// WithManualMap is an [Option] to configure whether the manual-map check is enabled.
func WithManualMap(manualMap bool) Option { return manualMapOption{manualMap: manualMap} }

type manualMapOption struct{ manualMap bool }

func (o manualMapOption) apply(r *runOptions) {
	r.checks.Set(config.ManualMapCheck, o.manualMap)
}

func (o manualMapOption) LogAttr() slog.Attr {
	return slog.Bool("map", o.manualMap)
}

// WithNewline is an [Option] to configure whether the redundant-newline check is enabled.
func WithNewline(newline bool) Option { return newlineOption{newline: newline} }

type newlineOption struct{ newline bool }

func (o newlineOption) apply(r *runOptions) {
	r.checks.Set(config.NewlineCheck, o.newline)
}

func (o newlineOption) LogAttr() slog.Attr {
	return slog.Bool("newline", o.newline)
}

// WithEmptyString is an [Option] to configure whether the empty-string check is enabled.
func WithEmptyString(emptyString bool) Option { return emptyStringOption{emptyString: emptyString} }

type emptyStringOption struct{ emptyString bool }

func (o emptyStringOption) apply(r *runOptions) {
	r.checks.Set(config.EmptyStringCheck, o.emptyString)
}

func (o emptyStringOption) LogAttr() slog.Attr {
	return slog.Bool("empty-string", o.emptyString)
}

// WithLiteral is an [Option] to configure whether the literal-inlining check is enabled.
func WithLiteral(literal bool) Option { return literalOption{literal: literal} }

type literalOption struct{ literal bool }

func (o literalOption) apply(r *runOptions) {
	r.checks.Set(config.LiteralCheck, o.literal)
}

func (o literalOption) LogAttr() slog.Attr {
	return slog.Bool("literal", o.literal)
}

// WithDebug is an [Option] to configure whether the debug-formatting check is enabled.
func WithDebug(debug bool) Option { return debugOption{debug: debug} }

type debugOption struct{ debug bool }

func (o debugOption) apply(r *runOptions) {
	r.checks.Set(config.DebugCheck, o.debug)
}

func (o debugOption) LogAttr() slog.Attr {
	return slog.Bool("debug", o.debug)
}

// WithPrintCalls is an [Option] to configure whether the print-call check is enabled.
// It is off by default.
func WithPrintCalls(printCalls bool) Option { return printCallsOption{printCalls: printCalls} }

type printCallsOption struct{ printCalls bool }

func (o printCallsOption) apply(r *runOptions) {
	r.checks.Set(config.PrintCallCheck, o.printCalls)
}

func (o printCallsOption) LogAttr() slog.Attr {
	return slog.Bool("print-calls", o.printCalls)
}
