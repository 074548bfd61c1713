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
	"strconv"
	"strings"
	"unicode"
)

// Span is a half-open byte range within a literal's source text,
// including its delimiters. Edits computed from spans splice into the
// literal without re-quoting it.
type Span struct {
	Lo, Hi int
}

// Part is a literal segment between verbs.
type Part struct {
	// Text is the decoded segment as it would be emitted.
	Text string

	// Src covers the segment's source bytes.
	Src Span
}

// Verb is a single formatting directive.
type Verb struct {
	// Src covers the directive from '%' through its letter.
	Src Span

	// Letter is the directive letter.
	Letter rune

	// Flags holds the directive's flag characters.
	Flags string

	// HasWidth and HasPrec report explicit width and precision.
	HasWidth, HasPrec bool

	// Indexed reports an explicit argument index.
	Indexed bool

	// Consumes lists the value-operand indexes the directive consumes,
	// star width and precision first.
	Consumes []int
}

// Default reports whether the directive is a bare verb with no flags,
// width, precision, or explicit index.
func (v Verb) Default() bool {
	return v.Flags == "" && !v.HasWidth && !v.HasPrec && !v.Indexed
}

// Format is a parsed format-string literal.
type Format struct {
	// Raw reports a backquoted literal.
	Raw bool

	// Parts are the non-empty literal segments in order.
	Parts []Part

	// Verbs are the formatting directives in order.
	Verbs []Verb

	// AnyIndexed reports explicit argument indexes anywhere; their
	// presence makes argument removal index-shifting unsound.
	AnyIndexed bool

	// NumConsumed is the number of value operands the directives
	// consume.
	NumConsumed int

	// VerticalCount counts vertical-whitespace runes across all
	// segments.
	VerticalCount int

	// EndsNewline reports a final segment ending in a newline that
	// follows every directive; TailSrc covers that newline's source
	// bytes.
	EndsNewline bool
	TailSrc     Span
}

// decoded is one emitted rune together with its source bytes. Escaped
// runes disqualify directive parsing, since an escape decoding to a
// directive character hides the directive from a source-level reader.
type decoded struct {
	r       rune
	lo, hi  int
	escaped bool
}

// decode expands a string-literal source text into its emitted runes.
func decode(value string) ([]decoded, bool, bool) {
	if len(value) < 2 {
		return nil, false, false
	}

	switch value[0] {
	case '`':
		var runes []decoded

		for i, r := range value[1 : len(value)-1] {
			if r == '\r' { // raw string literals discard carriage returns
				continue
			}

			runes = append(runes, decoded{r: r, lo: 1 + i, hi: 1 + i + len(string(r))})
		}

		return runes, true, true

	case '"':
		var runes []decoded

		rest := value[1 : len(value)-1]
		for pos := 0; len(rest) > 0; {
			r, _, tail, err := strconv.UnquoteChar(rest, '"')
			if err != nil {
				return nil, false, false
			}

			width := len(rest) - len(tail)
			runes = append(runes, decoded{r: r, lo: 1 + pos, hi: 1 + pos + width, escaped: rest[0] == '\\'})
			pos += width
			rest = tail
		}

		return runes, false, true

	default:
		return nil, false, false
	}
}

// verbLetters are the directive letters the fmt package documents.
const verbLetters = "vTtbcdoOqxXUeEfFgGsSpw"

// parseFormat parses a format literal's source text. It is total:
// malformed directives, escapes decoding to directive characters, and
// undecodable literals return false and the caller abstains.
func parseFormat(value string) (*Format, bool) {
	runes, raw, ok := decode(value)
	if !ok {
		return nil, false
	}

	f := &Format{Raw: raw}
	p := &parser{f: f, runes: runes}

	for p.pos < len(p.runes) {
		c := p.runes[p.pos]
		if c.r != '%' {
			p.text(c)
			p.pos++

			continue
		}

		if !p.verb() {
			return nil, false
		}
	}

	p.flushPart()
	p.tail(len(value) - 1)

	return f, true
}

type parser struct {
	f     *Format
	runes []decoded
	pos   int

	part    strings.Builder
	partLo  int
	partHi  int
	nextArg int
}

// text appends one rune to the current segment.
func (p *parser) text(c decoded) {
	if p.part.Len() == 0 {
		p.partLo = c.lo
	}

	p.part.WriteRune(c.r)
	p.partHi = c.hi

	if isVertical(c.r) {
		p.f.VerticalCount++
	}
}

func (p *parser) flushPart() {
	if p.part.Len() == 0 {
		return
	}

	p.f.Parts = append(p.f.Parts, Part{Text: p.part.String(), Src: Span{Lo: p.partLo, Hi: p.partHi}})
	p.part.Reset()
}

// tail records a trailing newline that follows every directive.
func (p *parser) tail(end int) {
	if len(p.runes) == 0 {
		return
	}

	last := p.runes[len(p.runes)-1]
	if last.r != '\n' || last.hi != end {
		return
	}

	if n := len(p.f.Parts); n == 0 || p.f.Parts[n-1].Src.Hi != last.hi {
		return
	}

	p.f.EndsNewline = true
	p.f.TailSrc = Span{Lo: last.lo, Hi: last.hi}
}

// next returns the rune after the cursor without consuming it.
func (p *parser) next(off int) (decoded, bool) {
	if p.pos+off >= len(p.runes) {
		return decoded{}, false
	}

	return p.runes[p.pos+off], true
}

// verb parses one directive starting at the '%' under the cursor.
func (p *parser) verb() bool {
	start := p.runes[p.pos]
	if start.escaped {
		return false
	}

	v := Verb{Src: Span{Lo: start.lo}}
	off := 1

	off, ok := p.verbFlags(&v, off)
	if !ok {
		return false
	}

	off, ok = p.verbIndex(&v, off)
	if !ok {
		return false
	}

	off, ok = p.verbWidthPrec(&v, off)
	if !ok {
		return false
	}

	c, ok := p.next(off)
	if !ok || c.escaped {
		return false
	}

	// A doubled percent emits a literal '%' and consumes nothing.
	if c.r == '%' && v.Default() {
		p.text(decoded{r: '%', lo: start.lo, hi: c.hi})
		p.pos += off + 1

		return true
	}

	if !strings.ContainsRune(verbLetters, c.r) {
		return false
	}

	v.Letter = c.r
	v.Src.Hi = c.hi
	v.Consumes = append(v.Consumes, p.nextArg)
	p.nextArg++

	if p.nextArg > p.f.NumConsumed {
		p.f.NumConsumed = p.nextArg
	}

	p.flushPart()
	p.f.Verbs = append(p.f.Verbs, v)
	p.pos += off + 1

	return true
}

func (p *parser) verbFlags(v *Verb, off int) (int, bool) {
	for {
		c, ok := p.next(off)
		if !ok {
			return 0, false
		}

		if c.escaped || !strings.ContainsRune("+-# 0", c.r) {
			return off, true
		}

		v.Flags += string(c.r)
		off++
	}
}

func (p *parser) verbIndex(v *Verb, off int) (int, bool) {
	c, ok := p.next(off)
	if !ok {
		return 0, false
	}

	if c.escaped || c.r != '[' {
		return off, true
	}

	off++
	idx := 0
	digits := 0

	for {
		c, ok := p.next(off)
		if !ok || c.escaped {
			return 0, false
		}

		if c.r == ']' {
			break
		}

		if c.r < '0' || c.r > '9' {
			return 0, false
		}

		idx = idx*10 + int(c.r-'0')
		digits++
		off++
	}

	if digits == 0 || idx == 0 {
		return 0, false
	}

	v.Indexed = true
	p.f.AnyIndexed = true
	p.nextArg = idx - 1

	return off + 1, true
}

func (p *parser) verbWidthPrec(v *Verb, off int) (int, bool) {
	off, star, any, ok := p.number(off)
	if !ok {
		return 0, false
	}

	v.HasWidth = any
	if star {
		v.Consumes = append(v.Consumes, p.nextArg)
		p.nextArg++
	}

	c, hasDot := p.next(off)
	if !hasDot || c.escaped || c.r != '.' {
		return off, true
	}

	off, star, _, ok = p.number(off + 1)
	if !ok {
		return 0, false
	}

	v.HasPrec = true
	if star {
		v.Consumes = append(v.Consumes, p.nextArg)
		p.nextArg++
	}

	return off, true
}

// number consumes a digit run or a star.
func (p *parser) number(off int) (rest int, star, any, ok bool) {
	c, exists := p.next(off)
	if !exists {
		return 0, false, false, false
	}

	if c.escaped {
		return off, false, false, true
	}

	if c.r == '*' {
		return off + 1, true, true, true
	}

	for {
		c, exists := p.next(off)
		if !exists || c.escaped || c.r < '0' || c.r > '9' {
			return off, false, any, true
		}

		any = true
		off++
	}
}

func isVertical(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085':
		return true
	default:
		return unicode.Is(unicode.Zl, r) || unicode.Is(unicode.Zp, r)
	}
}
