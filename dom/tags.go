// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dom is a small formatting document model used to lay out generated
// build scripts.
//
// A document is a flat sequence of [Tag]s: text, indentation scopes and
// groups. The function [Render] lays the document out and prints it.
//
// Whitespace-only text is special. Runs of spaces or newlines that are
// adjacent keep only the longest run, so a printer may request a blank line
// (two newlines) without tracking whether the previous line already ended.
// This is what makes blank-line separators idempotent.
//
// A [Group] can be rendered "flat" or "broken". The layout engine breaks a
// group when it contains a newline or when laying it out flat would go past
// [Options.MaxWidth]. Tags made with [TextIf] render only in one of those
// orientations, which is how optional line breaks are expressed.
package dom

import (
	"math"

	"github.com/bufbuild/buildinit/internal/ext/stringsx"
)

// Render renders a document consisting of the given sequence of tags.
func Render(options Options, content func(push Sink)) string {
	d := new(dom)
	content(d.add)
	return render(options, d)
}

// Options specifies configuration for [Render].
type Options struct {
	// The maximum number of columns to render before triggering
	// a break. A value of zero implies an infinite width.
	MaxWidth int

	// The number of columns a tab character counts as. Defaults to 1.
	TabstopWidth int
}

// WithDefaults replaces any unset (read: zero value) fields of an Options which
// specify a default value with that default value.
func (o Options) WithDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = math.MaxInt
	}
	if o.TabstopWidth == 0 {
		o.TabstopWidth = 1
	}
	return o
}

// Tag is a formatting directive appended to a document.
//
// The nil tag is equivalent to Text("").
type Tag func(*dom)

// Sink is a place to append tags. The given tags will be appended to whatever
// context the sink was created for.
//
// Functions in this package that take a func(push Sink) run the callback in
// the context of the new tag. The sink must not be used after the callback
// returns.
type Sink func(...Tag)

const (
	Always Cond = iota
	Flat        // Render only in a flat group.
	Broken      // Render only in a broken group.
)

// Cond is a condition for a tag.
type Cond byte

// Text returns a tag that emits its text exactly.
//
// If text consists only of spaces (U+0020) or only of newlines (U+000A),
// adjacent runs are merged: a space run next to a newline run is dropped, and
// of two runs of the same rune only the longer one is kept.
func Text(text string) Tag {
	return TextIf(Always, text)
}

// TextIf is like [Text], but with a condition attached.
//
// If the condition does not hold in the containing group, this tag expands to
// nothing. The outermost level is treated as always broken.
func TextIf(cond Cond, text string) Tag {
	return func(d *dom) {
		if text == "" {
			return
		}

		var kind kind
		switch {
		case stringsx.Every(text, ' '):
			kind = kindSpace
		case stringsx.Every(text, '\n'):
			kind = kindBreak
		default:
			kind = kindText
		}

		d.push(tag{kind: kind, text: text, cond: cond}, nil)
	}
}

// Line is shorthand for a line of text followed by a newline.
func Line(text string) Tag {
	return func(d *dom) {
		d.add(Text(text), Text("\n"))
	}
}

// BlankLine requests an empty line at the current position. Multiple blank
// line requests in a row produce a single empty line.
func BlankLine() Tag {
	return Text("\n\n")
}

// Group returns a tag that groups together a collection of child tags.
//
// A group is broken when it contains a newline, contains a broken group, is
// wider than maxWidth when flat (zero means no limit), or would overflow
// [Options.MaxWidth] at its starting column.
func Group(maxWidth int, content func(push Sink)) Tag {
	return func(d *dom) {
		if maxWidth == 0 {
			maxWidth = math.MaxInt
		}
		d.push(tag{kind: kindGroup, limit: maxWidth}, content)
	}
}

// Indent pushes by to the indentation stack for all of the given tags.
//
// The indentation is printed at the start of each line that is otherwise
// not empty, so blank lines carry no trailing whitespace.
func Indent(by string, content func(push Sink)) Tag {
	return func(d *dom) {
		if by == "" {
			content(d.add)
			return
		}
		d.push(tag{kind: kindIndent, text: by}, content)
	}
}
