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

package dom

import (
	"strings"
)

// printer holds state for converting a laid-out [dom] into a string.
type printer struct {
	Options

	out strings.Builder
	// Buffered spaces and newlines, for whitespace merging in write().
	spaces, newlines int

	indent []byte
}

// render renders a dom with the given options.
func render(options Options, doc *dom) string {
	options = options.WithDefaults()
	l := layout{Options: options}
	l.layout(*doc)

	p := printer{Options: options}
	// Top level group is always broken.
	p.print(Broken, doc.cursor())

	if !strings.HasSuffix(p.out.String(), "\n") {
		p.out.WriteByte('\n')
	}

	return p.out.String()
}

// print prints all of the elements of a cursor that are conditioned on cond,
// which is whether the containing group is broken.
func (p *printer) print(cond Cond, cursor cursor) {
	for tag, cursor := range cursor {
		if !tag.renderIf(cond) {
			continue
		}

		switch tag.kind {
		case kindText:
			p.write(tag.text)

		case kindSpace:
			p.spaces = max(p.spaces, len(tag.text))

		case kindBreak:
			p.newlines = max(p.newlines, len(tag.text))

		case kindGroup:
			ourCond := Flat
			if tag.broken {
				ourCond = Broken
			}
			p.print(ourCond, cursor)

		case kindIndent:
			prev := p.indent
			p.indent = append(p.indent[:len(prev):len(prev)], tag.text...)
			p.print(cond, cursor)
			p.indent = prev
		}
	}
}

// write appends data to the output buffer, flushing buffered whitespace and
// indentation first.
func (p *printer) write(data string) {
	if p.newlines > 0 {
		for range p.newlines {
			p.out.WriteByte('\n')
		}
		p.newlines = 0
		p.spaces = 0

		p.out.Write(p.indent)
	}

	for range p.spaces {
		p.out.WriteByte(' ')
	}
	p.spaces = 0

	p.out.WriteString(data)
}
