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

package script

import (
	"fmt"
	"strings"

	"github.com/bufbuild/buildinit/dom"
)

// Print renders a sequence of top-level statements in the given syntax.
func Print(options Options, syntax Syntax, stmts ...Stmt) string {
	options = options.withDefaults()
	return dom.Render(options.domOptions(), func(push dom.Sink) {
		p := &printer{
			options: options,
			syntax:  syntax,
			push:    push,
			first:   true,
		}
		p.printStmts(stmts)
	})
}

// printer tracks blank-line state while walking a statement tree.
type printer struct {
	options Options
	syntax  Syntax
	push    dom.Sink

	// first is set until a statement has been printed in the current block.
	first bool
	// owed is set when a blank line must precede the next statement.
	owed bool
}

func (p *printer) printStmts(stmts []Stmt) {
	for _, stmt := range stmts {
		p.printStmt(stmt)
	}
}

// printStmt prints a statement along with its comment and the blank lines
// around it.
func (p *printer) printStmt(stmt Stmt) {
	kind := stmt.Kind()
	if kind == Empty {
		return
	}

	comment := stmt.comment()
	separate := comment != "" || kind == Group
	if separate && !p.first {
		p.owed = true
	}
	if p.owed {
		p.push(dom.BlankLine())
		p.owed = false
	}

	if comment != "" {
		for line := range strings.SplitSeq(comment, "\n") {
			p.push(dom.Line(strings.TrimRight(p.syntax.LineComment()+" "+line, " ")))
		}
	}

	p.printCode(stmt)

	p.first = false
	if separate {
		p.owed = true
	}
}

// printCode prints the statement itself.
func (p *printer) printCode(stmt Stmt) {
	switch stmt := stmt.(type) {
	case PluginStmt:
		if stmt.Alias != "" {
			p.push(dom.Line(p.syntax.PluginAlias(stmt.Alias)))
		} else {
			p.push(dom.Line(p.syntax.Plugin(stmt.ID, stmt.Version)))
		}

	case NestedPluginStmt:
		p.push(dom.Line(p.syntax.NestedPlugin(stmt.ID, stmt.Version)))

	case DependencyStmt:
		for _, notation := range stmt.Notations {
			p.push(dom.Line(p.syntax.Dependency(stmt.Configuration, notation)))
		}

	case PropertyStmt:
		p.push(dom.Line(p.syntax.Property(stmt.Name, stmt.Value)))

	case MethodStmt:
		p.printCall(stmt.Name, stmt.Args)

	case BlockStmt:
		p.printBlock(stmt.Selector, stmt.Body)

	case TaskRegistrationStmt:
		header := p.syntax.TaskRegistration(stmt.Name, stmt.Type)
		if KindOf(stmt.Body) == Empty {
			p.push(dom.Line(header))
			break
		}
		p.printBlock(header, stmt.Body)

	case SelectorStmt:
		header, ok := selectorHeader(p.syntax, stmt.Selector)
		if !ok {
			p.printStmts(stmt.Body)
			break
		}
		p.printBlock(header, stmt.Body)

	case SequenceStmt:
		p.printStmts(stmt.Stmts)

	case FileHeaderStmt:
		p.push(dom.Line("/*"))
		for _, line := range stmt.Lines {
			p.push(dom.Line(strings.TrimRight(" * "+line, " ")))
		}
		p.push(dom.Line(" */"))

	case nil:
		panic("script: nil statement")

	default:
		panic(fmt.Sprintf("script: unexpected statement type %T", stmt))
	}
}

// printBlock prints header { body }.
func (p *printer) printBlock(header string, body []Stmt) {
	p.push(dom.Line(header + " {"))
	p.withBlock(func() { p.printStmts(body) })
	p.push(dom.Line("}"))
}

// printCall prints a method invocation. If the line is too wide, each
// argument goes on its own line.
func (p *printer) printCall(name string, args []Expr) {
	if len(args) == 0 {
		p.push(dom.Line(name + "()"))
		return
	}

	p.push(dom.Text(name + "("))
	p.withGroup(func() {
		p.withIndent(func() {
			p.push(dom.TextIf(dom.Broken, "\n"))
			for i, arg := range args {
				if i == 0 {
					p.push(dom.Text(p.syntax.FirstArg(arg)))
					continue
				}
				p.push(
					dom.Text(","),
					dom.TextIf(dom.Flat, " "),
					dom.TextIf(dom.Broken, "\n"),
					dom.Text(Render(p.syntax, arg)),
				)
			}
		})
		p.push(dom.TextIf(dom.Broken, "\n"))
	})
	p.push(dom.Line(")"))
}

// withBlock runs fn in a fresh, indented block scope, restoring the
// enclosing block's spacing state afterwards.
func (p *printer) withBlock(fn func()) {
	first, owed := p.first, p.owed
	p.first, p.owed = true, false
	p.withIndent(fn)
	p.first, p.owed = first, owed
}

// withIndent runs fn with an indented printer, swapping the sink temporarily.
func (p *printer) withIndent(fn func()) {
	originalPush := p.push
	p.push(dom.Indent(p.options.Indent, func(indentSink dom.Sink) {
		p.push = indentSink
		fn()
	}))
	p.push = originalPush
}

// withGroup runs fn with a grouped printer, swapping the sink temporarily.
func (p *printer) withGroup(fn func()) {
	originalPush := p.push
	p.push(dom.Group(0, func(groupSink dom.Sink) {
		p.push = groupSink
		fn()
	}))
	p.push = originalPush
}
