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

import "fmt"

const (
	Empty  Kind = iota // Renders nothing.
	Single             // One logical line.
	Group              // A block-like statement, set off by blank lines.
)

// Kind classifies a statement for the purposes of spacing.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Single:
		return "Single"
	case Group:
		return "Group"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// Stmt is a statement in a build script.
//
// The set of statements is closed. Statements are values; a statement is not
// modified after it has been handed to a [ScriptBlock].
type Stmt interface {
	// Kind returns this statement's spacing classification.
	Kind() Kind

	comment() string
}

// PluginStmt requests a plugin in a plugins block.
//
// If Alias is set, the plugin is requested through a version catalog, and
// ID and Version are ignored.
type PluginStmt struct {
	Comment     string
	ID, Version string
	Alias       string
}

// NestedPluginStmt applies a plugin within a cross-project block. It cannot
// carry a version.
type NestedPluginStmt struct {
	Comment     string
	ID, Version string
}

// DependencyStmt declares one or more dependencies in a configuration.
type DependencyStmt struct {
	Comment       string
	Configuration string
	Notations     []Expr
}

// MethodStmt invokes a method.
type MethodStmt struct {
	Comment string
	Name    string
	Args    []Expr
}

// PropertyStmt assigns a value to a property.
type PropertyStmt struct {
	Comment string
	Name    string
	Value   Expr
}

// BlockStmt is a named block, such as repositories { ... }.
type BlockStmt struct {
	Comment  string
	Selector string
	Body     []Stmt
}

// TaskRegistrationStmt registers a new task, with an optional configuration
// body.
type TaskRegistrationStmt struct {
	Comment    string
	Name, Type string
	Body       []Stmt
}

// SelectorStmt is a block of statements configuring the object chosen by a
// [Selector]. Syntaxes that have no block form for the selector write the
// body inline.
type SelectorStmt struct {
	Comment  string
	Selector Selector
	Body     []Stmt
}

// SequenceStmt is an ordered run of statements written at the same level.
type SequenceStmt struct {
	Comment string
	Stmts   []Stmt
}

// FileHeaderStmt is the block comment at the top of a generated file.
type FileHeaderStmt struct {
	Lines []string
}

func (s PluginStmt) comment() string           { return s.Comment }
func (s NestedPluginStmt) comment() string     { return s.Comment }
func (s DependencyStmt) comment() string       { return s.Comment }
func (s MethodStmt) comment() string           { return s.Comment }
func (s PropertyStmt) comment() string         { return s.Comment }
func (s BlockStmt) comment() string            { return s.Comment }
func (s TaskRegistrationStmt) comment() string { return s.Comment }
func (s SelectorStmt) comment() string         { return s.Comment }
func (s SequenceStmt) comment() string         { return s.Comment }
func (FileHeaderStmt) comment() string         { return "" }

func (PluginStmt) Kind() Kind       { return Single }
func (NestedPluginStmt) Kind() Kind { return Single }
func (MethodStmt) Kind() Kind       { return Single }
func (PropertyStmt) Kind() Kind     { return Single }

func (s DependencyStmt) Kind() Kind {
	if len(s.Notations) == 0 {
		return Empty
	}
	return Single
}

func (s BlockStmt) Kind() Kind    { return KindOf(s.Body) }
func (s SelectorStmt) Kind() Kind { return KindOf(s.Body) }
func (s SequenceStmt) Kind() Kind { return KindOf(s.Stmts) }

func (s TaskRegistrationStmt) Kind() Kind {
	if KindOf(s.Body) == Empty {
		return Single
	}
	return Group
}

func (s FileHeaderStmt) Kind() Kind {
	if len(s.Lines) == 0 {
		return Empty
	}
	return Group
}

// KindOf classifies a run of statements: [Empty] if every statement is
// empty, and [Group] otherwise.
func KindOf(stmts []Stmt) Kind {
	for _, stmt := range stmts {
		if stmt.Kind() != Empty {
			return Group
		}
	}
	return Empty
}
