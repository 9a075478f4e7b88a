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
	"regexp"
	"strings"

	"github.com/bufbuild/buildinit/internal/cases"
)

// Syntax renders the abstract constructs of a build script in one concrete
// dialect.
//
// There are exactly two syntaxes; obtain one with [SyntaxFor]. Syntaxes are
// stateless and safe for concurrent use.
type Syntax interface {
	// Dialect returns the dialect this syntax renders.
	Dialect() Dialect
	// Extension returns the file extension of scripts in this syntax.
	Extension() string

	// LineComment returns the token that starts a line comment.
	LineComment() string
	// String quotes value as a string literal.
	String(value string) string
	// MapLiteral renders a map literal.
	MapLiteral(m *MapLiteral) string
	// FirstArg renders the first argument of a method call.
	FirstArg(e Expr) string

	// Plugin renders a plugin request in a plugins block. version may be
	// empty.
	Plugin(id, version string) string
	// PluginAlias renders a plugin request that refers to a version catalog
	// entry.
	PluginAlias(ref string) string
	// NestedPlugin renders the application of a plugin inside a
	// cross-project block. Nested applications cannot be versioned; a
	// non-empty version panics.
	NestedPlugin(id, version string) string

	// Dependency renders a single dependency declaration.
	Dependency(configuration string, notation Expr) string
	// Property renders an assignment to a property.
	Property(name string, value Expr) string

	// TaskSelector renders the header of a block that configures one task.
	TaskSelector(sel TaskSelector) string
	// TaskTypeSelector renders the header of a block that configures every
	// task of a type.
	TaskTypeSelector(sel TaskTypeSelector) string
	// TaskRegistration renders the registration of a new task.
	TaskRegistration(name, taskType string) string
	// ConventionSelector renders the header of a block that configures a
	// convention. If ok is false, the dialect has no such block, and the
	// statements are written without one.
	ConventionSelector(sel ConventionSelector) (header string, ok bool)

	isSyntax()
}

// SyntaxFor returns the syntax for the given dialect.
func SyntaxFor(d Dialect) Syntax {
	switch d {
	case Kotlin:
		return kotlin{}
	case Groovy:
		return groovy{}
	default:
		panic(fmt.Sprintf("script: unknown dialect %d", int(d)))
	}
}

// selectorHeader returns the block header for a selector, if the syntax has
// one.
func selectorHeader(s Syntax, sel Selector) (string, bool) {
	switch sel := sel.(type) {
	case TaskSelector:
		return s.TaskSelector(sel), true
	case TaskTypeSelector:
		return s.TaskTypeSelector(sel), true
	case ConventionSelector:
		return s.ConventionSelector(sel)
	case nil:
		panic("script: nil selector")
	}
	panic(fmt.Sprintf("script: unexpected selector type %T", sel))
}

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	bareWordPattern   = regexp.MustCompile(`^[a-z]+$`)
)

// isIdentifier returns whether name can be written without quotes as a map
// key or property name.
func isIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// booleanAccessor returns the Kotlin accessor of a boolean property: the
// last path component of name, prefixed with "is".
func booleanAccessor(name string) string {
	prefix, last := "", name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		prefix, last = name[:i+1], name[i+1:]
	}
	if strings.HasPrefix(last, "is") && len(last) > 2 && last[2] >= 'A' && last[2] <= 'Z' {
		return name
	}
	pascal := cases.Converter{Case: cases.Pascal, NoLowercase: true}
	return prefix + "is" + pascal.Convert(last)
}
