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

package script_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/buildinit/script"
)

func render(syntax script.Syntax, stmts ...script.Stmt) string {
	return script.Print(script.Options{}, syntax, stmts...)
}

func TestKind(t *testing.T) {
	t.Parallel()

	empty := script.SequenceStmt{Stmts: []script.Stmt{
		script.DependencyStmt{Configuration: "implementation"},
		script.BlockStmt{Selector: "repositories"},
		script.SequenceStmt{},
	}}
	assert.Equal(t, script.Empty, empty.Kind())
	assert.Equal(t, script.Empty, script.SequenceStmt{Stmts: []script.Stmt{empty}}.Kind())

	single := script.PropertyStmt{Name: "version", Value: script.Str("1.0")}
	assert.Equal(t, script.Single, single.Kind())
	assert.Equal(t, script.Group, script.SequenceStmt{Stmts: []script.Stmt{empty, single}}.Kind())
	assert.Equal(t, script.Group, script.BlockStmt{Selector: "java", Body: []script.Stmt{single}}.Kind())

	assert.Equal(t, script.Single, script.TaskRegistrationStmt{Name: "hello"}.Kind())
	assert.Equal(t, script.Group, script.TaskRegistrationStmt{Name: "hello", Body: []script.Stmt{single}}.Kind())
	assert.Equal(t, script.Empty, script.FileHeaderStmt{}.Kind())
	assert.Equal(t, "Group", script.Group.String())
}

func TestEmptyBubbling(t *testing.T) {
	t.Parallel()

	empty := script.SequenceStmt{Comment: "never shown", Stmts: []script.Stmt{
		script.BlockStmt{Comment: "nor this", Selector: "plugins"},
		script.SelectorStmt{Selector: script.TaskSelector{Name: "test"}},
	}}
	a := script.PropertyStmt{Name: "a", Value: script.Number(1)}
	b := script.PropertyStmt{Name: "b", Value: script.Number(2)}

	for _, syntax := range []script.Syntax{groovy, kotlin} {
		assert.Equal(t, "\n", render(syntax, empty))
		assert.Equal(t, "a = 1\nb = 2\n", render(syntax, a, empty, b))
	}
}

func TestFirstStatementHasNoLeadingBlank(t *testing.T) {
	t.Parallel()

	block := script.BlockStmt{Selector: "java", Body: []script.Stmt{
		script.PropertyStmt{Comment: "first", Name: "a", Value: script.Number(1)},
	}}
	want := `java {
    // first
    a = 1
}
`
	assert.Equal(t, want, render(groovy, block))

	nested := script.BlockStmt{Selector: "outer", Body: []script.Stmt{block}}
	want = `outer {
    java {
        // first
        a = 1
    }
}
`
	assert.Equal(t, want, render(groovy, nested))
}

func TestCommentSeparation(t *testing.T) {
	t.Parallel()

	stmts := []script.Stmt{
		script.PropertyStmt{Name: "a", Value: script.Number(1)},
		script.PropertyStmt{Comment: "about b\nsecond line", Name: "b", Value: script.Number(2)},
		script.PropertyStmt{Name: "c", Value: script.Number(3)},
		script.PropertyStmt{Comment: "about d", Name: "d", Value: script.Number(4)},
		script.PropertyStmt{Comment: "about e", Name: "e", Value: script.Number(5)},
	}
	want := `a = 1

// about b
// second line
b = 2

c = 3

// about d
d = 4

// about e
e = 5
`
	assert.Equal(t, want, render(kotlin, stmts...))
}

func TestGroupSeparation(t *testing.T) {
	t.Parallel()

	stmts := []script.Stmt{
		script.MethodStmt{Name: "mavenLocal"},
		script.BlockStmt{Selector: "java", Body: []script.Stmt{
			script.MethodStmt{Name: "withSourcesJar"},
			script.MethodStmt{Name: "withJavadocJar"},
		}},
		script.MethodStmt{Name: "mavenCentral"},
	}
	want := `mavenLocal()

java {
    withSourcesJar()
    withJavadocJar()
}

mavenCentral()
`
	assert.Equal(t, want, render(groovy, stmts...))
}

func TestSelectorInlining(t *testing.T) {
	t.Parallel()

	stmts := []script.Stmt{
		script.PropertyStmt{Name: "version", Value: script.Str("1.0")},
		script.SelectorStmt{
			Selector: script.ConventionSelector{Name: "java"},
			Body: []script.Stmt{
				script.PropertyStmt{Name: "sourceCompatibility", Value: script.Ref("JavaVersion.VERSION_17")},
			},
		},
	}

	assert.Equal(t, `version = '1.0'

java {
    sourceCompatibility = JavaVersion.VERSION_17
}
`, render(groovy, stmts...))

	assert.Equal(t, `version = "1.0"

sourceCompatibility = JavaVersion.VERSION_17
`, render(kotlin, stmts...))
}

func TestTaskRegistration(t *testing.T) {
	t.Parallel()

	stmts := []script.Stmt{
		script.TaskRegistrationStmt{Name: "hello"},
		script.TaskRegistrationStmt{
			Comment: "Prints a greeting",
			Name:    "greet",
			Type:    "Exec",
			Body: []script.Stmt{
				script.MethodStmt{Name: "commandLine", Args: []script.Expr{script.Str("echo"), script.Str("hi")}},
			},
		},
	}

	assert.Equal(t, `tasks.register('hello')

// Prints a greeting
tasks.register('greet', Exec) {
    commandLine('echo', 'hi')
}
`, render(groovy, stmts...))

	assert.Equal(t, `val hello by tasks.registering

// Prints a greeting
val greet by tasks.registering(Exec::class) {
    commandLine("echo", "hi")
}
`, render(kotlin, stmts...))
}

func TestFileHeader(t *testing.T) {
	t.Parallel()

	header := script.FileHeaderStmt{Lines: []string{"Generated.", "", "Edit freely."}}
	assert.Equal(t, "/*\n * Generated.\n *\n * Edit freely.\n */\n", render(groovy, header))
}

func TestNoTrailingBlankLines(t *testing.T) {
	t.Parallel()

	stmts := []script.Stmt{
		script.BlockStmt{Selector: "a", Body: []script.Stmt{
			script.BlockStmt{Selector: "b", Body: []script.Stmt{
				script.PropertyStmt{Comment: "x", Name: "x", Value: script.Number(1)},
			}},
		}},
	}
	out := render(kotlin, stmts...)
	assert.False(t, strings.HasSuffix(out, "\n\n"))
	assert.NotContains(t, out, "\n\n\n")
	assert.NotContains(t, out, " \n")
}

func TestMethodWrapping(t *testing.T) {
	t.Parallel()

	stmt := script.BlockStmt{Selector: "application", Body: []script.Stmt{
		script.MethodStmt{Name: "args", Args: []script.Expr{
			script.Str("--first-long-argument"),
			script.Str("--second-long-argument"),
		}},
	}}

	wide := script.Print(script.Options{MaxWidth: 100}, kotlin, stmt)
	assert.Equal(t, `application {
    args("--first-long-argument", "--second-long-argument")
}
`, wide)

	narrow := script.Print(script.Options{MaxWidth: 40}, kotlin, stmt)
	assert.Equal(t, `application {
    args(
        "--first-long-argument",
        "--second-long-argument"
    )
}
`, narrow)

	tabs := script.Print(script.Options{Indent: "\t"}, groovy, stmt)
	assert.Equal(t, "application {\n\targs('--first-long-argument', '--second-long-argument')\n}\n", tabs)
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	stmts := []script.Stmt{
		script.FileHeaderStmt{Lines: []string{"header"}},
		script.BlockStmt{Selector: "plugins", Body: []script.Stmt{script.PluginStmt{ID: "java"}}},
		script.PropertyStmt{Comment: "c", Name: "enabled", Value: script.Bool(true)},
	}
	for _, syntax := range []script.Syntax{groovy, kotlin} {
		assert.Equal(t, render(syntax, stmts...), render(syntax, stmts...))
	}
}
