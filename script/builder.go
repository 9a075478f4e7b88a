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
	"io"
	"strings"

	"github.com/petermattis/goid"

	"github.com/bufbuild/buildinit/catalog"
)

// DefaultHeader is the first line of the header comment of every generated
// script.
const DefaultHeader = "This file was generated by buildinit."

// Builder accumulates the contents of one build script and writes it out.
//
// A Builder is owned by the goroutine that created it. Mutating it, or any
// block obtained from it, from another goroutine panics. A Builder can be
// generated once; see [Builder.Generate].
type Builder struct {
	owner    int64
	dialect  Dialect
	baseName string
	options  Options
	catalog  *catalog.Catalog

	header       []string
	plugins      []Stmt
	allProjects  *CrossProjectBlock
	subProjects  *CrossProjectBlock
	repositories *RepositoriesBlock
	dependencies *DependenciesBlock
	tasks        []func() Stmt
	registered   map[string]*ScriptBlock
	taskNames    map[string]TaskSelector
	body         *ScriptBlock
	conventions  configurations[ConventionSelector]
	taskTypes    configurations[TaskTypeSelector]
	taskConfigs  configurations[TaskSelector]

	generated bool
}

// New returns a builder for a script in the given dialect. baseName is the
// file name without extension, such as "build" or "settings".
func New(dialect Dialect, baseName string) *Builder {
	SyntaxFor(dialect) // Validate the dialect up front.

	b := &Builder{
		owner:    goid.Get(),
		dialect:  dialect,
		baseName: baseName,
		header:   []string{DefaultHeader},

		registered: make(map[string]*ScriptBlock),
		taskNames:  make(map[string]TaskSelector),
	}
	b.repositories = newRepositories(b)
	b.dependencies = newDependencies(b)
	b.body = newBlock(b)
	b.conventions = configurations[ConventionSelector]{owner: b}
	b.taskTypes = configurations[TaskTypeSelector]{owner: b}
	b.taskConfigs = configurations[TaskSelector]{owner: b}
	return b
}

// checkOwner panics if called from a goroutine other than the one that
// created b.
func (b *Builder) checkOwner() {
	if id := goid.Get(); id != b.owner {
		panic(fmt.Sprintf("script: builder for %s used from goroutine %d, but owned by goroutine %d", b.FileName(), id, b.owner))
	}
}

// Dialect returns the dialect this builder writes.
func (b *Builder) Dialect() Dialect {
	return b.dialect
}

// FileName returns the name of the generated file: the base name followed
// by the dialect's extension.
func (b *Builder) FileName() string {
	return b.baseName + b.dialect.Extension()
}

// SetOptions sets layout options.
func (b *Builder) SetOptions(options Options) *Builder {
	b.checkOwner()
	b.options = options
	return b
}

// UseCatalog makes [DependenciesBlock.Module] and [Builder.PluginVersion]
// record coordinates in c and refer to them through catalog accessors.
func (b *Builder) UseCatalog(c *catalog.Catalog) *Builder {
	b.checkOwner()
	b.catalog = c
	return b
}

// FileComment appends lines to the header comment.
func (b *Builder) FileComment(comment string) *Builder {
	b.checkOwner()
	b.header = append(b.header, strings.Split(comment, "\n")...)
	return b
}

// Plugin requests a core plugin, such as "java-library".
func (b *Builder) Plugin(comment, id string) *Builder {
	b.checkOwner()
	b.plugins = append(b.plugins, PluginStmt{Comment: comment, ID: id})
	return b
}

// PluginVersion requests a community plugin at a version. With a version
// catalog, the plugin is recorded there and requested by alias.
func (b *Builder) PluginVersion(comment, id, version string) *Builder {
	b.checkOwner()
	stmt := PluginStmt{Comment: comment, ID: id, Version: version}
	if b.catalog != nil {
		stmt.Alias = b.catalog.AddPlugin(id, version).Accessor()
	}
	b.plugins = append(b.plugins, stmt)
	return b
}

// PluginAlias requests a plugin by its catalog accessor, such as
// "libs.plugins.kotlin.jvm".
func (b *Builder) PluginAlias(comment, ref string) *Builder {
	b.checkOwner()
	b.plugins = append(b.plugins, PluginStmt{Comment: comment, Alias: ref})
	return b
}

// AllProjects returns the allprojects block.
func (b *Builder) AllProjects() *CrossProjectBlock {
	b.checkOwner()
	if b.allProjects == nil {
		b.allProjects = newCrossProject(b, "allprojects")
	}
	return b.allProjects
}

// SubProjects returns the subprojects block.
func (b *Builder) SubProjects() *CrossProjectBlock {
	b.checkOwner()
	if b.subProjects == nil {
		b.subProjects = newCrossProject(b, "subprojects")
	}
	return b.subProjects
}

// Repositories returns the repositories block.
func (b *Builder) Repositories() *RepositoriesBlock {
	return b.repositories
}

// Dependencies returns the dependencies block.
func (b *Builder) Dependencies() *DependenciesBlock {
	return b.dependencies
}

// PropertyAssignment appends name = value to the script body.
func (b *Builder) PropertyAssignment(comment, name string, value any) *Builder {
	b.body.PropertyAssignment(comment, name, value)
	return b
}

// MethodInvocation appends a method call to the script body.
func (b *Builder) MethodInvocation(comment, name string, args ...any) *Builder {
	b.body.MethodInvocation(comment, name, args...)
	return b
}

// Block appends a nested block to the script body and returns it.
func (b *Builder) Block(comment, selector string) *ScriptBlock {
	return b.body.Block(comment, selector)
}

// JavaToolchain configures the Java toolchain language version.
func (b *Builder) JavaToolchain(comment string, version int) *Builder {
	b.Block(comment, "java").
		Block("", "toolchain").
		PropertyAssignment("", "languageVersion", Call("JavaLanguageVersion.of", version))
	return b
}

// TaskRegistration registers a new task and returns its configuration
// block. taskType may be empty.
func (b *Builder) TaskRegistration(comment, name, taskType string) *ScriptBlock {
	b.checkOwner()
	body := newBlock(b)
	if _, ok := b.registered[name]; !ok {
		b.registered[name] = body
	}
	b.tasks = append(b.tasks, func() Stmt {
		return TaskRegistrationStmt{Comment: comment, Name: name, Type: taskType, Body: body.Stmts()}
	})
	return body
}

// TaskType returns a block configuring every task of the given type.
func (b *Builder) TaskType(taskType string) *ScriptBlock {
	return b.taskTypes.block(TaskTypeSelector{Type: taskType})
}

// Task returns a block configuring an existing task. taskType may be empty.
//
// A script declares each task name once. If name was already passed to
// [Builder.TaskRegistration], the returned block is that registration's body.
// Otherwise every block for name shares the selector of the first call, so
// taskType is ignored once a name has been seen. Registering a task after
// configuring it under the same name is not merged.
func (b *Builder) Task(name, taskType string) *ScriptBlock {
	b.checkOwner()
	if body, ok := b.registered[name]; ok {
		return body
	}
	sel, ok := b.taskNames[name]
	if !ok {
		sel = TaskSelector{Name: name, Type: taskType}
		b.taskNames[name] = sel
	}
	return b.taskConfigs.block(sel)
}

// Convention returns a block configuring a project extension.
func (b *Builder) Convention(name string) *ScriptBlock {
	return b.conventions.block(ConventionSelector{Name: name})
}

// TaskPropertyAssignment sets a property of an existing task.
func (b *Builder) TaskPropertyAssignment(comment, task, taskType, property string, value any) *Builder {
	b.Task(task, taskType).PropertyAssignment(comment, property, value)
	return b
}

// TaskMethodInvocation calls a method of an existing task.
func (b *Builder) TaskMethodInvocation(comment, task, taskType, method string, args ...any) *Builder {
	b.Task(task, taskType).MethodInvocation(comment, method, args...)
	return b
}

// ConventionProperty sets a property of a project extension.
func (b *Builder) ConventionProperty(comment, convention, property string, value any) *Builder {
	b.Convention(convention).PropertyAssignment(comment, property, value)
	return b
}

// Stmts returns the top-level statements of the script, in the order they
// are written.
func (b *Builder) Stmts() []Stmt {
	stmts := []Stmt{
		FileHeaderStmt{Lines: b.header},
		BlockStmt{Selector: "plugins", Body: b.plugins},
	}
	if b.allProjects != nil {
		stmts = append(stmts, b.allProjects.stmt())
	}
	if b.subProjects != nil {
		stmts = append(stmts, b.subProjects.stmt())
	}

	var tasks SequenceStmt
	for _, task := range b.tasks {
		tasks.Stmts = append(tasks.Stmts, task())
	}

	return append(stmts,
		b.repositories.stmt(),
		b.dependencies.stmt(),
		tasks,
		SequenceStmt{Stmts: b.body.Stmts()},
		b.conventions.stmt(),
		b.taskTypes.stmt(),
		b.taskConfigs.stmt(),
	)
}

// String renders the script without consuming the builder.
func (b *Builder) String() string {
	return Print(b.options, SyntaxFor(b.dialect), b.Stmts()...)
}

// Generate writes the script to w. A builder can be generated only once.
func (b *Builder) Generate(w io.Writer) error {
	b.checkOwner()
	if b.generated {
		return fmt.Errorf("build script %s has already been generated", b.FileName())
	}
	b.generated = true

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("could not write build script %s: %w", b.FileName(), err)
	}
	return nil
}
