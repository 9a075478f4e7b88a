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
	"strings"

	"github.com/bufbuild/buildinit/internal/omap"
)

// ScriptBlock is a mutable block of statements: the body of a named block,
// a task registration or a configuration group.
//
// A ScriptBlock belongs to the [Builder] that created it.
type ScriptBlock struct {
	owner *Builder
	items []func() Stmt
}

func newBlock(owner *Builder) *ScriptBlock {
	return &ScriptBlock{owner: owner}
}

// Add appends a statement.
func (s *ScriptBlock) Add(stmt Stmt) *ScriptBlock {
	s.owner.checkOwner()
	s.items = append(s.items, func() Stmt { return stmt })
	return s
}

// PropertyAssignment appends name = value. value is converted with
// [ValueOf].
func (s *ScriptBlock) PropertyAssignment(comment, name string, value any) *ScriptBlock {
	return s.Add(PropertyStmt{Comment: comment, Name: name, Value: ValueOf(value)})
}

// MethodInvocation appends a call to the named method. Arguments are
// converted with [ValueOf].
func (s *ScriptBlock) MethodInvocation(comment, name string, args ...any) *ScriptBlock {
	return s.Add(MethodStmt{Comment: comment, Name: name, Args: Call(name, args...).Args})
}

// Block appends a nested block and returns it. Statements may be added to
// the nested block until the script is generated.
func (s *ScriptBlock) Block(comment, selector string) *ScriptBlock {
	s.owner.checkOwner()
	child := newBlock(s.owner)
	s.items = append(s.items, func() Stmt {
		return BlockStmt{Comment: comment, Selector: selector, Body: child.Stmts()}
	})
	return child
}

// Stmts returns a snapshot of the statements in this block.
func (s *ScriptBlock) Stmts() []Stmt {
	stmts := make([]Stmt, 0, len(s.items))
	for _, item := range s.items {
		stmts = append(stmts, item())
	}
	return stmts
}

// RepositoriesBlock is the repositories block of a script.
type RepositoriesBlock struct {
	owner *Builder
	seen  map[string]struct{}
	stmts []Stmt
}

func newRepositories(owner *Builder) *RepositoriesBlock {
	return &RepositoriesBlock{owner: owner, seen: make(map[string]struct{})}
}

// MavenCentral adds the Maven Central repository.
func (r *RepositoriesBlock) MavenCentral(comment string) *RepositoriesBlock {
	return r.add("mavenCentral", MethodStmt{Comment: comment, Name: "mavenCentral"})
}

// GradlePluginPortal adds the Gradle plugin portal.
func (r *RepositoriesBlock) GradlePluginPortal(comment string) *RepositoriesBlock {
	return r.add("gradlePluginPortal", MethodStmt{Comment: comment, Name: "gradlePluginPortal"})
}

// Maven adds a Maven repository at the given URL.
func (r *RepositoriesBlock) Maven(comment, url string) *RepositoriesBlock {
	return r.add("maven "+url, BlockStmt{
		Comment:  comment,
		Selector: "maven",
		Body:     []Stmt{PropertyStmt{Name: "url", Value: Call("uri", url)}},
	})
}

// add appends a repository unless one with the same key is present.
func (r *RepositoriesBlock) add(key string, stmt Stmt) *RepositoriesBlock {
	r.owner.checkOwner()
	if _, ok := r.seen[key]; ok {
		return r
	}
	r.seen[key] = struct{}{}
	r.stmts = append(r.stmts, stmt)
	return r
}

func (r *RepositoriesBlock) stmt() Stmt {
	return BlockStmt{Selector: "repositories", Body: r.stmts}
}

// DependenciesBlock is the dependencies block of a script. Declarations are
// grouped by configuration: configurations appear in the order they were
// first used, and declarations within one configuration keep their order.
type DependenciesBlock struct {
	owner *Builder
	deps  omap.Multimap[string, Stmt]
}

func newDependencies(owner *Builder) *DependenciesBlock {
	return &DependenciesBlock{owner: owner}
}

// Add declares dependencies on the given notations in a configuration.
// Notations are converted with [ValueOf].
func (d *DependenciesBlock) Add(comment, configuration string, notations ...any) *DependenciesBlock {
	d.owner.checkOwner()
	stmt := DependencyStmt{Comment: comment, Configuration: configuration}
	for _, notation := range notations {
		stmt.Notations = append(stmt.Notations, ValueOf(notation))
	}
	d.deps.Put(configuration, stmt)
	return d
}

// Implementation adds to the implementation configuration.
func (d *DependenciesBlock) Implementation(comment string, notations ...any) *DependenciesBlock {
	return d.Add(comment, "implementation", notations...)
}

// API adds to the api configuration.
func (d *DependenciesBlock) API(comment string, notations ...any) *DependenciesBlock {
	return d.Add(comment, "api", notations...)
}

// CompileOnly adds to the compileOnly configuration.
func (d *DependenciesBlock) CompileOnly(comment string, notations ...any) *DependenciesBlock {
	return d.Add(comment, "compileOnly", notations...)
}

// RuntimeOnly adds to the runtimeOnly configuration.
func (d *DependenciesBlock) RuntimeOnly(comment string, notations ...any) *DependenciesBlock {
	return d.Add(comment, "runtimeOnly", notations...)
}

// TestImplementation adds to the testImplementation configuration.
func (d *DependenciesBlock) TestImplementation(comment string, notations ...any) *DependenciesBlock {
	return d.Add(comment, "testImplementation", notations...)
}

// TestRuntimeOnly adds to the testRuntimeOnly configuration.
func (d *DependenciesBlock) TestRuntimeOnly(comment string, notations ...any) *DependenciesBlock {
	return d.Add(comment, "testRuntimeOnly", notations...)
}

// Platform declares a dependency on a platform, such as a BOM.
func (d *DependenciesBlock) Platform(comment, configuration string, notation any) *DependenciesBlock {
	return d.Add(comment, configuration, Call("platform", notation))
}

// Project declares a dependency on another project of the build.
func (d *DependenciesBlock) Project(comment, configuration, path string) *DependenciesBlock {
	return d.Add(comment, configuration, Call("project", path))
}

// Module declares a dependency on an external module. If the builder uses a
// version catalog, the module is registered there and referenced through
// its accessor; otherwise it is written as a group:name:version string.
func (d *DependenciesBlock) Module(comment, configuration, group, name, version string) *DependenciesBlock {
	if c := d.owner.catalog; c != nil {
		lib := c.AddLibrary(group, name, version)
		return d.Add(comment, configuration, Ref(lib.Accessor()))
	}
	coords := []string{group, name}
	if version != "" {
		coords = append(coords, version)
	}
	return d.Add(comment, configuration, strings.Join(coords, ":"))
}

// Library declares a dependency on a version catalog entry by alias.
func (d *DependenciesBlock) Library(comment, configuration, alias string) *DependenciesBlock {
	return d.Add(comment, configuration, Ref("libs."+strings.ReplaceAll(alias, "-", ".")))
}

func (d *DependenciesBlock) stmt() Stmt {
	body := make([]Stmt, 0, d.deps.Size())
	for stmt := range d.deps.Values() {
		body = append(body, stmt)
	}
	return BlockStmt{Selector: "dependencies", Body: body}
}

// configurations accumulates blocks under selectors of one kind. Each
// distinct selector is written once, with the statements of every block
// registered under it.
type configurations[S interface {
	comparable
	Selector
}] struct {
	owner  *Builder
	blocks omap.Multimap[S, *ScriptBlock]
}

// block returns a new block whose statements are written under sel.
func (c *configurations[S]) block(sel S) *ScriptBlock {
	c.owner.checkOwner()
	block := newBlock(c.owner)
	c.blocks.Put(sel, block)
	return block
}

func (c *configurations[S]) stmt() Stmt {
	var seq SequenceStmt
	for sel, blocks := range c.blocks.All() {
		stmt := SelectorStmt{Selector: sel}
		for _, block := range blocks {
			stmt.Body = append(stmt.Body, block.Stmts()...)
		}
		seq.Stmts = append(seq.Stmts, stmt)
	}
	return seq
}

// CrossProjectBlock is an allprojects or subprojects block.
type CrossProjectBlock struct {
	owner        *Builder
	selector     string
	plugins      []Stmt
	repositories *RepositoriesBlock
	dependencies *DependenciesBlock
	taskTypes    configurations[TaskTypeSelector]
	body         *ScriptBlock
}

func newCrossProject(owner *Builder, selector string) *CrossProjectBlock {
	return &CrossProjectBlock{
		owner:        owner,
		selector:     selector,
		repositories: newRepositories(owner),
		dependencies: newDependencies(owner),
		taskTypes:    configurations[TaskTypeSelector]{owner: owner},
		body:         newBlock(owner),
	}
}

// Plugin applies a plugin to every project in scope.
func (c *CrossProjectBlock) Plugin(comment, id string) *CrossProjectBlock {
	c.owner.checkOwner()
	c.plugins = append(c.plugins, NestedPluginStmt{Comment: comment, ID: id})
	return c
}

// Repositories returns the repositories block.
func (c *CrossProjectBlock) Repositories() *RepositoriesBlock {
	return c.repositories
}

// Dependencies returns the dependencies block.
func (c *CrossProjectBlock) Dependencies() *DependenciesBlock {
	return c.dependencies
}

// TaskType returns a block configuring every task of the given type.
func (c *CrossProjectBlock) TaskType(taskType string) *ScriptBlock {
	return c.taskTypes.block(TaskTypeSelector{Type: taskType})
}

// Body returns the block for any other statements.
func (c *CrossProjectBlock) Body() *ScriptBlock {
	return c.body
}

func (c *CrossProjectBlock) stmt() Stmt {
	body := []Stmt{
		SequenceStmt{Stmts: c.plugins},
		c.repositories.stmt(),
		c.dependencies.stmt(),
		SequenceStmt{Stmts: c.body.Stmts()},
		c.taskTypes.stmt(),
	}
	return BlockStmt{Selector: c.selector, Body: body}
}
