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

package descriptor

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/bufbuild/buildinit/catalog"
	"github.com/bufbuild/buildinit/internal/cases"
	"github.com/bufbuild/buildinit/script"
)

// File is a generated file.
type File struct {
	// Path relative to the root of the build, with forward slashes.
	Path    string
	Content string
}

// Files validates the project and generates every file of the build: the
// settings script, the build scripts, the version catalog if one is used,
// and starter sources.
func (p *Project) Files() ([]File, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := &generator{
		Project:   p,
		language:  languageOf(p.Language),
		framework: frameworkOf(p.TestFramework),
	}
	if p.UseCatalog {
		g.libs = p.Catalog
		if g.libs == nil {
			g.libs = new(catalog.Catalog)
		}
	}
	return g.files()
}

// generator holds the state of one call to [Project.Files].
type generator struct {
	*Project
	language  language
	framework framework
	libs      *catalog.Catalog

	out []File
}

// unit is one project of the build that has sources.
type unit struct {
	dir         string
	pkg         string
	application bool
	// Paths of projects this one depends on.
	projects []string
}

func (g *generator) files() ([]File, error) {
	units := g.units()

	var includes []string
	for _, u := range units {
		includes = append(includes, u.dir)
	}
	if err := g.emit("", g.settings(includes)); err != nil {
		return nil, err
	}

	if g.Type == Basic || len(g.Subprojects) > 0 {
		if err := g.emit("", g.root()); err != nil {
			return nil, err
		}
	}
	for _, u := range units {
		if err := g.emit(u.dir, g.unit(u)); err != nil {
			return nil, err
		}
	}

	if g.libs != nil && g.libs.Len() > 0 {
		g.out = append(g.out, File{
			Path: catalog.Path,
			Content: g.libs.Render(
				script.DefaultHeader,
				"https://docs.gradle.org/current/userguide/platforms.html#sub::toml-dependencies-format",
			),
		})
	}

	g.out = append(g.out, File{Path: ".gitignore", Content: gitignore})

	for _, u := range units {
		sources, err := g.sources(u)
		if err != nil {
			return nil, err
		}
		g.out = append(g.out, sources...)
	}
	return g.out, nil
}

const gitignore = `# Ignore Gradle project-specific cache directory
.gradle

# Ignore Gradle build output directory
build
`

// units lists the projects of the build that have sources.
func (g *generator) units() []unit {
	switch {
	case g.Type == Basic:
		return nil
	case len(g.Subprojects) == 0:
		dir := "lib"
		if g.Type == Application {
			dir = "app"
		}
		return []unit{{dir: dir, pkg: g.Package, application: g.Type == Application}}
	}

	units := make([]unit, 0, len(g.Subprojects))
	for i, sub := range g.Subprojects {
		u := unit{dir: sub, pkg: g.Package + "." + subpackage(sub)}
		if i == 0 && g.Type == Application {
			u.application = true
			for _, dep := range g.Subprojects[1:] {
				u.projects = append(u.projects, ":"+dep)
			}
		}
		units = append(units, u)
	}
	return units
}

func subpackage(name string) string {
	pkg := cases.Flat.Convert(name)
	if pkg == "" || (pkg[0] >= '0' && pkg[0] <= '9') {
		pkg = "p" + pkg
	}
	return pkg
}

// emit generates a builder into the file list.
func (g *generator) emit(dir string, b *script.Builder) error {
	var buf bytes.Buffer
	if err := b.Generate(&buf); err != nil {
		return err
	}
	g.out = append(g.out, File{Path: path.Join(dir, b.FileName()), Content: buf.String()})
	return nil
}

// comment returns text, or nothing if comments are disabled.
func (g *generator) comment(text string) string {
	if g.NoComments {
		return ""
	}
	return text
}

func (g *generator) newBuilder(baseName, description string) *script.Builder {
	b := script.New(g.DSL, baseName)
	if !g.NoComments {
		b.FileComment("\n" + description)
	}
	return b
}

func (g *generator) settings(includes []string) *script.Builder {
	b := g.newBuilder("settings",
		"The settings file is used to specify which projects to include in your build.\n"+
			"For more detailed information on configuring a multi-project build in Gradle, refer to the User Manual at\n"+
			"https://docs.gradle.org/current/userguide/multi_project_builds.html")

	b.PluginVersion(g.comment("Apply the foojay-resolver plugin to allow automatic download of JDKs"),
		foojayPlugin, foojayVersion)
	b.PropertyAssignment("", "rootProject.name", g.Name)

	if len(includes) > 0 {
		args := make([]any, len(includes))
		for i, dir := range includes {
			args[i] = dir
		}
		b.MethodInvocation("", "include", args...)
	}
	return b
}

// root generates the root build script of a basic or multi-project build.
func (g *generator) root() *script.Builder {
	if g.Type == Basic {
		return g.newBuilder("build",
			"This is a general purpose Gradle build.\n"+
				"Learn more about Gradle by exploring our Samples at https://docs.gradle.org/current/samples")
	}

	b := g.newBuilder("build",
		"Common configuration shared by every project of the build.")
	if g.libs != nil {
		b.UseCatalog(g.libs)
	}

	sub := b.SubProjects()
	sub.Plugin("", "java")
	sub.Repositories().MavenCentral(g.comment("Use Maven Central for resolving dependencies."))
	g.addModules(sub.Dependencies(), g.framework.dependencies)
	if g.framework.useMethod != "" {
		sub.TaskType("Test").MethodInvocation(g.comment(g.framework.useComment), g.framework.useMethod)
	}
	return b
}

// unit generates the build script of one project.
func (g *generator) unit(u unit) *script.Builder {
	name := cases.Pascal.Convert(string(g.Language))
	kind := "library"
	if u.application {
		kind = "application"
	}
	b := g.newBuilder("build",
		fmt.Sprintf("This generated file contains a sample %s %s project to get you started.", name, kind))
	if g.libs != nil {
		b.UseCatalog(g.libs)
	}

	single := len(g.Subprojects) == 0

	if g.language.plugin != "" {
		comment := g.comment(g.language.pluginComment)
		if g.language.pluginVersion != "" {
			b.PluginVersion(comment, g.language.plugin, g.language.pluginVersion)
		} else {
			b.Plugin(comment, g.language.plugin)
		}
	}
	if u.application {
		b.Plugin(g.comment(fmt.Sprintf("Apply the application plugin to add support for building a CLI application in %s.", name)), "application")
	} else {
		b.Plugin(g.comment("Apply the java-library plugin for API and implementation separation."), "java-library")
	}

	if single {
		b.Repositories().MavenCentral(g.comment("Use Maven Central for resolving dependencies."))
	}

	deps := b.Dependencies()
	g.addModules(deps, g.language.dependencies)
	if single {
		g.addModules(deps, g.framework.dependencies)
	}
	if u.application {
		g.addModules(deps, []module{appGuava})
	} else {
		g.addModules(deps, []module{commonsMath, libGuava})
	}
	for _, project := range u.projects {
		deps.Project("", "implementation", project)
	}

	b.JavaToolchain(g.comment("Apply a specific Java toolchain to ease working on different environments."), g.JavaVersion)

	if u.application {
		b.Block("", "application").PropertyAssignment(
			g.comment("Define the main class for the application."),
			"mainClass", u.pkg+".App"+g.language.mainClassSuffix,
		)
	}

	if single && g.framework.useMethod != "" {
		b.TaskMethodInvocation(g.comment(g.framework.useComment), "test", "Test", g.framework.useMethod)
	}
	return b
}

func (g *generator) addModules(deps *script.DependenciesBlock, modules []module) {
	for _, m := range modules {
		deps.Module(g.comment(m.comment), m.configuration, m.group, m.name, m.version)
	}
}

// packagePath converts a package name to a directory.
func packagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}
