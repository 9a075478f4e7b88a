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

// Package catalog models a Gradle version catalog, the
// gradle/libs.versions.toml file that names the libraries and plugins a
// build uses.
//
// Entries are keyed by alias. Generated build scripts refer to an entry
// through its accessor: the alias with dashes replaced by dots, under
// "libs." for libraries and "libs.plugins." for plugins.
package catalog

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/btree"

	"github.com/bufbuild/buildinit/internal/cases"
)

// Path is the conventional location of a version catalog, relative to the
// root of a build.
const Path = "gradle/libs.versions.toml"

// Catalog is a version catalog.
//
// A zero value is ready to use. Iteration over every table is sorted by
// alias.
type Catalog struct {
	versions  btree.Map[string, string]
	libraries btree.Map[string, Library]
	plugins   btree.Map[string, Plugin]
}

// Library is an entry in the libraries table.
type Library struct {
	Alias       string
	Group, Name string

	// Exactly one of these is set when the library has a version.
	Version, VersionRef string
}

// Plugin is an entry in the plugins table.
type Plugin struct {
	Alias string
	ID    string

	Version, VersionRef string
}

// Module returns the group:name coordinates of this library.
func (l Library) Module() string {
	return l.Group + ":" + l.Name
}

// Accessor returns the expression that refers to this library in a build
// script.
func (l Library) Accessor() string {
	return "libs." + accessor(l.Alias)
}

// Accessor returns the expression that refers to this plugin in a plugins
// block.
func (p Plugin) Accessor() string {
	return "libs.plugins." + accessor(p.Alias)
}

func accessor(alias string) string {
	return strings.NewReplacer("-", ".", "_", ".").Replace(alias)
}

// Len returns the total number of libraries and plugins.
func (c *Catalog) Len() int {
	return c.libraries.Len() + c.plugins.Len()
}

// Version resolves a version, following a reference into the versions
// table.
func (c *Catalog) Version(literal, ref string) string {
	if ref != "" {
		v, _ := c.versions.Get(ref)
		return v
	}
	return literal
}

// Library looks up a library by alias.
func (c *Catalog) Library(alias string) (Library, bool) {
	return c.libraries.Get(alias)
}

// Plugin looks up a plugin by alias.
func (c *Catalog) Plugin(alias string) (Plugin, bool) {
	return c.plugins.Get(alias)
}

// Libraries returns every library, sorted by alias.
func (c *Catalog) Libraries() []Library {
	return c.libraries.Values()
}

// Plugins returns every plugin, sorted by alias.
func (c *Catalog) Plugins() []Plugin {
	return c.plugins.Values()
}

// AddLibrary records a library and returns its entry.
//
// If the module is already present, the existing entry is kept, and its
// version is raised to version if version is newer.
func (c *Catalog) AddLibrary(group, name, version string) Library {
	module := group + ":" + name
	for _, lib := range c.libraries.Values() {
		if lib.Module() != module {
			continue
		}
		c.raise(&lib.Version, lib.VersionRef, version)
		c.libraries.Set(lib.Alias, lib)
		return lib
	}

	alias := libraryAlias(group, name)
	if existing, ok := c.libraries.Get(alias); ok && existing.Module() != module {
		alias = qualifiedAlias(group, name)
	}

	lib := Library{Alias: alias, Group: group, Name: name}
	lib.Version, lib.VersionRef = c.addVersion(alias, version)
	c.libraries.Set(alias, lib)
	return lib
}

// AddPlugin records a plugin and returns its entry.
//
// If the plugin is already present, the existing entry is kept, and its
// version is raised to version if version is newer.
func (c *Catalog) AddPlugin(id, version string) Plugin {
	for _, plugin := range c.plugins.Values() {
		if plugin.ID != id {
			continue
		}
		c.raise(&plugin.Version, plugin.VersionRef, version)
		c.plugins.Set(plugin.Alias, plugin)
		return plugin
	}

	alias := pluginAlias(id)
	if _, ok := c.plugins.Get(alias); ok {
		alias = cases.Kebab.Convert(id)
	}

	plugin := Plugin{Alias: alias, ID: id}
	plugin.Version, plugin.VersionRef = c.addVersion(alias, version)
	c.plugins.Set(alias, plugin)
	return plugin
}

// addVersion records version under alias in the versions table, unless
// that key is already used for a different version, in which case the
// version is returned as a literal.
func (c *Catalog) addVersion(alias, version string) (literal, ref string) {
	if version == "" {
		return "", ""
	}
	if existing, ok := c.versions.Get(alias); ok && existing != version {
		return version, ""
	}
	c.versions.Set(alias, version)
	return "", alias
}

// raise replaces the version of an entry with version, if version is newer.
func (c *Catalog) raise(literal *string, ref, version string) {
	current := c.Version(*literal, ref)
	if version == "" || !Newer(version, current) {
		return
	}
	if ref != "" {
		c.versions.Set(ref, version)
		return
	}
	*literal = version
}

// Newer returns whether version a is newer than b. Versions are compared as
// semantic versions where possible, and lexically otherwise. Any version is
// newer than the empty version.
func Newer(a, b string) bool {
	if b == "" {
		return a != ""
	}
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return a > b
	}
	return va.GreaterThan(vb)
}

// libraryAlias derives an alias from a module's name.
func libraryAlias(_, name string) string {
	return cases.Kebab.Convert(name)
}

// qualifiedAlias derives an alias from the last component of a module's
// group and its name, for use when the plain alias is taken.
func qualifiedAlias(group, name string) string {
	if i := strings.LastIndexByte(group, '.'); i >= 0 {
		group = group[i+1:]
	}
	return cases.Kebab.Convert(group + "-" + name)
}

// pluginAlias derives an alias from the last two components of a plugin
// id, so org.jetbrains.kotlin.jvm becomes kotlin-jvm.
func pluginAlias(id string) string {
	parts := strings.Split(id, ".")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return cases.Kebab.Convert(strings.Join(parts, "-"))
}
