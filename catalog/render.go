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

package catalog

import (
	"strconv"
	"strings"

	"github.com/bufbuild/buildinit/dom"
)

// Render renders the catalog as TOML. Tables are written in the order
// versions, libraries, plugins; empty tables are omitted.
func (c *Catalog) Render(header ...string) string {
	return dom.Render(dom.Options{}, func(push dom.Sink) {
		for _, line := range header {
			push(dom.Line(strings.TrimRight("# "+line, " ")))
		}
		if len(header) > 0 {
			push(dom.BlankLine())
		}

		if c.versions.Len() > 0 {
			push(dom.Line("[versions]"))
			c.versions.Scan(func(alias, version string) bool {
				push(dom.Line(alias + " = " + quote(version)))
				return true
			})
			push(dom.BlankLine())
		}

		if c.libraries.Len() > 0 {
			push(dom.Line("[libraries]"))
			c.libraries.Scan(func(alias string, lib Library) bool {
				fields := []string{"module = " + quote(lib.Module())}
				fields = appendVersion(fields, lib.Version, lib.VersionRef)
				push(dom.Line(alias + " = " + inlineTable(fields)))
				return true
			})
			push(dom.BlankLine())
		}

		if c.plugins.Len() > 0 {
			push(dom.Line("[plugins]"))
			c.plugins.Scan(func(alias string, plugin Plugin) bool {
				fields := []string{"id = " + quote(plugin.ID)}
				fields = appendVersion(fields, plugin.Version, plugin.VersionRef)
				push(dom.Line(alias + " = " + inlineTable(fields)))
				return true
			})
		}
	})
}

func appendVersion(fields []string, literal, ref string) []string {
	switch {
	case ref != "":
		return append(fields, "version.ref = "+quote(ref))
	case literal != "":
		return append(fields, "version = "+quote(literal))
	default:
		return fields
	}
}

func inlineTable(fields []string) string {
	return "{ " + strings.Join(fields, ", ") + " }"
}

// quote quotes s as a TOML basic string.
func quote(s string) string {
	return strconv.Quote(s)
}
