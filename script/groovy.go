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
)

// groovy is the [Syntax] of the Groovy DSL.
type groovy struct{}

var groovyEscapes = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func (groovy) isSyntax()           {}
func (groovy) Dialect() Dialect    { return Groovy }
func (groovy) Extension() string   { return ".gradle" }
func (groovy) LineComment() string { return "//" }

func (groovy) String(value string) string {
	return "'" + groovyEscapes.Replace(value) + "'"
}

func (g groovy) MapLiteral(m *MapLiteral) string {
	if m.Len() == 0 {
		return "[:]"
	}
	return "[" + g.mapEntries(m) + "]"
}

func (g groovy) mapEntries(m *MapLiteral) string {
	var out strings.Builder
	for i, entry := range m.entries {
		if i > 0 {
			out.WriteString(", ")
		}
		if isIdentifier(entry.Key) {
			out.WriteString(entry.Key)
		} else {
			out.WriteString(g.String(entry.Key))
		}
		out.WriteString(": ")
		out.WriteString(Render(g, entry.Value))
	}
	return out.String()
}

// FirstArg writes a non-empty map literal as named arguments.
func (g groovy) FirstArg(e Expr) string {
	if m, ok := e.(*MapLiteral); ok && m.Len() > 0 {
		return g.mapEntries(m)
	}
	return Render(g, e)
}

func (g groovy) Plugin(id, version string) string {
	if version == "" {
		return "id " + g.String(id)
	}
	return "id " + g.String(id) + " version " + g.String(version)
}

func (groovy) PluginAlias(ref string) string {
	return "alias(" + ref + ")"
}

func (g groovy) NestedPlugin(id, version string) string {
	if version != "" {
		panic(fmt.Sprintf("script: cannot apply plugin %q with version %q in a nested block", id, version))
	}
	return "apply plugin: " + g.String(id)
}

func (g groovy) Dependency(configuration string, notation Expr) string {
	return configuration + " " + g.FirstArg(notation)
}

func (g groovy) Property(name string, value Expr) string {
	return name + " = " + Render(g, value)
}

func (groovy) TaskSelector(sel TaskSelector) string {
	return sel.Name
}

func (groovy) TaskTypeSelector(sel TaskTypeSelector) string {
	return "tasks.withType(" + sel.Type + ")"
}

func (g groovy) TaskRegistration(name, taskType string) string {
	if taskType == "" {
		return "tasks.register(" + g.String(name) + ")"
	}
	return "tasks.register(" + g.String(name) + ", " + taskType + ")"
}

func (groovy) ConventionSelector(sel ConventionSelector) (string, bool) {
	return sel.Name, true
}
