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

// kotlin is the [Syntax] of the Kotlin DSL.
type kotlin struct{}

var kotlinEscapes = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func (kotlin) isSyntax()           {}
func (kotlin) Dialect() Dialect    { return Kotlin }
func (kotlin) Extension() string   { return ".gradle.kts" }
func (kotlin) LineComment() string { return "//" }

func (kotlin) String(value string) string {
	return `"` + kotlinEscapes.Replace(value) + `"`
}

func (k kotlin) MapLiteral(m *MapLiteral) string {
	var out strings.Builder
	out.WriteString("mapOf(")
	for i, entry := range m.entries {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(k.String(entry.Key))
		out.WriteString(" to ")
		out.WriteString(Render(k, entry.Value))
	}
	out.WriteByte(')')
	return out.String()
}

func (k kotlin) FirstArg(e Expr) string {
	return Render(k, e)
}

func (k kotlin) Plugin(id, version string) string {
	if version != "" {
		return "id(" + k.String(id) + ") version " + k.String(version)
	}
	switch {
	case bareWordPattern.MatchString(id):
		return id
	case strings.Contains(id, "."):
		return "id(" + k.String(id) + ")"
	default:
		return "`" + id + "`"
	}
}

func (kotlin) PluginAlias(ref string) string {
	return "alias(" + ref + ")"
}

func (k kotlin) NestedPlugin(id, version string) string {
	if version != "" {
		panic(fmt.Sprintf("script: cannot apply plugin %q with version %q in a nested block", id, version))
	}
	return "apply(plugin = " + k.String(id) + ")"
}

func (k kotlin) Dependency(configuration string, notation Expr) string {
	return configuration + "(" + Render(k, notation) + ")"
}

func (k kotlin) Property(name string, value Expr) string {
	if value.IsBooleanValued() {
		name = booleanAccessor(name)
	}
	return name + " = " + Render(k, value)
}

func (kotlin) TaskSelector(sel TaskSelector) string {
	if sel.Type == "" {
		return "val " + sel.Name + " by tasks.getting"
	}
	return "val " + sel.Name + " by tasks.getting(" + sel.Type + "::class)"
}

func (kotlin) TaskTypeSelector(sel TaskTypeSelector) string {
	return "tasks.withType<" + sel.Type + ">()"
}

func (kotlin) TaskRegistration(name, taskType string) string {
	if taskType == "" {
		return "val " + name + " by tasks.registering"
	}
	return "val " + name + " by tasks.registering(" + taskType + "::class)"
}

func (kotlin) ConventionSelector(ConventionSelector) (string, bool) {
	return "", false
}
