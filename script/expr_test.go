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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/buildinit/script"
)

var (
	groovy = script.SyntaxFor(script.Groovy)
	kotlin = script.SyntaxFor(script.Kotlin)
)

func TestValueOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		value        any
		groovy, kt   string
		booleanValue bool
	}{
		{name: "string", value: "a'b\"c$d", groovy: `'a\'b"c$d'`, kt: `"a'b\"c\$d"`},
		{name: "backslash", value: `C:\dir`, groovy: `'C:\\dir'`, kt: `"C:\\dir"`},
		{name: "newline", value: "a\nb", groovy: `'a\nb'`, kt: `"a\nb"`},
		{name: "control", value: "a\tb\rc", groovy: `'a\tb\rc'`, kt: `"a\tb\rc"`},
		{name: "int", value: 17, groovy: "17", kt: "17"},
		{name: "uint8", value: uint8(3), groovy: "3", kt: "3"},
		{name: "float", value: 1.5, groovy: "1.5", kt: "1.5"},
		{name: "whole-float", value: 1.0, groovy: "1.0", kt: "1.0"},
		{name: "bool", value: true, groovy: "true", kt: "true", booleanValue: true},
		{name: "ref", value: script.Ref("libs.guava"), groovy: "libs.guava", kt: "libs.guava"},
		{
			name:   "call",
			value:  script.Call("uri", "https://example.com"),
			groovy: "uri('https://example.com')",
			kt:     `uri("https://example.com")`,
		},
		{
			name:   "map",
			value:  map[string]any{"name": "b", "group": "a", "transitive": false},
			groovy: "[group: 'a', name: 'b', transitive: false]",
			kt:     `mapOf("group" to "a", "name" to "b", "transitive" to false)`,
		},
		{
			name:   "string-map",
			value:  map[string]string{"name": "b", "group": "a"},
			groovy: "[group: 'a', name: 'b']",
			kt:     `mapOf("group" to "a", "name" to "b")`,
		},
		{
			name:   "int-map",
			value:  map[string]int{"b": 2, "a": 1},
			groovy: "[a: 1, b: 2]",
			kt:     `mapOf("a" to 1, "b" to 2)`,
		},
		{name: "empty-map", value: script.MapOf(), groovy: "[:]", kt: "mapOf()"},
		{
			name:   "quoted-key",
			value:  script.MapOf("my-key", 1),
			groovy: "['my-key': 1]",
			kt:     `mapOf("my-key" to 1)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := script.ValueOf(tt.value)
			assert.Equal(t, tt.groovy, script.Render(groovy, e))
			assert.Equal(t, tt.kt, script.Render(kotlin, e))
			assert.Equal(t, tt.booleanValue, e.IsBooleanValued())
		})
	}
}

func TestValueOfPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "script: cannot convert []int to an expression", func() {
		script.ValueOf([]int{1})
	})
	assert.PanicsWithValue(t, "script: cannot convert nil to an expression", func() {
		script.ValueOf(nil)
	})
	assert.PanicsWithValue(t, "script: cannot convert struct {} to an expression", func() {
		script.Call("foo", struct{}{})
	})
	assert.PanicsWithValue(t, "script: cannot convert map[int]string to an expression", func() {
		script.ValueOf(map[int]string{1: "a"})
	})
	assert.PanicsWithValue(t, "script: cannot convert []int to an expression", func() {
		script.ValueOf(map[string]any{"a": []int{1}})
	})
	assert.Panics(t, func() { script.MapOf("a") })
	assert.Panics(t, func() { script.MapOf(1, 2) })
}

func TestMapPut(t *testing.T) {
	t.Parallel()

	m := script.MapOf("a", 1, "b", 2)
	m.Put("a", 3)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "[a: 3, b: 2]", script.Render(groovy, m))
}

func TestFirstArgFlattening(t *testing.T) {
	t.Parallel()

	call := script.Call("foo", script.MapOf("group", "a", "name", "b"))
	assert.Equal(t, "foo(group: 'a', name: 'b')", script.Render(groovy, call))
	assert.Equal(t, `foo(mapOf("group" to "a", "name" to "b"))`, script.Render(kotlin, call))

	// Only the first argument is flattened.
	call = script.Call("foo", "x", script.MapOf("a", 1))
	assert.Equal(t, "foo('x', [a: 1])", script.Render(groovy, call))

	// Nested maps keep their brackets.
	call = script.Call("foo", script.MapOf("a", script.MapOf("b", 1)))
	assert.Equal(t, "foo(a: [b: 1])", script.Render(groovy, call))

	// Any string-keyed map is flattened the same way.
	call = script.Call("foo", map[string]string{"name": "b", "group": "a"})
	assert.Equal(t, "foo(group: 'a', name: 'b')", script.Render(groovy, call))
	assert.Equal(t, `foo(mapOf("group" to "a", "name" to "b"))`, script.Render(kotlin, call))

	// An empty map has nothing to flatten.
	call = script.Call("foo", script.MapOf())
	assert.Equal(t, "foo([:])", script.Render(groovy, call))
}

func TestNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", script.Number(int64(42)).Text)
	assert.Equal(t, "0.25", script.Number(float32(0.25)).Text)
	assert.Equal(t, "1e+21", script.Number(1e21).Text)
	assert.Equal(t, "1.0", script.Number(1.0).Text)
	assert.Equal(t, "-3.0", script.Number(float32(-3)).Text)
	assert.Equal(t, "7", script.Number(7).Text)
	assert.PanicsWithValue(t, "script: cannot write NaN as a literal", func() {
		script.Number(math.NaN())
	})
	assert.PanicsWithValue(t, "script: cannot write +Inf as a literal", func() {
		script.Number(math.Inf(1))
	})
	assert.False(t, script.Number(1).IsBooleanValued())
	assert.True(t, script.Bool(false).IsBooleanValued())
}
