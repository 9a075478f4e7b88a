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
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Expr is a value appearing in a build script: an argument, the right-hand
// side of an assignment, or a dependency notation.
//
// The set of expressions is closed; see [StringLiteral], [Literal],
// [MapLiteral], [MethodCall] and [Reference].
type Expr interface {
	// IsBooleanValued returns whether this expression evaluates to a
	// boolean. Kotlin uses this to pick the accessor name of a property.
	IsBooleanValued() bool

	isExpr()
}

// StringLiteral is a quoted string.
type StringLiteral struct {
	Value string
}

// Literal is a number or boolean, stored in its source form.
type Literal struct {
	Text    string
	Boolean bool
}

// Reference is an unquoted reference to a value defined elsewhere, such as
// libs.guava or JavaVersion.VERSION_17.
type Reference struct {
	Path string
}

// MethodCall is a call expression, such as project(":lib").
type MethodCall struct {
	Name string
	Args []Expr
}

// MapLiteral is an ordered map from string keys to expressions.
type MapLiteral struct {
	entries []MapEntry
}

// MapEntry is a single entry of a [MapLiteral].
type MapEntry struct {
	Key   string
	Value Expr
}

func (StringLiteral) isExpr() {}
func (Literal) isExpr()       {}
func (Reference) isExpr()     {}
func (MethodCall) isExpr()    {}
func (*MapLiteral) isExpr()   {}

func (StringLiteral) IsBooleanValued() bool { return false }
func (l Literal) IsBooleanValued() bool     { return l.Boolean }
func (Reference) IsBooleanValued() bool     { return false }
func (MethodCall) IsBooleanValued() bool    { return false }
func (*MapLiteral) IsBooleanValued() bool   { return false }

// Str returns a string literal.
func Str(value string) StringLiteral {
	return StringLiteral{Value: value}
}

// Bool returns a boolean literal.
func Bool(value bool) Literal {
	return Literal{Text: strconv.FormatBool(value), Boolean: true}
}

// Number returns a numeric literal. Floating-point values always render
// with a decimal point or exponent, so they read back as floating-point.
//
// NaN and infinities have no literal form and panic.
func Number[N constraints.Integer | constraints.Float](value N) Literal {
	switch v := any(value).(type) {
	case float32:
		return Literal{Text: floatText(float64(v), 32)}
	case float64:
		return Literal{Text: floatText(v, 64)}
	default:
		return Literal{Text: fmt.Sprint(value)}
	}
}

func floatText(v float64, bits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("script: cannot write %v as a literal", v))
	}
	text := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}
	return text
}

// Ref returns a reference expression.
func Ref(path string) Reference {
	return Reference{Path: path}
}

// Call returns a method call expression. Each argument is converted with
// [ValueOf].
func Call(name string, args ...any) MethodCall {
	call := MethodCall{Name: name}
	for _, arg := range args {
		call.Args = append(call.Args, ValueOf(arg))
	}
	return call
}

// MapOf returns a map literal built from alternating keys and values. Keys
// must be strings; values are converted with [ValueOf].
func MapOf(pairs ...any) *MapLiteral {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("script: MapOf called with an odd number of arguments (%d)", len(pairs)))
	}
	m := new(MapLiteral)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("script: map literal key must be a string, got %T", pairs[i]))
		}
		m.Put(key, pairs[i+1])
	}
	return m
}

// Put sets key to value, converting value with [ValueOf]. An existing key
// keeps its position.
func (m *MapLiteral) Put(key string, value any) *MapLiteral {
	expr := ValueOf(value)
	for i := range m.entries {
		if m.entries[i].Key == key {
			m.entries[i].Value = expr
			return m
		}
	}
	m.entries = append(m.entries, MapEntry{Key: key, Value: expr})
	return m
}

// Entries returns the entries of this map in order.
func (m *MapLiteral) Entries() []MapEntry {
	return slices.Clone(m.entries)
}

// Len returns the number of entries in this map.
func (m *MapLiteral) Len() int {
	return len(m.entries)
}

// ValueOf converts a Go value into an expression.
//
// Strings become string literals; integers, floats and booleans become
// literals; expressions are returned as-is. A map with string keys becomes a
// map literal with its keys in sorted order and each value converted with
// ValueOf. Anything else is a programming error and panics.
func ValueOf(value any) Expr {
	switch v := value.(type) {
	case Expr:
		return v
	case string:
		return Str(v)
	case bool:
		return Bool(v)
	case int:
		return Number(v)
	case int8:
		return Number(v)
	case int16:
		return Number(v)
	case int32:
		return Number(v)
	case int64:
		return Number(v)
	case uint:
		return Number(v)
	case uint8:
		return Number(v)
	case uint16:
		return Number(v)
	case uint32:
		return Number(v)
	case uint64:
		return Number(v)
	case float32:
		return Number(v)
	case float64:
		return Number(v)
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		m := new(MapLiteral)
		for _, k := range keys {
			m.Put(k.String(), rv.MapIndex(k).Interface())
		}
		return m
	}
	panic(fmt.Sprintf("script: cannot convert %s to an expression", describe(value)))
}

func describe(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// Render renders an expression in the given syntax.
func Render(s Syntax, e Expr) string {
	switch e := e.(type) {
	case StringLiteral:
		return s.String(e.Value)
	case Literal:
		return e.Text
	case Reference:
		return e.Path
	case *MapLiteral:
		return s.MapLiteral(e)
	case MethodCall:
		var out strings.Builder
		out.WriteString(e.Name)
		out.WriteByte('(')
		for i, arg := range e.Args {
			if i == 0 {
				out.WriteString(s.FirstArg(arg))
				continue
			}
			out.WriteString(", ")
			out.WriteString(Render(s, arg))
		}
		out.WriteByte(')')
		return out.String()
	case nil:
		panic("script: cannot render a nil expression")
	}
	panic(fmt.Sprintf("script: unexpected expression type %T", e))
}
