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

package cases_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/buildinit/internal/cases"
)

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str  string
		want []string
	}{
		{str: ""},
		{str: "_"},
		{str: "-."},

		{str: "foo", want: []string{"foo"}},
		{str: "_foo", want: []string{"foo"}},
		{str: "foo_bar", want: []string{"foo", "bar"}},
		{str: "junit-jupiter-engine", want: []string{"junit", "jupiter", "engine"}},
		{str: "org.example", want: []string{"org", "example"}},
		{str: "fooBar", want: []string{"foo", "Bar"}},
		{str: "FOOBar", want: []string{"FOO", "Bar"}},
		{str: "FooX", want: []string{"Foo", "X"}},
		{str: "FOO", want: []string{"FOO"}},
		{str: "slf4j", want: []string{"slf4j"}},
		{str: "log4jApi", want: []string{"log4j", "Api"}},
	}

	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			t.Parallel()
			got := slices.Collect(cases.Words(test.str))
			assert.Equal(t, test.want, got)
		})
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str                             string
		snake, kebab, flat, camel, pasc string
	}{
		{str: ""},
		{
			str:   "foo",
			snake: "foo", kebab: "foo", flat: "foo",
			camel: "foo", pasc: "Foo",
		},
		{
			str:   "fooBar",
			snake: "foo_bar", kebab: "foo-bar", flat: "foobar",
			camel: "fooBar", pasc: "FooBar",
		},
		{
			str:   "my-App",
			snake: "my_app", kebab: "my-app", flat: "myapp",
			camel: "myApp", pasc: "MyApp",
		},
		{
			str:   "FOO_BAR",
			snake: "foo_bar", kebab: "foo-bar", flat: "foobar",
			camel: "fooBar", pasc: "FooBar",
		},
	}

	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.snake, cases.Snake.Convert(test.str))
			assert.Equal(t, test.kebab, cases.Kebab.Convert(test.str))
			assert.Equal(t, test.flat, cases.Flat.Convert(test.str))
			assert.Equal(t, test.camel, cases.Camel.Convert(test.str))
			assert.Equal(t, test.pasc, cases.Pascal.Convert(test.str))
		})
	}
}

func TestNoLowercase(t *testing.T) {
	t.Parallel()

	pascal := cases.Converter{Case: cases.Pascal, NoLowercase: true}
	assert.Equal(t, "Enabled", pascal.Convert("enabled"))
	assert.Equal(t, "FailOnWarning", pascal.Convert("failOnWarning"))
	assert.Equal(t, "HTTPProxy", pascal.Convert("HTTPProxy"))
}
