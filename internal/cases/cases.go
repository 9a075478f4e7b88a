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

// Package cases provides functions for inter-converting between different
// case styles.
package cases

import (
	"iter"
	"strings"
	"unicode"
)

// Case is a target case style to convert to.
type Case int

const (
	Snake  Case = iota // snake_case
	Kebab              // kebab-case
	Flat               // flatcase
	Camel              // camelCase
	Pascal             // PascalCase
)

// Convert converts str to the given case.
func (c Case) Convert(str string) string {
	return Converter{Case: c}.Convert(str)
}

// Converter contains specific options for converting to a given case.
type Converter struct {
	Case Case

	// If set, runes will not be converted to lowercase as part of the
	// conversion. Only the runes a case style requires to be uppercase are
	// touched.
	NoLowercase bool
}

// Convert convert str according to the options set in this converter.
func (c Converter) Convert(str string) string {
	buf := new(strings.Builder)
	c.Append(buf, str)
	return buf.String()
}

// Append is like [Converter.Convert], but it appends to the given buffer
// instead.
func (c Converter) Append(buf *strings.Builder, str string) {
	c.Case.convert(buf, !c.NoLowercase, Words(str))
}

func (c Case) convert(buf *strings.Builder, lowercase bool, words iter.Seq[string]) {
	switch c {
	case Snake, Kebab, Flat:
		var sep string
		switch c {
		case Snake:
			sep = "_"
		case Kebab:
			sep = "-"
		}
		first := true
		for word := range words {
			if !first {
				buf.WriteString(sep)
			}
			for _, r := range word {
				if lowercase {
					r = unicode.ToLower(r)
				}
				buf.WriteRune(r)
			}
			first = false
		}
	case Camel, Pascal:
		uppercase := c == Pascal
		firstWord := true
		for word := range words {
			firstRune := true
			for _, r := range word {
				upper := (uppercase || !firstWord) && firstRune
				switch {
				case upper:
					r = unicode.ToUpper(r)
				case lowercase:
					r = unicode.ToLower(r)
				}
				buf.WriteRune(r)
				firstRune = false
			}
			firstWord = false
		}
	}
}

// Words splits str into words.
//
// Words are separated by any rune that is not a letter or digit, by a
// lowercase-to-uppercase transition ("fooBar"), and before the last capital
// of a run of capitals that is followed by a lowercase letter ("HTTPServer").
// Digits stay attached to the word they follow.
func Words(str string) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(str)
		start := -1
		flush := func(end int) bool {
			if start < 0 {
				return true
			}
			word := string(runes[start:end])
			start = -1
			return yield(word)
		}

		for i, r := range runes {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				if !flush(i) {
					return
				}
				continue
			}
			if start < 0 {
				start = i
				continue
			}

			prev := runes[i-1]
			split := unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev))
			if !split && unicode.IsUpper(r) && unicode.IsUpper(prev) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				split = true
			}
			if split {
				if !flush(i) {
					return
				}
				start = i
			}
		}
		flush(len(runes))
	}
}
