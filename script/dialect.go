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

const (
	Kotlin Dialect = iota // Kotlin DSL, build.gradle.kts.
	Groovy                // Groovy DSL, build.gradle.
)

// Dialect is one of the two scripting languages a build script can be
// written in.
type Dialect int

// ParseDialect parses the name of a dialect, as accepted on the command line
// and in project descriptors.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "kotlin", "kts":
		return Kotlin, nil
	case "groovy":
		return Groovy, nil
	default:
		return 0, fmt.Errorf("unknown build script dialect %q (want kotlin or groovy)", name)
	}
}

// String implements [fmt.Stringer].
func (d Dialect) String() string {
	switch d {
	case Kotlin:
		return "kotlin"
	case Groovy:
		return "groovy"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// Extension returns the file extension of scripts in this dialect,
// including the leading dot.
func (d Dialect) Extension() string {
	return SyntaxFor(d).Extension()
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Dialect) UnmarshalText(text []byte) error {
	v, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
