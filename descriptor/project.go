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

// Package descriptor describes a project to generate, and turns that
// description into the files of a new build.
package descriptor

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/buildinit/catalog"
	"github.com/bufbuild/buildinit/internal/cases"
	"github.com/bufbuild/buildinit/script"
)

// Type is the kind of project to generate.
type Type string

const (
	Application Type = "application"
	Library     Type = "library"
	Basic       Type = "basic" // A build with no sources.
)

// Language is the implementation language of a project.
type Language string

const (
	Java   Language = "java"
	Kotlin Language = "kotlin"
	Groovy Language = "groovy"
	Scala  Language = "scala"
)

// TestFramework is the framework the starter tests are written for.
type TestFramework string

const (
	JUnit4       TestFramework = "junit4"
	JUnitJupiter TestFramework = "junit-jupiter"
	TestNG       TestFramework = "testng"
	Spock        TestFramework = "spock"
	KotlinTest   TestFramework = "kotlintest"
	ScalaTest    TestFramework = "scalatest"
)

var (
	types      = []Type{Application, Library, Basic}
	languages  = []Language{Java, Kotlin, Groovy, Scala}
	frameworks = []TestFramework{JUnit4, JUnitJupiter, TestNG, Spock, KotlinTest, ScalaTest}

	namePattern    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	packagePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)*$`)
)

// Project describes a build to generate.
type Project struct {
	Name          string         `yaml:"name"`
	Type          Type           `yaml:"type"`
	Language      Language       `yaml:"language"`
	DSL           script.Dialect `yaml:"dsl"`
	TestFramework TestFramework  `yaml:"test_framework"`
	Package       string         `yaml:"package"`
	JavaVersion   int            `yaml:"java_version"`
	Subprojects   []string       `yaml:"subprojects"`
	UseCatalog    bool           `yaml:"use_catalog"`
	NoComments    bool           `yaml:"no_comments"`

	// An existing version catalog to merge generated entries into.
	Catalog *catalog.Catalog `yaml:"-"`
}

// Load reads a project descriptor from YAML. Unknown keys are an error.
// Defaults are applied to the result.
func Load(r io.Reader) (*Project, error) {
	p := new(Project)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse project descriptor: %w", err)
	}
	p.ApplyDefaults()
	return p, nil
}

// ApplyDefaults fills in unset fields.
func (p *Project) ApplyDefaults() {
	if p.Type == "" {
		p.Type = Application
	}
	if p.Language == "" {
		p.Language = Java
	}
	if p.TestFramework == "" {
		p.TestFramework = languageOf(p.Language).testFramework
	}
	if p.Package == "" {
		p.Package = DefaultPackage(p.Name)
	}
	if p.JavaVersion == 0 {
		p.JavaVersion = DefaultJavaVersion
	}
}

// DefaultJavaVersion is the toolchain version used when none is given.
const DefaultJavaVersion = 21

// DefaultPackage derives a package name from a project name.
func DefaultPackage(name string) string {
	pkg := cases.Flat.Convert(name)
	if pkg == "" {
		return "org.example"
	}
	if pkg[0] >= '0' && pkg[0] <= '9' {
		pkg = "p" + pkg
	}
	return "org." + pkg
}

// Validate checks that the descriptor is complete and consistent.
func (p *Project) Validate() error {
	var errs []error
	if !namePattern.MatchString(p.Name) {
		errs = append(errs, fmt.Errorf("invalid project name %q", p.Name))
	}
	if !slices.Contains(types, p.Type) {
		errs = append(errs, fmt.Errorf("unknown project type %q (want one of %s)", p.Type, list(types)))
	}
	if !slices.Contains(languages, p.Language) {
		errs = append(errs, fmt.Errorf("unknown language %q (want one of %s)", p.Language, list(languages)))
	}
	if !slices.Contains(frameworks, p.TestFramework) {
		errs = append(errs, fmt.Errorf("unknown test framework %q (want one of %s)", p.TestFramework, list(frameworks)))
	} else if need := frameworkOf(p.TestFramework).requires; need != "" && need != p.Language {
		errs = append(errs, fmt.Errorf("test framework %s requires language %s, not %s", p.TestFramework, need, p.Language))
	}
	if !packagePattern.MatchString(p.Package) {
		errs = append(errs, fmt.Errorf("invalid package %q", p.Package))
	}
	if p.JavaVersion < 8 {
		errs = append(errs, fmt.Errorf("java version %d is too old (want 8 or later)", p.JavaVersion))
	}
	seen := make(map[string]struct{})
	for _, sub := range p.Subprojects {
		if !namePattern.MatchString(sub) {
			errs = append(errs, fmt.Errorf("invalid subproject name %q", sub))
		}
		if _, ok := seen[sub]; ok {
			errs = append(errs, fmt.Errorf("duplicate subproject %q", sub))
		}
		seen[sub] = struct{}{}
	}
	if p.Type == Basic && len(p.Subprojects) > 0 {
		errs = append(errs, errors.New("a basic project cannot have subprojects"))
	}
	return errors.Join(errs...)
}

func list[S ~string](values []S) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = string(v)
	}
	return strings.Join(strs, ", ")
}
