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

package main

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/bufbuild/buildinit/descriptor"
	"github.com/bufbuild/buildinit/script"
)

// projectFlags describe a project on the command line.
type projectFlags struct {
	descriptor string

	name, kind, language, dsl, testFramework, pkg string
	javaVersion                                   int
	subprojects                                   []string
	useCatalog, noComments                        bool
}

func (f *projectFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.descriptor, "descriptor", "d", "", "YAML project descriptor; other flags override its fields")
	flags.StringVar(&f.name, "name", "", "Project name (default: the name of the target directory)")
	flags.StringVar(&f.kind, "type", "", "Project type: application, library or basic")
	flags.StringVar(&f.language, "language", "", "Implementation language: java, kotlin, groovy or scala")
	flags.StringVar(&f.dsl, "dsl", "", "Build script DSL: kotlin or groovy")
	flags.StringVar(&f.testFramework, "test-framework", "", "Test framework (default: depends on the language)")
	flags.StringVar(&f.pkg, "package", "", "Source package (default: derived from the project name)")
	flags.IntVar(&f.javaVersion, "java-version", 0, "Java toolchain version")
	flags.StringArrayVar(&f.subprojects, "subproject", nil, "Subproject to generate (repeatable)")
	flags.BoolVar(&f.useCatalog, "use-catalog", false, "Declare dependencies in a version catalog")
	flags.BoolVar(&f.noComments, "no-comments", false, "Leave explanatory comments out of generated files")
}

// project builds the project to generate into dir.
func (f *projectFlags) project(cmd *cobra.Command, dir string) (*descriptor.Project, error) {
	p := new(descriptor.Project)
	if f.descriptor != "" {
		file, err := os.Open(f.descriptor)
		if err != nil {
			return nil, eris.Wrapf(err, "could not open descriptor")
		}
		defer file.Close()

		p, err = descriptor.Load(file)
		if err != nil {
			return nil, eris.Wrapf(err, "could not load %s", f.descriptor)
		}
	}

	changed := cmd.Flags().Changed
	if changed("name") {
		p.Name = f.name
	}
	if changed("type") {
		p.Type = descriptor.Type(f.kind)
	}
	if changed("language") {
		p.Language = descriptor.Language(f.language)
		if !changed("test-framework") {
			p.TestFramework = ""
		}
	}
	if changed("dsl") {
		dsl, err := script.ParseDialect(f.dsl)
		if err != nil {
			return nil, err
		}
		p.DSL = dsl
	}
	if changed("test-framework") {
		p.TestFramework = descriptor.TestFramework(f.testFramework)
	}
	if changed("package") {
		p.Package = f.pkg
	}
	if changed("java-version") {
		p.JavaVersion = f.javaVersion
	}
	if changed("subproject") {
		p.Subprojects = f.subprojects
	}
	if changed("use-catalog") {
		p.UseCatalog = f.useCatalog
	}
	if changed("no-comments") {
		p.NoComments = f.noComments
	}

	if p.Name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, eris.Wrapf(err, "could not resolve %s", dir)
		}
		p.Name = filepath.Base(abs)
	}
	p.ApplyDefaults()
	return p, nil
}
