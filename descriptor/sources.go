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

package descriptor

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// sourceData is passed to source templates.
type sourceData struct {
	Package     string
	Class       string
	Application bool
}

// sources renders the starter sources of a project.
func (g *generator) sources(u unit) ([]File, error) {
	data := sourceData{Package: u.pkg, Class: "Library", Application: u.application}
	if u.application {
		data.Class = "App"
	}

	main := g.language
	test := languageOf(g.framework.language)
	dir := packagePath(u.pkg)

	var files []File
	for _, src := range []struct {
		template, root, name string
	}{
		{"main-" + string(g.Language) + ".tmpl", "src/main/" + main.sourceDir, data.Class + main.extension},
		{"test-" + string(g.TestFramework) + ".tmpl", "src/test/" + test.sourceDir, data.Class + "Test" + test.extension},
	} {
		var out strings.Builder
		if err := templates.ExecuteTemplate(&out, src.template, data); err != nil {
			return nil, fmt.Errorf("could not render %s: %w", src.template, err)
		}
		files = append(files, File{
			Path:    path.Join(u.dir, src.root, dir, src.name),
			Content: out.String(),
		})
	}
	return files, nil
}
