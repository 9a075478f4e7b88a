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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errs bytes.Buffer
	err = newApp(&out, &errs).execute(context.Background(), args)
	return out.String(), errs.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "buildinit dev\n", stdout)
}

func TestRender(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "render", "--name", "demo", "--type", "basic", "--dsl", "groovy", "--no-comments")
	require.NoError(t, err)
	assert.Equal(t, `==> settings.gradle <==
/*
 * This file was generated by buildinit.
 */

plugins {
    id 'org.gradle.toolchains.foojay-resolver-convention' version '0.8.0'
}

rootProject.name = 'demo'

==> build.gradle <==
/*
 * This file was generated by buildinit.
 */

==> .gitignore <==
# Ignore Gradle project-specific cache directory
.gradle

# Ignore Gradle build output directory
build
`, stdout)
}

func TestRenderPath(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "render", "--name", "demo", "--path", "**/*.kts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> settings.gradle.kts <==\n")
	assert.Contains(t, stdout, "\n==> app/build.gradle.kts <==\n")
	assert.NotContains(t, stdout, ".gitignore")
	assert.NotContains(t, stdout, "App.java")

	_, _, err = run(t, "render", "--name", "demo", "--path", "[")
	assert.ErrorContains(t, err, `invalid --path pattern "["`)
}

func TestRenderDefaultName(t *testing.T) {
	t.Parallel()

	// Named after the working directory.
	stdout, _, err := run(t, "render", "--type", "basic")
	require.NoError(t, err)
	assert.Contains(t, stdout, "rootProject.name = \"buildinit\"\n")
}

func TestRenderDescriptor(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "project.yaml", "name: shapes\nlanguage: groovy\ndsl: groovy\n")

	stdout, _, err := run(t, "render", "-d", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "rootProject.name = 'shapes'\n")
	assert.Contains(t, stdout, "testImplementation 'org.spockframework:spock-core:2.3-groovy-4.0'\n")

	// Changing the language picks that language's test framework.
	stdout, _, err = run(t, "render", "-d", path, "--language", "kotlin")
	require.NoError(t, err)
	assert.Contains(t, stdout, "testImplementation 'org.jetbrains.kotlin:kotlin-test-junit5'\n")
	assert.NotContains(t, stdout, "spock")
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"dsl", []string{"--name", "demo", "--dsl", "maven"}, `unknown build script dialect "maven"`},
		{"framework", []string{"--name", "demo", "--test-framework", "spock"}, "requires language groovy"},
		{"descriptor", []string{"-d", "does-not-exist.yaml"}, "could not open descriptor"},
		{"args", []string{"extra"}, "unknown command"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := run(t, append([]string{"render"}, test.args...)...)
			assert.ErrorContains(t, err, test.want)
		})
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, stderr, err := run(t, "init", dir, "--name", "demo", "--use-catalog", "-j", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "generated build")
	assert.NotContains(t, stderr, "wrote file")

	assert.FileExists(t, filepath.Join(dir, "app", "build.gradle.kts"))
	assert.FileExists(t, filepath.Join(dir, "gradle", "libs.versions.toml"))
	assert.FileExists(t, filepath.Join(dir, "app", "src", "main", "java", "org", "demo", "App.java"))

	_, _, err = run(t, "init", dir, "--name", "demo", "--use-catalog")
	assert.ErrorContains(t, err, "refusing to overwrite settings.gradle.kts")

	_, _, err = run(t, "init", dir, "--name", "demo", "--use-catalog", "--overwrite")
	assert.NoError(t, err)
}

func TestInitVerbose(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "--verbose", "init", t.TempDir(), "--name", "demo", "--type", "basic")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stderr, "wrote file"), stderr)
	assert.Contains(t, stderr, "path=settings.gradle.kts")
}

func TestConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := writeFile(t, dir, "buildinit.yaml", `
dsl: groovy
no-comments: true
type: library
subproject: [core, util]
unrelated: 1
`)

	stdout, _, err := run(t, "render", "--config", config, "--name", "demo")
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> core/build.gradle <==\n")
	assert.Contains(t, stdout, "include('core', 'util')\n")
	assert.NotContains(t, stdout, "Apply the")

	// Flags win over the config.
	stdout, _, err = run(t, "render", "--config", config, "--name", "demo", "--dsl", "kotlin")
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> core/build.gradle.kts <==\n")

	_, stderr, err := run(t, "--verbose", "--config", config, "render", "--name", "demo")
	require.NoError(t, err)
	assert.Contains(t, stderr, "flag=dsl")
	assert.NotContains(t, stderr, "unrelated")

	_, _, err = run(t, "render", "--config", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "could not read config")

	bad := writeFile(t, dir, "bad.yaml", "java-version: many\n")
	_, _, err = run(t, "render", "--config", bad, "--name", "demo")
	assert.ErrorContains(t, err, "invalid value for java-version")
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gradle", "libs.versions.toml")
	_, _, err := run(t, "catalog", path,
		"--library", "com.google.guava:guava:33.0.0-jre",
		"--plugin", "org.jetbrains.kotlin.jvm:1.9.20",
		"-w",
	)
	require.NoError(t, err)

	want := `# This file was generated by buildinit.

[versions]
guava = "33.0.0-jre"
kotlin-jvm = "1.9.20"

[libraries]
guava = { module = "com.google.guava:guava", version.ref = "guava" }

[plugins]
kotlin-jvm = { id = "org.jetbrains.kotlin.jvm", version.ref = "kotlin-jvm" }
`
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))

	stdout, _, err := run(t, "catalog", path, "--library", "com.google.guava:guava:32.1.0-jre")
	require.NoError(t, err)
	assert.Equal(t, want, stdout)

	stdout, _, err = run(t, "catalog", path, "--library", "com.google.guava:guava:34.0.0-jre")
	require.NoError(t, err)
	assert.Contains(t, stdout, "guava = \"34.0.0-jre\"\n")

	_, _, err = run(t, "catalog", path, "--library", "guava")
	assert.ErrorContains(t, err, `invalid library "guava"`)

	bad := writeFile(t, t.TempDir(), "bad.toml", "[versions")
	_, _, err = run(t, "catalog", bad)
	assert.ErrorContains(t, err, "could not load")
}
