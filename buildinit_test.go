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

package buildinit_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/buildinit"
	"github.com/bufbuild/buildinit/catalog"
	"github.com/bufbuild/buildinit/descriptor"
)

func project(t *testing.T, text string) *descriptor.Project {
	t.Helper()
	p, err := descriptor.Load(strings.NewReader(text))
	require.NoError(t, err)
	return p
}

func read(t *testing.T, dir, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(path)))
	require.NoError(t, err)
	return string(data)
}

func TestInit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := project(t, "name: demo\n")
	require.NoError(t, buildinit.Init(context.Background(), buildinit.Options{
		Dir:         dir,
		Project:     p,
		Parallelism: 2,
	}))

	files, err := p.Files()
	require.NoError(t, err)
	for _, f := range files {
		assert.Equal(t, f.Content, read(t, dir, f.Path), f.Path)
	}
	assert.Contains(t, read(t, dir, "settings.gradle.kts"), "rootProject.name = \"demo\"\n")
	assert.Nil(t, p.Catalog)
}

func TestInitRefusesOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.gradle.kts"), []byte("// mine\n"), 0o644))

	err := buildinit.Init(context.Background(), buildinit.Options{
		Dir:     dir,
		Project: project(t, "name: demo\n"),
	})
	require.Error(t, err)
	assert.True(t, eris.Is(err, buildinit.ErrExists))
	assert.Contains(t, err.Error(), "refusing to overwrite settings.gradle.kts")
	assert.Equal(t, "// mine\n", read(t, dir, "settings.gradle.kts"))
	assert.NoDirExists(t, filepath.Join(dir, "app"))

	require.NoError(t, buildinit.Init(context.Background(), buildinit.Options{
		Dir:       dir,
		Project:   project(t, "name: demo\n"),
		Overwrite: true,
	}))
	assert.Contains(t, read(t, dir, "settings.gradle.kts"), "rootProject.name")
}

func TestInitMergesCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gradle"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filepath.FromSlash(catalog.Path)), []byte(`
[versions]
guava = "34.0.0-jre"

[libraries]
guava = { module = "com.google.guava:guava", version.ref = "guava" }
micrometer = "io.micrometer:micrometer-core:1.12.0"
`), 0o644))

	p := project(t, "name: demo\nuse_catalog: true\n")
	require.NoError(t, buildinit.Init(context.Background(), buildinit.Options{Dir: dir, Project: p}))

	toml := read(t, dir, catalog.Path)
	assert.Contains(t, toml, "guava = \"34.0.0-jre\"\n")
	assert.Contains(t, toml, "micrometer = { module = \"io.micrometer:micrometer-core\", version = \"1.12.0\" }\n")
	assert.Contains(t, toml, "junit-jupiter = \"5.10.0\"\n")
	assert.Contains(t, read(t, dir, "app/build.gradle.kts"), "implementation(libs.guava)")

	// The caller's project is left alone.
	assert.Nil(t, p.Catalog)
}

func TestInitBadCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gradle"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filepath.FromSlash(catalog.Path)), []byte("[versions"), 0o644))

	err := buildinit.Init(context.Background(), buildinit.Options{
		Dir:     dir,
		Project: project(t, "name: demo\nuse_catalog: true\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not load gradle/libs.versions.toml")
}

func TestInitInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := buildinit.Init(context.Background(), buildinit.Options{
		Dir:     dir,
		Project: project(t, "name: demo\nlanguage: java\ntest_framework: spock\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires language groovy")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Error(t, buildinit.Init(context.Background(), buildinit.Options{Dir: dir}))
}

func TestInitWriteError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A file where a directory must go.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app"), nil, 0o644))

	err := buildinit.Init(context.Background(), buildinit.Options{
		Dir:       dir,
		Project:   project(t, "name: demo\n"),
		Overwrite: true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not create directory for app/")
}

func TestInitCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	err := buildinit.Init(ctx, buildinit.Options{Dir: dir, Project: project(t, "name: demo\n")})
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, "settings.gradle.kts"))
}

func TestInitLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(zerolog.SyncWriter(&buf)).Level(zerolog.DebugLevel)

	p := project(t, "name: demo\ntype: basic\n")
	require.NoError(t, buildinit.Init(context.Background(), buildinit.Options{
		Dir:     t.TempDir(),
		Project: p,
		Logger:  &logger,
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Contains(t, line, `"message":"wrote file"`)
	}
	assert.Contains(t, buf.String(), `"path":"build.gradle.kts"`)
}
