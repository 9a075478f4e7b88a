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

// Package golden runs tests whose cases and expected outputs live in files
// under a testdata directory.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// RefreshEnv is the environment variable that, when set to a glob, rewrites
// the expected outputs of matching test cases instead of comparing them.
const RefreshEnv = "BUILDINIT_REFRESH"

// Corpus describes a directory of test cases. This is essentially a
// table-driven test where the table is in the file system.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// The environment variable checked for a refresh glob. Defaults to
	// [RefreshEnv].
	Refresh string

	// File extensions, without a dot, of files that define a test case.
	Extensions []string

	// Outputs of each test case. The expected value of an output for the
	// case foo.yaml lives in foo.yaml.<extension>; a missing file means the
	// output is expected to be empty.
	Outputs []Output
}

// Output is one output of a test case.
type Output struct {
	Extension string

	// Compares the outputs. If nil, outputs are compared byte for byte.
	Compare Compare
}

// Compare compares two outputs, returning a description of the difference,
// or "" if they match.
type Compare func(got, want string) string

// Run runs test on every case in the corpus. test must fill in outputs,
// which has one element per [Output].
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()

	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.TrimPrefix(filepath.Ext(p), ".")
		if !d.IsDir() && slices.Contains(c.Extensions, ext) {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: error while walking %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("golden: no test cases in %q", root)
	}

	env := c.Refresh
	if env == "" {
		env = RefreshEnv
	}
	refresh := os.Getenv(env)
	if !doublestar.ValidatePattern(refresh) {
		t.Fatalf("golden: invalid glob in %s: %q", env, refresh)
	}
	if refresh != "" {
		t.Logf("golden: refreshing test data because %s=%s", env, refresh)
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading %q: %v", path, err)
			}

			outputs := make([]string, len(c.Outputs))
			test(t, name, string(input), outputs)

			update := false
			if refresh != "" {
				update, _ = doublestar.Match(refresh, name)
			}
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if update {
					if err := write(path, outputs[i]); err != nil {
						t.Errorf("golden: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: error while loading %q: %v", path, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if diff := compare(outputs[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// write replaces the file at path with data, removing it if data is empty.
func write(path, data string) error {
	if data == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error while deleting %q: %w", path, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("error while writing %q: %w", path, err)
	}
	return nil
}

// Diff is the default [Compare]: a unified diff of want against got.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
