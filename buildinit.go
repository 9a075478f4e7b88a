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

// Package buildinit generates new Gradle builds.
//
// The statement model and printer for build scripts live in package
// [github.com/bufbuild/buildinit/script]. Package
// [github.com/bufbuild/buildinit/descriptor] decides what a new project
// contains; this package writes it to disk.
package buildinit

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/buildinit/catalog"
	"github.com/bufbuild/buildinit/descriptor"
)

// ErrExists is returned by [Init] when a file it would write already exists
// and overwriting was not requested.
var ErrExists = eris.New("file already exists")

// Options configures [Init].
type Options struct {
	// The directory to generate into. Defaults to the working directory.
	Dir string

	Project *descriptor.Project

	// If set, existing files are replaced. Otherwise, Init fails before
	// writing anything if any file it would write exists, except for a
	// version catalog that it merged into.
	Overwrite bool

	// Receives one debug event per written file. May be nil.
	Logger *zerolog.Logger

	// The maximum number of files written at once. Zero means no limit.
	Parallelism int
}

// Init generates every file of a project and writes it under opts.Dir.
//
// If the project uses a version catalog and one already exists in the
// directory, new entries are merged into it.
func Init(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if opts.Project == nil {
		return eris.New("no project to generate")
	}

	project := *opts.Project
	merged, err := loadCatalog(opts.Dir, &project)
	if err != nil {
		return err
	}

	files, err := project.Files()
	if err != nil {
		return eris.Wrapf(err, "could not generate project %q", project.Name)
	}

	if !opts.Overwrite {
		var existing []string
		for _, f := range files {
			if merged && f.Path == catalog.Path {
				continue
			}
			_, err := os.Lstat(filepath.Join(opts.Dir, filepath.FromSlash(f.Path)))
			switch {
			case err == nil:
				existing = append(existing, f.Path)
			case !errors.Is(err, fs.ErrNotExist):
				return eris.Wrapf(err, "could not check %s", f.Path)
			}
		}
		if len(existing) > 0 {
			return eris.Wrapf(ErrExists, "refusing to overwrite %s", strings.Join(existing, ", "))
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}
	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return write(opts.Dir, f, logger)
		})
	}
	return g.Wait()
}

// loadCatalog reads an existing version catalog into p, if p uses one and
// does not already carry one. Returns whether a catalog was loaded.
func loadCatalog(dir string, p *descriptor.Project) (bool, error) {
	if !p.UseCatalog || p.Catalog != nil {
		return false, nil
	}

	path := filepath.Join(dir, filepath.FromSlash(catalog.Path))
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, eris.Wrapf(err, "could not open %s", catalog.Path)
	}
	defer f.Close()

	libs, err := catalog.Load(f)
	if err != nil {
		return false, eris.Wrapf(err, "could not load %s", catalog.Path)
	}
	p.Catalog = libs
	return true, nil
}

func write(dir string, f descriptor.File, logger *zerolog.Logger) error {
	path := filepath.Join(dir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "could not create directory for %s", f.Path)
	}
	if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
		return eris.Wrapf(err, "could not write %s", f.Path)
	}
	logger.Debug().Str("path", f.Path).Int("bytes", len(f.Content)).Msg("wrote file")
	return nil
}
