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
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/bufbuild/buildinit"
	"github.com/bufbuild/buildinit/descriptor"
)

func (a *app) initCommand() *cobra.Command {
	var (
		project   projectFlags
		overwrite bool
		jobs      int
	)
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a new build",
		Long: `Generate a new build in dir, or the working directory.

Existing files are never replaced unless --overwrite is given. If the build
uses a version catalog and gradle/libs.versions.toml already exists, the
generated entries are merged into it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			p, err := project.project(cmd, dir)
			if err != nil {
				return err
			}

			if err := buildinit.Init(cmd.Context(), buildinit.Options{
				Dir:         dir,
				Project:     p,
				Overwrite:   overwrite,
				Logger:      &a.logger,
				Parallelism: jobs,
			}); err != nil {
				return err
			}
			a.logger.Info().
				Str("name", p.Name).
				Str("type", string(p.Type)).
				Stringer("dsl", p.DSL).
				Msg("generated build")
			return nil
		},
	}
	project.register(cmd)
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing files")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Maximum number of files written at once (default: no limit)")
	return cmd
}

func (a *app) renderCommand() *cobra.Command {
	var (
		project projectFlags
		pattern string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the files of a new build without writing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pattern != "" && !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("invalid --path pattern %q", pattern)
			}

			p, err := project.project(cmd, ".")
			if err != nil {
				return err
			}
			files, err := p.Files()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), files, pattern)
		},
	}
	project.register(cmd)
	cmd.Flags().StringVar(&pattern, "path", "", "Only print files whose path matches this glob, such as **/*.gradle.kts")
	return cmd
}

// render writes files in the style of head(1) given several files.
func render(w io.Writer, files []descriptor.File, pattern string) error {
	first := true
	for _, f := range files {
		if pattern != "" && !doublestar.MatchUnvalidated(pattern, f.Path) {
			continue
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if _, err := fmt.Fprintf(w, "==> %s <==\n%s", f.Path, f.Content); err != nil {
			return err
		}
	}
	return nil
}
