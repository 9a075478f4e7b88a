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
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/bufbuild/buildinit/catalog"
	"github.com/bufbuild/buildinit/script"
)

func (a *app) catalogCommand() *cobra.Command {
	var (
		libraries, plugins []string
		write              bool
	)
	cmd := &cobra.Command{
		Use:   "catalog [file]",
		Short: "Normalize a version catalog, optionally adding entries",
		Long: `Read a version catalog (default: ` + catalog.Path + `) and print it in
normalized form: one inline table per entry, aliases sorted.

Libraries are added as group:name[:version] and plugins as id[:version]. An
entry already in the catalog keeps its alias, and its version is raised if
the added version is newer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := catalog.Path
			if len(args) > 0 {
				path = args[0]
			}

			libs, err := readCatalog(path)
			if err != nil {
				return err
			}
			for _, lib := range libraries {
				parts := strings.Split(lib, ":")
				if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
					return fmt.Errorf("invalid library %q (want group:name[:version])", lib)
				}
				parts = append(parts, "")
				entry := libs.AddLibrary(parts[0], parts[1], parts[2])
				a.logger.Debug().Str("alias", entry.Alias).Msg("added library")
			}
			for _, plugin := range plugins {
				id, version, _ := strings.Cut(plugin, ":")
				if id == "" {
					return fmt.Errorf("invalid plugin %q (want id[:version])", plugin)
				}
				entry := libs.AddPlugin(id, version)
				a.logger.Debug().Str("alias", entry.Alias).Msg("added plugin")
			}

			text := libs.Render(script.DefaultHeader)
			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), text)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return eris.Wrapf(err, "could not create directory for %s", path)
			}
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return eris.Wrapf(err, "could not write %s", path)
			}
			a.logger.Info().Str("path", path).Int("entries", libs.Len()).Msg("wrote catalog")
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&libraries, "library", nil, "Library to add, as group:name[:version] (repeatable)")
	cmd.Flags().StringArrayVar(&plugins, "plugin", nil, "Plugin to add, as id[:version] (repeatable)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file instead of printing it")
	return cmd
}

// readCatalog loads a catalog. A missing file is an empty catalog.
func readCatalog(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return new(catalog.Catalog), nil
	} else if err != nil {
		return nil, eris.Wrapf(err, "could not open %s", path)
	}
	defer f.Close()

	libs, err := catalog.Load(f)
	if err != nil {
		return nil, eris.Wrapf(err, "could not load %s", path)
	}
	return libs, nil
}
