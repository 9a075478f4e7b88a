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
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is the buildinit command line.
type app struct {
	stdout, stderr io.Writer
	logger         zerolog.Logger

	configFile string
	verbose    bool

	root *cobra.Command
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		logger: zerolog.Nop(),
	}

	a.root = &cobra.Command{
		Use:   "buildinit",
		Short: "Generate new Gradle builds",
		Long: `buildinit generates the settings script, build scripts, version catalog
and starter sources of a new Gradle build, in either the Groovy or the
Kotlin DSL.

Defaults for any flag may be given in a YAML file, keyed by flag name:

  dsl: groovy
  use-catalog: true
  subproject: [app, utils]`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML file of flag defaults (default: "+defaultConfig+", if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log every file written")

	a.root.AddCommand(
		a.initCommand(),
		a.renderCommand(),
		a.catalogCommand(),
		a.versionCommand(),
	)
	return a
}

func (a *app) execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// setup runs before every command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	applied, err := loadConfig(cmd, a.configFile)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        a.stderr,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()

	for _, name := range applied {
		a.logger.Debug().Str("flag", name).Msg("default from config")
	}
	return nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of buildinit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println("buildinit " + version)
			return nil
		},
	}
}
