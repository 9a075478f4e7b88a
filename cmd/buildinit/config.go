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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// defaultConfig is read when --config is not given, if it exists.
const defaultConfig = "buildinit.yaml"

// loadConfig sets every flag of cmd that was not given on the command line
// and has a value in the config file. Keys that name no flag of cmd are
// ignored, so one file can serve every command.
//
// Returns the names of the flags that were set.
func loadConfig(cmd *cobra.Command, path string) ([]string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfig
	}

	data, err := os.ReadFile(path)
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, eris.Wrapf(err, "could not read config")
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, eris.Wrapf(err, "could not parse config %s", path)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var applied []string
	flags := cmd.Flags()
	for _, key := range keys {
		flag := flags.Lookup(key)
		if flag == nil || flag.Changed || key == "config" {
			continue
		}

		value := values[key]
		items, ok := value.([]any)
		if !ok {
			items = []any{value}
		}
		for _, item := range items {
			if err := flags.Set(key, fmt.Sprint(item)); err != nil {
				return nil, eris.Wrapf(err, "invalid value for %s in config %s", key, path)
			}
		}
		applied = append(applied, key)
	}
	return applied, nil
}
