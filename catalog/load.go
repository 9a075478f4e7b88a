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

package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load parses a version catalog.
//
// Libraries may be written as "group:name:version" strings or as tables
// with either a module key or group and name keys. Rich versions are
// reduced to their strictly, require or prefer component.
func Load(r io.Reader) (*Catalog, error) {
	var file struct {
		Versions  map[string]versionEntry `toml:"versions"`
		Libraries map[string]entry        `toml:"libraries"`
		Plugins   map[string]entry        `toml:"plugins"`
	}
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("could not parse version catalog: %w", err)
	}

	c := new(Catalog)
	for alias, v := range file.Versions {
		if v.Literal == "" {
			return nil, fmt.Errorf("version %q has no usable version", alias)
		}
		c.versions.Set(alias, v.Literal)
	}

	for alias, e := range file.Libraries {
		group, name, ok := strings.Cut(e.module, ":")
		if !ok || group == "" || name == "" {
			return nil, fmt.Errorf("library %q has invalid module %q", alias, e.module)
		}
		if err := c.checkRef(alias, e.version.Ref); err != nil {
			return nil, err
		}
		c.libraries.Set(alias, Library{
			Alias:      alias,
			Group:      group,
			Name:       name,
			Version:    e.version.Literal,
			VersionRef: e.version.Ref,
		})
	}

	for alias, e := range file.Plugins {
		if e.id == "" {
			return nil, fmt.Errorf("plugin %q has no id", alias)
		}
		if err := c.checkRef(alias, e.version.Ref); err != nil {
			return nil, err
		}
		c.plugins.Set(alias, Plugin{
			Alias:      alias,
			ID:         e.id,
			Version:    e.version.Literal,
			VersionRef: e.version.Ref,
		})
	}

	return c, nil
}

func (c *Catalog) checkRef(alias, ref string) error {
	if ref == "" {
		return nil
	}
	if _, ok := c.versions.Get(ref); !ok {
		return fmt.Errorf("%q refers to undefined version %q", alias, ref)
	}
	return nil
}

// entry is a library or plugin entry, which may be a string or a table.
type entry struct {
	module, id string
	version    versionEntry
}

// UnmarshalTOML implements [toml.Unmarshaler].
func (e *entry) UnmarshalTOML(data any) error {
	switch data := data.(type) {
	case string:
		// group:name:version for libraries, id:version for plugins.
		parts := strings.Split(data, ":")
		switch len(parts) {
		case 2:
			e.id = parts[0]
			e.version.Literal = parts[1]
		case 3:
			e.module = parts[0] + ":" + parts[1]
			e.version.Literal = parts[2]
		default:
			return fmt.Errorf("invalid catalog entry %q", data)
		}
		return nil

	case map[string]any:
		var group, name string
		for key, value := range data {
			if key == "version" {
				if err := e.version.UnmarshalTOML(value); err != nil {
					return err
				}
				continue
			}

			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%s must be a string, got %T", key, value)
			}
			switch key {
			case "module":
				e.module = s
			case "id":
				e.id = s
			case "group":
				group = s
			case "name":
				name = s
			default:
				return fmt.Errorf("unknown catalog entry key %q", key)
			}
		}
		if e.module == "" && (group != "" || name != "") {
			e.module = group + ":" + name
		}
		return nil
	}
	return fmt.Errorf("catalog entry must be a string or table, got %T", data)
}

// versionEntry is either a literal version or a reference into the
// versions table.
type versionEntry struct {
	Literal, Ref string
}

// UnmarshalTOML implements [toml.Unmarshaler].
func (v *versionEntry) UnmarshalTOML(data any) error {
	switch data := data.(type) {
	case string:
		v.Literal = data
		return nil
	case map[string]any:
		if ref, ok := data["ref"].(string); ok {
			v.Ref = ref
			return nil
		}
		for _, key := range []string{"strictly", "require", "prefer"} {
			if s, ok := data[key].(string); ok {
				v.Literal = s
				return nil
			}
		}
		return fmt.Errorf("version table has no ref, strictly, require or prefer key")
	}
	return fmt.Errorf("version must be a string or table, got %T", data)
}
