// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optfile loads option defaults from TOML or YAML files and saves
// the effective option values back as TOML.
//
// A preset file is a flat table keyed by long option name:
//
//	opt1 = 12
//	opt3 = true
//	opt4 = "from file"
package optfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argparse/pkg/argparse"
	"gopkg.in/yaml.v3"
)

// ErrUnsupported is returned for files that are neither TOML nor YAML, and
// for values that are not a bool, integer or string.
var ErrUnsupported = errors.New("unsupported preset")

// Preset maps long option names to raw values as accepted by
// argparse.Registry.Preset.
type Preset map[string]string

// Load decodes the preset file at path. The format is picked by extension:
// .toml, .yaml or .yml.
func Load(path string) (Preset, error) {
	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s is not a .toml, .yaml or .yml file", ErrUnsupported, path)
	}

	p := make(Preset, len(raw))
	for name, v := range raw {
		s, err := rawValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: key %q: %w", path, name, err)
		}
		p[name] = s
	}
	return p, nil
}

// rawValue turns a decoded scalar into the string form the parser accepts.
// Booleans become "1"/"0".
func rawValue(v any) (string, error) {
	switch v := v.(type) {
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		// yaml.v3 decodes integers above MaxInt64 as uint64.
		return strconv.FormatUint(v, 10), nil
	}
	return "", fmt.Errorf("%w: value of type %T", ErrUnsupported, v)
}

// Apply presets every option named in p. Nothing is applied if any key is
// an unknown option or any value is invalid.
func (p Preset) Apply(r *argparse.Registry) error {
	return r.PresetAll(p)
}

// Find walks up from startDir looking for a file called name and returns
// its path, or os.ErrNotExist.
func Find(startDir, name string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
