// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argparse/pkg/argparse"
)

// Save writes every set option of r to path as TOML, keyed by long name
// (keys are written in sorted order).
// Options that are not set are omitted so that loading the file back
// leaves them unset.
func Save(path string, r *argparse.Registry) error {
	values := make(map[string]any)
	for _, o := range r.Options() {
		if !o.Set {
			continue
		}
		v, err := tomlValue(o)
		if err != nil {
			return fmt.Errorf("option %s: %w", o.ID.Long(), err)
		}
		values[o.ID.Name] = v
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	return encoder.Encode(values)
}

// tomlValue converts an option snapshot back to a typed TOML value.
// Unsigned 64-bit values above MaxInt64 do not fit a TOML integer and are
// written as strings, which Load accepts.
func tomlValue(o argparse.Option) (any, error) {
	switch o.Kind {
	case argparse.KindBool:
		return strconv.ParseBool(o.Value)
	case argparse.KindInt32, argparse.KindInt64, argparse.KindUint32:
		return strconv.ParseInt(o.Value, 10, 64)
	case argparse.KindUint64:
		if n, err := strconv.ParseInt(o.Value, 10, 64); err == nil {
			return n, nil
		}
		return o.Value, nil
	case argparse.KindString:
		return strconv.Unquote(o.Value)
	}
	return nil, fmt.Errorf("%w: kind %s", ErrUnsupported, o.Kind)
}
