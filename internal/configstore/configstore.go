// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package configstore persists named input/output path pairs to a YAML
// file. The whole collection is written on every change through a temp
// file and a rename, so the file is never half-written and round-trips
// exactly.
package configstore

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

// DefaultPath is the config collection file used when none is configured.
const DefaultPath = "pdf2md-configs.yaml"

// Store reads and writes the named configuration collection.
type Store struct {
	path string
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Load returns the full name-keyed collection. A missing file is an empty
// collection, not an error; a malformed file is a ConfigError.
func (s *Store) Load() (map[string]types.NamedConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]types.NamedConfig{}, nil
		}
		return nil, &types.ConfigError{Reason: "reading " + s.path, Err: err}
	}

	var configs map[string]types.NamedConfig
	if err := yaml.Unmarshal(data, &configs); err != nil {
		return nil, &types.ConfigError{Reason: "malformed config file " + s.path, Err: err}
	}
	if configs == nil {
		configs = map[string]types.NamedConfig{}
	}
	return configs, nil
}

// Save adds or replaces the named entry and rewrites the collection.
func (s *Store) Save(name string, cfg types.NamedConfig) error {
	if name == "" {
		return &types.ConfigError{Reason: "configuration name is empty"}
	}

	configs, err := s.Load()
	if err != nil {
		return err
	}
	configs[name] = cfg
	return s.write(configs)
}

// Delete removes the named entry and rewrites the collection.
func (s *Store) Delete(name string) error {
	configs, err := s.Load()
	if err != nil {
		return err
	}
	if _, ok := configs[name]; !ok {
		return fmt.Errorf("no saved configuration named %q", name)
	}
	delete(configs, name)
	return s.write(configs)
}

func (s *Store) write(configs map[string]types.NamedConfig) error {
	data, err := yaml.Marshal(configs)
	if err != nil {
		return &types.ConfigError{Reason: "encoding configurations", Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &types.ConfigError{Reason: "creating " + dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".configs-*.yaml")
	if err != nil {
		return &types.ConfigError{Reason: "writing " + s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &types.ConfigError{Reason: "writing " + s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &types.ConfigError{Reason: "writing " + s.path, Err: err}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &types.ConfigError{Reason: "writing " + s.path, Err: err}
	}
	return nil
}
