// Package config persists TrayTick settings in a classic INI file next
// to the executable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Store reads and writes one INI settings file. Reads are served from
// memory; every write lands on disk immediately since a tray app has no
// shutdown hook worth trusting.
type Store struct {
	v    *viper.Viper
	path string
}

// Open loads the INI file at path. A missing file yields an empty
// store; the file appears on the first write.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return &Store{v: v, path: path}, nil
}

// Read returns the value for key, or "" when unset.
func (s *Store) Read(key string) string {
	return s.v.GetString(key)
}

// Write persists value under key, creating the file and its directory
// as needed.
func (s *Store) Write(key, value string) error {
	s.v.Set(key, value)
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config %s: %w", s.path, err)
	}
	return nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}
