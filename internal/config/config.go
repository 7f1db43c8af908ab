// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme    = "light"
	defaultDirName  = ".tick"
	defaultDataFile = "todos.json"
	defaultConfName = "config.toml"
)

// Config holds the full configuration for tick.
type Config struct {
	DataFile string `toml:"data_file"` // path to the todo JSON slot
	Theme    string `toml:"theme"`     // light or dark
	NoColor  bool   `toml:"no_color"`
}

// Default returns the built-in configuration. DataFile may be empty
// when the home directory cannot be resolved; the caller falls back to
// the working directory in that case.
func Default() Config {
	cfg := Config{Theme: DefaultTheme}
	if dir, err := appDir(); err == nil {
		cfg.DataFile = filepath.Join(dir, defaultDataFile)
	} else {
		cfg.DataFile = defaultDataFile
	}
	return cfg
}

// DefaultPath is the config file location used when no -config flag is
// given.
func DefaultPath() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultConfName), nil
}

// Load reads the TOML config at path on top of the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return cfg, nil
}

func appDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}
