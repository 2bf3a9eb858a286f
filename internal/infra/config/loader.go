// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/tasklink/tasklink/internal/domain"
)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the workspace .tasklink directory
	globalConfDir string // Path to the global config directory (e.g. ~/.config/tasklink)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// fileConfig is the TOML shape of a config file. Pointer fields distinguish
// "absent" from "zero" so the merge only overrides what a file sets.
type fileConfig struct {
	Tasks struct {
		Store *string `toml:"store"`
		Path  *string `toml:"path"`
	} `toml:"tasks"`
	Log struct {
		Level *string `toml:"level"`
	} `toml:"log"`
}

// Load returns the merged configuration: defaults, overridden by the global
// file, overridden by the workspace file.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		if err := l.applyFile(cfg, filepath.Join(l.globalConfDir, domain.ConfigFileName)); err != nil {
			return nil, err
		}
	}
	if err := l.applyFile(cfg, filepath.Join(l.dataDir, domain.ConfigFileName)); err != nil {
		return nil, err
	}

	if cfg.Tasks.Store != domain.StoreSQLite && cfg.Tasks.Store != domain.StoreMemory {
		return nil, fmt.Errorf("unknown store backend %q", cfg.Tasks.Store)
	}
	return cfg, nil
}

// applyFile merges one config file into cfg. A missing file is not an error.
func (l *Loader) applyFile(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Tasks.Store != nil {
		cfg.Tasks.Store = *fc.Tasks.Store
	}
	if fc.Tasks.Path != nil {
		cfg.Tasks.Path = *fc.Tasks.Path
	}
	if fc.Log.Level != nil {
		cfg.Log.Level = *fc.Log.Level
	}
	return nil
}
