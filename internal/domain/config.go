package domain

import "path/filepath"

// File and directory names used by the workspace layout.
const (
	// DataDirName is the per-workspace data directory.
	DataDirName = ".tasklink"

	// ConfigFileName is the config file name, in both the workspace data
	// directory and the global config directory.
	ConfigFileName = "config.toml"

	// DBFileName is the sqlite database file name.
	DBFileName = "tasklink.db"
)

// Store backend names accepted in config.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// DataDir returns the data directory for a workspace root.
func DataDir(workspace string) string {
	return filepath.Join(workspace, DataDirName)
}

// DBPath returns the sqlite database path for a workspace root.
func DBPath(workspace string) string {
	return filepath.Join(DataDir(workspace), DBFileName)
}

// GlobalConfigDir returns the global config directory under the given
// XDG config home.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "tasklink")
}

// Config represents the application configuration.
type Config struct {
	Tasks TasksConfig // [tasks] settings
	Log   LogConfig   // [log] settings
}

// TasksConfig holds store settings from the [tasks] section.
type TasksConfig struct {
	Store string // Store backend: "sqlite" (default) or "memory"
	Path  string // Database path override (empty = workspace default)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Tasks: TasksConfig{Store: StoreSQLite},
		Log:   LogConfig{Level: "info"},
	}
}
