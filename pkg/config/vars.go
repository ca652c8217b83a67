package config

import (
	"path/filepath"
)

var (
	// MinVersionMDD is the oldest MDD release version known to use the
	// current CSV column layout. Older descriptor versions produce a warning.
	MinVersionMDD = "v2.0.0"
	// AppName is used in generating file system paths.
	AppName = "mddx"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/mddx by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/mddx by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/mddx/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/mddx/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
