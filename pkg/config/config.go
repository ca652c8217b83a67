// Package config provides configuration management for mddx.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Export: prefix, plain_text
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Export.Version, Export.ReleaseDate, Export.Limit, Export.WithFull
//     (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MDDX_ prefix with underscores for nesting:
//
//	MDDX_EXPORT_PREFIX=mdd
//	MDDX_LOG_LEVEL=info
//	MDDX_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete mddx configuration.
type Config struct {
	// Export contains settings for the JSON export pipeline.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations,
	// currently the scientific-name parsing of released records.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ExportConfig contains settings for building and writing bundles.
type ExportConfig struct {
	// Prefix is prepended to generated file names (e.g. "mdd" produces
	// mdd.json, mdd.json.gz).
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	// PlainText writes an uncompressed JSON file next to the gzip output.
	PlainText bool `mapstructure:"plain_text" yaml:"plain_text"`

	// Version overrides the MDD release version. When empty the version is
	// taken from the release descriptor or inferred from the species file
	// name. Runtime-only field.
	Version string

	// ReleaseDate overrides the release date. Format: YYYY-MM-DD. When empty
	// the date comes from the release descriptor or the species file
	// modification time. Runtime-only field.
	ReleaseDate string

	// Limit truncates the species and synonym sequences to the first N
	// records. Zero means no limit. Debugging aid, runtime-only field.
	Limit int

	// WithFull also writes the unfiltered full bundle (all species plus all
	// synonym records). Runtime-only field.
	WithFull bool
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Export: ExportConfig{
			Prefix:    "mdd",
			PlainText: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
