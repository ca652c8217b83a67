package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptExportPrefix sets the file name prefix for generated artifacts.
func OptExportPrefix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Prefix", s) {
			c.Export.Prefix = s
		}
	}
}

// OptExportPlainText toggles writing an uncompressed JSON file in addition
// to the gzip output.
func OptExportPlainText(b bool) Option {
	return func(c *Config) {
		c.Export.PlainText = b
	}
}

// OptExportVersion overrides the MDD release version.
// Runtime-only field - not in ToOptions().
func OptExportVersion(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Release Version", s) {
			c.Export.Version = s
		}
	}
}

// OptExportReleaseDate overrides the release date.
// Format: YYYY-MM-DD. Runtime-only field - not in ToOptions().
func OptExportReleaseDate(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Release Date", s) {
			c.Export.ReleaseDate = s
		}
	}
}

// OptExportLimit truncates parsed sequences to the first N records.
// Runtime-only field - not in ToOptions().
func OptExportLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("Limit", i) {
			c.Export.Limit = i
		}
	}
}

// OptExportWithFull enables writing the unfiltered full bundle.
// Runtime-only field - not in ToOptions().
func OptExportWithFull(b bool) Option {
	return func(c *Config) {
		c.Export.WithFull = b
	}
}

// OptLogFormat sets the log output format: 'json', 'text' or 'tint'.
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the logging level: 'debug', 'info', 'warn' or 'error'.
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where logs go: 'file', 'stdout' or 'stderr'.
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory used to derive config, cache and log
// locations. Set once by CLI during init.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
