package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdverse/mddx/pkg/config"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "mddx"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "mddx"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "mddx", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "mddx", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "mdd", cfg.Export.Prefix)
	assert.True(t, cfg.Export.PlainText)
	assert.Empty(t, cfg.Export.Version)
	assert.Empty(t, cfg.Export.ReleaseDate)
	assert.Zero(t, cfg.Export.Limit)
	assert.False(t, cfg.Export.WithFull)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(t, cfg.HomeDir)
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptExportPrefix("sample"),
		config.OptExportPlainText(false),
		config.OptExportVersion("2.2"),
		config.OptExportReleaseDate("2025-09-01"),
		config.OptExportLimit(100),
		config.OptExportWithFull(true),
		config.OptLogFormat("TEXT"),
		config.OptLogLevel("debug"),
		config.OptLogDestination("stderr"),
		config.OptJobsNumber(4),
		config.OptHomeDir("/home/me"),
	})

	assert.Equal(t, "sample", cfg.Export.Prefix)
	assert.False(t, cfg.Export.PlainText)
	assert.Equal(t, "2.2", cfg.Export.Version)
	assert.Equal(t, "2025-09-01", cfg.Export.ReleaseDate)
	assert.Equal(t, 100, cfg.Export.Limit)
	assert.True(t, cfg.Export.WithFull)
	// Enum values are case-folded.
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Destination)
	assert.Equal(t, 4, cfg.JobsNumber)
	assert.Equal(t, "/home/me", cfg.HomeDir)
}

// Invalid values are rejected with a warning, leaving the config valid.
func TestUpdateInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptExportPrefix("  "),
		config.OptExportLimit(-1),
		config.OptLogFormat("xml"),
		config.OptLogLevel("verbose"),
		config.OptLogDestination("syslog"),
		config.OptJobsNumber(0),
	})

	def := config.New()
	assert.Equal(t, def.Export.Prefix, cfg.Export.Prefix)
	assert.Equal(t, def.Export.Limit, cfg.Export.Limit)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Equal(t, def.JobsNumber, cfg.JobsNumber)
}

// ToOptions round-trips persistent fields only.
func TestToOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptExportPrefix("sample"),
		config.OptExportPlainText(false),
		config.OptExportVersion("2.2"),
		config.OptExportLimit(100),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(4),
		config.OptHomeDir("/home/me"),
	})

	again := config.New()
	again.Update(cfg.ToOptions())

	assert.Equal(t, "sample", again.Export.Prefix)
	assert.False(t, again.Export.PlainText)
	assert.Equal(t, "debug", again.Log.Level)
	assert.Equal(t, 4, again.JobsNumber)

	// Runtime-only fields stay behind.
	assert.Empty(t, again.Export.Version)
	assert.Zero(t, again.Export.Limit)
	assert.Empty(t, again.HomeDir)
}
