// Package ioconfig loads the persistent mddx configuration from the
// config.yaml file and MDDX_* environment variables.
package ioconfig

import (
	"strings"

	"github.com/mdverse/mddx/pkg/config"
	"github.com/spf13/viper"
)

// Load reads config.yaml from the standard location under homeDir and
// applies MDDX_* environment overrides. Missing keys keep their default
// values. Precedence: env vars > config file > defaults.
func Load(homeDir string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetConfigType("yaml")

	initEnvVars(v)

	// Defaults register every key with viper, so env overrides apply even
	// when config.yaml omits the key.
	defaults := config.New()
	v.SetDefault("export.prefix", defaults.Export.Prefix)
	v.SetDefault("export.plain_text", defaults.Export.PlainText)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.destination", defaults.Log.Destination)
	v.SetDefault("jobs_number", defaults.JobsNumber)

	if err := v.ReadInConfig(); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	var fileCfg config.Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, ParseConfigError(cfgPath, err)
	}

	// Route the loaded values through Option validation so malformed
	// entries produce a warning instead of an invalid Config.
	res := config.New()
	res.Update(fileCfg.ToOptions())
	return res, nil
}

// initEnvVars binds the allowed environment variables. They are bound
// manually so the permitted set stays explicit; the list matches the
// fields config.ToOptions() covers.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("MDDX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Export configuration
	v.BindEnv("export.prefix", "MDDX_EXPORT_PREFIX")
	v.BindEnv("export.plain_text", "MDDX_EXPORT_PLAIN_TEXT")

	// Log configuration
	v.BindEnv("log.level", "MDDX_LOG_LEVEL")
	v.BindEnv("log.format", "MDDX_LOG_FORMAT")
	v.BindEnv("log.destination", "MDDX_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "MDDX_JOBS_NUMBER")

	v.AutomaticEnv()
}
