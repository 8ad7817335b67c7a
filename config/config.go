// Package config loads CLI defaults for typeport using Viper.
// Precedence (lowest to highest): defaults < project typeport.toml <
// TYPEPORT_* environment variables < command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/typeport/typeport/errors"
)

// Config holds CLI defaults. The core pipeline never reads it.
type Config struct {
	// Dialect is the default target dialect ("typescript" or "flow").
	Dialect string `mapstructure:"dialect"`
	// Output is the default output path; empty means stdout.
	Output string `mapstructure:"output"`
	// JSONLogs switches log output to structured JSON.
	JSONLogs bool `mapstructure:"json_logs"`
}

// Load reads configuration from the environment and, when present, a
// project typeport.toml discovered by walking up from the working
// directory.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("TYPEPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("dialect", "typescript")
	v.SetDefault("output", "")
	v.SetDefault("json_logs", false)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// findProjectConfig walks up the directory tree looking for a
// typeport.toml. Returns empty string if none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, "typeport.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
