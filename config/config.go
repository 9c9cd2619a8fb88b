// Package config loads jarpath settings from flags, the environment and an
// optional jarpath.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "jarpath.toml"
	// EnvPrefix prefixes environment variables, e.g. JARPATH_LIB.
	EnvPrefix = "JARPATH"
)

// Config holds the settings shared by all commands.
type Config struct {
	LibDir      string `mapstructure:"lib"`
	Follow      bool   `mapstructure:"follow"`
	KeepMissing bool   `mapstructure:"keep-missing"`
	Verbosity   int    `mapstructure:"verbose"`
	Separator   string `mapstructure:"separator"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LibDir:    "lib",
		Follow:    true,
		Separator: string(filepath.ListSeparator),
	}
}

// Load merges, from highest to lowest precedence, changed flags, JARPATH_*
// environment variables, the config file and the defaults. If file is
// empty, jarpath.toml in the working directory is used when it exists.
// flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("lib", defaults.LibDir)
	v.SetDefault("follow", defaults.Follow)
	v.SetDefault("keep-missing", defaults.KeepMissing)
	v.SetDefault("verbose", defaults.Verbosity)
	v.SetDefault("separator", defaults.Separator)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range v.AllKeys() {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	path := file
	if path == "" {
		if _, err := os.Stat(FileName); err == nil {
			path = FileName
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
