// Package config loads spdxtv settings from a YAML file and SPDXTV_ environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name
	AppName = "spdxtv"
	// ConfigFileName is the name of the config file without extension
	ConfigFileName = "spdxtv"
	// EnvPrefix prefixes environment overrides, e.g. SPDXTV_PARSE_STRICT
	EnvPrefix = "SPDXTV"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the complete spdxtv configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Parse    ParseConfig    `mapstructure:"parse" yaml:"parse"`
	Write    WriteConfig    `mapstructure:"write" yaml:"write"`
	Licenses LicensesConfig `mapstructure:"licenses" yaml:"licenses"`
	Verify   VerifyConfig   `mapstructure:"verify" yaml:"verify"`
}

// LogConfig controls terminal logging
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
	// File writes plain, unfiltered log lines to a file instead of stderr
	File string `mapstructure:"file" yaml:"file"`
}

// ParseConfig controls document parsing
type ParseConfig struct {
	// Strict turns any diagnostic into a failed parse
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// WriteConfig controls document output
type WriteConfig struct {
	// Validate refuses to write invalid documents
	Validate bool `mapstructure:"validate" yaml:"validate"`
}

// LicensesConfig selects the SPDX license list
type LicensesConfig struct {
	// File is a license list YAML file; empty uses the bundled list
	File string `mapstructure:"file" yaml:"file"`
}

// VerifyConfig holds signing and signature settings
type VerifyConfig struct {
	// Keyring is an OpenPGP key file path or URL
	Keyring string `mapstructure:"keyring" yaml:"keyring"`
	// Passphrase unlocks a protected signing key
	Passphrase string `mapstructure:"passphrase" yaml:"-"`
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		Log:   LogConfig{Level: "info", Prefix: AppName},
		Write: WriteConfig{Validate: true},
	}
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFilePath is an explicit config file; it must exist
	ConfigFilePath string
	// SearchDirs are searched in order for spdxtv.yaml when no explicit path is given
	SearchDirs []string
}

// Load reads configuration and returns it with the path of the file used, if any
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("load config canceled: %w", err)
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.prefix", defaults.Log.Prefix)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("parse.strict", defaults.Parse.Strict)
	v.SetDefault("write.validate", defaults.Write.Validate)
	v.SetDefault("licenses.file", defaults.Licenses.File)
	v.SetDefault("verify.keyring", defaults.Verify.Keyring)
	v.SetDefault("verify.passphrase", defaults.Verify.Passphrase)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", opts.ConfigFilePath, err)
		}
		resolvedPath = opts.ConfigFilePath
	} else if len(opts.SearchDirs) > 0 {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		for _, dir := range opts.SearchDirs {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("failed to read config: %w", err)
			}
		} else {
			resolvedPath = v.ConfigFileUsed()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolvedPath, nil
}

// Validate checks values viper cannot type-check
func (c *Config) Validate() error {
	level := strings.ToLower(c.Log.Level)
	if !slices.Contains(logLevels, level) {
		return fmt.Errorf("invalid log.level %q: must be one of %s", c.Log.Level, strings.Join(logLevels, ", "))
	}
	c.Log.Level = level
	return nil
}

// YAML renders the configuration as it would appear in spdxtv.yaml; the passphrase is never written
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return out, nil
}

// DefaultSearchDirs returns the working directory followed by the user config directory
func DefaultSearchDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, AppName))
	}
	return dirs
}
