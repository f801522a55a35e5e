// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"may-cli/internal/issue"
)

const (
	// AppName is the application name.
	AppName = "may"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "MAY"
	// ConfigFileEnvVar points at an explicit config file, bypassing the
	// default search path.
	ConfigFileEnvVar = "MAY_CONFIG"

	// DefaultDocWidth is the column width doc titles are wrapped at in the
	// help listing.
	DefaultDocWidth = 70
)

type (
	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables debug-level diagnostics on stderr.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the dispatcher configuration.
	Config struct {
		// ScriptsDir is the directory scripts are discovered in. Empty means
		// the directory containing the dispatcher's own executable.
		ScriptsDir string `mapstructure:"scripts_dir"`
		// DocWidth is the help-listing wrap width.
		DocWidth int `mapstructure:"doc_width"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ScriptsDir: "",
		DocWidth:   DefaultDocWidth,
	}
}

// ConfigDir returns the may configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration from the config file (if any) and the
// environment. A missing config file is not an error; anything else that
// goes wrong while reading or decoding is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("scripts_dir", defaults.ScriptsDir)
	v.SetDefault("doc_width", defaults.DocWidth)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if custom := os.Getenv(ConfigFileEnvVar); custom != "" {
		v.SetConfigFile(custom)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(v.ConfigFileUsed()).
				WithSuggestion("Check the file's YAML syntax").
				WithSuggestion(fmt.Sprintf("Unset %s to fall back to defaults", ConfigFileEnvVar)).
				Wrap(err).
				Build()
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "decode configuration")
	}
	return cfg, nil
}

// ResolveScriptsDir returns the effective scripts directory: the configured
// one when set, otherwise the directory holding the running executable.
func (c *Config) ResolveScriptsDir() (string, error) {
	if c.ScriptsDir != "" {
		return filepath.Abs(c.ScriptsDir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate own executable: %w", err)
	}
	return filepath.Dir(exe), nil
}
