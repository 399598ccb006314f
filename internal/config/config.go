// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists listkit settings. It layers defaults,
// listkit.yaml files, LISTKIT_* environment variables and command flags
// through Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	Separator       string `mapstructure:"separator" yaml:"separator"`
	AllowDuplicates bool   `mapstructure:"allow_duplicates" yaml:"allow_duplicates"`
	IncrementMode   string `mapstructure:"increment_mode" yaml:"increment_mode"`
	Language        string `mapstructure:"language" yaml:"language"`
	LogLevel        string `mapstructure:"log_level" yaml:"log_level"`
	Store           Store  `mapstructure:"store" yaml:"store"`
}

// Store selects the database backing saved lists.
type Store struct {
	Type string `mapstructure:"type" yaml:"type"`
	DSN  string `mapstructure:"dsn" yaml:"dsn"`
}

// Defaults returns the baseline values applied before any file, env var or
// flag is consulted.
func Defaults() map[string]any {
	return map[string]any{
		"separator":        "\n",
		"allow_duplicates": true,
		"increment_mode":   "literal",
		"language":         "en",
		"log_level":        "warn",
		"store.type":       "sqlite",
		"store.dsn":        "./listkit.db",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Listkit")
		default:
			configDir = "/etc/listkit"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "listkit")
	}

	return filepath.Join(configDir, "listkit.yaml"), nil
}

// LoadConfig resolves T from defaults, the first listkit.yaml found (or the
// explicit file when configFile is set), LISTKIT_* environment variables and
// the flags of cmd, in increasing precedence. A missing config file is
// reported as viper.ConfigFileNotFoundError alongside the resolved value.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("listkit")
	v.SetConfigType("yaml")
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	readErr := v.ReadInConfig()
	if readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return c, readErr
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("listkit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, readErr
}

// WriteConfigFile stores c as yaml in the user (or system) config location.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo stores c as yaml at path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
