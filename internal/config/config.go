// Package config manages lilhook's own settings using Viper. These are the
// tool's knobs, not the hook document itself; that lives in hookcfg.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lilhook/lilhook/internal/hookcfg"
)

// Settings represents the tool configuration.
type Settings struct {
	// Document is the hook configuration file consulted when no path
	// argument is given.
	Document string `mapstructure:"document"`

	// CacheDB is the provider index database location.
	CacheDB string `mapstructure:"cache_db"`

	// Strict enables the JSON Schema pass on every validate run.
	Strict bool `mapstructure:"strict"`

	// Color toggles styled terminal output.
	Color bool `mapstructure:"color"`
}

// Load loads settings from files and environment variables.
// It searches for config files in the following order:
// 1. /etc/lilhook/config.{toml,yaml,yml}
// 2. $XDG_CONFIG_HOME/lilhook/config.{toml,yaml,yml} (or ~/.config/lilhook/)
// 3. ./config.{toml,yaml,yml}
//
// Environment variables override file settings using the prefix LILHOOK_
// For example: LILHOOK_CACHE_DB, LILHOOK_STRICT
func Load() (*Settings, error) {
	v := viper.New()

	v.SetConfigName("config")

	v.AddConfigPath("/etc/lilhook/")
	v.AddConfigPath(getXDGConfigPath())
	v.AddConfigPath(".")

	v.SetEnvPrefix("LILHOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Missing config file is fine; defaults and env vars apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper loads settings using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("document", hookcfg.ConfigFileName)
	v.SetDefault("cache_db", defaultCacheDB())
	v.SetDefault("strict", false)
	v.SetDefault("color", true)
}

// defaultCacheDB returns the XDG cache location for the provider index.
func defaultCacheDB() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "lilhook", "index.db")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".lilhook-index.db")
	}

	return filepath.Join(homeDir, ".cache", "lilhook", "index.db")
}

// getXDGConfigPath returns the XDG config directory for lilhook.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "lilhook")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home
		return "."
	}

	return filepath.Join(homeDir, ".config", "lilhook")
}
