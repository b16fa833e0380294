package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/lilhook/lilhook/internal/hookcfg"
)

func TestLoadWithTOML(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.toml")

	tomlContent := `
document = "hooks.yaml"
cache_db = "/var/cache/lilhook/index.db"
strict = true
`
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	s, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if s.Document != "hooks.yaml" {
		t.Errorf("Expected document to be 'hooks.yaml', got '%s'", s.Document)
	}
	if s.CacheDB != "/var/cache/lilhook/index.db" {
		t.Errorf("Expected cache_db from TOML, got '%s'", s.CacheDB)
	}
	if !s.Strict {
		t.Error("Expected strict to be true")
	}
}

func TestLoadWithYAML(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	yamlContent := `
document: custom-hooks.yaml
color: false
`
	if err := os.WriteFile(configFile, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	s, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if s.Document != "custom-hooks.yaml" {
		t.Errorf("Expected document to be 'custom-hooks.yaml', got '%s'", s.Document)
	}
	if s.Color {
		t.Error("Expected color to be false")
	}
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("LILHOOK_CACHE_DB", "/tmp/from-env.db")

	v := viper.New()
	v.SetEnvPrefix("LILHOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("cache_db")

	s, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if s.CacheDB != "/tmp/from-env.db" {
		t.Errorf("Expected cache_db from env, got '%s'", s.CacheDB)
	}
}

func TestLoadWithTOMLAndEnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.toml")

	tomlContent := `
cache_db = "/var/cache/from-toml.db"
`
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("LILHOOK_CACHE_DB", "/tmp/from-env-override.db")

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetEnvPrefix("LILHOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	s, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Environment variable should override TOML value
	if s.CacheDB != "/tmp/from-env-override.db" {
		t.Errorf("Expected cache_db from env override, got '%s'", s.CacheDB)
	}
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	s, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if s.Document != hookcfg.ConfigFileName {
		t.Errorf("Expected default document %q, got '%s'", hookcfg.ConfigFileName, s.Document)
	}
	if s.CacheDB == "" {
		t.Error("Expected a default cache_db path")
	}
	if s.Strict {
		t.Error("Expected strict to default to false")
	}
	if !s.Color {
		t.Error("Expected color to default to true")
	}
}

func TestGetXDGConfigPath(t *testing.T) {
	tests := []struct {
		name         string
		xdgConfig    string
		wantContains string
	}{
		{
			name:         "with XDG_CONFIG_HOME set",
			xdgConfig:    "/custom/config",
			wantContains: "/custom/config/lilhook",
		},
		{
			name:         "without XDG_CONFIG_HOME",
			xdgConfig:    "",
			wantContains: ".config/lilhook",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			path := getXDGConfigPath()
			if !filepath.IsAbs(path) && tt.xdgConfig == "" {
				// No XDG_CONFIG_HOME and no home dir means "."
				if path != "." {
					t.Errorf("Expected '.', got '%s'", path)
				}
			} else if !strings.Contains(path, tt.wantContains) {
				t.Errorf("Expected path to contain '%s', got '%s'", tt.wantContains, path)
			}
		})
	}
}

func TestDefaultCacheDB(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")

	path := defaultCacheDB()
	if !strings.HasPrefix(path, "/custom/cache/lilhook") {
		t.Errorf("Expected XDG cache location, got '%s'", path)
	}
}
