package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvConfigPath = "VOLVA_CONFIG"
	EnvLogLevel   = "VOLVA_LOG_LEVEL"
)

// Load loads the game configuration.
// Search order: customPath -> $VOLVA_CONFIG -> ~/.volva/config.yaml -> ./configs/volva.yaml -> embedded default.
// Files are layered over the built-in defaults, so a partial file only
// overrides the keys it sets.
func Load(customPath string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), fmt.Errorf("parse embedded config: %w", err)
	}

	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}

	switch {
	case customPath != "":
		// An explicit path must exist and parse
		if err := loadFile(customPath, &cfg); err != nil {
			return cfg, err
		}
	default:
		for _, path := range []string{userConfigPath(), filepath.Join("configs", "volva.yaml")} {
			if path == "" {
				continue
			}
			next := cfg
			if err := loadFile(path, &next); err == nil {
				cfg = next
				break
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".volva", "config.yaml")
}
