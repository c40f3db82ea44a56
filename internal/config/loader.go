package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const countFile = "count.yaml"

// LoadCount loads the counting game configuration.
// Search order: customPath -> ~/.tapcount/count.yaml -> ./configs/count.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file may set only the keys it
// cares about. An explicit customPath must exist, parse and validate; the
// implicit locations are skipped when they are missing or broken.
func LoadCount(customPath string) (CountConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CountConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCount(data)
		if err != nil {
			return CountConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(countFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCount(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", countFile)); err == nil {
		if cfg, err := parseCount(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseCount(defaultCountYAML)
	if err != nil {
		return DefaultCountConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parseCount decodes YAML over the defaults and validates the result.
func parseCount(data []byte) (CountConfig, error) {
	cfg := DefaultCountConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CountConfig{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CountConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tapcount", filename)
}
