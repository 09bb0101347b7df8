package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the round configuration and reports where it came from.
// Search order: customPath -> ~/.shapematch/configs/match.yaml -> ./configs/match.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it sets. A tokens list replaces the whole catalog.
func Load(customPath string) (MatchConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MatchConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MatchConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "match.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, filepath.Join("configs", "match.yaml"), nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMatchYAML)
	if err != nil {
		return DefaultMatchConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (MatchConfig, error) {
	cfg := DefaultMatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatchConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return MatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapematch", "configs", filename)
}
