package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads the blocks configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg, err := load(customPath, "blocks.yaml", defaultBlocksYAML, DefaultBlocksConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load[T any](customPath, filename string, embedded []byte, fallback T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, fallback); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", filename), fallback); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := fallback
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile decodes path over fallback. Unreadable or malformed files are skipped.
func tryFile[T any](path string, fallback T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback, false
	}
	cfg := fallback
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
