package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Speed: SpeedConfig{
			Min:  5,
			Max:  20,
			Step: 1,
		},
		Levels: LevelsConfig{
			Start:    1,
			Interval: 10,
		},
		Input: InputConfig{
			KeyDelay:       3,
			ReleaseAfterMs: 150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks":
		return defaultBlocksYAML
	default:
		return nil
	}
}
