// Package config provides YAML-based configuration loading and difficulty
// presets for the blocks game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Speed  SpeedConfig  `yaml:"speed"`
	Levels LevelsConfig `yaml:"levels"`
	Input  InputConfig  `yaml:"input"`
}

// FieldConfig sets the size of the well in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the gravity curve in falls per second.
type SpeedConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"` // Added on every level up
}

// LevelsConfig defines level progression.
type LevelsConfig struct {
	Start    int `yaml:"start"`
	Interval int `yaml:"interval"` // Cleared lines per level
}

// InputConfig tunes key repeat handling.
type InputConfig struct {
	KeyDelay       int `yaml:"key_delay"`        // Ticks a key must be held before it repeats
	ReleaseAfterMs int `yaml:"release_after_ms"` // Silence after which a held terminal key counts as released
}

// ReleaseAfter returns the key release timeout as a duration.
func (c InputConfig) ReleaseAfter() time.Duration {
	return time.Duration(c.ReleaseAfterMs) * time.Millisecond
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the config describes a playable game.
func (c BlocksConfig) Validate() error {
	switch {
	case c.Field.Width < 4 || c.Field.Height < 4:
		return fmt.Errorf("config: field %dx%d is smaller than 4x4: %w", c.Field.Width, c.Field.Height, ErrInvalid)
	case c.Speed.Min <= 0 || c.Speed.Max <= 0:
		return fmt.Errorf("config: speeds must be positive, got min %g max %g: %w", c.Speed.Min, c.Speed.Max, ErrInvalid)
	case c.Speed.Max < c.Speed.Min:
		return fmt.Errorf("config: max speed %g below min speed %g: %w", c.Speed.Max, c.Speed.Min, ErrInvalid)
	case c.Speed.Step < 0:
		return fmt.Errorf("config: negative speed step %g: %w", c.Speed.Step, ErrInvalid)
	case c.Levels.Interval <= 0:
		return fmt.Errorf("config: level interval must be positive, got %d: %w", c.Levels.Interval, ErrInvalid)
	case c.Levels.Start < 1:
		return fmt.Errorf("config: start level must be at least 1, got %d: %w", c.Levels.Start, ErrInvalid)
	case c.Input.KeyDelay < 0:
		return fmt.Errorf("config: negative key delay %d: %w", c.Input.KeyDelay, ErrInvalid)
	case c.Input.ReleaseAfterMs <= 0:
		return fmt.Errorf("config: release_after_ms must be positive, got %d: %w", c.Input.ReleaseAfterMs, ErrInvalid)
	}
	return nil
}
