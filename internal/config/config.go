// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Timing     SnakeTiming      `yaml:"timing"`
	Snake      SnakeBody        `yaml:"snake"`
	Apple      SnakeApple       `yaml:"apple"`
	Gameplay   SnakeGameplay    `yaml:"gameplay"`
	Render     SnakeRender      `yaml:"render"`
	Sound      SnakeSound       `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the playfield size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming defines the fixed-step timing of the game loop.
type SnakeTiming struct {
	MoveInterval time.Duration `yaml:"move_interval"` // Time between snake moves
	MinInterval  time.Duration `yaml:"min_interval"`  // Floor for difficulty speed-up
}

// SnakeBody defines the snake's starting shape and input buffering.
type SnakeBody struct {
	InitialLength    int    `yaml:"initial_length"`
	InitialDirection string `yaml:"initial_direction"` // up, down, left, right
	QueueCapacity    int    `yaml:"queue_capacity"`    // Max buffered direction changes
}

// SnakeApple selects the apple placement strategy.
type SnakeApple struct {
	Strategy       string `yaml:"strategy"`        // "enumerate" or "sample"
	SampleAttempts int    `yaml:"sample_attempts"` // Budget before sampling falls back to enumeration
}

// SnakeGameplay holds rules that are not part of the movement model.
type SnakeGameplay struct {
	AutoRestart bool `yaml:"auto_restart"` // Reset in place on collision
}

// SnakeRender holds presentation parameters shared by the front ends.
type SnakeRender struct {
	BorderThickness int    `yaml:"border_thickness"`
	CellAspect      int    `yaml:"cell_aspect"` // Terminal columns per cell row unit
	ScreenWidth     int    `yaml:"screen_width"`
	ScreenHeight    int    `yaml:"screen_height"`
	FPS             int    `yaml:"fps"`
	HeadColor       string `yaml:"head_color"`
	AppleColor      string `yaml:"apple_color"`
	BorderColor     string `yaml:"border_color"`
	BorderBG        string `yaml:"border_bg"`
}

// SnakeSound controls the optional sound effects.
type SnakeSound struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Master volume in [0, 1]
}

// Apple placement strategy names.
const (
	StrategyEnumerate = "enumerate"
	StrategySample    = "sample"
)

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty input yields "".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q: %w", s, ErrInvalidConfig)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Timing.MoveInterval <= 0 {
		errs = append(errs, fmt.Errorf("move_interval must be positive, got %s", c.Timing.MoveInterval))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("initial_length must be at least 1, got %d", c.Snake.InitialLength))
	}
	if c.Snake.QueueCapacity < 1 {
		errs = append(errs, fmt.Errorf("queue_capacity must be at least 1, got %d", c.Snake.QueueCapacity))
	}
	switch c.Snake.InitialDirection {
	case "up", "down", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("unknown initial_direction %q", c.Snake.InitialDirection))
	}
	// The snake is re-centred facing whatever direction it died in, so the
	// initial body must fit from the centre toward every wall.
	if limit := min(c.Grid.Width-c.Grid.Width/2, c.Grid.Height-c.Grid.Height/2); c.Snake.InitialLength > limit {
		errs = append(errs, fmt.Errorf("initial_length %d does not fit a %dx%d grid (max %d)",
			c.Snake.InitialLength, c.Grid.Width, c.Grid.Height, limit))
	}
	switch c.Apple.Strategy {
	case StrategyEnumerate, StrategySample:
	default:
		errs = append(errs, fmt.Errorf("unknown apple strategy %q", c.Apple.Strategy))
	}
	if c.Render.BorderThickness < 0 || c.Render.CellAspect < 1 {
		errs = append(errs, fmt.Errorf("border_thickness must be >= 0 and cell_aspect >= 1"))
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound volume must be in [0, 1], got %v", c.Sound.Volume))
	}
	for _, hex := range []string{c.Render.HeadColor, c.Render.AppleColor, c.Render.BorderColor, c.Render.BorderBG} {
		if _, err := ParseHexColor(hex); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
