package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  25,
			Height: 25,
		},
		Timing: SnakeTiming{
			MoveInterval: 100 * time.Millisecond,
			MinInterval:  40 * time.Millisecond,
		},
		Snake: SnakeBody{
			InitialLength:    3,
			InitialDirection: "right",
			QueueCapacity:    3,
		},
		Apple: SnakeApple{
			Strategy:       StrategyEnumerate,
			SampleAttempts: 64,
		},
		Gameplay: SnakeGameplay{
			AutoRestart: true,
		},
		Render: SnakeRender{
			BorderThickness: 2,
			CellAspect:      2,
			ScreenWidth:     800,
			ScreenHeight:    450,
			FPS:             60,
			HeadColor:       "#4782ff",
			AppleColor:      "#e62937",
			BorderColor:     "#000000",
			BorderBG:        "#a0ff70",
		},
		Sound: SnakeSound{
			Enabled: false,
			Volume:  0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
