package config

import (
	"testing"
	"time"
)

func TestDifficultyDisabledKeepsBaseInterval(t *testing.T) {
	dm := NewDifficultyManager(DefaultSnakeConfig().Difficulty)

	if dm.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	base := 100 * time.Millisecond
	if got := dm.Interval(base, 40*time.Millisecond, 500, 0); got != base {
		t.Errorf("Interval() = %s, expected base %s", got, base)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)
	base := 100 * time.Millisecond

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %f, expected 0", got)
	}
	if got := dm.Level(5, 0); got != 0.5 {
		t.Errorf("Level(5) = %f, expected 0.5", got)
	}
	if got := dm.Level(100, 0); got != 1 {
		t.Errorf("Level should clamp at 1, got %f", got)
	}

	// Max difficulty doubles speed, halving the interval
	if got := dm.Interval(base, 0, 10, 0); got != 50*time.Millisecond {
		t.Errorf("Interval at max = %s, expected 50ms", got)
	}
	// Floor applies
	if got := dm.Interval(base, 80*time.Millisecond, 10, 0); got != 80*time.Millisecond {
		t.Errorf("Interval with floor = %s, expected 80ms", got)
	}
}

func TestDifficultyTimeProgressionAndInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %f, expected initial 0.5", got)
	}
	if got := dm.Level(0, 50); got != 0.75 {
		t.Errorf("Level halfway = %f, expected 0.75", got)
	}

	dm.SetInitialLevel(2.0)
	if got := dm.Level(0, 0); got != 1.0 {
		t.Errorf("SetInitialLevel should clamp, got %f", got)
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() {
		t.Error("SetEnabled(false) should disable progression")
	}
}
