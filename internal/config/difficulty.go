package config

import (
	"fmt"
	"math"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value into a preset.
// An empty string means "no preset" and is not an error.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// GravityScaleForPreset returns the gravity interval multiplier for a preset.
// Larger values mean slower falling pieces.
func GravityScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Progression = false
	default:
		cfg.Difficulty.Progression = true
		cfg.Difficulty.GravityScale = GravityScaleForPreset(preset)
	}
}

// GravityTable returns the fall interval per level (index 0 = level 1) after
// difficulty scaling. Without progression the table holds only the level-1 interval.
func GravityTable(cfg BlocksConfig) []time.Duration {
	src := cfg.Timing.GravityMS
	if !cfg.Difficulty.Progression && len(src) > 0 {
		src = src[:1]
	}

	scale := cfg.Difficulty.GravityScale
	if scale <= 0 {
		scale = 1.0
	}

	table := make([]time.Duration, len(src))
	for i, ms := range src {
		d := time.Duration(math.Round(float64(ms) * scale * float64(time.Millisecond)))
		table[i] = max(d, time.Millisecond)
	}
	return table
}
