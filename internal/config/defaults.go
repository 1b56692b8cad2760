package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blocks configuration.
// It mirrors defaults/blocks.yaml and is used when the embedded file cannot be parsed.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Field: FieldConfig{
			Width:   10,
			Height:  24,
			Visible: 20,
		},
		Spawn: SpawnConfig{
			Row:  2,
			RowI: 1,
		},
		Timing: TimingConfig{
			LockDelayMS: 500,
			GravityMS:   []int{1000, 793, 618, 473, 355, 262, 190, 135, 94, 64, 43, 28, 18, 11, 7},
		},
		Scoring: ScoringConfig{
			Single:   100,
			Double:   300,
			Triple:   500,
			Quad:     800,
			SoftDrop: 1,
			HardDrop: 2,
		},
		Display: DisplayConfig{
			Preview: 6,
			Colors: map[string]string{
				"I": "cyan",
				"O": "yellow",
				"T": "magenta",
				"S": "green",
				"Z": "red",
				"J": "blue",
				"L": "orange",
			},
		},
		Difficulty: DifficultyConfig{
			GravityScale: 1.0,
			Progression:  true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
