package blocks

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// LinesPerLevel is the number of cleared lines that advance the level by one.
const LinesPerLevel = 10

// LevelForLines returns the level reached after clearing the given number of lines.
func LevelForLines(lines int) int {
	return lines/LinesPerLevel + 1
}

// Scoring awards points for line clears and drops.
type Scoring struct {
	clear    [5]int // indexed by rows cleared; index 0 unused
	softDrop int
	hardDrop int
}

// NewScoring builds the scoring table from configuration.
func NewScoring(cfg config.ScoringConfig) Scoring {
	return Scoring{
		clear:    [5]int{0, cfg.Single, cfg.Double, cfg.Triple, cfg.Quad},
		softDrop: cfg.SoftDrop,
		hardDrop: cfg.HardDrop,
	}
}

// LineClear returns the points for clearing rows at once on the given level.
// Counts outside 1..4 score nothing.
func (s Scoring) LineClear(rows, level int) int {
	if rows < 1 || rows >= len(s.clear) {
		return 0
	}
	return s.clear[rows] * level
}

// SoftDrop returns the points for one soft-dropped cell.
func (s Scoring) SoftDrop() int {
	return s.softDrop
}

// HardDrop returns the points for one hard-dropped cell.
func (s Scoring) HardDrop() int {
	return s.hardDrop
}

// Gravity maps levels to fall intervals.
type Gravity []time.Duration

// Interval returns the fall interval for a level (1-based). Levels beyond the
// table reuse its last entry.
func (g Gravity) Interval(level int) time.Duration {
	i := min(max(level-1, 0), len(g)-1)
	return g[i]
}
