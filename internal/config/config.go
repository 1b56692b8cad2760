// Package config provides YAML-based game configuration loading and
// difficulty presets for the blocks game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// PieceKinds lists the piece kind tags that may appear in display.colors.
const PieceKinds = "IOTSZJL"

// MaxPreview is the largest next-queue preview the bag can always serve.
const MaxPreview = 7

// MinFieldWidth is the narrowest field where every kind spawns inside the walls.
const MinFieldWidth = 5

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield dimensions.
// Rows above the visible area form the hidden spawn buffer.
type FieldConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Visible int `yaml:"visible"`
}

// Hidden returns the number of buffer rows above the visible area.
func (f FieldConfig) Hidden() int {
	return f.Height - f.Visible
}

// SpawnConfig defines the row of the shape matrix's top edge for new pieces.
type SpawnConfig struct {
	Row  int `yaml:"row"`   // All kinds except I
	RowI int `yaml:"row_i"` // The I piece
}

// TimingConfig defines gravity and lock delay.
type TimingConfig struct {
	LockDelayMS int   `yaml:"lock_delay_ms"`
	GravityMS   []int `yaml:"gravity_ms"` // Fall interval per level, index 0 = level 1
}

// LockDelay returns the lock delay as a duration.
func (t TimingConfig) LockDelay() time.Duration {
	return time.Duration(t.LockDelayMS) * time.Millisecond
}

// ScoringConfig defines points awarded for clears and drops.
// Clear values are multiplied by the level; drop values are per cell.
type ScoringConfig struct {
	Single   int `yaml:"single"`
	Double   int `yaml:"double"`
	Triple   int `yaml:"triple"`
	Quad     int `yaml:"quad"`
	SoftDrop int `yaml:"soft_drop"`
	HardDrop int `yaml:"hard_drop"`
}

// DisplayConfig defines presentation data consumed by the renderer.
type DisplayConfig struct {
	Preview int               `yaml:"preview"` // Number of upcoming pieces shown
	Colors  map[string]string `yaml:"colors"`  // Piece kind -> color name
}

// PieceColor returns the configured color for a kind tag.
func (d DisplayConfig) PieceColor(kind string) core.Color {
	if c, ok := core.ParseColor(d.Colors[kind]); ok {
		return c
	}
	return core.ColorWhite
}

// DifficultyConfig scales the gravity table.
type DifficultyConfig struct {
	GravityScale float64 `yaml:"gravity_scale"` // Multiplier on every interval, 1.0 = as configured
	Progression  bool    `yaml:"progression"`   // false keeps level-1 gravity for the whole game
}

// Validate checks the configuration and reports every problem found.
func (c BlocksConfig) Validate() error {
	var errs []error

	f := c.Field
	if f.Width < MinFieldWidth {
		errs = append(errs, fmt.Errorf("field.width must be at least %d, got %d", MinFieldWidth, f.Width))
	}
	if f.Visible < 1 {
		errs = append(errs, fmt.Errorf("field.visible must be positive, got %d", f.Visible))
	}
	if f.Height < f.Visible {
		errs = append(errs, fmt.Errorf("field.height (%d) must not be smaller than field.visible (%d)", f.Height, f.Visible))
	}

	for name, row := range map[string]int{"spawn.row": c.Spawn.Row, "spawn.row_i": c.Spawn.RowI} {
		if row < -4 || row >= f.Height {
			errs = append(errs, fmt.Errorf("%s must be within [-4, %d), got %d", name, f.Height, row))
		}
	}

	if c.Timing.LockDelayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.lock_delay_ms must not be negative, got %d", c.Timing.LockDelayMS))
	}
	if len(c.Timing.GravityMS) == 0 {
		errs = append(errs, errors.New("timing.gravity_ms must list at least one level"))
	}
	for i, ms := range c.Timing.GravityMS {
		if ms <= 0 {
			errs = append(errs, fmt.Errorf("timing.gravity_ms[%d] must be positive, got %d", i, ms))
		}
	}

	s := c.Scoring
	for name, v := range map[string]int{
		"single": s.Single, "double": s.Double, "triple": s.Triple,
		"quad": s.Quad, "soft_drop": s.SoftDrop, "hard_drop": s.HardDrop,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("scoring.%s must not be negative, got %d", name, v))
		}
	}

	if c.Display.Preview < 0 || c.Display.Preview > MaxPreview {
		errs = append(errs, fmt.Errorf("display.preview must be within [0, %d], got %d", MaxPreview, c.Display.Preview))
	}
	for kind, name := range c.Display.Colors {
		if len(kind) != 1 || !strings.Contains(PieceKinds, kind) {
			errs = append(errs, fmt.Errorf("display.colors: unknown piece kind %q", kind))
		}
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("display.colors.%s: unknown color %q", kind, name))
		}
	}

	if c.Difficulty.GravityScale <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.gravity_scale must be positive, got %g", c.Difficulty.GravityScale))
	}

	return errors.Join(errs...)
}
