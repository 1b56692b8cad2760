// Package blocks implements the falling-block puzzle game: the playfield,
// piece geometry and collision, the 7-bag randomizer, scoring, hold and the
// gravity/lock-delay state machine, plus the adapter that plugs the engine
// into the terminal platform.
package blocks

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Package-level settings applied by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
// Unknown presets are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts the Engine to the platform's registry.Game interface. It turns
// input frames into commands and fixed simulation ticks into timestamps.
type Game struct {
	engine   *Engine
	commands CommandSink // Player commands, backed by engine

	cfg       config.BlocksConfig
	pinned    bool  // cfg was supplied by the caller and is not reloaded on Reset
	configErr error // Last load failure, nil when cfg came from the load

	tick         uint64        // Platform ticks since Reset
	played       uint64        // Ticks the engine clock has advanced
	tickInterval time.Duration // Simulated time per tick

	screenW  int
	screenH  int
	tooSmall bool

	colors [len(AllKinds) + 1]core.Color
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.BlocksConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.pinned {
		g.loadConfig()
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.tick = 0
	g.played = 0
	g.tickInterval = time.Second / time.Duration(tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.engine = NewEngine(g.cfg, cfg.Seed)
	g.commands = g.engine

	for _, k := range AllKinds {
		g.colors[k] = g.cfg.Display.PieceColor(k.String())
	}

	g.checkScreenSize()
}

// loadConfig reloads the configuration. On failure the error is kept for
// ConfigError and the last good configuration stays in use, or the defaults
// before any load succeeded.
func (g *Game) loadConfig() {
	loaded, _, err := config.LoadBlocks(configPath)
	g.configErr = err
	if err != nil {
		if g.engine != nil {
			return
		}
		loaded = config.DefaultBlocksConfig()
	}
	config.ApplyBlocksPreset(&loaded, difficultyPreset)
	g.cfg = loaded
}

// ConfigError returns the error of the most recent configuration load, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// checkScreenSize checks if the screen is large enough for the layout.
func (g *Game) checkScreenSize() {
	minW, minH := layoutSize(g.cfg)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// actionCommands lists the order in which simultaneous actions are applied.
var actionCommands = []struct {
	action core.Action
	cmd    Command
}{
	{core.ActionHold, CmdHold},
	{core.ActionRotateCW, CmdRotateCW},
	{core.ActionRotateCCW, CmdRotateCCW},
	{core.ActionLeft, CmdMoveLeft},
	{core.ActionRight, CmdMoveRight},
	{core.ActionDown, CmdSoftDrop},
	{core.ActionDrop, CmdHardDrop},
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// The engine clock stands still while the window is too small
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.commands.Submit(CmdTogglePause)
	}

	for _, ac := range actionCommands {
		if g.engine.State() != StateRunning {
			break
		}
		if in.Has(ac.action) {
			g.commands.Submit(ac.cmd)
		}
	}

	g.played++
	g.engine.Tick(time.Duration(g.played) * g.tickInterval)

	return core.StepResult{State: g.State()}
}

// Submit forwards a command to the game's command sink.
func (g *Game) Submit(cmd Command) bool {
	return g.commands.Submit(cmd)
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := g.engine.State()
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		GameOver: state == StateGameOver,
		Paused:   state == StatePaused || g.tooSmall,
	}
}
