package blocks

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// Engine owns the playfield, the bag, the active and held pieces and the
// gravity/lock-delay clock. It is advanced only by Tick and by commands;
// all timing is a logical countdown over the timestamps passed to Tick.
type Engine struct {
	field     *Playfield
	bag       *Bag
	spawn     SpawnRule
	scoring   Scoring
	gravity   Gravity
	lockDelay time.Duration
	preview   int
	visible   int

	active  Piece
	ghostY  int
	hold    Kind
	canHold bool
	state   State

	score     int
	lines     int
	level     int
	locked    int
	lastClear int

	clock       time.Duration // Latest timestamp seen by Tick
	lastStep    time.Duration // Timestamp of the last gravity interval boundary
	lockPending bool
	lockStart   time.Duration
	pausedAt    time.Duration
}

// Compile-time check that Engine accepts commands.
var _ CommandSink = (*Engine)(nil)

// NewEngine creates a running game from a configuration and a bag seed.
// The configuration must be valid; a malformed one is a programming error and panics.
func NewEngine(cfg config.BlocksConfig, seed int64) *Engine {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("blocks: invalid config: %v", err))
	}

	e := &Engine{
		field: NewPlayfield(cfg.Field.Width, cfg.Field.Height),
		bag:   NewBag(seed),
		spawn: SpawnRule{
			FieldWidth: cfg.Field.Width,
			Row:        cfg.Spawn.Row,
			RowI:       cfg.Spawn.RowI,
		},
		scoring:   NewScoring(cfg.Scoring),
		gravity:   Gravity(config.GravityTable(cfg)),
		lockDelay: cfg.Timing.LockDelay(),
		preview:   cfg.Display.Preview,
		visible:   cfg.Field.Visible,
		canHold:   true,
		level:     1,
		state:     StateRunning,
	}
	e.spawnPiece(e.bag.Next())
	return e
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level.
func (e *Engine) Level() int {
	return e.level
}

// Lines returns the total number of cleared lines.
func (e *Engine) Lines() int {
	return e.lines
}

// GravityInterval returns the fall interval of the current level.
func (e *Engine) GravityInterval() time.Duration {
	return e.gravity.Interval(e.level)
}

// Submit applies a command. It reports whether the command had an effect.
func (e *Engine) Submit(cmd Command) bool {
	switch cmd {
	case CmdMoveLeft:
		return e.Move(-1, 0)
	case CmdMoveRight:
		return e.Move(1, 0)
	case CmdSoftDrop:
		return e.SoftDrop()
	case CmdRotateCW:
		return e.Rotate(Clockwise)
	case CmdRotateCCW:
		return e.Rotate(CounterClockwise)
	case CmdHardDrop:
		if e.state != StateRunning {
			return false
		}
		e.HardDrop()
		return true
	case CmdHold:
		return e.Hold()
	case CmdTogglePause:
		return e.TogglePause()
	default:
		return false
	}
}

// Move translates the active piece if the target position is free.
func (e *Engine) Move(dx, dy int) bool {
	if e.state != StateRunning {
		return false
	}
	return e.shift(dx, dy)
}

// shift moves the active piece without checking the engine state.
func (e *Engine) shift(dx, dy int) bool {
	if e.active.Collides(e.field, dx, dy) {
		return false
	}
	e.active = e.active.Moved(dx, dy)
	e.settle(dy > 0)
	return true
}

// settle recomputes the ghost after the active piece changed and cancels a
// pending lock once the piece fell or is no longer resting on anything.
func (e *Engine) settle(fell bool) {
	e.updateGhost()
	if e.lockPending && (fell || e.ghostY > e.active.Y) {
		e.lockPending = false
	}
}

// updateGhost recomputes the landing row of the active piece.
func (e *Engine) updateGhost() {
	e.ghostY = e.active.GhostY(e.field)
}

// SoftDrop moves the piece down one row, awarding the soft-drop bonus on success.
func (e *Engine) SoftDrop() bool {
	if !e.Move(0, 1) {
		return false
	}
	e.score += e.scoring.SoftDrop()
	return true
}

// Rotate turns the active piece. A rotation that would collide is discarded
// and the previous shape kept; there are no wall kicks.
func (e *Engine) Rotate(dir Rotation) bool {
	if e.state != StateRunning {
		return false
	}
	rotated := e.active.Rotated(dir)
	if rotated.Collides(e.field, 0, 0) {
		return false
	}
	e.active = rotated
	e.settle(false)
	return true
}

// HardDrop drops the piece as far as it goes, awarding the hard-drop bonus
// per row, and locks it immediately. Returns the rows dropped.
func (e *Engine) HardDrop() int {
	if e.state != StateRunning {
		return 0
	}
	rows := 0
	for e.shift(0, 1) {
		rows++
		e.score += e.scoring.HardDrop()
	}
	e.lock()
	return rows
}

// Hold stores the active kind and continues with the held one, or with the
// next kind from the bag when the slot was empty. Allowed once per piece.
func (e *Engine) Hold() bool {
	if e.state != StateRunning || !e.canHold {
		return false
	}

	current := e.active.Kind
	next := e.hold
	if next == KindNone {
		next = e.bag.Next()
	}
	e.hold = current
	e.canHold = false
	e.spawnPiece(next)
	return true
}

// TogglePause switches between running and paused. Time spent paused does
// not count toward gravity or lock delay.
func (e *Engine) TogglePause() bool {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
		e.pausedAt = e.clock
	case StatePaused:
		shift := e.clock - e.pausedAt
		e.lastStep += shift
		if e.lockPending {
			e.lockStart += shift
		}
		e.state = StateRunning
	default:
		return false
	}
	return true
}

// Tick advances the clock to now. Each time more than one gravity interval
// has passed since the last boundary the piece falls a row; a piece that
// cannot fall starts the lock-delay countdown, and locks once the delay has
// elapsed without the piece falling again.
func (e *Engine) Tick(now time.Duration) {
	e.clock = now
	if e.state != StateRunning {
		return
	}

	if now-e.lastStep > e.GravityInterval() {
		if !e.shift(0, 1) && !e.lockPending {
			e.lockPending = true
			e.lockStart = now
		}
		e.lastStep = now
	}

	if e.lockPending && now-e.lockStart >= e.lockDelay {
		e.lockPending = false
		if e.ghostY == e.active.Y {
			e.lock()
		}
	}
}

// lock merges the active piece, clears rows, updates scoring and spawns the
// next piece. A lock with any cell above the visible rows or a blocked spawn
// ends the game.
func (e *Engine) lock() {
	e.lockPending = false
	overflow := e.field.Merge(e.active) || e.lockedOutOfView()
	rows := e.field.ClearFullRows()

	e.score += e.scoring.LineClear(rows, e.level)
	e.lines += rows
	e.level = LevelForLines(e.lines)
	e.locked++
	e.lastClear = rows

	e.canHold = true
	e.spawnPiece(e.bag.Next())
	if overflow {
		e.state = StateGameOver
	}
}

// lockedOutOfView reports whether the active piece occupies a hidden buffer
// row or a row above the grid.
func (e *Engine) lockedOutOfView() bool {
	top := e.field.Height() - e.visible
	out := false
	e.active.Cells(func(_, y int) {
		if y < top {
			out = true
		}
	})
	return out
}

// spawnPiece makes a fresh piece of kind k active. A piece that collides at
// its spawn position tops out the game.
func (e *Engine) spawnPiece(k Kind) {
	e.active = e.spawn.Spawn(k)
	e.lockPending = false
	e.lastStep = e.clock
	e.updateGhost()
	if e.active.Collides(e.field, 0, 0) {
		e.state = StateGameOver
	}
}

// Snapshot returns a copy of the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	ghost := e.active
	ghost.Y = e.ghostY

	return Snapshot{
		Width:       e.field.Width(),
		Height:      e.field.Height(),
		Visible:     e.visible,
		Grid:        e.field.Rows(),
		Active:      e.active,
		Ghost:       ghost,
		Hold:        e.hold,
		CanHold:     e.canHold,
		Next:        e.bag.Peek(e.preview),
		Score:       e.score,
		Level:       e.level,
		Lines:       e.lines,
		Locked:      e.locked,
		LastClear:   e.lastClear,
		State:       e.state,
	}
}
