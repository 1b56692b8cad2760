package blocks

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of everything the presentation layer reads.
// Mutating it never affects the engine.
type Snapshot struct {
	Width   int
	Height  int
	Visible int      // Bottom rows drawn on screen
	Grid    [][]Kind // Deep copy, top row first

	Active Piece
	Ghost  Piece // Active piece moved to its landing row

	Hold    Kind // KindNone when the slot is empty
	CanHold bool
	Next    []Kind

	Score     int
	Level     int
	Lines     int
	Locked    int // Pieces locked so far
	LastClear int // Rows cleared by the most recent lock

	State State
}

// Paused reports whether the game is paused.
func (s Snapshot) Paused() bool {
	return s.State == StatePaused
}

// GameOver reports whether the game has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// HiddenRows returns the number of buffer rows above the visible area.
func (s Snapshot) HiddenRows() int {
	return s.Height - s.Visible
}
