package blocks

// Command is a discrete player intent accepted by the engine.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotateCW
	CmdRotateCCW
	CmdHardDrop
	CmdHold
	CmdTogglePause
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdSoftDrop:
		return "soft-drop"
	case CmdRotateCW:
		return "rotate-cw"
	case CmdRotateCCW:
		return "rotate-ccw"
	case CmdHardDrop:
		return "hard-drop"
	case CmdHold:
		return "hold"
	case CmdTogglePause:
		return "toggle-pause"
	default:
		return "unknown"
	}
}

// CommandSink consumes commands synchronously.
// Submit reports whether the command changed the game.
type CommandSink interface {
	Submit(cmd Command) bool
}
