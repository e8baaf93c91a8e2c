package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, H, A - shift piece left
	ActionRight            // Right arrow, L, D - shift piece right
	ActionSoftDrop         // Down arrow, J, S - fall one row
	ActionHardDrop         // Up arrow, W, Space - drop until locked
	ActionRotateCW         // X - rotate clockwise
	ActionRotateCCW        // Z - rotate counter-clockwise
	ActionConfirm          // Enter
	ActionBack             // B
	ActionRestart          // R - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input collected during one simulation tick. Actions
// holds keys that went down, Releases keys that went up. A key may appear
// in both when it was tapped and let go within the same tick.
type InputFrame struct {
	Actions  map[Action]bool
	Releases map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Releases: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Release marks an action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Releases == nil {
		f.Releases = make(map[Action]bool)
	}
	f.Releases[a] = true
}

// Released returns true if the given action was released this frame.
func (f InputFrame) Released(a Action) bool {
	return f.Releases[a]
}

// Empty reports whether the frame carries no presses or releases.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Releases) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Releases)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Releases {
		clone.Releases[k] = v
	}
	return clone
}
