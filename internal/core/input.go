package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionConfirm        // Space, Enter - reveal / select
	ActionFlag           // F - cycle flag marker
	ActionChord          // C - open around a satisfied number
	ActionPause          // P - pause/unpause
	ActionRestart        // R - new board
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - leave the program
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionFlag:    "Flag",
	ActionChord:   "Chord",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Direction returns the cursor offset for a movement action and whether a
// is a movement action at all.
func (a Action) Direction() (Point, bool) {
	switch a {
	case ActionUp:
		return Point{0, -1}, true
	case ActionDown:
		return Point{0, 1}, true
	case ActionLeft:
		return Point{-1, 0}, true
	case ActionRight:
		return Point{1, 0}, true
	}
	return Point{}, false
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Movement returns the summed cursor offset of every movement action in f.
func (f InputFrame) Movement() Point {
	var d Point
	for _, a := range [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if f.Has(a) {
			step, _ := a.Direction()
			d = d.Add(step)
		}
	}
	return d
}
