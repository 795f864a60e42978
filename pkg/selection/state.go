package selection

import (
	"fmt"
	"strings"
)

// State is the interaction state of a [Machine]. Exactly one is active.
type State int

const (
	Idle State = iota
	Drawing
	Resizing
	Moving
	Selected
)

// States lists every state in declaration order.
var States = []State{Idle, Drawing, Resizing, Moving, Selected}

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Resizing:
		return "resizing"
	case Moving:
		return "moving"
	case Selected:
		return "selected"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState maps a state name such as "selected" to its [State].
func ParseState(name string) (State, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range States {
		if s.String() == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

// Dragging reports whether a pointer button is held in this state, which is
// when the host should keep the pointer captured.
func (s State) Dragging() bool {
	return s == Drawing || s == Resizing || s == Moving
}

// Key is a keyboard shortcut understood by the machine.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	}
	return "other"
}

// ParseKey maps a key name to a [Key]. Unknown names map to KeyOther.
func ParseKey(name string) Key {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "esc", "escape":
		return KeyEscape
	case "enter", "return":
		return KeyEnter
	}
	return KeyOther
}

// Transition is one edge of the interaction state machine, used for
// documentation and diagrams.
type Transition struct {
	From, To State
	Event    string
}

// Transitions is the full transition table enforced by [Machine].
// Cancel and Retry apply from every state; they are listed once per state.
var Transitions = []Transition{
	{Idle, Drawing, "pointer down"},
	{Drawing, Selected, "pointer up (>= min size)"},
	{Drawing, Idle, "pointer up (< min size)"},
	{Selected, Moving, "pointer down on body"},
	{Selected, Resizing, "pointer down on handle"},
	{Selected, Drawing, "pointer down on surface"},
	{Moving, Selected, "pointer up"},
	{Resizing, Selected, "pointer up"},
	{Selected, Idle, "accept"},
	{Idle, Idle, "cancel / retry"},
	{Drawing, Idle, "cancel / retry"},
	{Resizing, Idle, "cancel / retry"},
	{Moving, Idle, "cancel / retry"},
	{Selected, Idle, "cancel / retry"},
}
