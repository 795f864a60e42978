package selection

import "github.com/matzehuels/cropframe/pkg/geom"

// Observer receives notifications from a [Machine]. Callbacks run
// synchronously on the goroutine driving the machine.
type Observer interface {
	// SelectionChanged is called with the new rectangle after every change,
	// including resets to [geom.NoSelection].
	SelectionChanged(r geom.Rect)

	// ToolbarAnchorChanged is called when the toolbar moves, appears or hides.
	ToolbarAnchorChanged(a ToolbarAnchor)

	// StateChanged is called on every state transition. Hosts use it to
	// capture the pointer while [State.Dragging] is true.
	StateChanged(from, to State)

	// Accepted is called once the user confirms r.
	Accepted(r geom.Rect)

	// Canceled is called when the user discards the selection.
	Canceled()
}

// ObserverFuncs adapts optional callbacks to [Observer]. Nil fields are skipped.
type ObserverFuncs struct {
	OnSelectionChanged     func(geom.Rect)
	OnToolbarAnchorChanged func(ToolbarAnchor)
	OnStateChanged         func(from, to State)
	OnAccepted             func(geom.Rect)
	OnCanceled             func()
}

func (f ObserverFuncs) SelectionChanged(r geom.Rect) {
	if f.OnSelectionChanged != nil {
		f.OnSelectionChanged(r)
	}
}

func (f ObserverFuncs) ToolbarAnchorChanged(a ToolbarAnchor) {
	if f.OnToolbarAnchorChanged != nil {
		f.OnToolbarAnchorChanged(a)
	}
}

func (f ObserverFuncs) StateChanged(from, to State) {
	if f.OnStateChanged != nil {
		f.OnStateChanged(from, to)
	}
}

func (f ObserverFuncs) Accepted(r geom.Rect) {
	if f.OnAccepted != nil {
		f.OnAccepted(r)
	}
}

func (f ObserverFuncs) Canceled() {
	if f.OnCanceled != nil {
		f.OnCanceled()
	}
}

type subscription struct {
	id       int
	observer Observer
}
