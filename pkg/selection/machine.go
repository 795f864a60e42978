package selection

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cropframe/pkg/geom"
	"github.com/matzehuels/cropframe/pkg/observability"
)

// Option configures a [Machine].
type Option func(*Machine)

// WithBounds sets the initial surface bounds.
func WithBounds(b geom.Size) Option { return func(m *Machine) { m.bounds = b } }

// WithObserver subscribes o before any event is processed.
func WithObserver(o Observer) Option { return func(m *Machine) { m.Subscribe(o) } }

// WithClock replaces time.Now for episode timing.
func WithClock(now func() time.Time) Option { return func(m *Machine) { m.now = now } }

// Machine is the interaction state machine for one selection widget.
//
// It is not safe for concurrent use. A single goroutine, normally the host's
// UI event loop, must deliver events in the order they happened: move and
// resize work on the delta between consecutive pointer positions.
type Machine struct {
	sel     selectionState
	state   State
	bounds  geom.Size
	pending *geom.Size
	toolbar ToolbarAnchor

	handle Handle
	last   geom.Point

	episode uuid.UUID
	started time.Time
	now     func() time.Time

	subs   []subscription
	nextID int
}

// New returns an idle machine with no selection.
func New(opts ...Option) *Machine {
	m := &Machine{
		state:   Idle,
		toolbar: HiddenToolbar,
		now:     time.Now,
	}
	m.sel = newSelectionState(m.emitSelection)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the active interaction state.
func (m *Machine) State() State { return m.state }

// Selection returns the current rectangle, or [geom.NoSelection].
func (m *Machine) Selection() geom.Rect { return m.sel.rect }

// Toolbar returns the current toolbar anchor.
func (m *Machine) Toolbar() ToolbarAnchor { return m.toolbar }

// Bounds returns the surface bounds in effect.
func (m *Machine) Bounds() geom.Size { return m.bounds }

// Episode returns the ID of the running episode, or uuid.Nil when idle.
func (m *Machine) Episode() uuid.UUID { return m.episode }

// ActiveHandle returns the handle being dragged while Resizing.
func (m *Machine) ActiveHandle() (Handle, bool) {
	return m.handle, m.state == Resizing
}

// Subscribe registers o for notifications and returns a function that
// removes it again.
func (m *Machine) Subscribe(o Observer) (unsubscribe func()) {
	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscription{id: id, observer: o})
	return func() {
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// SetSurfaceBounds updates the surface size. Bounds received during a drag
// are held back until the pointer is released. A committed selection that no
// longer fits is shrunk and moved back inside.
func (m *Machine) SetSurfaceBounds(b geom.Size) {
	if m.state.Dragging() {
		m.pending = &b
		return
	}
	m.applyBounds(b)
}

// OnPointerDown handles a primary button press at p on target.
func (m *Machine) OnPointerDown(p geom.Point, target HitTarget) {
	switch m.state {
	case Idle:
		m.startDrawing(p)
	case Selected:
		switch target.Kind {
		case TargetBody:
			m.last = p
			m.setToolbar(HiddenToolbar)
			m.transition(Moving)
		case TargetHandle:
			if !target.Handle.Valid() {
				return
			}
			m.handle = target.Handle
			m.last = p
			m.transition(Resizing)
		default:
			m.startDrawing(p)
		}
	}
}

// OnPointerMove handles pointer motion with the primary button held.
// Motion outside a drag is ignored.
func (m *Machine) OnPointerMove(p geom.Point) {
	switch m.state {
	case Drawing:
		m.sel.update(p)
	case Moving:
		d := p.Sub(m.last)
		m.last = p
		m.sel.set(Move(d.X, d.Y, m.sel.rect, m.bounds))
	case Resizing:
		d := p.Sub(m.last)
		m.last = p
		m.sel.set(Resize(m.handle, d.X, d.Y, m.sel.rect, m.bounds))
		m.placeToolbar()
	}
}

// OnPointerUp ends the current drag at p. A drawing is first clipped to the
// surface; if it is then smaller than [MinSize] on either axis it is dropped
// as if the user had pressed Retry.
func (m *Machine) OnPointerUp(p geom.Point) {
	switch m.state {
	case Drawing:
		m.sel.update(p)
		if !m.sel.finalize(m.bounds) {
			m.reset(observability.OutcomeRejected)
			return
		}
		m.transition(Selected)
	case Moving, Resizing:
		m.OnPointerMove(p)
		m.transition(Selected)
	default:
		return
	}
	m.flushBounds()
	m.placeToolbar()
}

// OnSecondary handles a secondary pointer action such as a right click.
// It behaves like [Machine.Retry].
func (m *Machine) OnSecondary() { m.Retry() }

// OnKey handles keyboard shortcuts: Escape cancels and Enter accepts.
func (m *Machine) OnKey(k Key) {
	switch k {
	case KeyEscape:
		m.Cancel()
	case KeyEnter:
		m.Accept()
	}
}

// Accept confirms the selection. It only has an effect while Selected; the
// machine resets to Idle and then reports the accepted rectangle.
func (m *Machine) Accept() {
	if m.state != Selected {
		return
	}
	r := m.sel.rect
	m.reset(observability.OutcomeAccepted)
	for _, s := range m.observers() {
		s.Accepted(r)
	}
}

// Cancel discards the selection from any state and reports it.
func (m *Machine) Cancel() {
	m.reset(observability.OutcomeCanceled)
	for _, s := range m.observers() {
		s.Canceled()
	}
}

// Retry discards the selection from any state without reporting it.
func (m *Machine) Retry() {
	m.reset(observability.OutcomeRetried)
}

func (m *Machine) startDrawing(p geom.Point) {
	if m.episode == uuid.Nil {
		m.episode = uuid.New()
		m.started = m.now()
		observability.Selection().OnEpisodeStart(m.episode)
	}
	m.sel.begin(p)
	m.setToolbar(HiddenToolbar)
	m.transition(Drawing)
}

func (m *Machine) reset(outcome observability.Outcome) {
	if m.episode != uuid.Nil {
		observability.Selection().OnEpisodeEnd(m.episode, outcome, m.sel.rect, m.now().Sub(m.started))
	}
	m.sel.reset()
	m.setToolbar(HiddenToolbar)
	m.transition(Idle)
	m.episode = uuid.Nil
	m.started = time.Time{}
	m.handle = 0
	m.last = geom.Point{}
	m.flushBounds()
}

func (m *Machine) transition(to State) {
	if to == m.state {
		return
	}
	from := m.state
	m.state = to
	if m.episode != uuid.Nil {
		observability.Selection().OnTransition(m.episode, from.String(), to.String())
	}
	for _, s := range m.observers() {
		s.StateChanged(from, to)
	}
}

func (m *Machine) flushBounds() {
	if m.pending == nil {
		return
	}
	b := *m.pending
	m.pending = nil
	m.applyBounds(b)
}

func (m *Machine) applyBounds(b geom.Size) {
	m.bounds = b
	if m.state != Selected {
		return
	}
	r := m.sel.rect
	if b.Width > 0 && r.Width > b.Width {
		r.Width = b.Width
	}
	if b.Height > 0 && r.Height > b.Height {
		r.Height = b.Height
	}
	m.sel.set(geom.ClampToBounds(r, clampLimits(b)))
	m.placeToolbar()
}

func (m *Machine) placeToolbar() {
	m.setToolbar(PlaceToolbar(m.sel.rect, m.bounds))
}

func (m *Machine) setToolbar(a ToolbarAnchor) {
	if a == m.toolbar {
		return
	}
	m.toolbar = a
	for _, s := range m.observers() {
		s.ToolbarAnchorChanged(a)
	}
}

func (m *Machine) emitSelection(r geom.Rect) {
	for _, s := range m.observers() {
		s.SelectionChanged(r)
	}
}

// observers snapshots the subscriber list so callbacks may unsubscribe.
func (m *Machine) observers() []Observer {
	out := make([]Observer, len(m.subs))
	for i, s := range m.subs {
		out[i] = s.observer
	}
	return out
}
