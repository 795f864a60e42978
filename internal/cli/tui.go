package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/matzehuels/cropframe/pkg/config"
	"github.com/matzehuels/cropframe/pkg/geom"
	pkgio "github.com/matzehuels/cropframe/pkg/io"
	"github.com/matzehuels/cropframe/pkg/selection"
)

// =============================================================================
// SelectModel - Interactive region selection
// =============================================================================

type keyAction int

const (
	actionAccept keyAction = iota + 1
	actionCancel
	actionRetry
)

// surfaceStyles holds one style per cell kind.
type surfaceStyles map[cellKind]lipgloss.Style

func newSurfaceStyles(t config.Theme) surfaceStyles {
	return surfaceStyles{
		cellOutside: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		cellInside:  lipgloss.NewStyle(),
		cellBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border)),
		cellHandle:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Handle)),
		cellToolbar: lipgloss.NewStyle().Background(lipgloss.Color(t.Toolbar)),
		cellButton:  lipgloss.NewStyle().Background(lipgloss.Color(t.Toolbar)).Foreground(colorWhite).Bold(true),
	}
}

// SelectModel is the bubbletea model hosting a selection machine on the
// terminal. The last row is reserved for the status line.
type SelectModel struct {
	machine    *selection.Machine
	surface    surface
	handleSize geom.Size
	keys       map[string]keyAction
	styles     surfaceStyles

	episode  uuid.UUID
	Accepted *pkgio.Region
	Canceled bool
}

// NewSelectModel creates a select model configured by cfg.
func NewSelectModel(cfg config.Config) *SelectModel {
	m := &SelectModel{
		surface:    surface{cellW: cfg.CellWidth, cellH: cfg.CellHeight},
		handleSize: geom.Size{Width: cfg.HandleSize, Height: cfg.HandleSize},
		keys:       make(map[string]keyAction),
		styles:     newSurfaceStyles(cfg.Theme),
	}
	for action, names := range map[keyAction][]string{
		actionAccept: cfg.Keys.Accept,
		actionCancel: cfg.Keys.Cancel,
		actionRetry:  cfg.Keys.Retry,
	} {
		for _, n := range names {
			m.keys[n] = action
		}
	}
	m.keys["ctrl+c"] = actionCancel

	m.machine = selection.New(selection.WithObserver(selection.ObserverFuncs{
		OnStateChanged: func(_, to selection.State) {
			if to == selection.Selected {
				m.episode = m.machine.Episode()
			}
		},
		OnAccepted: func(r geom.Rect) {
			m.Accepted = &pkgio.Region{Rect: r, Bounds: m.machine.Bounds(), Episode: m.episode.String()}
		},
		OnCanceled: func() { m.Canceled = true },
	}))
	return m
}

func (m *SelectModel) done() bool { return m.Accepted != nil || m.Canceled }

func (m *SelectModel) Init() tea.Cmd {
	return nil
}

func (m *SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.cols = msg.Width
		m.surface.rows = max(msg.Height-1, 0)
		m.machine.SetSurfaceBounds(m.surface.bounds())
	case tea.KeyMsg:
		m.handleKey(msg.String())
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	if m.done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *SelectModel) handleKey(name string) {
	switch m.keys[name] {
	case actionAccept:
		m.machine.Accept()
	case actionCancel:
		m.machine.Cancel()
	case actionRetry:
		m.machine.Retry()
	default:
		m.machine.OnKey(selection.ParseKey(name))
	}
}

// handleMouse forwards mouse events to the machine. Presses on the status
// row are ignored; motion and releases there count as the last surface row
// so a drag ending on it still finishes.
func (m *SelectModel) handleMouse(msg tea.MouseMsg) {
	if m.surface.rows == 0 {
		return
	}
	row := msg.Y
	if row >= m.surface.rows {
		if msg.Action == tea.MouseActionPress {
			return
		}
		row = m.surface.rows - 1
	}
	p := m.surface.point(msg.X, row)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.machine.State() == selection.Selected && m.pressToolbar(msg.X, msg.Y) {
				return
			}
			m.machine.OnPointerDown(p, selection.HitTest(m.machine.Selection(), p, m.handleSize))
		case tea.MouseButtonRight:
			m.machine.OnSecondary()
		}
	case tea.MouseActionMotion:
		m.machine.OnPointerMove(p)
	case tea.MouseActionRelease:
		m.machine.OnPointerUp(p)
	}
}

// pressToolbar runs the toolbar button under the cell, if any.
func (m *SelectModel) pressToolbar(col, row int) bool {
	center := m.surface.point(col, row)
	center.X += m.surface.cellW / 2
	center.Y += m.surface.cellH / 2

	b, ok := selection.ToolbarButtonAt(m.machine.Toolbar(), center)
	if !ok {
		return false
	}
	switch b {
	case selection.ButtonAccept:
		m.machine.Accept()
	case selection.ButtonRetry:
		m.machine.Retry()
	case selection.ButtonCancel:
		m.machine.Cancel()
	}
	return true
}

func (m *SelectModel) View() string {
	if m.done() {
		return ""
	}

	grid := m.surface.layout(frame{
		rect:    m.machine.Selection(),
		state:   m.machine.State(),
		toolbar: m.machine.Toolbar(),
	})

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(m.renderRow(row))
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// renderRow styles runs of equal cell kinds in one call each.
func (m *SelectModel) renderRow(row []cell) string {
	var b, run strings.Builder
	for i, c := range row {
		run.WriteRune(c.r)
		if i == len(row)-1 || row[i+1].kind != c.kind {
			b.WriteString(m.styles[c.kind].Render(run.String()))
			run.Reset()
		}
	}
	return b.String()
}

func (m *SelectModel) statusLine() string {
	state := m.machine.State()
	parts := []string{StyleTitle.Render(state.String())}
	if r := m.machine.Selection(); !r.IsNoSelection() {
		parts = append(parts, StyleValue.Render(r.Geometry()))
	}
	help := "drag to select"
	if state == selection.Selected {
		help = fmt.Sprintf("drag to move or resize · %s accept · %s cancel · %s retry",
			keyHint(m.keys, actionAccept), keyHint(m.keys, actionCancel), keyHint(m.keys, actionRetry))
	}
	parts = append(parts, StyleDim.Render(help))
	return strings.Join(parts, StyleDim.Render("  "))
}

// keyHint returns the shortest key bound to action, for the help line.
func keyHint(keys map[string]keyAction, action keyAction) string {
	best := ""
	for name, a := range keys {
		if a != action || name == "ctrl+c" {
			continue
		}
		if best == "" || len(name) < len(best) || (len(name) == len(best) && name < best) {
			best = name
		}
	}
	return best
}
