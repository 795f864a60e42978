package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cropframe/pkg/config"
	"github.com/matzehuels/cropframe/pkg/geom"
	"github.com/matzehuels/cropframe/pkg/selection"
)

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newSizedModel returns a model on an 80x30 cell surface (800x600 units).
func newSizedModel(t *testing.T) *SelectModel {
	t.Helper()
	m := NewSelectModel(config.Default())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 31})
	if got, want := m.machine.Bounds(), (geom.Size{Width: 800, Height: 600}); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
	return m
}

// drag presses at (x0, y0), moves and releases at (x1, y1).
func drag(m *SelectModel, x0, y0, x1, y1 int) tea.Cmd {
	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, x0, y0))
	m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, x1, y1))
	_, cmd := m.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, x1, y1))
	return cmd
}

func TestSelectModelDraw(t *testing.T) {
	m := newSizedModel(t)
	if cmd := drag(m, 1, 1, 21, 11); cmd != nil {
		t.Error("drawing should not quit")
	}

	if m.machine.State() != selection.Selected {
		t.Fatalf("state = %v, want selected", m.machine.State())
	}
	if got, want := m.machine.Selection(), (geom.Rect{X: 10, Y: 20, Width: 200, Height: 200}); got != want {
		t.Errorf("selection = %v, want %v", got, want)
	}
	if !strings.Contains(m.View(), "selected") {
		t.Error("status line should show the state")
	}
}

func TestSelectModelToolbarAccept(t *testing.T) {
	m := newSizedModel(t)
	drag(m, 1, 1, 21, 11)

	// Toolbar sits inside at (60,100); cell (7,5) covers the accept button.
	if a := m.machine.Toolbar(); a.Placement != selection.PlacementInside || a.X != 60 || a.Y != 100 {
		t.Fatalf("toolbar = %+v", a)
	}
	_, cmd := m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 7, 5))
	if cmd == nil {
		t.Fatal("accept should quit")
	}
	if m.Accepted == nil {
		t.Fatal("no region accepted")
	}
	want := geom.Rect{X: 10, Y: 20, Width: 200, Height: 200}
	if m.Accepted.Rect != want {
		t.Errorf("accepted = %v, want %v", m.Accepted.Rect, want)
	}
	if m.Accepted.Bounds != (geom.Size{Width: 800, Height: 600}) || m.Accepted.Episode == "" {
		t.Errorf("accepted region = %+v", *m.Accepted)
	}
	if m.View() != "" {
		t.Error("View() should be empty once done")
	}
}

func TestSelectModelKeys(t *testing.T) {
	tests := []struct {
		name         string
		key          tea.KeyMsg
		wantAccepted bool
		wantCanceled bool
		wantState    selection.State
	}{
		{"enter accepts", tea.KeyMsg{Type: tea.KeyEnter}, true, false, selection.Idle},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, false, true, selection.Idle},
		{"q cancels", runes("q"), false, true, selection.Idle},
		{"ctrl+c cancels", tea.KeyMsg{Type: tea.KeyCtrlC}, false, true, selection.Idle},
		{"r retries", runes("r"), false, false, selection.Idle},
		{"other keys are ignored", runes("x"), false, false, selection.Selected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSizedModel(t)
			drag(m, 1, 1, 21, 11)
			_, cmd := m.Update(tt.key)

			if (m.Accepted != nil) != tt.wantAccepted {
				t.Errorf("accepted = %v, want %v", m.Accepted != nil, tt.wantAccepted)
			}
			if m.Canceled != tt.wantCanceled {
				t.Errorf("canceled = %v, want %v", m.Canceled, tt.wantCanceled)
			}
			if (cmd != nil) != (tt.wantAccepted || tt.wantCanceled) {
				t.Errorf("quit = %v", cmd != nil)
			}
			if m.machine.State() != tt.wantState {
				t.Errorf("state = %v, want %v", m.machine.State(), tt.wantState)
			}
		})
	}
}

func TestSelectModelMoveAndResize(t *testing.T) {
	m := newSizedModel(t)
	drag(m, 1, 1, 21, 11)

	// Body drag by (+5, +2) cells.
	drag(m, 10, 8, 15, 10)
	if got, want := m.machine.Selection(), (geom.Rect{X: 60, Y: 60, Width: 200, Height: 200}); got != want {
		t.Fatalf("after move = %v, want %v", got, want)
	}

	// Bottom-right corner is at (260,260), cell (26,13).
	drag(m, 26, 13, 30, 15)
	if got, want := m.machine.Selection(), (geom.Rect{X: 60, Y: 60, Width: 240, Height: 240}); got != want {
		t.Errorf("after resize = %v, want %v", got, want)
	}
}

func TestSelectModelRightClickRetries(t *testing.T) {
	m := newSizedModel(t)
	drag(m, 1, 1, 21, 11)
	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonRight, 5, 5))

	if m.machine.State() != selection.Idle || m.Canceled {
		t.Errorf("state = %v, canceled = %v", m.machine.State(), m.Canceled)
	}
}

func TestSelectModelIgnoresStatusRow(t *testing.T) {
	m := newSizedModel(t)
	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 1, 30))
	if m.machine.State() != selection.Idle {
		t.Errorf("press on status row changed state to %v", m.machine.State())
	}
}

func TestSelectModelReleaseOnStatusRow(t *testing.T) {
	m := newSizedModel(t)
	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 1, 1))
	m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 21, 29))
	m.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 21, 30))

	if m.machine.State() != selection.Selected {
		t.Fatalf("state = %v, want selected", m.machine.State())
	}
	if got, want := m.machine.Selection(), (geom.Rect{X: 10, Y: 20, Width: 200, Height: 560}); got != want {
		t.Errorf("selection = %v, want %v", got, want)
	}

	// The next press starts a fresh drawing instead of being swallowed.
	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 50, 5))
	if m.machine.State() != selection.Drawing {
		t.Errorf("state after new press = %v, want drawing", m.machine.State())
	}
}

func TestSelectModelCustomKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Keys.Accept = []string{"y"}
	m := NewSelectModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 31})
	drag(m, 1, 1, 21, 11)

	m.Update(runes("y"))
	if m.Accepted == nil {
		t.Error("custom accept key not honored")
	}
}

func TestKeyHint(t *testing.T) {
	m := NewSelectModel(config.Default())
	tests := []struct {
		action keyAction
		want   string
	}{
		{actionAccept, "enter"},
		{actionCancel, "q"},
		{actionRetry, "r"},
	}
	for _, tt := range tests {
		if got := keyHint(m.keys, tt.action); got != tt.want {
			t.Errorf("keyHint(%d) = %q, want %q", tt.action, got, tt.want)
		}
	}
}
