package script

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/cropframe/pkg/errors"
	"github.com/matzehuels/cropframe/pkg/geom"
	"github.com/matzehuels/cropframe/pkg/selection"
)

// DefaultHandleSize is the handle hit size used when a script sets none.
const DefaultHandleSize = 10.0

// Kind identifies an event type.
type Kind string

const (
	KindDown      Kind = "down"
	KindMove      Kind = "move"
	KindUp        Kind = "up"
	KindSecondary Kind = "secondary"
	KindKey       Kind = "key"
	KindBounds    Kind = "bounds"
	KindAccept    Kind = "accept"
	KindCancel    Kind = "cancel"
	KindRetry     Kind = "retry"
)

var knownKinds = map[Kind]bool{
	KindDown: true, KindMove: true, KindUp: true, KindSecondary: true, KindKey: true,
	KindBounds: true, KindAccept: true, KindCancel: true, KindRetry: true,
}

// Script is a named sequence of events.
type Script struct {
	Name       string  `toml:"name"`
	Bounds     string  `toml:"bounds"`
	HandleSize float64 `toml:"handle_size"`
	Events     []Event `toml:"event"`
}

// Event is one input step.
type Event struct {
	Kind   Kind    `toml:"kind"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Target string  `toml:"target"`
	Handle string  `toml:"handle"`
	Key    string  `toml:"key"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Point returns the event position.
func (e Event) Point() geom.Point { return geom.Point{X: e.X, Y: e.Y} }

// Parse decodes and validates a TOML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "parse script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown key %s", undecoded[0])
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks every event for a known kind and complete fields.
func (s *Script) Validate() error {
	if s.Bounds != "" {
		b, err := geom.ParseSize(s.Bounds)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "bounds")
		}
		if err := errors.ValidateBounds(b); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "bounds")
		}
	}
	if s.HandleSize < 0 {
		return errors.New(errors.ErrCodeInvalidScript, "handle_size cannot be negative")
	}
	for i, e := range s.Events {
		if err := e.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "event %d", i+1)
		}
	}
	return nil
}

func (e Event) validate() error {
	if !knownKinds[e.Kind] {
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	switch e.Kind {
	case KindDown:
		switch strings.ToLower(e.Target) {
		case "", "auto", "surface", "body":
		case "handle":
			if _, err := selection.ParseHandle(e.Handle); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown target %q", e.Target)
		}
	case KindKey:
		if e.Key == "" {
			return fmt.Errorf("key event without key")
		}
	case KindBounds:
		if err := errors.ValidateBounds(geom.Size{Width: e.Width, Height: e.Height}); err != nil {
			return err
		}
	}
	return nil
}

// SurfaceBounds returns the script's initial surface size, or the zero
// size when the script sets none.
func (s *Script) SurfaceBounds() geom.Size {
	b, _ := geom.ParseSize(s.Bounds)
	return b
}

func (s *Script) handleSize() geom.Size {
	hs := s.HandleSize
	if hs == 0 {
		hs = DefaultHandleSize
	}
	return geom.Size{Width: hs, Height: hs}
}

// Apply feeds the script's events into m in order. It stops early when ctx
// is canceled.
func (s *Script) Apply(ctx context.Context, m *selection.Machine) error {
	if b := s.SurfaceBounds(); !b.IsZero() {
		m.SetSurfaceBounds(b)
	}
	hs := s.handleSize()
	for i, e := range s.Events {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("event %d: %w", i+1, err)
		}
		apply(m, e, hs)
	}
	return nil
}

func apply(m *selection.Machine, e Event, handleSize geom.Size) {
	switch e.Kind {
	case KindDown:
		m.OnPointerDown(e.Point(), target(m, e, handleSize))
	case KindMove:
		m.OnPointerMove(e.Point())
	case KindUp:
		m.OnPointerUp(e.Point())
	case KindSecondary:
		m.OnSecondary()
	case KindKey:
		m.OnKey(selection.ParseKey(e.Key))
	case KindBounds:
		m.SetSurfaceBounds(geom.Size{Width: e.Width, Height: e.Height})
	case KindAccept:
		m.Accept()
	case KindCancel:
		m.Cancel()
	case KindRetry:
		m.Retry()
	}
}

func target(m *selection.Machine, e Event, handleSize geom.Size) selection.HitTarget {
	switch strings.ToLower(e.Target) {
	case "surface":
		return selection.OnSurface
	case "body":
		return selection.OnBody
	case "handle":
		h, _ := selection.ParseHandle(e.Handle)
		return selection.OnHandle(h)
	}
	return selection.HitTest(m.Selection(), e.Point(), handleSize)
}

// Result summarizes a replay.
type Result struct {
	State     selection.State
	Selection geom.Rect
	Toolbar   selection.ToolbarAnchor
	Bounds    geom.Size
	// Accepted holds every accepted rectangle in order, with the episode
	// each one belonged to.
	Accepted []Acceptance
	Canceled int
}

// Acceptance is one accepted selection.
type Acceptance struct {
	Rect    geom.Rect
	Episode uuid.UUID
}

// Run replays s on a fresh machine built with opts and reports the outcome.
func Run(ctx context.Context, s *Script, opts ...selection.Option) (Result, error) {
	var (
		res     Result
		episode uuid.UUID
		m       *selection.Machine
	)
	obs := selection.ObserverFuncs{
		OnStateChanged: func(_, to selection.State) {
			if to == selection.Selected {
				episode = m.Episode()
			}
		},
		OnAccepted: func(r geom.Rect) {
			res.Accepted = append(res.Accepted, Acceptance{Rect: r, Episode: episode})
		},
		OnCanceled: func() { res.Canceled++ },
	}
	m = selection.New(append(opts, selection.WithObserver(obs))...)

	if err := s.Apply(ctx, m); err != nil {
		return res, err
	}
	res.State = m.State()
	res.Selection = m.Selection()
	res.Toolbar = m.Toolbar()
	res.Bounds = m.Bounds()
	return res, nil
}
