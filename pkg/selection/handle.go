package selection

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cropframe/pkg/geom"
)

// Handle identifies one of the eight resize grips around a selection.
type Handle int

const (
	TopLeft Handle = iota
	TopRight
	BottomLeft
	BottomRight
	Top
	Bottom
	Left
	Right
)

// Handles lists every handle, corners first.
var Handles = []Handle{TopLeft, TopRight, BottomLeft, BottomRight, Top, Bottom, Left, Right}

var handleNames = map[Handle]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
	Top:         "top",
	Bottom:      "bottom",
	Left:        "left",
	Right:       "right",
}

// freeEdges is the resize table: the sides each handle drags. All other sides
// stay fixed.
var freeEdges = map[Handle]geom.Edges{
	TopLeft:     geom.EdgeTop | geom.EdgeLeft,
	TopRight:    geom.EdgeTop | geom.EdgeRight,
	BottomLeft:  geom.EdgeBottom | geom.EdgeLeft,
	BottomRight: geom.EdgeBottom | geom.EdgeRight,
	Top:         geom.EdgeTop,
	Bottom:      geom.EdgeBottom,
	Left:        geom.EdgeLeft,
	Right:       geom.EdgeRight,
}

func (h Handle) String() string {
	if s, ok := handleNames[h]; ok {
		return s
	}
	return fmt.Sprintf("Handle(%d)", int(h))
}

// Valid reports whether h is one of the eight known handles.
func (h Handle) Valid() bool {
	_, ok := freeEdges[h]
	return ok
}

// FreeEdges returns the sides moved by dragging h.
func (h Handle) FreeEdges() geom.Edges { return freeEdges[h] }

// FixedEdges returns the sides that stay put while dragging h.
func (h Handle) FixedEdges() geom.Edges { return freeEdges[h].Complement() }

// IsCorner reports whether h moves two edges at once.
func (h Handle) IsCorner() bool { return h >= TopLeft && h <= BottomRight }

// ParseHandle converts a handle name such as "top-left" or "bottomright".
func ParseHandle(s string) (Handle, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for h, name := range handleNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown handle %q", s)
}

// HandleCenter returns where the glyph for h is drawn: the matching corner or
// edge midpoint of r.
func HandleCenter(r geom.Rect, h Handle) geom.Point {
	c := r.Center()
	switch h {
	case TopLeft:
		return geom.Point{X: r.Left(), Y: r.Top()}
	case TopRight:
		return geom.Point{X: r.Right(), Y: r.Top()}
	case BottomLeft:
		return geom.Point{X: r.Left(), Y: r.Bottom()}
	case BottomRight:
		return geom.Point{X: r.Right(), Y: r.Bottom()}
	case Top:
		return geom.Point{X: c.X, Y: r.Top()}
	case Bottom:
		return geom.Point{X: c.X, Y: r.Bottom()}
	case Left:
		return geom.Point{X: r.Left(), Y: c.Y}
	case Right:
		return geom.Point{X: r.Right(), Y: c.Y}
	}
	return c
}

// HandleRect returns the hit area of h, a box of the given size centered on
// [HandleCenter].
func HandleRect(r geom.Rect, h Handle, size geom.Size) geom.Rect {
	p := HandleCenter(r, h)
	return geom.Rect{X: p.X - size.Width/2, Y: p.Y - size.Height/2, Width: size.Width, Height: size.Height}
}
