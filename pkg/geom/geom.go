package geom

import (
	"fmt"
	"math"
)

// Point is a position on the surface.
type Point struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Size is a width/height pair. It is used for surface bounds, where the zero
// value means the bounds have not been supplied yet.
type Size struct {
	Width, Height float64
}

// IsZero reports whether neither dimension has been set.
func (s Size) IsZero() bool { return s.Width <= 0 && s.Height <= 0 }

func (s Size) String() string { return fmt.Sprintf("%gx%g", s.Width, s.Height) }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NoSelection is the sentinel rectangle used when nothing is selected.
var NoSelection = Rect{X: -1, Y: -1, Width: 0, Height: 0}

// IsNoSelection reports whether r is the [NoSelection] sentinel.
func (r Rect) IsNoSelection() bool { return r == NoSelection }

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Within reports whether r lies entirely inside [0,b.Width]x[0,b.Height].
func (r Rect) Within(b Size) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= b.Width && r.Bottom() <= b.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g %gx%g}", r.X, r.Y, r.Width, r.Height)
}

// RectFromEdges builds a rectangle from its four edge coordinates.
// The result is not normalized; a right edge left of the left edge yields a
// negative width.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// RectFromPoints returns the rectangle spanned by two arbitrary corners.
// The result always has non-negative width and height.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}
}

// Edges is a set of rectangle sides.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom

	EdgesNone Edges = 0
	EdgesAll        = EdgeLeft | EdgeTop | EdgeRight | EdgeBottom
)

// Has reports whether every edge in o is part of e.
func (e Edges) Has(o Edges) bool { return o != 0 && e&o == o }

// Complement returns the edges not in e.
func (e Edges) Complement() Edges { return EdgesAll &^ e }

func (e Edges) String() string {
	if e == EdgesNone {
		return "none"
	}
	names := []struct {
		edge Edges
		name string
	}{{EdgeTop, "top"}, {EdgeBottom, "bottom"}, {EdgeLeft, "left"}, {EdgeRight, "right"}}
	var s string
	for _, n := range names {
		if e&n.edge == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}

// ClampMinSize enforces a minimum width and height on r.
//
// A dimension below its floor is grown away from the anchored edge: with the
// right edge anchored the left edge moves left, otherwise the right edge moves
// right. The vertical axis works the same way with the bottom edge. Dimensions
// already at or above the floor are left untouched.
func ClampMinSize(r Rect, minW, minH float64, anchor Edges) Rect {
	if r.Width < minW {
		if anchor&EdgeRight != 0 && anchor&EdgeLeft == 0 {
			r.X = r.Right() - minW
		}
		r.Width = minW
	}
	if r.Height < minH {
		if anchor&EdgeBottom != 0 && anchor&EdgeTop == 0 {
			r.Y = r.Bottom() - minH
		}
		r.Height = minH
	}
	return r
}

// ClampToBounds translates r so it lies inside [0,b.Width]x[0,b.Height].
// The size is never changed. On an axis where r is larger than the bounds it
// is pinned to 0.
func ClampToBounds(r Rect, b Size) Rect {
	r.X = clampAxis(r.X, r.Width, b.Width)
	r.Y = clampAxis(r.Y, r.Height, b.Height)
	return r
}

func clampAxis(pos, length, limit float64) float64 {
	if pos+length > limit {
		pos = limit - length
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}
