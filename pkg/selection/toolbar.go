package selection

import (
	"fmt"

	"github.com/matzehuels/cropframe/pkg/geom"
)

// Toolbar footprint and placement thresholds, in surface units.
const (
	ToolbarWidth  = 100.0
	ToolbarHeight = 40.0

	// toolbarClearance is the free space a side needs before the toolbar is
	// put there, and the size a selection must exceed to host it inside.
	toolbarClearance = 100.0

	// toolbarGap separates the toolbar from the selection below, left and
	// right of it. Above, the toolbar sits flush on the top edge.
	toolbarGap = 10.0
)

// Placement names the slot the toolbar ended up in.
type Placement int

const (
	PlacementHidden Placement = iota
	PlacementInside
	PlacementBelow
	PlacementAbove
	PlacementLeftOf
	PlacementRightOf
)

func (p Placement) String() string {
	switch p {
	case PlacementHidden:
		return "hidden"
	case PlacementInside:
		return "inside"
	case PlacementBelow:
		return "below"
	case PlacementAbove:
		return "above"
	case PlacementLeftOf:
		return "left"
	case PlacementRightOf:
		return "right"
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// ToolbarAnchor is the top-left corner of the confirmation toolbar.
type ToolbarAnchor struct {
	X, Y      float64
	Visible   bool
	Placement Placement
}

// HiddenToolbar is the anchor used while no toolbar should be shown.
var HiddenToolbar = ToolbarAnchor{Placement: PlacementHidden}

// Rect returns the toolbar footprint at this anchor.
func (a ToolbarAnchor) Rect() geom.Rect {
	return geom.Rect{X: a.X, Y: a.Y, Width: ToolbarWidth, Height: ToolbarHeight}
}

type placementRule struct {
	placement Placement
	fits      func(r geom.Rect, b geom.Size) bool
	anchor    func(r geom.Rect) geom.Point
}

// placementRules are tried in order; the first that fits wins.
var placementRules = []placementRule{
	{
		placement: PlacementInside,
		fits: func(r geom.Rect, _ geom.Size) bool {
			return r.Width > toolbarClearance && r.Height > toolbarClearance
		},
		anchor: func(r geom.Rect) geom.Point {
			c := r.Center()
			return geom.Point{X: c.X - ToolbarWidth/2, Y: c.Y - ToolbarHeight/2}
		},
	},
	{
		placement: PlacementBelow,
		fits:      func(r geom.Rect, b geom.Size) bool { return b.Height-r.Bottom() > toolbarClearance },
		anchor: func(r geom.Rect) geom.Point {
			return geom.Point{X: r.Center().X - ToolbarWidth/2, Y: r.Bottom() + toolbarGap}
		},
	},
	{
		placement: PlacementAbove,
		fits:      func(r geom.Rect, _ geom.Size) bool { return r.Top() > toolbarClearance },
		anchor: func(r geom.Rect) geom.Point {
			return geom.Point{X: r.Center().X - ToolbarWidth/2, Y: r.Top() - ToolbarHeight}
		},
	},
	{
		placement: PlacementLeftOf,
		fits:      func(r geom.Rect, _ geom.Size) bool { return r.Left() > toolbarClearance },
		anchor: func(r geom.Rect) geom.Point {
			return geom.Point{X: r.Left() - toolbarGap - ToolbarWidth, Y: r.Center().Y - ToolbarHeight/2}
		},
	},
	{
		placement: PlacementRightOf,
		fits:      func(r geom.Rect, b geom.Size) bool { return b.Width-r.Right() > toolbarClearance },
		anchor: func(r geom.Rect) geom.Point {
			return geom.Point{X: r.Right() + toolbarGap, Y: r.Center().Y - ToolbarHeight/2}
		},
	},
}

// PlaceToolbar finds where the toolbar goes for selection r on a surface of
// the given bounds. Candidates are inside, below, above, left and right, in
// that order. When none has room the anchor is not visible; that is expected
// on very small surfaces.
//
// An unset bound axis is treated as ending at the selection's far edge, so
// the below and right slots never qualify until real bounds arrive.
func PlaceToolbar(r geom.Rect, bounds geom.Size) ToolbarAnchor {
	if r.IsNoSelection() {
		return HiddenToolbar
	}
	b := bounds
	if b.Width <= 0 {
		b.Width = r.Right()
	}
	if b.Height <= 0 {
		b.Height = r.Bottom()
	}
	for _, rule := range placementRules {
		if !rule.fits(r, b) {
			continue
		}
		p := rule.anchor(r)
		return ToolbarAnchor{X: p.X, Y: p.Y, Visible: true, Placement: rule.placement}
	}
	return HiddenToolbar
}

// ToolbarButton is one of the three toolbar actions.
type ToolbarButton int

const (
	ButtonAccept ToolbarButton = iota
	ButtonRetry
	ButtonCancel
)

// ToolbarButtons lists the buttons left to right.
var ToolbarButtons = []ToolbarButton{ButtonAccept, ButtonRetry, ButtonCancel}

func (b ToolbarButton) String() string {
	switch b {
	case ButtonAccept:
		return "accept"
	case ButtonRetry:
		return "retry"
	case ButtonCancel:
		return "cancel"
	}
	return fmt.Sprintf("ToolbarButton(%d)", int(b))
}

// ButtonRect returns the footprint of button b within the toolbar at a.
// The toolbar is split into equal columns.
func (a ToolbarAnchor) ButtonRect(b ToolbarButton) geom.Rect {
	w := ToolbarWidth / float64(len(ToolbarButtons))
	return geom.Rect{X: a.X + float64(b)*w, Y: a.Y, Width: w, Height: ToolbarHeight}
}

// ToolbarButtonAt reports which button of a visible toolbar contains p.
func ToolbarButtonAt(a ToolbarAnchor, p geom.Point) (ToolbarButton, bool) {
	if !a.Visible {
		return 0, false
	}
	for _, b := range ToolbarButtons {
		if a.ButtonRect(b).Contains(p) {
			return b, true
		}
	}
	return 0, false
}
