package selection

import (
	"math"

	"github.com/matzehuels/cropframe/pkg/geom"
)

// MinSize is the smallest width and height a committed selection may have.
const MinSize = 10.0

// Resize drags handle h by (dx, dy) and returns the resulting rectangle.
//
// The handle's free edges move by the delta while the opposite edges stay
// where they are. Constraints are applied in a fixed order:
//
//  1. the raw delta moves the free edges;
//  2. an axis smaller than [MinSize] has its free edge pulled back so the
//     size is exactly MinSize, even if that partially undoes the drag;
//  3. a free edge past the surface is clamped to it and the size shrinks.
//
// Far-side clamping is skipped on an axis whose bound has not been set.
func Resize(h Handle, dx, dy float64, r geom.Rect, bounds geom.Size) geom.Rect {
	free := h.FreeEdges()
	if free == geom.EdgesNone {
		return r
	}

	left, top, right, bottom := r.Left(), r.Top(), r.Right(), r.Bottom()
	if free&geom.EdgeLeft != 0 {
		left += dx
	}
	if free&geom.EdgeRight != 0 {
		right += dx
	}
	if free&geom.EdgeTop != 0 {
		top += dy
	}
	if free&geom.EdgeBottom != 0 {
		bottom += dy
	}

	next := geom.ClampMinSize(geom.RectFromEdges(left, top, right, bottom), MinSize, MinSize, h.FixedEdges())

	left, top, right, bottom = next.Left(), next.Top(), next.Right(), next.Bottom()
	limit := clampLimits(bounds)
	if free&geom.EdgeLeft != 0 && left < 0 {
		left = 0
	}
	if free&geom.EdgeTop != 0 && top < 0 {
		top = 0
	}
	if free&geom.EdgeRight != 0 && right > limit.Width {
		right = limit.Width
	}
	if free&geom.EdgeBottom != 0 && bottom > limit.Height {
		bottom = limit.Height
	}
	return geom.RectFromEdges(left, top, right, bottom)
}

// clampLimits returns the far-side limits used by the resize and move engines.
// An unset axis has no limit.
func clampLimits(b geom.Size) geom.Size {
	limit := b
	if limit.Width <= 0 {
		limit.Width = math.Inf(1)
	}
	if limit.Height <= 0 {
		limit.Height = math.Inf(1)
	}
	return limit
}
