package selection

import "github.com/matzehuels/cropframe/pkg/geom"

// Move translates r by (dx, dy) and keeps it inside the surface, so that
// X stays in [0, W-width] and Y in [0, H-height]. The size never changes.
//
// Callers pass the delta between two consecutive pointer positions, not the
// offset from where the drag started.
func Move(dx, dy float64, r geom.Rect, bounds geom.Size) geom.Rect {
	return geom.ClampToBounds(r.Translate(dx, dy), clampLimits(bounds))
}
