package selection

import (
	"math"

	"github.com/matzehuels/cropframe/pkg/geom"
)

// selectionState owns the current rectangle and the drag start point.
// The rectangle is replaced as a whole on every change and each change is
// reported through notify.
type selectionState struct {
	rect   geom.Rect
	start  geom.Point
	notify func(geom.Rect)
}

func newSelectionState(notify func(geom.Rect)) selectionState {
	return selectionState{rect: geom.NoSelection, notify: notify}
}

func (s *selectionState) set(r geom.Rect) {
	if r == s.rect {
		return
	}
	s.rect = r
	if s.notify != nil {
		s.notify(r)
	}
}

// begin starts drawing with a zero-size rectangle at p.
func (s *selectionState) begin(p geom.Point) {
	s.start = p
	s.set(geom.Rect{X: p.X, Y: p.Y})
}

// update stretches the rectangle from the start point to p. The live
// rectangle follows the pointer even off the surface; finalize clips it.
func (s *selectionState) update(p geom.Point) {
	s.set(geom.RectFromPoints(s.start, p))
}

// finalize clips the drawn rectangle to the surface and reports whether
// what is left is large enough to keep. An unset bound axis only clips at 0.
func (s *selectionState) finalize(bounds geom.Size) bool {
	limit := clampLimits(bounds)
	left := math.Max(s.rect.Left(), 0)
	top := math.Max(s.rect.Top(), 0)
	right := math.Max(math.Min(s.rect.Right(), limit.Width), left)
	bottom := math.Max(math.Min(s.rect.Bottom(), limit.Height), top)
	s.set(geom.RectFromEdges(left, top, right, bottom))
	return s.rect.Width >= MinSize && s.rect.Height >= MinSize
}

func (s *selectionState) reset() {
	s.start = geom.Point{}
	s.set(geom.NoSelection)
}
