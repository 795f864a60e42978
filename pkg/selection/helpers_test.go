package selection

import "github.com/matzehuels/cropframe/pkg/geom"

// eps absorbs float rounding when edges are rebuilt from widths.
const eps = 1e-9

func withinBounds(r geom.Rect, b geom.Size) bool {
	return r.X >= -eps && r.Y >= -eps && r.Right() <= b.Width+eps && r.Bottom() <= b.Height+eps
}

func atLeastMin(r geom.Rect) bool {
	return r.Width >= MinSize-eps && r.Height >= MinSize-eps
}
