// Package geom provides the rectangle arithmetic used by the selection engine.
//
// All values are in surface-local floating-point units. The origin is the
// top-left corner of the surface, X grows to the right and Y grows downward.
//
// # Rectangles
//
// [Rect] is a value type; every operation returns a new rectangle instead of
// mutating its receiver:
//
//	r := geom.RectFromPoints(geom.Point{X: 100, Y: 80}, geom.Point{X: 10, Y: 10})
//	// r == geom.Rect{X: 10, Y: 10, Width: 90, Height: 70}
//
// [NoSelection] is the sentinel rectangle meaning "nothing selected".
//
// # Constraints
//
// [ClampMinSize] grows an undersized rectangle away from its anchored edges and
// [ClampToBounds] translates a rectangle back inside a [Size].
package geom
