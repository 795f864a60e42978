// Package script replays recorded pointer and key events against a
// selection [selection.Machine].
//
// Scripts are TOML documents with an optional surface size and a list of
// events, applied in order:
//
//	name = "draw and accept"
//	bounds = "800x600"
//
//	[[event]]
//	kind = "down"
//	x = 10
//	y = 10
//
//	[[event]]
//	kind = "up"
//	x = 200
//	y = 150
//
//	[[event]]
//	kind = "key"
//	key = "enter"
//
// # Event Kinds
//
//   - down: primary press at (x, y). The target is derived from the current
//     selection with [selection.HitTest] unless target is "surface", "body"
//     or "handle" (the latter with handle = "top-left" and so on).
//   - move, up: pointer motion and release at (x, y)
//   - secondary: secondary button press
//   - key: a named key ("enter", "esc")
//   - bounds: a new surface size (width, height)
//   - accept, cancel, retry: toolbar actions
//
// Scripts serve as headless regression fixtures and as input for the
// replay command.
package script
