// Package selection implements the geometry engine and interaction state
// machine behind a rectangular region picker.
//
// A host UI feeds normalized pointer and key events into a [Machine] and
// draws whatever the machine reports through its [Observer]s. The package
// never renders anything and never touches input devices.
//
// # Interaction
//
// A press on empty surface starts drawing; releasing commits the rectangle
// unless it is smaller than [MinSize] on either axis, in which case it is
// silently dropped. A committed selection can be moved by dragging its body
// or resized by dragging one of its eight [Handle]s. Accept, Cancel and Retry
// end the episode and return the machine to Idle with [geom.NoSelection].
//
//	m := selection.New(selection.WithBounds(geom.Size{Width: 800, Height: 600}))
//	m.Subscribe(selection.ObserverFuncs{
//	    OnAccepted: func(r geom.Rect) { fmt.Println("picked", r) },
//	})
//	m.OnPointerDown(geom.Point{X: 10, Y: 10}, selection.OnSurface)
//	m.OnPointerMove(geom.Point{X: 100, Y: 80})
//	m.OnPointerUp(geom.Point{X: 100, Y: 80})
//	m.OnKey(selection.KeyEnter)
//
// # Engines
//
// The engines are plain functions and can be used without a machine:
//   - [Resize] drags a handle under minimum-size and boundary constraints
//   - [Move] translates a selection and keeps it on the surface
//   - [PlaceToolbar] picks where the confirmation toolbar goes
//
// # Concurrency
//
// A Machine must be driven from one goroutine. Pointer moves have to arrive
// in delivery order since moves and resizes apply the delta between
// consecutive positions.
package selection
