// Package pkg provides the libraries behind cropframe, an interactive
// region-selection component.
//
// # Overview
//
// A user drags out a rectangle on a surface, adjusts it with eight resize
// handles or by dragging its body, and accepts, cancels or retries through a
// floating toolbar. The pkg directory is organized as:
//
//  1. [geom] - Rectangle arithmetic: normalization, min-size, bounds clamping
//  2. [selection] - The interaction state machine with its resize, move and
//     toolbar placement engines
//  3. [script] - TOML event scripts replayed against a machine
//  4. [io] - Export of accepted regions as JSON, geometry strings or text
//  5. [diagram] - The state machine rendered with Graphviz
//  6. [config], [cache], [errors], [observability], [buildinfo] - Supporting
//     infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Host input (pointer, keys, surface size)
//	         ↓
//	    [selection.Machine] (state machine + engines)
//	         ↓
//	    Observer callbacks (selection, toolbar, state, accept, cancel)
//	         ↓
//	    [io] export of the accepted region
//
// # Quick Start
//
//	m := selection.New(
//	    selection.WithBounds(geom.Size{Width: 800, Height: 600}),
//	    selection.WithObserver(selection.ObserverFuncs{
//	        OnAccepted: func(r geom.Rect) { fmt.Println(r.Geometry()) },
//	    }),
//	)
//	m.OnPointerDown(geom.Point{X: 10, Y: 10}, selection.OnSurface)
//	m.OnPointerUp(geom.Point{X: 200, Y: 150})
//	m.Accept() // prints 190x140+10+10
//
// The machine is not safe for concurrent use; drive it from the host's UI
// goroutine.
//
// [geom]: github.com/matzehuels/cropframe/pkg/geom
// [selection]: github.com/matzehuels/cropframe/pkg/selection
// [selection.Machine]: github.com/matzehuels/cropframe/pkg/selection.Machine
// [script]: github.com/matzehuels/cropframe/pkg/script
// [io]: github.com/matzehuels/cropframe/pkg/io
// [diagram]: github.com/matzehuels/cropframe/pkg/diagram
// [config]: github.com/matzehuels/cropframe/pkg/config
// [cache]: github.com/matzehuels/cropframe/pkg/cache
// [errors]: github.com/matzehuels/cropframe/pkg/errors
// [observability]: github.com/matzehuels/cropframe/pkg/observability
// [buildinfo]: github.com/matzehuels/cropframe/pkg/buildinfo
package pkg
