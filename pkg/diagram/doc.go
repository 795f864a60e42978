// Package diagram renders the selection state machine as a Graphviz diagram.
//
// # Usage
//
// Convert the transition table to DOT, then render to SVG or PNG:
//
//	dot := diagram.ToDOT(selection.Transitions, diagram.Options{})
//	svg, err := diagram.RenderSVG(ctx, dot)
//	png, err := diagram.RenderPNG(ctx, dot)
//
// # Options
//
//   - Highlight: states drawn filled, for example the state a replay ended in
//   - Direction: Graphviz rankdir, "LR" by default
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which runs Graphviz in
// process through WebAssembly. No system Graphviz install is needed.
package diagram
