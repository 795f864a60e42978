package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cropframe/pkg/selection"
)

// Options configures state diagram generation.
type Options struct {
	// Highlight lists states drawn with a filled background.
	Highlight []selection.State
	// Direction is the Graphviz rankdir. Defaults to "LR".
	Direction string
}

// ToDOT converts a transition table to Graphviz DOT format.
// Every state in [selection.States] appears as a node, even without edges.
// Idle is drawn as the start state with a double outline.
func ToDOT(transitions []selection.Transition, opts Options) string {
	dir := opts.Direction
	if dir == "" {
		dir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph states {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", dir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, s := range selection.States {
		fmt.Fprintf(&buf, "  %q [%s];\n", s.String(), fmtAttrs(s, opts))
	}

	buf.WriteString("\n")
	for _, t := range transitions {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", t.From.String(), t.To.String(), t.Event)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(s selection.State, opts Options) string {
	attrs := fmt.Sprintf("label=%q", s.String())
	if s == selection.Idle {
		attrs += ", peripheries=2"
	}
	if slices.Contains(opts.Highlight, s) {
		attrs += ", fillcolor=\"#ffd866\""
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from the
// origin with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
