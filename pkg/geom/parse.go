package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSize parses a size written as "WxH", for example "800x600".
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, fmt.Errorf("size %q: want WxH", s)
	}
	vals, err := parseFloats(w, h)
	if err != nil {
		return Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	return Size{Width: vals[0], Height: vals[1]}, nil
}

// ParseRect parses a rectangle written as "X,Y,W,H".
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("rect %q: want X,Y,W,H", s)
	}
	vals, err := parseFloats(parts...)
	if err != nil {
		return Rect{}, fmt.Errorf("rect %q: %w", s, err)
	}
	return Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// Geometry formats r as an X11-style geometry string "WxH+X+Y", the form
// accepted by most screen capture tools.
func (r Rect) Geometry() string {
	return fmt.Sprintf("%gx%g+%g+%g", r.Width, r.Height, r.X, r.Y)
}

func parseFloats(fields ...string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}
