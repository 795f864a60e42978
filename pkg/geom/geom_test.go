package geom

import "testing"

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{"top-left to bottom-right", Point{10, 10}, Point{100, 80}, Rect{10, 10, 90, 70}},
		{"bottom-right to top-left", Point{100, 80}, Point{10, 10}, Rect{10, 10, 90, 70}},
		{"bottom-left to top-right", Point{10, 80}, Point{100, 10}, Rect{10, 10, 90, 70}},
		{"same point", Point{5, 5}, Point{5, 5}, Rect{5, 5, 0, 0}},
		{"negative coordinates", Point{-10, 4}, Point{10, -4}, Rect{-10, -4, 20, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectFromPoints(tt.a, tt.b); got != tt.want {
				t.Errorf("RectFromPoints(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	if r.Left() != 10 || r.Top() != 20 {
		t.Errorf("Left/Top = %v/%v, want 10/20", r.Left(), r.Top())
	}
	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", r.Bottom())
	}
	if c := r.Center(); c != (Point{25, 40}) {
		t.Errorf("Center() = %v, want (25,40)", c)
	}
	if got := RectFromEdges(r.Left(), r.Top(), r.Right(), r.Bottom()); got != r {
		t.Errorf("RectFromEdges() = %v, want %v", got, r)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{15, 15}, true},
		{Point{10, 10}, true},
		{Point{30, 30}, true},
		{Point{9, 15}, false},
		{Point{15, 31}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestNoSelection(t *testing.T) {
	if !NoSelection.IsNoSelection() {
		t.Error("NoSelection.IsNoSelection() = false, want true")
	}
	if (Rect{X: -1, Y: -1, Width: 1}).IsNoSelection() {
		t.Error("non-sentinel rect reported as NoSelection")
	}
	if !NoSelection.Empty() {
		t.Error("NoSelection should be empty")
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTop | EdgeLeft
	if !e.Has(EdgeTop) || !e.Has(EdgeLeft) || !e.Has(EdgeTop|EdgeLeft) {
		t.Errorf("Has() failed for %v", e)
	}
	if e.Has(EdgeRight) || e.Has(EdgesNone) {
		t.Errorf("Has() returned true for missing edge on %v", e)
	}
	if got := e.Complement(); got != EdgeRight|EdgeBottom {
		t.Errorf("Complement() = %v, want bottom|right", got)
	}
	if got := e.String(); got != "top|left" {
		t.Errorf("String() = %q, want %q", got, "top|left")
	}
	if got := EdgesNone.String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
}

func TestClampMinSize(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		anchor Edges
		want   Rect
	}{
		{
			name:   "already large enough",
			r:      Rect{10, 10, 50, 50},
			anchor: EdgeTop | EdgeLeft,
			want:   Rect{10, 10, 50, 50},
		},
		{
			name:   "grow right and down from top-left anchor",
			r:      Rect{10, 10, 4, 2},
			anchor: EdgeTop | EdgeLeft,
			want:   Rect{10, 10, 10, 10},
		},
		{
			name:   "grow left and up from bottom-right anchor",
			r:      Rect{50, 50, 4, 2},
			anchor: EdgeBottom | EdgeRight,
			want:   Rect{44, 42, 10, 10},
		},
		{
			name:   "negative width from right anchor",
			r:      Rect{60, 10, -20, 30},
			anchor: EdgeRight | EdgeTop | EdgeBottom,
			want:   Rect{30, 10, 10, 30},
		},
		{
			name:   "only one axis undersized",
			r:      Rect{0, 0, 5, 40},
			anchor: EdgeLeft,
			want:   Rect{0, 0, 10, 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampMinSize(tt.r, 10, 10, tt.anchor); got != tt.want {
				t.Errorf("ClampMinSize(%v, %v) = %v, want %v", tt.r, tt.anchor, got, tt.want)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	bounds := Size{Width: 800, Height: 600}
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"inside", Rect{10, 10, 100, 100}, Rect{10, 10, 100, 100}},
		{"past left and top", Rect{-20, -5, 100, 100}, Rect{0, 0, 100, 100}},
		{"past right and bottom", Rect{750, 550, 100, 100}, Rect{700, 500, 100, 100}},
		{"exactly filling", Rect{0, 0, 800, 600}, Rect{0, 0, 800, 600}},
		{"larger than bounds", Rect{50, 50, 900, 700}, Rect{0, 0, 900, 700}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToBounds(tt.r, bounds)
			if got != tt.want {
				t.Errorf("ClampToBounds(%v) = %v, want %v", tt.r, got, tt.want)
			}
			if got.Width != tt.r.Width || got.Height != tt.r.Height {
				t.Errorf("ClampToBounds changed size: %v -> %v", tt.r, got)
			}
		})
	}
}

func TestSizeIsZero(t *testing.T) {
	if !(Size{}).IsZero() {
		t.Error("Size{}.IsZero() = false, want true")
	}
	if (Size{Width: 10, Height: 10}).IsZero() {
		t.Error("Size{10,10}.IsZero() = true, want false")
	}
}
