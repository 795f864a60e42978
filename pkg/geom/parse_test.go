package geom

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"800x600", Size{Width: 800, Height: 600}, false},
		{" 1920X1080 ", Size{Width: 1920, Height: 1080}, false},
		{"200.5x150", Size{Width: 200.5, Height: 150}, false},
		{"800", Size{}, true},
		{"800xabc", Size{}, true},
		{"", Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRect(t *testing.T) {
	tests := []struct {
		in      string
		want    Rect
		wantErr bool
	}{
		{"10,20,300,200", Rect{X: 10, Y: 20, Width: 300, Height: 200}, false},
		{"10, 20, 300, 200", Rect{X: 10, Y: 20, Width: 300, Height: 200}, false},
		{"10,20,300", Rect{}, true},
		{"a,b,c,d", Rect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRect(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRect(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRect(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 300, Height: 200}
	if got, want := r.Geometry(), "300x200+10+20"; got != want {
		t.Errorf("Geometry() = %q, want %q", got, want)
	}
}
