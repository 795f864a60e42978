package selection

import "testing"

func TestParseState(t *testing.T) {
	for _, s := range States {
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Errorf("ParseState(%q) = %v, %v, want %v", s.String(), got, err, s)
		}
	}
	if got, err := ParseState(" Selected "); err != nil || got != Selected {
		t.Errorf("ParseState(\" Selected \") = %v, %v", got, err)
	}
	if _, err := ParseState("dragging"); err == nil {
		t.Error("ParseState(\"dragging\") should fail")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"enter", KeyEnter},
		{"Return", KeyEnter},
		{"esc", KeyEscape},
		{"escape", KeyEscape},
		{"q", KeyOther},
		{"", KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseKey(tt.name); got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestStateDragging(t *testing.T) {
	want := map[State]bool{Idle: false, Drawing: true, Resizing: true, Moving: true, Selected: false}
	for s, drag := range want {
		if got := s.Dragging(); got != drag {
			t.Errorf("%v.Dragging() = %v, want %v", s, got, drag)
		}
	}
}
