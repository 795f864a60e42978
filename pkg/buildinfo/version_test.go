package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	tests := []struct {
		version, commit string
		want            string
	}{
		{"v0.1.0", "3f2a9c1d8e7b", "v0.1.0 (3f2a9c1)"},
		{"dev", "none", "dev (none)"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() = %q, want %q", got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), Version) {
		t.Errorf("Template() = %q, should contain version %q", Template(), Version)
	}
	if !strings.Contains(String(), "commit: ") {
		t.Errorf("String() = %q", String())
	}
}
