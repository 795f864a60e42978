package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cropframe/pkg/errors"
	"github.com/matzehuels/cropframe/pkg/geom"
	"github.com/matzehuels/cropframe/pkg/observability"
)

var testRegion = Region{
	Rect:    geom.Rect{X: 10, Y: 20, Width: 300, Height: 200},
	Bounds:  geom.Size{Width: 800, Height: 600},
	Episode: "episode-1",
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"GEOMETRY", FormatGeometry, false},
		{" text ", FormatText, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{"geometry", FormatGeometry, "300x200+10+20\n"},
		{"text", FormatText, "x: 10\ny: 20\nwidth: 300\nheight: 200\nbounds: 800x600\nepisode: episode-1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, testRegion, tt.format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testRegion, Format("bmp"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("Write() error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
	if buf.Len() != 0 {
		t.Errorf("Write() wrote %d bytes on error", buf.Len())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testRegion, FormatJSON); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got != testRegion {
		t.Errorf("ReadJSON() = %+v, want %+v", got, testRegion)
	}
}

func TestJSONOmitsUnsetBounds(t *testing.T) {
	var buf bytes.Buffer
	r := Region{Rect: geom.Rect{X: 1, Y: 2, Width: 30, Height: 40}}
	if err := Write(&buf, r, FormatJSON); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.Contains(buf.String(), "bounds") || strings.Contains(buf.String(), "episode") {
		t.Errorf("Write() = %s, want no bounds or episode keys", buf.String())
	}
}

func TestReadJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"x":`},
		{"outside bounds", `{"x":700,"y":0,"width":200,"height":10,"bounds":{"width":800,"height":600}}`},
		{"bad bounds", `{"x":0,"y":0,"width":10,"height":10,"bounds":{"width":0,"height":600}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ReadJSON() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestExportAndImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.json")
	if err := Export(testRegion, FormatJSON, path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if got != testRegion {
		t.Errorf("ImportJSON() = %+v, want %+v", got, testRegion)
	}
}

func TestExportRejectsTraversal(t *testing.T) {
	err := Export(testRegion, FormatJSON, "../region.json")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Export() error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

type exportRecorder struct {
	formats []string
	sizes   []int
	errs    []error
}

func (r *exportRecorder) OnExport(format string, size int, err error) {
	r.formats = append(r.formats, format)
	r.sizes = append(r.sizes, size)
	r.errs = append(r.errs, err)
}

func TestWriteReportsToHooks(t *testing.T) {
	rec := &exportRecorder{}
	observability.SetExportHooks(rec)
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	if err := Write(&buf, testRegion, FormatGeometry); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	_ = Write(&buf, testRegion, Format("bmp"))

	if len(rec.formats) != 2 {
		t.Fatalf("OnExport called %d times, want 2", len(rec.formats))
	}
	if rec.formats[0] != "geometry" || rec.sizes[0] != len("300x200+10+20\n") || rec.errs[0] != nil {
		t.Errorf("first export = (%s, %d, %v)", rec.formats[0], rec.sizes[0], rec.errs[0])
	}
	if rec.errs[1] == nil {
		t.Error("second export should report an error")
	}
}

func TestExportCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.txt")
	if err := Export(testRegion, FormatGeometry, path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "300x200+10+20\n" {
		t.Errorf("file = %q", data)
	}
}

func TestExportFailureLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.xml")
	if err := Export(testRegion, Format("xml"), path); err == nil {
		t.Fatal("Export() should fail for an unknown format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Stat(%s) error = %v, want not exist", path, err)
	}
}
