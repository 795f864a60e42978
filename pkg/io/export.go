package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/cropframe/pkg/errors"
	"github.com/matzehuels/cropframe/pkg/geom"
	"github.com/matzehuels/cropframe/pkg/observability"
)

// Format names an output encoding for a [Region].
type Format string

const (
	FormatJSON     Format = "json"
	FormatGeometry Format = "geometry"
	FormatText     Format = "text"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatJSON, FormatGeometry, FormatText}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want json, geometry or text)", s)
}

// Region is an accepted selection together with the surface it was drawn on.
type Region struct {
	Rect    geom.Rect
	Bounds  geom.Size
	Episode string
}

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type regionJSON struct {
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	Width   float64   `json:"width"`
	Height  float64   `json:"height"`
	Bounds  *sizeJSON `json:"bounds,omitempty"`
	Episode string    `json:"episode,omitempty"`
}

// Write encodes r in format f and writes it to w.
func Write(w io.Writer, r Region, f Format) error {
	var buf bytes.Buffer
	err := encode(&buf, r, f)
	if err == nil {
		_, err = w.Write(buf.Bytes())
	}
	observability.Export().OnExport(string(f), buf.Len(), err)
	return err
}

// Export writes r to a file at path in format f. The file is removed if
// writing fails.
func Export(r Region, f Format, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(file, r, f); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func encode(w io.Writer, r Region, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatGeometry:
		_, err := fmt.Fprintln(w, r.Rect.Geometry())
		return err
	case FormatText:
		return writeText(w, r)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
	}
}

func writeJSON(w io.Writer, r Region) error {
	out := regionJSON{
		X:       r.Rect.X,
		Y:       r.Rect.Y,
		Width:   r.Rect.Width,
		Height:  r.Rect.Height,
		Episode: r.Episode,
	}
	if !r.Bounds.IsZero() {
		out.Bounds = &sizeJSON{Width: r.Bounds.Width, Height: r.Bounds.Height}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func writeText(w io.Writer, r Region) error {
	lines := []struct {
		key string
		val any
	}{
		{"x", r.Rect.X},
		{"y", r.Rect.Y},
		{"width", r.Rect.Width},
		{"height", r.Rect.Height},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %g\n", l.key, l.val); err != nil {
			return err
		}
	}
	if !r.Bounds.IsZero() {
		if _, err := fmt.Fprintf(w, "bounds: %v\n", r.Bounds); err != nil {
			return err
		}
	}
	if r.Episode != "" {
		if _, err := fmt.Fprintf(w, "episode: %s\n", r.Episode); err != nil {
			return err
		}
	}
	return nil
}

// ReadJSON decodes a region previously written in [FormatJSON].
//
// When the document carries bounds, the rectangle must lie inside them.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Region, error) {
	var data regionJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return Region{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode region")
	}

	out := Region{
		Rect:    geom.Rect{X: data.X, Y: data.Y, Width: data.Width, Height: data.Height},
		Episode: data.Episode,
	}
	if data.Bounds != nil {
		out.Bounds = geom.Size{Width: data.Bounds.Width, Height: data.Bounds.Height}
		if err := errors.ValidateBounds(out.Bounds); err != nil {
			return Region{}, err
		}
		if err := errors.ValidateRect(out.Rect, out.Bounds); err != nil {
			return Region{}, err
		}
	}
	return out, nil
}

// ImportJSON reads a region JSON file at path.
func ImportJSON(path string) (Region, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Region{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Region{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
