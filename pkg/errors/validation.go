package errors

import (
	"math"
	"strings"
	"unicode"

	"github.com/matzehuels/cropframe/pkg/geom"
)

// ValidateBounds checks that surface bounds are usable: both dimensions
// finite and positive.
func ValidateBounds(b geom.Size) error {
	if !finite(b.Width) || !finite(b.Height) {
		return New(ErrCodeInvalidInput, "bounds must be finite, got %v", b)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return New(ErrCodeInvalidInput, "bounds must be positive, got %v", b)
	}
	return nil
}

// ValidateRect checks that r is a real selection on a surface of bounds b:
// finite, non-negative size, and inside the surface.
func ValidateRect(r geom.Rect, b geom.Size) error {
	if !finite(r.X) || !finite(r.Y) || !finite(r.Width) || !finite(r.Height) {
		return New(ErrCodeInvalidInput, "rectangle must be finite, got %v", r)
	}
	if r.Width < 0 || r.Height < 0 {
		return New(ErrCodeInvalidInput, "rectangle size cannot be negative, got %v", r)
	}
	if !r.Within(b) {
		return New(ErrCodeInvalidInput, "rectangle %v does not fit in %v", r, b)
	}
	return nil
}

// ValidatePath validates an output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
