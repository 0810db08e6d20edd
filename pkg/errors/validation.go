package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a destination file path for safety.
// The path itself is checked, not the filesystem: whether the location is
// actually writable only surfaces at write time as an IO_FAILURE.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No null bytes or control characters
//   - Maximum length of 4096 characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateLayerName validates a user-supplied layer name.
// Names end up in HTML headings and DOT identifiers, so control characters
// are rejected; everything printable is allowed.
func ValidateLayerName(name string) error {
	const maxNameLength = 256
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidManifest, "layer name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "layer name contains control characters")
		}
	}

	return nil
}

// ValidateDimension validates a node count.
// Non-positive dimensions are rejected before any layout or geometry work.
func ValidateDimension(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidInput, "node count must be positive, got %d", n)
	}
	return nil
}

// ValidateMatrixShape validates that a matrix is square with the expected
// dimension. want < 0 skips the cross-layer dimension check and only
// enforces squareness.
func ValidateMatrixShape(matrix [][]float64, want int) error {
	n := len(matrix)
	if n == 0 {
		return New(ErrCodeInvalidInput, "matrix cannot be empty")
	}
	if want >= 0 && n != want {
		return New(ErrCodeInvalidInput, "matrix dimension %d does not match expected %d", n, want)
	}
	for i, row := range matrix {
		if len(row) != n {
			return New(ErrCodeInvalidInput, "matrix is not square: row %d has %d entries, expected %d", i, len(row), n)
		}
	}
	return nil
}

// IsPathLike reports whether s looks like a file path rather than inline data.
// Used by the CLI to distinguish "-" (stdin) from regular paths.
func IsPathLike(s string) bool {
	return s != "" && s != "-" && !strings.ContainsRune(s, '\x00')
}
