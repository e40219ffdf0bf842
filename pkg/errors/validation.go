package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a user-supplied output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateDiagramFile validates that a path names a .c4d diagram file.
// It applies the same safety rules as [ValidateOutputPath].
func ValidateDiagramFile(path string) error {
	if err := ValidateOutputPath(path); err != nil {
		return err
	}
	if !strings.HasSuffix(path, ".c4d") {
		return New(ErrCodeInvalidPath, "diagram files use the .c4d extension: %q", path)
	}
	return nil
}
