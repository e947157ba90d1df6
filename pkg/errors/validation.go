package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateKeyboardName validates a keyboard name for safety and correctness.
// It rejects names that could be used for path traversal or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 64 characters
//
// Catalog lookups and file loading do their own existence checks separately.
func ValidateKeyboardName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "keyboard name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "keyboard name too long (max 64 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "keyboard name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "keyboard name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// layerNameRegex matches layer names as they appear in keymap documents:
// a leading letter followed by letters, digits, underscores or hyphens.
var layerNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateLayerName validates a layer name from a keymap document or URL.
func ValidateLayerName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "layer name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "layer name too long (max 64 characters)")
	}

	if !layerNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid layer name: %q", name)
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// profileNameRegex matches converter profile names: lowercase identifiers
// with optional digits, underscores or hyphens.
var profileNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateProfileName validates a converter profile name.
func ValidateProfileName(name string) error {
	if err := ValidateKeyboardName(name); err != nil {
		return err
	}

	if !profileNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid profile name: %q", name)
	}

	return nil
}
