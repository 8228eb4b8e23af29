package errors

import (
	"strings"
	"unicode"
)

// MaxDimension is the largest accepted container edge in pixels. Anything
// larger is almost certainly a unit mix-up on the caller's side.
const MaxDimension = 100000

// ValidateDimensions validates a container's width and height. The engine
// itself tolerates degenerate sizes; this check belongs at the API and CLI
// boundaries where input is untrusted.
func ValidateDimensions(width, height float64) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidDimensions, "container dimensions cannot be negative: %gx%g", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "container dimensions too large (max %d)", MaxDimension)
	}
	return nil
}

// ValidateSpacingIndex validates a control's spacing ordinal.
func ValidateSpacingIndex(index int) error {
	if index < 0 {
		return New(ErrCodeInvalidIndex, "spacing index cannot be negative: %d", index)
	}
	const maxIndex = 1000
	if index > maxIndex {
		return New(ErrCodeInvalidIndex, "spacing index too large (max %d)", maxIndex)
	}
	return nil
}

// ValidateProfileID validates a profile identifier for storage safety.
// It rejects identifiers that could be used for path traversal when the
// file-backed store derives filenames from them.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateProfileID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidProfile, "profile id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidProfile, "profile id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProfile, "profile id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidProfile, "profile id contains invalid characters: %q", pattern)
		}
	}

	return nil
}
