package errors

import (
	"strings"
	"unicode"
)

// ValidateCampaignID validates a campaign identifier for safety. Campaign IDs
// become output directory names, so validation is intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateCampaignID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidBrief, "campaign_id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidBrief, "campaign_id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBrief, "campaign_id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidBrief, "campaign_id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateAssetPath validates a product asset path from a brief. Asset paths
// are resolved relative to the input assets directory and must not escape it.
//
// Validation rules:
//   - Path cannot be empty when present
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths or parent-directory traversal
func ValidateAssetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "asset path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "asset path too long (max 500 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "asset path contains invalid control characters")
		}
	}

	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return New(ErrCodeInvalidPath, "asset path must be relative to the assets directory")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "asset path cannot contain parent-directory references")
	}

	return nil
}
