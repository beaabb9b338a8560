package utils

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MaxPathLength = 500
)

// ValidateStartPath validates a path relative to a client's upload directory
func ValidateStartPath(path string) error {
	if len(path) > MaxPathLength {
		return fmt.Errorf("path exceeds maximum length of %d characters", MaxPathLength)
	}

	if strings.IndexFunc(path, unicode.IsControl) >= 0 {
		return fmt.Errorf("path contains control characters")
	}

	if strings.Contains(path, "\\") {
		return fmt.Errorf("path must use forward slashes")
	}

	// Check each segment
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return fmt.Errorf("path cannot leave the upload directory")
		}
	}

	return nil
}

// NormalizeStartPath trims whitespace and leading slashes. The upload root
// ("/" or "") becomes "".
func NormalizeStartPath(path string) string {
	return strings.TrimLeft(strings.TrimSpace(path), "/")
}
