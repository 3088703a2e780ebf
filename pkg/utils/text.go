// Package utils provides shared utilities for text and logging.
package utils

// Truncate returns s truncated to maxRunes runes, with "..." appended if
// truncated. Rune-based so Devanagari text is never cut mid code point.
// If maxRunes is 0 or negative, returns s unchanged.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
