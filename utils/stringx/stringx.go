// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string operations the parley
//              interpreter needs beyond the standard library: blank checks,
//              truncation, fallbacks and line handling. Unicode-safe.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens a string to at most maxLen runes, appending the given
// ellipsis when truncation occurred. The ellipsis counts against maxLen.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	keep := maxLen - ellipsisLen
	if keep < 0 {
		keep = 0
	}

	runes := []rune(s)
	if keep > len(runes) {
		keep = len(runes)
	}
	return string(runes[:keep]) + ellipsis
}

// SplitLines splits a string into lines, handling both \n and \r\n endings.
func SplitLines(s string) []string {
	if len(s) == 0 {
		return []string{}
	}
	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

// FirstNonBlank returns the first argument that is not blank, or the empty
// string when all are blank.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}
