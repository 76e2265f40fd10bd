// File: stringx_test.go
// Title: String Utility Tests
// Description: Unit tests for the stringx helper functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Empty string", "", true},
		{"Spaces only", "   ", true},
		{"Tabs and newlines", "\t\n ", true},
		{"Word", "parley", false},
		{"Word with spaces", "  x  ", false},
		{"Unicode whitespace", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"Short string unchanged", "abc", 10, "...", "abc"},
		{"Exact length unchanged", "abcde", 5, "...", "abcde"},
		{"Truncated with ellipsis", "abcdefgh", 5, "...", "ab..."},
		{"Zero max", "abc", 0, "...", ""},
		{"Unicode runes", "héllo wörld", 7, "…", "héllo …"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q",
					tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\nc")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SplitLines returned %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "x", "y"); got != "x" {
		t.Errorf("FirstNonBlank = %q, want %q", got, "x")
	}
	if got := FirstNonBlank("", "  "); got != "" {
		t.Errorf("FirstNonBlank with all blank = %q, want empty", got)
	}
}
