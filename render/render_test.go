// File: render_test.go
// Title: Result Projection Tests
// Description: Unit tests for the projection of results into tables,
//              lines, wrapped strings and the empty marker.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package render

import (
	"strings"
	"testing"
)

func TestRenderNone(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"Nil", nil},
		{"Empty string", ""},
		{"Blank string", "   "},
		{"Empty slice", []string{}},
		{"Empty map", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.value, 80); got != None {
				t.Errorf("Render(%v) = %q, want %q", tt.value, got, None)
			}
		})
	}
}

func TestRenderString(t *testing.T) {
	got := Render("hello world", 80)
	if got != "hello world" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderStringWraps(t *testing.T) {
	long := strings.Repeat("word ", 20)
	got := Render(long, 20)

	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("long string did not wrap: %q", got)
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line exceeds width: %q", line)
		}
		if strings.HasSuffix(line, " ") {
			t.Errorf("line has trailing padding: %q", line)
		}
	}
}

func TestRenderSliceAsLines(t *testing.T) {
	got := Render([]string{"alpha", "beta", "gamma"}, 80)
	want := "alpha\nbeta\ngamma"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderMixedSliceAsLines(t *testing.T) {
	got := Render([]any{"alpha", 2.0, true}, 80)
	want := "alpha\n2\ntrue"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderTable(t *testing.T) {
	rows := [][]string{
		{"id", "text"},
		{"1", "buy milk"},
		{"2", "call bob"},
	}
	got := Render(rows, 80)

	for _, cell := range []string{"id", "text", "buy milk", "call bob"} {
		if !strings.Contains(got, cell) {
			t.Errorf("table output missing %q:\n%s", cell, got)
		}
	}
	// A bordered table spans several lines.
	if strings.Count(got, "\n") < 4 {
		t.Errorf("table output too flat:\n%s", got)
	}
}

func TestRenderTableOfAny(t *testing.T) {
	rows := []any{
		[]any{"name", "count"},
		[]any{"notes", 3.0},
	}
	got := Render(rows, 80)
	if !strings.Contains(got, "name") || !strings.Contains(got, "3") {
		t.Errorf("table output wrong:\n%s", got)
	}
}

func TestRenderMapSortedLines(t *testing.T) {
	got := Render(map[string]any{"z": 1, "a": 2}, 80)
	want := "a: 2\nz: 1"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderNumber(t *testing.T) {
	if got := Render(3.5, 80); got != "3.5" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderDefaultWidth(t *testing.T) {
	// Width zero falls back to the default instead of collapsing output.
	got := Render("hello", 0)
	if got != "hello" {
		t.Errorf("Render = %q", got)
	}
}
