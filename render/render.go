// File: render.go
// Title: Result Projection
// Description: Renders operation results for display: tabular data as a
//              bordered table with a header row, other collections one
//              element per line, strings word-wrapped to the configured
//              width, and empty results as a fixed marker.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package render

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/msto63/parley/utils/stringx"
)

// None is shown for nil and empty results.
const None = "<none>"

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 80

// Render projects a result value into display text.
func Render(v any, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	if v == nil {
		return None
	}

	if s, ok := v.(string); ok {
		if stringx.IsBlank(s) {
			return None
		}
		return wrap(s, width)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return renderSlice(rv, width)
	case reflect.Map:
		return renderMap(rv)
	}

	text := fmt.Sprint(v)
	if stringx.IsBlank(text) {
		return None
	}
	return wrap(text, width)
}

// renderSlice renders a slice: slice-of-slices becomes a table with the
// first row as the header, anything else one element per line.
func renderSlice(rv reflect.Value, width int) string {
	if rv.Len() == 0 {
		return None
	}

	if isTabular(rv) {
		return renderTable(rv)
	}

	lines := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		lines[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return strings.Join(lines, "\n")
}

// isTabular reports whether every element of the slice is itself a slice
// or array (and not a string or byte slice).
func isTabular(rv reflect.Value) bool {
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		for elem.Kind() == reflect.Interface {
			if elem.IsNil() {
				return false
			}
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Slice && elem.Kind() != reflect.Array {
			return false
		}
		if elem.Type().Elem().Kind() == reflect.Uint8 {
			return false
		}
	}
	return true
}

// renderTable renders a slice of rows as a bordered table, first row as
// the header.
func renderTable(rv reflect.Value) string {
	rows := make([][]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		for elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		row := make([]string, elem.Len())
		for j := 0; j < elem.Len(); j++ {
			row[j] = fmt.Sprint(elem.Index(j).Interface())
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(rows[0]...)
	if len(rows) > 1 {
		t = t.Rows(rows[1:]...)
	}

	return t.String()
}

// renderMap renders a map as sorted "key: value" lines.
func renderMap(rv reflect.Value) string {
	if rv.Len() == 0 {
		return None
	}

	lines := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		lines = append(lines, fmt.Sprintf("%v: %v", iter.Key().Interface(), iter.Value().Interface()))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// wrap word-wraps text to the given width. Trailing padding lipgloss adds
// per line is stripped.
func wrap(s string, width int) string {
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	lines := stringx.SplitLines(wrapped)
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
