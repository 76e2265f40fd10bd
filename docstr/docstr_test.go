// File: docstr_test.go
// Title: Doc String Parser Tests
// Description: Unit tests for the operation doc string parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package docstr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHeadOnly(t *testing.T) {
	d := Parse("Greet a person by name.")
	if d.Head != "Greet a person by name." {
		t.Errorf("Head = %q", d.Head)
	}
	if len(d.Params) != 0 {
		t.Errorf("Params = %v", d.Params)
	}
}

func TestParseHeadAndParams(t *testing.T) {
	doc := `Greet a person by name.

name: who to greet
style: greeting style,
    one of formal or casual`

	d := Parse(doc)

	if d.Head != "Greet a person by name." {
		t.Errorf("Head = %q", d.Head)
	}

	want := []ParamDoc{
		{Name: "name", Text: "who to greet"},
		{Name: "style", Text: "greeting style, one of formal or casual"},
	}
	if diff := cmp.Diff(want, d.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParamLookup(t *testing.T) {
	d := Parse("Head.\nname: who to greet")

	text, ok := d.Param("name")
	if !ok || text != "who to greet" {
		t.Errorf("Param(name) = %q, %v", text, ok)
	}
	if _, ok := d.Param("missing"); ok {
		t.Error("Param(missing) should not resolve")
	}
}

func TestParseIgnoresNonIdentifierColons(t *testing.T) {
	// A colon inside prose must not open a parameter.
	d := Parse("See also: the manual.\nUsage notes follow.")
	if len(d.Params) != 0 {
		t.Errorf("Params = %v, want none", d.Params)
	}
	if d.Head == "" {
		t.Error("head lost")
	}
}

func TestParseEmpty(t *testing.T) {
	d := Parse("")
	if d.Head != "" || len(d.Params) != 0 {
		t.Errorf("Parse(\"\") = %+v", d)
	}
}

func TestParseParamWithEmptyDescription(t *testing.T) {
	d := Parse("Head.\npath: \n    where to write")
	text, ok := d.Param("path")
	if !ok || text != "where to write" {
		t.Errorf("Param(path) = %q, %v", text, ok)
	}
}
