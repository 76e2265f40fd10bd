// File: ast_test.go
// Title: Syntax Node and Candidate Expansion Tests
// Description: Unit tests for literal classification and the cartesian
//              expansion of parse forests into candidate lists.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWordLiteralClassification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		isNumber bool
		isBare   bool
		isIdent  bool
	}{
		{"Integer", "42", true, false, false},
		{"Negative integer", "-3", true, false, false},
		{"Float", "1.5", true, false, false},
		{"Plain word", "alice", false, true, true},
		{"Path", "/tmp/data", false, true, false},
		{"Host and port", "db:5432", false, true, false},
		{"Underscore word", "my_var", false, false, true},
		{"Leading underscore", "_x", false, false, true},
		{"Mixed case word", "Widgets", false, true, true},
		{"Digit led word", "3d", false, true, false},
		{"Dotted name", "a.b.c", false, true, false},
		{"Invalid token", "f(x)", false, false, false},
		{"Bare dash", "-", false, true, false},
		{"Dot only", ".", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := WordLiteral(tt.input)
			if lit.IsNumber != tt.isNumber {
				t.Errorf("IsNumber = %v, want %v", lit.IsNumber, tt.isNumber)
			}
			if lit.IsBare != tt.isBare {
				t.Errorf("IsBare = %v, want %v", lit.IsBare, tt.isBare)
			}
			if lit.IsIdent != tt.isIdent {
				t.Errorf("IsIdent = %v, want %v", lit.IsIdent, tt.isIdent)
			}
		})
	}
}

func TestLiteralInterpretations(t *testing.T) {
	tests := []struct {
		name  string
		lit   Literal
		want  []Value
	}{
		{
			name: "Number expands to value then text",
			lit:  WordLiteral("7"),
			want: []Value{NumberValue(7), StringValue("7")},
		},
		{
			name: "Quoted is string only",
			lit:  QuotedLiteral("hello world"),
			want: []Value{StringValue("hello world")},
		},
		{
			name: "Bare and ident expands string first",
			lit:  WordLiteral("alice"),
			want: []Value{StringValue("alice"), RefValue("alice")},
		},
		{
			name: "Ident only expands to reference",
			lit:  WordLiteral("my_var"),
			want: []Value{RefValue("my_var")},
		},
		{
			name: "Bare only expands to string",
			lit:  WordLiteral("/tmp"),
			want: []Value{StringValue("/tmp")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.lit.Interpretations()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("interpretations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOverlappingTokenYieldsMultipleInterpretations(t *testing.T) {
	for _, input := range []string{"alice", "42", "widgets"} {
		lit := WordLiteral(input)
		if got := len(lit.Interpretations()); got < 2 {
			t.Errorf("literal %q has %d interpretations, want at least 2", input, got)
		}
		if !lit.Ambiguous() {
			t.Errorf("literal %q should be ambiguous", input)
		}
	}
}

func TestExpandSingleReading(t *testing.T) {
	forest := &Forest{
		Source: "greet alice",
		Readings: []Reading{
			{
				MethodWords: []string{"greet"},
				Positional:  []Literal{WordLiteral("alice")},
			},
		},
	}

	got := Expand(forest)
	want := []Candidate{
		{Method: "greet", Positional: []Value{StringValue("alice")}},
		{Method: "greet", Positional: []Value{RefValue("alice")}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandCartesianOrder(t *testing.T) {
	// Two ambiguous literals: the first must vary slowest.
	forest := &Forest{
		Readings: []Reading{
			{
				MethodWords: []string{"move"},
				Positional: []Literal{
					WordLiteral("alice"),
					WordLiteral("3"),
				},
			},
		},
	}

	got := Expand(forest)
	want := []Candidate{
		{Method: "move", Positional: []Value{StringValue("alice"), NumberValue(3)}},
		{Method: "move", Positional: []Value{StringValue("alice"), StringValue("3")}},
		{Method: "move", Positional: []Value{RefValue("alice"), NumberValue(3)}},
		{Method: "move", Positional: []Value{RefValue("alice"), StringValue("3")}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandMultipleReadingsConcatenated(t *testing.T) {
	forest := &Forest{
		Readings: []Reading{
			{
				MethodWords: []string{"greet"},
				Positional:  []Literal{WordLiteral("/tmp")},
			},
			{
				MethodWords: []string{"greet", "/tmp"},
			},
		},
	}

	got := Expand(forest)
	want := []Candidate{
		{Method: "greet", Positional: []Value{StringValue("/tmp")}},
		{Method: "greet /tmp"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandNamedArguments(t *testing.T) {
	forest := &Forest{
		Readings: []Reading{
			{
				MethodWords: []string{"configure"},
				Named: []NamedArg{
					{Name: "depth", Literal: WordLiteral("2")},
				},
				AssignVar: "cfg",
			},
		},
	}

	got := Expand(forest)
	want := []Candidate{
		{
			Method: "configure",
			Named:  []NamedValue{{Name: "depth", Value: NumberValue(2)}},
			Assign: "cfg",
		},
		{
			Method: "configure",
			Named:  []NamedValue{{Name: "depth", Value: StringValue("2")}},
			Assign: "cfg",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandNoArguments(t *testing.T) {
	forest := &Forest{
		Readings: []Reading{
			{MethodWords: []string{"list"}},
		},
	}

	got := Expand(forest)
	if len(got) != 1 {
		t.Fatalf("expected exactly one candidate, got %d", len(got))
	}
	if got[0].Method != "list" || len(got[0].Positional) != 0 || len(got[0].Named) != 0 {
		t.Errorf("unexpected candidate: %s", got[0])
	}
}

func TestExpandDeterministic(t *testing.T) {
	forest := &Forest{
		Readings: []Reading{
			{
				MethodWords: []string{"move"},
				Positional:  []Literal{WordLiteral("alice"), WordLiteral("3")},
			},
		},
	}

	first := Expand(forest)
	second := Expand(forest)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("expansion is not deterministic (-first +second):\n%s", diff)
	}
}
