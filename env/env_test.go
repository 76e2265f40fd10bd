// File: env_test.go
// Title: Environment Tests
// Description: Unit tests for variable bindings, active target handling
//              and the session log.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVariableBindings(t *testing.T) {
	e := New()

	if e.Has("x") {
		t.Error("fresh environment should not have x")
	}

	e.Set("x", 42.0)
	v, ok := e.Lookup("x")
	if !ok || v != 42.0 {
		t.Errorf("Lookup(x) = %v, %v", v, ok)
	}

	if !e.Delete("x") {
		t.Error("Delete(x) should report true")
	}
	if e.Delete("x") {
		t.Error("second Delete(x) should report false")
	}
}

func TestNamesSorted(t *testing.T) {
	e := New()
	e.Set("zeta", 1)
	e.Set("alpha", 2)
	e.Set("mid", 3)

	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, e.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestActiveTargetTransitions(t *testing.T) {
	e := New()

	if _, ok := e.Active(); ok {
		t.Error("fresh environment should have no active target")
	}

	e.SetActive("first")
	if v, ok := e.Active(); !ok || v != "first" {
		t.Errorf("Active = %v, %v", v, ok)
	}
	if e.Has(PreviousTarget) {
		t.Error("first SetActive must not create previousTarget")
	}

	e.SetActive("second")
	prev, ok := e.Lookup(PreviousTarget)
	if !ok || prev != "first" {
		t.Errorf("previousTarget = %v, %v", prev, ok)
	}
}

func TestDropActiveIdempotent(t *testing.T) {
	e := New()
	e.SetActive("obj")

	e.DropActive()
	if _, ok := e.Active(); ok {
		t.Error("DropActive should clear the target")
	}

	// A second drop changes nothing.
	e.DropActive()
	if _, ok := e.Active(); ok {
		t.Error("DropActive must stay cleared")
	}
}

func TestLogOrder(t *testing.T) {
	e := New()
	e.AppendLog("create widgets as w")
	e.AppendLog("use w")
	e.AppendLog("greet alice")

	want := []string{"create widgets as w", "use w", "greet alice"}
	if diff := cmp.Diff(want, e.Log()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}

	// Log returns a copy.
	got := e.Log()
	got[0] = "mutated"
	if e.Log()[0] != "create widgets as w" {
		t.Error("Log leaked internal state")
	}
}

func TestReset(t *testing.T) {
	e := New()
	e.Set("x", 1)
	e.SetActive("obj")
	e.AppendLog("stmt")

	e.Reset()

	if e.Len() != 0 {
		t.Errorf("vars remain after Reset: %v", e.Names())
	}
	if _, ok := e.Active(); ok {
		t.Error("active target remains after Reset")
	}
	if len(e.Log()) != 0 {
		t.Error("log remains after Reset")
	}
}

func TestSaveSession(t *testing.T) {
	e := New()
	e.AppendLog("create widgets as w")
	e.AppendLog("greet alice")

	dir := filepath.Join(t.TempDir(), "nested")
	path, err := e.SaveSession(dir)
	if err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	if filepath.Base(path) != SessionFileName {
		t.Errorf("session file = %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading session file: %v", err)
	}
	want := "create widgets as w\ngreet alice\n"
	if string(content) != want {
		t.Errorf("session content = %q, want %q", content, want)
	}
}
