// File: env.go
// Title: Interpreter Environment and Session State
// Description: Holds the mutable state of one interpreter session: the
//              variable map, the active target and the append-only log of
//              accepted statements. The environment lives for the
//              interpreter lifetime and is mutated only between statements.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package env

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PreviousTarget is the reserved variable that receives the outgoing
// active target whenever a new one is selected.
const PreviousTarget = "previousTarget"

// SessionFileName is the file written by SaveSession under the chosen
// directory.
const SessionFileName = "session.txt"

// Environment is the session state of one interpreter.
type Environment struct {
	vars      map[string]any
	active    any
	hasActive bool
	log       []string
}

// New creates an empty environment.
func New() *Environment {
	return &Environment{
		vars: make(map[string]any),
	}
}

// Lookup resolves a variable by name.
func (e *Environment) Lookup(name string) (any, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds a variable.
func (e *Environment) Set(name string, value any) {
	e.vars[name] = value
}

// Delete removes a variable. It reports whether the variable existed.
func (e *Environment) Delete(name string) bool {
	if _, ok := e.vars[name]; !ok {
		return false
	}
	delete(e.vars, name)
	return true
}

// Has reports whether a variable is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// Names returns the bound variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound variables.
func (e *Environment) Len() int {
	return len(e.vars)
}

// Active returns the active target value, if any.
func (e *Environment) Active() (any, bool) {
	return e.active, e.hasActive
}

// SetActive selects a new active target. The outgoing target, if any, is
// saved into the reserved previousTarget variable.
func (e *Environment) SetActive(value any) {
	if e.hasActive {
		e.vars[PreviousTarget] = e.active
	}
	e.active = value
	e.hasActive = true
}

// DropActive resets the active target to the interpreter itself. It is
// idempotent.
func (e *Environment) DropActive() {
	e.active = nil
	e.hasActive = false
}

// AppendLog records an accepted statement. Append order is input order;
// the caller appends strictly after successful execution.
func (e *Environment) AppendLog(statement string) {
	e.log = append(e.log, statement)
}

// Log returns a copy of the accepted statement log.
func (e *Environment) Log() []string {
	out := make([]string, len(e.log))
	copy(out, e.log)
	return out
}

// Reset clears variables, active target and statement log.
func (e *Environment) Reset() {
	e.vars = make(map[string]any)
	e.active = nil
	e.hasActive = false
	e.log = nil
}

// SaveSession writes the statement log as plain text to
// <dir>/session.txt, one statement per line. The directory is created
// when missing.
func (e *Environment) SaveSession(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating session directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, SessionFileName)

	var b strings.Builder
	for _, stmt := range e.log {
		b.WriteString(stmt)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing session file %s: %w", path, err)
	}

	return path, nil
}
