// File: parley.go
// Title: Interpreter Engine
// Description: Implements the parley interpreter: the statement pipeline
//              from parsing through candidate expansion, binding,
//              execution, assignment and result projection, together with
//              the session environment it owns.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package parley

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/parley/ast"
	"github.com/msto63/parley/binder"
	"github.com/msto63/parley/core/log"
	"github.com/msto63/parley/env"
	"github.com/msto63/parley/parser"
	"github.com/msto63/parley/render"
)

const (
	// DefaultMaxStatementLength limits the accepted statement size.
	DefaultMaxStatementLength = 1024

	// DefaultRenderWidth is the wrap width for rendered results.
	DefaultRenderWidth = 80
)

// ErrSessionEnd is returned by Eval when the exit operation ran. The
// front end stops feeding statements when it sees this sentinel.
var ErrSessionEnd = errors.New("session ended")

// Factory creates a pluggable application instance for the create
// operation. The interpreter is passed so applications can reach its
// configuration or logger.
type Factory func(*Interpreter) (binder.Capability, error)

// Options configures a new interpreter.
type Options struct {
	// Logger receives structured evaluation logs. Defaults to the
	// package default logger.
	Logger *log.Logger

	// Apps maps registered application names to their factories.
	Apps map[string]Factory

	// MaxStatementLength limits accepted statement size; zero selects
	// the default.
	MaxStatementLength int

	// RenderWidth is the wrap width for projected results; zero selects
	// the default.
	RenderWidth int
}

// Interpreter evaluates parley statements against a session environment.
// It is single-threaded: one statement is fully processed before the
// next is accepted.
type Interpreter struct {
	logger    *log.Logger
	environ   *env.Environment
	binder    *binder.Binder
	self      *binder.OperationTable
	factories map[string]Factory
	maxLen    int
	width     int
}

// New creates an interpreter.
func New(opts Options) (*Interpreter, error) {
	in := &Interpreter{
		logger:    opts.Logger,
		environ:   env.New(),
		factories: opts.Apps,
		maxLen:    opts.MaxStatementLength,
		width:     opts.RenderWidth,
	}

	if in.logger == nil {
		in.logger = log.GetDefault()
	}
	in.logger = in.logger.WithName("parley")

	if in.factories == nil {
		in.factories = make(map[string]Factory)
	}
	if in.maxLen <= 0 {
		in.maxLen = DefaultMaxStatementLength
	}
	if in.width <= 0 {
		in.width = DefaultRenderWidth
	}

	table, err := in.builtinTable()
	if err != nil {
		return nil, fmt.Errorf("building built-in operations: %w", err)
	}
	in.self = table
	in.binder = binder.New(in.environ, in.self)

	return in, nil
}

// Result is the outcome of one successfully evaluated statement.
type Result struct {
	// Value is the raw operation result.
	Value any

	// Output is the projected display text. Empty when the statement
	// assigned its result instead.
	Output string

	// Assigned names the variable the result was stored in, empty
	// otherwise.
	Assigned string

	// StatementID correlates log entries of this evaluation.
	StatementID string

	// Duration is the total evaluation time.
	Duration time.Duration
}

// Env exposes the session environment.
func (in *Interpreter) Env() *env.Environment {
	return in.environ
}

// Logger returns the interpreter's logger.
func (in *Interpreter) Logger() *log.Logger {
	return in.logger
}

// RenderWidth returns the configured projection width.
func (in *Interpreter) RenderWidth() int {
	return in.width
}

// Operations exposes the built-in operation table, fulfilling the same
// capability contract pluggable applications do.
func (in *Interpreter) Operations() *binder.OperationTable {
	return in.self
}

// Describe implements binder.Describer.
func (in *Interpreter) Describe() string {
	return "interpreter built-ins"
}

// Eval evaluates one statement. A blank or comment-only statement is a
// no-op. The pipeline is parse, expand, bind candidates in order, then
// execute the first bound call. Binding failures are collected and only
// the best one surfaces; an execution failure propagates immediately
// with no fallback to later candidates. The accepted statement is
// appended to the session log strictly after successful execution.
func (in *Interpreter) Eval(ctx context.Context, statement string) (*Result, error) {
	id := uuid.NewString()
	logger := in.logger.WithStatementID(id)

	trimmed := strings.TrimSpace(statement)
	if blank, err := in.validate(trimmed); blank || err != nil {
		if err != nil {
			return nil, err
		}
		return &Result{StatementID: id}, nil
	}

	timer := logger.StartTimer("evaluate").WithField("statement", trimmed)

	forest, err := parser.Parse(trimmed)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	candidates := ast.Expand(forest)
	logger.Debug("statement expanded", log.Fields{
		"readings":   len(forest.Readings),
		"candidates": len(candidates),
	})

	var best *binder.Failure
	for i, cand := range candidates {
		call, fail := in.binder.Bind(cand)
		if fail != nil {
			logger.Trace("candidate rejected", log.Fields{
				"index":     i,
				"candidate": cand.String(),
				"failure":   fail.Kind.String(),
			})
			if fail.Better(best) {
				best = fail
			}
			continue
		}

		logger.Debug("candidate bound", log.Fields{
			"index":     i,
			"candidate": cand.String(),
			"receiver":  call.Receiver.Kind.String(),
		})

		return in.execute(ctx, logger, timer, trimmed, id, call)
	}

	if best == nil {
		best = binder.UnknownMethodf("no interpretation of %q succeeded", trimmed)
	}
	timer.StopWithError(best)
	return nil, best
}

// validate checks statement size and detects blank input.
func (in *Interpreter) validate(trimmed string) (blank bool, err error) {
	if len(trimmed) > in.maxLen {
		return false, fmt.Errorf("statement exceeds maximum length of %d characters", in.maxLen)
	}

	tokens, err := parser.NewLexer(trimmed).Tokenize()
	if err != nil {
		// The parser reports the position; validation only detects blanks.
		return false, nil
	}
	return len(tokens) == 0, nil
}

// execute runs the bound call and finishes the statement: assignment or
// projection, session log append, timing.
func (in *Interpreter) execute(ctx context.Context, logger *log.Logger, timer *log.Timer,
	statement, id string, call *binder.BoundCall) (*Result, error) {

	value, err := call.Invoke(ctx)
	if err != nil {
		if errors.Is(err, ErrSessionEnd) {
			timer.Cancel()
			return nil, ErrSessionEnd
		}
		timer.StopWithError(err)
		return nil, err
	}

	result := &Result{
		Value:       value,
		StatementID: id,
	}

	if assign := call.Candidate.Assign; assign != "" {
		in.environ.Set(assign, binder.WrapForStore(value))
		result.Assigned = assign
	} else {
		result.Output = render.Render(value, in.width)
	}

	in.environ.AppendLog(statement)
	result.Duration = timer.Stop()

	return result, nil
}
