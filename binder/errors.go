// File: errors.go
// Title: Binding Failures and Execution Errors
// Description: Defines the ranked failure taxonomy of the binding engine
//              and the fatal execution error. Failures are data carried
//              through candidate selection; only the best one surfaces.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package binder

import (
	"fmt"
)

// FailureKind discriminates the ranked binding failure classes.
type FailureKind int

const (
	// FailureUnknownMethod: the method name matched no operation on any
	// eligible receiver.
	FailureUnknownMethod FailureKind = iota

	// FailureUnknownTarget: the explicit "using" variable is unbound.
	FailureUnknownTarget

	// FailureArgumentMismatch: the method exists but the argument shape
	// does not fit its parameters.
	FailureArgumentMismatch

	// FailureUnknownVariable: an identifier-reference argument resolved
	// to no environment variable.
	FailureUnknownVariable
)

// Priority returns the reporting rank of the failure kind. Lower values
// are preferred when every candidate of a statement fails.
func (k FailureKind) Priority() int {
	switch k {
	case FailureUnknownMethod, FailureUnknownTarget:
		return 10
	case FailureArgumentMismatch:
		return 20
	case FailureUnknownVariable:
		return 30
	default:
		return 99
	}
}

// String returns the failure kind name.
func (k FailureKind) String() string {
	switch k {
	case FailureUnknownMethod:
		return "unknown method"
	case FailureUnknownTarget:
		return "unknown target"
	case FailureArgumentMismatch:
		return "argument mismatch"
	case FailureUnknownVariable:
		return "unknown variable"
	default:
		return "unknown failure"
	}
}

// Failure is a ranked binding failure. It implements error but is never
// fatal by itself: the engine collects failures across candidates and
// reports only the one with the lowest priority.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Message
}

// Priority returns the reporting rank of the failure.
func (f *Failure) Priority() int {
	return f.Kind.Priority()
}

// UnknownMethodf creates an unknown-method failure.
func UnknownMethodf(format string, args ...any) *Failure {
	return &Failure{Kind: FailureUnknownMethod, Message: fmt.Sprintf(format, args...)}
}

// UnknownTargetf creates an unknown-target failure.
func UnknownTargetf(format string, args ...any) *Failure {
	return &Failure{Kind: FailureUnknownTarget, Message: fmt.Sprintf(format, args...)}
}

// ArgumentMismatchf creates an argument-mismatch failure.
func ArgumentMismatchf(format string, args ...any) *Failure {
	return &Failure{Kind: FailureArgumentMismatch, Message: fmt.Sprintf(format, args...)}
}

// UnknownVariablef creates an unknown-variable failure.
func UnknownVariablef(format string, args ...any) *Failure {
	return &Failure{Kind: FailureUnknownVariable, Message: fmt.Sprintf(format, args...)}
}

// Better reports whether f should be preferred over other when reporting.
// A nil other is always replaced; ties keep the earlier failure.
func (f *Failure) Better(other *Failure) bool {
	if other == nil {
		return true
	}
	return f.Priority() < other.Priority()
}

// ExecError is a fatal error raised while an already bound operation was
// executing. It is never retried against other candidates.
type ExecError struct {
	// Method is the operation that was executing.
	Method string

	// Err is the underlying error or recovered panic value.
	Err error

	// Panicked marks errors recovered from a panic.
	Panicked bool
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Panicked {
		return fmt.Sprintf("execution of %q panicked: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("execution of %q failed: %v", e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
