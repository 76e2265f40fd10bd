// File: binder.go
// Title: Candidate Binding Engine
// Description: Binds fully disambiguated candidate expressions against
//              the environment and the operation tables of the eligible
//              receivers, producing either a bound call or a ranked
//              failure.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package binder

import (
	"context"
	"fmt"

	"github.com/msto63/parley/ast"
)

// Env is the environment view the binder needs: variable lookup and the
// active target. Implemented by env.Environment.
type Env interface {
	// Lookup resolves a variable by name.
	Lookup(name string) (any, bool)

	// Active returns the active target value, if any.
	Active() (any, bool)
}

// Binder binds candidates against an environment and the interpreter's
// built-in operation table.
type Binder struct {
	env  Env
	self *OperationTable
}

// New creates a binder.
func New(env Env, self *OperationTable) *Binder {
	return &Binder{env: env, self: self}
}

// BoundCall is a successfully bound candidate, ready to execute.
type BoundCall struct {
	// Receiver is the object the operation executes against.
	Receiver Receiver

	// Op is the matched operation.
	Op *Operation

	// Args holds the shape-checked arguments.
	Args Args

	// Candidate is the expression that produced the call.
	Candidate ast.Candidate
}

// Invoke executes the bound call. A panic inside the operation is
// recovered into an ExecError; a returned *Failure passes through for
// ranking; any other error is wrapped as an ExecError.
func (b *BoundCall) Invoke(ctx context.Context) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			rErr, ok := r.(error)
			if !ok {
				rErr = fmt.Errorf("%v", r)
			}
			result = nil
			err = &ExecError{Method: b.Op.Name, Err: rErr, Panicked: true}
		}
	}()

	result, err = b.Op.Fn(ctx, b.Args)
	if err != nil {
		if _, ranked := err.(*Failure); ranked {
			return nil, err
		}
		return nil, &ExecError{Method: b.Op.Name, Err: err}
	}
	return result, nil
}

// Bind resolves and binds a single candidate. The steps are fixed:
// identifier references resolve first, then the receiver is selected,
// then the method is looked up and its argument shape checked. The first
// failing step yields the candidate's failure.
func (b *Binder) Bind(cand ast.Candidate) (*BoundCall, *Failure) {
	positional, named, fail := b.resolveValues(cand)
	if fail != nil {
		return nil, fail
	}

	receivers, fail := b.receivers(cand)
	if fail != nil {
		return nil, fail
	}

	var mismatch *Failure
	methodFound := false

	for _, recv := range receivers {
		op, ok := recv.lookup(cand.Method)
		if !ok {
			continue
		}
		methodFound = true

		args, argFail := op.bindArgs(positional, named)
		if argFail != nil {
			if mismatch == nil {
				mismatch = argFail
			}
			continue
		}

		return &BoundCall{
			Receiver:  recv,
			Op:        op,
			Args:      args,
			Candidate: cand,
		}, nil
	}

	if !methodFound {
		return nil, UnknownMethodf("unknown method %q", cand.Method)
	}
	return nil, mismatch
}

// resolveValues resolves every interpretation value of the candidate,
// looking identifier references up in the environment.
func (b *Binder) resolveValues(cand ast.Candidate) ([]any, []namedAny, *Failure) {
	var positional []any
	for _, v := range cand.Positional {
		resolved, fail := b.resolveValue(v)
		if fail != nil {
			return nil, nil, fail
		}
		positional = append(positional, resolved)
	}

	var named []namedAny
	for _, nv := range cand.Named {
		resolved, fail := b.resolveValue(nv.Value)
		if fail != nil {
			return nil, nil, fail
		}
		named = append(named, namedAny{name: nv.Name, value: resolved})
	}

	return positional, named, nil
}

// resolveValue resolves one interpretation value.
func (b *Binder) resolveValue(v ast.Value) (any, *Failure) {
	switch v.Kind {
	case ast.KindNumber:
		return v.Num, nil
	case ast.KindString:
		return v.Str, nil
	case ast.KindRef:
		resolved, ok := b.env.Lookup(v.Str)
		if !ok {
			return nil, UnknownVariablef("unknown variable %q", v.Str)
		}
		return resolved, nil
	default:
		return nil, UnknownVariablef("unresolvable value %v", v)
	}
}

// receivers selects the eligible receivers of the candidate. An explicit
// target restricts binding to that receiver alone; otherwise the active
// target is tried before the interpreter itself.
func (b *Binder) receivers(cand ast.Candidate) ([]Receiver, *Failure) {
	if cand.Target != "" {
		v, ok := b.env.Lookup(cand.Target)
		if !ok {
			return nil, UnknownTargetf("unknown target %q", cand.Target)
		}
		return []Receiver{ReceiverFor(cand.Target, v)}, nil
	}

	var receivers []Receiver
	if active, ok := b.env.Active(); ok {
		receivers = append(receivers, ReceiverFor("target", active))
	}
	receivers = append(receivers, SelfReceiver(b.self))
	return receivers, nil
}
