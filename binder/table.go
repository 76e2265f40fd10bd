// File: table.go
// Title: Operation Table and Argument Shapes
// Description: Defines the runtime operation table a capability exposes:
//              ordered operation specs with named parameters, optional
//              defaults, doc strings and the callable itself. Binding
//              matches candidate argument shapes against these specs.
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
	"strconv"
	"strings"
)

// Param describes a single operation parameter.
type Param struct {
	// Name is the parameter identifier used for named arguments.
	Name string

	// Default is the value used when the argument is omitted.
	Default any

	// HasDefault marks the parameter optional.
	HasDefault bool
}

// OpFunc is the callable behind an operation. It receives the evaluation
// context and the bound arguments. Returning a *Failure marks a ranked,
// recoverable failure; any other error aborts the statement.
type OpFunc func(ctx context.Context, args Args) (any, error)

// Operation is one entry of an operation table.
type Operation struct {
	// Name is the canonical operation name; multi-word names use spaces.
	Name string

	// Params holds the ordered parameter specs.
	Params []Param

	// Doc is the operation doc string in docstr format (head lines, then
	// "arg: description" lines).
	Doc string

	// Fn is invoked when the operation is bound and executed.
	Fn OpFunc
}

// Signature renders the operation head for listings, e.g. "greet(name)".
func (o *Operation) Signature() string {
	names := make([]string, len(o.Params))
	for i, p := range o.Params {
		if p.HasDefault {
			names[i] = fmt.Sprintf("%s=%v", p.Name, p.Default)
		} else {
			names[i] = p.Name
		}
	}
	return fmt.Sprintf("%s(%s)", o.Name, strings.Join(names, ", "))
}

// bindArgs checks the argument shape of a call against the parameter
// specs and produces the bound Args. Positional values fill parameters in
// order, named values fill by name, defaults fill the rest.
func (o *Operation) bindArgs(positional []any, named []namedAny) (Args, *Failure) {
	if len(positional) > len(o.Params) {
		return Args{}, ArgumentMismatchf("%s takes %d arguments, got %d",
			o.Name, len(o.Params), len(positional))
	}

	values := make(map[string]any, len(o.Params))
	for i, v := range positional {
		values[o.Params[i].Name] = v
	}

	for _, nv := range named {
		param, ok := o.paramByName(nv.name)
		if !ok {
			return Args{}, ArgumentMismatchf("%s has no parameter %q", o.Name, nv.name)
		}
		if _, filled := values[param.Name]; filled {
			return Args{}, ArgumentMismatchf("%s: parameter %q given twice", o.Name, param.Name)
		}
		values[param.Name] = nv.value
	}

	order := make([]string, len(o.Params))
	for i, p := range o.Params {
		order[i] = p.Name
		if _, filled := values[p.Name]; filled {
			continue
		}
		if !p.HasDefault {
			return Args{}, ArgumentMismatchf("%s: missing argument %q", o.Name, p.Name)
		}
		values[p.Name] = p.Default
	}

	return Args{values: values, order: order}, nil
}

// paramByName finds a parameter spec by its name.
func (o *Operation) paramByName(name string) (Param, bool) {
	for _, p := range o.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// namedAny is a resolved named argument awaiting shape check.
type namedAny struct {
	name  string
	value any
}

// Args holds the bound arguments of a call, keyed by parameter name.
type Args struct {
	values map[string]any
	order  []string
}

// Len returns the number of bound parameters.
func (a Args) Len() int {
	return len(a.order)
}

// Get returns the value bound to the given parameter.
func (a Args) Get(name string) any {
	return a.values[name]
}

// Has reports whether the parameter has a bound value.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// String returns the parameter value as a string. Non-string values are
// rendered with fmt.
func (a Args) String(name string) string {
	v, ok := a.values[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Float returns the parameter value as a float64 when possible.
func (a Args) Float(name string) (float64, bool) {
	switch v := a.values[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Values returns the bound values in parameter order.
func (a Args) Values() []any {
	out := make([]any, len(a.order))
	for i, name := range a.order {
		out[i] = a.values[name]
	}
	return out
}

// OperationTable is the ordered, introspectable operation set of a
// capability. Lookup treats spaces and underscores in operation names as
// interchangeable and ignores case.
type OperationTable struct {
	ops   []*Operation
	index map[string]*Operation
}

// NewOperationTable creates an empty operation table.
func NewOperationTable() *OperationTable {
	return &OperationTable{
		index: make(map[string]*Operation),
	}
}

// Register adds an operation to the table. Registering a second operation
// with the same normalized name is an error.
func (t *OperationTable) Register(op *Operation) error {
	key := NormalizeName(op.Name)
	if key == "" {
		return fmt.Errorf("operation name cannot be empty")
	}
	if _, exists := t.index[key]; exists {
		return fmt.Errorf("operation %q already registered", op.Name)
	}
	t.ops = append(t.ops, op)
	t.index[key] = op
	return nil
}

// MustRegister adds an operation and panics on a duplicate. Intended for
// static table construction.
func (t *OperationTable) MustRegister(op *Operation) {
	if err := t.Register(op); err != nil {
		panic(err)
	}
}

// Lookup finds an operation by name, with spaces and underscores
// interchangeable and case ignored.
func (t *OperationTable) Lookup(name string) (*Operation, bool) {
	op, ok := t.index[NormalizeName(name)]
	return op, ok
}

// Operations returns the registered operations in registration order.
func (t *OperationTable) Operations() []*Operation {
	out := make([]*Operation, len(t.ops))
	copy(out, t.ops)
	return out
}

// Len returns the number of registered operations.
func (t *OperationTable) Len() int {
	return len(t.ops)
}

// NormalizeName canonicalizes an operation name for lookup: lower case,
// underscores replaced by spaces, runs of whitespace collapsed.
func NormalizeName(name string) string {
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(name), "_", " "))
	return strings.Join(fields, " ")
}
