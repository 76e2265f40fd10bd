// File: capability.go
// Title: Capability Contract and Value Wrapping
// Description: Defines the capability interface pluggable applications
//              implement, and the value capability that wraps arbitrary
//              results so they can serve as targets.
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
	"reflect"
)

// Capability is the contract every bindable object fulfills: an
// introspectable table of its operations. Applications implement this to
// plug into the interpreter; the interpreter itself and wrapped values
// fulfill it too.
type Capability interface {
	Operations() *OperationTable
}

// Describer is an optional interface a capability may implement to label
// itself in listings.
type Describer interface {
	Describe() string
}

// ValueCapability wraps an arbitrary value so that it can be stored as a
// variable and used as a target. It exposes a single "value" operation
// returning the wrapped value.
type ValueCapability struct {
	value any
	table *OperationTable
}

// NewValueCapability wraps a value.
func NewValueCapability(v any) *ValueCapability {
	c := &ValueCapability{value: v}

	c.table = NewOperationTable()
	c.table.MustRegister(&Operation{
		Name: "value",
		Doc:  "Return the wrapped value.",
		Fn: func(ctx context.Context, args Args) (any, error) {
			return c.value, nil
		},
	})

	return c
}

// Value returns the wrapped value.
func (c *ValueCapability) Value() any {
	return c.value
}

// Operations implements Capability.
func (c *ValueCapability) Operations() *OperationTable {
	return c.table
}

// Describe implements Describer.
func (c *ValueCapability) Describe() string {
	return fmt.Sprintf("wrapped value (%T)", c.value)
}

// Storable reports whether a result may be stored in the environment
// verbatim: strings, numbers, booleans, slices, maps and capabilities.
func Storable(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(Capability); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

// WrapForStore prepares a result for assignment: storable values pass
// through verbatim, everything else is wrapped as a value capability.
func WrapForStore(v any) any {
	if Storable(v) {
		return v
	}
	return NewValueCapability(v)
}
