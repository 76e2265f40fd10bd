// File: receiver.go
// Title: Call Receivers
// Description: Defines the tagged receiver variants a bound call may
//              execute against: the interpreter itself, a capability, or
//              a raw value wrapped on the fly.
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

// ReceiverKind discriminates the receiver variants.
type ReceiverKind int

const (
	// ReceiverSelf is the interpreter's own built-in operation table.
	ReceiverSelf ReceiverKind = iota

	// ReceiverCapability is a capability stored in the environment.
	ReceiverCapability

	// ReceiverValue is a raw environment value wrapped on the fly.
	ReceiverValue
)

// String returns the receiver kind name.
func (k ReceiverKind) String() string {
	switch k {
	case ReceiverSelf:
		return "interpreter"
	case ReceiverCapability:
		return "capability"
	case ReceiverValue:
		return "value"
	default:
		return "unknown"
	}
}

// Receiver is the resolved object a candidate's method is looked up on.
type Receiver struct {
	// Kind is the receiver variant.
	Kind ReceiverKind

	// Label names the receiver for diagnostics: the variable name for
	// environment receivers, "self" for the interpreter.
	Label string

	cap   Capability
	table *OperationTable
}

// SelfReceiver creates the interpreter-self receiver over the built-in
// operation table.
func SelfReceiver(table *OperationTable) Receiver {
	return Receiver{Kind: ReceiverSelf, Label: "self", table: table}
}

// ReceiverFor creates a receiver for an environment value: capabilities
// bind directly, anything else is wrapped as a value capability.
func ReceiverFor(name string, v any) Receiver {
	if c, ok := v.(Capability); ok {
		return Receiver{Kind: ReceiverCapability, Label: name, cap: c, table: c.Operations()}
	}
	c := NewValueCapability(v)
	return Receiver{Kind: ReceiverValue, Label: name, cap: c, table: c.Operations()}
}

// Capability returns the receiver's capability, nil for the interpreter
// self receiver.
func (r Receiver) Capability() Capability {
	return r.cap
}

// Table returns the receiver's operation table.
func (r Receiver) Table() *OperationTable {
	return r.table
}

// Describe labels the receiver for the options listing.
func (r Receiver) Describe() string {
	if d, ok := r.cap.(Describer); ok {
		return d.Describe()
	}
	if r.Kind == ReceiverSelf {
		return "interpreter"
	}
	return fmt.Sprintf("%T", r.cap)
}

// lookup finds a method on the receiver's operation table.
func (r Receiver) lookup(method string) (*Operation, bool) {
	if r.table == nil {
		return nil, false
	}
	return r.table.Lookup(method)
}
