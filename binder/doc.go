// File: doc.go
// Title: Package Documentation for binder
// Description: Binds candidate expressions against runtime operation
//              tables with ranked failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package binder matches candidate expressions against the operation
// tables of their eligible receivers.
//
// Every bindable object fulfills the Capability contract: an ordered,
// introspectable OperationTable. Binding a candidate resolves identifier
// references against the environment, selects the receiver (explicit
// target, else active target, else the interpreter itself), looks the
// method up with spaces and underscores interchangeable, and checks the
// argument shape against the operation's parameters.
//
// Failures are data, not control flow. Each failed candidate yields a
// *Failure with a reporting priority; unknown method and unknown target
// outrank argument mismatch, which outranks unknown variable. The engine
// surfaces only the best failure when no candidate of a statement binds
// and executes.
package binder
