// File: doc.go
// Title: Package Documentation for ast
// Description: Defines the syntax nodes of parley statements and the
//              expansion of parse forests into candidate expressions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package ast defines the syntax tree of parley statements.
//
// Unlike a conventional AST, ambiguity is first-class here. A Literal
// records every lexical class its token matches, and a Forest records
// every method word span a statement admits. The Expand function turns a
// forest into the ordered list of Candidate expressions by enumerating
// the cartesian product of all interpretation sets; binding tries the
// candidates in exactly that order.
package ast
