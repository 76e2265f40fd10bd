// File: doc.go
// Title: Parley Package Documentation
// Description: Implements the parley near-natural-language command
//              interpreter: parsing, interpretation expansion, candidate
//              binding, execution and result projection for short
//              English-like statements against pluggable applications.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parley implementation

/*
Package parley implements a near-natural-language command interpreter.

Package: parley
Title: Near-Natural-Language Command Interpreter
Description: Parses short English-like statements, expands every legal
             way of reading them, binds the readings against the active
             target and the interpreter's own operations, and executes
             the first interpretation that fits. Applications plug in as
             capabilities exposing introspectable operation tables.
Author: msto63 with Claude Sonnet 4.0
Version: v0.1.0
Created: 2025-03-02
Modified: 2025-03-02

Change History:
- 2025-03-02 v0.1.0: Initial parley implementation

Key Features:
  • English-like statement syntax without mandatory punctuation
  • Ambiguity handled by exhaustive, ordered interpretation expansion
  • Method names of one to four words
  • Positional and named arguments with defaults
  • Session variables, an active target and a statement log
  • Ranked failure reporting across all attempted interpretations
  • Pluggable applications registered as capability factories

# Statement Anatomy

A statement is one line of the form

	[using TARGET,] METHOD-WORDS [with] [ARGUMENTS] [as VARIABLE]

for example:

	create widgets as w
	using w, greet "Alice"
	resize with width 10, height 20
	draw 3, 4 and color "red"

The optional "using TARGET," clause directs the call at the capability
bound to TARGET. Without it, the active target set by "use" is tried
first and the interpreter's built-in operations second. The optional
"as VARIABLE" clause stores the result instead of displaying it.

Arguments follow the method words, optionally introduced by "with".
They are a comma-separated list of positional values, a comma-separated
sequence of "name value" pairs, or both joined by "and" (positional
list first).

# Interpretation

Statements are deliberately ambiguous. The parser produces one reading
per legal method-word span (one to four words, ascending), and each
unquoted word carries every classification it admits: a number reads as
a numeric or textual value, a bare word that is also an identifier
reads as a string first and a variable reference second. The readings
multiply out into an ordered candidate list; binding tries candidates
in that order and the first one whose receiver, method and argument
shape all fit is executed. Later candidates are never tried once one
has executed.

When no candidate binds, the most specific failure among all attempts
is reported: an unknown method or target outranks an argument
mismatch, which outranks an unknown variable.

# Built-in Operations

The interpreter itself answers create, delete, use, drop target,
clear session, save session, list, show, options, vars and exit. The
options operation renders the full inventory of what the current
session can do.

# Usage

	in, err := parley.New(parley.Options{
		Apps: map[string]parley.Factory{
			"notebook": notebook.New,
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	res, err := in.Eval(ctx, `create notebook as n`)
	if errors.Is(err, parley.ErrSessionEnd) {
		return
	}

The interpreter is single-threaded: callers feed it one statement at a
time and must not share it across goroutines.
*/
package parley
