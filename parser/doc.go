// File: doc.go
// Title: Package Documentation for parser
// Description: Tokenizes and parses parley statements into forests of
//              readings with explicit ambiguity.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package parser tokenizes and parses parley statements.
//
// A statement has the shape
//
//	statement  = target? method~1..4 "with"? args? assignment?
//	target     = "using" IDENT ","
//	assignment = "as" IDENT
//	args       = literal_list ("and" literal_map)? | literal_list | literal_map
//
// The parser does not choose between competing interpretations. Because
// the method may span one to four words, a statement like "greet alice"
// admits both greet("alice") and a two-word method "greet alice"; Parse
// returns a forest holding one reading per legal span, ordered by
// ascending word count. Argument literals keep every lexical class they
// match (see the ast package). Only a statement with no legal reading at
// all produces a ParseError.
package parser
