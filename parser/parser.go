// File: parser.go
// Title: Statement Parser and Forest Builder
// Description: Parses a tokenized statement into a forest of readings. The
//              parser enumerates every legal method word span and keeps the
//              lexical ambiguity of the argument literals intact. Choosing
//              between readings and interpretations is the binder's job.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	"github.com/msto63/parley/ast"
)

// Statement keywords. Keywords never serve as method words or literals.
const (
	kwUsing = "using"
	kwWith  = "with"
	kwAs    = "as"
	kwAnd   = "and"
)

// maxMethodWords is the largest method word span a reading may consume.
const maxMethodWords = 4

// ParseError describes a statement that admits no reading at all. It is
// fatal for the statement, and at the interactive shell for the session.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Parse parses a single statement into its forest of readings. The forest
// contains one reading per legal method word span, ordered by ascending
// word count. A statement with no legal reading yields a *ParseError.
func Parse(input string) (*ast.Forest, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, &ParseError{Message: "empty statement", Line: 1, Column: 1}
	}

	targetVar, tokens, err := parseTarget(tokens)
	if err != nil {
		return nil, err
	}

	assignVar, tokens, err := parseAssignment(tokens)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, &ParseError{Message: "statement has no method", Line: 1, Column: 1}
	}

	forest := &ast.Forest{Source: input}

	for k := 1; k <= maxMethodWords && k <= len(tokens); k++ {
		reading, ok := tryReading(tokens, k)
		if !ok {
			continue
		}
		reading.TargetVar = targetVar
		reading.AssignVar = assignVar
		forest.Readings = append(forest.Readings, reading)
	}

	if len(forest.Readings) == 0 {
		first := tokens[0]
		return nil, &ParseError{
			Message: fmt.Sprintf("cannot parse statement starting at %q", first.Value),
			Line:    first.Line,
			Column:  first.Column,
		}
	}

	return forest, nil
}

// parseTarget strips a leading "using <var>," clause
func parseTarget(tokens []Token) (string, []Token, error) {
	if len(tokens) == 0 || !isKeyword(tokens[0], kwUsing) {
		return "", tokens, nil
	}

	if len(tokens) < 3 {
		return "", nil, &ParseError{
			Message: "expected variable and comma after 'using'",
			Line:    tokens[0].Line,
			Column:  tokens[0].Column,
		}
	}

	name := tokens[1]
	if name.Type != TokenWord || !ast.IsIdentifier(name.Value) {
		return "", nil, &ParseError{
			Message: fmt.Sprintf("invalid target variable %q", name.Value),
			Line:    name.Line,
			Column:  name.Column,
		}
	}

	if tokens[2].Type != TokenComma {
		return "", nil, &ParseError{
			Message: "expected ',' after target variable",
			Line:    tokens[2].Line,
			Column:  tokens[2].Column,
		}
	}

	return name.Value, tokens[3:], nil
}

// parseAssignment strips a trailing "as <var>" clause. An "as" keyword
// anywhere else in the statement is an error.
func parseAssignment(tokens []Token) (string, []Token, error) {
	asIdx := -1
	for i, tok := range tokens {
		if isKeyword(tok, kwAs) {
			asIdx = i
			break
		}
	}
	if asIdx == -1 {
		return "", tokens, nil
	}

	if asIdx != len(tokens)-2 {
		return "", nil, &ParseError{
			Message: "'as' must be followed by exactly one variable at the end of the statement",
			Line:    tokens[asIdx].Line,
			Column:  tokens[asIdx].Column,
		}
	}

	name := tokens[len(tokens)-1]
	if name.Type != TokenWord || !ast.IsIdentifier(name.Value) {
		return "", nil, &ParseError{
			Message: fmt.Sprintf("invalid assignment variable %q", name.Value),
			Line:    name.Line,
			Column:  name.Column,
		}
	}

	return name.Value, tokens[:asIdx], nil
}

// tryReading attempts to parse the tokens with exactly k method words
func tryReading(tokens []Token, k int) (ast.Reading, bool) {
	var reading ast.Reading

	for i := 0; i < k; i++ {
		tok := tokens[i]
		if tok.Type != TokenWord || isAnyKeyword(tok) || !ast.IsIdentifier(tok.Value) {
			return reading, false
		}
		reading.MethodWords = append(reading.MethodWords, tok.Value)
	}

	rest := tokens[k:]
	if len(rest) > 0 && isKeyword(rest[0], kwWith) {
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return reading, true
	}

	positional, named, ok := parseArgs(rest)
	if !ok {
		return reading, false
	}
	reading.Positional = positional
	reading.Named = named

	return reading, true
}

// parseArgs parses the argument clause. With an "and" separator the left
// side must be a literal list and the right side a literal map; otherwise
// the tokens are tried as a list first and as a map second.
func parseArgs(tokens []Token) ([]ast.Literal, []ast.NamedArg, bool) {
	for i, tok := range tokens {
		if isKeyword(tok, kwAnd) {
			positional, ok := parseLiteralList(tokens[:i])
			if !ok {
				return nil, nil, false
			}
			named, ok := parseLiteralMap(tokens[i+1:])
			if !ok {
				return nil, nil, false
			}
			return positional, named, true
		}
	}

	if positional, ok := parseLiteralList(tokens); ok {
		return positional, nil, true
	}
	if named, ok := parseLiteralMap(tokens); ok {
		return nil, named, true
	}

	return nil, nil, false
}

// parseLiteralList parses "literal (, literal)*" and must consume all tokens
func parseLiteralList(tokens []Token) ([]ast.Literal, bool) {
	if len(tokens) == 0 {
		return nil, false
	}

	var literals []ast.Literal
	expectLiteral := true

	for _, tok := range tokens {
		if expectLiteral {
			lit, ok := toLiteral(tok)
			if !ok {
				return nil, false
			}
			literals = append(literals, lit)
		} else if tok.Type != TokenComma {
			return nil, false
		}
		expectLiteral = !expectLiteral
	}

	// The list must not end on a comma.
	if expectLiteral {
		return nil, false
	}

	return literals, true
}

// parseLiteralMap parses "IDENT literal (, IDENT literal)*" and must
// consume all tokens
func parseLiteralMap(tokens []Token) ([]ast.NamedArg, bool) {
	if len(tokens) == 0 {
		return nil, false
	}

	var named []ast.NamedArg
	i := 0

	for i < len(tokens) {
		if len(named) > 0 {
			if tokens[i].Type != TokenComma {
				return nil, false
			}
			i++
		}

		if i+1 >= len(tokens) {
			return nil, false
		}

		key := tokens[i]
		if key.Type != TokenWord || isAnyKeyword(key) || !ast.IsIdentifier(key.Value) {
			return nil, false
		}

		lit, ok := toLiteral(tokens[i+1])
		if !ok {
			return nil, false
		}

		named = append(named, ast.NamedArg{Name: key.Value, Literal: lit})
		i += 2
	}

	return named, true
}

// toLiteral converts an argument token into a classified literal
func toLiteral(tok Token) (ast.Literal, bool) {
	switch tok.Type {
	case TokenQuoted:
		return ast.QuotedLiteral(tok.Value), true
	case TokenWord:
		if isAnyKeyword(tok) {
			return ast.Literal{}, false
		}
		lit := ast.WordLiteral(tok.Value)
		return lit, lit.Valid()
	default:
		return ast.Literal{}, false
	}
}

// isKeyword reports whether tok is the given keyword word
func isKeyword(tok Token, kw string) bool {
	return tok.Type == TokenWord && tok.Value == kw
}

// isAnyKeyword reports whether tok is any statement keyword
func isAnyKeyword(tok Token) bool {
	if tok.Type != TokenWord {
		return false
	}
	switch tok.Value {
	case kwUsing, kwWith, kwAs, kwAnd:
		return true
	default:
		return false
	}
}
