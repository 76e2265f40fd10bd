// File: lexer.go
// Title: Statement Lexical Analyzer
// Description: Implements the lexical analysis phase of parley parsing.
//              Splits a statement into word, quoted string and comma tokens
//              with position information for error reporting. Lexical
//              classification of words happens later in the ast package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenEOF marks the end of the statement
	TokenEOF TokenType = iota

	// TokenIllegal marks an unrecognized or malformed piece of input
	TokenIllegal

	// TokenWord is an unquoted run of characters; keywords, method words
	// and unquoted literals all arrive as words
	TokenWord

	// TokenQuoted is a quoted string literal with quotes stripped and
	// escapes resolved
	TokenQuoted

	// TokenComma separates list elements and map entries
	TokenComma
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenWord:
		return "WORD"
	case TokenQuoted:
		return "QUOTED"
	case TokenComma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Lexer performs lexical analysis of parley input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// A comment runs to the end of the line.
	for l.ch == '#' {
		l.skipComment()
		l.skipWhitespace()
	}

	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case ',':
		tok := Token{Type: TokenComma, Value: ",", Position: pos, Line: line, Column: column}
		l.readChar()
		return tok
	case '"', '\'':
		value, ok := l.readQuoted(l.ch)
		if !ok {
			return Token{Type: TokenIllegal, Value: value, Position: pos, Line: line, Column: column}
		}
		return Token{Type: TokenQuoted, Value: value, Position: pos, Line: line, Column: column}
	case 0:
		return Token{Type: TokenEOF, Position: pos, Line: line, Column: column}
	default:
		return Token{Type: TokenWord, Value: l.readWord(), Position: pos, Line: line, Column: column}
	}
}

// Tokenize returns all tokens up to EOF. The EOF token is not included.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			break
		}
		if tok.Type == TokenIllegal {
			return tokens, &ParseError{
				Message: fmt.Sprintf("unterminated string literal %q", tok.Value),
				Line:    tok.Line,
				Column:  tok.Column,
			}
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// skipWhitespace skips spaces, tabs and line breaks
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// skipComment skips from '#' to the end of the line
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readWord reads a run of characters up to whitespace, comma, quote,
// comment or end of input
func (l *Lexer) readWord() string {
	start := l.position
	for !isWordBoundary(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readQuoted reads a quoted string with escape handling. The closing
// quote must match the opening one. Returns the unescaped content and
// false when the string is unterminated.
func (l *Lexer) readQuoted(quote byte) (string, bool) {
	var b strings.Builder

	l.readChar() // skip opening quote
	for l.ch != quote {
		if l.ch == 0 {
			return b.String(), false
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 0:
				return b.String(), false
			default:
				b.WriteByte(l.ch)
			}
		} else {
			b.WriteByte(l.ch)
		}
		l.readChar()
	}
	l.readChar() // skip closing quote

	return b.String(), true
}

// isWordBoundary reports whether ch terminates a word
func isWordBoundary(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', ',', '"', '\'', '#', 0:
		return true
	default:
		return false
	}
}
