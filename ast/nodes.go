// File: nodes.go
// Title: Statement Syntax Nodes
// Description: Defines the syntax nodes produced by the parley parser. A
//              parsed statement is a forest of readings, each reading holding
//              ambiguous literals that keep every lexical classification a
//              token admits.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal represents a single argument token together with every lexical
// class it matches. The parser never chooses between overlapping classes;
// the candidate generator expands them later.
type Literal struct {
	// Text is the raw token text. For quoted literals the quotes are
	// already stripped.
	Text string

	// Quoted marks a quoted string literal, which is never ambiguous.
	Quoted bool

	// IsNumber marks a token that parses as a signed decimal number.
	IsNumber bool

	// IsBare marks a token matching the bare string class
	// (letters, digits and . / : - only, no underscore).
	IsBare bool

	// IsIdent marks a token matching the identifier class
	// (letter or underscore, then letters, digits, underscores).
	IsIdent bool

	// Number holds the parsed numeric value when IsNumber is set.
	Number float64
}

// QuotedLiteral creates a literal for a quoted string token.
func QuotedLiteral(text string) Literal {
	return Literal{Text: text, Quoted: true}
}

// WordLiteral classifies an unquoted token into every literal class it
// matches. A token matching the number class is a number only; the dual
// numeric/textual expansion restores its textual form.
func WordLiteral(text string) Literal {
	lit := Literal{Text: text}

	if n, ok := parseNumber(text); ok {
		lit.IsNumber = true
		lit.Number = n
		return lit
	}

	lit.IsBare = isBareString(text)
	lit.IsIdent = isIdentifier(text)
	return lit
}

// Valid reports whether the token matched at least one literal class.
func (l Literal) Valid() bool {
	return l.Quoted || l.IsNumber || l.IsBare || l.IsIdent
}

// Ambiguous reports whether the literal admits more than one interpretation.
func (l Literal) Ambiguous() bool {
	return len(l.Interpretations()) > 1
}

// Interpretations returns the interpretation values of the literal in
// expansion order. The order is fixed: numbers expand to their numeric
// value and then their original text, unquoted words expand to a plain
// string before an identifier reference.
func (l Literal) Interpretations() []Value {
	switch {
	case l.Quoted:
		return []Value{StringValue(l.Text)}
	case l.IsNumber:
		return []Value{NumberValue(l.Number), StringValue(l.Text)}
	case l.IsBare && l.IsIdent:
		return []Value{StringValue(l.Text), RefValue(l.Text)}
	case l.IsBare:
		return []Value{StringValue(l.Text)}
	case l.IsIdent:
		return []Value{RefValue(l.Text)}
	default:
		return nil
	}
}

// String returns a compact representation for debugging and traces.
func (l Literal) String() string {
	if l.Quoted {
		return strconv.Quote(l.Text)
	}

	var classes []string
	if l.IsNumber {
		classes = append(classes, "num")
	}
	if l.IsBare {
		classes = append(classes, "bare")
	}
	if l.IsIdent {
		classes = append(classes, "ident")
	}
	if classes == nil {
		return fmt.Sprintf("%s{invalid}", l.Text)
	}
	return fmt.Sprintf("%s{%s}", l.Text, strings.Join(classes, "|"))
}

// NamedArg is a key/value pair from the named argument clause. The key is
// always an identifier and never ambiguous.
type NamedArg struct {
	Name    string
	Literal Literal
}

// Reading is one structural interpretation of a statement: a fixed method
// word span with the remaining tokens parsed as argument clauses.
type Reading struct {
	// TargetVar is the variable named in a leading "using <var>," clause,
	// empty when absent.
	TargetVar string

	// MethodWords holds the words consumed as the method name, between
	// one and four of them.
	MethodWords []string

	// Positional holds the comma-separated literal list, in order.
	Positional []Literal

	// Named holds the named argument pairs, in order.
	Named []NamedArg

	// AssignVar is the variable named in a trailing "as <var>" clause,
	// empty when absent.
	AssignVar string
}

// Method returns the space-joined method name of the reading.
func (r Reading) Method() string {
	return strings.Join(r.MethodWords, " ")
}

// String renders the reading in statement form for traces.
func (r Reading) String() string {
	var b strings.Builder

	if r.TargetVar != "" {
		fmt.Fprintf(&b, "using %s, ", r.TargetVar)
	}
	b.WriteString(r.Method())

	for i, lit := range r.Positional {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(lit.String())
	}

	for i, arg := range r.Named {
		if i == 0 {
			if len(r.Positional) > 0 {
				b.WriteString(" and ")
			} else {
				b.WriteString(" ")
			}
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", arg.Name, arg.Literal.String())
	}

	if r.AssignVar != "" {
		fmt.Fprintf(&b, " as %s", r.AssignVar)
	}

	return b.String()
}

// Forest is the complete parse result of one statement: every legal reading,
// ordered by ascending method word count.
type Forest struct {
	// Source is the original statement text.
	Source string

	// Readings holds the structural interpretations in order.
	Readings []Reading
}

// Ambiguous reports whether the forest has more than one reading.
func (f *Forest) Ambiguous() bool {
	return len(f.Readings) > 1
}

// String renders all readings, one per line.
func (f *Forest) String() string {
	lines := make([]string, len(f.Readings))
	for i, r := range f.Readings {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// parseNumber reports whether text is a signed decimal number and returns
// its value. Only an optional leading minus, digits, and a single decimal
// point with trailing digits are accepted.
func parseNumber(text string) (float64, bool) {
	s := text
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}

	digits := 0
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
			// A dot needs digits on both sides.
			if i == 0 || i == len(s)-1 || dots > 1 {
				return 0, false
			}
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isBareString reports whether text matches the bare string class:
// one or more of letters, digits, '.', '/', ':' and '-'. Underscores are
// deliberately excluded so that identifiers stay reachable.
func isBareString(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '/' || c == ':' || c == '-':
		default:
			return false
		}
	}
	return true
}

// isIdentifier reports whether text matches the identifier class:
// a letter or underscore followed by letters, digits and underscores.
func isIdentifier(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsIdentifier reports whether text is a legal identifier. The parser uses
// it to validate named argument keys and variable names.
func IsIdentifier(text string) bool {
	return isIdentifier(text)
}
