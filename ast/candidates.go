// File: candidates.go
// Title: Candidate Expression Generation
// Description: Expands a parse forest into the ordered list of fully
//              disambiguated candidate expressions by taking the cartesian
//              product over every literal's interpretation set.
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

// ValueKind discriminates the interpretation kinds a literal can take.
type ValueKind int

const (
	// KindNumber is a numeric interpretation.
	KindNumber ValueKind = iota

	// KindString is a plain string interpretation.
	KindString

	// KindRef is an identifier reference to be resolved against the
	// environment at binding time.
	KindRef
)

// Value is one concrete interpretation of a literal.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

// NumberValue creates a numeric interpretation.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// StringValue creates a string interpretation.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// RefValue creates an identifier reference interpretation.
func RefValue(name string) Value {
	return Value{Kind: KindRef, Str: name}
}

// String returns a compact representation for traces.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.Str)
	case KindRef:
		return "$" + v.Str
	default:
		return "?"
	}
}

// NamedValue is a resolved named argument of a candidate.
type NamedValue struct {
	Name  string
	Value Value
}

// Candidate is a fully disambiguated expression: every literal has been
// pinned to exactly one interpretation.
type Candidate struct {
	// Target is the explicit target variable, empty when absent.
	Target string

	// Method is the space-joined method name.
	Method string

	// Positional holds the pinned positional values, in order.
	Positional []Value

	// Named holds the pinned named values, in order.
	Named []NamedValue

	// Assign is the assignment variable, empty when absent.
	Assign string
}

// String renders the candidate in call form for diagnostics and traces.
func (c Candidate) String() string {
	var b strings.Builder

	if c.Target != "" {
		fmt.Fprintf(&b, "%s.", c.Target)
	}
	b.WriteString(c.Method)
	b.WriteString("(")

	for i, v := range c.Positional {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	for i, nv := range c.Named {
		if i > 0 || len(c.Positional) > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", nv.Name, nv.Value.String())
	}
	b.WriteString(")")

	if c.Assign != "" {
		fmt.Fprintf(&b, " -> %s", c.Assign)
	}

	return b.String()
}

// Expand generates the ordered candidate list of a forest. Readings are
// processed in forest order; within a reading the cartesian product over
// the literal interpretation sets is enumerated with earlier literals
// varying slowest, so the first candidate pins every literal to its first
// interpretation.
func Expand(forest *Forest) []Candidate {
	var candidates []Candidate
	for _, reading := range forest.Readings {
		candidates = append(candidates, expandReading(reading)...)
	}
	return candidates
}

// expandReading enumerates the cartesian product of one reading.
func expandReading(r Reading) []Candidate {
	// Collect the interpretation sets of all literals, positional first.
	total := len(r.Positional) + len(r.Named)
	sets := make([][]Value, 0, total)
	for _, lit := range r.Positional {
		sets = append(sets, lit.Interpretations())
	}
	for _, arg := range r.Named {
		sets = append(sets, arg.Literal.Interpretations())
	}

	count := 1
	for _, set := range sets {
		count *= len(set)
	}

	candidates := make([]Candidate, 0, count)
	indices := make([]int, total)

	for {
		cand := Candidate{
			Target: r.TargetVar,
			Method: r.Method(),
			Assign: r.AssignVar,
		}
		if len(r.Positional) > 0 {
			cand.Positional = make([]Value, len(r.Positional))
			for i := range r.Positional {
				cand.Positional[i] = sets[i][indices[i]]
			}
		}
		if len(r.Named) > 0 {
			cand.Named = make([]NamedValue, len(r.Named))
			for i, arg := range r.Named {
				cand.Named[i] = NamedValue{
					Name:  arg.Name,
					Value: sets[len(r.Positional)+i][indices[len(r.Positional)+i]],
				}
			}
		}
		candidates = append(candidates, cand)

		// Advance the odometer, last position fastest.
		pos := total - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(sets[pos]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return candidates
}
