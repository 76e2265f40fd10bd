// File: docstr.go
// Title: Operation Doc String Parser
// Description: Parses the doc string format operations carry: free head
//              lines describing the operation, followed by "name: text"
//              lines describing parameters, with indented continuation
//              lines folded into the preceding description.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package docstr

import (
	"strings"

	"github.com/msto63/parley/utils/stringx"
)

// ParamDoc is the parsed description of one parameter.
type ParamDoc struct {
	Name string
	Text string
}

// Doc is a parsed operation doc string.
type Doc struct {
	// Head holds the free description before the first parameter line.
	Head string

	// Params holds the parameter descriptions in source order.
	Params []ParamDoc
}

// Param returns the description of a parameter by name.
func (d Doc) Param(name string) (string, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p.Text, true
		}
	}
	return "", false
}

// Parse parses a doc string. Lines before the first "name: text" line
// become the head; each such line opens a parameter description, and any
// following line that is not itself a parameter line continues it.
func Parse(doc string) Doc {
	var d Doc
	var headLines []string

	current := -1

	for _, raw := range stringx.SplitLines(doc) {
		line := strings.TrimSpace(raw)

		if name, text, ok := splitParamLine(line); ok {
			d.Params = append(d.Params, ParamDoc{Name: name, Text: text})
			current = len(d.Params) - 1
			continue
		}

		if current >= 0 {
			if line == "" {
				continue
			}
			p := &d.Params[current]
			if p.Text == "" {
				p.Text = line
			} else {
				p.Text += " " + line
			}
			continue
		}

		headLines = append(headLines, line)
	}

	d.Head = strings.TrimSpace(strings.Join(headLines, "\n"))
	return d
}

// splitParamLine recognizes "name: text" lines where name is an
// identifier.
func splitParamLine(line string) (name, text string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}

	name = line[:idx]
	if !isIdentifier(name) {
		return "", "", false
	}

	return name, strings.TrimSpace(line[idx+1:]), true
}

// isIdentifier reports whether s is a letter or underscore followed by
// letters, digits and underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
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
