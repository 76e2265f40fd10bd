// File: shell.go
// Title: Interactive Parley Shell
// Description: Bubbletea REPL for the parley interpreter: prompt with
//              input history, scrollable transcript viewport, styled
//              diagnostics. A parse error or the exit operation ends
//              the session.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/parley"
	"github.com/msto63/parley/parser"
	"github.com/msto63/parley/utils/stringx"
)

const prompt = "parley> "

// Model is the bubbletea model of the interactive shell.
type Model struct {
	in *parley.Interpreter

	input    textinput.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool

	transcript []string

	// Input history; historyIndex -1 means no navigation is active.
	history      []string
	historyIndex int
	currentInput string

	// fatalErr ends the session; it is set on parse errors.
	fatalErr error
	quitting bool
}

// New creates a shell model bound to an interpreter.
func New(in *parley.Interpreter) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(prompt)
	ti.Placeholder = "statement (try: options)"
	ti.CharLimit = parley.DefaultMaxStatementLength
	ti.Focus()

	return Model{
		in:           in,
		input:        ti,
		historyIndex: -1,
		transcript: []string{
			TitleStyle.Render("parley"),
			HelpStyle.Render("near-natural-language interpreter, type \"exit\" to leave"),
			"",
		},
	}
}

// Run starts the shell and blocks until the session ends.
func Run(in *parley.Interpreter) error {
	m := New(in)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.fatalErr != nil {
		return fm.fatalErr
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyUp:
			m = m.historyBack()
			return m, nil

		case tea.KeyDown:
			m = m.historyForward()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := msg.Height - 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(prompt) - 2
		m.refreshViewport()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit evaluates the current input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	statement := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.historyIndex = -1
	m.currentInput = ""

	if statement == "" {
		return m, nil
	}

	m.history = append(m.history, statement)
	m.appendLine(PromptStyle.Render(prompt) + StatementStyle.Render(statement))

	res, err := m.in.Eval(context.Background(), statement)
	switch {
	case errors.Is(err, parley.ErrSessionEnd):
		m.quitting = true
		return m, tea.Quit

	case err != nil:
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			m.appendLine(ErrorStyle.Render("parse error: " + parseErr.Error()))
			m.fatalErr = parseErr
			m.quitting = true
			return m, tea.Quit
		}
		m.appendLine(ErrorStyle.Render(err.Error()))

	default:
		if !stringx.IsBlank(res.Output) {
			for _, line := range stringx.SplitLines(res.Output) {
				m.appendLine(OutputStyle.Render(line))
			}
		}
	}

	m.appendLine("")
	return m, nil
}

// appendLine adds a transcript line and scrolls to the bottom.
func (m *Model) appendLine(line string) {
	m.transcript = append(m.transcript, line)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// historyBack walks to the previous history entry.
func (m Model) historyBack() Model {
	if len(m.history) == 0 {
		return m
	}
	if m.historyIndex == -1 {
		m.currentInput = m.input.Value()
		m.historyIndex = len(m.history) - 1
	} else if m.historyIndex > 0 {
		m.historyIndex--
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
	return m
}

// historyForward walks back toward the in-progress input.
func (m Model) historyForward() Model {
	if m.historyIndex == -1 {
		return m
	}
	if m.historyIndex < len(m.history)-1 {
		m.historyIndex++
		m.input.SetValue(m.history[m.historyIndex])
	} else {
		m.historyIndex = -1
		m.input.SetValue(m.currentInput)
	}
	m.input.CursorEnd()
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "starting..."
	}

	help := HelpStyle.Render(fmt.Sprintf("%d statements | up/down history | ctrl+c quit",
		len(m.in.Env().Log())))

	return m.viewport.View() + "\n" + m.input.View() + "\n" + help
}
