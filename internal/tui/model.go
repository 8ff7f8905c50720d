// Package tui is the terminal keypad front end.
//
// The Model owns no calculator logic: every key becomes a domain.Key, goes
// through the controller and the returned Display is rendered as is.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"deskcalc/internal/domain"
)

// buttonLayout mirrors the on-screen keypad; "=" spans the last row.
var buttonLayout = [][]string{
	{"CE", "C", "⌫", "%"},
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "-"},
	{"±", "0", ".", "+"},
}

// Model is the bubbletea model of the keypad.
type Model struct {
	ctrl     domain.Controller
	keys     keyMap
	help     help.Model
	display  domain.Display
	last     domain.Key
	quitting bool
}

// New returns a keypad bound to ctrl.
func New(ctrl domain.Controller) Model {
	return Model{
		ctrl:    ctrl,
		keys:    defaultKeyMap(),
		help:    help.New(),
		display: ctrl.Display(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if k, ok := m.translate(msg); ok {
			m.last = k
			m.display = m.ctrl.Press(k)
		}
	}
	return m, nil
}

// translate maps a terminal key event to a calculator key.
func (m Model) translate(msg tea.KeyMsg) (domain.Key, bool) {
	switch {
	case key.Matches(msg, m.keys.Equals):
		return domain.KeyEquals, true
	case key.Matches(msg, m.keys.Backspace):
		return domain.KeyBackspace, true
	case key.Matches(msg, m.keys.ClearEntry):
		return domain.KeyClearEntry, true
	case key.Matches(msg, m.keys.Clear):
		return domain.KeyClear, true
	case key.Matches(msg, m.keys.Negate):
		return domain.KeyNegate, true
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	k, err := domain.ParseKey(string(msg.Runes))
	if err != nil {
		return "", false
	}
	return k, true
}

// Display returns what the keypad currently shows.
func (m Model) Display() domain.Display { return m.display }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(expressionStyle.Render(m.display.Expression))
	b.WriteString("\n")
	if m.display.Error != "" {
		b.WriteString(errorDisplayStyle.Render(m.display.Error))
	} else {
		b.WriteString(displayStyle.Render(m.display.Current))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.display.Error))
	b.WriteString("\n")

	for _, row := range buttonLayout {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			cells = append(cells, m.renderButton(label, buttonStyle))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	b.WriteString(m.renderButton("=", equalsButtonStyle))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String() + "\n"
}

func (m Model) renderButton(label string, style lipgloss.Style) string {
	if k, err := domain.ParseKey(label); err == nil && k == m.last {
		style = activeButtonStyle.Width(style.GetWidth())
	}
	return style.Render(label)
}
