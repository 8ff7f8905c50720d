package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskcalc/internal/domain"
	"deskcalc/internal/format"
	"deskcalc/internal/services/controller"
	"deskcalc/internal/services/evaluator"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f, err := format.New(format.DefaultOptions())
	require.NoError(t, err)
	return New(controller.New(evaluator.New(0, log), f, 0, log))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update should return tui.Model")
	}
	return m
}

func TestModel_TypesAndEvaluates(t *testing.T) {
	m := send(t, newTestModel(t),
		runes("1"), runes("2"), runes("+"), runes("3"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Equal(t, "15", m.Display().Current)
	assert.Equal(t, "12 + 3 =", m.Display().Expression)
	assert.Contains(t, m.View(), "15")
}

func TestModel_KeyMapping(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{"equals rune", []tea.Msg{runes("6"), runes("x"), runes("7"), runes("=")}, "42"},
		{"backspace", []tea.Msg{runes("1"), runes("2"), tea.KeyMsg{Type: tea.KeyBackspace}}, "1"},
		{"delete clears entry", []tea.Msg{runes("5"), runes("+"), runes("6"), tea.KeyMsg{Type: tea.KeyDelete}, runes("7"), runes("=")}, "12"},
		{"esc clears", []tea.Msg{runes("9"), runes("+"), tea.KeyMsg{Type: tea.KeyEsc}}, "0"},
		{"n negates", []tea.Msg{runes("4"), runes("n")}, "-4"},
		{"f9 negates", []tea.Msg{runes("4"), tea.KeyMsg{Type: tea.KeyF9}}, "-4"},
		{"percent", []tea.Msg{runes("2"), runes("0"), runes("0"), runes("+"), runes("1"), runes("0"), runes("%"), runes("=")}, "220"},
		{"unmapped key ignored", []tea.Msg{runes("3"), tea.KeyMsg{Type: tea.KeyTab}, runes("z")}, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(t, newTestModel(t), tt.msgs...)
			assert.Equal(t, tt.want, m.Display().Current)
		})
	}
}

func TestModel_ErrorIsRendered(t *testing.T) {
	m := send(t, newTestModel(t), runes("8"), runes("/"), runes("0"), runes("="))
	d := m.Display()
	assert.Equal(t, "Cannot divide by zero", d.Error)
	assert.Contains(t, m.View(), "Cannot divide by zero")

	m = send(t, m, runes("2"))
	assert.Empty(t, m.Display().Error)
	assert.Equal(t, "2", m.Display().Current)
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, runes("q")} {
		next, cmd := newTestModel(t).Update(msg)
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit, msg.String())
		assert.Empty(t, next.View())
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.help.ShowAll)
	m = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "clear entry")
	assert.Equal(t, domain.StateFirstOperand, m.ctrl.State())
}

func TestModel_WindowSizeSetsHelpWidth(t *testing.T) {
	m := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.help.Width)
}

func TestModel_ViewShowsKeypad(t *testing.T) {
	view := newTestModel(t).View()
	for _, label := range []string{"CE", "⌫", "÷", "×", "±", "="} {
		assert.Contains(t, view, label)
	}
}
