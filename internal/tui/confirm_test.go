package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, keys string) (confirmModel, tea.Cmd) {
	var msg tea.KeyMsg
	switch keys {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	return next.(confirmModel), cmd
}

func TestConfirmModel_Update(t *testing.T) {
	tests := []struct {
		key           string
		wantConfirmed bool
		wantDone      bool
	}{
		{key: "y", wantConfirmed: true, wantDone: true},
		{key: "Y", wantConfirmed: true, wantDone: true},
		{key: "n", wantDone: true},
		{key: "esc", wantDone: true},
		{key: "ctrl+c", wantDone: true},
		{key: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, cmd := press(confirmModel{title: "Sync?"}, tt.key)

			assert.Equal(t, tt.wantConfirmed, m.confirmed)
			assert.Equal(t, tt.wantDone, m.done)
			assert.Equal(t, tt.wantDone, cmd != nil)
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := confirmModel{title: "Replace 1 account?", warnings: []string{"Wallet: destination is newer"}}

	view := m.View()
	assert.Contains(t, view, "Replace 1 account?")
	assert.Contains(t, view, "Wallet: destination is newer")
	assert.Contains(t, view, "y sync")

	m.done = true
	assert.Empty(t, m.View())
}

func TestConfirm_ReadsInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y", want: true},
		{input: "n", want: false},
		{input: "zzn", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			ui := NewPlain(strings.NewReader(tt.input), &out, "USD")

			got, err := ui.Confirm("Sync?", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
