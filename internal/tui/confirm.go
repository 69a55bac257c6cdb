package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question. Anything but an explicit yes is a
// no.
type confirmModel struct {
	title    string
	warnings []string

	confirmed bool
	done      bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.quit):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for _, w := range m.warnings {
		b.WriteString(warningStyle.Render("! " + w))
		b.WriteString("\n")
	}
	if len(m.warnings) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s %s    %s %s",
		keys.yes.Help().Key, keys.yes.Help().Desc,
		keys.no.Help().Key, keys.no.Help().Desc)))

	return overlayBoxStyle.Render(b.String())
}

// Confirm shows title and warnings and waits for y or n.
func (t *TUI) Confirm(title string, warnings []string) (bool, error) {
	model := confirmModel{title: title, warnings: warnings}

	final, err := tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Confirm").Msg("confirmation prompt failed")
		return false, fmt.Errorf("%w: %w", ErrPromptFailed, err)
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, ErrPromptFailed
	}
	return result.confirmed, nil
}
