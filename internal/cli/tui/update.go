package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case TickMsg:
		m.Now = time.Time(msg)
		return m, tea.Batch(pollCmd(m.Store), tickCmd())

	case PollMsg:
		m.LoadErr = msg.Err
		if msg.Err == nil {
			// Review completed once a previously seen state disappears.
			if msg.Review == nil && m.Review != nil {
				m.Gone = true
				return m, tea.Quit
			}
			m.Review = msg.Review
		}
	}

	return m, nil
}
