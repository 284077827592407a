package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Grupo-AFAL/reviewguard/internal/state"
)

// Model is the bubbletea model for `review watch`. It polls the state
// store once a second and renders the review's freshness and nudge budget.
type Model struct {
	// Configuration
	Store             state.Store
	StaleAfter        time.Duration
	MaxReinforcements int
	Styles            Styles

	// State
	Review  *state.ReviewState
	LoadErr error
	Gone    bool // state file removed, review completed
	Now     time.Time

	// Control
	Quitting bool
}

// NewModel creates a watch model over the given store.
func NewModel(store state.Store, staleAfter time.Duration, maxReinforcements int) *Model {
	return &Model{
		Store:             store,
		StaleAfter:        staleAfter,
		MaxReinforcements: maxReinforcements,
		Styles:            DefaultStyles(),
		Now:               time.Now(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(pollCmd(m.Store), tickCmd())
}

// TickMsg is sent every second to refresh the display
type TickMsg time.Time

// tickCmd returns a command that sends TickMsg every second
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// PollMsg carries the latest state file contents
type PollMsg struct {
	Review *state.ReviewState
	Err    error
}

// pollCmd reloads the review state from the store
func pollCmd(store state.Store) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Load()
		return PollMsg{Review: s, Err: err}
	}
}
