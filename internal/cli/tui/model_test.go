package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Grupo-AFAL/reviewguard/internal/state"
)

// memStore is a trivial in-memory state.Store for TUI tests.
type memStore struct {
	s *state.ReviewState
}

func (m *memStore) Load() (*state.ReviewState, error) { return m.s, nil }
func (m *memStore) Save(s *state.ReviewState) error   { m.s = s; return nil }
func (m *memStore) Delete() error                     { m.s = nil; return nil }

func TestModel_PollUpdatesReview(t *testing.T) {
	now := time.Now()
	store := &memStore{s: state.NewReviewState("tui target", now)}
	m := NewModel(store, 2*time.Hour, 10)

	updated, _ := m.Update(PollMsg{Review: store.s})
	model := updated.(*Model)

	require.NotNil(t, model.Review)
	assert.Equal(t, "tui target", model.Review.Target)
	assert.Contains(t, model.View(), "tui target")
	assert.Contains(t, model.View(), "active")
}

func TestModel_QuitsWhenStateDisappears(t *testing.T) {
	store := &memStore{s: state.NewReviewState("x", time.Now())}
	m := NewModel(store, 2*time.Hour, 10)

	// First poll sees the review, second poll sees it gone.
	updated, _ := m.Update(PollMsg{Review: store.s})
	model := updated.(*Model)

	updated, cmd := model.Update(PollMsg{Review: nil})
	model = updated.(*Model)

	assert.True(t, model.Gone)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, model.View(), "Review completed")
}

func TestModel_NoReview(t *testing.T) {
	m := NewModel(&memStore{}, 2*time.Hour, 10)

	updated, _ := m.Update(PollMsg{Review: nil})
	model := updated.(*Model)

	assert.Contains(t, model.View(), "No review in progress")
}

func TestModel_QuitKey(t *testing.T) {
	m := NewModel(&memStore{}, 2*time.Hour, 10)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model := updated.(*Model)

	assert.True(t, model.Quitting)
	require.NotNil(t, cmd)
	assert.Empty(t, model.View())
}

func TestModel_StaleRendering(t *testing.T) {
	old := time.Now().Add(-3 * time.Hour)
	store := &memStore{s: &state.ReviewState{
		Active:        true,
		Target:        "old review",
		StartedAt:     old,
		LastCheckedAt: old,
	}}
	m := NewModel(store, 2*time.Hour, 10)

	updated, _ := m.Update(PollMsg{Review: store.s})
	model := updated.(*Model)

	assert.Contains(t, model.View(), "stale")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m30s"},
		{2*time.Hour + 5*time.Minute, "2h05m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}
