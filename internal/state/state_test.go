package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReviewState(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	s := NewReviewState("billing refactor", now)

	assert.True(t, s.Active)
	assert.Equal(t, "billing refactor", s.Target)
	assert.Equal(t, now, s.StartedAt)
	assert.Equal(t, now, s.LastCheckedAt)
	assert.Equal(t, 0, s.ReinforcementCount)
}

func TestLastActivity_UsesNewestTimestamp(t *testing.T) {
	started := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	checked := started.Add(30 * time.Minute)

	s := &ReviewState{StartedAt: started, LastCheckedAt: checked}
	assert.Equal(t, checked, s.LastActivity())

	// A fresh start with an old last_checked_at still counts as activity.
	s = &ReviewState{StartedAt: checked, LastCheckedAt: started}
	assert.Equal(t, checked, s.LastActivity())
}

func TestIsStale(t *testing.T) {
	started := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	s := &ReviewState{Active: true, StartedAt: started, LastCheckedAt: started}

	tests := []struct {
		name  string
		now   time.Time
		stale bool
	}{
		{"just started", started, false},
		{"within window", started.Add(DefaultStaleAfter - time.Minute), false},
		{"exactly at window", started.Add(DefaultStaleAfter), false},
		{"past window", started.Add(DefaultStaleAfter + time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stale, s.IsStale(tt.now, DefaultStaleAfter))
		})
	}
}

func TestReinforce(t *testing.T) {
	started := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	s := NewReviewState("x", started)

	later := started.Add(10 * time.Minute)
	s.Reinforce(later)

	require.Equal(t, 1, s.ReinforcementCount)
	assert.Equal(t, later, s.LastCheckedAt)
	assert.Equal(t, started, s.StartedAt)

	s.Reinforce(later.Add(time.Minute))
	assert.Equal(t, 2, s.ReinforcementCount)
}

func TestFreshFor(t *testing.T) {
	started := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	s := NewReviewState("x", started)

	remaining := s.FreshFor(started.Add(30*time.Minute), 2*time.Hour)
	assert.Equal(t, 90*time.Minute, remaining)

	remaining = s.FreshFor(started.Add(3*time.Hour), 2*time.Hour)
	assert.True(t, remaining <= 0)
}
