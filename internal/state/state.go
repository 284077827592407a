package state

import (
	"time"
)

// DefaultStaleAfter is how long a review state stays fresh without activity.
const DefaultStaleAfter = 2 * time.Hour

// ReviewState tracks an in-progress review workflow. It is created by
// `review start`, refreshed by the session-stop guard, and removed by
// `review done`. The guard itself never deletes it.
type ReviewState struct {
	// Active indicates the review workflow is pending completion.
	Active bool `json:"active"`

	// Target is a human-readable label for what is being reviewed.
	Target string `json:"target,omitempty"`

	// StartedAt is when the review workflow began.
	StartedAt time.Time `json:"started_at"`

	// LastCheckedAt is the last time the guard observed or renewed this state.
	LastCheckedAt time.Time `json:"last_checked_at"`

	// ReinforcementCount is how many times the guard has already nudged
	// the workflow to continue. Never decreases while Active is true.
	ReinforcementCount int `json:"reinforcement_count"`
}

// NewReviewState creates an active review state starting at now.
func NewReviewState(target string, now time.Time) *ReviewState {
	return &ReviewState{
		Active:        true,
		Target:        target,
		StartedAt:     now,
		LastCheckedAt: now,
	}
}

// LastActivity returns the most recent of the two state timestamps.
func (s *ReviewState) LastActivity() time.Time {
	if s.LastCheckedAt.After(s.StartedAt) {
		return s.LastCheckedAt
	}
	return s.StartedAt
}

// IsStale reports whether the state has seen no activity for longer than
// staleAfter. Stale state is treated as abandoned rather than in progress.
func (s *ReviewState) IsStale(now time.Time, staleAfter time.Duration) bool {
	return now.Sub(s.LastActivity()) > staleAfter
}

// Reinforce records one more guard nudge and refreshes the activity timestamp.
func (s *ReviewState) Reinforce(now time.Time) {
	s.ReinforcementCount++
	s.LastCheckedAt = now
}

// Age returns how long ago the review started.
func (s *ReviewState) Age(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// FreshFor returns how long until the state goes stale. Zero or negative
// means it is already stale.
func (s *ReviewState) FreshFor(now time.Time, staleAfter time.Duration) time.Duration {
	return s.LastActivity().Add(staleAfter).Sub(now)
}
