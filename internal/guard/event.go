package guard

import (
	"encoding/json"
	"strings"
)

// StopEvent is the normalized session-stop payload delivered by the host on
// standard input. Hosts disagree on key casing, so both snake_case and
// camelCase spellings are accepted.
type StopEvent struct {
	// SessionID identifies the session being stopped (informational).
	SessionID string

	// Cwd is the project root the session was working in.
	Cwd string

	// StopReason is the host's stated reason for stopping.
	StopReason string

	// UserRequested is true when the user explicitly asked to stop.
	UserRequested bool
}

// stopEventJSON accepts both key spellings seen in the wild.
type stopEventJSON struct {
	SessionID      string `json:"session_id"`
	HookEventName  string `json:"hook_event_name"`
	Cwd            string `json:"cwd"`
	Directory      string `json:"directory"`
	StopReason     string `json:"stop_reason"`
	StopReasonAlt  string `json:"stopReason"`
	UserRequested  *bool  `json:"user_requested"`
	UserRequestAlt *bool  `json:"userRequested"`
}

// ParseStopEvent decodes a stop payload. Malformed or empty input yields a
// zero event rather than an error: the guard fails open, never crashes.
func ParseStopEvent(data []byte) StopEvent {
	var raw stopEventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return StopEvent{}
	}

	ev := StopEvent{
		SessionID:  raw.SessionID,
		Cwd:        raw.Cwd,
		StopReason: raw.StopReason,
	}
	if ev.Cwd == "" {
		ev.Cwd = raw.Directory
	}
	if ev.StopReason == "" {
		ev.StopReason = raw.StopReasonAlt
	}
	if raw.UserRequested != nil {
		ev.UserRequested = *raw.UserRequested
	} else if raw.UserRequestAlt != nil {
		ev.UserRequested = *raw.UserRequestAlt
	}

	return ev
}

// contextLimitPhrases are stop reasons that mean the session ran out of
// context. These stops are never blocked.
var contextLimitPhrases = []string{
	"context_limit",
	"context limit",
	"context_limit_exceeded",
	"max_tokens",
	"max tokens",
	"token limit",
	"out of context",
}

// abortKeywords mark an explicit user-initiated stop.
var abortKeywords = []string{
	"abort",
	"cancel",
	"user_request",
	"interrupt",
}

// ContextLimited reports whether the stop was forced by a context limit.
func (e StopEvent) ContextLimited() bool {
	reason := strings.ToLower(e.StopReason)
	for _, phrase := range contextLimitPhrases {
		if strings.Contains(reason, phrase) {
			return true
		}
	}
	return false
}

// UserAborted reports whether the user explicitly asked the session to stop.
func (e StopEvent) UserAborted() bool {
	if e.UserRequested {
		return true
	}
	reason := strings.ToLower(e.StopReason)
	for _, kw := range abortKeywords {
		if strings.Contains(reason, kw) {
			return true
		}
	}
	return false
}
