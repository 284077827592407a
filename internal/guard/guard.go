package guard

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Grupo-AFAL/reviewguard/internal/state"
)

// Action is the guard's verdict on a session-stop attempt.
type Action string

const (
	// ActionAllow lets the session terminate.
	ActionAllow Action = "allow"
	// ActionBlock asks the host to keep the session going.
	ActionBlock Action = "block"
)

// Decision is the single result type for every guard outcome. Reason is
// only set for blocks.
type Decision struct {
	Action Action
	Reason string
}

// Allow is the fail-open decision every error path collapses to.
var Allow = Decision{Action: ActionAllow}

// DefaultMaxReinforcements bounds how often the guard will block before
// giving up. Prevents a stuck workflow from trapping the session forever.
const DefaultMaxReinforcements = 10

// Options configures a Guard. Zero values get defaults.
type Options struct {
	// Store persists review state between invocations.
	Store state.Store

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time

	// StaleAfter is the inactivity window after which state is abandoned.
	// Defaults to state.DefaultStaleAfter.
	StaleAfter time.Duration

	// MaxReinforcements caps how many blocks the guard will issue.
	// Defaults to DefaultMaxReinforcements.
	MaxReinforcements int
}

// Guard decides whether a session-stop should be allowed or blocked with a
// reinforcement nudge. It is a soft gate: every failure mode degrades to
// allowing termination.
type Guard struct {
	store             state.Store
	now               func() time.Time
	staleAfter        time.Duration
	maxReinforcements int
}

// New creates a Guard, applying defaults for unset options.
func New(opts Options) *Guard {
	g := &Guard{
		store:             opts.Store,
		now:               opts.Now,
		staleAfter:        opts.StaleAfter,
		maxReinforcements: opts.MaxReinforcements,
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.staleAfter <= 0 {
		g.staleAfter = state.DefaultStaleAfter
	}
	if g.maxReinforcements <= 0 {
		g.maxReinforcements = DefaultMaxReinforcements
	}
	return g
}

// Evaluate decides the fate of one session-stop attempt. It never returns
// an error and never panics outward: the recover boundary maps anything
// unexpected to Allow.
func (g *Guard) Evaluate(ev StopEvent) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			d = Allow
		}
	}()

	// Context-limit and user-initiated stops are never blocked,
	// regardless of review state.
	if ev.ContextLimited() || ev.UserAborted() {
		return Allow
	}

	if g.store == nil {
		return Allow
	}

	s, err := g.store.Load()
	if err != nil || s == nil {
		return Allow
	}
	if !s.Active {
		return Allow
	}

	now := g.now()
	if s.IsStale(now, g.staleAfter) {
		return Allow
	}

	s.Reinforce(now)
	if s.ReinforcementCount > g.maxReinforcements {
		return Allow
	}

	// A failed write still blocks: the nudge matters more than the
	// durable counter. See the lifecycle notes in DESIGN.md.
	_ = g.store.Save(s)

	return Decision{
		Action: ActionBlock,
		Reason: reinforcementMessage(s.Target, s.ReinforcementCount, g.maxReinforcements),
	}
}

// blockResponse is the wire shape the host expects on stdout.
type blockResponse struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// Emit writes the decision for the host: nothing for allow, a single JSON
// object for block.
func (d Decision) Emit(w io.Writer) error {
	if d.Action != ActionBlock {
		return nil
	}

	data, err := json.Marshal(blockResponse{Decision: string(ActionBlock), Reason: d.Reason})
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("write decision: %w", err)
	}

	return nil
}
