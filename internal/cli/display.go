package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Grupo-AFAL/reviewguard/internal/state"
)

// statusStyles holds the lipgloss styles for the status output
type statusStyles struct {
	Label  lipgloss.Style
	Value  lipgloss.Style
	Fresh  lipgloss.Style
	Stale  lipgloss.Style
	Danger lipgloss.Style
}

func defaultStatusStyles(useColor bool) statusStyles {
	if !useColor {
		plain := lipgloss.NewStyle()
		return statusStyles{Label: plain, Value: plain, Fresh: plain, Stale: plain, Danger: plain}
	}
	return statusStyles{
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Bold(true),
		Fresh:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Stale:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Danger: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// renderReviewStatus produces the formatted `review status` output
func renderReviewStatus(s *state.ReviewState, now time.Time, staleAfter time.Duration, maxReinforcements int, useColor bool) string {
	if s == nil {
		return "No review in progress\n"
	}

	styles := defaultStatusStyles(useColor)

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", styles.Label.Render(label+":"), value))
	}

	target := s.Target
	if target == "" {
		target = "(unnamed)"
	}
	row("Target", styles.Value.Render(target))

	switch {
	case !s.Active:
		row("Status", "inactive")
	case s.IsStale(now, staleAfter):
		row("Status", styles.Stale.Render("stale (treated as abandoned)"))
	default:
		row("Status", styles.Fresh.Render("active"))
	}

	row("Started", s.StartedAt.Format(time.RFC3339))
	row("Last checked", s.LastCheckedAt.Format(time.RFC3339))

	nudges := fmt.Sprintf("%d of %d", s.ReinforcementCount, maxReinforcements)
	if s.ReinforcementCount >= maxReinforcements {
		nudges = styles.Danger.Render(nudges + " (budget exhausted)")
	}
	row("Reminders", nudges)

	return b.String()
}
