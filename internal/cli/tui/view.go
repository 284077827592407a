package tui

import (
	"fmt"
	"strings"
	"time"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Quitting {
		return ""
	}
	if m.Gone {
		return m.Styles.Fresh.Render(IconComplete+" Review completed, state cleared.") + "\n"
	}

	var b strings.Builder

	b.WriteString(m.Styles.Title.Render("Review Watch"))
	b.WriteString("\n\n")

	switch {
	case m.LoadErr != nil:
		b.WriteString(m.Styles.Stale.Render(fmt.Sprintf("cannot read state: %v", m.LoadErr)))
		b.WriteString("\n")
	case m.Review == nil:
		b.WriteString("  No review in progress\n")
	default:
		b.WriteString(m.renderReview())
	}

	b.WriteString(m.Styles.Footer.Render("q: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderReview renders the active review's vitals
func (m *Model) renderReview() string {
	s := m.Review

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.Styles.Label.Render(label+":"), m.Styles.Value.Render(value)))
	}

	target := s.Target
	if target == "" {
		target = "(unnamed)"
	}
	row("Target", target)

	if s.Active {
		if s.IsStale(m.Now, m.StaleAfter) {
			row("Status", m.Styles.Stale.Render(IconStale+" stale"))
		} else {
			row("Status", m.Styles.Fresh.Render(IconActive+" active"))
		}
	} else {
		row("Status", "inactive")
	}

	row("Started", formatDuration(s.Age(m.Now))+" ago")

	if remaining := s.FreshFor(m.Now, m.StaleAfter); remaining > 0 {
		row("Stale in", formatDuration(remaining))
	} else {
		row("Stale in", m.Styles.Stale.Render("now"))
	}

	nudges := fmt.Sprintf("%d of %d", s.ReinforcementCount, m.MaxReinforcements)
	if s.ReinforcementCount >= m.MaxReinforcements {
		row("Nudges", m.Styles.Danger.Render(nudges+" (budget exhausted)"))
	} else {
		row("Nudges", nudges)
	}

	return b.String()
}

// formatDuration renders a duration as h/m/s without sub-second noise
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
