package guard

import (
	"fmt"
	"strings"
)

// WorkflowSteps are the five steps the review workflow is expected to
// finish before the session may stop. The labels appear verbatim in every
// block reason.
var WorkflowSteps = [5]string{
	"Run the reviewer on the changed code",
	"Present the findings",
	"Apply the agreed fixes",
	"Re-review the fixes",
	"Mark the review complete (reviewguard review done)",
}

// reinforcementMessage builds the multi-line block reason naming the review
// target and the remaining workflow steps.
func reinforcementMessage(target string, count, max int) string {
	if target == "" {
		target = "the current changes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A code review of %s is still in progress. Do not stop yet.\n", target)
	b.WriteString("Finish the review workflow:\n")
	for i, step := range WorkflowSteps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "(reminder %d of %d)", count, max)

	return b.String()
}
