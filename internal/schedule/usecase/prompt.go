package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/gcalendar"
)

// buildPlanPrompt renders the user message sent to the planner.
func buildPlanPrompt(tasks []model.Task, hours model.WorkingHours, timezone string, now time.Time, busy []gcalendar.Event) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Timezone: %s\n", timezone)
	fmt.Fprintf(&sb, "Current local time: %s (%s)\n\n", now.Format(datemath.LocalLayout), now.Weekday())

	sb.WriteString("Working hours:\n")
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(time.Monday) + i) % 7)
		h := hours.For(day)
		if !h.Enabled {
			fmt.Fprintf(&sb, "- %s: off\n", day)
			continue
		}
		fmt.Fprintf(&sb, "- %s: %s-%s\n", day, h.Start, h.End)
	}

	if len(busy) > 0 {
		sb.WriteString("\nBusy slots:\n")
		for _, e := range busy {
			fmt.Fprintf(&sb, "- %s to %s: %s\n",
				e.StartTime.In(now.Location()).Format(datemath.LocalLayout),
				e.EndTime.In(now.Location()).Format(datemath.LocalLayout),
				e.Summary)
		}
	}

	sb.WriteString("\nTasks:\n")
	for _, t := range tasks {
		fmt.Fprintf(&sb, "- id=%d title=%q priority=%s status=%s estimate=%dmin", t.ID, t.Title, t.Priority, t.Status, t.TimeEstimate)
		if t.DueDate != nil {
			fmt.Fprintf(&sb, " due=%s", t.DueDate.In(now.Location()).Format(datemath.DateLayout))
		}
		if t.Description != "" {
			fmt.Fprintf(&sb, " notes=%q", truncate(t.Description, 200))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
