package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
)

// ValidatePlacements moves placements that are not strictly after now to the
// next working-hours start. The result has the same length and order as the
// input; untouched placements are returned byte for byte.
//
// For a past placement on an enabled day the candidate is that day's start
// time. If the candidate has also passed, the placement moves one calendar
// day forward to that day's start. A placement on a disabled day, or whose
// next day is disabled, is left as is. There is no further search, so a
// placement several days old can still be in the past after correction.
//
// A malformed timestamp fails the whole batch.
func ValidatePlacements(placements []Placement, hours model.WorkingHours, timezone string, now time.Time) ([]Placement, error) {
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}
	now = now.In(parser.Location())

	out := make([]Placement, len(placements))
	for i, p := range placements {
		out[i] = p

		at, err := parser.ParseLocal(p.ScheduledDate)
		if err != nil {
			return nil, fmt.Errorf("%w: task %d: %v", ErrInvalidTimestamp, p.ID, err)
		}
		if at.After(now) {
			continue
		}

		candidate, ok := nextWorkingStart(parser, hours, at, now)
		if !ok {
			continue
		}

		out[i].ScheduledDate = parser.FormatLocal(candidate)
		out[i].Reasoning = relocationReasoning(p.Reasoning, candidate)
	}

	return out, nil
}

// CountRelocated reports how many placements differ between before and after.
func CountRelocated(before, after []Placement) int {
	n := 0
	for i := range before {
		if i < len(after) && before[i].ScheduledDate != after[i].ScheduledDate {
			n++
		}
	}
	return n
}

func nextWorkingStart(parser *datemath.Parser, hours model.WorkingHours, at, now time.Time) (time.Time, bool) {
	day := hours.For(at.Weekday())
	if !day.Enabled {
		return time.Time{}, false
	}

	candidate := parser.At(at, day.Start)
	if candidate.After(now) {
		return candidate, true
	}

	next := at.AddDate(0, 0, 1)
	nextDay := hours.For(next.Weekday())
	if !nextDay.Enabled {
		return time.Time{}, false
	}
	return parser.At(next, nextDay.Start), true
}

func relocationReasoning(reasoning string, candidate time.Time) string {
	note := fmt.Sprintf("Moved to %s %s because the proposed time had already passed.",
		candidate.Weekday(), candidate.Format("Jan 2 15:04"))
	reasoning = strings.TrimSpace(reasoning)
	if reasoning == "" {
		return note
	}
	return reasoning + " " + note
}
