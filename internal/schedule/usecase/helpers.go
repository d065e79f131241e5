package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/schedule"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/gcalendar"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

func parseProposal(text string) (schedule.Proposal, error) {
	var p schedule.Proposal
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &p); err != nil {
		return schedule.Proposal{}, fmt.Errorf("%w: %v", schedule.ErrInvalidProposal, err)
	}
	return p, nil
}

// schedulableTasks returns the open tasks, most urgent first, capped at max.
func schedulableTasks(tasks []model.Task, max int) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != model.TaskStatusDone {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// keepKnown drops placements for ids that were not asked for, and repeats.
func keepKnown(placements []schedule.Placement, tasks []model.Task) (kept []schedule.Placement, dropped int) {
	known := make(map[int64]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}
	seen := make(map[int64]bool, len(placements))
	for _, p := range placements {
		if !known[p.ID] || seen[p.ID] {
			dropped++
			continue
		}
		seen[p.ID] = true
		kept = append(kept, p)
	}
	return kept, dropped
}

// mergePlacements writes ScheduledDate and TimeEstimate into matching tasks.
// Tasks keep their order; those without a placement are unchanged.
func mergePlacements(tasks []model.Task, placements []schedule.Placement) []model.Task {
	byID := make(map[int64]schedule.Placement, len(placements))
	for _, p := range placements {
		byID[p.ID] = p
	}

	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if p, ok := byID[t.ID]; ok {
			t.ScheduledDate = p.ScheduledDate
			if p.TimeEstimate > 0 {
				t.TimeEstimate = p.TimeEstimate
			}
		}
		out[i] = t
	}
	return out
}

// busySlots loads calendar events for the planning window. Events published
// earlier for one of the tasks being planned are dropped, since the planner
// is about to place those tasks again. Calendar problems never fail planning.
func (uc *implUseCase) busySlots(ctx context.Context, now time.Time, tasks []model.Task) []gcalendar.Event {
	if uc.calendar == nil {
		return nil
	}
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.opts.CalendarID,
		TimeMin:    now,
		TimeMax:    now.Add(busyWindow),
		MaxResults: maxBusyEvents,
	})
	if err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.busySlots: %v", err)
		return nil
	}

	planned := make(map[int64]bool, len(tasks))
	for _, t := range tasks {
		planned[t.ID] = true
	}
	busy := events[:0]
	for _, e := range events {
		if e.TaskID != 0 && planned[e.TaskID] {
			continue
		}
		busy = append(busy, e)
	}
	return busy
}

// publish creates one calendar event per placement that lies in the future.
func (uc *implUseCase) publish(ctx context.Context, parser *datemath.Parser, tasks []model.Task, placements []schedule.Placement, now time.Time) int {
	if uc.calendar == nil {
		return 0
	}

	titles := make(map[int64]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}

	published := 0
	for _, p := range placements {
		start, err := parser.ParseLocal(p.ScheduledDate)
		if err != nil || !start.After(now) {
			continue
		}
		duration := time.Duration(p.TimeEstimate) * time.Minute
		if duration <= 0 {
			duration = defaultEventDuration
		}

		_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.opts.CalendarID,
			TaskID:      p.ID,
			Summary:     titles[p.ID],
			Description: p.Reasoning,
			StartTime:   start,
			EndTime:     start.Add(duration),
			Timezone:    parser.Location().String(),
		})
		if err != nil {
			uc.l.Warnf(ctx, "schedule.usecase.publish: task %d: %v", p.ID, err)
			continue
		}
		published++
	}
	return published
}
