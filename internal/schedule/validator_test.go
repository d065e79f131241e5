package schedule

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
)

const newYork = "America/New_York"

// Monday 2024-06-10 14:00 in New York.
func mondayAfternoon(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(newYork)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return time.Date(2024, 6, 10, 14, 0, 0, 0, loc)
}

func TestValidatePlacements(t *testing.T) {
	now := mondayAfternoon(t)

	tuesdayOff := model.DefaultWorkingHours()
	tuesdayOff[time.Tuesday].Enabled = false

	lateStart := model.DefaultWorkingHours()
	lateStart[time.Monday].Start = datemath.Clock{Hour: 15, Minute: 30}

	tests := []struct {
		name     string
		hours    model.WorkingHours
		in       string
		want     string
		relocate bool
	}{
		{name: "future placement untouched", hours: model.DefaultWorkingHours(), in: "2024-06-10T15:00:00", want: "2024-06-10T15:00:00"},
		{name: "past today moves to next day start", hours: model.DefaultWorkingHours(), in: "2024-06-10T08:00:00", want: "2024-06-11T09:00:00", relocate: true},
		{name: "exactly now counts as past", hours: model.DefaultWorkingHours(), in: "2024-06-10T14:00:00", want: "2024-06-11T09:00:00", relocate: true},
		{name: "next day disabled stays", hours: tuesdayOff, in: "2024-06-10T08:00:00", want: "2024-06-10T08:00:00"},
		{name: "same day start still ahead", hours: lateStart, in: "2024-06-10T08:00:00", want: "2024-06-10T15:30:00", relocate: true},
		{name: "disabled day stays", hours: model.DefaultWorkingHours(), in: "2024-06-09T10:00:00", want: "2024-06-09T10:00:00"},
		{name: "one day advance only", hours: model.DefaultWorkingHours(), in: "2024-06-04T10:00:00", want: "2024-06-05T09:00:00", relocate: true},
		{name: "offset timestamp keeps its instant", hours: model.DefaultWorkingHours(), in: "2024-06-10T20:00:00Z", want: "2024-06-10T20:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []Placement{{ID: 1, ScheduledDate: tt.in, TimeEstimate: 30, Reasoning: "focus block"}}

			got, err := ValidatePlacements(in, tt.hours, newYork, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got[0].ScheduledDate != tt.want {
				t.Errorf("ScheduledDate = %s, want %s", got[0].ScheduledDate, tt.want)
			}
			if got[0].TimeEstimate != 30 || got[0].ID != 1 {
				t.Errorf("other fields changed: %+v", got[0])
			}

			moved := got[0].Reasoning != "focus block"
			if moved != tt.relocate {
				t.Errorf("reasoning changed = %v, want %v (%q)", moved, tt.relocate, got[0].Reasoning)
			}
			if tt.relocate && !strings.HasPrefix(got[0].Reasoning, "focus block ") {
				t.Errorf("original reasoning not kept: %q", got[0].Reasoning)
			}
			if in[0].ScheduledDate != tt.in {
				t.Errorf("input slice was modified")
			}
		})
	}
}

func TestValidatePlacements_OrderAndLength(t *testing.T) {
	now := mondayAfternoon(t)
	in := []Placement{
		{ID: 3, ScheduledDate: "2024-06-12T10:00:00"},
		{ID: 1, ScheduledDate: "2024-06-10T09:00:00"},
		{ID: 2, ScheduledDate: "2024-06-11T11:00:00"},
	}

	got, err := ValidatePlacements(in, model.DefaultWorkingHours(), newYork, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i].ID != in[i].ID {
			t.Errorf("position %d: id %d, want %d", i, got[i].ID, in[i].ID)
		}
	}
	if n := CountRelocated(in, got); n != 1 {
		t.Errorf("CountRelocated = %d, want 1", n)
	}
}

func TestValidatePlacements_Idempotent(t *testing.T) {
	now := mondayAfternoon(t)
	in := []Placement{{ID: 1, ScheduledDate: "2024-06-10T08:00:00"}}

	once, err := ValidatePlacements(in, model.DefaultWorkingHours(), newYork, now)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := ValidatePlacements(once, model.DefaultWorkingHours(), newYork, now)
	if err != nil {
		t.Fatal(err)
	}
	if once[0] != twice[0] {
		t.Errorf("second pass changed the placement: %+v -> %+v", once[0], twice[0])
	}
}

func TestValidatePlacements_Errors(t *testing.T) {
	now := mondayAfternoon(t)

	_, err := ValidatePlacements([]Placement{
		{ID: 1, ScheduledDate: "2024-06-12T10:00:00"},
		{ID: 2, ScheduledDate: "next tuesday-ish"},
	}, model.DefaultWorkingHours(), newYork, now)
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp, got %v", err)
	}

	_, err = ValidatePlacements(nil, model.DefaultWorkingHours(), "Mars/Olympus_Mons", now)
	if !errors.Is(err, ErrInvalidTimezone) {
		t.Errorf("expected ErrInvalidTimezone, got %v", err)
	}
}

func TestValidatePlacements_Empty(t *testing.T) {
	got, err := ValidatePlacements(nil, model.DefaultWorkingHours(), newYork, mondayAfternoon(t))
	if err != nil || len(got) != 0 {
		t.Errorf("got %v, %v", got, err)
	}
}
