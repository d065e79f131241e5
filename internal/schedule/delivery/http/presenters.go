package http

import (
	"strings"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/schedule"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
)

// --- Request DTOs ---

type dayHoursReq struct {
	Enabled bool           `json:"enabled"`
	Start   datemath.Clock `json:"start" swaggertype:"string" example:"09:00"`
	End     datemath.Clock `json:"end"   swaggertype:"string" example:"17:00"`
}

// workingHoursReq is keyed by lowercase weekday name. Missing days are off;
// a missing map means Monday to Friday 09:00-17:00.
type workingHoursReq map[string]dayHoursReq

func (r workingHoursReq) validate() error {
	for name, d := range r {
		if _, ok := datemath.ParseWeekday(name); !ok {
			return errUnknownDay
		}
		if d.Enabled && !d.Start.Before(d.End) {
			return errInvalidHours
		}
	}
	return nil
}

func (r workingHoursReq) toModel() model.WorkingHours {
	if r == nil {
		return model.DefaultWorkingHours()
	}
	var w model.WorkingHours
	for name, d := range r {
		day, _ := datemath.ParseWeekday(name)
		w[day] = model.DayHours{Enabled: d.Enabled, Start: d.Start, End: d.End}
	}
	return w
}

type taskReq struct {
	ID            int64      `json:"id"             binding:"required"`
	Title         string     `json:"title"          binding:"max=500"`
	Description   string     `json:"description"    binding:"max=5000"`
	TimeEstimate  int        `json:"time_estimate"  binding:"min=0"`
	Status        string     `json:"status"         binding:"omitempty,oneof=backlog this-week today done"`
	Priority      int        `json:"priority"       binding:"omitempty,min=1,max=4"`
	DueDate       *time.Time `json:"due_date"`
	ScheduledDate string     `json:"scheduled_date"`
}

func (r taskReq) toModel() model.Task {
	status := model.TaskStatus(r.Status)
	if status == "" {
		status = model.TaskStatusBacklog
	}
	priority := model.Priority(r.Priority)
	if priority == 0 {
		priority = model.PriorityMedium
	}
	return model.Task{
		ID:            r.ID,
		Title:         strings.TrimSpace(r.Title),
		Description:   r.Description,
		TimeEstimate:  r.TimeEstimate,
		Status:        status,
		Priority:      priority,
		DueDate:       r.DueDate,
		ScheduledDate: r.ScheduledDate,
	}
}

type planReq struct {
	Tasks        []taskReq       `json:"tasks"         binding:"required,min=1,dive"`
	WorkingHours workingHoursReq `json:"working_hours"`
	Timezone     string          `json:"timezone"`
	Publish      bool            `json:"publish"`
}

func (r planReq) validate() error {
	seen := make(map[int64]bool, len(r.Tasks))
	for _, t := range r.Tasks {
		if seen[t.ID] {
			return errDuplicateTask
		}
		seen[t.ID] = true
	}
	return r.WorkingHours.validate()
}

func (r planReq) toInput() schedule.PlanInput {
	tasks := make([]model.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = t.toModel()
	}
	return schedule.PlanInput{
		Tasks:        tasks,
		WorkingHours: r.WorkingHours.toModel(),
		Timezone:     r.Timezone,
		Publish:      r.Publish,
	}
}

type placementReq struct {
	ID            int64  `json:"id"             binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	TimeEstimate  int    `json:"time_estimate"  binding:"min=0"`
	Reasoning     string `json:"reasoning"`
}

type validateReq struct {
	Placements   []placementReq  `json:"placements"    binding:"required,dive"`
	WorkingHours workingHoursReq `json:"working_hours"`
	Timezone     string          `json:"timezone"`
}

func (r validateReq) validate() error {
	return r.WorkingHours.validate()
}

func (r validateReq) toInput() schedule.ValidateInput {
	placements := make([]schedule.Placement, len(r.Placements))
	for i, p := range r.Placements {
		placements[i] = schedule.Placement{
			ID:            p.ID,
			ScheduledDate: p.ScheduledDate,
			TimeEstimate:  p.TimeEstimate,
			Reasoning:     p.Reasoning,
		}
	}
	return schedule.ValidateInput{
		Placements:   placements,
		WorkingHours: r.WorkingHours.toModel(),
		Timezone:     r.Timezone,
	}
}

// --- Response DTOs ---

type placementResp struct {
	ID            int64  `json:"id"`
	ScheduledDate string `json:"scheduled_date"`
	TimeEstimate  int    `json:"time_estimate"`
	Reasoning     string `json:"reasoning"`
}

func newPlacementResps(ps []schedule.Placement) []placementResp {
	out := make([]placementResp, len(ps))
	for i, p := range ps {
		out[i] = placementResp{
			ID:            p.ID,
			ScheduledDate: p.ScheduledDate,
			TimeEstimate:  p.TimeEstimate,
			Reasoning:     p.Reasoning,
		}
	}
	return out
}

type taskResp struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	TimeEstimate  int        `json:"time_estimate"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	ScheduledDate string     `json:"scheduled_date,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		TimeEstimate:  t.TimeEstimate,
		Status:        string(t.Status),
		Priority:      t.Priority.String(),
		DueDate:       t.DueDate,
		ScheduledDate: t.ScheduledDate,
	}
}

type planResp struct {
	Tasks       []taskResp      `json:"tasks"`
	Placements  []placementResp `json:"placements"`
	Suggestions []string        `json:"suggestions"`
	Relocated   int             `json:"relocated"`
	Published   int             `json:"published"`
}

func (h *handler) newPlanResp(out schedule.PlanOutput) planResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	suggestions := out.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return planResp{
		Tasks:       tasks,
		Placements:  newPlacementResps(out.Placements),
		Suggestions: suggestions,
		Relocated:   out.Relocated,
		Published:   out.Published,
	}
}

type validateResp struct {
	Placements []placementResp `json:"placements"`
	Relocated  int             `json:"relocated"`
}

func (h *handler) newValidateResp(out schedule.ValidateOutput) validateResp {
	return validateResp{
		Placements: newPlacementResps(out.Placements),
		Relocated:  out.Relocated,
	}
}
