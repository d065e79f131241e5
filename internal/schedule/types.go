package schedule

import (
	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
)

// Placement is one proposed slot for a task. ScheduledDate is a local
// wall-clock timestamp (YYYY-MM-DDTHH:MM:SS) in the user's timezone.
type Placement struct {
	ID            int64  `json:"id"`
	ScheduledDate string `json:"scheduledDate"`
	TimeEstimate  int    `json:"timeEstimate"`
	Reasoning     string `json:"reasoning"`
}

// Proposal is the JSON document the planner model answers with.
type Proposal struct {
	Tasks       []Placement `json:"tasks"`
	Suggestions []string    `json:"suggestions"`
}

// --- UseCase Inputs ---

type PlanInput struct {
	Tasks        []model.Task
	WorkingHours model.WorkingHours
	Timezone     string // empty means the service default
	Publish      bool   // also create calendar events for the placements
}

type ValidateInput struct {
	Placements   []Placement
	WorkingHours model.WorkingHours
	Timezone     string
}

// --- UseCase Outputs ---

type PlanOutput struct {
	Tasks       []model.Task // input tasks with placements merged in, same order
	Placements  []Placement
	Suggestions []string
	Relocated   int
	Published   int
}

type ValidateOutput struct {
	Placements []Placement
	Relocated  int
}
