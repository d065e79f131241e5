package schedule

import (
	"context"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Plan asks the planner model for placements, corrects them and merges
	// them into the tasks.
	Plan(ctx context.Context, sc model.Scope, input PlanInput) (PlanOutput, error)
	// Validate corrects already proposed placements against the current time.
	Validate(ctx context.Context, input ValidateInput) (ValidateOutput, error)
}
