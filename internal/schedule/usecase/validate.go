package usecase

import (
	"context"

	"github.com/nikitalobanov12/dayflow-sub002/internal/schedule"
)

// Validate runs the placement validator with the current time.
func (uc *implUseCase) Validate(ctx context.Context, input schedule.ValidateInput) (schedule.ValidateOutput, error) {
	placements, err := schedule.ValidatePlacements(input.Placements, input.WorkingHours, uc.timezone(input.Timezone), uc.now())
	if err != nil {
		return schedule.ValidateOutput{}, err
	}

	return schedule.ValidateOutput{
		Placements: placements,
		Relocated:  schedule.CountRelocated(input.Placements, placements),
	}, nil
}
