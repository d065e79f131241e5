package usecase

import (
	"context"
	"fmt"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/schedule"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/llmprovider"
)

// Plan asks the planner for placements of the open tasks, corrects past ones
// and merges the result back into the tasks.
func (uc *implUseCase) Plan(ctx context.Context, sc model.Scope, input schedule.PlanInput) (schedule.PlanOutput, error) {
	if uc.llm == nil {
		return schedule.PlanOutput{}, schedule.ErrPlannerUnavailable
	}

	timezone := uc.timezone(input.Timezone)
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		return schedule.PlanOutput{}, fmt.Errorf("%w: %v", schedule.ErrInvalidTimezone, err)
	}
	now := uc.now().In(parser.Location())

	candidates := schedulableTasks(input.Tasks, uc.opts.MaxTasks)
	if len(candidates) == 0 {
		return schedule.PlanOutput{Tasks: input.Tasks}, nil
	}

	busy := uc.busySlots(ctx, now, candidates)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Parts: []llmprovider.Part{{Text: systemPrompt}}},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: buildPlanPrompt(candidates, input.WorkingHours, timezone, now, busy)}}},
		},
		Temperature: planTemperature,
		MaxTokens:   planMaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Plan: user=%s: %v", sc.UserID, err)
		return schedule.PlanOutput{}, fmt.Errorf("%w: %v", schedule.ErrProposalFailed, err)
	}

	proposal, err := parseProposal(resp.Content.Text())
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Plan: user=%s raw=%q: %v", sc.UserID, resp.Content.Text(), err)
		return schedule.PlanOutput{}, err
	}

	placements, dropped := keepKnown(proposal.Tasks, candidates)
	if dropped > 0 {
		uc.l.Warnf(ctx, "schedule.usecase.Plan: dropped %d placement(s) for unknown or repeated tasks", dropped)
	}

	validated, err := schedule.ValidatePlacements(placements, input.WorkingHours, timezone, now)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Plan: ValidatePlacements: %v", err)
		return schedule.PlanOutput{}, fmt.Errorf("%w: %v", schedule.ErrInvalidProposal, err)
	}

	out := schedule.PlanOutput{
		Tasks:       mergePlacements(input.Tasks, validated),
		Placements:  validated,
		Suggestions: proposal.Suggestions,
		Relocated:   schedule.CountRelocated(placements, validated),
	}
	if input.Publish {
		out.Published = uc.publish(ctx, parser, input.Tasks, validated, now)
	}

	uc.l.Infof(ctx, "schedule.usecase.Plan: user=%s provider=%s placed=%d relocated=%d published=%d",
		sc.UserID, resp.ProviderName, len(validated), out.Relocated, out.Published)

	return out, nil
}

func (uc *implUseCase) timezone(requested string) string {
	if requested != "" {
		return requested
	}
	return uc.opts.Timezone
}
