package usecase

import (
	"context"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
)

// active returns the ledger serving sc. With the durable backend the user's
// cached records are migrated first, once per process.
func (uc *implUseCase) active(ctx context.Context, sc model.Scope) recurring.Ledger {
	if uc.durable == nil {
		return uc.cache
	}
	uc.ensureMigrated(ctx, sc)
	return uc.durable
}

func (uc *implUseCase) MarkCompleted(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	return uc.active(ctx, sc).MarkCompleted(ctx, sc, taskID, date)
}

func (uc *implUseCase) MarkIncomplete(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	return uc.active(ctx, sc).MarkIncomplete(ctx, sc, taskID, date)
}

func (uc *implUseCase) IsCompleted(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	return uc.active(ctx, sc).IsCompleted(ctx, sc, taskID, date)
}

func (uc *implUseCase) GetCompletionMap(ctx context.Context, sc model.Scope, taskID int64) map[string]bool {
	return uc.active(ctx, sc).GetCompletionMap(ctx, sc, taskID)
}

func (uc *implUseCase) CleanupOldInstances(ctx context.Context, sc model.Scope, retentionDays int) int {
	if retentionDays <= 0 {
		retentionDays = uc.retentionDays
	}
	return uc.active(ctx, sc).CleanupOldInstances(ctx, sc, retentionDays)
}
