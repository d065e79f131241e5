package usecase

import (
	"context"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
)

// RunMaintenance is the startup job. For every user with cached records it
// migrates them when the durable backend is active, or cleans up old ones
// otherwise. With the durable backend it also cleans up durable rows.
func (uc *implUseCase) RunMaintenance(ctx context.Context) recurring.MaintenanceOutput {
	var out recurring.MaintenanceOutput

	users, err := uc.cache.UserIDs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.RunMaintenance: list cached users: %v", err)
		out.Failed++
	}

	for _, id := range users {
		sc := model.Scope{UserID: id}
		out.Users++

		if uc.durable == nil {
			out.Removed += uc.cache.CleanupOldInstances(ctx, sc, uc.retentionDays)
			continue
		}

		res, err := uc.Migrate(ctx, sc)
		if err != nil {
			uc.l.Warnf(ctx, "recurring.usecase.RunMaintenance: user=%s: %v", id, err)
			out.Failed++
			continue
		}
		out.Migrated += res.Migrated
	}

	if uc.durable != nil {
		durableUsers, err := uc.durable.UserIDs(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "recurring.usecase.RunMaintenance: list durable users: %v", err)
			out.Failed++
		}
		for _, id := range durableUsers {
			out.Removed += uc.durable.CleanupOldInstances(ctx, model.Scope{UserID: id}, uc.retentionDays)
		}
	}

	uc.l.Infof(ctx, "recurring.usecase.RunMaintenance: backend=%s users=%d migrated=%d removed=%d failed=%d",
		uc.Backend(), out.Users, out.Migrated, out.Removed, out.Failed)
	return out
}
