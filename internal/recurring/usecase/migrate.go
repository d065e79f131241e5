package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
)

// Migrate copies the user's cached records into the durable store and clears
// the cache only when every record was stored. On failure the cache is left
// untouched.
func (uc *implUseCase) Migrate(ctx context.Context, sc model.Scope) (recurring.MigrateOutput, error) {
	if uc.durable == nil {
		return recurring.MigrateOutput{}, recurring.ErrDurableUnavailable
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.migrated[sc.UserID] = true
	return uc.migrateLocked(ctx, sc)
}

// ensureMigrated runs the lazy migration the first time a user touches the
// durable ledger. A failed attempt is not retried until the next process or
// an explicit Migrate.
func (uc *implUseCase) ensureMigrated(ctx context.Context, sc model.Scope) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.migrated[sc.UserID] {
		return
	}
	uc.migrated[sc.UserID] = true

	if _, err := uc.migrateLocked(ctx, sc); err != nil {
		uc.l.Warnf(ctx, "recurring.usecase.ensureMigrated: user=%s: %v", sc.UserID, err)
	}
}

// migrateLocked does the work of Migrate. Callers hold uc.mu.
func (uc *implUseCase) migrateLocked(ctx context.Context, sc model.Scope) (recurring.MigrateOutput, error) {
	var out recurring.MigrateOutput

	cached, err := uc.cache.Records(ctx, sc)
	if err != nil {
		return out, fmt.Errorf("%w: %v", recurring.ErrMigrationFailed, err)
	}
	if len(cached) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(cached))
	for k := range cached {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]recurring.Record, 0, len(cached))
	for _, k := range keys {
		if _, err := recurring.ParseInstanceKey(k); err != nil {
			uc.l.Warnf(ctx, "recurring.usecase.Migrate: user=%s skipping key: %v", sc.UserID, err)
			out.Skipped++
			continue
		}
		records = append(records, cached[k])
	}

	if err := uc.durable.Import(ctx, sc, records); err != nil {
		return recurring.MigrateOutput{}, fmt.Errorf("%w: %v", recurring.ErrMigrationFailed, err)
	}
	out.Migrated = len(records)

	if err := uc.cache.Clear(ctx, sc); err != nil {
		// Records are stored; the next run re-imports them idempotently.
		uc.l.Warnf(ctx, "recurring.usecase.Migrate: user=%s clear cache: %v", sc.UserID, err)
		return out, nil
	}
	out.Cleared = true

	uc.l.Infof(ctx, "recurring.usecase.Migrate: user=%s migrated=%d skipped=%d", sc.UserID, out.Migrated, out.Skipped)
	return out, nil
}
