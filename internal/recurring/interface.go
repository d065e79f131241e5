package recurring

import (
	"context"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
)

// Ledger records which dated instances of a recurring task are complete.
// Store failures are logged by the implementation and reported as false,
// an empty map or 0.
type Ledger interface {
	// MarkCompleted upserts the instance with the current time.
	MarkCompleted(ctx context.Context, sc model.Scope, taskID int64, date string) bool
	// MarkIncomplete removes the instance. Removing an absent one succeeds.
	MarkIncomplete(ctx context.Context, sc model.Scope, taskID int64, date string) bool
	IsCompleted(ctx context.Context, sc model.Scope, taskID int64, date string) bool
	// GetCompletionMap returns every completed key of taskID mapped to true.
	GetCompletionMap(ctx context.Context, sc model.Scope, taskID int64) map[string]bool
	// CleanupOldInstances removes instances dated more than retentionDays
	// days ago and returns how many were removed.
	CleanupOldInstances(ctx context.Context, sc model.Scope, retentionDays int) int
}

//go:generate mockery --name UseCase
type UseCase interface {
	Ledger

	// Migrate moves the user's cached records into the durable store.
	Migrate(ctx context.Context, sc model.Scope) (MigrateOutput, error)
	// RunMaintenance migrates or cleans up every known user.
	RunMaintenance(ctx context.Context) MaintenanceOutput
	// Backend names the active store.
	Backend() string
	// RetentionDays is the configured default retention.
	RetentionDays() int
}
