package repository

import (
	"context"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
)

// CacheRepository is the ephemeral per-user ledger kept in a local slot.
type CacheRepository interface {
	recurring.Ledger

	// Records returns a copy of every cached record of the user.
	Records(ctx context.Context, sc model.Scope) (map[string]recurring.Record, error)
	// Clear drops the user's slot.
	Clear(ctx context.Context, sc model.Scope) error
	// UserIDs lists users that have a cached slot.
	UserIDs(ctx context.Context) ([]string, error)
}

// DurableRepository is the relational ledger.
type DurableRepository interface {
	recurring.Ledger

	// Import upserts records in one transaction. Either all are stored or none.
	Import(ctx context.Context, sc model.Scope, records []recurring.Record) error
	// UserIDs lists users that have stored instances.
	UserIDs(ctx context.Context) ([]string, error)
}
