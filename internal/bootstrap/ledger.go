// Package bootstrap wires configured components shared by the API server and
// the ledger CLI.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nikitalobanov12/dayflow-sub002/config"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository/cache"
	durableRepo "github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository/sqlite"
	recurringUC "github.com/nikitalobanov12/dayflow-sub002/internal/recurring/usecase"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/kvslot"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/sqlite"
)

// Ledger is a wired recurring ledger and the resources it holds.
type Ledger struct {
	UseCase recurring.UseCase
	db      *gorm.DB
}

// Close releases the database, if one was opened.
func (lg *Ledger) Close() error {
	if lg.db == nil {
		return nil
	}
	return sqlite.Close(lg.db)
}

// NewLedger builds the recurring ledger from configuration. The remote
// backend falls back to the local cache when the database cannot be opened
// or migrated.
func NewLedger(ctx context.Context, cfg config.LedgerConfig, dbCfg config.DatabaseConfig, loc *time.Location, l log.Logger) (*Ledger, error) {
	slots, err := kvslot.New(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.NewLedger: %w", err)
	}
	cacheRepo := cache.New(l, slots, loc)

	lg := &Ledger{}
	var durable repository.DurableRepository
	if cfg.Backend == config.LedgerBackendRemote {
		durable, lg.db = openDurable(ctx, dbCfg, loc, l)
	}

	lg.UseCase = recurringUC.New(l, cacheRepo, durable, cfg.RetentionDays)
	l.Infof(ctx, "Recurring ledger backend: %s", lg.UseCase.Backend())
	return lg, nil
}

func openDurable(ctx context.Context, dbCfg config.DatabaseConfig, loc *time.Location, l log.Logger) (repository.DurableRepository, *gorm.DB) {
	db, err := sqlite.Open(dbCfg.DSN, l)
	if err != nil {
		l.Warnf(ctx, "Durable ledger unavailable, using local cache: %v", err)
		return nil, nil
	}
	durable, err := durableRepo.New(db, l, loc)
	if err != nil {
		l.Warnf(ctx, "Durable ledger schema failed, using local cache: %v", err)
		_ = sqlite.Close(db)
		return nil, nil
	}
	return durable, db
}
