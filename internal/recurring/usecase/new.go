package usecase

import (
	"sync"

	"github.com/nikitalobanov12/dayflow-sub002/config"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository"
	pkgLog "github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	cache         repository.CacheRepository
	durable       repository.DurableRepository // nil when the local backend is active
	retentionDays int

	mu       sync.Mutex
	migrated map[string]bool // users whose lazy migration ran in this process
}

// New creates a ledger UseCase. Passing a nil durable repository selects
// the local cache backend.
func New(l pkgLog.Logger, cache repository.CacheRepository, durable repository.DurableRepository, retentionDays int) *implUseCase {
	if cache == nil {
		panic("recurring/usecase: cache repository is required")
	}
	if retentionDays <= 0 {
		retentionDays = recurring.DefaultRetentionDays
	}
	return &implUseCase{
		l:             l,
		cache:         cache,
		durable:       durable,
		retentionDays: retentionDays,
		migrated:      make(map[string]bool),
	}
}

func (uc *implUseCase) Backend() string {
	if uc.durable != nil {
		return config.LedgerBackendRemote
	}
	return config.LedgerBackendLocal
}

func (uc *implUseCase) RetentionDays() int {
	return uc.retentionDays
}
