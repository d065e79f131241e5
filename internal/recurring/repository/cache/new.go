package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

// SlotPrefix namespaces the per-user slots in the key-value store.
const SlotPrefix = "recurring-task-instances:"

// Slots is the key-value store holding one JSON document per user.
// *kvslot.Store implements it.
type Slots interface {
	Get(name string) ([]byte, bool, error)
	Set(name string, value []byte) error
	Delete(name string) error
	Names(prefix string) ([]string, error)
}

// entry is the stored value of one instance.
type entry struct {
	CompletedAt time.Time `json:"completedAt"`
}

type implRepository struct {
	l     log.Logger
	slots Slots
	now   func() time.Time

	mu    sync.Mutex
	users map[string]map[string]entry // loaded slots by user id
}

// New creates a cache-backed ledger. Times are taken in loc.
func New(l log.Logger, slots Slots, loc *time.Location) repository.CacheRepository {
	if slots == nil {
		panic("recurring/repository/cache: slots is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{
		l:     l,
		slots: slots,
		now:   func() time.Time { return time.Now().In(loc) },
		users: make(map[string]map[string]entry),
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("recurring/repository/cache.%s", method)
}

func slotName(userID string) string {
	return SlotPrefix + userID
}
