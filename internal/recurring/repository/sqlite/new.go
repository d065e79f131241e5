package sqlite

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

type implRepository struct {
	db  *gorm.DB
	l   log.Logger
	now func() time.Time
}

// New creates a gorm-backed durable ledger and migrates its table.
// Times are taken in loc.
func New(db *gorm.DB, l log.Logger, loc *time.Location) (repository.DurableRepository, error) {
	if db == nil {
		panic("recurring/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if err := db.AutoMigrate(&instance{}); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", tableName, err)
	}
	return &implRepository{
		db:  db,
		l:   l,
		now: func() time.Time { return time.Now().In(loc) },
	}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("recurring/repository/sqlite.%s", method)
}
