// Package sqlite opens gorm databases backed by SQLite files.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	pkgLog "github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

// DefaultDSN is used when no DSN is configured.
const DefaultDSN = "dayflow.db"

// Open opens the database at dsn, creating its parent directory when needed.
// gorm output goes through l at warn level.
func Open(dsn string, l pkgLog.Logger) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	if err := ensureDir(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(writer{l: l}, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureDir creates the parent dir for a SQLite file if needed.
func ensureDir(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

// writer adapts pkg/log to gorm's logger.Writer.
type writer struct {
	l pkgLog.Logger
}

func (w writer) Printf(format string, args ...interface{}) {
	if w.l == nil {
		return
	}
	w.l.Warnf(context.Background(), format, args...)
}
