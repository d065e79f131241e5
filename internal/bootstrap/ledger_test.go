package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/config"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

func TestNewLedger(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name        string
		backend     string
		dsn         string
		wantBackend string
	}{
		{"local", config.LedgerBackendLocal, "", config.LedgerBackendLocal},
		{"remote", config.LedgerBackendRemote, filepath.Join(dir, "db", "dayflow.db"), config.LedgerBackendRemote},
		// A directory cannot be opened as a database file.
		{"remote falls back", config.LedgerBackendRemote, dir, config.LedgerBackendLocal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, err := NewLedger(context.Background(),
				config.LedgerConfig{Backend: tt.backend, CacheDir: filepath.Join(t.TempDir(), "cache")},
				config.DatabaseConfig{DSN: tt.dsn},
				time.UTC, log.NewNop())
			if err != nil {
				t.Fatalf("NewLedger: %v", err)
			}
			defer lg.Close()

			if got := lg.UseCase.Backend(); got != tt.wantBackend {
				t.Errorf("Backend() = %q, want %q", got, tt.wantBackend)
			}
			if got := lg.UseCase.RetentionDays(); got != 90 {
				t.Errorf("RetentionDays() = %d, want 90", got)
			}
		})
	}
}
