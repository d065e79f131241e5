package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository/cache"
	durableRepo "github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository/sqlite"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/kvslot"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
	pkgSqlite "github.com/nikitalobanov12/dayflow-sub002/pkg/sqlite"
)

var (
	ctx   = context.Background()
	alice = model.Scope{UserID: "alice"}
)

// failingImport wraps a durable repository and rejects every import.
type failingImport struct {
	repository.DurableRepository
	calls int
}

func (f *failingImport) Import(ctx context.Context, sc model.Scope, records []recurring.Record) error {
	f.calls++
	return errors.New("connection reset")
}

func newCache(t *testing.T) repository.CacheRepository {
	t.Helper()
	store, err := kvslot.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return cache.New(log.NewNop(), store, time.UTC)
}

func newDurable(t *testing.T) repository.DurableRepository {
	t.Helper()
	db, err := pkgSqlite.Open(filepath.Join(t.TempDir(), "ledger.db"), log.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { pkgSqlite.Close(db) })
	repo, err := durableRepo.New(db, log.NewNop(), time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func TestLocalBackend(t *testing.T) {
	c := newCache(t)
	uc := New(log.NewNop(), c, nil, 0)

	if uc.Backend() != "local" || uc.RetentionDays() != recurring.DefaultRetentionDays {
		t.Fatalf("backend=%s retention=%d", uc.Backend(), uc.RetentionDays())
	}
	if !uc.MarkCompleted(ctx, alice, 1, today()) || !c.IsCompleted(ctx, alice, 1, today()) {
		t.Error("local backend should write to the cache")
	}
	if _, err := uc.Migrate(ctx, alice); !errors.Is(err, recurring.ErrDurableUnavailable) {
		t.Errorf("Migrate without durable store: %v", err)
	}
}

func TestLazyMigration(t *testing.T) {
	c := newCache(t)
	c.MarkCompleted(ctx, alice, 1, today())
	c.MarkCompleted(ctx, alice, 2, today())
	d := newDurable(t)

	uc := New(log.NewNop(), c, d, 90)
	if uc.Backend() != "remote" {
		t.Fatalf("backend = %s", uc.Backend())
	}

	// The first read triggers migration.
	if !uc.IsCompleted(ctx, alice, 1, today()) {
		t.Fatal("migrated record not visible")
	}
	if !d.IsCompleted(ctx, alice, 2, today()) {
		t.Error("record 2 not in durable store")
	}
	if recs, _ := c.Records(ctx, alice); len(recs) != 0 {
		t.Errorf("cache not cleared after migration: %v", recs)
	}

	if !uc.MarkIncomplete(ctx, alice, 1, today()) || d.IsCompleted(ctx, alice, 1, today()) {
		t.Error("writes should go to the durable store")
	}
}

func TestMigrationFailurePreservesCache(t *testing.T) {
	c := newCache(t)
	c.MarkCompleted(ctx, alice, 1, today())
	d := &failingImport{DurableRepository: newDurable(t)}

	uc := New(log.NewNop(), c, d, 90)
	_, err := uc.Migrate(ctx, alice)
	if !errors.Is(err, recurring.ErrMigrationFailed) {
		t.Fatalf("expected ErrMigrationFailed, got %v", err)
	}
	if !c.IsCompleted(ctx, alice, 1, today()) {
		t.Error("cache must survive a failed migration")
	}

	// The lazy path has already been attempted by the explicit call.
	uc.IsCompleted(ctx, alice, 1, today())
	if d.calls != 1 {
		t.Errorf("import attempted %d times, want 1", d.calls)
	}
}

func TestLazyMigrationRunsOncePerUser(t *testing.T) {
	c := newCache(t)
	d := &failingImport{DurableRepository: newDurable(t)}
	c.MarkCompleted(ctx, alice, 1, today())

	uc := New(log.NewNop(), c, d, 90)
	for i := 0; i < 3; i++ {
		uc.IsCompleted(ctx, alice, 1, today())
	}
	if d.calls != 1 {
		t.Errorf("import attempted %d times, want 1", d.calls)
	}
}

func TestMigrateEmptyCache(t *testing.T) {
	uc := New(log.NewNop(), newCache(t), newDurable(t), 90)
	out, err := uc.Migrate(ctx, alice)
	if err != nil || out.Migrated != 0 {
		t.Errorf("got %+v, %v", out, err)
	}
}

func TestRunMaintenance_Local(t *testing.T) {
	c := newCache(t)
	c.MarkCompleted(ctx, alice, 1, "2000-01-01")
	c.MarkCompleted(ctx, alice, 1, today())
	c.MarkCompleted(ctx, model.Scope{UserID: "bob"}, 1, "2000-01-01")

	out := New(log.NewNop(), c, nil, 90).RunMaintenance(ctx)
	if out.Users != 2 || out.Removed != 2 || out.Failed != 0 {
		t.Errorf("unexpected result %+v", out)
	}
	if !c.IsCompleted(ctx, alice, 1, today()) {
		t.Error("recent record removed")
	}
}

func TestRunMaintenance_Remote(t *testing.T) {
	c := newCache(t)
	c.MarkCompleted(ctx, alice, 1, today())
	d := newDurable(t)
	d.MarkCompleted(ctx, model.Scope{UserID: "carol"}, 3, "2000-01-01")

	out := New(log.NewNop(), c, d, 90).RunMaintenance(ctx)
	if out.Users != 1 || out.Migrated != 1 || out.Removed != 1 {
		t.Errorf("unexpected result %+v", out)
	}
	if !d.IsCompleted(ctx, alice, 1, today()) {
		t.Error("maintenance did not migrate")
	}
}

func TestCleanupUsesDefaultRetention(t *testing.T) {
	c := newCache(t)
	old := time.Now().UTC().AddDate(0, 0, -40).Format("2006-01-02")
	c.MarkCompleted(ctx, alice, 1, old)

	uc := New(log.NewNop(), c, nil, 30)
	if n := uc.CleanupOldInstances(ctx, alice, 0); n != 1 {
		t.Errorf("removed %d, want 1", n)
	}
}
