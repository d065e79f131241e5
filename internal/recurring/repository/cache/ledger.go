package cache

import (
	"context"
	"strings"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
)

func (r *implRepository) MarkCompleted(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	key, err := recurring.NewInstanceKey(taskID, date)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("MarkCompleted"), err)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.loadLocked(sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkCompleted"), err)
		return false
	}

	k := key.String()
	prev, existed := m[k]
	m[k] = entry{CompletedAt: r.now()}

	if err := r.saveLocked(sc.UserID, m); err != nil {
		if existed {
			m[k] = prev
		} else {
			delete(m, k)
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkCompleted"), err)
		return false
	}
	return true
}

func (r *implRepository) MarkIncomplete(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	key, err := recurring.NewInstanceKey(taskID, date)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("MarkIncomplete"), err)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.loadLocked(sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkIncomplete"), err)
		return false
	}

	k := key.String()
	prev, existed := m[k]
	if !existed {
		return true
	}
	delete(m, k)

	if err := r.saveLocked(sc.UserID, m); err != nil {
		m[k] = prev
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkIncomplete"), err)
		return false
	}
	return true
}

func (r *implRepository) IsCompleted(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	key, err := recurring.NewInstanceKey(taskID, date)
	if err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.loadLocked(sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IsCompleted"), err)
		return false
	}
	_, ok := m[key.String()]
	return ok
}

func (r *implRepository) GetCompletionMap(ctx context.Context, sc model.Scope, taskID int64) map[string]bool {
	out := make(map[string]bool)

	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.loadLocked(sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCompletionMap"), err)
		return out
	}

	prefix := recurring.KeyPrefix(taskID)
	for k := range m {
		if strings.HasPrefix(k, prefix) {
			out[k] = true
		}
	}
	return out
}

func (r *implRepository) CleanupOldInstances(ctx context.Context, sc model.Scope, retentionDays int) int {
	if retentionDays <= 0 {
		retentionDays = recurring.DefaultRetentionDays
	}
	cutoff := recurring.CutoffDate(r.now(), retentionDays)

	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.loadLocked(sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CleanupOldInstances"), err)
		return 0
	}

	removed := make(map[string]entry)
	for k, e := range m {
		key, err := recurring.ParseInstanceKey(k)
		if err != nil {
			continue
		}
		if key.Date < cutoff {
			removed[k] = e
			delete(m, k)
		}
	}
	if len(removed) == 0 {
		return 0
	}

	if err := r.saveLocked(sc.UserID, m); err != nil {
		for k, e := range removed {
			m[k] = e
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CleanupOldInstances"), err)
		return 0
	}
	return len(removed)
}
