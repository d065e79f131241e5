package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository"
)

// Records returns the user's cached records keyed by composite key. Keys that
// do not parse are returned with a zero Record.
func (r *implRepository) Records(ctx context.Context, sc model.Scope) (map[string]recurring.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.loadLocked(sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Records"), err)
		return nil, err
	}

	out := make(map[string]recurring.Record, len(m))
	for k, e := range m {
		key, err := recurring.ParseInstanceKey(k)
		if err != nil {
			out[k] = recurring.Record{}
			continue
		}
		out[k] = recurring.Record{Key: key, CompletedAt: e.CompletedAt}
	}
	return out, nil
}

func (r *implRepository) Clear(ctx context.Context, sc model.Scope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.slots.Delete(slotName(sc.UserID)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Clear"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	r.users[sc.UserID] = make(map[string]entry)
	return nil
}

func (r *implRepository) UserIDs(ctx context.Context) ([]string, error) {
	names, err := r.slots.Names(SlotPrefix)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UserIDs"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToListIDs, err)
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if id := strings.TrimPrefix(n, SlotPrefix); id != "" {
			seen[id] = true
		}
	}

	r.mu.Lock()
	for id, m := range r.users {
		if len(m) > 0 {
			seen[id] = true
		}
	}
	r.mu.Unlock()

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
