package cache

import (
	"encoding/json"
	"fmt"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository"
)

// loadLocked returns the user's map, reading the slot on first use.
// Callers hold r.mu.
func (r *implRepository) loadLocked(userID string) (map[string]entry, error) {
	if m, ok := r.users[userID]; ok {
		return m, nil
	}

	b, ok, err := r.slots.Get(slotName(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	m := make(map[string]entry)
	if ok && len(b) > 0 {
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrCorruptSlot, err)
		}
	}
	r.users[userID] = m
	return m, nil
}

// saveLocked writes the whole user map back to its slot. Callers hold r.mu.
func (r *implRepository) saveLocked(userID string, m map[string]entry) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := r.slots.Set(slotName(userID), b); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}
