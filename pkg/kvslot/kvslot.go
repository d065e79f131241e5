// Package kvslot is a small file-backed key-value store. Each named slot
// holds one opaque value persisted as its own file under a directory.
package kvslot

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const fileExt = ".json"

// ErrEmptyName is returned for a blank slot name.
var ErrEmptyName = errors.New("kvslot: empty slot name")

// Store persists named slots in a directory.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// New opens (creating if needed) a slot directory.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvslot: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the value of a slot. ok is false when the slot does not exist.
func (s *Store) Get(name string) (value []byte, ok bool, err error) {
	path, err := s.path(name)
	if err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

// Set replaces the value of a slot. The write goes to a temp file first so
// readers never observe a partial value.
func (s *Store) Set(name string, value []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".slot-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes a slot. Deleting a missing slot is not an error.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Names lists the slots whose name starts with prefix, sorted.
func (s *Store) Names(prefix string) ([]string, error) {
	s.mu.RLock()
	entries, err := os.ReadDir(s.dir)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		name, err := url.PathUnescape(strings.TrimSuffix(e.Name(), fileExt))
		if err != nil {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) path(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	return filepath.Join(s.dir, url.PathEscape(name)+fileExt), nil
}
