// Package storage persists week plans in a small string key/value store.
//
// Three backends implement Store: an in-memory map for tests and dry runs, a
// single JSON file, and a SQLite database. PlanStore layers the week-plan
// record format on top of any of them.
package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Get and Delete for an absent key.
var ErrNotFound = errors.New("key not found")

// MemoryPath selects the in-memory backend in Open.
const MemoryPath = ":memory:"

type Store interface {
	// Init creates the backing file or schema if needed and opens it. It is
	// safe to call on an existing store.
	Init() error
	Close() error

	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	// Keys lists keys starting with prefix in ascending order.
	Keys(prefix string) ([]string, error)

	// GetConfigPath returns the backing file, or MemoryPath.
	GetConfigPath() string
}

// Open picks a backend from path: MemoryPath for memory, a .json extension for
// the JSON file store and SQLite for anything else. The store is initialized
// before it is returned.
func Open(path string) (Store, error) {
	var s Store
	switch {
	case path == MemoryPath:
		s = NewMemoryStore()
	case strings.EqualFold(filepath.Ext(path), ".json"):
		s = NewJSONStore(path)
	default:
		s = NewSQLiteStore(path)
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}
