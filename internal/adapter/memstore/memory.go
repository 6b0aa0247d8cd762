// Package memstore keeps conjugation tables in memory. It backs batch dry
// runs and the browser build, where there is no file system for bbolt.
package memstore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/store"
	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/port"
)

type MemoryStore struct {
	mu       sync.RWMutex
	tables   map[string][]domain.Conjugation
	modTimes map[string]int64
}

var _ port.TableStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables:   make(map[string][]domain.Conjugation),
		modTimes: make(map[string]int64),
	}
}

func key(word string, flags domain.Flags) string {
	return word + "|" + flags.Key()
}

func (s *MemoryStore) PutTable(word string, flags domain.Flags, results []domain.Conjugation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[key(word, flags)] = append([]domain.Conjugation(nil), results...)
	return nil
}

func (s *MemoryStore) GetTable(word string, flags domain.Flags) ([]domain.Conjugation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results, ok := s.tables[key(word, flags)]
	if !ok {
		return nil, fmt.Errorf("table %s: %w", key(word, flags), store.ErrNotFound)
	}
	return append([]domain.Conjugation(nil), results...), nil
}

// ListTables returns every stored result ordered by key, like the bolt store.
func (s *MemoryStore) ListTables() ([]domain.Conjugation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.tables))
	for k := range s.tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var all []domain.Conjugation
	for _, k := range keys {
		all = append(all, s.tables[k]...)
	}
	return all, nil
}

func (s *MemoryStore) DeleteTable(word string, flags domain.Flags) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, key(word, flags))
	return nil
}

func (s *MemoryStore) BatchPut(tables []port.StoredTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tables {
		s.tables[key(t.Word, t.Flags)] = append([]domain.Conjugation(nil), t.Results...)
	}
	return nil
}

func (s *MemoryStore) FileModTime(path string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modTimes[path], nil
}

func (s *MemoryStore) SetFileModTime(path string, modTime int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modTimes[path] = modTime
	return nil
}

// Len is the number of stored word and flag keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}

func (s *MemoryStore) Close() error {
	return nil
}
