package journal

import "sync"

// Store is the in-process, append-only record store. Records live for the
// session only — there is no database and no durability across restarts;
// the host owns the store's lifetime.
//
// The core pipeline is single-caller by design, but the MCP transport may
// dispatch tool calls from multiple goroutines, so appends and clears take
// an exclusive lock and reads a shared one.
type Store struct {
	mu      sync.RWMutex
	records []DreamRecord
	nextID  int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append assigns the next ID and stores the record, returning the stored
// copy. Insertion order is the store's only ordering.
func (s *Store) Append(r DreamRecord) DreamRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextID
	s.nextID++
	s.records = append(s.records, r)
	return r
}

// List returns all records in insertion order. The returned slice is a
// copy: callers cannot mutate the store through it.
func (s *Store) List() []DreamRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DreamRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear discards every record and returns how many were removed. IDs are
// not reused after a clear.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.records)
	s.records = nil
	return n
}
