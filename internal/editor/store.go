package editor

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/mufiz-dev/invoice-studio/internal/invoice"
)

// ErrNotFound is returned when the referenced document does not exist.
var ErrNotFound = errors.New("editor: document not found")

// ErrRowOutOfRange is returned when an item index does not address a row.
var ErrRowOutOfRange = errors.New("editor: row index out of range")

// Store keeps editing sessions in memory keyed by document ID. Documents are
// copied on the way in and out so callers never share item slices.
type Store struct {
	mu   sync.RWMutex
	docs map[string]invoice.Document
}

// NewStore returns an empty document store.
func NewStore() *Store {
	return &Store{docs: make(map[string]invoice.Document)}
}

// Create stores the document under a fresh ID and returns that ID.
func (s *Store) Create(doc invoice.Document) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.docs[id] = doc.Clone()
	s.mu.Unlock()
	return id
}

// Get returns a copy of the stored document.
func (s *Store) Get(id string) (invoice.Document, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return invoice.Document{}, ErrNotFound
	}
	return doc.Clone(), nil
}

// Update applies fn to the stored document under the write lock and returns
// the resulting state. When fn errors the document is left unchanged.
func (s *Store) Update(id string, fn func(*invoice.Document) error) (invoice.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return invoice.Document{}, ErrNotFound
	}
	working := doc.Clone()
	if err := fn(&working); err != nil {
		return invoice.Document{}, err
	}
	s.docs[id] = working
	return working.Clone(), nil
}

// Delete removes the document. Missing IDs are not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.docs, id)
	s.mu.Unlock()
}

// Len reports the number of live editing sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
