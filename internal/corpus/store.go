package corpus

import (
	"sort"
	"sync"

	apperrors "github.com/lineseek/lineseek/internal/errors"
)

// Store is the authoritative id -> Document mapping. Documents are added
// once during bootstrap and never updated or removed; after the readiness
// transition the store is read-only.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{
		docs: make(map[string]*Document),
	}
}

// Add records a document. A duplicate id is a hard error, never a silent
// overwrite.
func (s *Store) Add(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[doc.ID]; exists {
		return apperrors.DuplicateDocument(doc.ID)
	}
	s.docs[doc.ID] = doc
	return nil
}

// Get returns the document for id, or false if absent.
func (s *Store) Get(id string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	return doc, ok
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs)
}

// IDs returns all document ids, sorted for deterministic output.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
