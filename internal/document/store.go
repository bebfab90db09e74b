package document

import "sync"

// Store manages open documents keyed by name. Each document is still
// single-owner; the store only guards the map itself so the watch surface
// can look documents up from its event goroutine.
type Store struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{documents: make(map[string]*Document)}
}

// Open adds or replaces a document in the store.
func (s *Store) Open(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.Name()] = doc
}

// Close removes a document from the store. Its caches die with it.
func (s *Store) Close(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, name)
}

// Get retrieves a document by name, or nil.
func (s *Store) Get(name string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[name]
}

// Names returns all open document names.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.documents))
	for name := range s.documents {
		names = append(names, name)
	}
	return names
}
