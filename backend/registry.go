package backend

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry manages named searcher instances so callers can switch between
// local ranked search and indexed full-text search behind one handle.
type Registry struct {
	mu        sync.RWMutex
	searchers map[string]Searcher
}

// NewRegistry creates an empty searcher registry.
func NewRegistry() *Registry {
	return &Registry{searchers: make(map[string]Searcher)}
}

// Register adds a searcher to the registry.
func (r *Registry) Register(s Searcher) error {
	if s == nil {
		return fmt.Errorf("searcher is nil")
	}
	name := s.Name()
	if name == "" {
		return fmt.Errorf("searcher name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.searchers[name]; exists {
		return fmt.Errorf("%w: %s", ErrBackendExists, name)
	}
	r.searchers[name] = s
	return nil
}

// Unregister removes a searcher from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.searchers, name)
}

// Get retrieves a searcher by name.
func (r *Registry) Get(name string) (Searcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.searchers[name]
	return s, ok
}

// Names returns the registered searcher names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.searchers))
	for name := range r.searchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search runs a query through the named searcher.
func (r *Registry) Search(ctx context.Context, name, query string, limit int) ([]string, error) {
	s, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotFound, name)
	}
	return s.Search(ctx, query, limit)
}
