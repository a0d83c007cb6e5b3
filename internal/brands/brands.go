// Package brands holds the featured-brand list shown on the home page.
// The list is fetched once at startup and shared with every handler
// through an explicit Store rather than package-level state.
package brands

import "sync"

// Brand is one featured-brand record; the upstream query orders rows by
// id ascending.
type Brand struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Color       string `json:"color"`
}

// Store is the hydration container: empty until Set is called, then all
// readers observe the latest list. Set is last-write-wins; the normal
// flow calls it exactly once but nothing depends on that.
type Store struct {
	mu     sync.RWMutex
	brands []Brand
}

func NewStore() *Store {
	return &Store{brands: []Brand{}}
}

// Set replaces the list wholesale. The input is copied so later caller
// mutations can't leak in.
func (s *Store) Set(list []Brand) {
	cp := make([]Brand, len(list))
	copy(cp, list)

	s.mu.Lock()
	s.brands = cp
	s.mu.Unlock()
}

// Get returns the current list. Before hydration it is empty, never
// nil, and reading early is well-defined rather than an error.
func (s *Store) Get() []Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]Brand, len(s.brands))
	copy(cp, s.brands)
	return cp
}
