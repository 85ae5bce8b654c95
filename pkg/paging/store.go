package paging

import (
	"slices"
	"sync"
)

// Status describes the pager on screen, as seen from outside the UI loop.
type Status struct {
	Title string   `json:"title"`
	Pages []string `json:"pages"`
	Snapshot
	Open bool `json:"open"`
}

// Store holds the latest published [Status]. It is safe for concurrent use.
type Store struct {
	status Status
	mu     sync.RWMutex
}

// NewStore creates an empty [Store].
func NewStore() *Store {
	return &Store{}
}

// Publish replaces the stored status and marks it open.
func (s *Store) Publish(st Status) {
	st.Pages = slices.Clone(st.Pages)
	st.Open = true

	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = st
}

// Update replaces only the snapshot of an open status.
func (s *Store) Update(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Open {
		s.status.Snapshot = snap
	}
}

// Close marks the pager as no longer displayed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = Status{}
}

// Load returns a copy of the latest status.
func (s *Store) Load() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.status
	st.Pages = slices.Clone(st.Pages)

	return st
}
