package planning

import (
	"sync"
)

// DismissSet tracks queue entries the operator has removed. Dismissal is
// session-scoped and irreversible for the life of the process; the
// underlying material is untouched.
type DismissSet struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewDismissSet creates an empty dismiss set
func NewDismissSet() *DismissSet {
	return &DismissSet{ids: make(map[string]struct{})}
}

// Dismiss marks a material id as removed from the queue view.
func (s *DismissSet) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
}

// Dismissed reports whether the id has been dismissed.
func (s *DismissSet) Dismissed(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}
