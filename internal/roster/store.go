package roster

import (
	"sync"

	"github.com/spec-kit/team-pulse/internal/domain"
)

// Store holds the local snapshot of the roster. Writes are whole-record
// (Put/Remove) or wholesale (ReplaceAll); readers never observe a partially
// written record.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]domain.TeamMember
	ordered []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]domain.TeamMember)}
}

// ReplaceAll swaps the entire snapshot, preserving the given order. Used on
// every resync from the source of truth.
func (s *Store) ReplaceAll(members []domain.TeamMember) {
	byID := make(map[string]domain.TeamMember, len(members))
	ordered := make([]string, 0, len(members))
	for _, m := range members {
		if _, seen := byID[m.ID]; !seen {
			ordered = append(ordered, m.ID)
		}
		byID[m.ID] = m.Clone()
	}

	s.mu.Lock()
	s.byID = byID
	s.ordered = ordered
	s.mu.Unlock()
}

// Snapshot returns the members in insertion order. The returned records are
// copies and safe for callers to mutate.
func (s *Store) Snapshot() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TeamMember, 0, len(s.ordered))
	for _, id := range s.ordered {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

// Lookup returns a copy of the member with the given id.
func (s *Store) Lookup(id string) (domain.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byID[id]
	if !ok {
		return domain.TeamMember{}, false
	}
	return m.Clone(), true
}

// Put replaces (or appends) a full record.
func (s *Store) Put(member domain.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[member.ID]; !ok {
		s.ordered = append(s.ordered, member.ID)
	}
	s.byID[member.ID] = member.Clone()
}

// Remove deletes a record. Removing an absent id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, existing := range s.ordered {
		if existing == id {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
}

// Len reports the number of records in the snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
