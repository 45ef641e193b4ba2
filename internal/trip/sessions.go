package trip

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions tracks the live coordinator for each open booking session.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Coordinator
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{
		sessions: make(map[uuid.UUID]*Coordinator),
	}
}

// Create registers a fresh coordinator and returns its session ID.
func (s *Sessions) Create() (uuid.UUID, *Coordinator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	c := NewCoordinator()
	s.sessions[id] = c
	return id, c
}

// Get returns the coordinator for a session, if it exists.
func (s *Sessions) Get(id uuid.UUID) (*Coordinator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.sessions[id]
	return c, ok
}

// Delete removes a session. Deleting an unknown session is a no-op.
func (s *Sessions) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of open sessions.
func (s *Sessions) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
