package session

import (
	"context" // Context to satisfy the Store interface
	"sync"    // Mutex guarding the map
)

// MemoryStore keeps sessions in process memory, used by tests
type MemoryStore struct {
	mu       sync.Mutex      // Guards sessions
	sessions map[string]uint // Session identifier to user id
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]uint)}
}

// Create stores a new session record in memory
func (s *MemoryStore) Create(_ context.Context, userID uint) (string, error) {
	id, err := newSessionID() // Generate the opaque identifier
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[id] = userID // Bind the session to the user
	s.mu.Unlock()
	return id, nil
}

// Get retrieves the user bound to a session identifier
func (s *MemoryStore) Get(_ context.Context, id string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uid, ok := s.sessions[id]
	return uid, ok, nil
}

// Destroy deletes a session
func (s *MemoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
