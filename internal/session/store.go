package session

import (
	"sync"
	"time"
)

// Store manages session lifecycle.
type Store interface {
	// GetOrCreate returns the session with the given id, creating it
	// on first use.
	GetOrCreate(id string) *Session

	// Get returns the session and whether it exists.
	Get(id string) (*Session, bool)

	// Delete removes a session.
	Delete(id string)

	// PurgeIdle removes sessions idle longer than maxIdle and returns
	// the ids removed.
	PurgeIdle(maxIdle time.Duration) []string

	// Len returns the number of live sessions.
	Len() int
}

// MemoryStore is the in-memory Store used by the server.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (m *MemoryStore) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := newSession(id, m.now)
	m.sessions[id] = s
	return s
}

func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *MemoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *MemoryStore) PurgeIdle(maxIdle time.Duration) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxIdle)
	var removed []string
	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			delete(m.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
