// Package session holds per-session learning state: the graph, the
// progress tracker, and per-node chat histories. Sessions live in
// memory and expire when idle.
package session

import (
	"sync"
	"time"

	"github.com/abhisek/mindweave/internal/chat"
	"github.com/abhisek/mindweave/internal/mindgraph"
	"github.com/abhisek/mindweave/internal/progress"
)

// Session is the state for one learner working one map. All access
// goes through Do so the graph and tracker mutate under one lock.
type Session struct {
	ID string

	mu         sync.Mutex
	graph      *mindgraph.Graph
	tracker    *progress.Tracker
	chats      map[string][]chat.Message
	lastActive time.Time
	now        func() time.Time
}

func newSession(id string, now func() time.Time) *Session {
	return &Session{
		ID:         id,
		chats:      make(map[string][]chat.Message),
		lastActive: now(),
		now:        now,
	}
}

// State is the mutable session state handed to Do callbacks.
type State struct {
	Graph   *mindgraph.Graph
	Tracker *progress.Tracker
	Chats   map[string][]chat.Message
}

// Do runs fn with exclusive access to the session state and refreshes
// the idle clock. Replacing Graph or Tracker through the pointer
// fields takes effect immediately.
func (s *Session) Do(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = s.now()

	st := &State{
		Graph:   s.graph,
		Tracker: s.tracker,
		Chats:   s.chats,
	}
	err := fn(st)
	s.graph = st.Graph
	s.tracker = st.Tracker
	return err
}

// Initialized reports whether the session has graph data.
func (s *Session) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph != nil
}

// LastActive returns when the session was last touched.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
