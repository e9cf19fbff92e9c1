package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mindweave/internal/mindgraph"
	"github.com/abhisek/mindweave/internal/progress"
)

func TestGetOrCreate(t *testing.T) {
	store := NewMemoryStore()

	s1 := store.GetOrCreate("abc")
	s2 := store.GetOrCreate("abc")
	if s1 != s2 {
		t.Error("same id returned different sessions")
	}
	if s1.ID != "abc" {
		t.Errorf("session ID = %q, want abc", s1.ID)
	}
	if store.Len() != 1 {
		t.Errorf("store len = %d, want 1", store.Len())
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("Get returned a session that was never created")
	}
}

func TestDoSwapsState(t *testing.T) {
	store := NewMemoryStore()
	s := store.GetOrCreate("abc")

	if s.Initialized() {
		t.Error("fresh session reports initialized")
	}

	g := mindgraph.New()
	if err := g.AddNode(mindgraph.Node{ID: "root", Label: "Root"}); err != nil {
		t.Fatal(err)
	}

	err := s.Do(func(st *State) error {
		st.Graph = g
		st.Tracker = progress.NewTracker(g)
		return nil
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}

	if !s.Initialized() {
		t.Error("session not initialized after graph install")
	}

	err = s.Do(func(st *State) error {
		if st.Graph.Len() != 1 {
			t.Errorf("graph len = %d, want 1", st.Graph.Len())
		}
		e, err := st.Tracker.Entry("root")
		if err != nil {
			return err
		}
		if e.Status != progress.StatusNotStarted {
			t.Errorf("root status = %q, want not_started", e.Status)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
}

func TestDoPropagatesError(t *testing.T) {
	store := NewMemoryStore()
	s := store.GetOrCreate("abc")

	want := errors.New("boom")
	if err := s.Do(func(*State) error { return want }); !errors.Is(err, want) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestDelete(t *testing.T) {
	store := NewMemoryStore()
	store.GetOrCreate("abc")
	store.Delete("abc")
	if _, ok := store.Get("abc"); ok {
		t.Error("session survived delete")
	}
}

func TestPurgeIdle(t *testing.T) {
	store := NewMemoryStore()

	clock := time.Now()
	store.now = func() time.Time { return clock }

	store.GetOrCreate("old")
	clock = clock.Add(2 * time.Hour)
	active := store.GetOrCreate("active")

	removed := store.PurgeIdle(time.Hour)
	if len(removed) != 1 || removed[0] != "old" {
		t.Errorf("removed = %v, want [old]", removed)
	}
	if _, ok := store.Get("old"); ok {
		t.Error("idle session survived purge")
	}
	if got, ok := store.Get("active"); !ok || got != active {
		t.Error("active session purged")
	}
}

func TestDoRefreshesIdleClock(t *testing.T) {
	store := NewMemoryStore()

	clock := time.Now()
	store.now = func() time.Time { return clock }

	s := store.GetOrCreate("abc")
	clock = clock.Add(50 * time.Minute)
	if err := s.Do(func(*State) error { return nil }); err != nil {
		t.Fatal(err)
	}
	clock = clock.Add(30 * time.Minute)

	// 80 minutes since creation but only 30 since the last touch.
	if removed := store.PurgeIdle(time.Hour); len(removed) != 0 {
		t.Errorf("removed = %v, want none", removed)
	}
}
