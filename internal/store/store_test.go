package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true, RequestBody: `{"topic":"Recursion"}`, ResponseBody: `["What is a base case?"]`},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "grading", InputTokens: 200, OutputTokens: 30, LatencyMs: 600, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "grading", InputTokens: 150, OutputTokens: 20, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Purpose != "grading" || events[0].Provider != "openai" {
		t.Errorf("first event = %s/%s, want openai/grading", events[0].Provider, events[0].Purpose)
	}
	if events[0].Sequence <= events[2].Sequence {
		t.Errorf("expected descending sequence order: %d then %d", events[0].Sequence, events[2].Sequence)
	}

	// Limit respected.
	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d events with limit 2", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "map-gen",
		InputTokens: 10, OutputTokens: 5, Success: true,
		RequestBody: "req", ResponseBody: "resp",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected non-nil event")
	}
	if e.RequestBody != "req" || e.ResponseBody != "resp" {
		t.Errorf("bodies = %q/%q, want req/resp", e.RequestBody, e.ResponseBody)
	}

	// Missing ID returns nil, not an error.
	e, err = repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil for missing ID, got %+v", e)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 1000, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 500, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "grading", InputTokens: 80, OutputTokens: 10, LatencyMs: 300, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		switch u.Purpose {
		case "question-gen":
			if u.Calls != 2 || u.InputTokens != 220 || u.OutputTokens != 110 {
				t.Errorf("question-gen usage = %+v", u)
			}
			if u.AvgLatencyMs != 750 {
				t.Errorf("question-gen avg latency = %d, want 750", u.AvgLatencyMs)
			}
		case "grading":
			if u.Calls != 1 || u.InputTokens != 80 {
				t.Errorf("grading usage = %+v", u)
			}
		default:
			t.Errorf("unexpected purpose %q", u.Purpose)
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
}

func TestAppendGradingEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendGradingEvent(ctx, GradingEventData{
		SessionID:  "sess-1",
		NodeID:     "node-1",
		QuestionID: "q-1",
		Attempt:    1,
		Grade:      85,
		Passed:     true,
		NodeStatus: "in_progress",
	})
	if err != nil {
		t.Fatalf("append grading: %v", err)
	}

	count, err := s.Client().GradingEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("grading events = %d, want 1", count)
	}
}

func TestAppendSessionEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		Action:    "init",
		NodeCount: 8,
		EdgeCount: 7,
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}

	count, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("session events = %d, want 1", count)
	}
}
