package chat

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/mindweave/internal/llm"
	"github.com/abhisek/mindweave/internal/questions"
)

func TestWelcome(t *testing.T) {
	svc := New(llm.NewMockProvider(), DefaultConfig())

	msg := svc.Welcome("Quantum Entanglement")
	if msg.Role != "assistant" {
		t.Errorf("role = %q, want assistant", msg.Role)
	}
	if msg.ID == "" {
		t.Error("empty message ID")
	}
	if !strings.Contains(msg.Content, "Quantum Entanglement") {
		t.Errorf("welcome %q missing node label", msg.Content)
	}
}

func TestReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Entanglement links the states of two particles."`),
	})
	svc := New(mock, DefaultConfig())

	nc := questions.NodeContext{
		Label:   "Quantum Entanglement",
		Content: "Two particles share a state.",
		Parents: []questions.RelatedNode{{Label: "Quantum Mechanics", Content: "The physics of the very small."}},
	}
	history := []Message{
		{Role: "assistant", Content: "Hello!"},
		{Role: "user", Content: "How does entanglement work?"},
	}

	reply, err := svc.Reply(context.Background(), nc, history)
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply.Role != "assistant" {
		t.Errorf("role = %q, want assistant", reply.Role)
	}
	if reply.Content != "Entanglement links the states of two particles." {
		t.Errorf("content = %q", reply.Content)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "Quantum Entanglement") {
		t.Error("system prompt missing node label")
	}
	if !strings.Contains(req.System, "Quantum Mechanics") {
		t.Error("system prompt missing parent context")
	}
	if len(req.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleAssistant || req.Messages[1].Role != llm.RoleUser {
		t.Error("history roles not preserved")
	}
}

func TestReplyFallbackOnEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`""`),
	})
	svc := New(mock, DefaultConfig())

	reply, err := svc.Reply(context.Background(), questions.NodeContext{Label: "X"}, []Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply.Content != fallbackReply {
		t.Errorf("content = %q, want fallback", reply.Content)
	}
}

func TestReplyProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := New(mock, DefaultConfig())

	if _, err := svc.Reply(context.Background(), questions.NodeContext{Label: "X"}, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestNeighborTruncation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxNeighborChars = 10
	svc := New(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"ok"`)}), cfg)

	long := strings.Repeat("z", 50)
	nc := questions.NodeContext{
		Label:    "T",
		Children: []questions.RelatedNode{{Label: "C", Content: long}},
	}
	mock := svc.provider.(*llm.MockProvider)

	if _, err := svc.Reply(context.Background(), nc, []Message{{Role: "user", Content: "hi"}}); err != nil {
		t.Fatalf("reply: %v", err)
	}
	if strings.Contains(mock.Calls[0].System, long) {
		t.Error("neighbor content not truncated")
	}
	if !strings.Contains(mock.Calls[0].System, strings.Repeat("z", 10)+"...") {
		t.Error("truncated neighbor content missing ellipsis")
	}
}
