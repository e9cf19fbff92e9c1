package questions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mindweave/internal/llm"
	"github.com/abhisek/mindweave/internal/progress"
)

func newTestService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func TestGenerateQuestions(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[{"text":"What is recursion?"},{"text":"When does recursion terminate?"}]}`),
	})

	got, err := svc.Generate(context.Background(), NodeContext{
		Label:   "Recursion",
		Content: "A function that calls itself.",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	for i, q := range got {
		if q.ID == "" {
			t.Errorf("question %d has empty ID", i)
		}
		if q.Status != progress.QuestionUnanswered {
			t.Errorf("question %d status = %q, want unanswered", i, q.Status)
		}
		if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
			t.Errorf("question %d has zero timestamps", i)
		}
	}
	if got[0].ID == got[1].ID {
		t.Error("questions share an ID")
	}

	if mock.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuestionsSchema {
		t.Error("request did not use the questions schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Recursion") {
		t.Error("prompt missing node label")
	}
}

func TestGenerateIncludesNeighborContext(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[{"text":"Q"}]}`),
	})

	_, err := svc.Generate(context.Background(), NodeContext{
		Label:    "Binary Search",
		Content:  "Halving the search space.",
		Parents:  []RelatedNode{{Label: "Sorted Arrays", Content: "Ordered data."}},
		Children: []RelatedNode{{Label: "Bisection", Content: "Root finding."}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Sorted Arrays") {
		t.Error("prompt missing parent context")
	}
	if !strings.Contains(prompt, "Bisection") {
		t.Error("prompt missing child context")
	}
}

func TestGenerateFallbackOnUnparseableResponse(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Content: json.RawMessage(`"not the shape we asked for"`),
	})

	got, err := svc.Generate(context.Background(), NodeContext{Label: "Graphs"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1 fallback", len(got))
	}
	if !strings.Contains(got[0].Text, "Graphs") {
		t.Errorf("fallback text %q missing node label", got[0].Text)
	}
}

func TestGenerateFallbackOnEmptyList(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[]}`),
	})

	got, err := svc.Generate(context.Background(), NodeContext{Label: "Trees"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1 fallback", len(got))
	}
}

func TestGenerateCapsAtMaxQuestions(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[{"text":"a"},{"text":"b"},{"text":"c"},{"text":"d"},{"text":"e"}]}`),
	})

	got, err := svc.Generate(context.Background(), NodeContext{Label: "Heaps"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != DefaultConfig().MaxQuestions {
		t.Errorf("got %d questions, want %d", len(got), DefaultConfig().MaxQuestions)
	}
}

func TestGenerateProviderError(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})

	_, err := svc.Generate(context.Background(), NodeContext{Label: "Stacks"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("error %v does not wrap ErrProviderUnavailable", err)
	}
}

func TestGradePassDerivedFromThreshold(t *testing.T) {
	tests := []struct {
		name    string
		content string
		grade   int
		passed  bool
	}{
		{"pass at threshold", `{"feedback":"solid","grade":80,"passed":true}`, 80, true},
		{"above threshold", `{"feedback":"great","grade":95,"passed":true}`, 95, true},
		{"below threshold", `{"feedback":"close","grade":79,"passed":true}`, 79, false},
		{"model passed flag ignored", `{"feedback":"weak","grade":40,"passed":true}`, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(llm.MockResponse{Content: json.RawMessage(tt.content)})

			g, err := svc.Grade(context.Background(), "q-1", "Explain X", "my answer", "content about X")
			if err != nil {
				t.Fatalf("grade: %v", err)
			}
			if g.Grade != tt.grade {
				t.Errorf("grade = %d, want %d", g.Grade, tt.grade)
			}
			if g.Passed != tt.passed {
				t.Errorf("passed = %v, want %v", g.Passed, tt.passed)
			}
		})
	}
}

func TestGradeClampsOutOfRange(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"feedback":"","grade":150,"passed":true}`),
	})

	g, err := svc.Grade(context.Background(), "q-1", "q", "a", "c")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if g.Grade != 100 {
		t.Errorf("grade = %d, want 100", g.Grade)
	}
}

func TestGradeUsesZeroTemperature(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"feedback":"","grade":50,"passed":false}`),
	})

	if _, err := svc.Grade(context.Background(), "q-1", "q", "a", "c"); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if mock.Calls[0].Temperature != 0.0 {
		t.Errorf("temperature = %v, want 0", mock.Calls[0].Temperature)
	}
	if mock.Calls[0].Schema != GradingSchema {
		t.Error("request did not use the grading schema")
	}
}

func TestGradeRejectsConcurrentAttempts(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"feedback":"","grade":90,"passed":true}`),
	})

	svc.mu.Lock()
	svc.inflight["q-1"] = true
	svc.mu.Unlock()

	_, err := svc.Grade(context.Background(), "q-1", "q", "a", "c")
	var inflight *GradingInFlightError
	if !errors.As(err, &inflight) {
		t.Fatalf("error = %v, want GradingInFlightError", err)
	}
	if inflight.QuestionID != "q-1" {
		t.Errorf("question ID = %q, want q-1", inflight.QuestionID)
	}

	// A different question is not blocked.
	svc.mu.Lock()
	delete(svc.inflight, "q-1")
	svc.mu.Unlock()
	if _, err := svc.Grade(context.Background(), "q-2", "q", "a", "c"); err != nil {
		t.Fatalf("grade q-2: %v", err)
	}
}
