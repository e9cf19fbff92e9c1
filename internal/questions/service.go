package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindweave/internal/llm"
	"github.com/abhisek/mindweave/internal/progress"
)

// GradingInFlightError indicates an answer to the same question is
// already being graded.
type GradingInFlightError struct {
	QuestionID string
}

func (e *GradingInFlightError) Error() string {
	return fmt.Sprintf("an answer to question %s is already being graded", e.QuestionID)
}

// Service generates questions for nodes and grades free-text answers
// using the LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
	now      func() time.Time

	mu       sync.Mutex
	inflight map[string]bool
}

// New creates a Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		config:   cfg,
		now:      time.Now,
		inflight: make(map[string]bool),
	}
}

// questionsOutput is the raw LLM generation response before conversion.
type questionsOutput struct {
	Questions []struct {
		Text string `json:"text"`
	} `json:"questions"`
}

// gradingOutput is the raw LLM evaluation response before conversion.
type gradingOutput struct {
	Feedback string `json:"feedback"`
	Grade    int    `json:"grade"`
	Passed   bool   `json:"passed"`
}

// Generate produces 1-3 open-ended questions for a node. When the LLM
// returns unusable output it falls back to a single generic question so
// the node stays answerable.
func (s *Service) Generate(ctx context.Context, nc NodeContext) ([]progress.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateMessage(nc, s.config.MaxQuestions)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate questions for %q: %w", nc.Label, err)
	}

	var raw questionsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return s.fallbackQuestions(nc.Label), nil
	}
	if len(raw.Questions) == 0 {
		return s.fallbackQuestions(nc.Label), nil
	}

	now := s.now()
	out := make([]progress.Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		if q.Text == "" {
			continue
		}
		out = append(out, progress.Question{
			ID:        uuid.NewString(),
			Text:      q.Text,
			Status:    progress.QuestionUnanswered,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if len(out) == s.config.MaxQuestions {
			break
		}
	}
	if len(out) == 0 {
		return s.fallbackQuestions(nc.Label), nil
	}
	return out, nil
}

// Grade evaluates a learner's answer against the question and node
// content. Only one grading call per question may be in flight at a
// time; concurrent attempts get a GradingInFlightError.
func (s *Service) Grade(ctx context.Context, questionID, questionText, answer, nodeContent string) (progress.Grading, error) {
	s.mu.Lock()
	if s.inflight[questionID] {
		s.mu.Unlock()
		return progress.Grading{}, &GradingInFlightError{QuestionID: questionID}
	}
	s.inflight[questionID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, questionID)
		s.mu.Unlock()
	}()

	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingMessage(questionText, answer, nodeContent)},
		},
		Schema:      GradingSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: 0.0,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return progress.Grading{}, fmt.Errorf("grade answer to question %s: %w", questionID, err)
	}

	var raw gradingOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return progress.Grading{}, fmt.Errorf("parse grading response: %w", err)
	}

	if raw.Grade < 0 {
		raw.Grade = 0
	}
	if raw.Grade > 100 {
		raw.Grade = 100
	}

	// The numeric grade is authoritative; the model's passed flag is
	// ignored in favor of the threshold.
	return progress.Grading{
		Feedback: raw.Feedback,
		Grade:    raw.Grade,
		Passed:   raw.Grade >= s.config.PassingGrade,
	}, nil
}

func (s *Service) fallbackQuestions(label string) []progress.Question {
	now := s.now()
	return []progress.Question{{
		ID:        uuid.NewString(),
		Text:      fmt.Sprintf("Explain the key concepts of %s in your own words.", label),
		Status:    progress.QuestionUnanswered,
		CreatedAt: now,
		UpdatedAt: now,
	}}
}
