// Package chat runs per-node tutoring conversations. Each node in a
// session carries its own history; replies are grounded in the node's
// content plus its immediate neighbors.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindweave/internal/llm"
	"github.com/abhisek/mindweave/internal/questions"
)

// Message is one chat turn.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

const fallbackReply = "I'm sorry, I encountered an error while processing your message. Please try again."

// Config controls chat generation.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxNeighborChars truncates neighbor content in the system prompt.
	MaxNeighborChars int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        1024,
		Temperature:      0.7,
		MaxNeighborChars: 200,
	}
}

// Service generates tutoring replies with the LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
	now      func() time.Time
}

// New creates a Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg, now: time.Now}
}

// Welcome returns the opening assistant message for a node's chat.
func (s *Service) Welcome(nodeLabel string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      "assistant",
		Content:   fmt.Sprintf("Hello! I'm your guide for learning about '%s'. What would you like to know or discuss about this topic?", nodeLabel),
		CreatedAt: s.now(),
	}
}

// Reply generates the assistant's next message given the conversation
// so far. The history must end with the user's latest message.
func (s *Service) Reply(ctx context.Context, nc questions.NodeContext, history []Message) (Message, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	msgs := make([]llm.Message, 0, len(history))
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}

	req := llm.Request{
		System:      s.systemPrompt(nc),
		Messages:    msgs,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Message{}, fmt.Errorf("generate chat reply for %q: %w", nc.Label, err)
	}

	content := textContent(resp.Content)
	if content == "" {
		content = fallbackReply
	}

	return Message{
		ID:        uuid.NewString(),
		Role:      "assistant",
		Content:   content,
		CreatedAt: s.now(),
	}, nil
}

func (s *Service) systemPrompt(nc questions.NodeContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an AI tutor specialized in teaching about '%s'.\n", nc.Label)
	b.WriteString("Your goal is to help the user understand this topic in depth.\n\n")
	fmt.Fprintf(&b, "Here is the content about '%s' that you should use as your primary source of information:\n---\n%s\n---\n", nc.Label, nc.Content)

	if len(nc.Parents) > 0 {
		b.WriteString("\nThis topic is related to these parent topics:\n")
		for i, p := range nc.Parents {
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, p.Label, s.truncate(p.Content))
		}
	}

	if len(nc.Children) > 0 {
		b.WriteString("\nThis topic has these subtopics:\n")
		for i, c := range nc.Children {
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, c.Label, s.truncate(c.Content))
		}
	}

	b.WriteString("\nYour responses should be educational, accurate, and helpful. Encourage the user to ask questions and engage with the material.")

	return b.String()
}

func (s *Service) truncate(content string) string {
	max := s.config.MaxNeighborChars
	if max <= 0 || len(content) <= max {
		return content
	}
	return content[:max] + "..."
}

// textContent unwraps a schema-less response: providers return plain
// text wrapped as a JSON string.
func textContent(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}
