package mapgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mindweave/internal/llm"
)

// GenNode is one generated node before graph assembly. The root has an
// empty ParentID.
type GenNode struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Content  string `json:"content"`
	ParentID string `json:"parent_id,omitempty"`
}

// Generator builds topic mindmaps level by level with the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg.Clamp()}
}

// Provider returns the generator's LLM provider.
func (g *Generator) Provider() llm.Provider {
	return g.provider
}

// Config returns the generator's effective (clamped) config.
func (g *Generator) Config() Config {
	return g.config
}

// nodesOutput is the raw LLM response for both root and child generation.
type nodesOutput struct {
	Nodes []GenNode `json:"nodes"`
}

// GenerateRoot produces the root node for a topic. When the LLM returns
// nothing usable the topic itself becomes the root so generation can
// continue.
func (g *Generator) GenerateRoot(ctx context.Context, topic string) (GenNode, error) {
	ctx = llm.WithPurpose(ctx, "map-gen")

	req := llm.Request{
		System: rootSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRootMessage(topic)},
		},
		Schema:      RootSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return GenNode{}, fmt.Errorf("generate root node for %q: %w", topic, err)
	}

	var raw nodesOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil || len(raw.Nodes) == 0 {
		return defaultRoot(topic), nil
	}

	root := raw.Nodes[0]
	if root.ID == "" {
		root.ID = "1"
	}
	if root.Label == "" {
		root.Label = topic
	}
	if root.Content == "" {
		root.Content = fmt.Sprintf("Overview of %s", topic)
	}
	root.ParentID = ""
	return root, nil
}

// GenerateChildren produces children for one parent node. Unusable LLM
// output falls back to placeholder children so the map keeps its shape.
func (g *Generator) GenerateChildren(ctx context.Context, parent GenNode) ([]GenNode, error) {
	ctx = llm.WithPurpose(ctx, "map-gen")

	req := llm.Request{
		System: expandSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExpandMessage(parent.ID, parent.Label, parent.Content, g.config.MaxChildren)},
		},
		Schema:      ChildrenSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate children for %q: %w", parent.ID, err)
	}

	var raw nodesOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil || len(raw.Nodes) == 0 {
		return defaultChildren(parent, g.config.MaxChildren), nil
	}

	children := make([]GenNode, 0, len(raw.Nodes))
	for i, n := range raw.Nodes {
		if n.ID == "" {
			n.ID = fmt.Sprintf("%s.%d", parent.ID, i+1)
		}
		if n.Label == "" {
			n.Label = fmt.Sprintf("Aspect of %s", parent.Label)
		}
		if n.Content == "" {
			n.Content = fmt.Sprintf("A key component of %s", parent.Label)
		}
		n.ParentID = parent.ID
		children = append(children, n)
		if len(children) == g.config.MaxChildren {
			break
		}
	}
	return children, nil
}

// Generate builds a full mindmap breadth-first: root first, then each
// level expanded until MaxDepth. A node whose expansion keeps failing
// gets placeholder children after MaxRetries extra attempts; the rest
// of the map still generates.
func (g *Generator) Generate(ctx context.Context, topic string) ([]GenNode, error) {
	root, err := g.GenerateRoot(ctx, topic)
	if err != nil {
		return nil, err
	}

	all := []GenNode{root}

	type queued struct {
		node  GenNode
		level int
	}
	queue := []queued{{node: root, level: 1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.level >= g.config.MaxDepth {
			continue
		}

		var children []GenNode
		for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
			children, err = g.GenerateChildren(ctx, cur.node)
			if err == nil && len(children) > 0 {
				break
			}
		}
		if len(children) == 0 {
			children = defaultChildren(cur.node, g.config.MaxChildren)
		}

		for _, c := range children {
			all = append(all, c)
			queue = append(queue, queued{node: c, level: cur.level + 1})
		}
	}

	return all, nil
}

func defaultRoot(topic string) GenNode {
	return GenNode{
		ID:      "1",
		Label:   topic,
		Content: fmt.Sprintf("Overview of %s: A comprehensive exploration of this subject and its key aspects.", topic),
	}
}

func defaultChildren(parent GenNode, count int) []GenNode {
	out := make([]GenNode, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, GenNode{
			ID:       fmt.Sprintf("%s.%d", parent.ID, i),
			Label:    fmt.Sprintf("Aspect %d of %s", i, parent.Label),
			Content:  fmt.Sprintf("This is a key component of %s that explores important concepts related to this subject.", parent.Label),
			ParentID: parent.ID,
		})
	}
	return out
}
