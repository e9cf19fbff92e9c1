package mapgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/mindweave/internal/llm"
)

func TestGenerateRoot(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"nodes":[{"id":"1","label":"Photosynthesis","content":"How plants convert light to energy."}]}`),
	})
	gen := New(mock, DefaultConfig())

	root, err := gen.GenerateRoot(context.Background(), "Photosynthesis")
	if err != nil {
		t.Fatalf("generate root: %v", err)
	}
	if root.ID != "1" {
		t.Errorf("root ID = %q, want 1", root.ID)
	}
	if root.Label != "Photosynthesis" {
		t.Errorf("root label = %q", root.Label)
	}
	if root.ParentID != "" {
		t.Errorf("root parent = %q, want empty", root.ParentID)
	}
}

func TestGenerateRootFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"nodes":[]}`),
	})
	gen := New(mock, DefaultConfig())

	root, err := gen.GenerateRoot(context.Background(), "Thermodynamics")
	if err != nil {
		t.Fatalf("generate root: %v", err)
	}
	if root.Label != "Thermodynamics" {
		t.Errorf("fallback root label = %q, want topic", root.Label)
	}
	if root.Content == "" {
		t.Error("fallback root has empty content")
	}
}

func TestGenerateChildren(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"nodes":[
			{"id":"1.1","label":"Light Reactions","content":"...","parent_id":"1"},
			{"id":"1.2","label":"Calvin Cycle","content":"...","parent_id":"1"}
		]}`),
	})
	gen := New(mock, DefaultConfig())

	parent := GenNode{ID: "1", Label: "Photosynthesis", Content: "Overview."}
	children, err := gen.GenerateChildren(context.Background(), parent)
	if err != nil {
		t.Fatalf("generate children: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	for _, c := range children {
		if c.ParentID != "1" {
			t.Errorf("child %s parent = %q, want 1", c.ID, c.ParentID)
		}
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Photosynthesis") {
		t.Error("prompt missing parent label")
	}
}

func TestGenerateChildrenCapsAtMax(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"nodes":[
			{"id":"1.1","label":"a","content":"x","parent_id":"1"},
			{"id":"1.2","label":"b","content":"x","parent_id":"1"},
			{"id":"1.3","label":"c","content":"x","parent_id":"1"},
			{"id":"1.4","label":"d","content":"x","parent_id":"1"}
		]}`),
	})
	cfg := DefaultConfig()
	cfg.MaxChildren = 2
	gen := New(mock, cfg)

	children, err := gen.GenerateChildren(context.Background(), GenNode{ID: "1", Label: "T"})
	if err != nil {
		t.Fatalf("generate children: %v", err)
	}
	if len(children) != 2 {
		t.Errorf("got %d children, want 2", len(children))
	}
}

func TestGenerateChildrenFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"nodes":[]}`),
	})
	cfg := DefaultConfig()
	cfg.MaxChildren = 3
	gen := New(mock, cfg)

	children, err := gen.GenerateChildren(context.Background(), GenNode{ID: "2", Label: "Entropy"})
	if err != nil {
		t.Fatalf("generate children: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("got %d placeholder children, want 3", len(children))
	}
	if children[0].ID != "2.1" {
		t.Errorf("first child ID = %q, want 2.1", children[0].ID)
	}
	if !strings.Contains(children[1].Label, "Entropy") {
		t.Errorf("placeholder label %q missing parent label", children[1].Label)
	}
}

func TestGenerateFullMap(t *testing.T) {
	// Depth 2, 2 children per node: root call + 1 expansion call.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"nodes":[{"id":"1","label":"Root","content":"r"}]}`)},
		llm.MockResponse{Content: json.RawMessage(`{"nodes":[
			{"id":"1.1","label":"A","content":"a","parent_id":"1"},
			{"id":"1.2","label":"B","content":"b","parent_id":"1"}
		]}`)},
	)
	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	cfg.MaxChildren = 2
	gen := New(mock, cfg)

	nodes, err := gen.Generate(context.Background(), "Root")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	if mock.CallCount() != 2 {
		t.Errorf("call count = %d, want 2", mock.CallCount())
	}
}

func TestGenerateDepthOneIsRootOnly(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"nodes":[{"id":"1","label":"Root","content":"r"}]}`)},
	)
	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	gen := New(mock, cfg)

	nodes, err := gen.Generate(context.Background(), "Root")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
}

func TestGenerateSurvivesExpansionFailure(t *testing.T) {
	// Root succeeds; all expansion attempts error. Placeholders fill in.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"nodes":[{"id":"1","label":"Root","content":"r"}]}`)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	cfg.MaxChildren = 2
	gen := New(mock, cfg)

	nodes, err := gen.Generate(context.Background(), "Root")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want root plus 2 placeholders", len(nodes))
	}
	if nodes[1].ID != "1.1" || nodes[2].ID != "1.2" {
		t.Errorf("placeholder IDs = %q, %q", nodes[1].ID, nodes[2].ID)
	}
}

func TestConfigClamp(t *testing.T) {
	tests := []struct {
		name         string
		in           Config
		wantDepth    int
		wantChildren int
	}{
		{"zero gets defaults", Config{}, 3, 4},
		{"too deep", Config{MaxDepth: 9, MaxChildren: 4}, 5, 4},
		{"too shallow", Config{MaxDepth: -1, MaxChildren: 4}, 1, 4},
		{"too many children", Config{MaxDepth: 3, MaxChildren: 12}, 3, 6},
		{"too few children", Config{MaxDepth: 3, MaxChildren: 1}, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp()
			if got.MaxDepth != tt.wantDepth {
				t.Errorf("depth = %d, want %d", got.MaxDepth, tt.wantDepth)
			}
			if got.MaxChildren != tt.wantChildren {
				t.Errorf("children = %d, want %d", got.MaxChildren, tt.wantChildren)
			}
		})
	}
}
