package mindgraph

import (
	"strings"
	"testing"
)

func TestValidate_CleanGraph(t *testing.T) {
	g := buildDiamond(t)
	if err := g.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyGraph(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("empty graph should validate, got %v", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	for _, e := range []Edge{
		{ID: "e1", Source: "a", Target: "b"},
		{ID: "e2", Source: "b", Target: "c"},
		{ID: "e3", Source: "c", Target: "a"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle: %v", err)
	}
	if !strings.Contains(err.Error(), "no root nodes") {
		t.Errorf("error should mention missing roots: %v", err)
	}
}

func TestValidate_CycleBesideValidComponent(t *testing.T) {
	g := New()
	for _, id := range []string{"root", "x", "y"} {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	for _, e := range []Edge{
		{ID: "e1", Source: "x", Target: "y"},
		{ID: "e2", Source: "y", Target: "x"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}
	if !strings.Contains(err.Error(), "x") || !strings.Contains(err.Error(), "y") {
		t.Errorf("error should name the cycle members: %v", err)
	}
	if strings.Contains(err.Error(), "no root nodes") {
		t.Errorf("graph has a root; error should not mention missing roots: %v", err)
	}
}
