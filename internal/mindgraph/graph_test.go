package mindgraph

import (
	"errors"
	"testing"
)

// buildDiamond creates the graph A→B, A→C, B→D, C→D.
func buildDiamond(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := g.AddNode(Node{ID: id, Label: id}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	edges := []Edge{
		{ID: "e1", Source: "A", Target: "B"},
		{ID: "e2", Source: "A", Target: "C"},
		{ID: "e3", Source: "B", Target: "D"},
		{ID: "e4", Source: "C", Target: "D"},
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s): %v", e.ID, err)
		}
	}
	return g
}

func TestAddNode_Duplicate(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := g.AddNode(Node{ID: "a"})
	var dup *ErrDuplicateNode
	if !errors.As(err, &dup) {
		t.Fatalf("expected ErrDuplicateNode, got %v", err)
	}
}

func TestAddEdge_UnknownEndpoint(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := g.AddEdge(Edge{ID: "e", Source: "a", Target: "ghost"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != "ghost" {
		t.Errorf("got id %q, want %q", nf.ID, "ghost")
	}
	if len(g.Edges()) != 0 {
		t.Error("failed AddEdge must not mutate the edge set")
	}
}

func TestAddEdge_DuplicatePairIsNoop(t *testing.T) {
	g := buildDiamond(t)
	before := len(g.Edges())
	if err := g.AddEdge(Edge{ID: "e-dup", Source: "A", Target: "B"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(g.Edges()); got != before {
		t.Errorf("got %d edges, want %d", got, before)
	}
}

func TestParentsAndChildren(t *testing.T) {
	g := buildDiamond(t)

	if got := g.Parents("D"); len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("Parents(D) = %v, want [B C]", got)
	}
	if got := g.Children("A"); len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("Children(A) = %v, want [B C]", got)
	}
	if got := g.Parents("A"); got != nil {
		t.Errorf("Parents(A) = %v, want nil", got)
	}
}

func TestRoots(t *testing.T) {
	g := buildDiamond(t)
	roots := g.Roots()
	if len(roots) != 1 || roots[0] != "A" {
		t.Errorf("Roots() = %v, want [A]", roots)
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := buildDiamond(t)
	order := g.TopologicalOrder()
	if len(order) != 4 {
		t.Fatalf("got %d nodes in order, want 4", len(order))
	}
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}
	for _, e := range g.Edges() {
		if index[e.Source] >= index[e.Target] {
			t.Errorf("edge %s→%s out of order in %v", e.Source, e.Target, order)
		}
	}
}

func TestDepths(t *testing.T) {
	g := buildDiamond(t)
	depths := g.Depths()
	want := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
	for id, d := range want {
		if depths[id] != d {
			t.Errorf("depth(%s) = %d, want %d", id, depths[id], d)
		}
	}
}

func TestSetPosition(t *testing.T) {
	g := buildDiamond(t)
	if err := g.SetPosition("B", Position{X: 10, Y: -5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := g.Node("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Position.X != 10 || n.Position.Y != -5 {
		t.Errorf("position = %+v, want {10 -5}", n.Position)
	}

	var nf *NotFoundError
	if err := g.SetPosition("ghost", Position{}); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}
