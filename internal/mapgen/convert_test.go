package mapgen

import (
	"testing"
)

func TestBuild(t *testing.T) {
	nodes := []GenNode{
		{ID: "1", Label: "Root", Content: "r"},
		{ID: "1.1", Label: "A", Content: "a", ParentID: "1"},
		{ID: "1.2", Label: "B", Content: "b", ParentID: "1"},
		{ID: "1.1.1", Label: "A1", Content: "a1", ParentID: "1.1"},
	}

	g, err := Build(nodes)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if g.Len() != 4 {
		t.Errorf("node count = %d, want 4", g.Len())
	}
	if len(g.Edges()) != 3 {
		t.Errorf("edge count = %d, want 3", len(g.Edges()))
	}

	roots := g.Roots()
	if len(roots) != 1 || roots[0] != "1" {
		t.Errorf("roots = %v, want [1]", roots)
	}

	// Root sits at the top level, grandchild below children.
	root, err := g.Node("1")
	if err != nil {
		t.Fatalf("node 1: %v", err)
	}
	grandchild, err := g.Node("1.1.1")
	if err != nil {
		t.Fatalf("node 1.1.1: %v", err)
	}
	if root.Position.Y != 0 {
		t.Errorf("root Y = %v, want 0", root.Position.Y)
	}
	if grandchild.Position.Y <= root.Position.Y {
		t.Errorf("grandchild Y = %v, want below root", grandchild.Position.Y)
	}
}

func TestBuildUnknownParent(t *testing.T) {
	nodes := []GenNode{
		{ID: "1", Label: "Root", Content: "r"},
		{ID: "2.1", Label: "Orphan", Content: "o", ParentID: "2"},
	}

	if _, err := Build(nodes); err == nil {
		t.Fatal("expected error for unknown parent")
	}
}

func TestBuildDuplicateID(t *testing.T) {
	nodes := []GenNode{
		{ID: "1", Label: "Root", Content: "r"},
		{ID: "1", Label: "Again", Content: "r"},
	}

	if _, err := Build(nodes); err == nil {
		t.Fatal("expected error for duplicate node ID")
	}
}

func TestEdgeID(t *testing.T) {
	if got := EdgeID("1", "1.2"); got != "e-1-1.2" {
		t.Errorf("edge ID = %q, want e-1-1.2", got)
	}
}
