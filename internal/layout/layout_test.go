package layout

import (
	"math"
	"testing"

	"github.com/abhisek/mindweave/internal/mindgraph"
)

// fan builds a parent with n children under a grandparent.
func fan(t *testing.T, n int) *mindgraph.Graph {
	t.Helper()
	g := mindgraph.New()
	if err := g.AddNode(mindgraph.Node{ID: "gp", Label: "grandparent"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(mindgraph.Node{ID: "focus", Label: "focus"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(mindgraph.Edge{ID: "e-gp", Source: "gp", Target: "focus"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		if err := g.AddNode(mindgraph.Node{ID: id}); err != nil {
			t.Fatal(err)
		}
		if err := g.AddEdge(mindgraph.Edge{ID: "e-" + id, Source: "focus", Target: id}); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func positionOf(v View, id string) (mindgraph.Position, bool) {
	for _, p := range v.Nodes {
		if p.Node.ID == id {
			return p.Position, true
		}
	}
	return mindgraph.Position{}, false
}

func TestVisible_EmptyFocus(t *testing.T) {
	g := fan(t, 2)
	if v := Visible("", g); len(v.Nodes) != 0 || len(v.Edges) != 0 {
		t.Errorf("empty focus: got %d nodes %d edges, want empty view", len(v.Nodes), len(v.Edges))
	}
	if v := Visible("ghost", g); len(v.Nodes) != 0 {
		t.Errorf("unknown focus: got %d nodes, want empty view", len(v.Nodes))
	}
}

func TestVisible_FocusAtOriginParentAbove(t *testing.T) {
	v := Visible("focus", fan(t, 1))

	pos, ok := positionOf(v, "focus")
	if !ok || pos.X != 0 || pos.Y != 0 {
		t.Errorf("focus position = %+v, want origin", pos)
	}
	pos, ok = positionOf(v, "gp")
	if !ok || pos.X != 0 || pos.Y != -RowSpacing {
		t.Errorf("parent position = %+v, want centered one row above", pos)
	}
}

func TestVisible_SingleChildCentered(t *testing.T) {
	v := Visible("focus", fan(t, 1))
	pos, ok := positionOf(v, "a")
	if !ok || pos.X != 0 || pos.Y != RowSpacing {
		t.Errorf("single child position = %+v, want {0 %v}", pos, RowSpacing)
	}
}

func TestVisible_ThreeChildrenOneRow(t *testing.T) {
	v := Visible("focus", fan(t, 3))

	wantX := []float64{-ColumnSpacing, 0, ColumnSpacing}
	for i, id := range []string{"a", "b", "c"} {
		pos, ok := positionOf(v, id)
		if !ok {
			t.Fatalf("child %s missing from view", id)
		}
		if pos.X != wantX[i] || pos.Y != RowSpacing {
			t.Errorf("child %s = %+v, want {%v %v}", id, pos, wantX[i], RowSpacing)
		}
	}
}

func TestVisible_FiveChildrenWrap(t *testing.T) {
	v := Visible("focus", fan(t, 5))

	// First row: a b c. Second row: d e, centered.
	for _, tc := range []struct {
		id string
		x  float64
		y  float64
	}{
		{"a", -ColumnSpacing, RowSpacing},
		{"b", 0, RowSpacing},
		{"c", ColumnSpacing, RowSpacing},
		{"d", -ColumnSpacing / 2, 2 * RowSpacing},
		{"e", ColumnSpacing / 2, 2 * RowSpacing},
	} {
		pos, ok := positionOf(v, tc.id)
		if !ok {
			t.Fatalf("child %s missing from view", tc.id)
		}
		if pos.X != tc.x || pos.Y != tc.y {
			t.Errorf("child %s = %+v, want {%v %v}", tc.id, pos, tc.x, tc.y)
		}
	}
}

func TestVisible_EdgesRestrictedToView(t *testing.T) {
	g := fan(t, 2)
	// A node two hops away must not drag its edge into the view.
	if err := g.AddNode(mindgraph.Node{ID: "far"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(mindgraph.Edge{ID: "e-far", Source: "a", Target: "far"}); err != nil {
		t.Fatal(err)
	}

	v := Visible("focus", g)
	for _, e := range v.Edges {
		if e.Target == "far" {
			t.Errorf("edge %s reaches outside the visible set", e.ID)
		}
	}
	if len(v.Edges) != 3 {
		t.Errorf("got %d edges, want 3 (gp→focus, focus→a, focus→b)", len(v.Edges))
	}
}

func TestVisible_Deterministic(t *testing.T) {
	g := fan(t, 4)
	a := Visible("focus", g)
	b := Visible("focus", g)
	if len(a.Nodes) != len(b.Nodes) {
		t.Fatal("view size changed between calls")
	}
	for i := range a.Nodes {
		if a.Nodes[i].Node.ID != b.Nodes[i].Node.ID || a.Nodes[i].Position != b.Nodes[i].Position {
			t.Errorf("node %d differs between identical calls", i)
		}
	}
}

func TestLevels(t *testing.T) {
	g := fan(t, 2)
	positions := Levels(g)

	if len(positions) != 4 {
		t.Fatalf("got %d positions, want 4", len(positions))
	}
	if positions["gp"].Y != 0 {
		t.Errorf("root level Y = %v, want 0", positions["gp"].Y)
	}
	if positions["focus"].Y != RowSpacing {
		t.Errorf("level 1 Y = %v, want %v", positions["focus"].Y, RowSpacing)
	}
	if positions["a"].Y != 2*RowSpacing || positions["b"].Y != 2*RowSpacing {
		t.Error("children not on level 2 row")
	}
	if positions["a"].X == positions["b"].X {
		t.Error("siblings share an X position")
	}
}

func TestChildRing_Count(t *testing.T) {
	parent := mindgraph.Position{X: 100, Y: 50}
	ring := ChildRing(parent, 4)
	if len(ring) != 4 {
		t.Fatalf("got %d positions, want 4", len(ring))
	}
	for i, pos := range ring {
		dx := pos.X - parent.X
		if math.Abs(dx) > ColumnSpacing {
			t.Errorf("position %d too far from parent: dx=%v", i, dx)
		}
		if pos.Y < parent.Y+RowSpacing-ColumnSpacing {
			t.Errorf("position %d above the child band: %+v", i, pos)
		}
	}
}
