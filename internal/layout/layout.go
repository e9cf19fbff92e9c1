// Package layout computes 2D positions for mind map views. Everything
// here is pure and deterministic: the same graph and focus always
// produce the same coordinates.
package layout

import (
	"math"

	"github.com/abhisek/mindweave/internal/mindgraph"
)

const (
	// ColumnSpacing is the horizontal distance between sibling nodes.
	ColumnSpacing = 250.0
	// RowSpacing is the vertical distance between levels.
	RowSpacing = 200.0
	// maxPerRow caps how many children sit in one row of a focus view
	// before wrapping.
	maxPerRow = 3
)

// PlacedNode is a node with a view-relative position.
type PlacedNode struct {
	Node     mindgraph.Node     `json:"node"`
	Position mindgraph.Position `json:"position"`
}

// View is the positioned subset of a graph around a focus node.
type View struct {
	Nodes []PlacedNode     `json:"nodes"`
	Edges []mindgraph.Edge `json:"edges"`
}

// Visible computes the focus view: the focus node at the origin, its
// direct parents in a centered row above, and its direct children
// below. A single child is centered; two or three children share one
// evenly spaced row; four or more wrap into rows of at most three,
// each row centered. An empty or unknown focus id yields an empty
// view.
func Visible(focusID string, g *mindgraph.Graph) View {
	if focusID == "" || !g.Has(focusID) {
		return View{}
	}

	var placed []PlacedNode
	visible := make(map[string]bool)

	add := func(id string, pos mindgraph.Position) {
		n, err := g.Node(id)
		if err != nil {
			return
		}
		placed = append(placed, PlacedNode{Node: n, Position: pos})
		visible[id] = true
	}

	add(focusID, mindgraph.Position{})

	parents := g.Parents(focusID)
	for i, pos := range centeredRow(len(parents)) {
		pos.Y = -RowSpacing
		add(parents[i], pos)
	}

	children := g.Children(focusID)
	for start := 0; start < len(children); start += maxPerRow {
		end := min(start+maxPerRow, len(children))
		row := children[start:end]
		rowIdx := start / maxPerRow
		for i, pos := range centeredRow(len(row)) {
			pos.Y = RowSpacing * float64(rowIdx+1)
			add(row[i], pos)
		}
	}

	var edges []mindgraph.Edge
	for _, e := range g.Edges() {
		if visible[e.Source] && visible[e.Target] {
			edges = append(edges, e)
		}
	}

	return View{Nodes: placed, Edges: edges}
}

// centeredRow returns n x-positions centered on zero: one element sits
// at the origin, siblings spread symmetrically ColumnSpacing apart.
func centeredRow(n int) []mindgraph.Position {
	out := make([]mindgraph.Position, n)
	for i := range out {
		out[i].X = (float64(i) - float64(n-1)/2) * ColumnSpacing
	}
	return out
}

// Levels lays out the whole graph by depth: nodes at the same distance
// from a root share a row, each row centered on zero. Used when
// exporting a freshly generated map to the frontend.
func Levels(g *mindgraph.Graph) map[string]mindgraph.Position {
	depths := g.Depths()

	byLevel := make(map[int][]string)
	maxLevel := 0
	for _, id := range g.TopologicalOrder() {
		d := depths[id]
		byLevel[d] = append(byLevel[d], id)
		if d > maxLevel {
			maxLevel = d
		}
	}

	positions := make(map[string]mindgraph.Position, g.Len())
	for level := 0; level <= maxLevel; level++ {
		ids := byLevel[level]
		width := float64(len(ids))
		for i, id := range ids {
			positions[id] = mindgraph.Position{
				X: (float64(i) - width/2) * ColumnSpacing,
				Y: float64(level) * RowSpacing,
			}
		}
	}
	return positions
}

// ChildRing places count children on an arc under a parent, used when
// a single node is expanded in place. The vertical component is
// squashed so the fan reads as a tree level, not a circle.
func ChildRing(parent mindgraph.Position, count int) []mindgraph.Position {
	out := make([]mindgraph.Position, count)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(count)
		out[i] = mindgraph.Position{
			X: parent.X + ColumnSpacing*math.Cos(angle),
			Y: parent.Y + RowSpacing + ColumnSpacing*math.Sin(angle)*0.5,
		}
	}
	return out
}
