package mindgraph

import (
	"sort"
)

// Graph holds one session's mind map: topic nodes and directed
// prerequisite edges, with parent/child indices kept up to date as
// edges are added. One Graph belongs to one session and is not safe
// for concurrent use; the session layer serializes access.
type Graph struct {
	nodes    map[string]*Node
	order    []string // node ids in insertion order
	edges    []Edge
	parents  map[string]map[string]bool // target -> set of sources
	children map[string]map[string]bool // source -> set of targets
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		parents:  make(map[string]map[string]bool),
		children: make(map[string]map[string]bool),
	}
}

// AddNode adds a node to the graph. Adding an id that already exists
// returns ErrDuplicateNode and leaves the graph unchanged.
func (g *Graph) AddNode(n Node) error {
	if _, ok := g.nodes[n.ID]; ok {
		return &ErrDuplicateNode{ID: n.ID}
	}
	copied := n
	g.nodes[n.ID] = &copied
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge adds a directed prerequisite edge. Both endpoints must
// already exist; an unknown endpoint returns NotFoundError. A second
// edge between the same pair is a no-op.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.Source]; !ok {
		return &NotFoundError{Kind: "node", ID: e.Source}
	}
	if _, ok := g.nodes[e.Target]; !ok {
		return &NotFoundError{Kind: "node", ID: e.Target}
	}
	if g.children[e.Source][e.Target] {
		return nil
	}
	if g.children[e.Source] == nil {
		g.children[e.Source] = make(map[string]bool)
	}
	if g.parents[e.Target] == nil {
		g.parents[e.Target] = make(map[string]bool)
	}
	g.children[e.Source][e.Target] = true
	g.parents[e.Target][e.Source] = true
	g.edges = append(g.edges, e)
	return nil
}

// Node returns a node by id.
func (g *Graph) Node(id string) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, &NotFoundError{Kind: "node", ID: id}
	}
	return *n, nil
}

// Has reports whether a node id exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// SetPosition moves a node on the canvas.
func (g *Graph) SetPosition(id string, pos Position) error {
	n, ok := g.nodes[id]
	if !ok {
		return &NotFoundError{Kind: "node", ID: id}
	}
	n.Position = pos
	return nil
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Parents returns the ids of a node's direct prerequisites, sorted.
func (g *Graph) Parents(id string) []string {
	return sortedKeys(g.parents[id])
}

// Children returns the ids of the nodes that directly depend on the
// given node, sorted.
func (g *Graph) Children(id string) []string {
	return sortedKeys(g.children[id])
}

// Roots returns the ids of all nodes with no incoming edges, in
// insertion order.
func (g *Graph) Roots() []string {
	var roots []string
	for _, id := range g.order {
		if len(g.parents[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// TopologicalOrder returns node ids in a valid topological order
// (Kahn's algorithm, deterministic via sorted tie-breaking). If the
// graph contains a cycle the result is shorter than Len(); Validate
// reports the cycle explicitly.
func (g *Graph) TopologicalOrder() []string {
	inDegree := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		inDegree[id] = len(g.parents[id])
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, childID := range sortedKeys(g.children[id]) {
			inDegree[childID]--
			if inDegree[childID] == 0 {
				queue = append(queue, childID)
			}
		}
	}
	return order
}

// Depths returns each node's distance from the nearest root, following
// topological order. Used by the layout engine for level placement.
func (g *Graph) Depths() map[string]int {
	depths := make(map[string]int, len(g.nodes))
	for _, id := range g.TopologicalOrder() {
		d := 0
		for parentID := range g.parents[id] {
			if pd, ok := depths[parentID]; ok && pd+1 > d {
				d = pd + 1
			}
		}
		depths[id] = d
	}
	return depths
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
