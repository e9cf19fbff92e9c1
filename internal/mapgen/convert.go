package mapgen

import (
	"fmt"

	"github.com/abhisek/mindweave/internal/layout"
	"github.com/abhisek/mindweave/internal/mindgraph"
)

// EdgeID is the id of a parent-to-child edge in generated maps.
func EdgeID(parentID, childID string) string {
	return fmt.Sprintf("e-%s-%s", parentID, childID)
}

// Build assembles generated nodes into a validated graph with
// level-based positions. A child referencing an unknown parent is an
// error; so is a generated cycle.
func Build(nodes []GenNode) (*mindgraph.Graph, error) {
	g := mindgraph.New()

	for _, n := range nodes {
		err := g.AddNode(mindgraph.Node{
			ID:      n.ID,
			Label:   n.Label,
			Content: n.Content,
		})
		if err != nil {
			return nil, fmt.Errorf("add node %q: %w", n.ID, err)
		}
	}

	for _, n := range nodes {
		if n.ParentID == "" {
			continue
		}
		err := g.AddEdge(mindgraph.Edge{
			ID:     EdgeID(n.ParentID, n.ID),
			Source: n.ParentID,
			Target: n.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("add edge %s: %w", EdgeID(n.ParentID, n.ID), err)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("generated map invalid: %w", err)
	}

	for id, pos := range layout.Levels(g) {
		if err := g.SetPosition(id, pos); err != nil {
			return nil, err
		}
	}

	return g, nil
}
