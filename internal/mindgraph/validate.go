package mindgraph

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on the graph: at least one root
// and no prerequisite cycles. Dangling edge references cannot occur
// (AddEdge rejects them), so the checks here are the ones that only
// make sense once the full graph is loaded.
// Returns a combined error describing all problems found, or nil.
func (g *Graph) Validate() error {
	var errs []string

	if len(g.nodes) == 0 {
		return nil
	}

	// Cycle check via Kahn: any node left with a positive in-degree
	// after the sweep is part of a cycle.
	if order := g.TopologicalOrder(); len(order) < len(g.nodes) {
		inOrder := make(map[string]bool, len(order))
		for _, id := range order {
			inOrder[id] = true
		}
		var cycleNodes []string
		for _, id := range g.order {
			if !inOrder[id] {
				cycleNodes = append(cycleNodes, id)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving nodes: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(g.Roots()) == 0 {
		errs = append(errs, "no root nodes (at least one node must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("mind map validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
