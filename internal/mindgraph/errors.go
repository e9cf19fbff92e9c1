package mindgraph

import "fmt"

// NotFoundError indicates a node or edge reference to an unknown id.
type NotFoundError struct {
	Kind string // "node" or "edge"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.ID)
}

// ErrDuplicateNode indicates an attempt to add a node whose id already
// exists in the graph.
type ErrDuplicateNode struct {
	ID string
}

func (e *ErrDuplicateNode) Error() string {
	return fmt.Sprintf("duplicate node id: %q", e.ID)
}
