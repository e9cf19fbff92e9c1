package mindgraph

// Position is a 2D coordinate used by the frontend canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single topic in the mind map.
// Identity fields are fixed once added; Position may be moved by the
// user or by the layout engine.
type Node struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Content  string   `json:"content"`
	Position Position `json:"position"`
}

// Edge is a directed prerequisite relationship: Source must be
// completed before Target unlocks.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}
