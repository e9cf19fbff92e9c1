package server

import (
	"github.com/abhisek/mindweave/internal/mindgraph"
	"github.com/abhisek/mindweave/internal/progress"
	"github.com/abhisek/mindweave/internal/questions"
)

// FlowNodeData is the payload the frontend renders inside a node.
type FlowNodeData struct {
	Label   string `json:"label"`
	Content string `json:"content"`
	Status  string `json:"status,omitempty"`
}

// FlowNode is a graph node in the frontend wire format.
type FlowNode struct {
	ID       string             `json:"id"`
	Type     string             `json:"type"`
	Position mindgraph.Position `json:"position"`
	Data     FlowNodeData       `json:"data"`
}

// FlowEdge is a graph edge in the frontend wire format.
type FlowEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

const nodeType = "mindmap"

type initSessionRequest struct {
	SessionID string     `json:"session_id"`
	Nodes     []FlowNode `json:"nodes"`
	Edges     []FlowEdge `json:"edges"`
}

type initSessionResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

type sessionDataResponse struct {
	Nodes    []FlowNode                `json:"nodes"`
	Edges    []FlowEdge                `json:"edges"`
	Progress map[string]progress.Entry `json:"progress"`
}

type progressResponse struct {
	Nodes map[string]progress.Entry `json:"nodes"`
}

type relatedNode struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

type generateQuestionsRequest struct {
	SessionID   string        `json:"session_id"`
	NodeID      string        `json:"node_id"`
	NodeLabel   string        `json:"node_label"`
	NodeContent string        `json:"node_content"`
	ParentNodes []relatedNode `json:"parent_nodes"`
	ChildNodes  []relatedNode `json:"child_nodes"`
}

type questionsResponse struct {
	NodeID    string              `json:"node_id"`
	Questions []progress.Question `json:"questions"`
	Status    progress.Status     `json:"status"`
}

type answerRequest struct {
	SessionID  string `json:"session_id"`
	NodeID     string `json:"node_id"`
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type answerResponse struct {
	QuestionID string          `json:"question_id"`
	Feedback   string          `json:"feedback"`
	Grade      int             `json:"grade"`
	Passed     bool            `json:"passed"`
	NodeStatus progress.Status `json:"node_status"`
	AllPassed  bool            `json:"all_passed"`
}

type nodeRequest struct {
	SessionID string `json:"session_id"`
	NodeID    string `json:"node_id"`
}

type unlockCheckResponse struct {
	Unlockable              bool     `json:"unlockable"`
	Reason                  string   `json:"reason"`
	IncompletePrerequisites []string `json:"incomplete_prerequisites,omitempty"`
}

type updateStatusRequest struct {
	SessionID string `json:"session_id"`
	NodeID    string `json:"node_id"`
	Status    string `json:"status"`
}

type createMindmapRequest struct {
	SessionID string `json:"session_id"`
	Topic     string `json:"topic"`
	MaxDepth  int    `json:"max_depth"`
}

type expandNodeRequest struct {
	SessionID   string `json:"session_id"`
	NodeID      string `json:"node_id"`
	MaxChildren int    `json:"max_children"`
}

type graphResponse struct {
	Nodes []FlowNode `json:"nodes"`
	Edges []FlowEdge `json:"edges"`
}

type chatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func toRelated(rs []relatedNode) []questions.RelatedNode {
	out := make([]questions.RelatedNode, 0, len(rs))
	for _, r := range rs {
		out = append(out, questions.RelatedNode{Label: r.Label, Content: r.Content})
	}
	return out
}

// neighborContext collects a node's label, content and direct
// neighbors from the graph for prompting.
func neighborContext(g *mindgraph.Graph, nodeID string) (questions.NodeContext, error) {
	n, err := g.Node(nodeID)
	if err != nil {
		return questions.NodeContext{}, err
	}

	nc := questions.NodeContext{Label: n.Label, Content: n.Content}
	for _, pid := range g.Parents(nodeID) {
		if p, err := g.Node(pid); err == nil {
			nc.Parents = append(nc.Parents, questions.RelatedNode{Label: p.Label, Content: p.Content})
		}
	}
	for _, cid := range g.Children(nodeID) {
		if c, err := g.Node(cid); err == nil {
			nc.Children = append(nc.Children, questions.RelatedNode{Label: c.Label, Content: c.Content})
		}
	}
	return nc, nil
}
