package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/mindweave/internal/mindgraph"
	"github.com/abhisek/mindweave/internal/progress"
	"github.com/abhisek/mindweave/internal/session"
	"github.com/abhisek/mindweave/internal/store"
)

// handleInitSession loads a graph into a session and seeds progress.
// The graph must be a DAG with at least one root; anything else is a
// 400.
func (s *Server) handleInitSession(w http.ResponseWriter, r *http.Request) {
	var req initSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.SessionID == "" {
		writeError(w, fmt.Errorf("session_id is required"))
		return
	}

	g, err := buildGraph(req.Nodes, req.Edges)
	if err != nil {
		writeError(w, err)
		return
	}

	sess := s.sessions.GetOrCreate(req.SessionID)
	err = sess.Do(func(st *session.State) error {
		st.Graph = g
		st.Tracker = progress.NewTracker(g)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	s.recordSessionEvent(r.Context(), store.SessionEventData{
		SessionID: req.SessionID,
		Action:    "init",
		NodeCount: g.Len(),
		EdgeCount: len(g.Edges()),
	})

	writeJSON(w, http.StatusOK, initSessionResponse{
		Message:   "Session initialized successfully",
		SessionID: req.SessionID,
		NodeCount: g.Len(),
		EdgeCount: len(g.Edges()),
	})
}

func (s *Server) handleSessionData(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var resp sessionDataResponse
	err = sess.Do(func(st *session.State) error {
		resp.Nodes = flowNodes(st)
		resp.Edges = flowEdges(st.Graph)
		resp.Progress = st.Tracker.Entries()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var resp progressResponse
	err = sess.Do(func(st *session.State) error {
		resp.Nodes = st.Tracker.Entries()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// session resolves the session from the session_id query parameter.
// Unknown or uninitialized sessions are a 404.
func (s *Server) session(r *http.Request) (*session.Session, error) {
	id := r.URL.Query().Get("session_id")
	if id == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	sess, ok := s.sessions.Get(id)
	if !ok || !sess.Initialized() {
		return nil, &mindgraph.NotFoundError{Kind: "session", ID: id}
	}
	return sess, nil
}

// buildGraph assembles and validates a graph from wire-format nodes
// and edges.
func buildGraph(nodes []FlowNode, edges []FlowEdge) (*mindgraph.Graph, error) {
	g := mindgraph.New()

	for _, n := range nodes {
		err := g.AddNode(mindgraph.Node{
			ID:       n.ID,
			Label:    n.Data.Label,
			Content:  n.Data.Content,
			Position: n.Position,
		})
		if err != nil {
			return nil, err
		}
	}

	for _, e := range edges {
		err := g.AddEdge(mindgraph.Edge{ID: e.ID, Source: e.Source, Target: e.Target})
		if err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// flowNodes renders the graph with each node's current status folded
// in.
func flowNodes(st *session.State) []FlowNode {
	out := make([]FlowNode, 0, st.Graph.Len())
	for _, n := range st.Graph.Nodes() {
		status := ""
		if e, err := st.Tracker.Entry(n.ID); err == nil {
			status = string(e.Status)
		}
		out = append(out, FlowNode{
			ID:       n.ID,
			Type:     nodeType,
			Position: n.Position,
			Data:     FlowNodeData{Label: n.Label, Content: n.Content, Status: status},
		})
	}
	return out
}

func flowEdges(g *mindgraph.Graph) []FlowEdge {
	edges := g.Edges()
	out := make([]FlowEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, FlowEdge{ID: e.ID, Source: e.Source, Target: e.Target, Type: nodeType})
	}
	return out
}
