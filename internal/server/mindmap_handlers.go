package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/mindweave/internal/layout"
	"github.com/abhisek/mindweave/internal/mapgen"
	"github.com/abhisek/mindweave/internal/mindgraph"
	"github.com/abhisek/mindweave/internal/progress"
	"github.com/abhisek/mindweave/internal/session"
	"github.com/abhisek/mindweave/internal/store"
)

// handleCreateMindmap generates a full map for a topic and installs it
// as the session's graph.
func (s *Server) handleCreateMindmap(w http.ResponseWriter, r *http.Request) {
	var req createMindmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.SessionID == "" || req.Topic == "" {
		writeError(w, fmt.Errorf("session_id and topic are required"))
		return
	}

	gen := s.mapgen
	if req.MaxDepth != 0 {
		gen = s.mapgenWithDepth(req.MaxDepth)
	}

	genNodes, err := gen.Generate(r.Context(), req.Topic)
	if err != nil {
		writeError(w, err)
		return
	}

	g, err := mapgen.Build(genNodes)
	if err != nil {
		writeError(w, err)
		return
	}

	sess := s.sessions.GetOrCreate(req.SessionID)
	var resp graphResponse
	err = sess.Do(func(st *session.State) error {
		st.Graph = g
		st.Tracker = progress.NewTracker(g)
		resp.Nodes = flowNodes(st)
		resp.Edges = flowEdges(g)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	s.recordSessionEvent(r.Context(), store.SessionEventData{
		SessionID: req.SessionID,
		Action:    "generate",
		NodeCount: g.Len(),
		EdgeCount: len(g.Edges()),
	})

	writeJSON(w, http.StatusOK, resp)
}

// mapgenWithDepth returns a generator matching s.mapgen but with the
// requested depth. Depth is clamped to the valid range.
func (s *Server) mapgenWithDepth(depth int) *mapgen.Generator {
	cfg := s.mapgen.Config()
	cfg.MaxDepth = depth
	return mapgen.New(s.mapgen.Provider(), cfg)
}

// handleExpandNode generates children for one node and grafts them
// into the session graph. New nodes start locked unless their
// prerequisites are already met.
func (s *Server) handleExpandNode(w http.ResponseWriter, r *http.Request) {
	var req expandNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok || !sess.Initialized() {
		writeError(w, &mindgraph.NotFoundError{Kind: "session", ID: req.SessionID})
		return
	}

	gen := s.mapgen
	if req.MaxChildren != 0 {
		cfg := s.mapgen.Config()
		cfg.MaxChildren = req.MaxChildren
		gen = mapgen.New(s.mapgen.Provider(), cfg)
	}

	var resp graphResponse
	err := sess.Do(func(st *session.State) error {
		parent, err := st.Graph.Node(req.NodeID)
		if err != nil {
			return err
		}

		children, err := gen.GenerateChildren(r.Context(), mapgen.GenNode{
			ID:      parent.ID,
			Label:   parent.Label,
			Content: parent.Content,
		})
		if err != nil {
			return err
		}

		positions := layout.ChildRing(parent.Position, len(children))
		for i, c := range children {
			if st.Graph.Has(c.ID) {
				continue
			}
			node := mindgraph.Node{ID: c.ID, Label: c.Label, Content: c.Content, Position: positions[i]}
			if err := st.Graph.AddNode(node); err != nil {
				return err
			}
			edge := mindgraph.Edge{ID: mapgen.EdgeID(parent.ID, c.ID), Source: parent.ID, Target: c.ID}
			if err := st.Graph.AddEdge(edge); err != nil {
				return err
			}
			if err := st.Tracker.Track(c.ID); err != nil {
				return err
			}

			status := ""
			if e, err := st.Tracker.Entry(c.ID); err == nil {
				status = string(e.Status)
			}
			resp.Nodes = append(resp.Nodes, FlowNode{
				ID:       c.ID,
				Type:     nodeType,
				Position: positions[i],
				Data:     FlowNodeData{Label: c.Label, Content: c.Content, Status: status},
			})
			resp.Edges = append(resp.Edges, FlowEdge{ID: edge.ID, Source: edge.Source, Target: edge.Target, Type: nodeType})
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleUpdateStatus applies an explicit status change. Locked nodes
// with unmet prerequisites are a 409.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}

	status, err := progress.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok || !sess.Initialized() {
		writeError(w, &mindgraph.NotFoundError{Kind: "session", ID: req.SessionID})
		return
	}

	err = sess.Do(func(st *session.State) error {
		return st.Tracker.SetStatus(req.NodeID, status)
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": req.Status})
}

type nodeDataResponse struct {
	Node     FlowNode       `json:"node"`
	Progress progress.Entry `json:"progress"`
	Parents  []FlowNode     `json:"parents"`
	Children []FlowNode     `json:"children"`
}

func (s *Server) handleNodeData(w http.ResponseWriter, r *http.Request) {
	nodeID := r.PathValue("id")

	sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var resp nodeDataResponse
	err = sess.Do(func(st *session.State) error {
		n, err := st.Graph.Node(nodeID)
		if err != nil {
			return err
		}
		entry, err := st.Tracker.Entry(nodeID)
		if err != nil {
			return err
		}

		resp.Node = FlowNode{
			ID:       n.ID,
			Type:     nodeType,
			Position: n.Position,
			Data:     FlowNodeData{Label: n.Label, Content: n.Content, Status: string(entry.Status)},
		}
		resp.Progress = entry
		resp.Parents = relatedFlowNodes(st, st.Graph.Parents(nodeID))
		resp.Children = relatedFlowNodes(st, st.Graph.Children(nodeID))
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleMapView renders the focus view: focus at the origin, parents
// above, children in wrapped rows below.
func (s *Server) handleMapView(w http.ResponseWriter, r *http.Request) {
	focusID := r.URL.Query().Get("focus")

	sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var view layout.View
	err = sess.Do(func(st *session.State) error {
		view = layout.Visible(focusID, st.Graph)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func relatedFlowNodes(st *session.State, ids []string) []FlowNode {
	out := make([]FlowNode, 0, len(ids))
	for _, id := range ids {
		n, err := st.Graph.Node(id)
		if err != nil {
			continue
		}
		status := ""
		if e, err := st.Tracker.Entry(id); err == nil {
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
