package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindweave/internal/chat"
	"github.com/abhisek/mindweave/internal/mindgraph"
	"github.com/abhisek/mindweave/internal/session"
)

type chatHistoryResponse struct {
	NodeID   string         `json:"node_id"`
	Messages []chat.Message `json:"messages"`
}

// handleChatHistory returns the node's conversation. A first visit
// seeds the history with a welcome message.
func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	nodeID := r.PathValue("nodeID")

	sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var resp chatHistoryResponse
	err = sess.Do(func(st *session.State) error {
		n, err := st.Graph.Node(nodeID)
		if err != nil {
			return err
		}
		if len(st.Chats[nodeID]) == 0 {
			st.Chats[nodeID] = []chat.Message{s.chat.Welcome(n.Label)}
		}
		resp = chatHistoryResponse{NodeID: nodeID, Messages: st.Chats[nodeID]}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleChatMessage appends the user's message and generates the
// tutor's reply.
func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	nodeID := r.PathValue("nodeID")

	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.Message == "" {
		writeError(w, fmt.Errorf("message is required"))
		return
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok || !sess.Initialized() {
		writeError(w, &mindgraph.NotFoundError{Kind: "session", ID: req.SessionID})
		return
	}

	var reply chat.Message
	err := sess.Do(func(st *session.State) error {
		nc, err := neighborContext(st.Graph, nodeID)
		if err != nil {
			return err
		}

		history := st.Chats[nodeID]
		if len(history) == 0 {
			history = []chat.Message{s.chat.Welcome(nc.Label)}
		}
		history = append(history, chat.Message{
			ID:        uuid.NewString(),
			Role:      "user",
			Content:   req.Message,
			CreatedAt: time.Now(),
		})

		reply, err = s.chat.Reply(r.Context(), nc, history)
		if err != nil {
			return err
		}

		st.Chats[nodeID] = append(history, reply)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}
