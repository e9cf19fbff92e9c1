package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/mindweave/internal/mindgraph"
	"github.com/abhisek/mindweave/internal/progress"
	"github.com/abhisek/mindweave/internal/questions"
	"github.com/abhisek/mindweave/internal/session"
	"github.com/abhisek/mindweave/internal/store"
)

// handleGenerateQuestions returns the node's questions, generating
// them on first request. Subsequent calls are idempotent: existing
// questions come back unchanged.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req generateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok || !sess.Initialized() {
		writeError(w, &mindgraph.NotFoundError{Kind: "session", ID: req.SessionID})
		return
	}

	var resp questionsResponse
	err := sess.Do(func(st *session.State) error {
		// A node the frontend knows but the graph doesn't yet gets
		// registered from the request payload.
		if !st.Graph.Has(req.NodeID) && req.NodeLabel != "" {
			if err := st.Graph.AddNode(mindgraph.Node{ID: req.NodeID, Label: req.NodeLabel, Content: req.NodeContent}); err != nil {
				return err
			}
			if err := st.Tracker.Track(req.NodeID); err != nil {
				return err
			}
		}

		entry, err := st.Tracker.Entry(req.NodeID)
		if err != nil {
			return err
		}
		if len(entry.Questions) > 0 {
			resp = questionsResponse{NodeID: req.NodeID, Questions: entry.Questions, Status: entry.Status}
			return nil
		}

		nc := questions.NodeContext{
			Label:    req.NodeLabel,
			Content:  req.NodeContent,
			Parents:  toRelated(req.ParentNodes),
			Children: toRelated(req.ChildNodes),
		}
		if nc.Content == "" {
			nc, err = neighborContext(st.Graph, req.NodeID)
			if err != nil {
				return err
			}
		}

		qs, err := s.questions.Generate(r.Context(), nc)
		if err != nil {
			return err
		}
		if err := st.Tracker.AddQuestions(req.NodeID, qs); err != nil {
			return err
		}

		entry, err = st.Tracker.Entry(req.NodeID)
		if err != nil {
			return err
		}
		resp = questionsResponse{NodeID: req.NodeID, Questions: entry.Questions, Status: entry.Status}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleAnswer grades an answer and applies the result. A passing
// grade on the last open question completes the node and unlocks
// eligible children in the same request.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok || !sess.Initialized() {
		writeError(w, &mindgraph.NotFoundError{Kind: "session", ID: req.SessionID})
		return
	}

	var resp answerResponse
	var result progress.ApplyResult
	err := sess.Do(func(st *session.State) error {
		entry, err := st.Tracker.Entry(req.NodeID)
		if err != nil {
			return err
		}

		var questionText string
		for _, q := range entry.Questions {
			if q.ID == req.QuestionID {
				questionText = q.Text
				break
			}
		}
		if questionText == "" {
			return &progress.QuestionNotFoundError{NodeID: req.NodeID, QuestionID: req.QuestionID}
		}

		// Check the gate before paying for a grading call.
		if entry.Status == progress.StatusLocked {
			unlockable, pending, err := st.Tracker.IsUnlockable(req.NodeID)
			if err != nil {
				return err
			}
			if !unlockable {
				return &progress.LockedNodeError{NodeID: req.NodeID, Pending: pending}
			}
		}

		node, err := st.Graph.Node(req.NodeID)
		if err != nil {
			return err
		}

		grading, err := s.questions.Grade(r.Context(), req.QuestionID, questionText, req.Answer, node.Content)
		if err != nil {
			return err
		}

		result, err = st.Tracker.ApplyGrading(req.NodeID, req.QuestionID, req.Answer, grading)
		if err != nil {
			return err
		}

		resp = answerResponse{
			QuestionID: req.QuestionID,
			Feedback:   result.Question.Feedback,
			Grade:      result.Question.Grade,
			Passed:     result.Question.Status == progress.QuestionPassed,
			NodeStatus: result.NodeStatus,
			AllPassed:  result.AllPassed,
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	s.recordGradingEvent(r.Context(), store.GradingEventData{
		SessionID:  req.SessionID,
		NodeID:     req.NodeID,
		QuestionID: req.QuestionID,
		Attempt:    result.Question.Attempts,
		Grade:      result.Question.Grade,
		Passed:     result.Question.Status == progress.QuestionPassed,
		NodeStatus: string(result.NodeStatus),
	})

	writeJSON(w, http.StatusOK, resp)
}

// handleRegenerate archives the node's questions so a fresh set can be
// generated.
func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	var req nodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok || !sess.Initialized() {
		writeError(w, &mindgraph.NotFoundError{Kind: "session", ID: req.SessionID})
		return
	}

	err := sess.Do(func(st *session.State) error {
		return st.Tracker.ResetQuestions(req.NodeID)
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Questions reset successfully. Generate new questions with the generate endpoint.",
	})
}

func (s *Server) handleCheckUnlockable(w http.ResponseWriter, r *http.Request) {
	var req nodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok || !sess.Initialized() {
		writeError(w, &mindgraph.NotFoundError{Kind: "session", ID: req.SessionID})
		return
	}

	var resp unlockCheckResponse
	err := sess.Do(func(st *session.State) error {
		unlockable, pending, err := st.Tracker.IsUnlockable(req.NodeID)
		if err != nil {
			return err
		}
		resp = unlockCheckResponse{
			Unlockable:              unlockable,
			IncompletePrerequisites: pending,
		}
		if unlockable {
			resp.Reason = "All prerequisites completed"
		} else {
			resp.Reason = fmt.Sprintf("%d prerequisite(s) not completed", len(pending))
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
