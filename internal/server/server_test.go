package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhisek/mindweave/internal/chat"
	"github.com/abhisek/mindweave/internal/llm"
	"github.com/abhisek/mindweave/internal/mapgen"
	"github.com/abhisek/mindweave/internal/progress"
	"github.com/abhisek/mindweave/internal/questions"
	"github.com/abhisek/mindweave/internal/session"
)

func newTestServer(t *testing.T, responses ...llm.MockResponse) (http.Handler, *llm.MockProvider) {
	t.Helper()

	mock := llm.NewMockProvider(responses...)
	srv := New(
		session.NewMemoryStore(),
		questions.New(mock, questions.DefaultConfig()),
		mapgen.New(mock, mapgen.DefaultConfig()),
		chat.New(mock, chat.DefaultConfig()),
		Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
	)
	return srv.Handler(), mock
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// initSession loads a two-level graph: root "a" with children "b" and
// "c".
func initSession(t *testing.T, h http.Handler, sessionID string) {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/api/session/init", initSessionRequest{
		SessionID: sessionID,
		Nodes: []FlowNode{
			{ID: "a", Data: FlowNodeData{Label: "Trees", Content: "Hierarchical structures."}},
			{ID: "b", Data: FlowNodeData{Label: "Binary Trees", Content: "At most two children."}},
			{ID: "c", Data: FlowNodeData{Label: "Tries", Content: "Prefix trees."}},
		},
		Edges: []FlowEdge{
			{ID: "e-a-b", Source: "a", Target: "b"},
			{ID: "e-a-c", Source: "a", Target: "c"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("init session: status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	decode(t, rec, &resp)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}

func TestInitSession(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/session/init", initSessionRequest{
		SessionID: "s1",
		Nodes: []FlowNode{
			{ID: "a", Data: FlowNodeData{Label: "Root"}},
			{ID: "b", Data: FlowNodeData{Label: "Child"}},
		},
		Edges: []FlowEdge{{ID: "e-a-b", Source: "a", Target: "b"}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp initSessionResponse
	decode(t, rec, &resp)
	if resp.NodeCount != 2 || resp.EdgeCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", resp.NodeCount, resp.EdgeCount)
	}

	rec = do(t, h, http.MethodGet, "/api/session/data?session_id=s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("session data: status %d", rec.Code)
	}

	var data sessionDataResponse
	decode(t, rec, &data)
	if len(data.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(data.Nodes))
	}
	if data.Progress["a"].Status != progress.StatusNotStarted {
		t.Errorf("root status = %q, want not_started", data.Progress["a"].Status)
	}
	if data.Progress["b"].Status != progress.StatusLocked {
		t.Errorf("child status = %q, want locked", data.Progress["b"].Status)
	}
}

func TestInitSessionRejectsCycle(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/session/init", initSessionRequest{
		SessionID: "s1",
		Nodes: []FlowNode{
			{ID: "a", Data: FlowNodeData{Label: "A"}},
			{ID: "b", Data: FlowNodeData{Label: "B"}},
		},
		Edges: []FlowEdge{
			{ID: "e-a-b", Source: "a", Target: "b"},
			{ID: "e-b-a", Source: "b", Target: "a"},
		},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestInitSessionRequiresID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/session/init", initSessionRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUnknownSession(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/session/data?session_id=nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestQuestionLifecycle(t *testing.T) {
	h, mock := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`{"questions":[{"text":"What defines a tree?"}]}`)},
		llm.MockResponse{Content: json.RawMessage(`{"feedback":"Solid answer.","grade":90,"passed":true}`)},
	)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/questions/generate", generateQuestionsRequest{
		SessionID:   "s1",
		NodeID:      "a",
		NodeLabel:   "Trees",
		NodeContent: "Hierarchical structures.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate: status %d: %s", rec.Code, rec.Body.String())
	}

	var qResp questionsResponse
	decode(t, rec, &qResp)
	if len(qResp.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(qResp.Questions))
	}
	questionID := qResp.Questions[0].ID

	// A second generate returns the same set without another call.
	calls := mock.CallCount()
	rec = do(t, h, http.MethodPost, "/api/questions/generate", generateQuestionsRequest{
		SessionID: "s1", NodeID: "a", NodeLabel: "Trees", NodeContent: "Hierarchical structures.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("regenerate request: status %d", rec.Code)
	}
	var again questionsResponse
	decode(t, rec, &again)
	if len(again.Questions) != 1 || again.Questions[0].ID != questionID {
		t.Errorf("second generate returned a different question set")
	}
	if mock.CallCount() != calls {
		t.Errorf("second generate hit the provider")
	}

	rec = do(t, h, http.MethodPost, "/api/questions/answer", answerRequest{
		SessionID:  "s1",
		NodeID:     "a",
		QuestionID: questionID,
		Answer:     "A connected acyclic graph with a root.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("answer: status %d: %s", rec.Code, rec.Body.String())
	}

	var aResp answerResponse
	decode(t, rec, &aResp)
	if !aResp.Passed || aResp.Grade != 90 {
		t.Errorf("passed=%v grade=%d, want passed with 90", aResp.Passed, aResp.Grade)
	}
	if aResp.NodeStatus != progress.StatusCompleted || !aResp.AllPassed {
		t.Errorf("node status = %q all_passed=%v, want completed/true", aResp.NodeStatus, aResp.AllPassed)
	}

	// Completing the root unlocks both children.
	rec = do(t, h, http.MethodGet, "/api/session/progress?session_id=s1", nil)
	var pResp progressResponse
	decode(t, rec, &pResp)
	for _, id := range []string{"b", "c"} {
		if pResp.Nodes[id].Status != progress.StatusNotStarted {
			t.Errorf("node %s status = %q, want not_started after unlock", id, pResp.Nodes[id].Status)
		}
	}
}

func TestAnswerFailingGrade(t *testing.T) {
	h, _ := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`{"questions":[{"text":"Q1"},{"text":"Q2"}]}`)},
		llm.MockResponse{Content: json.RawMessage(`{"feedback":"Missed the key point.","grade":40,"passed":false}`)},
	)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/questions/generate", generateQuestionsRequest{
		SessionID: "s1", NodeID: "a", NodeLabel: "Trees", NodeContent: "Hierarchical structures.",
	})
	var qResp questionsResponse
	decode(t, rec, &qResp)

	rec = do(t, h, http.MethodPost, "/api/questions/answer", answerRequest{
		SessionID:  "s1",
		NodeID:     "a",
		QuestionID: qResp.Questions[0].ID,
		Answer:     "Not sure.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("answer: status %d: %s", rec.Code, rec.Body.String())
	}

	var aResp answerResponse
	decode(t, rec, &aResp)
	if aResp.Passed || aResp.AllPassed {
		t.Errorf("failing answer reported as passed")
	}
	if aResp.NodeStatus != progress.StatusInProgress {
		t.Errorf("node status = %q, want in_progress", aResp.NodeStatus)
	}
}

func TestAnswerLockedNode(t *testing.T) {
	h, mock := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`{"questions":[{"text":"Q1"}]}`)},
	)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/questions/generate", generateQuestionsRequest{
		SessionID: "s1", NodeID: "b", NodeLabel: "Binary Trees", NodeContent: "At most two children.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate: status %d", rec.Code)
	}
	var qResp questionsResponse
	decode(t, rec, &qResp)

	calls := mock.CallCount()
	rec = do(t, h, http.MethodPost, "/api/questions/answer", answerRequest{
		SessionID:  "s1",
		NodeID:     "b",
		QuestionID: qResp.Questions[0].ID,
		Answer:     "Two children max.",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if mock.CallCount() != calls {
		t.Errorf("locked node answer still hit the provider")
	}
}

func TestAnswerUnknownQuestion(t *testing.T) {
	h, _ := newTestServer(t)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/questions/answer", answerRequest{
		SessionID:  "s1",
		NodeID:     "a",
		QuestionID: "missing",
		Answer:     "anything",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	h, _ := newTestServer(t,
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/questions/generate", generateQuestionsRequest{
		SessionID: "s1", NodeID: "a", NodeLabel: "Trees", NodeContent: "Hierarchical structures.",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestRegenerate(t *testing.T) {
	h, _ := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`{"questions":[{"text":"Q1"}]}`)},
		llm.MockResponse{Content: json.RawMessage(`{"questions":[{"text":"Q2"}]}`)},
	)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/questions/generate", generateQuestionsRequest{
		SessionID: "s1", NodeID: "a", NodeLabel: "Trees", NodeContent: "Hierarchical structures.",
	})
	var first questionsResponse
	decode(t, rec, &first)

	rec = do(t, h, http.MethodPost, "/api/questions/regenerate", nodeRequest{SessionID: "s1", NodeID: "a"})
	if rec.Code != http.StatusOK {
		t.Fatalf("regenerate: status %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/api/questions/generate", generateQuestionsRequest{
		SessionID: "s1", NodeID: "a", NodeLabel: "Trees", NodeContent: "Hierarchical structures.",
	})
	var second questionsResponse
	decode(t, rec, &second)
	if len(second.Questions) != 1 || second.Questions[0].Text != "Q2" {
		t.Errorf("regenerated questions = %+v, want fresh set", second.Questions)
	}
	if second.Questions[0].ID == first.Questions[0].ID {
		t.Errorf("regenerated question kept the old ID")
	}
}

func TestCheckUnlockable(t *testing.T) {
	h, _ := newTestServer(t)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/questions/check-unlockable", nodeRequest{SessionID: "s1", NodeID: "a"})
	var root unlockCheckResponse
	decode(t, rec, &root)
	if !root.Unlockable {
		t.Errorf("root not unlockable: %+v", root)
	}

	rec = do(t, h, http.MethodPost, "/api/questions/check-unlockable", nodeRequest{SessionID: "s1", NodeID: "b"})
	var child unlockCheckResponse
	decode(t, rec, &child)
	if child.Unlockable {
		t.Errorf("locked child reported unlockable")
	}
	if len(child.IncompletePrerequisites) != 1 || child.IncompletePrerequisites[0] != "a" {
		t.Errorf("pending = %v, want [a]", child.IncompletePrerequisites)
	}
}

func TestCreateMindmap(t *testing.T) {
	h, _ := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`{"nodes":[{"id":"1","label":"Go","content":"A compiled language."}]}`)},
	)

	rec := do(t, h, http.MethodPost, "/api/mindmap/create", createMindmapRequest{
		SessionID: "s1",
		Topic:     "Go",
		MaxDepth:  1,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp graphResponse
	decode(t, rec, &resp)
	if len(resp.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(resp.Nodes))
	}
	if resp.Nodes[0].Data.Status != string(progress.StatusNotStarted) {
		t.Errorf("root status = %q, want not_started", resp.Nodes[0].Data.Status)
	}

	// The generated map becomes the session graph.
	rec = do(t, h, http.MethodGet, "/api/session/data?session_id=s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("session data after create: status %d", rec.Code)
	}
}

func TestCreateMindmapRequiresTopic(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/mindmap/create", createMindmapRequest{SessionID: "s1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExpandNode(t *testing.T) {
	h, _ := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`{"nodes":[{"id":"a.1","label":"AVL Trees","content":"Self-balancing."},{"id":"a.2","label":"Heaps","content":"Priority order."}]}`)},
	)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/mindmap/expand", expandNodeRequest{
		SessionID: "s1",
		NodeID:    "a",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp graphResponse
	decode(t, rec, &resp)
	if len(resp.Nodes) != 2 || len(resp.Edges) != 2 {
		t.Fatalf("got %d nodes / %d edges, want 2/2", len(resp.Nodes), len(resp.Edges))
	}
	if resp.Edges[0].ID != "e-a-a.1" {
		t.Errorf("edge id = %q, want e-a-a.1", resp.Edges[0].ID)
	}
	for _, n := range resp.Nodes {
		if n.Data.Status != string(progress.StatusLocked) {
			t.Errorf("new child %s status = %q, want locked", n.ID, n.Data.Status)
		}
	}
}

func TestExpandUnknownNode(t *testing.T) {
	h, _ := newTestServer(t)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/mindmap/expand", expandNodeRequest{
		SessionID: "s1",
		NodeID:    "zzz",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateStatus(t *testing.T) {
	h, _ := newTestServer(t)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/mindmap/status", updateStatusRequest{
		SessionID: "s1", NodeID: "a", Status: "in_progress",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/api/mindmap/status", updateStatusRequest{
		SessionID: "s1", NodeID: "a", Status: "bogus",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid status: got %d, want 400", rec.Code)
	}
}

func TestNodeData(t *testing.T) {
	h, _ := newTestServer(t)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodGet, "/api/node/b?session_id=s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp nodeDataResponse
	decode(t, rec, &resp)
	if resp.Node.Data.Label != "Binary Trees" {
		t.Errorf("label = %q", resp.Node.Data.Label)
	}
	if len(resp.Parents) != 1 || resp.Parents[0].ID != "a" {
		t.Errorf("parents = %+v, want [a]", resp.Parents)
	}
	if resp.Progress.Status != progress.StatusLocked {
		t.Errorf("progress status = %q, want locked", resp.Progress.Status)
	}
}

func TestMapView(t *testing.T) {
	h, _ := newTestServer(t)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodGet, "/api/map/view?session_id=s1&focus=a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var view struct {
		Nodes []struct {
			Node struct {
				ID string `json:"id"`
			} `json:"node"`
		} `json:"nodes"`
	}
	decode(t, rec, &view)
	if len(view.Nodes) != 3 {
		t.Fatalf("got %d visible nodes, want 3", len(view.Nodes))
	}
}

func TestChat(t *testing.T) {
	h, _ := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`"Think of a trie as a tree keyed by prefixes."`)},
	)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodGet, "/api/chat/c?session_id=s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history: status %d: %s", rec.Code, rec.Body.String())
	}

	var hist chatHistoryResponse
	decode(t, rec, &hist)
	if len(hist.Messages) != 1 || hist.Messages[0].Role != "assistant" {
		t.Fatalf("first visit history = %+v, want one welcome message", hist.Messages)
	}

	rec = do(t, h, http.MethodPost, "/api/chat/c?session_id=s1", chatMessageRequest{
		SessionID: "s1",
		Message:   "How do tries differ from binary trees?",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("message: status %d: %s", rec.Code, rec.Body.String())
	}

	var reply chat.Message
	decode(t, rec, &reply)
	if reply.Role != "assistant" || reply.Content == "" {
		t.Errorf("reply = %+v, want assistant content", reply)
	}

	rec = do(t, h, http.MethodGet, "/api/chat/c?session_id=s1", nil)
	decode(t, rec, &hist)
	if len(hist.Messages) != 3 {
		t.Errorf("history length = %d, want welcome + user + reply", len(hist.Messages))
	}
}

func TestChatRequiresMessage(t *testing.T) {
	h, _ := newTestServer(t)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodPost, "/api/chat/a?session_id=s1", chatMessageRequest{SessionID: "s1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChatUnknownNode(t *testing.T) {
	h, _ := newTestServer(t)
	initSession(t, h, "s1")

	rec := do(t, h, http.MethodGet, "/api/chat/zzz?session_id=s1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
