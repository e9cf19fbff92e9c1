package progress

import (
	"errors"
	"testing"

	"github.com/abhisek/mindweave/internal/mindgraph"
)

// diamond builds A→B, A→C, B→D, C→D and a tracker over it.
func diamond(t *testing.T) (*mindgraph.Graph, *Tracker) {
	t.Helper()
	g := mindgraph.New()
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := g.AddNode(mindgraph.Node{ID: id, Label: id}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for _, e := range []mindgraph.Edge{
		{ID: "e1", Source: "A", Target: "B"},
		{ID: "e2", Source: "A", Target: "C"},
		{ID: "e3", Source: "B", Target: "D"},
		{ID: "e4", Source: "C", Target: "D"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s): %v", e.ID, err)
		}
	}
	return g, NewTracker(g)
}

func mustEntry(t *testing.T, tr *Tracker, id string) Entry {
	t.Helper()
	e, err := tr.Entry(id)
	if err != nil {
		t.Fatalf("Entry(%s): %v", id, err)
	}
	return e
}

func complete(t *testing.T, tr *Tracker, id string) {
	t.Helper()
	if err := tr.SetStatus(id, StatusCompleted); err != nil {
		t.Fatalf("SetStatus(%s, completed): %v", id, err)
	}
}

func TestInit_RootsUnlockableOthersLocked(t *testing.T) {
	_, tr := diamond(t)

	rootEntry := mustEntry(t, tr, "A")
	if rootEntry.Status != StatusNotStarted || !rootEntry.Unlockable {
		t.Errorf("root A: got %s/unlockable=%v, want not_started/true", rootEntry.Status, rootEntry.Unlockable)
	}

	for _, id := range []string{"B", "C", "D"} {
		e := mustEntry(t, tr, id)
		if e.Status != StatusLocked {
			t.Errorf("%s: got %s, want locked", id, e.Status)
		}
		if e.Unlockable {
			t.Errorf("%s: unlockable at init", id)
		}
	}
}

func TestIsUnlockable_ANDOverParents(t *testing.T) {
	_, tr := diamond(t)
	complete(t, tr, "A")
	complete(t, tr, "B")

	// D needs both B and C.
	unlockable, pending, err := tr.IsUnlockable("D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unlockable {
		t.Error("D unlockable with only B completed")
	}
	if len(pending) != 1 || pending[0] != "C" {
		t.Errorf("pending = %v, want [C]", pending)
	}

	complete(t, tr, "C")
	unlockable, pending, err = tr.IsUnlockable("D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !unlockable || len(pending) != 0 {
		t.Errorf("got unlockable=%v pending=%v after both parents completed", unlockable, pending)
	}
}

func TestCompletionPropagation_SameCall(t *testing.T) {
	_, tr := diamond(t)
	complete(t, tr, "A")

	// A's completion flips B and C inside the SetStatus call.
	for _, id := range []string{"B", "C"} {
		e := mustEntry(t, tr, id)
		if !e.Unlockable {
			t.Errorf("%s: not unlockable after parent completed", id)
		}
		if e.Status != StatusNotStarted {
			t.Errorf("%s: got %s, want not_started promotion", id, e.Status)
		}
	}

	// D stays locked until the last parent finishes.
	complete(t, tr, "B")
	if e := mustEntry(t, tr, "D"); e.Status != StatusLocked || e.Unlockable {
		t.Errorf("D after B: got %s/unlockable=%v, want locked/false", e.Status, e.Unlockable)
	}
	complete(t, tr, "C")
	if e := mustEntry(t, tr, "D"); e.Status != StatusNotStarted || !e.Unlockable {
		t.Errorf("D after C: got %s/unlockable=%v, want not_started/true", e.Status, e.Unlockable)
	}
}

func TestSetStatus_LockedNodeRejected(t *testing.T) {
	_, tr := diamond(t)

	err := tr.SetStatus("D", StatusInProgress)
	var locked *LockedNodeError
	if !errors.As(err, &locked) {
		t.Fatalf("expected LockedNodeError, got %v", err)
	}
	if len(locked.Pending) != 2 {
		t.Errorf("pending = %v, want both parents", locked.Pending)
	}
	// Rejection must not mutate.
	if e := mustEntry(t, tr, "D"); e.Status != StatusLocked {
		t.Errorf("D mutated to %s by rejected transition", e.Status)
	}
}

func TestSetStatus_CompletedIsIdempotent(t *testing.T) {
	_, tr := diamond(t)
	complete(t, tr, "A")
	first := mustEntry(t, tr, "A")

	complete(t, tr, "A")
	second := mustEntry(t, tr, "A")

	if second.Status != StatusCompleted {
		t.Errorf("got %s, want completed", second.Status)
	}
	if first.CompletedAt == nil || second.CompletedAt == nil || !first.CompletedAt.Equal(*second.CompletedAt) {
		t.Error("re-completing must not move the completion timestamp")
	}
}

func TestSetStatus_NoBackwardTransition(t *testing.T) {
	_, tr := diamond(t)
	complete(t, tr, "A")

	err := tr.SetStatus("A", StatusInProgress)
	var inv *InvalidTransitionError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if e := mustEntry(t, tr, "A"); e.Status != StatusCompleted {
		t.Errorf("A regressed to %s", e.Status)
	}
}

func TestSetStatus_UnknownNode(t *testing.T) {
	_, tr := diamond(t)
	var nf *mindgraph.NotFoundError
	if err := tr.SetStatus("ghost", StatusCompleted); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAddQuestions_NoDuplicatesNoShrink(t *testing.T) {
	_, tr := diamond(t)

	qs := []Question{
		{ID: "q1", Text: "first", Status: QuestionUnanswered},
		{ID: "q2", Text: "second", Status: QuestionUnanswered},
	}
	if err := tr.AddQuestions("A", qs); err != nil {
		t.Fatalf("AddQuestions: %v", err)
	}

	// Record an attempt, then add an overlapping set.
	if _, err := tr.ApplyGrading("A", "q1", "my answer", Grading{Grade: 40}); err != nil {
		t.Fatalf("ApplyGrading: %v", err)
	}
	again := []Question{
		{ID: "q1", Text: "first (dup)", Status: QuestionUnanswered},
		{ID: "q3", Text: "third", Status: QuestionUnanswered},
	}
	if err := tr.AddQuestions("A", again); err != nil {
		t.Fatalf("AddQuestions: %v", err)
	}

	e := mustEntry(t, tr, "A")
	if len(e.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(e.Questions))
	}
	if e.Questions[0].Attempts != 1 {
		t.Errorf("q1 attempts = %d, want 1 (prior attempts preserved)", e.Questions[0].Attempts)
	}
	if e.Questions[0].Text != "first" {
		t.Errorf("q1 text overwritten by duplicate: %q", e.Questions[0].Text)
	}
}

func TestApplyGrading_LastPassCompletesNode(t *testing.T) {
	_, tr := diamond(t)
	if err := tr.AddQuestions("A", []Question{
		{ID: "q1", Status: QuestionUnanswered},
		{ID: "q2", Status: QuestionUnanswered},
	}); err != nil {
		t.Fatalf("AddQuestions: %v", err)
	}

	res, err := tr.ApplyGrading("A", "q1", "good answer", Grading{Feedback: "nice", Grade: 90, Passed: true})
	if err != nil {
		t.Fatalf("ApplyGrading: %v", err)
	}
	if res.NodeStatus != StatusInProgress || res.AllPassed {
		t.Errorf("after first pass: status=%s allPassed=%v", res.NodeStatus, res.AllPassed)
	}

	res, err = tr.ApplyGrading("A", "q2", "also good", Grading{Feedback: "great", Grade: 95, Passed: true})
	if err != nil {
		t.Fatalf("ApplyGrading: %v", err)
	}
	if res.NodeStatus != StatusCompleted || !res.AllPassed {
		t.Errorf("after last pass: status=%s allPassed=%v, want completed/true", res.NodeStatus, res.AllPassed)
	}

	// Completion propagated to children in the same operation.
	if e := mustEntry(t, tr, "B"); e.Status != StatusNotStarted {
		t.Errorf("B after A completed via grading: %s", e.Status)
	}
}

func TestApplyGrading_FailDoesNotRegress(t *testing.T) {
	_, tr := diamond(t)
	if err := tr.AddQuestions("A", []Question{{ID: "q1", Status: QuestionUnanswered}}); err != nil {
		t.Fatalf("AddQuestions: %v", err)
	}

	res, err := tr.ApplyGrading("A", "q1", "weak answer", Grading{Feedback: "missing depth", Grade: 55})
	if err != nil {
		t.Fatalf("ApplyGrading: %v", err)
	}
	if res.Question.Status != QuestionFailed || res.Question.Attempts != 1 {
		t.Errorf("question = %+v, want failed with 1 attempt", res.Question)
	}
	if res.NodeStatus != StatusInProgress {
		t.Errorf("node status = %s, want in_progress", res.NodeStatus)
	}

	// Retry and pass.
	res, err = tr.ApplyGrading("A", "q1", "better answer", Grading{Grade: 88, Passed: true})
	if err != nil {
		t.Fatalf("ApplyGrading: %v", err)
	}
	if res.Question.Status != QuestionPassed || res.Question.Attempts != 2 {
		t.Errorf("question = %+v, want passed with 2 attempts", res.Question)
	}
	if res.NodeStatus != StatusCompleted {
		t.Errorf("node status = %s, want completed", res.NodeStatus)
	}
}

func TestApplyGrading_UnknownQuestion(t *testing.T) {
	_, tr := diamond(t)
	var qnf *QuestionNotFoundError
	if _, err := tr.ApplyGrading("A", "ghost", "x", Grading{}); !errors.As(err, &qnf) {
		t.Fatalf("expected QuestionNotFoundError, got %v", err)
	}
}

func TestResetQuestions_ArchivesAndResets(t *testing.T) {
	_, tr := diamond(t)
	if err := tr.AddQuestions("A", []Question{{ID: "q1", Status: QuestionUnanswered}}); err != nil {
		t.Fatalf("AddQuestions: %v", err)
	}
	if _, err := tr.ApplyGrading("A", "q1", "x", Grading{Grade: 30}); err != nil {
		t.Fatalf("ApplyGrading: %v", err)
	}

	if err := tr.ResetQuestions("A"); err != nil {
		t.Fatalf("ResetQuestions: %v", err)
	}
	e := mustEntry(t, tr, "A")
	if len(e.Questions) != 0 {
		t.Errorf("questions not cleared: %v", e.Questions)
	}
	if e.Status != StatusNotStarted {
		t.Errorf("status = %s, want not_started", e.Status)
	}
}

func TestTrack_LateNode(t *testing.T) {
	g, tr := diamond(t)
	if err := g.AddNode(mindgraph.Node{ID: "E"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddEdge(mindgraph.Edge{ID: "e5", Source: "D", Target: "E"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := tr.Track("E"); err != nil {
		t.Fatalf("Track: %v", err)
	}
	if e := mustEntry(t, tr, "E"); e.Status != StatusLocked {
		t.Errorf("late node with incomplete parent: got %s, want locked", e.Status)
	}
}
