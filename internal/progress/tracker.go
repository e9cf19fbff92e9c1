package progress

import (
	"time"

	"github.com/abhisek/mindweave/internal/mindgraph"
)

// Entry holds one node's learning state: its lifecycle status, the
// questions generated for it, and the derived unlockable flag.
type Entry struct {
	NodeID      string     `json:"node_id"`
	Status      Status     `json:"status"`
	Questions   []Question `json:"questions"`
	Unlockable  bool       `json:"unlockable"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Archived holds question sets replaced by a regenerate request.
	// Attempt history is preserved, never counted again.
	Archived []Question `json:"-"`
}

// Tracker owns per-node progress for one session's graph. It is the
// sole mutator of status, unlockable and questions. Like the graph it
// wraps, it is serialized by the session layer.
type Tracker struct {
	graph   *mindgraph.Graph
	entries map[string]*Entry
	now     func() time.Time
}

// NewTracker seeds progress for every node in the graph: roots start
// not_started and unlockable, everything else locked.
func NewTracker(g *mindgraph.Graph) *Tracker {
	t := &Tracker{
		graph:   g,
		entries: make(map[string]*Entry, g.Len()),
		now:     time.Now,
	}
	for _, n := range g.Nodes() {
		e := &Entry{NodeID: n.ID, Status: StatusLocked}
		if len(g.Parents(n.ID)) == 0 {
			e.Status = StatusNotStarted
			e.Unlockable = true
		}
		t.entries[n.ID] = e
	}
	return t
}

// Track registers a node added to the graph after the tracker was
// built (mind map expansion). New nodes with prerequisites start
// locked; orphan nodes start not_started like roots.
func (t *Tracker) Track(nodeID string) error {
	if !t.graph.Has(nodeID) {
		return &mindgraph.NotFoundError{Kind: "node", ID: nodeID}
	}
	if _, ok := t.entries[nodeID]; ok {
		return nil
	}
	e := &Entry{NodeID: nodeID, Status: StatusLocked}
	unlockable, _ := t.unlockState(nodeID)
	if unlockable {
		e.Status = StatusNotStarted
		e.Unlockable = true
	}
	t.entries[nodeID] = e
	return nil
}

// Entry returns a copy of a node's progress entry.
func (t *Tracker) Entry(nodeID string) (Entry, error) {
	e, ok := t.entries[nodeID]
	if !ok {
		return Entry{}, &mindgraph.NotFoundError{Kind: "node", ID: nodeID}
	}
	return snapshot(e), nil
}

// Entries returns a copy of every entry, keyed by node id.
func (t *Tracker) Entries() map[string]Entry {
	out := make(map[string]Entry, len(t.entries))
	for id, e := range t.entries {
		out[id] = snapshot(e)
	}
	return out
}

// IsUnlockable reports whether every prerequisite parent of the node
// is completed, along with the ids of the incomplete ones. Nodes with
// no parents are always unlockable. Pure query; the stored flag is
// refreshed as a side effect so reads through Entries stay current.
func (t *Tracker) IsUnlockable(nodeID string) (bool, []string, error) {
	e, ok := t.entries[nodeID]
	if !ok {
		return false, nil, &mindgraph.NotFoundError{Kind: "node", ID: nodeID}
	}
	unlockable, pending := t.unlockState(nodeID)
	e.Unlockable = unlockable
	return unlockable, pending, nil
}

// SetStatus moves a node forward through the lifecycle. Rules:
//   - unknown node: NotFoundError
//   - same status: idempotent no-op
//   - backward transition: InvalidTransitionError
//   - leaving locked without satisfied prerequisites: LockedNodeError
//
// On transition to completed, the unlockable flag of every direct
// child is recomputed in the same call, and children whose
// prerequisites are now all completed are promoted to not_started.
func (t *Tracker) SetStatus(nodeID string, status Status) error {
	e, ok := t.entries[nodeID]
	if !ok {
		return &mindgraph.NotFoundError{Kind: "node", ID: nodeID}
	}
	if e.Status == status {
		return nil
	}
	if !e.Status.allows(status) {
		return &InvalidTransitionError{NodeID: nodeID, From: e.Status, To: status}
	}
	if e.Status == StatusLocked {
		unlockable, pending := t.unlockState(nodeID)
		if !unlockable {
			return &LockedNodeError{NodeID: nodeID, Pending: pending}
		}
		e.Unlockable = true
	}

	e.Status = status
	now := t.now().UTC()
	switch status {
	case StatusInProgress:
		if e.StartedAt == nil {
			e.StartedAt = &now
		}
	case StatusCompleted:
		if e.StartedAt == nil {
			e.StartedAt = &now
		}
		if e.CompletedAt == nil {
			e.CompletedAt = &now
		}
		t.propagateCompletion(nodeID)
	}
	return nil
}

// AddQuestions appends questions to a node, skipping ids already
// present. The question list never shrinks and prior attempt counts
// are never lost.
func (t *Tracker) AddQuestions(nodeID string, qs []Question) error {
	e, ok := t.entries[nodeID]
	if !ok {
		return &mindgraph.NotFoundError{Kind: "node", ID: nodeID}
	}
	seen := make(map[string]bool, len(e.Questions))
	for _, q := range e.Questions {
		seen[q.ID] = true
	}
	for _, q := range qs {
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		e.Questions = append(e.Questions, q)
	}
	return nil
}

// ResetQuestions archives the node's current questions and returns the
// node to not_started so a fresh set can be generated. Completed nodes
// stay completed.
func (t *Tracker) ResetQuestions(nodeID string) error {
	e, ok := t.entries[nodeID]
	if !ok {
		return &mindgraph.NotFoundError{Kind: "node", ID: nodeID}
	}
	e.Archived = append(e.Archived, e.Questions...)
	e.Questions = nil
	if e.Status == StatusInProgress {
		e.Status = StatusNotStarted
	}
	return nil
}

// ApplyResult is what ApplyGrading reports back to the caller.
type ApplyResult struct {
	Question   Question
	NodeStatus Status
	AllPassed  bool
}

// ApplyGrading records a grading outcome on a question: increments
// attempts, overwrites answer/feedback/grade, and sets passed or
// failed. The node moves to in_progress on its first graded answer,
// and to completed in the same call when every question has passed.
// Failing never regresses the node's status.
func (t *Tracker) ApplyGrading(nodeID, questionID, answer string, g Grading) (ApplyResult, error) {
	e, ok := t.entries[nodeID]
	if !ok {
		return ApplyResult{}, &mindgraph.NotFoundError{Kind: "node", ID: nodeID}
	}

	var q *Question
	for i := range e.Questions {
		if e.Questions[i].ID == questionID {
			q = &e.Questions[i]
			break
		}
	}
	if q == nil {
		return ApplyResult{}, &QuestionNotFoundError{NodeID: nodeID, QuestionID: questionID}
	}

	// Grading must not carry a locked node past the prerequisite gate.
	if e.Status == StatusLocked {
		unlockable, pending := t.unlockState(nodeID)
		if !unlockable {
			return ApplyResult{}, &LockedNodeError{NodeID: nodeID, Pending: pending}
		}
		e.Unlockable = true
	}

	now := t.now().UTC()
	if e.Status != StatusCompleted {
		e.Status = StatusInProgress
		if e.StartedAt == nil {
			e.StartedAt = &now
		}
	}

	q.Attempts++
	q.LastAnswer = answer
	q.Feedback = g.Feedback
	q.Grade = g.Grade
	q.UpdatedAt = now
	if g.Passed {
		q.Status = QuestionPassed
	} else {
		q.Status = QuestionFailed
	}

	allPassed := len(e.Questions) > 0
	for _, qq := range e.Questions {
		if qq.Status != QuestionPassed {
			allPassed = false
			break
		}
	}
	if allPassed && e.Status != StatusCompleted {
		e.Status = StatusCompleted
		if e.CompletedAt == nil {
			e.CompletedAt = &now
		}
		t.propagateCompletion(nodeID)
	}

	return ApplyResult{Question: *q, NodeStatus: e.Status, AllPassed: allPassed}, nil
}

// propagateCompletion refreshes the unlockable flag on every direct
// child of a just-completed node and promotes newly unlockable locked
// children to not_started. AND semantics: a child with several parents
// unlocks only when the last one completes.
func (t *Tracker) propagateCompletion(nodeID string) {
	for _, childID := range t.graph.Children(nodeID) {
		child, ok := t.entries[childID]
		if !ok {
			continue
		}
		unlockable, _ := t.unlockState(childID)
		child.Unlockable = unlockable
		if unlockable && child.Status == StatusLocked {
			child.Status = StatusNotStarted
		}
	}
}

// unlockState computes the unlock predicate and the incomplete
// prerequisite ids for a node. O(in-degree).
func (t *Tracker) unlockState(nodeID string) (bool, []string) {
	parents := t.graph.Parents(nodeID)
	if len(parents) == 0 {
		return true, nil
	}
	var pending []string
	for _, parentID := range parents {
		p, ok := t.entries[parentID]
		if !ok || p.Status != StatusCompleted {
			pending = append(pending, parentID)
		}
	}
	return len(pending) == 0, pending
}

func snapshot(e *Entry) Entry {
	out := *e
	out.Questions = make([]Question, len(e.Questions))
	copy(out.Questions, e.Questions)
	out.Archived = nil
	return out
}
