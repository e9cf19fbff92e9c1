package progress

import "fmt"

// LockedNodeError indicates a status change attempted on a node whose
// prerequisites are not all completed.
type LockedNodeError struct {
	NodeID  string
	Pending []string // incomplete prerequisite ids
}

func (e *LockedNodeError) Error() string {
	return fmt.Sprintf("node %q is locked: prerequisites not completed: %v", e.NodeID, e.Pending)
}

// InvalidTransitionError indicates a backward status transition, which
// the lifecycle forbids.
type InvalidTransitionError struct {
	NodeID string
	From   Status
	To     Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("node %q: cannot transition %s -> %s", e.NodeID, e.From, e.To)
}

// QuestionNotFoundError indicates an unknown question id for a node.
type QuestionNotFoundError struct {
	NodeID     string
	QuestionID string
}

func (e *QuestionNotFoundError) Error() string {
	return fmt.Sprintf("question %q not found on node %q", e.QuestionID, e.NodeID)
}
