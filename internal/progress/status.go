package progress

import "fmt"

// Status is the lifecycle stage of a node's learning progress.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// statusRank orders statuses along the forward-only lifecycle.
var statusRank = map[Status]int{
	StatusLocked:     0,
	StatusNotStarted: 1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

// ParseStatus validates a status string from the API.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := statusRank[st]; !ok {
		return "", fmt.Errorf("invalid status: %q", s)
	}
	return st, nil
}

// allows reports whether a transition from s to next is forward or
// idempotent. Completed never regresses; locked never reappears once
// left.
func (s Status) allows(next Status) bool {
	return statusRank[next] >= statusRank[s]
}
