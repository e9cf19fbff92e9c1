package progress

import "time"

// QuestionStatus tracks a single question through grading.
type QuestionStatus string

const (
	QuestionUnanswered QuestionStatus = "unanswered"
	QuestionPassed     QuestionStatus = "passed"
	QuestionFailed     QuestionStatus = "failed"
)

// Question is one comprehension check attached to a node. Attempts
// increments on every graded submission; status, feedback and grade
// are overwritten by each grading result and never revert to
// unanswered.
type Question struct {
	ID         string         `json:"id"`
	Text       string         `json:"text"`
	Status     QuestionStatus `json:"status"`
	Attempts   int            `json:"attempts"`
	LastAnswer string         `json:"last_answer,omitempty"`
	Feedback   string         `json:"feedback,omitempty"`
	Grade      int            `json:"grade"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Grading is the outcome of one LLM grading call, applied to a
// question by the tracker.
type Grading struct {
	Feedback string
	Grade    int
	Passed   bool
}
