package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendGradingEvent(ctx context.Context, data GradingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GradingEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetNodeID(data.NodeID).
		SetQuestionID(data.QuestionID).
		SetAttempt(data.Attempt).
		SetGrade(data.Grade).
		SetPassed(data.Passed).
		SetNodeStatus(data.NodeStatus).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save grading event: %w", err)
	}
	return nil
}
