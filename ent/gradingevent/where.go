// Code generated by ent, DO NOT EDIT.

package gradingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mindweave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSessionID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldNodeID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldAttempt, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldGrade, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldPassed, v))
}

// NodeStatus applies equality check predicate on the "node_status" field. It's identical to NodeStatusEQ.
func NodeStatus(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldNodeStatus, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldNodeID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldAttempt, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldGrade, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldPassed, v))
}

// NodeStatusEQ applies the EQ predicate on the "node_status" field.
func NodeStatusEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldNodeStatus, v))
}

// NodeStatusNEQ applies the NEQ predicate on the "node_status" field.
func NodeStatusNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldNodeStatus, v))
}

// NodeStatusIn applies the In predicate on the "node_status" field.
func NodeStatusIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldNodeStatus, vs...))
}

// NodeStatusNotIn applies the NotIn predicate on the "node_status" field.
func NodeStatusNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldNodeStatus, vs...))
}

// NodeStatusGT applies the GT predicate on the "node_status" field.
func NodeStatusGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldNodeStatus, v))
}

// NodeStatusGTE applies the GTE predicate on the "node_status" field.
func NodeStatusGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldNodeStatus, v))
}

// NodeStatusLT applies the LT predicate on the "node_status" field.
func NodeStatusLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldNodeStatus, v))
}

// NodeStatusLTE applies the LTE predicate on the "node_status" field.
func NodeStatusLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldNodeStatus, v))
}

// NodeStatusContains applies the Contains predicate on the "node_status" field.
func NodeStatusContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldNodeStatus, v))
}

// NodeStatusHasPrefix applies the HasPrefix predicate on the "node_status" field.
func NodeStatusHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldNodeStatus, v))
}

// NodeStatusHasSuffix applies the HasSuffix predicate on the "node_status" field.
func NodeStatusHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldNodeStatus, v))
}

// NodeStatusEqualFold applies the EqualFold predicate on the "node_status" field.
func NodeStatusEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldNodeStatus, v))
}

// NodeStatusContainsFold applies the ContainsFold predicate on the "node_status" field.
func NodeStatusContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldNodeStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradingEvent) predicate.GradingEvent {
	return predicate.GradingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradingEvent) predicate.GradingEvent {
	return predicate.GradingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradingEvent) predicate.GradingEvent {
	return predicate.GradingEvent(sql.NotPredicates(p))
}
