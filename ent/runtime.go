// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mindweave/ent/gradingevent"
	"github.com/abhisek/mindweave/ent/llmrequestevent"
	"github.com/abhisek/mindweave/ent/schema"
	"github.com/abhisek/mindweave/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gradingeventMixin := schema.GradingEvent{}.Mixin()
	gradingeventMixinFields0 := gradingeventMixin[0].Fields()
	_ = gradingeventMixinFields0
	gradingeventFields := schema.GradingEvent{}.Fields()
	_ = gradingeventFields
	// gradingeventDescTimestamp is the schema descriptor for timestamp field.
	gradingeventDescTimestamp := gradingeventMixinFields0[1].Descriptor()
	// gradingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gradingevent.DefaultTimestamp = gradingeventDescTimestamp.Default.(func() time.Time)
	// gradingeventDescSessionID is the schema descriptor for session_id field.
	gradingeventDescSessionID := gradingeventFields[0].Descriptor()
	// gradingevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	gradingevent.SessionIDValidator = gradingeventDescSessionID.Validators[0].(func(string) error)
	// gradingeventDescNodeID is the schema descriptor for node_id field.
	gradingeventDescNodeID := gradingeventFields[1].Descriptor()
	// gradingevent.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	gradingevent.NodeIDValidator = gradingeventDescNodeID.Validators[0].(func(string) error)
	// gradingeventDescQuestionID is the schema descriptor for question_id field.
	gradingeventDescQuestionID := gradingeventFields[2].Descriptor()
	// gradingevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	gradingevent.QuestionIDValidator = gradingeventDescQuestionID.Validators[0].(func(string) error)
	// gradingeventDescNodeStatus is the schema descriptor for node_status field.
	gradingeventDescNodeStatus := gradingeventFields[6].Descriptor()
	// gradingevent.NodeStatusValidator is a validator for the "node_status" field. It is called by the builders before save.
	gradingevent.NodeStatusValidator = gradingeventDescNodeStatus.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescNodeCount is the schema descriptor for node_count field.
	sessioneventDescNodeCount := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultNodeCount holds the default value on creation for the node_count field.
	sessionevent.DefaultNodeCount = sessioneventDescNodeCount.Default.(int)
	// sessioneventDescEdgeCount is the schema descriptor for edge_count field.
	sessioneventDescEdgeCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultEdgeCount holds the default value on creation for the edge_count field.
	sessionevent.DefaultEdgeCount = sessioneventDescEdgeCount.Default.(int)
}
