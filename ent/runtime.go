// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studydrill/drill/ent/answerevent"
	"github.com/studydrill/drill/ent/examevent"
	"github.com/studydrill/drill/ent/llmrequestevent"
	"github.com/studydrill/drill/ent/schema"
	"github.com/studydrill/drill/ent/staterecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescSessionID is the schema descriptor for session_id field.
	exameventDescSessionID := exameventFields[0].Descriptor()
	// examevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	examevent.SessionIDValidator = exameventDescSessionID.Validators[0].(func(string) error)
	// exameventDescDurationSecs is the schema descriptor for duration_secs field.
	exameventDescDurationSecs := exameventFields[5].Descriptor()
	// examevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	examevent.DefaultDurationSecs = exameventDescDurationSecs.Default.(int)
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
	staterecordFields := schema.StateRecord{}.Fields()
	_ = staterecordFields
	// staterecordDescKey is the schema descriptor for key field.
	staterecordDescKey := staterecordFields[0].Descriptor()
	// staterecord.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	staterecord.KeyValidator = staterecordDescKey.Validators[0].(func(string) error)
	// staterecordDescUpdatedAt is the schema descriptor for updated_at field.
	staterecordDescUpdatedAt := staterecordFields[2].Descriptor()
	// staterecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staterecord.DefaultUpdatedAt = staterecordDescUpdatedAt.Default.(func() time.Time)
	// staterecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staterecord.UpdateDefaultUpdatedAt = staterecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
