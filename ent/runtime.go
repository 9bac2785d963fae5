// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/skand/proctor/ent/answerevent"
	"github.com/skand/proctor/ent/hintevent"
	"github.com/skand/proctor/ent/llmrequestevent"
	"github.com/skand/proctor/ent/schema"
	"github.com/skand/proctor/ent/sessionevent"
	"github.com/skand/proctor/ent/snapshot"
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
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[2].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[3].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[4].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescStudentAnswer is the schema descriptor for student_answer field.
	answereventDescStudentAnswer := answereventFields[5].Descriptor()
	// answerevent.StudentAnswerValidator is a validator for the "student_answer" field. It is called by the builders before save.
	answerevent.StudentAnswerValidator = answereventDescStudentAnswer.Validators[0].(func(string) error)
	// answereventDescReferenceAnswer is the schema descriptor for reference_answer field.
	answereventDescReferenceAnswer := answereventFields[9].Descriptor()
	// answerevent.DefaultReferenceAnswer holds the default value on creation for the reference_answer field.
	answerevent.DefaultReferenceAnswer = answereventDescReferenceAnswer.Default.(string)
	// answereventDescHintUsed is the schema descriptor for hint_used field.
	answereventDescHintUsed := answereventFields[11].Descriptor()
	// answerevent.DefaultHintUsed holds the default value on creation for the hint_used field.
	answerevent.DefaultHintUsed = answereventDescHintUsed.Default.(bool)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[2].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
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
	// sessioneventDescStudentName is the schema descriptor for student_name field.
	sessioneventDescStudentName := sessioneventFields[2].Descriptor()
	// sessionevent.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	sessionevent.StudentNameValidator = sessioneventDescStudentName.Validators[0].(func(string) error)
	// sessioneventDescStudentPrn is the schema descriptor for student_prn field.
	sessioneventDescStudentPrn := sessioneventFields[3].Descriptor()
	// sessionevent.StudentPrnValidator is a validator for the "student_prn" field. It is called by the builders before save.
	sessionevent.StudentPrnValidator = sessioneventDescStudentPrn.Validators[0].(func(string) error)
	// sessioneventDescTopicID is the schema descriptor for topic_id field.
	sessioneventDescTopicID := sessioneventFields[4].Descriptor()
	// sessionevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionevent.TopicIDValidator = sessioneventDescTopicID.Validators[0].(func(string) error)
	// sessioneventDescTopicName is the schema descriptor for topic_name field.
	sessioneventDescTopicName := sessioneventFields[5].Descriptor()
	// sessionevent.TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	sessionevent.TopicNameValidator = sessioneventDescTopicName.Validators[0].(func(string) error)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescMaxScore is the schema descriptor for max_score field.
	sessioneventDescMaxScore := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultMaxScore holds the default value on creation for the max_score field.
	sessionevent.DefaultMaxScore = sessioneventDescMaxScore.Default.(int)
	// sessioneventDescQuestionsAsked is the schema descriptor for questions_asked field.
	sessioneventDescQuestionsAsked := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	sessionevent.DefaultQuestionsAsked = sessioneventDescQuestionsAsked.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
