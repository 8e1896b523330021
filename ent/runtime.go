// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/realnamesareboring/certifai/ent/llmrequestevent"
	"github.com/realnamesareboring/certifai/ent/quizevent"
	"github.com/realnamesareboring/certifai/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
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
	llmrequesteventDescInputTokens := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescQuestionCount is the schema descriptor for question_count field.
	quizeventDescQuestionCount := quizeventFields[3].Descriptor()
	// quizevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	quizevent.DefaultQuestionCount = quizeventDescQuestionCount.Default.(int)
	// quizeventDescUsedFallback is the schema descriptor for used_fallback field.
	quizeventDescUsedFallback := quizeventFields[4].Descriptor()
	// quizevent.DefaultUsedFallback holds the default value on creation for the used_fallback field.
	quizevent.DefaultUsedFallback = quizeventDescUsedFallback.Default.(bool)
	// quizeventDescScore is the schema descriptor for score field.
	quizeventDescScore := quizeventFields[5].Descriptor()
	// quizevent.DefaultScore holds the default value on creation for the score field.
	quizevent.DefaultScore = quizeventDescScore.Default.(int)
	// quizeventDescPercentage is the schema descriptor for percentage field.
	quizeventDescPercentage := quizeventFields[6].Descriptor()
	// quizevent.DefaultPercentage holds the default value on creation for the percentage field.
	quizevent.DefaultPercentage = quizeventDescPercentage.Default.(int)
}
