// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mlutz/kartei/ent/card"
	"github.com/mlutz/kartei/ent/llmrequestevent"
	"github.com/mlutz/kartei/ent/reviewevent"
	"github.com/mlutz/kartei/ent/schema"
	"github.com/mlutz/kartei/ent/sessionevent"
	"github.com/mlutz/kartei/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescFront is the schema descriptor for front field.
	cardDescFront := cardFields[1].Descriptor()
	// card.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	card.FrontValidator = cardDescFront.Validators[0].(func(string) error)
	// cardDescBack is the schema descriptor for back field.
	cardDescBack := cardFields[2].Descriptor()
	// card.BackValidator is a validator for the "back" field. It is called by the builders before save.
	card.BackValidator = cardDescBack.Validators[0].(func(string) error)
	// cardDescIconRef is the schema descriptor for icon_ref field.
	cardDescIconRef := cardFields[3].Descriptor()
	// card.DefaultIconRef holds the default value on creation for the icon_ref field.
	card.DefaultIconRef = cardDescIconRef.Default.(string)
	// cardDescLanguage is the schema descriptor for language field.
	cardDescLanguage := cardFields[4].Descriptor()
	// card.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	card.LanguageValidator = cardDescLanguage.Validators[0].(func(string) error)
	// cardDescNotes is the schema descriptor for notes field.
	cardDescNotes := cardFields[6].Descriptor()
	// card.DefaultNotes holds the default value on creation for the notes field.
	card.DefaultNotes = cardDescNotes.Default.(string)
	// cardDescFavorite is the schema descriptor for favorite field.
	cardDescFavorite := cardFields[9].Descriptor()
	// card.DefaultFavorite holds the default value on creation for the favorite field.
	card.DefaultFavorite = cardDescFavorite.Default.(bool)
	// cardDescArchived is the schema descriptor for archived field.
	cardDescArchived := cardFields[10].Descriptor()
	// card.DefaultArchived holds the default value on creation for the archived field.
	card.DefaultArchived = cardDescArchived.Default.(bool)
	// cardDescReviewCount is the schema descriptor for review_count field.
	cardDescReviewCount := cardFields[12].Descriptor()
	// card.DefaultReviewCount holds the default value on creation for the review_count field.
	card.DefaultReviewCount = cardDescReviewCount.Default.(int)
	// cardDescCorrectCount is the schema descriptor for correct_count field.
	cardDescCorrectCount := cardFields[13].Descriptor()
	// card.DefaultCorrectCount holds the default value on creation for the correct_count field.
	card.DefaultCorrectCount = cardDescCorrectCount.Default.(int)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[16].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescUpdatedAt is the schema descriptor for updated_at field.
	cardDescUpdatedAt := cardFields[17].Descriptor()
	// card.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	card.DefaultUpdatedAt = cardDescUpdatedAt.Default.(func() time.Time)
	// cardDescID is the schema descriptor for id field.
	cardDescID := cardFields[0].Descriptor()
	// card.IDValidator is a validator for the "id" field. It is called by the builders before save.
	card.IDValidator = cardDescID.Validators[0].(func(string) error)
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
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescCardID is the schema descriptor for card_id field.
	revieweventDescCardID := revieweventFields[1].Descriptor()
	// reviewevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewevent.CardIDValidator = revieweventDescCardID.Validators[0].(func(string) error)
	// revieweventDescExerciseType is the schema descriptor for exercise_type field.
	revieweventDescExerciseType := revieweventFields[2].Descriptor()
	// reviewevent.ExerciseTypeValidator is a validator for the "exercise_type" field. It is called by the builders before save.
	reviewevent.ExerciseTypeValidator = revieweventDescExerciseType.Validators[0].(func(string) error)
	// revieweventDescSkipped is the schema descriptor for skipped field.
	revieweventDescSkipped := revieweventFields[4].Descriptor()
	// reviewevent.DefaultSkipped holds the default value on creation for the skipped field.
	reviewevent.DefaultSkipped = revieweventDescSkipped.Default.(bool)
	// revieweventDescTimeMs is the schema descriptor for time_ms field.
	revieweventDescTimeMs := revieweventFields[5].Descriptor()
	// reviewevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	reviewevent.DefaultTimeMs = revieweventDescTimeMs.Default.(int)
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
	// sessioneventDescLanguage is the schema descriptor for language field.
	sessioneventDescLanguage := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultLanguage holds the default value on creation for the language field.
	sessionevent.DefaultLanguage = sessioneventDescLanguage.Default.(string)
	// sessioneventDescQueueLength is the schema descriptor for queue_length field.
	sessioneventDescQueueLength := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQueueLength holds the default value on creation for the queue_length field.
	sessionevent.DefaultQueueLength = sessioneventDescQueueLength.Default.(int)
	// sessioneventDescTotalReviewed is the schema descriptor for total_reviewed field.
	sessioneventDescTotalReviewed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTotalReviewed holds the default value on creation for the total_reviewed field.
	sessionevent.DefaultTotalReviewed = sessioneventDescTotalReviewed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
