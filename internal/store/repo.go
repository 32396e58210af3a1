package store

import (
	"context"
	"time"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
)

// CardFilter narrows List results. Zero values mean "no constraint".
type CardFilter struct {
	Language        string
	IncludeArchived bool
	DueOnly         bool // next review unset or in the past
	FavoritesOnly   bool
	Tag             string
}

// CardRepo manages flashcard persistence.
type CardRepo interface {
	Create(ctx context.Context, c card.Card) error
	Get(ctx context.Context, id string) (card.Card, error)
	List(ctx context.Context, f CardFilter) ([]card.Card, error)
	// Save overwrites an existing card. Implements practice.CardSaver.
	SaveCard(ctx context.Context, c card.Card) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, language string) (int, error)
}

// Settings is the persisted user configuration.
type Settings struct {
	Preferences    exercise.Preferences `json:"preferences"`
	ActiveLanguage string               `json:"active_language"`
}

// DefaultSettings returns the configuration for a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Preferences:    exercise.DefaultPreferences(),
		ActiveLanguage: "de",
	}
}

// SettingsRepo stores the settings snapshot. Load returns defaults when
// nothing has been saved yet.
type SettingsRepo interface {
	Save(ctx context.Context, s Settings) error
	Load(ctx context.Context) (Settings, error)
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Action         string // "start" or "end"
	Language       string
	QueueLength    int
	TotalReviewed  int
	CorrectAnswers int
	DurationSecs   int
}

// ReviewEventData captures one answered or skipped practice item.
type ReviewEventData struct {
	SessionID    string
	CardID       string
	ExerciseType string
	Correct      bool
	Skipped      bool
	TimeMs       int
}

// LLMRequestEventData captures a single enrichment API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ReviewTotals aggregates the review log for the stats view.
type ReviewTotals struct {
	Total   int
	Correct int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LatestReviewTime returns the zero time when the card has no reviews.
	LatestReviewTime(ctx context.Context, cardID string) (time.Time, error)
	Totals(ctx context.Context) (ReviewTotals, error)
}
