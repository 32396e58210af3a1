// Package card defines the flashcard entity and its per-exercise
// performance scores. Cards are immutable values: every mutation helper
// returns a new card and leaves the receiver untouched, so a session can
// hold references without defensive copying.
package card

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mlutz/kartei/internal/exercise"
)

// Card is a single front/back flashcard with language, tags, and
// per-exercise performance data.
type Card struct {
	ID       string
	Front    string
	Back     string
	IconRef  string // icon set identifier, e.g. "mdi:dog"; empty if none
	Language string // BCP-47-ish language code of the front text
	Tags     []string
	Notes    string
	Examples []string
	Grammar  Grammar // nil when no word-type payload is set

	Favorite bool
	Archived bool

	// Scores is authoritative for scheduling, keyed by exercise type.
	// Populated at creation for every core type; other types appear
	// lazily on first attempt.
	Scores map[exercise.Type]ExerciseScore

	// Legacy card-level aggregates, kept for backward compatibility with
	// older exports. The per-exercise scores drive scheduling.
	ReviewCount  int
	CorrectCount int
	LastReviewed *time.Time
	NextReview   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a card with a fresh ID and zero scores for every core type.
func New(front, back, language string, now time.Time) Card {
	scores := make(map[exercise.Type]ExerciseScore, len(exercise.Core))
	for _, t := range exercise.Core {
		scores[t] = ExerciseScore{}
	}
	return Card{
		ID:        uuid.NewString(),
		Front:     front,
		Back:      back,
		Language:  language,
		Scores:    scores,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeTags canonicalizes a tag list: trim, lowercase, collapse
// internal whitespace, drop empties and duplicates. Output is sorted.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		t = strings.Join(strings.Fields(t), " ")
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// WithContent returns a copy with new front/back text and a refreshed
// UpdatedAt.
func (c Card) WithContent(front, back string, now time.Time) Card {
	out := c.clone()
	out.Front = front
	out.Back = back
	out.UpdatedAt = now
	return out
}

// WithTags returns a copy with the normalized tag set.
func (c Card) WithTags(tags []string, now time.Time) Card {
	out := c.clone()
	out.Tags = NormalizeTags(tags)
	out.UpdatedAt = now
	return out
}

// WithFavorite returns a copy with the favorite flag set.
func (c Card) WithFavorite(fav bool, now time.Time) Card {
	out := c.clone()
	out.Favorite = fav
	out.UpdatedAt = now
	return out
}

// WithArchived returns a copy with the archived flag set. Archived cards
// are excluded from scheduling by the caller.
func (c Card) WithArchived(archived bool, now time.Time) Card {
	out := c.clone()
	out.Archived = archived
	out.UpdatedAt = now
	return out
}

// Score returns the score for a type and whether one exists.
func (c Card) Score(t exercise.Type) (ExerciseScore, bool) {
	s, ok := c.Scores[t]
	return s, ok
}

// DueExerciseTypes returns every type present in the score map whose score
// is due at time now. Types never attempted (absent from the map) are not
// reported here; the queue builder treats them as eligible separately.
func (c Card) DueExerciseTypes(now time.Time) []exercise.Type {
	var due []exercise.Type
	for _, t := range exercise.All {
		if s, ok := c.Scores[t]; ok && s.IsDue(now) {
			due = append(due, t)
		}
	}
	return due
}

// WithExerciseResult returns a copy with the answer recorded against the
// given type's score (creating a zero score on first attempt) and the
// legacy aggregates bumped.
func (c Card) WithExerciseResult(t exercise.Type, correct bool, now time.Time) Card {
	out := c.clone()

	s := out.Scores[t] // zero value on first attempt
	if correct {
		s = s.RecordCorrect(now)
	} else {
		s = s.RecordIncorrect(now)
	}
	out.Scores[t] = s

	out.ReviewCount++
	if correct {
		out.CorrectCount++
	}
	out.LastReviewed = &now
	out.NextReview = s.NextReview
	out.UpdatedAt = now
	return out
}

// HasArticle reports whether the card carries an article, either as an
// explicit noun gender or as a "der "/"die "/"das " prefix on the front.
func (c Card) HasArticle() bool {
	if g, ok := c.Grammar.(NounGrammar); ok && g.Gender != "" {
		return true
	}
	front := strings.ToLower(c.Front)
	return strings.HasPrefix(front, "der ") ||
		strings.HasPrefix(front, "die ") ||
		strings.HasPrefix(front, "das ")
}

// Article returns the card's definite article, preferring the explicit
// noun gender over the front-text prefix. Empty when the card has none.
func (c Card) Article() string {
	if g, ok := c.Grammar.(NounGrammar); ok && g.Gender != "" {
		return g.Gender
	}
	front := strings.ToLower(c.Front)
	for _, art := range []string{"der", "die", "das"} {
		if strings.HasPrefix(front, art+" ") {
			return art
		}
	}
	return ""
}

// OverallMastery aggregates the per-exercise scores into one label: the
// level of the average current chain across practiced types. A card with
// no attempts at all is New.
func (c Card) OverallMastery() MasteryLevel {
	chainSum, attempts := 0, 0
	practiced := 0
	for _, s := range c.Scores {
		if s.TotalAttempts() == 0 {
			continue
		}
		practiced++
		chainSum += s.CurrentChain
		attempts += s.TotalAttempts()
	}
	if practiced == 0 {
		return MasteryNew
	}
	avg := ExerciseScore{
		CorrectCount: attempts,
		CurrentChain: chainSum / practiced,
	}
	return avg.Mastery()
}

// Headword returns the front text with any leading article stripped.
func (c Card) Headword() string {
	front := strings.TrimSpace(c.Front)
	lower := strings.ToLower(front)
	for _, art := range []string{"der ", "die ", "das "} {
		if strings.HasPrefix(lower, art) {
			return strings.TrimSpace(front[len(art):])
		}
	}
	return front
}

// clone deep-copies the mutable parts so With* helpers never alias the
// receiver's maps or slices.
func (c Card) clone() Card {
	out := c
	out.Scores = make(map[exercise.Type]ExerciseScore, len(c.Scores))
	for t, s := range c.Scores {
		out.Scores[t] = s
	}
	out.Tags = append([]string(nil), c.Tags...)
	out.Examples = append([]string(nil), c.Examples...)
	return out
}
