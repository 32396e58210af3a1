package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entcard "github.com/mlutz/kartei/ent/card"

	"github.com/mlutz/kartei/ent"
	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
)

// cardRepo implements CardRepo using the ent client.
type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) Create(ctx context.Context, c card.Card) error {
	builder, err := r.apply(r.client.Card.Create().SetID(c.ID), c)
	if err != nil {
		return err
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create card: %w", err)
	}
	return nil
}

func (r *cardRepo) SaveCard(ctx context.Context, c card.Card) error {
	builder, err := r.applyUpdate(r.client.Card.UpdateOneID(c.ID), c)
	if err != nil {
		return err
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save card %s: %w", c.ID, err)
	}
	return nil
}

func (r *cardRepo) Get(ctx context.Context, id string) (card.Card, error) {
	row, err := r.client.Card.Get(ctx, id)
	if err != nil {
		return card.Card{}, fmt.Errorf("get card %s: %w", id, err)
	}
	return fromEnt(row)
}

func (r *cardRepo) List(ctx context.Context, f CardFilter) ([]card.Card, error) {
	q := r.client.Card.Query()
	if !f.IncludeArchived {
		q = q.Where(entcard.Archived(false))
	}
	if f.Language != "" {
		q = q.Where(entcard.Language(f.Language))
	}
	if f.FavoritesOnly {
		q = q.Where(entcard.Favorite(true))
	}
	if f.DueOnly {
		q = q.Where(entcard.Or(
			entcard.NextReviewIsNil(),
			entcard.NextReviewLT(time.Now()),
		))
	}
	q = q.Order(ent.Asc(entcard.FieldCreatedAt))

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	var out []card.Card
	for _, row := range rows {
		c, err := fromEnt(row)
		if err != nil {
			return nil, err
		}
		if f.Tag != "" && !hasTag(c, f.Tag) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *cardRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Card.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	return nil
}

func (r *cardRepo) Count(ctx context.Context, language string) (int, error) {
	q := r.client.Card.Query().Where(entcard.Archived(false))
	if language != "" {
		q = q.Where(entcard.Language(language))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}

func hasTag(c card.Card, tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// apply copies domain fields onto a create builder.
func (r *cardRepo) apply(b *ent.CardCreate, c card.Card) (*ent.CardCreate, error) {
	scores, err := scoresToMap(c.Scores)
	if err != nil {
		return nil, err
	}
	grammar, err := card.MarshalGrammar(c.Grammar)
	if err != nil {
		return nil, fmt.Errorf("encode grammar for card %s: %w", c.ID, err)
	}

	b = b.
		SetFront(c.Front).
		SetBack(c.Back).
		SetIconRef(c.IconRef).
		SetLanguage(c.Language).
		SetTags(c.Tags).
		SetNotes(c.Notes).
		SetExamples(c.Examples).
		SetFavorite(c.Favorite).
		SetArchived(c.Archived).
		SetScores(scores).
		SetReviewCount(c.ReviewCount).
		SetCorrectCount(c.CorrectCount).
		SetCreatedAt(c.CreatedAt).
		SetUpdatedAt(c.UpdatedAt)
	if grammar != nil {
		b = b.SetGrammar(grammar)
	}
	if c.LastReviewed != nil {
		b = b.SetLastReviewed(*c.LastReviewed)
	}
	if c.NextReview != nil {
		b = b.SetNextReview(*c.NextReview)
	}
	return b, nil
}

// applyUpdate copies domain fields onto an update builder.
func (r *cardRepo) applyUpdate(b *ent.CardUpdateOne, c card.Card) (*ent.CardUpdateOne, error) {
	scores, err := scoresToMap(c.Scores)
	if err != nil {
		return nil, err
	}
	grammar, err := card.MarshalGrammar(c.Grammar)
	if err != nil {
		return nil, fmt.Errorf("encode grammar for card %s: %w", c.ID, err)
	}

	b = b.
		SetFront(c.Front).
		SetBack(c.Back).
		SetIconRef(c.IconRef).
		SetLanguage(c.Language).
		SetTags(c.Tags).
		SetNotes(c.Notes).
		SetExamples(c.Examples).
		SetFavorite(c.Favorite).
		SetArchived(c.Archived).
		SetScores(scores).
		SetReviewCount(c.ReviewCount).
		SetCorrectCount(c.CorrectCount).
		SetUpdatedAt(c.UpdatedAt)
	if grammar != nil {
		b = b.SetGrammar(grammar)
	} else {
		b = b.ClearGrammar()
	}
	if c.LastReviewed != nil {
		b = b.SetLastReviewed(*c.LastReviewed)
	}
	if c.NextReview != nil {
		b = b.SetNextReview(*c.NextReview)
	}
	return b, nil
}

// fromEnt converts a row back to the domain card.
func fromEnt(row *ent.Card) (card.Card, error) {
	scores, err := scoresFromMap(row.Scores)
	if err != nil {
		return card.Card{}, fmt.Errorf("decode scores for card %s: %w", row.ID, err)
	}
	grammar, err := card.UnmarshalGrammar(row.Grammar)
	if err != nil {
		return card.Card{}, fmt.Errorf("decode grammar for card %s: %w", row.ID, err)
	}

	return card.Card{
		ID:           row.ID,
		Front:        row.Front,
		Back:         row.Back,
		IconRef:      row.IconRef,
		Language:     row.Language,
		Tags:         row.Tags,
		Notes:        row.Notes,
		Examples:     row.Examples,
		Grammar:      grammar,
		Favorite:     row.Favorite,
		Archived:     row.Archived,
		Scores:       scores,
		ReviewCount:  row.ReviewCount,
		CorrectCount: row.CorrectCount,
		LastReviewed: row.LastReviewed,
		NextReview:   row.NextReview,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// scoresToMap flattens the typed score map for ent's JSON column.
func scoresToMap(scores map[exercise.Type]card.ExerciseScore) (map[string]any, error) {
	b, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("encode scores: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("encode scores: %w", err)
	}
	return m, nil
}

func scoresFromMap(m map[string]any) (map[exercise.Type]card.ExerciseScore, error) {
	if m == nil {
		return map[exercise.Type]card.ExerciseScore{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	var scores map[exercise.Type]card.ExerciseScore
	if err := json.Unmarshal(b, &scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return scores, nil
}
