package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is the persisted flashcard row. The per-exercise score map and the
// grammar payload are stored as JSON; the domain codec in internal/card
// owns their shape.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty().
			Comment("UUID assigned at creation"),
		field.String("front").
			NotEmpty().
			Comment("Front text in the learning language"),
		field.String("back").
			NotEmpty().
			Comment("Back text (translation)"),
		field.String("icon_ref").
			Default("").
			Comment("Icon set reference, e.g. mdi:dog; empty if none"),
		field.String("language").
			NotEmpty().
			Comment("Language code of the front text"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Normalized tag set"),
		field.String("notes").
			Default(""),
		field.JSON("examples", []string{}).
			Optional().
			Comment("Example sentences using the front text"),
		field.Bytes("grammar").
			Optional().
			Comment("Word-type payload encoded by card.MarshalGrammar"),
		field.Bool("favorite").
			Default(false),
		field.Bool("archived").
			Default(false).
			Comment("Archived cards are excluded from scheduling"),
		field.JSON("scores", map[string]any{}).
			Optional().
			Comment("Per-exercise-type score map, authoritative for scheduling"),
		field.Int("review_count").
			Default(0).
			Comment("Legacy card-level aggregate"),
		field.Int("correct_count").
			Default(0).
			Comment("Legacy card-level aggregate"),
		field.Time("last_reviewed").
			Optional().
			Nillable(),
		field.Time("next_review").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("language"),
		index.Fields("archived"),
		index.Fields("next_review"),
	}
}
