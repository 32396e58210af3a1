package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single answered or skipped practice item.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("card_id").
			NotEmpty().
			Comment("Card that was reviewed"),
		field.String("exercise_type").
			NotEmpty().
			Comment("Drill mode, e.g. reading_recognition"),
		field.Bool("correct").
			Comment("Whether the answer was marked correct"),
		field.Bool("skipped").
			Default(false).
			Comment("True when the item was skipped (forced incorrect)"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds the item was on screen"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("card_id"),
		index.Fields("correct"),
	}
}
