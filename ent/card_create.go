// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mlutz/kartei/ent/card"
)

// CardCreate is the builder for creating a Card entity.
type CardCreate struct {
	config
	mutation *CardMutation
	hooks    []Hook
}

// SetFront sets the "front" field.
func (_c *CardCreate) SetFront(v string) *CardCreate {
	_c.mutation.SetFront(v)
	return _c
}

// SetBack sets the "back" field.
func (_c *CardCreate) SetBack(v string) *CardCreate {
	_c.mutation.SetBack(v)
	return _c
}

// SetIconRef sets the "icon_ref" field.
func (_c *CardCreate) SetIconRef(v string) *CardCreate {
	_c.mutation.SetIconRef(v)
	return _c
}

// SetNillableIconRef sets the "icon_ref" field if the given value is not nil.
func (_c *CardCreate) SetNillableIconRef(v *string) *CardCreate {
	if v != nil {
		_c.SetIconRef(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CardCreate) SetLanguage(v string) *CardCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *CardCreate) SetTags(v []string) *CardCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *CardCreate) SetNotes(v string) *CardCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *CardCreate) SetNillableNotes(v *string) *CardCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetExamples sets the "examples" field.
func (_c *CardCreate) SetExamples(v []string) *CardCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// SetGrammar sets the "grammar" field.
func (_c *CardCreate) SetGrammar(v []byte) *CardCreate {
	_c.mutation.SetGrammar(v)
	return _c
}

// SetFavorite sets the "favorite" field.
func (_c *CardCreate) SetFavorite(v bool) *CardCreate {
	_c.mutation.SetFavorite(v)
	return _c
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_c *CardCreate) SetNillableFavorite(v *bool) *CardCreate {
	if v != nil {
		_c.SetFavorite(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *CardCreate) SetArchived(v bool) *CardCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *CardCreate) SetNillableArchived(v *bool) *CardCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetScores sets the "scores" field.
func (_c *CardCreate) SetScores(v map[string]interface{}) *CardCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *CardCreate) SetReviewCount(v int) *CardCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *CardCreate) SetNillableReviewCount(v *int) *CardCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *CardCreate) SetCorrectCount(v int) *CardCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *CardCreate) SetNillableCorrectCount(v *int) *CardCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetLastReviewed sets the "last_reviewed" field.
func (_c *CardCreate) SetLastReviewed(v time.Time) *CardCreate {
	_c.mutation.SetLastReviewed(v)
	return _c
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_c *CardCreate) SetNillableLastReviewed(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetLastReviewed(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *CardCreate) SetNextReview(v time.Time) *CardCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_c *CardCreate) SetNillableNextReview(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetNextReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardCreate) SetCreatedAt(v time.Time) *CardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableCreatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CardCreate) SetUpdatedAt(v time.Time) *CardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableUpdatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CardCreate) SetID(v string) *CardCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CardMutation object of the builder.
func (_c *CardCreate) Mutation() *CardMutation {
	return _c.mutation
}

// Save creates the Card in the database.
func (_c *CardCreate) Save(ctx context.Context) (*Card, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardCreate) SaveX(ctx context.Context) *Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardCreate) defaults() {
	if _, ok := _c.mutation.IconRef(); !ok {
		v := card.DefaultIconRef
		_c.mutation.SetIconRef(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := card.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		v := card.DefaultFavorite
		_c.mutation.SetFavorite(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := card.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := card.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := card.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := card.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := card.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardCreate) check() error {
	if _, ok := _c.mutation.Front(); !ok {
		return &ValidationError{Name: "front", err: errors.New(`ent: missing required field "Card.front"`)}
	}
	if v, ok := _c.mutation.Front(); ok {
		if err := card.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Card.front": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Back(); !ok {
		return &ValidationError{Name: "back", err: errors.New(`ent: missing required field "Card.back"`)}
	}
	if v, ok := _c.mutation.Back(); ok {
		if err := card.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Card.back": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IconRef(); !ok {
		return &ValidationError{Name: "icon_ref", err: errors.New(`ent: missing required field "Card.icon_ref"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Card.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := card.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Card.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "Card.notes"`)}
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		return &ValidationError{Name: "favorite", err: errors.New(`ent: missing required field "Card.favorite"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Card.archived"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "Card.review_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "Card.correct_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Card.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Card.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := card.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Card.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CardCreate) sqlSave(ctx context.Context) (*Card, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Card.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardCreate) createSpec() (*Card, *sqlgraph.CreateSpec) {
	var (
		_node = &Card{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(card.Table, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Front(); ok {
		_spec.SetField(card.FieldFront, field.TypeString, value)
		_node.Front = value
	}
	if value, ok := _c.mutation.Back(); ok {
		_spec.SetField(card.FieldBack, field.TypeString, value)
		_node.Back = value
	}
	if value, ok := _c.mutation.IconRef(); ok {
		_spec.SetField(card.FieldIconRef, field.TypeString, value)
		_node.IconRef = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(card.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(card.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(card.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(card.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	if value, ok := _c.mutation.Grammar(); ok {
		_spec.SetField(card.FieldGrammar, field.TypeBytes, value)
		_node.Grammar = value
	}
	if value, ok := _c.mutation.Favorite(); ok {
		_spec.SetField(card.FieldFavorite, field.TypeBool, value)
		_node.Favorite = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(card.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(card.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(card.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.LastReviewed(); ok {
		_spec.SetField(card.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeTime, value)
		_node.NextReview = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CardCreateBulk is the builder for creating many Card entities in bulk.
type CardCreateBulk struct {
	config
	err      error
	builders []*CardCreate
}

// Save creates the Card entities in the database.
func (_c *CardCreateBulk) Save(ctx context.Context) ([]*Card, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Card, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CardCreateBulk) SaveX(ctx context.Context) []*Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
