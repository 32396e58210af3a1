// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mlutz/kartei/ent/card"
	"github.com/mlutz/kartei/ent/predicate"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFront sets the "front" field.
func (_u *CardUpdate) SetFront(v string) *CardUpdate {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *CardUpdate) SetNillableFront(v *string) *CardUpdate {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *CardUpdate) SetBack(v string) *CardUpdate {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBack(v *string) *CardUpdate {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetIconRef sets the "icon_ref" field.
func (_u *CardUpdate) SetIconRef(v string) *CardUpdate {
	_u.mutation.SetIconRef(v)
	return _u
}

// SetNillableIconRef sets the "icon_ref" field if the given value is not nil.
func (_u *CardUpdate) SetNillableIconRef(v *string) *CardUpdate {
	if v != nil {
		_u.SetIconRef(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CardUpdate) SetLanguage(v string) *CardUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CardUpdate) SetNillableLanguage(v *string) *CardUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *CardUpdate) SetTags(v []string) *CardUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CardUpdate) AppendTags(v []string) *CardUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CardUpdate) ClearTags() *CardUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CardUpdate) SetNotes(v string) *CardUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CardUpdate) SetNillableNotes(v *string) *CardUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetExamples sets the "examples" field.
func (_u *CardUpdate) SetExamples(v []string) *CardUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *CardUpdate) AppendExamples(v []string) *CardUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *CardUpdate) ClearExamples() *CardUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// SetGrammar sets the "grammar" field.
func (_u *CardUpdate) SetGrammar(v []byte) *CardUpdate {
	_u.mutation.SetGrammar(v)
	return _u
}

// ClearGrammar clears the value of the "grammar" field.
func (_u *CardUpdate) ClearGrammar() *CardUpdate {
	_u.mutation.ClearGrammar()
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *CardUpdate) SetFavorite(v bool) *CardUpdate {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *CardUpdate) SetNillableFavorite(v *bool) *CardUpdate {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// SetArchived sets the "archived" field.
func (_u *CardUpdate) SetArchived(v bool) *CardUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *CardUpdate) SetNillableArchived(v *bool) *CardUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *CardUpdate) SetScores(v map[string]interface{}) *CardUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *CardUpdate) ClearScores() *CardUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *CardUpdate) SetReviewCount(v int) *CardUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *CardUpdate) SetNillableReviewCount(v *int) *CardUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *CardUpdate) AddReviewCount(v int) *CardUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *CardUpdate) SetCorrectCount(v int) *CardUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCorrectCount(v *int) *CardUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *CardUpdate) AddCorrectCount(v int) *CardUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *CardUpdate) SetLastReviewed(v time.Time) *CardUpdate {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *CardUpdate) SetNillableLastReviewed(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *CardUpdate) ClearLastReviewed() *CardUpdate {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *CardUpdate) SetNextReview(v time.Time) *CardUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *CardUpdate) SetNillableNextReview(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *CardUpdate) ClearNextReview() *CardUpdate {
	_u.mutation.ClearNextReview()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdate) SetUpdatedAt(v time.Time) *CardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableUpdatedAt(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.Front(); ok {
		if err := card.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Card.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Back(); ok {
		if err := card.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Card.back": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := card.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Card.language": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(card.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(card.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.IconRef(); ok {
		_spec.SetField(card.FieldIconRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(card.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(card.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(card.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(card.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(card.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(card.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Grammar(); ok {
		_spec.SetField(card.FieldGrammar, field.TypeBytes, value)
	}
	if _u.mutation.GrammarCleared() {
		_spec.ClearField(card.FieldGrammar, field.TypeBytes)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(card.FieldFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(card.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(card.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(card.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(card.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(card.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(card.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(card.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetFront sets the "front" field.
func (_u *CardUpdateOne) SetFront(v string) *CardUpdateOne {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableFront(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *CardUpdateOne) SetBack(v string) *CardUpdateOne {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBack(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetIconRef sets the "icon_ref" field.
func (_u *CardUpdateOne) SetIconRef(v string) *CardUpdateOne {
	_u.mutation.SetIconRef(v)
	return _u
}

// SetNillableIconRef sets the "icon_ref" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableIconRef(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetIconRef(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CardUpdateOne) SetLanguage(v string) *CardUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableLanguage(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *CardUpdateOne) SetTags(v []string) *CardUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CardUpdateOne) AppendTags(v []string) *CardUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CardUpdateOne) ClearTags() *CardUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CardUpdateOne) SetNotes(v string) *CardUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableNotes(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetExamples sets the "examples" field.
func (_u *CardUpdateOne) SetExamples(v []string) *CardUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *CardUpdateOne) AppendExamples(v []string) *CardUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *CardUpdateOne) ClearExamples() *CardUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// SetGrammar sets the "grammar" field.
func (_u *CardUpdateOne) SetGrammar(v []byte) *CardUpdateOne {
	_u.mutation.SetGrammar(v)
	return _u
}

// ClearGrammar clears the value of the "grammar" field.
func (_u *CardUpdateOne) ClearGrammar() *CardUpdateOne {
	_u.mutation.ClearGrammar()
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *CardUpdateOne) SetFavorite(v bool) *CardUpdateOne {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableFavorite(v *bool) *CardUpdateOne {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// SetArchived sets the "archived" field.
func (_u *CardUpdateOne) SetArchived(v bool) *CardUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableArchived(v *bool) *CardUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *CardUpdateOne) SetScores(v map[string]interface{}) *CardUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *CardUpdateOne) ClearScores() *CardUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *CardUpdateOne) SetReviewCount(v int) *CardUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableReviewCount(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *CardUpdateOne) AddReviewCount(v int) *CardUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *CardUpdateOne) SetCorrectCount(v int) *CardUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCorrectCount(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *CardUpdateOne) AddCorrectCount(v int) *CardUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *CardUpdateOne) SetLastReviewed(v time.Time) *CardUpdateOne {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableLastReviewed(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *CardUpdateOne) ClearLastReviewed() *CardUpdateOne {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *CardUpdateOne) SetNextReview(v time.Time) *CardUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableNextReview(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *CardUpdateOne) ClearNextReview() *CardUpdateOne {
	_u.mutation.ClearNextReview()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdateOne) SetUpdatedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableUpdatedAt(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.Front(); ok {
		if err := card.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Card.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Back(); ok {
		if err := card.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Card.back": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := card.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Card.language": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(card.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(card.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.IconRef(); ok {
		_spec.SetField(card.FieldIconRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(card.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(card.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(card.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(card.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(card.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(card.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Grammar(); ok {
		_spec.SetField(card.FieldGrammar, field.TypeBytes, value)
	}
	if _u.mutation.GrammarCleared() {
		_spec.ClearField(card.FieldGrammar, field.TypeBytes)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(card.FieldFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(card.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(card.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(card.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(card.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(card.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(card.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(card.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
