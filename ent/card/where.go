// Code generated by ent, DO NOT EDIT.

package card

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mlutz/kartei/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldID, id))
}

// Front applies equality check predicate on the "front" field. It's identical to FrontEQ.
func Front(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldFront, v))
}

// Back applies equality check predicate on the "back" field. It's identical to BackEQ.
func Back(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBack, v))
}

// IconRef applies equality check predicate on the "icon_ref" field. It's identical to IconRefEQ.
func IconRef(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldIconRef, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLanguage, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNotes, v))
}

// Grammar applies equality check predicate on the "grammar" field. It's identical to GrammarEQ.
func Grammar(v []byte) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldGrammar, v))
}

// Favorite applies equality check predicate on the "favorite" field. It's identical to FavoriteEQ.
func Favorite(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldFavorite, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldArchived, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldReviewCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCorrectCount, v))
}

// LastReviewed applies equality check predicate on the "last_reviewed" field. It's identical to LastReviewedEQ.
func LastReviewed(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLastReviewed, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNextReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUpdatedAt, v))
}

// FrontEQ applies the EQ predicate on the "front" field.
func FrontEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldFront, v))
}

// FrontNEQ applies the NEQ predicate on the "front" field.
func FrontNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldFront, v))
}

// FrontIn applies the In predicate on the "front" field.
func FrontIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldFront, vs...))
}

// FrontNotIn applies the NotIn predicate on the "front" field.
func FrontNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldFront, vs...))
}

// FrontGT applies the GT predicate on the "front" field.
func FrontGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldFront, v))
}

// FrontGTE applies the GTE predicate on the "front" field.
func FrontGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldFront, v))
}

// FrontLT applies the LT predicate on the "front" field.
func FrontLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldFront, v))
}

// FrontLTE applies the LTE predicate on the "front" field.
func FrontLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldFront, v))
}

// FrontContains applies the Contains predicate on the "front" field.
func FrontContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldFront, v))
}

// FrontHasPrefix applies the HasPrefix predicate on the "front" field.
func FrontHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldFront, v))
}

// FrontHasSuffix applies the HasSuffix predicate on the "front" field.
func FrontHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldFront, v))
}

// FrontEqualFold applies the EqualFold predicate on the "front" field.
func FrontEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldFront, v))
}

// FrontContainsFold applies the ContainsFold predicate on the "front" field.
func FrontContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldFront, v))
}

// BackEQ applies the EQ predicate on the "back" field.
func BackEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBack, v))
}

// BackNEQ applies the NEQ predicate on the "back" field.
func BackNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBack, v))
}

// BackIn applies the In predicate on the "back" field.
func BackIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBack, vs...))
}

// BackNotIn applies the NotIn predicate on the "back" field.
func BackNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBack, vs...))
}

// BackGT applies the GT predicate on the "back" field.
func BackGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBack, v))
}

// BackGTE applies the GTE predicate on the "back" field.
func BackGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBack, v))
}

// BackLT applies the LT predicate on the "back" field.
func BackLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBack, v))
}

// BackLTE applies the LTE predicate on the "back" field.
func BackLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBack, v))
}

// BackContains applies the Contains predicate on the "back" field.
func BackContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBack, v))
}

// BackHasPrefix applies the HasPrefix predicate on the "back" field.
func BackHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBack, v))
}

// BackHasSuffix applies the HasSuffix predicate on the "back" field.
func BackHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBack, v))
}

// BackEqualFold applies the EqualFold predicate on the "back" field.
func BackEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBack, v))
}

// BackContainsFold applies the ContainsFold predicate on the "back" field.
func BackContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBack, v))
}

// IconRefEQ applies the EQ predicate on the "icon_ref" field.
func IconRefEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldIconRef, v))
}

// IconRefNEQ applies the NEQ predicate on the "icon_ref" field.
func IconRefNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldIconRef, v))
}

// IconRefIn applies the In predicate on the "icon_ref" field.
func IconRefIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldIconRef, vs...))
}

// IconRefNotIn applies the NotIn predicate on the "icon_ref" field.
func IconRefNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldIconRef, vs...))
}

// IconRefGT applies the GT predicate on the "icon_ref" field.
func IconRefGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldIconRef, v))
}

// IconRefGTE applies the GTE predicate on the "icon_ref" field.
func IconRefGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldIconRef, v))
}

// IconRefLT applies the LT predicate on the "icon_ref" field.
func IconRefLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldIconRef, v))
}

// IconRefLTE applies the LTE predicate on the "icon_ref" field.
func IconRefLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldIconRef, v))
}

// IconRefContains applies the Contains predicate on the "icon_ref" field.
func IconRefContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldIconRef, v))
}

// IconRefHasPrefix applies the HasPrefix predicate on the "icon_ref" field.
func IconRefHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldIconRef, v))
}

// IconRefHasSuffix applies the HasSuffix predicate on the "icon_ref" field.
func IconRefHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldIconRef, v))
}

// IconRefEqualFold applies the EqualFold predicate on the "icon_ref" field.
func IconRefEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldIconRef, v))
}

// IconRefContainsFold applies the ContainsFold predicate on the "icon_ref" field.
func IconRefContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldIconRef, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldLanguage, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldTags))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldNotes, v))
}

// ExamplesIsNil applies the IsNil predicate on the "examples" field.
func ExamplesIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldExamples))
}

// ExamplesNotNil applies the NotNil predicate on the "examples" field.
func ExamplesNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldExamples))
}

// GrammarEQ applies the EQ predicate on the "grammar" field.
func GrammarEQ(v []byte) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldGrammar, v))
}

// GrammarNEQ applies the NEQ predicate on the "grammar" field.
func GrammarNEQ(v []byte) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldGrammar, v))
}

// GrammarIn applies the In predicate on the "grammar" field.
func GrammarIn(vs ...[]byte) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldGrammar, vs...))
}

// GrammarNotIn applies the NotIn predicate on the "grammar" field.
func GrammarNotIn(vs ...[]byte) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldGrammar, vs...))
}

// GrammarGT applies the GT predicate on the "grammar" field.
func GrammarGT(v []byte) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldGrammar, v))
}

// GrammarGTE applies the GTE predicate on the "grammar" field.
func GrammarGTE(v []byte) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldGrammar, v))
}

// GrammarLT applies the LT predicate on the "grammar" field.
func GrammarLT(v []byte) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldGrammar, v))
}

// GrammarLTE applies the LTE predicate on the "grammar" field.
func GrammarLTE(v []byte) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldGrammar, v))
}

// GrammarIsNil applies the IsNil predicate on the "grammar" field.
func GrammarIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldGrammar))
}

// GrammarNotNil applies the NotNil predicate on the "grammar" field.
func GrammarNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldGrammar))
}

// FavoriteEQ applies the EQ predicate on the "favorite" field.
func FavoriteEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldFavorite, v))
}

// FavoriteNEQ applies the NEQ predicate on the "favorite" field.
func FavoriteNEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldFavorite, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldArchived, v))
}

// ScoresIsNil applies the IsNil predicate on the "scores" field.
func ScoresIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldScores))
}

// ScoresNotNil applies the NotNil predicate on the "scores" field.
func ScoresNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldScores))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldReviewCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCorrectCount, v))
}

// LastReviewedEQ applies the EQ predicate on the "last_reviewed" field.
func LastReviewedEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLastReviewed, v))
}

// LastReviewedNEQ applies the NEQ predicate on the "last_reviewed" field.
func LastReviewedNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldLastReviewed, v))
}

// LastReviewedIn applies the In predicate on the "last_reviewed" field.
func LastReviewedIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldLastReviewed, vs...))
}

// LastReviewedNotIn applies the NotIn predicate on the "last_reviewed" field.
func LastReviewedNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldLastReviewed, vs...))
}

// LastReviewedGT applies the GT predicate on the "last_reviewed" field.
func LastReviewedGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldLastReviewed, v))
}

// LastReviewedGTE applies the GTE predicate on the "last_reviewed" field.
func LastReviewedGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldLastReviewed, v))
}

// LastReviewedLT applies the LT predicate on the "last_reviewed" field.
func LastReviewedLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldLastReviewed, v))
}

// LastReviewedLTE applies the LTE predicate on the "last_reviewed" field.
func LastReviewedLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldLastReviewed, v))
}

// LastReviewedIsNil applies the IsNil predicate on the "last_reviewed" field.
func LastReviewedIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldLastReviewed))
}

// LastReviewedNotNil applies the NotNil predicate on the "last_reviewed" field.
func LastReviewedNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldLastReviewed))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldNextReview, v))
}

// NextReviewIsNil applies the IsNil predicate on the "next_review" field.
func NextReviewIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldNextReview))
}

// NextReviewNotNil applies the NotNil predicate on the "next_review" field.
func NextReviewNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldNextReview))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Card) predicate.Card {
	return predicate.Card(sql.NotPredicates(p))
}
