// Code generated by ent, DO NOT EDIT.

package card

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the card type in the database.
	Label = "card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFront holds the string denoting the front field in the database.
	FieldFront = "front"
	// FieldBack holds the string denoting the back field in the database.
	FieldBack = "back"
	// FieldIconRef holds the string denoting the icon_ref field in the database.
	FieldIconRef = "icon_ref"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldExamples holds the string denoting the examples field in the database.
	FieldExamples = "examples"
	// FieldGrammar holds the string denoting the grammar field in the database.
	FieldGrammar = "grammar"
	// FieldFavorite holds the string denoting the favorite field in the database.
	FieldFavorite = "favorite"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldLastReviewed holds the string denoting the last_reviewed field in the database.
	FieldLastReviewed = "last_reviewed"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the card in the database.
	Table = "cards"
)

// Columns holds all SQL columns for card fields.
var Columns = []string{
	FieldID,
	FieldFront,
	FieldBack,
	FieldIconRef,
	FieldLanguage,
	FieldTags,
	FieldNotes,
	FieldExamples,
	FieldGrammar,
	FieldFavorite,
	FieldArchived,
	FieldScores,
	FieldReviewCount,
	FieldCorrectCount,
	FieldLastReviewed,
	FieldNextReview,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FrontValidator is a validator for the "front" field. It is called by the builders before save.
	FrontValidator func(string) error
	// BackValidator is a validator for the "back" field. It is called by the builders before save.
	BackValidator func(string) error
	// DefaultIconRef holds the default value on creation for the "icon_ref" field.
	DefaultIconRef string
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// DefaultFavorite holds the default value on creation for the "favorite" field.
	DefaultFavorite bool
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Card queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFront orders the results by the front field.
func ByFront(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFront, opts...).ToFunc()
}

// ByBack orders the results by the back field.
func ByBack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBack, opts...).ToFunc()
}

// ByIconRef orders the results by the icon_ref field.
func ByIconRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIconRef, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByFavorite orders the results by the favorite field.
func ByFavorite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFavorite, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByLastReviewed orders the results by the last_reviewed field.
func ByLastReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewed, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
