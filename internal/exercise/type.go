package exercise

// Type identifies a drill mode applicable to a card.
type Type string

const (
	ReadingRecognition  Type = "reading_recognition"
	MultipleChoiceText  Type = "multiple_choice_text"
	MultipleChoiceIcon  Type = "multiple_choice_icon"
	ArticleSelection    Type = "article_selection"
	Listening           Type = "listening"
	ReverseTranslation  Type = "reverse_translation"
	SentenceBuilding    Type = "sentence_building"
	ConjugationPractice Type = "conjugation_practice"
)

// Category groups exercise types for bulk enable/disable.
type Category string

const (
	CategoryRecognition Category = "recognition"
	CategoryProduction  Category = "production"
)

// All lists every implemented exercise type, in display order.
var All = []Type{
	ReadingRecognition,
	MultipleChoiceText,
	MultipleChoiceIcon,
	ArticleSelection,
	Listening,
	ReverseTranslation,
	SentenceBuilding,
	ConjugationPractice,
}

// Core lists the types that need no extra card data and work on any card.
// These are the defaults for a fresh preferences value.
var Core = []Type{
	ReadingRecognition,
	Listening,
	ReverseTranslation,
}

var categories = map[Type]Category{
	ReadingRecognition:  CategoryRecognition,
	MultipleChoiceText:  CategoryRecognition,
	MultipleChoiceIcon:  CategoryRecognition,
	ArticleSelection:    CategoryRecognition,
	Listening:           CategoryRecognition,
	ReverseTranslation:  CategoryProduction,
	SentenceBuilding:    CategoryProduction,
	ConjugationPractice: CategoryProduction,
}

var displayNames = map[Type]string{
	ReadingRecognition:  "Reading Recognition",
	MultipleChoiceText:  "Multiple Choice",
	MultipleChoiceIcon:  "Icon Match",
	ArticleSelection:    "Article Selection",
	Listening:           "Listening",
	ReverseTranslation:  "Reverse Translation",
	SentenceBuilding:    "Sentence Building",
	ConjugationPractice: "Conjugation Practice",
}

// Category returns the category a type belongs to.
func (t Type) Category() Category {
	return categories[t]
}

// DisplayName returns the human-readable name for a type.
func (t Type) DisplayName() string {
	if n, ok := displayNames[t]; ok {
		return n
	}
	return string(t)
}

// IsMultipleChoice reports whether the type is answered by picking from options.
func (t Type) IsMultipleChoice() bool {
	return t == MultipleChoiceText || t == MultipleChoiceIcon
}

// Implemented reports whether the type is known to this build.
func (t Type) Implemented() bool {
	_, ok := categories[t]
	return ok
}

// OfCategory returns all implemented types in the given category.
func OfCategory(c Category) []Type {
	var out []Type
	for _, t := range All {
		if t.Category() == c {
			out = append(out, t)
		}
	}
	return out
}
