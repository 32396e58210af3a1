package card

// WordType discriminates the grammar payload variants.
type WordType string

const (
	WordVerb      WordType = "verb"
	WordNoun      WordType = "noun"
	WordAdjective WordType = "adjective"
	WordAdverb    WordType = "adverb"
)

// Grammar is the word-type-specific payload attached to a card.
// It is a closed sum: exactly the four variants below implement it.
type Grammar interface {
	WordType() WordType
	// HasConjugationData reports whether the payload carries enough
	// information to drive a conjugation exercise.
	HasConjugationData() bool
}

// VerbGrammar holds conjugation forms for a verb card.
type VerbGrammar struct {
	PresentSecond  string `json:"present_second,omitempty"`
	PresentThird   string `json:"present_third,omitempty"`
	PastSimple     string `json:"past_simple,omitempty"`
	PastParticiple string `json:"past_participle,omitempty"`
}

func (VerbGrammar) WordType() WordType { return WordVerb }

func (g VerbGrammar) HasConjugationData() bool {
	return g.PresentSecond != "" || g.PresentThird != "" ||
		g.PastSimple != "" || g.PastParticiple != ""
}

// NounGrammar holds gender and plural for a noun card.
type NounGrammar struct {
	Gender string `json:"gender,omitempty"` // article: der, die, das, ...
	Plural string `json:"plural,omitempty"`
}

func (NounGrammar) WordType() WordType { return WordNoun }

func (g NounGrammar) HasConjugationData() bool {
	return g.Gender != ""
}

// AdjectiveGrammar holds comparison forms for an adjective card.
type AdjectiveGrammar struct {
	Comparative string `json:"comparative,omitempty"`
	Superlative string `json:"superlative,omitempty"`
}

func (AdjectiveGrammar) WordType() WordType { return WordAdjective }

func (g AdjectiveGrammar) HasConjugationData() bool {
	return g.Comparative != "" || g.Superlative != ""
}

// AdverbGrammar is the payload for adverbs. Adverbs carry no inflection
// data, so it is empty but keeps the sum closed.
type AdverbGrammar struct{}

func (AdverbGrammar) WordType() WordType { return WordAdverb }

func (AdverbGrammar) HasConjugationData() bool { return false }
