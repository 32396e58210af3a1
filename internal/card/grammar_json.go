package card

import (
	"encoding/json"
	"fmt"
)

// grammarEnvelope is the storage form of the Grammar sum: the word type
// discriminator plus the variant's own fields, flattened.
type grammarEnvelope struct {
	WordType WordType `json:"word_type"`

	// verb
	PresentSecond  string `json:"present_second,omitempty"`
	PresentThird   string `json:"present_third,omitempty"`
	PastSimple     string `json:"past_simple,omitempty"`
	PastParticiple string `json:"past_participle,omitempty"`

	// noun
	Gender string `json:"gender,omitempty"`
	Plural string `json:"plural,omitempty"`

	// adjective
	Comparative string `json:"comparative,omitempty"`
	Superlative string `json:"superlative,omitempty"`
}

// MarshalGrammar encodes a Grammar variant for storage. A nil grammar
// encodes as nil.
func MarshalGrammar(g Grammar) ([]byte, error) {
	if g == nil {
		return nil, nil
	}
	env := grammarEnvelope{WordType: g.WordType()}
	switch v := g.(type) {
	case VerbGrammar:
		env.PresentSecond = v.PresentSecond
		env.PresentThird = v.PresentThird
		env.PastSimple = v.PastSimple
		env.PastParticiple = v.PastParticiple
	case NounGrammar:
		env.Gender = v.Gender
		env.Plural = v.Plural
	case AdjectiveGrammar:
		env.Comparative = v.Comparative
		env.Superlative = v.Superlative
	case AdverbGrammar:
		// discriminator only
	default:
		return nil, fmt.Errorf("unknown grammar variant %T", g)
	}
	return json.Marshal(env)
}

// UnmarshalGrammar decodes a stored grammar payload. Empty input decodes
// to nil.
func UnmarshalGrammar(data []byte) (Grammar, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var env grammarEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode grammar: %w", err)
	}
	switch env.WordType {
	case WordVerb:
		return VerbGrammar{
			PresentSecond:  env.PresentSecond,
			PresentThird:   env.PresentThird,
			PastSimple:     env.PastSimple,
			PastParticiple: env.PastParticiple,
		}, nil
	case WordNoun:
		return NounGrammar{Gender: env.Gender, Plural: env.Plural}, nil
	case WordAdjective:
		return AdjectiveGrammar{Comparative: env.Comparative, Superlative: env.Superlative}, nil
	case WordAdverb:
		return AdverbGrammar{}, nil
	default:
		return nil, fmt.Errorf("unknown word type %q", env.WordType)
	}
}
