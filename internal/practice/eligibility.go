package practice

import (
	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
)

// MinPoolForChoices is the smallest card pool that can produce a
// multiple-choice exercise: the card itself plus three distractors.
const MinPoolForChoices = 4

// CanUse decides whether an exercise type is applicable to a card, given
// the size of the full card pool.
func CanUse(c card.Card, t exercise.Type, poolSize int) bool {
	switch t {
	case exercise.MultipleChoiceIcon:
		return c.IconRef != "" && poolSize >= MinPoolForChoices
	case exercise.MultipleChoiceText:
		return poolSize >= MinPoolForChoices
	case exercise.SentenceBuilding:
		return len(c.Examples) > 0
	case exercise.ConjugationPractice:
		return c.Grammar != nil && c.Grammar.HasConjugationData()
	case exercise.ArticleSelection:
		return c.HasArticle()
	default:
		return t.Implemented()
	}
}

// usableTypes returns the implemented, enabled, CanUse-eligible types for
// a card, in the fixed display order.
func usableTypes(c card.Card, prefs exercise.Preferences, poolSize int) []exercise.Type {
	var out []exercise.Type
	for _, t := range exercise.All {
		if prefs.IsEnabled(t) && CanUse(c, t, poolSize) {
			out = append(out, t)
		}
	}
	return out
}
