package practice

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/mlutz/kartei/internal/card"
)

// wrongOptionCount is the number of distractors shown next to the
// correct answer.
const wrongOptionCount = 3

// GenerateOptions samples multiple-choice options for the current card
// from the pool: three wrong back texts plus the correct one, in shuffled
// display order. The order is not stable across regenerations.
//
// Returns nil when fewer than three distinct wrong candidates exist; the
// pool-size gate in CanUse normally prevents that, but the generator
// re-checks rather than produce a short option list.
func GenerateOptions(current card.Card, pool []card.Card, rng *rand.Rand) []string {
	candidates := lo.Filter(pool, func(c card.Card, _ int) bool {
		return c.ID != current.ID && c.Back != current.Back
	})
	wrong := lo.Uniq(lo.Map(candidates, func(c card.Card, _ int) string {
		return c.Back
	}))
	if len(wrong) < wrongOptionCount {
		return nil
	}

	rng.Shuffle(len(wrong), func(i, j int) {
		wrong[i], wrong[j] = wrong[j], wrong[i]
	})

	options := append(wrong[:wrongOptionCount:wrongOptionCount], current.Back)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
