package practice

import (
	"math/rand"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
)

// BuildQueue produces the ordered practice queue for a session.
//
// The pool holds the candidate cards (the caller has already excluded
// archived cards and filtered by language); poolSize is the size of the
// full card pool and gates multiple-choice eligibility.
//
// Per card: intersect its due types with the enabled+eligible set, falling
// back to the full eligible set when nothing has history yet. With
// weakness prioritization on, each card contributes its single weakest
// type and the whole queue is sorted weakest first; otherwise every
// eligible type contributes one item and the queue is shuffled.
func BuildQueue(pool []card.Card, prefs exercise.Preferences, poolSize int, now time.Time, rng *rand.Rand) []Item {
	var queue []Item

	for _, c := range pool {
		eligible := usableTypes(c, prefs, poolSize)
		if len(eligible) == 0 {
			continue
		}

		due := lo.Filter(c.DueExerciseTypes(now), func(t exercise.Type, _ int) bool {
			return lo.Contains(eligible, t)
		})
		types := eligible
		if len(due) > 0 {
			types = due
		}

		if prefs.PrioritizeWeaknesses {
			queue = append(queue, Item{Card: c, Type: weakestType(c, types)})
			continue
		}
		for _, t := range types {
			queue = append(queue, Item{Card: c, Type: t})
		}
	}

	if prefs.PrioritizeWeaknesses {
		sort.SliceStable(queue, func(i, j int) bool {
			return weakerItem(queue[i], queue[j])
		})
	} else {
		rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	}

	return queue
}

// weakestType picks the type that needs work most. types must be non-empty.
func weakestType(c card.Card, types []exercise.Type) exercise.Type {
	weakest := types[0]
	for _, t := range types[1:] {
		if weakerScore(scoreRank(c, t), scoreRank(c, weakest)) {
			weakest = t
		}
	}
	return weakest
}

// rank captures what the weakness comparator needs from a score.
type rank struct {
	tried       bool
	successRate float64
}

func scoreRank(c card.Card, t exercise.Type) rank {
	s, ok := c.Score(t)
	if !ok || s.TotalAttempts() == 0 {
		return rank{}
	}
	return rank{tried: true, successRate: s.SuccessRate()}
}

// weakerScore orders ranks weakest first. Untried types come before any
// practiced type (new material surfaces sooner); two untried types tie.
// Practiced types compare by success rate, lowest first.
func weakerScore(a, b rank) bool {
	if !a.tried || !b.tried {
		return !a.tried && b.tried
	}
	return a.successRate < b.successRate
}

func weakerItem(a, b Item) bool {
	return weakerScore(scoreRank(a.Card, a.Type), scoreRank(b.Card, b.Type))
}
