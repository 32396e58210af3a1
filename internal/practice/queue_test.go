package practice

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
)

var (
	qNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func onlyType(t exercise.Type) exercise.Preferences {
	p := exercise.DefaultPreferences()
	for _, typ := range exercise.All {
		p = p.SetEnabled(typ, typ == t)
	}
	return p
}

func makePool(n int, lang string) []card.Card {
	backs := []string{"dog", "cat", "house", "tree", "river", "cloud"}
	fronts := []string{"Hund", "Katze", "Haus", "Baum", "Fluss", "Wolke"}
	pool := make([]card.Card, n)
	for i := 0; i < n; i++ {
		pool[i] = card.New(fronts[i%len(fronts)], backs[i%len(backs)], lang, qNow)
	}
	return pool
}

func TestBuildQueue_ScenarioA_OneItemPerUnpracticedCard(t *testing.T) {
	pool := makePool(4, "de")
	prefs := onlyType(exercise.ReadingRecognition)

	queue := BuildQueue(pool, prefs, len(pool), qNow, testRand())

	if len(queue) != 4 {
		t.Fatalf("queue length = %d, want 4", len(queue))
	}
	for _, it := range queue {
		if it.Type != exercise.ReadingRecognition {
			t.Errorf("item type = %s, want reading recognition", it.Type)
		}
	}
}

func TestBuildQueue_ScenarioB_CardWithoutExamplesExcluded(t *testing.T) {
	pool := makePool(1, "de") // no example sentences
	prefs := onlyType(exercise.SentenceBuilding)

	queue := BuildQueue(pool, prefs, len(pool), qNow, testRand())

	if len(queue) != 0 {
		t.Fatalf("queue length = %d, want 0", len(queue))
	}
}

func TestBuildQueue_SmallPoolExcludesMultipleChoice(t *testing.T) {
	pool := makePool(2, "de")
	prefs := onlyType(exercise.MultipleChoiceText)

	queue := BuildQueue(pool, prefs, len(pool), qNow, testRand())

	if len(queue) != 0 {
		t.Fatalf("queue length = %d, want 0 with a 2-card pool", len(queue))
	}
}

func TestBuildQueue_RoundTrip_NoForeignCards(t *testing.T) {
	pool := makePool(6, "de")
	prefs := exercise.DefaultPreferences().SetCategory(exercise.CategoryProduction, true)
	prefs.PrioritizeWeaknesses = false

	queue := BuildQueue(pool, prefs, len(pool), qNow, testRand())

	poolIDs := make(map[string]bool, len(pool))
	for _, c := range pool {
		poolIDs[c.ID] = true
	}
	for _, it := range queue {
		if !poolIDs[it.Card.ID] {
			t.Errorf("queue references foreign card %s", it.Card.ID)
		}
	}
}

func TestBuildQueue_NoPrioritize_OneItemPerEligibleType(t *testing.T) {
	pool := makePool(1, "de")
	prefs := exercise.DefaultPreferences()
	prefs.PrioritizeWeaknesses = false

	queue := BuildQueue(pool, prefs, len(pool), qNow, testRand())

	// Core types are all usable on a bare card.
	if len(queue) != len(exercise.Core) {
		t.Fatalf("queue length = %d, want %d", len(queue), len(exercise.Core))
	}
	seen := make(map[exercise.Type]bool)
	for _, it := range queue {
		seen[it.Type] = true
	}
	for _, typ := range exercise.Core {
		if !seen[typ] {
			t.Errorf("missing item for %s", typ)
		}
	}
}

func TestBuildQueue_Prioritize_SingleWeakestPerCard(t *testing.T) {
	pool := makePool(2, "de")

	// Card 0: reading practiced and strong, listening practiced and weak.
	s := ExScore(4, 0)
	pool[0].Scores[exercise.ReadingRecognition] = s
	pool[0].Scores[exercise.Listening] = ExScore(1, 3)
	pool[0].Scores[exercise.ReverseTranslation] = ExScore(2, 0)

	prefs := exercise.DefaultPreferences() // prioritize on

	queue := BuildQueue(pool, prefs, len(pool), qNow, testRand())

	perCard := make(map[string]int)
	for _, it := range queue {
		perCard[it.Card.ID]++
	}
	for id, n := range perCard {
		if n != 1 {
			t.Errorf("card %s has %d items, want 1", id, n)
		}
	}
}

// ExScore builds a practiced score that is due now (nil NextReview).
func ExScore(correct, incorrect int) card.ExerciseScore {
	return card.ExerciseScore{CorrectCount: correct, IncorrectCount: incorrect}
}

func TestWeaknessComparator_UntriedFirst(t *testing.T) {
	untried := rank{}
	weak := rank{tried: true, successRate: 25}
	strong := rank{tried: true, successRate: 90}

	if !weakerScore(untried, weak) {
		t.Error("untried should rank before practiced")
	}
	if weakerScore(weak, untried) {
		t.Error("practiced should not rank before untried")
	}
	if weakerScore(untried, untried) {
		t.Error("two untried ranks tie")
	}
	if !weakerScore(weak, strong) {
		t.Error("lower success rate ranks first")
	}
}

func TestBuildQueue_Prioritize_SortsWeakestFirst(t *testing.T) {
	pool := makePool(3, "de")
	prefs := onlyType(exercise.ReadingRecognition)

	pool[0].Scores[exercise.ReadingRecognition] = ExScore(9, 1) // 90%
	pool[1].Scores[exercise.ReadingRecognition] = ExScore(1, 9) // 10%
	// pool[2] keeps its zero score: untried.

	queue := BuildQueue(pool, prefs, len(pool), qNow, testRand())
	if len(queue) != 3 {
		t.Fatalf("queue length = %d, want 3", len(queue))
	}

	if queue[0].Card.ID != pool[2].ID {
		t.Errorf("untried card should come first, got %s", queue[0].Card.Front)
	}
	if queue[1].Card.ID != pool[1].ID {
		t.Errorf("weakest practiced card should come second")
	}
	if queue[2].Card.ID != pool[0].ID {
		t.Errorf("strongest card should come last")
	}
}
