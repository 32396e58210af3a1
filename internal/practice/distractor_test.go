package practice

import (
	"testing"

	"github.com/mlutz/kartei/internal/card"
)

func TestGenerateOptions_FourOptionsOneCorrect(t *testing.T) {
	pool := makePool(5, "de")
	current := pool[0]

	options := GenerateOptions(current, pool, testRand())

	if len(options) != 4 {
		t.Fatalf("got %d options, want 4", len(options))
	}

	correct := 0
	wrongBacks := make(map[string]bool)
	for _, c := range pool {
		if c.ID != current.ID && c.Back != current.Back {
			wrongBacks[c.Back] = true
		}
	}
	for _, opt := range options {
		if opt == current.Back {
			correct++
			continue
		}
		if !wrongBacks[opt] {
			t.Errorf("option %q is not drawn from the pool", opt)
		}
	}
	if correct != 1 {
		t.Errorf("correct answer appears %d times, want exactly 1", correct)
	}
}

func TestGenerateOptions_ExcludesDuplicateBackTexts(t *testing.T) {
	now := qNow
	current := card.New("der Hund", "the dog", "de", now)
	pool := []card.Card{
		current,
		card.New("Hündin", "the dog", "de", now), // same back as current
		card.New("Katze", "the cat", "de", now),
		card.New("Haus", "the house", "de", now),
		card.New("Baum", "the tree", "de", now),
	}

	options := GenerateOptions(current, pool, testRand())
	if options == nil {
		t.Fatal("expected options: three distinct wrong candidates exist")
	}
	dupes := 0
	for _, opt := range options {
		if opt == "the dog" {
			dupes++
		}
	}
	if dupes != 1 {
		t.Errorf("back text equal to the answer appears %d times, want 1", dupes)
	}
}

func TestGenerateOptions_TooFewCandidates(t *testing.T) {
	now := qNow
	current := card.New("Hund", "dog", "de", now)
	pool := []card.Card{
		current,
		card.New("Katze", "cat", "de", now),
		card.New("Haus", "house", "de", now),
	}

	if options := GenerateOptions(current, pool, testRand()); options != nil {
		t.Errorf("expected nil options with two candidates, got %v", options)
	}
}

func TestGenerateOptions_CollapsesIdenticalWrongBacks(t *testing.T) {
	now := qNow
	current := card.New("Hund", "dog", "de", now)
	pool := []card.Card{
		current,
		card.New("Katze", "cat", "de", now),
		card.New("Kätzchen", "cat", "de", now), // duplicate wrong back
		card.New("Haus", "house", "de", now),
	}

	// Only two distinct wrong backs → no option list.
	if options := GenerateOptions(current, pool, testRand()); options != nil {
		t.Errorf("expected nil options, got %v", options)
	}
}
