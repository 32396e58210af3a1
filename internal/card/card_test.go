package card

import (
	"reflect"
	"testing"
	"time"

	"github.com/mlutz/kartei/internal/exercise"
)

func TestNew_SeedsCoreScores(t *testing.T) {
	c := New("der Hund", "the dog", "de", testNow)

	if c.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if len(c.Scores) != len(exercise.Core) {
		t.Fatalf("Scores has %d entries, want %d", len(c.Scores), len(exercise.Core))
	}
	for _, typ := range exercise.Core {
		s, ok := c.Scores[typ]
		if !ok {
			t.Errorf("missing score for core type %s", typ)
			continue
		}
		if s.TotalAttempts() != 0 {
			t.Errorf("%s: expected zero score", typ)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Tiere ", "tiere", "HAUS  halt", "", "  "})
	want := []string{"haus halt", "tiere"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags = %v, want %v", got, want)
	}
}

func TestWithExerciseResult_NewTypeLazilyCreated(t *testing.T) {
	c := New("schnell", "fast", "de", testNow)

	got := c.WithExerciseResult(exercise.ConjugationPractice, true, testNow)

	s, ok := got.Scores[exercise.ConjugationPractice]
	if !ok {
		t.Fatal("score for first-attempted type not created")
	}
	if s.CorrectCount != 1 || s.CurrentChain != 1 {
		t.Errorf("score = %+v, want one correct, chain 1", s)
	}

	// Legacy aggregates track alongside.
	if got.ReviewCount != 1 || got.CorrectCount != 1 {
		t.Errorf("legacy counters = %d/%d, want 1/1", got.ReviewCount, got.CorrectCount)
	}
	if got.LastReviewed == nil || !got.LastReviewed.Equal(testNow) {
		t.Errorf("LastReviewed = %v, want %v", got.LastReviewed, testNow)
	}

	// Original untouched.
	if _, ok := c.Scores[exercise.ConjugationPractice]; ok {
		t.Error("WithExerciseResult mutated the receiver's score map")
	}
}

func TestWithExerciseResult_ScenarioD(t *testing.T) {
	// Score {5 correct, 2 incorrect, chain 0}, confirm one correct answer.
	c := New("laufen", "to run", "de", testNow)
	c.Scores[exercise.ReverseTranslation] = ExerciseScore{
		CorrectCount:   5,
		IncorrectCount: 2,
		CurrentChain:   0,
		BestChain:      3,
	}

	got := c.WithExerciseResult(exercise.ReverseTranslation, true, testNow)
	s := got.Scores[exercise.ReverseTranslation]

	if s.CorrectCount != 6 || s.IncorrectCount != 2 || s.CurrentChain != 1 {
		t.Errorf("score = %+v, want correct 6, incorrect 2, chain 1", s)
	}
	if s.Mastery() != MasteryLearning {
		t.Errorf("Mastery = %q, want %q", s.Mastery(), MasteryLearning)
	}
}

func TestDueExerciseTypes(t *testing.T) {
	c := New("Haus", "house", "de", testNow)
	future := testNow.Add(48 * time.Hour)
	past := testNow.Add(-48 * time.Hour)
	c.Scores[exercise.ReadingRecognition] = ExerciseScore{CorrectCount: 1, NextReview: &future}
	c.Scores[exercise.Listening] = ExerciseScore{CorrectCount: 1, NextReview: &past}
	// ReverseTranslation stays zero: nil NextReview means due.

	due := c.DueExerciseTypes(testNow)

	want := map[exercise.Type]bool{exercise.Listening: true, exercise.ReverseTranslation: true}
	if len(due) != len(want) {
		t.Fatalf("due = %v, want %v", due, want)
	}
	for _, typ := range due {
		if !want[typ] {
			t.Errorf("unexpected due type %s", typ)
		}
	}
}

func TestHasArticle(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"prefix der", Card{Front: "der Hund"}, true},
		{"prefix Die uppercase", Card{Front: "Die Katze"}, true},
		{"prefix das", Card{Front: "das Haus"}, true},
		{"no article", Card{Front: "laufen"}, false},
		{"derivative word, no space", Card{Front: "derselbe"}, false},
		{"explicit gender", Card{Front: "Hund", Grammar: NounGrammar{Gender: "der"}}, true},
		{"noun without gender", Card{Front: "Hund", Grammar: NounGrammar{}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.HasArticle(); got != tt.want {
				t.Errorf("HasArticle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArticle(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want string
	}{
		{"explicit gender wins", Card{Front: "der Hund", Grammar: NounGrammar{Gender: "die"}}, "die"},
		{"prefix fallback", Card{Front: "das Haus"}, "das"},
		{"uppercase prefix", Card{Front: "Der Hund"}, "der"},
		{"no article", Card{Front: "laufen"}, ""},
		{"derivative word, no space", Card{Front: "derselbe"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Article(); got != tt.want {
				t.Errorf("Article = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeadword(t *testing.T) {
	tests := []struct {
		front string
		want  string
	}{
		{"das Haus", "Haus"},
		{"Der Hund", "Hund"},
		{"laufen", "laufen"},
		{"derselbe", "derselbe"},
		{"  die Katze ", "Katze"},
	}
	for _, tt := range tests {
		c := Card{Front: tt.front}
		if got := c.Headword(); got != tt.want {
			t.Errorf("Headword(%q) = %q, want %q", tt.front, got, tt.want)
		}
	}
}

func TestOverallMastery(t *testing.T) {
	t.Run("untouched card is new", func(t *testing.T) {
		c := New("Haus", "house", "de", testNow)
		if got := c.OverallMastery(); got != MasteryNew {
			t.Errorf("OverallMastery = %q, want %q", got, MasteryNew)
		}
	})

	t.Run("averages chains across practiced types", func(t *testing.T) {
		c := New("Haus", "house", "de", testNow)
		c.Scores[exercise.ReadingRecognition] = ExerciseScore{CorrectCount: 5, CurrentChain: 5}
		c.Scores[exercise.Listening] = ExerciseScore{CorrectCount: 5, CurrentChain: 5}
		// Unpracticed core type must not drag the average down.
		if got := c.OverallMastery(); got != MasteryMastered {
			t.Errorf("OverallMastery = %q, want %q", got, MasteryMastered)
		}
	})

	t.Run("struggling card is difficult", func(t *testing.T) {
		c := New("Haus", "house", "de", testNow)
		c.Scores[exercise.ReadingRecognition] = ExerciseScore{IncorrectCount: 4, CurrentChain: 0}
		if got := c.OverallMastery(); got != MasteryDifficult {
			t.Errorf("OverallMastery = %q, want %q", got, MasteryDifficult)
		}
	})
}

func TestGrammarConjugationData(t *testing.T) {
	tests := []struct {
		name    string
		grammar Grammar
		want    bool
	}{
		{"verb with past simple", VerbGrammar{PastSimple: "lief"}, true},
		{"verb empty", VerbGrammar{}, false},
		{"noun with gender", NounGrammar{Gender: "die"}, true},
		{"noun plural only", NounGrammar{Plural: "Hunde"}, false},
		{"adjective comparative", AdjectiveGrammar{Comparative: "schneller"}, true},
		{"adjective empty", AdjectiveGrammar{}, false},
		{"adverb", AdverbGrammar{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grammar.HasConjugationData(); got != tt.want {
				t.Errorf("HasConjugationData = %v, want %v", got, tt.want)
			}
		})
	}
}
