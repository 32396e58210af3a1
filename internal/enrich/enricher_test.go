package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/llm"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func nounResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"translation": "the house",
		"word_type": "noun",
		"grammar": {"gender": "das", "plural": "Häuser"},
		"examples": ["Das Haus ist alt.", "Wir kaufen ein Haus."],
		"tags": ["Home", "a1"],
		"notes": "",
		"icon": "🏠"
	}`)}
}

func TestEnrichFillsEmptyFields(t *testing.T) {
	mock := llm.NewMockProvider(nounResponse())
	e := New(mock, DefaultConfig())

	c := card.New("das Haus", "", "de", testNow)
	got, err := e.Enrich(context.Background(), c, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Back != "the house" {
		t.Errorf("back = %q, want %q", got.Back, "the house")
	}
	if got.IconRef != "🏠" {
		t.Errorf("icon = %q, want 🏠", got.IconRef)
	}
	ng, ok := got.Grammar.(card.NounGrammar)
	if !ok {
		t.Fatalf("grammar = %T, want NounGrammar", got.Grammar)
	}
	if ng.Gender != "das" || ng.Plural != "Häuser" {
		t.Errorf("unexpected grammar: %+v", ng)
	}
	if len(got.Examples) != 2 {
		t.Errorf("examples = %d, want 2", len(got.Examples))
	}
	// Tags come back normalized.
	if len(got.Tags) != 2 || got.Tags[0] != "a1" || got.Tags[1] != "home" {
		t.Errorf("tags = %v, want [a1 home]", got.Tags)
	}
}

func TestEnrichPreservesUserContent(t *testing.T) {
	mock := llm.NewMockProvider(nounResponse())
	e := New(mock, DefaultConfig())

	c := card.New("das Haus", "the home", "de", testNow)
	c.Tags = []string{"building"}
	c.Examples = []string{"Mein Haus."}

	got, err := e.Enrich(context.Background(), c, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Back != "the home" {
		t.Errorf("user translation overwritten: %q", got.Back)
	}
	if len(got.Examples) != 1 || got.Examples[0] != "Mein Haus." {
		t.Errorf("user examples overwritten: %v", got.Examples)
	}
	// New tags merge with existing ones.
	for _, want := range []string{"building", "home", "a1"} {
		found := false
		for _, tag := range got.Tags {
			if tag == want {
				found = true
			}
		}
		if !found {
			t.Errorf("tag %q missing from %v", want, got.Tags)
		}
	}
}

func TestEnrichVerbGrammar(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"translation": "to run",
		"word_type": "verb",
		"grammar": {"present_second": "läufst", "present_third": "läuft", "past_simple": "lief", "past_participle": "gelaufen"},
		"examples": [],
		"tags": [],
		"notes": "Irregular verb.",
		"icon": ""
	}`)})
	e := New(mock, DefaultConfig())

	got, err := e.Enrich(context.Background(), card.New("laufen", "", "de", testNow), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vg, ok := got.Grammar.(card.VerbGrammar)
	if !ok {
		t.Fatalf("grammar = %T, want VerbGrammar", got.Grammar)
	}
	if !vg.HasConjugationData() {
		t.Error("expected conjugation data")
	}
	if vg.PastParticiple != "gelaufen" {
		t.Errorf("past participle = %q", vg.PastParticiple)
	}
	if got.Notes != "Irregular verb." {
		t.Errorf("notes = %q", got.Notes)
	}
}

func TestEnrichCapsExamples(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"translation": "the water",
		"word_type": "noun",
		"grammar": {"gender": "das"},
		"examples": ["eins", "zwei", "drei", "vier", "fünf"],
		"tags": [],
		"notes": "",
		"icon": ""
	}`)})
	cfg := DefaultConfig()
	cfg.MaxExamples = 3
	e := New(mock, cfg)

	got, err := e.Enrich(context.Background(), card.New("das Wasser", "", "de", testNow), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Examples) != 3 {
		t.Errorf("examples = %d, want 3", len(got.Examples))
	}
}

func TestEnrichProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	e := New(mock, DefaultConfig())

	_, err := e.Enrich(context.Background(), card.New("laufen", "", "de", testNow), testNow)
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestBuildUserMessage(t *testing.T) {
	c := card.New("das Haus", "the house", "de", testNow)
	c.Tags = []string{"home"}

	msg := buildUserMessage(c, DefaultConfig())
	for _, want := range []string{"das Haus", "German", "the house", "home"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}
