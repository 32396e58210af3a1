package practice

import (
	"testing"

	"github.com/mlutz/kartei/internal/card"
)

func TestConjugationTarget(t *testing.T) {
	tests := []struct {
		name         string
		grammar      card.Grammar
		wantLabel    string
		wantExpected string
	}{
		{"verb present third", card.VerbGrammar{PresentThird: "läuft", PastSimple: "lief"}, "er/sie/es ...", "läuft"},
		{"verb past simple only", card.VerbGrammar{PastSimple: "lief"}, "simple past...", "lief"},
		{"verb past participle only", card.VerbGrammar{PastParticiple: "gelaufen"}, "past participle...", "gelaufen"},
		{"verb present second fallback", card.VerbGrammar{PresentSecond: "läufst"}, "du ...", "läufst"},
		{"noun with plural", card.NounGrammar{Gender: "das", Plural: "Häuser"}, "plural form...", "Häuser"},
		{"noun gender only", card.NounGrammar{Gender: "die"}, "der, die or das?", "die"},
		{"adjective comparative", card.AdjectiveGrammar{Comparative: "schneller", Superlative: "am schnellsten"}, "comparative...", "schneller"},
		{"adjective superlative only", card.AdjectiveGrammar{Superlative: "am schnellsten"}, "superlative...", "am schnellsten"},
		{"no grammar", nil, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, expected := conjugationTarget(card.Card{Grammar: tt.grammar})
			if label != tt.wantLabel || expected != tt.wantExpected {
				t.Errorf("conjugationTarget = (%q, %q), want (%q, %q)",
					label, expected, tt.wantLabel, tt.wantExpected)
			}
		})
	}
}

// Every grammar shape that passes the conjugation eligibility check must
// yield a gradeable target, otherwise the item can never be answered.
func TestConjugationTarget_EligibleGrammarAlwaysGradeable(t *testing.T) {
	grammars := []card.Grammar{
		card.VerbGrammar{PresentSecond: "läufst"},
		card.NounGrammar{Gender: "die"},
		card.AdjectiveGrammar{Superlative: "am schnellsten"},
	}
	for _, g := range grammars {
		if !g.HasConjugationData() {
			t.Fatalf("%T: fixture must be eligible", g)
		}
		_, expected := conjugationTarget(card.Card{Grammar: g})
		if expected == "" {
			t.Errorf("%T: eligible grammar produced an empty answer", g)
		}
	}
}

func TestSentenceCloze(t *testing.T) {
	tests := []struct {
		name         string
		card         card.Card
		wantSentence string
		wantExpected string
	}{
		{
			"umlaut headword blanked",
			card.Card{Front: "das Mädchen", Examples: []string{"Das Mädchen lacht laut."}},
			"Das _______ lacht laut.",
			"Mädchen",
		},
		{
			"case-insensitive match at sentence start",
			card.Card{Front: "schnell", Examples: []string{"Schnell rennt der Hund."}},
			"_______ rennt der Hund.",
			"Schnell",
		},
		{
			"inflected sentence falls back to plain prompt",
			card.Card{Front: "laufen", Examples: []string{"Er lief gestern weit."}},
			"Er lief gestern weit.",
			"laufen",
		},
		{
			"no examples",
			card.Card{Front: "das Haus"},
			"",
			"Haus",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentence, expected := sentenceCloze(tt.card)
			if sentence != tt.wantSentence || expected != tt.wantExpected {
				t.Errorf("sentenceCloze = (%q, %q), want (%q, %q)",
					sentence, expected, tt.wantSentence, tt.wantExpected)
			}
		})
	}
}

func TestEqualAnswer(t *testing.T) {
	tests := []struct {
		answer   string
		expected string
		want     bool
	}{
		{"das Haus", "das Haus", true},
		{"DAS HAUS", "das Haus", true},
		{"Haus", "das Haus", true},
		{"Hund", "das Haus", false},
		{"", "das Haus", false},
	}
	for _, tt := range tests {
		if got := equalAnswer(tt.answer, tt.expected); got != tt.want {
			t.Errorf("equalAnswer(%q, %q) = %v, want %v", tt.answer, tt.expected, got, tt.want)
		}
	}
}
