// Package enrich fills in the back side of a card from its front word
// using an LLM: translation, word type, grammar forms, example
// sentences, and suggested tags.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/llm"
)

// Enricher produces an enriched copy of a card.
type Enricher interface {
	// Enrich fills empty fields of the card from the LLM response.
	// Fields the user already filled in are never overwritten.
	Enrich(ctx context.Context, c card.Card, now time.Time) (card.Card, error)
}

// Config tunes the enrichment calls.
type Config struct {
	MaxTokens   int
	Temperature float64
	MaxExamples int
}

// DefaultConfig returns the enrichment defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
		MaxExamples: 3,
	}
}

// LLMEnricher implements Enricher on an llm.Provider.
type LLMEnricher struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMEnricher.
func New(provider llm.Provider, cfg Config) *LLMEnricher {
	return &LLMEnricher{provider: provider, config: cfg}
}

// entryOutput is the raw LLM response before merging.
type entryOutput struct {
	Translation string        `json:"translation"`
	WordType    string        `json:"word_type"`
	Grammar     grammarOutput `json:"grammar"`
	Examples    []string      `json:"examples"`
	Tags        []string      `json:"tags"`
	Notes       string        `json:"notes"`
	Icon        string        `json:"icon"`
}

type grammarOutput struct {
	Gender         string `json:"gender"`
	Plural         string `json:"plural"`
	PresentSecond  string `json:"present_second"`
	PresentThird   string `json:"present_third"`
	PastSimple     string `json:"past_simple"`
	PastParticiple string `json:"past_participle"`
	Comparative    string `json:"comparative"`
	Superlative    string `json:"superlative"`
}

func (e *LLMEnricher) Enrich(ctx context.Context, c card.Card, now time.Time) (card.Card, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeEnrichment)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(c, e.config)},
		},
		Schema:      EntrySchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return card.Card{}, fmt.Errorf("enrichment failed: %w", err)
	}

	var raw entryOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return card.Card{}, fmt.Errorf("parse enrichment response: %w", err)
	}

	return e.merge(c, raw, now), nil
}

// merge copies LLM output into the card, filling only what is empty.
func (e *LLMEnricher) merge(c card.Card, raw entryOutput, now time.Time) card.Card {
	if c.Back == "" && raw.Translation != "" {
		c.Back = strings.TrimSpace(raw.Translation)
	}
	if c.IconRef == "" && raw.Icon != "" {
		c.IconRef = raw.Icon
	}
	if c.Notes == "" && raw.Notes != "" {
		c.Notes = strings.TrimSpace(raw.Notes)
	}
	if c.Grammar == nil {
		c.Grammar = buildGrammar(raw)
	}
	if len(c.Examples) == 0 {
		examples := lo.Filter(raw.Examples, func(s string, _ int) bool {
			return strings.TrimSpace(s) != ""
		})
		if e.config.MaxExamples > 0 && len(examples) > e.config.MaxExamples {
			examples = examples[:e.config.MaxExamples]
		}
		c.Examples = examples
	}
	if len(raw.Tags) > 0 {
		c.Tags = card.NormalizeTags(append(c.Tags, raw.Tags...))
	}
	c.UpdatedAt = now
	return c
}

// buildGrammar converts the flat LLM grammar block into the typed form
// for the reported word type. Unknown word types yield no grammar.
func buildGrammar(raw entryOutput) card.Grammar {
	g := raw.Grammar
	switch raw.WordType {
	case "noun":
		if g.Gender == "" && g.Plural == "" {
			return nil
		}
		return card.NounGrammar{Gender: g.Gender, Plural: g.Plural}
	case "verb":
		if g.PresentThird == "" && g.PastSimple == "" {
			return nil
		}
		return card.VerbGrammar{
			PresentSecond:  g.PresentSecond,
			PresentThird:   g.PresentThird,
			PastSimple:     g.PastSimple,
			PastParticiple: g.PastParticiple,
		}
	case "adjective":
		return card.AdjectiveGrammar{
			Comparative: g.Comparative,
			Superlative: g.Superlative,
		}
	case "adverb":
		return card.AdverbGrammar{}
	default:
		return nil
	}
}
