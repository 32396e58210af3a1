package enrich

import "github.com/mlutz/kartei/internal/llm"

// EntrySchema defines the JSON schema for enrichment responses.
var EntrySchema = &llm.Schema{
	Name:        "card-enrichment",
	Description: "A dictionary entry for a single vocabulary word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"description": "The English translation of the word, including the article for nouns (e.g. 'the house')",
			},
			"word_type": map[string]any{
				"type":        "string",
				"enum":        []any{"noun", "verb", "adjective", "adverb", "phrase"},
				"description": "The part of speech of the word",
			},
			"grammar": map[string]any{
				"type":        "object",
				"description": "Grammar forms. Fill only the fields that apply to the word type, leave the rest empty.",
				"properties": map[string]any{
					"gender": map[string]any{
						"type":        "string",
						"description": "Definite article for nouns: der, die, or das. Empty for other word types.",
					},
					"plural": map[string]any{
						"type":        "string",
						"description": "Plural form for nouns",
					},
					"present_second": map[string]any{
						"type":        "string",
						"description": "Second person singular present for verbs (du ...)",
					},
					"present_third": map[string]any{
						"type":        "string",
						"description": "Third person singular present for verbs (er/sie/es ...)",
					},
					"past_simple": map[string]any{
						"type":        "string",
						"description": "Simple past (Präteritum) for verbs",
					},
					"past_participle": map[string]any{
						"type":        "string",
						"description": "Past participle (Partizip II) for verbs",
					},
					"comparative": map[string]any{
						"type":        "string",
						"description": "Comparative form for adjectives",
					},
					"superlative": map[string]any{
						"type":        "string",
						"description": "Superlative form for adjectives",
					},
				},
			},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Short example sentences in the target language using the word",
			},
			"tags": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Topic tags, lowercase, e.g. 'food', 'travel', 'a1'",
			},
			"notes": map[string]any{
				"type":        "string",
				"description": "A short usage note or common pitfall, empty if none",
			},
			"icon": map[string]any{
				"type":        "string",
				"description": "A single emoji representing the word, empty if none fits",
			},
		},
		"required":             []any{"translation", "word_type", "grammar", "examples", "tags", "notes", "icon"},
		"additionalProperties": false,
	},
}
