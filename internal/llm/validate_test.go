package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "word-entry",
		Description: "A vocabulary entry",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"translation": map[string]any{"type": "string"},
				"word_type":   map[string]any{"type": "string", "enum": []any{"noun", "verb", "adjective", "adverb"}},
				"examples": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"translation", "word_type"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"translation":"the house","word_type":"noun","examples":["Das Haus ist alt."]}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"translation":"to run","word_type":"verb"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"translation":"fast"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"translation":42,"word_type":"noun"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"translation":"the house","word_type":"pronoun"}`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name:        "entry-with-grammar",
		Description: "Entry with nested grammar",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"grammar": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"gender": map[string]any{"type": "string"},
						"plural": map[string]any{"type": "string"},
					},
					"required": []any{"gender"},
				},
				"tags": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"grammar", "tags"},
		},
	}

	valid := json.RawMessage(`{"grammar":{"gender":"das","plural":"Häuser"},"tags":["home","a1"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"grammar":{"plural":"Häuser"},"tags":["home"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for missing nested required field")
	}
}
