package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels used when appending LLM request events.
const (
	PurposeEnrichment = "card-enrichment"
	PurposeSentences  = "sentence-examples"
)

// WithPurpose attaches a purpose label to the context so the logging
// middleware can record what the request was for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, "unknown" when absent.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
