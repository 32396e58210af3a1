package enrich

import (
	"fmt"
	"strings"

	"github.com/mlutz/kartei/internal/card"
)

const systemPrompt = `You are a lexicographer writing concise dictionary entries for language learners.

Rules:
- Produce one entry for the given word in the given language.
- The translation must be the most common English meaning. For nouns include the English article ("the house").
- Fill only the grammar fields that apply to the word type; leave the others as empty strings.
- For nouns in languages with grammatical gender, "gender" is the definite article (for German: der, die, or das).
- Example sentences are in the target language, short, and at beginner level. Do not translate them.
- Tags are lowercase single words describing the topic (e.g. "food", "family", "travel").
- The usage note mentions one pitfall or nuance if there is a notable one, otherwise it stays empty.
- Never invent forms you are unsure about; prefer an empty field over a wrong one.`

// buildUserMessage constructs the per-card prompt.
func buildUserMessage(c card.Card, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", c.Front)
	fmt.Fprintf(&b, "Language: %s\n", languageName(c.Language))
	fmt.Fprintf(&b, "Example sentences wanted: %d\n", cfg.MaxExamples)

	if c.Back != "" {
		fmt.Fprintf(&b, "Known translation (keep consistent with it): %s\n", c.Back)
	}
	if len(c.Tags) > 0 {
		fmt.Fprintf(&b, "Existing tags: %s\n", strings.Join(c.Tags, ", "))
	}

	return b.String()
}

// languageName expands common ISO codes for the prompt; unknown codes
// pass through.
func languageName(code string) string {
	names := map[string]string{
		"de": "German",
		"fr": "French",
		"es": "Spanish",
		"it": "Italian",
		"nl": "Dutch",
		"pt": "Portuguese",
	}
	if n, ok := names[code]; ok {
		return n
	}
	return code
}
