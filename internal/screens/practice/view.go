package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mlutz/kartei/internal/exercise"
	engine "github.com/mlutz/kartei/internal/practice"
	"github.com/mlutz/kartei/internal/ui/components"
	"github.com/mlutz/kartei/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	if p.loading {
		return center(width, theme.Hint.Render("Building your practice queue..."))
	}
	if p.loadErr != nil {
		return center(width, theme.Incorrect.Render("Could not start practice: "+p.loadErr.Error()))
	}
	if p.session == nil || p.session.Status() == engine.StatusEmpty {
		return center(width,
			theme.Body.Render("No cards to practice.")+"\n\n"+
				theme.Hint.Render("Add cards with `kartei cards add`, then come back."))
	}

	item, ok := p.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Progress line.
	pos, total := p.session.Progress()
	bar := components.NewProgressBar(
		fmt.Sprintf("%d/%d", pos, total),
		float64(pos-1)/float64(total),
		false,
		min(width-8, 48),
	)
	b.WriteString("  " + bar.View() + "\n\n")

	// Exercise type tag.
	b.WriteString("  " + theme.Subtitle.Render(item.Type.DisplayName()) + "\n\n")

	// The exercise itself.
	switch answerMode(item.Type) {
	case modeChoice:
		b.WriteString(indent(p.choice.View(), 2))

	case modeTyped:
		b.WriteString(indent(p.typedView(item), 2))

	case modeReveal:
		b.WriteString(indent(p.revealView(item), 2))
	}

	// Feedback row.
	if checkedOK, checked := p.session.Checked(); checked {
		b.WriteString("\n")
		if checkedOK {
			b.WriteString("  " + theme.Correct.Render("Correct!") + "\n")
		} else {
			b.WriteString("  " + theme.Incorrect.Render("Not quite.") + "\n")
			if p.expected != "" && answerMode(item.Type) == modeTyped {
				b.WriteString("  " + theme.Body.Render("Answer: "+p.expected) + "\n")
			}
		}
	}

	if p.saveErr != nil {
		b.WriteString("\n  " + theme.Incorrect.Render("Save failed — press Enter to retry.") + "\n")
	}

	return b.String()
}

// typedView renders the prompt + input for the typing exercises.
func (p *PracticeScreen) typedView(item engine.Item) string {
	var prompt string
	switch item.Type {
	case exercise.ReverseTranslation:
		prompt = "Translate:  " + item.Card.Back
	case exercise.ConjugationPractice:
		label, _ := conjugationTarget(item.Card)
		prompt = fmt.Sprintf("Conjugate %q — %s", item.Card.Headword(), label)
	case exercise.SentenceBuilding:
		sentence, _ := sentenceCloze(item.Card)
		prompt = "Complete:  " + sentence
	}

	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt) +
		"\n\n" + p.input.View() + "\n"
}

// revealView renders the self-graded flashcard exercises.
func (p *PracticeScreen) revealView(item engine.Item) string {
	var b strings.Builder

	front := item.Card.Front
	if item.Card.IconRef != "" {
		front = item.Card.IconRef + "  " + front
	}

	instruction := "Recall the translation, then reveal."
	if item.Type == exercise.Listening {
		instruction = "Read the word aloud and recall its meaning, then reveal."
	}

	b.WriteString(theme.Card.Render(lipgloss.NewStyle().Bold(true).Render(front)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(instruction))
	b.WriteString("\n\n")

	if p.revealed {
		b.WriteString(theme.Body.Render(item.Card.Back) + "\n")
		if len(item.Card.Examples) > 0 {
			b.WriteString(theme.Hint.Render(item.Card.Examples[0]) + "\n")
		}
		if _, checked := p.session.Checked(); !checked {
			b.WriteString("\n" + theme.Subtitle.Render("Did you know it?  [y]es / [n]o") + "\n")
		}
	}

	return b.String()
}

func center(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(2).Render(s)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
