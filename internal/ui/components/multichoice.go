package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mlutz/kartei/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. The correct answer is
// identified by value so options can be shuffled freely.
type MultiChoice struct {
	Prompt        string
	Options       []string
	CorrectAnswer string
	Selected      int
	Submitted     bool
	ChosenIndex   int
}

// NewMultiChoice creates a multiple-choice component.
func NewMultiChoice(prompt string, options []string, correctAnswer string) MultiChoice {
	return MultiChoice{
		Prompt:        prompt,
		Options:       options,
		CorrectAnswer: correctAnswer,
		ChosenIndex:   -1,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range m.Options {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Submitted && opt == m.CorrectAnswer:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Chosen returns the selected option text, empty before submission.
func (m MultiChoice) Chosen() string {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// IsCorrect reports whether the chosen option matches the answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Chosen() == m.CorrectAnswer
}
