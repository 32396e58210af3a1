package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mlutz/kartei/internal/router"
	"github.com/mlutz/kartei/internal/screen"
	"github.com/mlutz/kartei/internal/ui/layout"
	"github.com/mlutz/kartei/internal/ui/theme"
)

// Results is what a finished practice run hands to the summary.
type Results struct {
	Correct   int
	Incorrect int
	Duration  time.Duration
	Language  string
}

// Total returns the number of reviews in the run.
func (r Results) Total() int {
	return r.Correct + r.Incorrect
}

// Accuracy returns the fraction of correct reviews, 0 for an empty run.
func (r Results) Accuracy() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total())
}

// SummaryScreen displays the session results.
type SummaryScreen struct {
	results Results
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen.
func New(results Results) *SummaryScreen {
	return &SummaryScreen{results: results}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.results

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Reviews: %d        Correct: %d        Accuracy: %.0f%%",
		r.Total(), r.Correct, r.Accuracy()*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	var verdict string
	switch {
	case r.Total() == 0:
		verdict = "Nothing reviewed this time."
	case r.Accuracy() >= 0.9:
		verdict = "Ausgezeichnet! Keep the streak going."
	case r.Accuracy() >= 0.6:
		verdict = "Solid work. The misses will come back around."
	default:
		verdict = "Tough round — those cards are now scheduled for tomorrow."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(verdict))
	b.WriteString("\n")

	return b.String()
}
