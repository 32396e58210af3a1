// Package stats renders collection-wide learning statistics from the
// card table and the review event log.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/screen"
	"github.com/mlutz/kartei/internal/store"
	"github.com/mlutz/kartei/internal/ui/components"
	"github.com/mlutz/kartei/internal/ui/theme"
)

// StatsScreen shows mastery distribution and review totals.
type StatsScreen struct {
	st      *store.Store
	loaded  bool
	loadErr error

	totalCards int
	due        int
	byMastery  map[card.MasteryLevel]int
	totals     store.ReviewTotals
}

var _ screen.Screen = (*StatsScreen)(nil)

type statsLoadedMsg struct {
	totalCards int
	due        int
	byMastery  map[card.MasteryLevel]int
	totals     store.ReviewTotals
	err        error
}

// masteryOrder fixes the display order of the distribution rows.
var masteryOrder = []card.MasteryLevel{
	card.MasteryNew,
	card.MasteryDifficult,
	card.MasteryLearning,
	card.MasteryGood,
	card.MasteryMastered,
}

// New creates a StatsScreen.
func New(st *store.Store) *StatsScreen {
	return &StatsScreen{st: st}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load
}

func (s *StatsScreen) load() tea.Msg {
	ctx := context.Background()

	settings, err := s.st.Settings().Load(ctx)
	if err != nil {
		return statsLoadedMsg{err: err}
	}
	cards, err := s.st.Cards().List(ctx, store.CardFilter{Language: settings.ActiveLanguage})
	if err != nil {
		return statsLoadedMsg{err: err}
	}
	totals, err := s.st.Events().Totals(ctx)
	if err != nil {
		return statsLoadedMsg{err: err}
	}

	msg := statsLoadedMsg{
		totalCards: len(cards),
		byMastery:  make(map[card.MasteryLevel]int),
		totals:     totals,
	}
	now := time.Now()
	for _, c := range cards {
		msg.byMastery[c.OverallMastery()]++
		if len(c.DueExerciseTypes(now)) > 0 {
			msg.due++
		}
	}
	return msg
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		s.loaded = true
		s.loadErr = m.err
		s.totalCards = m.totalCards
		s.due = m.due
		s.byMastery = m.byMastery
		s.totals = m.totals
	}
	return s, nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("  Loading...")
	}
	if s.loadErr != nil {
		return theme.Incorrect.Render("  Could not load statistics: " + s.loadErr.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %d\n", theme.Body.Render("Cards:"), s.totalCards))
	b.WriteString(fmt.Sprintf("  %s %d\n", theme.Body.Render("Due now:"), s.due))
	b.WriteString(fmt.Sprintf("  %s %d (%d correct)\n\n",
		theme.Body.Render("Reviews logged:"), s.totals.Total, s.totals.Correct))

	if s.totalCards > 0 {
		b.WriteString("  " + theme.Subtitle.Render("Mastery") + "\n\n")

		for _, lvl := range masteryOrder {
			n := s.byMastery[lvl]
			if n == 0 {
				continue
			}
			bar := components.NewProgressBar(
				fmt.Sprintf("%-10s %3d", lvl, n),
				float64(n)/float64(s.totalCards),
				true,
				min(width-8, 56),
			)
			b.WriteString("  " + bar.View() + "\n")
		}
	}

	return lipgloss.NewStyle().Render(b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
