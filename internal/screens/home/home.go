// Package home is the landing screen: collection stats and the main menu.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/mlutz/kartei/internal/router"
	"github.com/mlutz/kartei/internal/screen"
	practicescreen "github.com/mlutz/kartei/internal/screens/practice"
	"github.com/mlutz/kartei/internal/screens/stats"
	"github.com/mlutz/kartei/internal/store"
	"github.com/mlutz/kartei/internal/ui/components"
	"github.com/mlutz/kartei/internal/ui/theme"
)

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	menu components.Menu

	language   string
	totalCards int
	due        int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Counts are loaded synchronously; the
// queries are tiny and run against a local file.
func New(st *store.Store, log logrus.FieldLogger) *HomeScreen {
	ctx := context.Background()

	language := store.DefaultSettings().ActiveLanguage
	if settings, err := st.Settings().Load(ctx); err == nil {
		language = settings.ActiveLanguage
	} else {
		log.WithError(err).Warn("failed to load settings")
	}

	var totalCards, due int
	if cards, err := st.Cards().List(ctx, store.CardFilter{Language: language}); err == nil {
		totalCards = len(cards)
		now := time.Now()
		for _, c := range cards {
			if len(c.DueExerciseTypes(now)) > 0 {
				due++
			}
		}
	} else {
		log.WithError(err).Warn("failed to load cards")
	}

	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practicescreen.New(st, log)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		language:   language,
		totalCards: totalCards,
		due:        due,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Language returns the active study language for the header.
func (h *HomeScreen) Language() string {
	return h.language
}

// Due returns the number of cards with at least one due exercise.
func (h *HomeScreen) Due() int {
	return h.due
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("K A R T E I")
	subtitle := theme.Subtitle.Width(width).Render("terminal flashcards")
	sections = append(sections, title+"\n"+subtitle)

	statsLine := fmt.Sprintf("%d cards   ·   %d due   ·   %s",
		h.totalCards, h.due, strings.ToUpper(h.language))
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().PaddingTop(heightPad(height)).Render(content)
}

// heightPad vertically centers the short home content.
func heightPad(height int) int {
	pad := (height - 12) / 2
	if pad < 0 {
		return 0
	}
	return pad
}
