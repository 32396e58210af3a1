// Package app wires the screens, router, and frame into the root
// Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/mlutz/kartei/internal/router"
	"github.com/mlutz/kartei/internal/screen"
	"github.com/mlutz/kartei/internal/screens/home"
	practicescreen "github.com/mlutz/kartei/internal/screens/practice"
	"github.com/mlutz/kartei/internal/store"
	"github.com/mlutz/kartei/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Store *store.Store
	Log   logrus.FieldLogger

	// StartPractice opens the practice screen immediately instead of
	// landing on the home menu.
	StartPractice bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	home    *home.HomeScreen
	initCmd tea.Cmd
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	homeScreen := home.New(opts.Store, opts.Log)
	r := router.New(homeScreen)

	var initCmd tea.Cmd
	if opts.StartPractice {
		initCmd = r.Push(practicescreen.New(opts.Store, opts.Log))
	}

	return AppModel{
		router:  r,
		home:    homeScreen,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() <= 1 {
				return m, nil
			}
			// Screens with teardown (the practice run) intercept Esc.
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				return m, h.HandleEsc()
			}
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.home.Language(), m.home.Due(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
