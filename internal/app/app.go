package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/game"
	"github.com/abhisek/eduquest/internal/router"
	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/screens/home"
	"github.com/abhisek/eduquest/internal/screens/play"
	"github.com/abhisek/eduquest/internal/screens/welcome"
	"github.com/abhisek/eduquest/internal/selfupdate"
	"github.com/abhisek/eduquest/internal/store"
	"github.com/abhisek/eduquest/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	// Content is nil when no LLM provider is configured; games and the
	// tutor are then unavailable.
	Content content.Provider
	Events  store.EventRepo

	// Limits overrides game.DefaultLimits when non-zero.
	Limits game.Limits

	// Status is shown on the right of the header, e.g. the active model.
	Status string

	Version string
	Checker *selfupdate.Checker
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	limits := opts.Limits
	if limits == (game.Limits{}) {
		limits = game.DefaultLimits()
	}
	homeOpts := home.Options{
		Play: play.Deps{
			Content: opts.Content,
			Events:  opts.Events,
			Limits:  limits,
		},
		Version: opts.Version,
		Checker: opts.Checker,
	}

	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(homeOpts)
	})
	return AppModel{
		router: router.New(welcomeScreen),
		status: opts.Status,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
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
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Keluar"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Kembali"},
			{Key: "Ctrl+C", Description: "Keluar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigasi"},
		{Key: "Enter", Description: "Pilih"},
		{Key: "Ctrl+C", Description: "Keluar"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
