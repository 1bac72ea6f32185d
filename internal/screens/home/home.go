package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/router"
	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/screens/chat"
	"github.com/abhisek/eduquest/internal/screens/history"
	"github.com/abhisek/eduquest/internal/screens/placeholder"
	"github.com/abhisek/eduquest/internal/screens/play"
	"github.com/abhisek/eduquest/internal/screens/subject"
	"github.com/abhisek/eduquest/internal/selfupdate"
	"github.com/abhisek/eduquest/internal/ui/components"
	"github.com/abhisek/eduquest/internal/ui/layout"
)

// Options configures the home screen.
type Options struct {
	Play play.Deps

	// Version and Checker drive the update note. A nil Checker skips it.
	Version string
	Checker *selfupdate.Checker
}

type stats struct {
	xp      int
	cleared int
	played  int
}

type statsLoadedMsg struct {
	stats stats
}

type updateCheckedMsg struct {
	latest string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts          Options
	menu          components.Menu
	menuLabels    []string
	disabled      map[int]bool
	stats         stats
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	deps := opts.Play
	noProvider := deps.Content == nil

	gameItem := func(name string, preselect content.Subject, build func(play.Deps, content.Subject) screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			picker := subject.New(name, preselect, func(s content.Subject) screen.Screen {
				return build(deps, s)
			})
			return push(picker)
		}
	}

	menuLabels := []string{"KUIS", "TEBAK KATA", "PUZZLE KONSEP", "TUTOR AI", "RIWAYAT", "KELUAR"}
	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: noProvider, Action: gameItem("Kuis", content.Math,
			func(d play.Deps, s content.Subject) screen.Screen { return play.NewQuiz(d, s) })},
		{Label: menuLabels[1], Disabled: noProvider, Action: gameItem("Tebak Kata", content.Science,
			func(d play.Deps, s content.Subject) screen.Screen { return play.NewWord(d, s) })},
		{Label: menuLabels[2], Disabled: noProvider, Action: gameItem("Puzzle Konsep", content.History,
			func(d play.Deps, s content.Subject) screen.Screen { return play.NewPuzzle(d, s) })},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			if noProvider {
				return push(placeholder.New("Tutor AI", "Tutor butuh penyedia AI. Atur API key lalu jalankan ulang."))
			}
			return push(chat.New(deps.Content))
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			if deps.Events == nil {
				return push(placeholder.New("Riwayat", "Riwayat belum tersedia tanpa database."))
			}
			return push(history.New(deps.Events))
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	disabled := make(map[int]bool)
	for i, item := range items {
		disabled[i] = item.Disabled
	}

	return &HomeScreen{
		opts:       opts,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.loadStats(), h.checkUpdate())
}

// Resume reloads the stats after a game screen is closed.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	events := h.opts.Play.Events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		totals, err := events.GameTotals(ctx)
		if err != nil {
			return nil
		}
		var st stats
		for _, t := range totals {
			st.xp += t.XP
			st.cleared += t.Cleared
			st.played += t.Played
		}
		return statsLoadedMsg{stats: st}
	}
}

func (h *HomeScreen) checkUpdate() tea.Cmd {
	checker := h.opts.Checker
	if checker == nil {
		return nil
	}
	version := h.opts.Version
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || !res.UpdateAvailable {
			return nil
		}
		return updateCheckedMsg{latest: res.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.stats = msg.stats
		return h, nil
	case updateCheckedMsg:
		h.latestVersion = msg.latest
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	compact := layout.IsCompact(width, height+8)
	noProvider := h.opts.Play.Content == nil

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(width-6, compact))

	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(!noProvider, h.stats), cw))
	}

	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	if noProvider {
		sections = append(sections, renderLLMBanner(cw))
	}

	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Beranda"
}
