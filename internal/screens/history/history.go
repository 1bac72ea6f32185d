package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/game"
	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/store"
	"github.com/abhisek/eduquest/internal/ui/layout"
	"github.com/abhisek/eduquest/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []store.GameResultRecord
	Totals  []store.GameTotals
	Err     error
}

// HistoryScreen displays recently finished games.
type HistoryScreen struct {
	eventRepo store.EventRepo
	results   []store.GameResultRecord
	totals    []store.GameTotals
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		results, err := s.eventRepo.QueryGameResults(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Totals are decoration; a failure still shows the list.
		totals, _ := s.eventRepo.GameTotals(ctx)
		return historyLoadedMsg{Results: results, Totals: totals}
	}
}

func (s *HistoryScreen) Title() string {
	return "Riwayat"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detail"},
		{Key: "↑↓", Description: "Pilih"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.totals = msg.Totals
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nGagal memuat riwayat: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Memuat riwayat...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Belum ada permainan. Ayo mulai main!")
	}

	var b strings.Builder
	b.WriteString("\n")
	if len(s.totals) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTotals(s.totals)))
		b.WriteString("\n\n")
	}

	for i, r := range s.results {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		reason := game.ParseReason(r.Reason)
		line := fmt.Sprintf("%s%s  %-13s  %-14s  %s",
			prefix, r.Timestamp.Local().Format("02 Jan 15:04"),
			game.KindLabel(r.Game), subjectLabel(r.Subject), score(r))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)+"  "+lipgloss.NewStyle().Foreground(reasonColor(reason)).Render(reason.Label())))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    Waktu dipakai %s   XP +%d   Sesi %s",
				layout.FormatSeconds(r.SecondsUsed), r.XP, shortID(r.SessionID))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderTotals(totals []store.GameTotals) string {
	var xp int
	parts := make([]string, 0, len(totals))
	for _, t := range totals {
		xp += t.XP
		parts = append(parts, fmt.Sprintf("%s %d/%d", game.KindLabel(t.Game), t.Cleared, t.Played))
	}
	return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(fmt.Sprintf("★ %d XP", xp)) +
		"   " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(parts, "  ·  "))
}

func score(r store.GameResultRecord) string {
	switch r.Game {
	case game.KindQuiz:
		return fmt.Sprintf("%d/%d benar", r.Score, r.Total)
	case game.KindWord:
		return fmt.Sprintf("%d/%d huruf tepat", r.Score, r.Total)
	default:
		return fmt.Sprintf("%d/%d potongan", r.Score, r.Total)
	}
}

func subjectLabel(slug string) string {
	if s, err := content.SubjectBySlug(slug); err == nil {
		return s.Label
	}
	return slug
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func reasonColor(r game.Reason) color.Color {
	switch {
	case r.Cleared():
		return theme.Success
	case r == game.ReasonTimedOut:
		return theme.Accent
	default:
		return theme.Error
	}
}
