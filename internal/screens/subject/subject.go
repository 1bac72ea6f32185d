// Package subject implements the subject picker shown before every game.
package subject

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/router"
	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/ui/components"
	"github.com/abhisek/eduquest/internal/ui/layout"
	"github.com/abhisek/eduquest/internal/ui/theme"
)

// Factory builds the game screen for the chosen subject.
type Factory func(content.Subject) screen.Screen

// PickerScreen lists the subjects and replaces itself with the game
// screen once one is chosen.
type PickerScreen struct {
	game     string
	subjects []content.Subject
	cursor   int
	start    Factory
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a picker for the named game with preselect highlighted.
func New(game string, preselect content.Subject, start Factory) *PickerScreen {
	p := &PickerScreen{
		game:     game,
		subjects: content.Subjects(),
		start:    start,
	}
	for i, s := range p.subjects {
		if s.Slug == preselect.Slug {
			p.cursor = i
		}
	}
	return p
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return p.game + " · Pilih Mapel"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓ / 1-4", Description: "Pilih"},
		{Key: "Enter", Description: "Mulai"},
		{Key: "Esc", Description: "Kembali"},
	}
}

// Selected returns the highlighted subject.
func (p *PickerScreen) Selected() content.Subject {
	return p.subjects[p.cursor]
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key := k.String(); key {
	case "up", "k":
		p.cursor = max(p.cursor-1, 0)
	case "down", "j":
		p.cursor = min(p.cursor+1, len(p.subjects)-1)
	case "enter":
		next := p.start(p.Selected())
		return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	default:
		if i, ok := components.OptionIndex(key); ok && i < len(p.subjects) {
			p.cursor = i
		}
	}
	return p, nil
}

func (p *PickerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompact(width, height+8)

	heading := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render("Mau belajar apa hari ini?")

	cards := make([]string, 0, len(p.subjects))
	for i, s := range p.subjects {
		cards = append(cards, renderCard(i, s, i == p.cursor, compact, cw))
	}

	body := heading + "\n\n" + strings.Join(cards, "\n")
	return components.CabinetFrame(body, width, height)
}

func renderCard(i int, s content.Subject, selected, compact bool, cw int) string {
	border := theme.Border
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		border = theme.ArcadeYellow
		labelStyle = labelStyle.Foreground(theme.ArcadeYellow)
	}

	line := fmt.Sprintf("%d. %s %s", i+1, s.Icon, labelStyle.Render(s.Label))
	line += "  " + lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(Stars(s.Difficulty))
	if s.Popular {
		line += "  " + lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeCyan).
			Bold(true).Render(" POPULER ")
	}

	lines := []string{line}
	if selected && !compact {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Description))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Stars renders a 1-3 difficulty rating.
func Stars(n int) string {
	n = min(max(n, 0), 3)
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}
