package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/ui/components"
	"github.com/abhisek/eduquest/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = `███████╗██████╗ ██╗   ██╗ ██████╗ ██╗   ██╗███████╗███████╗████████╗
██╔════╝██╔══██╗██║   ██║██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
█████╗  ██║  ██║██║   ██║██║   ██║██║   ██║█████╗  ███████╗   ██║
██╔══╝  ██║  ██║██║   ██║██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
███████╗██████╔╝╚██████╔╝╚██████╔╝╚██████╔╝███████╗███████║   ██║
╚══════╝╚═════╝  ╚═════╝  ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

const arcadeTitleCompact = "E · D · U · Q · U · E · S · T"

// fullTitleWidth is the narrowest width that fits the block title.
const fullTitleWidth = 68

// renderTitle returns the styled title block, or the compact fallback when
// compact is set or the art does not fit in width.
func renderTitle(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact || width < fullTitleWidth {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	xpStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	clearedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	playedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var text string
	if compact {
		text = fmt.Sprintf("%s %s %s",
			xpStyle.Render(fmt.Sprintf("★%d", st.xp)),
			clearedStyle.Render(fmt.Sprintf("✔%d", st.cleared)),
			playedStyle.Render(fmt.Sprintf("▶%d", st.played)),
		)
	} else {
		text = fmt.Sprintf("%s  %s  %s",
			xpStyle.Render(fmt.Sprintf("★ %d XP", st.xp)),
			clearedStyle.Render(fmt.Sprintf("✔ %d MENANG", st.cleared)),
			playedStyle.Render(fmt.Sprintf("▶ %d DIMAINKAN", st.played)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, disabled[i], buttonWidth)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderLLMBanner renders a warning banner when no LLM provider is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Atur API key LLM dulu supaya bisa main (lihat eduquest --help)")
}

// renderMascotBox renders the mascot with its speech line, centered.
func renderMascotBox(variant MascotVariant, cw int) string {
	speech := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(MascotLine(variant))
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant) + "\n" + speech)
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("Versi baru %s tersedia", latestVersion))
}
