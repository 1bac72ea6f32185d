package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int

	// Suffix is rendered after the bar, e.g. the remaining time.
	Suffix string

	// Fill colors the filled part; nil means the secondary color.
	Fill color.Color
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffixWidth := 0
	if p.Suffix != "" {
		suffixWidth = lipgloss.Width(p.Suffix) + 2
	}

	barWidth := max(p.Width-lipgloss.Width(result)-suffixWidth, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	if p.Suffix != "" {
		result += "  " + p.Suffix
	}
	return result
}

// Countdown renders the remaining time of a game as a shrinking bar that
// turns red in the last ten seconds.
func Countdown(remaining, limit, width int) string {
	pct := 0.0
	if limit > 0 {
		pct = float64(remaining) / float64(limit)
	}

	fg := theme.Secondary
	if remaining <= 10 {
		fg = theme.Error
	}

	return ProgressBar{
		Label:   "⏱",
		Percent: pct,
		Width:   width,
		Suffix:  lipgloss.NewStyle().Foreground(fg).Bold(true).Render(fmt.Sprintf("%d:%02d", remaining/60, remaining%60)),
		Fill:    fg,
	}.View()
}
