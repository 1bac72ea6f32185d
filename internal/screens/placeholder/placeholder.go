package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/ui/theme"
)

// PlaceholderScreen stands in for a feature that cannot run, such as the
// tutor without an LLM provider.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen. An empty message shows a generic notice.
func New(title, message string) *PlaceholderScreen {
	if message == "" {
		message = "Fitur ini belum bisa dipakai."
	}
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + p.title + " ╌╌\n\n" + p.message + "\n\n" +
			theme.Hint.Render("Tekan Esc untuk kembali."))
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
