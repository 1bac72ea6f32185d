package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/ui/theme"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// KeyState is how one letter key is drawn.
type KeyState int

const (
	KeyOpen KeyState = iota
	KeyHit
	KeyMiss
)

// Keyboard renders an on-screen A-Z keyboard. state reports how each
// letter should look; guessed letters are shown as used.
func Keyboard(state func(r rune) KeyState) string {
	open := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	hit := lipgloss.NewStyle().Foreground(theme.Success)
	miss := lipgloss.NewStyle().Foreground(theme.Border).Strikethrough(true)

	rows := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			switch state(r) {
			case KeyHit:
				keys = append(keys, hit.Render(string(r)))
			case KeyMiss:
				keys = append(keys, miss.Render(string(r)))
			default:
				keys = append(keys, open.Render(string(r)))
			}
		}
		rows = append(rows, strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
