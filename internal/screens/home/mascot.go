package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default indigo
	MascotCelebrating                      // Gold, star eyes: has earned XP
	MascotAlert                            // Orange, exclamation: no LLM provider
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ A+? │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ A+? │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ A+? │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// MascotLine is what the mascot says under its art.
func MascotLine(v MascotVariant) string {
	switch v {
	case MascotCelebrating:
		return "Keren! XP-mu terus naik!"
	case MascotAlert:
		return "Aku butuh kunci AI dulu..."
	default:
		return "Siap belajar hari ini?"
	}
}

func mascotFor(hasProvider bool, st stats) MascotVariant {
	switch {
	case !hasProvider:
		return MascotAlert
	case st.xp > 0:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}
