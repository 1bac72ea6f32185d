package play

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/game"
	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/ui/components"
	"github.com/abhisek/eduquest/internal/ui/layout"
	"github.com/abhisek/eduquest/internal/ui/theme"
)

// WordScreen plays one round of the word-guess game.
type WordScreen struct {
	deps    Deps
	session *game.Session[*game.Word]
	saveErr error
}

var _ screen.Screen = (*WordScreen)(nil)
var _ screen.KeyHintProvider = (*WordScreen)(nil)

// NewWord creates a word-guess screen for subject.
func NewWord(deps Deps, subject content.Subject) *WordScreen {
	return &WordScreen{
		deps:    deps,
		session: game.NewSession[*game.Word](subject, deps.Limits.WordSeconds),
	}
}

func (s *WordScreen) Init() tea.Cmd {
	subject := s.session.Subject
	return fetch(s.session.ID, func(ctx context.Context) (content.WordChallenge, error) {
		if s.deps.Content == nil {
			return content.WordChallenge{}, errNoContent
		}
		return s.deps.Content.WordChallenge(ctx, subject)
	})
}

func (s *WordScreen) Title() string {
	return "Tebak Kata"
}

func (s *WordScreen) KeyHints() []layout.KeyHint {
	if s.session.Finished() || s.session.Err != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Kata baru"}, {Key: "Esc", Description: "Kembali"}}
	}
	return []layout.KeyHint{{Key: "A-Z", Description: "Tebak huruf"}, {Key: "Esc", Description: "Keluar"}}
}

func (s *WordScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[content.WordChallenge]:
		if msg.Session != s.session.ID {
			return s, nil
		}
		var w *game.Word
		if msg.Err == nil {
			w = game.NewWord(msg.Value, s.deps.Limits.WordLives)
		}
		return s, load(s.session, w, msg.Err)

	case game.Tick:
		return s, dispatch(s.session, msg, s.finished)

	case savedMsg:
		s.saveErr = msg.Err
		return s, nil
	}

	key, ok := isKey(msg)
	if !ok {
		return s, nil
	}

	if s.session.Finished() || s.session.Err != nil {
		if key == "enter" {
			return s, replaceWith(NewWord(s.deps, s.session.Subject))
		}
		return s, nil
	}

	r := []rune(key)
	if len(r) != 1 {
		return s, nil
	}
	return s, dispatch(s.session, game.GuessLetter{Letter: r[0]}, s.finished)
}

func (s *WordScreen) finished() tea.Cmd {
	w := s.session.Game
	data := result(s.session, game.KindWord)
	data.Score = len(w.Guesses) - len(w.Misses())
	data.Total = len(w.Guesses)
	return s.deps.record(data)
}

func (s *WordScreen) View(width, height int) string {
	sess := s.session
	if sess.Err != nil {
		return renderFetchError(width, height, sess.Err)
	}
	if sess.Phase == game.PhaseLoading {
		return renderLoading(width, height, "kata rahasia")
	}

	w := sess.Game
	cw := components.ContentWidth(width)
	lives := strings.Repeat("❤ ", w.Lives) + strings.Repeat("♡ ", max(s.deps.Limits.WordLives-w.Lives, 0))
	status := renderStatus(sess.Subject, lipgloss.NewStyle().Foreground(theme.Error).Render(lives),
		sess.Remaining, sess.Limit, width)

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Align(lipgloss.Center).
			Render("Petunjuk: " + w.Challenge.Hint),
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(w.Masked()),
		components.Keyboard(func(r rune) components.KeyState {
			switch {
			case !w.Guessed(r):
				return components.KeyOpen
			case strings.ContainsRune(w.Challenge.Word, r):
				return components.KeyHit
			default:
				return components.KeyMiss
			}
		}),
	}
	if sess.Finished() {
		sections = append(sections, s.renderResult(cw))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, joinBlank(sections)...)
	return status + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *WordScreen) renderResult(cw int) string {
	w := s.session.Game
	var headline string
	switch s.session.Reason {
	case game.ReasonSolved:
		headline = "Hebat! Kamu berhasil menebak kata! 🎉"
	case game.ReasonOutOfLives:
		headline = "Yah, nyawamu habis! 💔"
	default:
		headline = "Waktu habis! ⏰"
	}
	body := []string{
		fmt.Sprintf("Jawabannya: %s", theme.Selected.Render(w.Challenge.Word)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 8).Render(w.Challenge.Explanation),
	}
	return renderOutcome(headline, s.session.Reason == game.ReasonSolved, body, cw) + renderSaveError(s.saveErr)
}

func joinBlank(sections []string) []string {
	out := make([]string, 0, 2*len(sections))
	for i, sec := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, sec)
	}
	return out
}
