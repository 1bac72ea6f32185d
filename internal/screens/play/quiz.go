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

// QuizScreen plays one multiple-choice quiz.
type QuizScreen struct {
	deps    Deps
	session *game.Session[*game.Quiz]
	saveErr error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// NewQuiz creates a quiz screen for subject. Content is fetched on Init.
func NewQuiz(deps Deps, subject content.Subject) *QuizScreen {
	return &QuizScreen{
		deps:    deps,
		session: game.NewSession[*game.Quiz](subject, deps.Limits.QuizSeconds),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	subject := s.session.Subject
	return fetch(s.session.ID, func(ctx context.Context) ([]content.Question, error) {
		if s.deps.Content == nil {
			return nil, errNoContent
		}
		return s.deps.Content.QuizQuestions(ctx, subject)
	})
}

func (s *QuizScreen) Title() string {
	return "Kuis"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.session.Finished(), s.session.Err != nil:
		return []layout.KeyHint{{Key: "Enter", Description: "Main lagi"}, {Key: "Esc", Description: "Kembali"}}
	case s.session.Playing() && s.session.Game.Locked:
		return []layout.KeyHint{{Key: "Enter", Description: "Lanjut"}, {Key: "Esc", Description: "Keluar"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓ / 1-4", Description: "Pilih"},
		{Key: "Enter", Description: "Jawab"},
		{Key: "Esc", Description: "Keluar"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[[]content.Question]:
		if msg.Session != s.session.ID {
			return s, nil
		}
		var quiz *game.Quiz
		if msg.Err == nil {
			quiz = game.NewQuiz(msg.Value)
		}
		return s, load(s.session, quiz, msg.Err)

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
			return s, replaceWith(NewQuiz(s.deps, s.session.Subject))
		}
		return s, nil
	}
	if !s.session.Playing() {
		return s, nil
	}

	q := s.session.Game
	var intent game.Msg
	switch key {
	case "up", "k":
		intent = game.SelectOption{Index: max(q.Selected-1, 0)}
	case "down", "j":
		intent = game.SelectOption{Index: min(q.Selected+1, len(q.Question().Options)-1)}
	case "enter":
		if q.Locked {
			intent = game.Advance{}
		} else {
			intent = game.SubmitAnswer{}
		}
	default:
		i, ok := components.OptionIndex(key)
		if !ok {
			return s, nil
		}
		intent = game.SelectOption{Index: i}
	}
	return s, dispatch(s.session, intent, s.finished)
}

func (s *QuizScreen) finished() tea.Cmd {
	data := result(s.session, game.KindQuiz)
	data.Score = s.session.Game.Score
	data.Total = len(s.session.Game.Questions)
	data.XP = s.session.Game.XP(s.session.Reason)
	return s.deps.record(data)
}

func (s *QuizScreen) View(width, height int) string {
	sess := s.session
	if sess.Err != nil {
		return renderFetchError(width, height, sess.Err)
	}
	if sess.Phase == game.PhaseLoading {
		return renderLoading(width, height, "soal kuis")
	}

	q := sess.Game
	cw := components.ContentWidth(width)
	progress := fmt.Sprintf("Soal %d/%d   Skor %d", q.Current+1, len(q.Questions), q.Score)
	status := renderStatus(sess.Subject, progress, sess.Remaining, sess.Limit, width)

	var body string
	if sess.Finished() {
		body = s.renderResult(cw)
	} else {
		body = s.renderQuestion(cw)
	}

	return status + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *QuizScreen) renderQuestion(cw int) string {
	q := s.session.Game
	question := q.Question()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(question.Prompt))
	b.WriteString("\n\n")
	b.WriteString(components.MultiChoice{
		Options:  question.Options,
		Selected: q.Selected,
		Correct:  question.Correct,
		Revealed: q.Locked,
	}.View())

	if q.Locked {
		b.WriteString("\n")
		if q.LastCorrect() {
			b.WriteString(theme.Correct.Render("Benar! 🎉"))
		} else {
			b.WriteString(theme.Incorrect.Render("Kurang tepat."))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(question.Explanation))
	}
	return b.String()
}

func (s *QuizScreen) renderResult(cw int) string {
	q := s.session.Game
	reason := s.session.Reason

	headline := "Kuis selesai! 🏆"
	if reason == game.ReasonTimedOut {
		headline = "Waktu habis! ⏰"
	}

	body := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("Skor: %d dari %d", q.Score, len(q.Questions))),
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("+%d XP", q.XP(reason))),
	}
	return renderOutcome(headline, reason != game.ReasonTimedOut, body, cw) + renderSaveError(s.saveErr)
}
