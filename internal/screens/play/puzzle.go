package play

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/game"
	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/ui/components"
	"github.com/abhisek/eduquest/internal/ui/layout"
	"github.com/abhisek/eduquest/internal/ui/theme"
)

type puzzleRow int

const (
	rowPool puzzleRow = iota
	rowPlaced
)

// PuzzleScreen plays one definition puzzle.
type PuzzleScreen struct {
	deps    Deps
	session *game.Session[*game.Puzzle]
	saveErr error

	row    puzzleRow
	cursor int
}

var _ screen.Screen = (*PuzzleScreen)(nil)
var _ screen.KeyHintProvider = (*PuzzleScreen)(nil)

// NewPuzzle creates a puzzle screen for subject.
func NewPuzzle(deps Deps, subject content.Subject) *PuzzleScreen {
	return &PuzzleScreen{
		deps:    deps,
		session: game.NewSession[*game.Puzzle](subject, deps.Limits.PuzzleSeconds),
	}
}

func (s *PuzzleScreen) Init() tea.Cmd {
	subject := s.session.Subject
	return fetch(s.session.ID, func(ctx context.Context) (content.PuzzleChallenge, error) {
		if s.deps.Content == nil {
			return content.PuzzleChallenge{}, errNoContent
		}
		return s.deps.Content.PuzzleChallenge(ctx, subject)
	})
}

func (s *PuzzleScreen) Title() string {
	return "Puzzle Konsep"
}

func (s *PuzzleScreen) KeyHints() []layout.KeyHint {
	if s.session.Finished() || s.session.Err != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Puzzle baru"}, {Key: "Esc", Description: "Kembali"}}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Pilih"},
		{Key: "Tab", Description: "Pindah baris"},
		{Key: "Enter", Description: "Pasang/lepas"},
		{Key: "C", Description: "Periksa"},
		{Key: "R", Description: "Ulangi"},
	}
}

func (s *PuzzleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[content.PuzzleChallenge]:
		if msg.Session != s.session.ID {
			return s, nil
		}
		var p *game.Puzzle
		if msg.Err == nil {
			p = game.NewPuzzle(msg.Value, s.deps.rng())
		}
		return s, load(s.session, p, msg.Err)

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
			return s, replaceWith(NewPuzzle(s.deps, s.session.Subject))
		}
		return s, nil
	}
	if !s.session.Playing() {
		return s, nil
	}

	var intent game.Msg
	switch key {
	case "left", "h":
		s.cursor = max(s.cursor-1, 0)
	case "right", "l":
		s.cursor = min(s.cursor+1, max(len(s.current())-1, 0))
	case "tab", "up", "down":
		s.row = 1 - s.row
		s.clampCursor()
	case "enter", "space", " ":
		seg, ok := s.focused()
		if !ok {
			return s, nil
		}
		if s.row == rowPool {
			intent = game.PlaceSegment{Segment: seg}
		} else {
			intent = game.UnplaceSegment{Segment: seg}
		}
	case "backspace":
		placed := s.session.Game.Placed
		if len(placed) == 0 {
			return s, nil
		}
		intent = game.UnplaceSegment{Segment: placed[len(placed)-1]}
	case "c":
		intent = game.CheckAnswer{}
	case "r":
		intent = game.ResetArrangement{}
	}
	if intent == nil {
		return s, nil
	}

	cmd := dispatch(s.session, intent, s.finished)
	s.clampCursor()
	return s, cmd
}

// current returns the row under the cursor.
func (s *PuzzleScreen) current() []string {
	if s.row == rowPool {
		return s.session.Game.Pool
	}
	return s.session.Game.Placed
}

func (s *PuzzleScreen) focused() (string, bool) {
	row := s.current()
	if s.cursor < 0 || s.cursor >= len(row) {
		return "", false
	}
	return row[s.cursor], true
}

func (s *PuzzleScreen) clampCursor() {
	s.cursor = min(s.cursor, max(len(s.current())-1, 0))
}

func (s *PuzzleScreen) finished() tea.Cmd {
	data := result(s.session, game.KindPuzzle)
	data.Score = len(s.session.Game.Placed)
	data.Total = len(s.session.Game.Challenge.Segments)
	return s.deps.record(data)
}

func (s *PuzzleScreen) View(width, height int) string {
	sess := s.session
	if sess.Err != nil {
		return renderFetchError(width, height, sess.Err)
	}
	if sess.Phase == game.PhaseLoading {
		return renderLoading(width, height, "puzzle")
	}

	p := sess.Game
	cw := components.ContentWidth(width)
	status := renderStatus(sess.Subject, "", sess.Remaining, sess.Limit, width)

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Susun definisi dari: " + p.Challenge.Concept),
		renderSegmentRow("Jawabanmu", p.Placed, s.row == rowPlaced && sess.Playing(), s.cursor, cw),
		renderSegmentRow("Potongan kata", p.Pool, s.row == rowPool && sess.Playing(), s.cursor, cw),
	}

	switch {
	case sess.Finished():
		sections = append(sections, s.renderResult(cw))
	case p.Result == game.CheckIncorrect:
		sections = append(sections, theme.Incorrect.Render("Belum tepat, coba susun lagi!"))
	case !p.Checkable():
		sections = append(sections, theme.Hint.Render("Pasang minimal 2 potongan untuk memeriksa."))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, joinBlank(sections)...)
	return status + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *PuzzleScreen) renderResult(cw int) string {
	p := s.session.Game
	headline := "Tepat sekali! 🎉"
	if s.session.Reason == game.ReasonTimedOut {
		headline = "Waktu habis! ⏰"
	}
	body := []string{
		theme.Selected.Width(cw - 8).Render(p.Challenge.Definition),
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 8).Render(p.Challenge.Explanation),
	}
	return renderOutcome(headline, p.Result == game.CheckCorrect, body, cw) + renderSaveError(s.saveErr)
}

func renderSegmentRow(label string, segments []string, focused bool, cursor, cw int) string {
	chips := make([]string, 0, len(segments))
	for i, seg := range segments {
		if focused && i == cursor {
			chips = append(chips, theme.SegmentFocused.Render(seg))
		} else {
			chips = append(chips, theme.Segment.Render(seg))
		}
	}
	row := lipgloss.NewStyle().Foreground(theme.TextDim).Render("(kosong)")
	if len(chips) > 0 {
		row = lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(label), row)
}
