// Package play holds the quiz, word-guess and puzzle screens. Each screen
// owns one game.Session; starting over replaces the screen and with it the
// session.
package play

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/game"
	"github.com/abhisek/eduquest/internal/router"
	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/store"
	"github.com/abhisek/eduquest/internal/ui/components"
	"github.com/abhisek/eduquest/internal/ui/theme"
)

// Deps are the collaborators shared by the game screens.
type Deps struct {
	Content content.Provider

	// Events receives finished game results. Nil disables recording.
	Events store.EventRepo

	Limits game.Limits

	// Rand shuffles puzzle segments. Nil uses a time-seeded source.
	Rand *rand.Rand
}

func (d Deps) rng() *rand.Rand {
	if d.Rand != nil {
		return d.Rand
	}
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>17))
}

// loadedMsg carries fetched content for the session with the given ID.
type loadedMsg[T any] struct {
	Session string
	Value   T
	Err     error
}

// savedMsg reports the outcome of recording a game result.
type savedMsg struct {
	Err error
}

func fetch[T any](id string, f func(ctx context.Context) (T, error)) tea.Cmd {
	return func() tea.Msg {
		v, err := f(context.Background())
		return loadedMsg[T]{Session: id, Value: v, Err: err}
	}
}

// tick schedules the next countdown tick for a session. The screen re-arms
// it only while the session is playing.
func tick(id string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return game.Tick{Session: id}
	})
}

// dispatch applies msg and returns the follow-up command: the next tick
// after an accepted tick, or onFinish when this message ended the game.
func dispatch[G game.Game](s *game.Session[G], msg game.Msg, onFinish func() tea.Cmd) tea.Cmd {
	if !s.Dispatch(msg) {
		return nil
	}
	if s.Finished() {
		return onFinish()
	}
	if _, ok := msg.(game.Tick); ok {
		return tick(s.ID)
	}
	return nil
}

// load starts s with g, or records err. It returns the first tick.
func load[G game.Game](s *game.Session[G], g G, err error) tea.Cmd {
	if err != nil {
		s.Fail(err)
		return nil
	}
	if s.Start(g) {
		return tick(s.ID)
	}
	return nil
}

func (d Deps) record(data store.GameResultEventData) tea.Cmd {
	if d.Events == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return savedMsg{Err: d.Events.AppendGameResult(ctx, data)}
	}
}

func result[G game.Game](s *game.Session[G], name string) store.GameResultEventData {
	return store.GameResultEventData{
		SessionID:   s.ID,
		Game:        name,
		Subject:     s.Subject.Slug,
		Reason:      s.Reason.String(),
		SecondsUsed: int(s.Elapsed().Seconds()),
	}
}

func replaceWith(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func isKey(msg tea.Msg) (string, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", false
	}
	return k.String(), true
}

// Shared views.

func renderLoading(width, height int, what string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("⏳ Menyiapkan "+what+"..."))
}

func renderFetchError(width, height int, err error) string {
	title := "Gagal memuat materi dari AI."
	if content.IsCorrupt(err) {
		title = "Materi dari AI tidak bisa dipakai."
	}
	var unconfigured bool
	if errors.Is(err, errNoContent) {
		title = "Penyedia AI belum disiapkan."
		unconfigured = true
	}

	lines := []string{
		theme.Incorrect.Render(title),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-8, 70)).Render(err.Error()),
		"",
	}
	if unconfigured {
		lines = append(lines, theme.Hint.Render("Atur EDUQUEST_GEMINI_API_KEY lalu jalankan ulang."))
	} else {
		lines = append(lines, theme.Hint.Render("Tekan Enter untuk mencoba lagi."))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderStatus renders the subject on the left and the countdown on the
// right, above a divider.
func renderStatus(subject content.Subject, extra string, remaining, limit, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("  " + subject.Icon + " " + subject.Label)
	if extra != "" {
		left += lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + extra)
	}
	clock := components.Countdown(remaining, limit, 28)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(clock)-2, 1)
	return left + strings.Repeat(" ", gap) + clock + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 0)))
}

// renderOutcome renders a finished-game panel.
func renderOutcome(headline string, good bool, body []string, cw int) string {
	style := theme.Incorrect
	if good {
		style = theme.Correct
	}
	lines := append([]string{style.Render(headline), ""}, body...)
	lines = append(lines, "", theme.Hint.Render("Enter: main lagi   Esc: kembali"))
	return components.ArcadeCard(lipgloss.JoinVertical(lipgloss.Center, lines...), cw)
}

func renderSaveError(err error) string {
	if err == nil {
		return ""
	}
	return "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("(hasil tidak tersimpan: "+err.Error()+")")
}

// errNoContent is reported when no content provider is configured.
var errNoContent = errors.New("no LLM provider configured")
