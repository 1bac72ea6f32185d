// Package chat is the AI tutor screen.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/screen"
	"github.com/abhisek/eduquest/internal/tutor"
	"github.com/abhisek/eduquest/internal/ui/components"
	"github.com/abhisek/eduquest/internal/ui/layout"
	"github.com/abhisek/eduquest/internal/ui/theme"
)

const replyTimeout = 60 * time.Second

type replyMsg struct {
	reply string
	err   error
}

// ChatScreen shows the tutor transcript with an input box at the bottom.
type ChatScreen struct {
	replier tutor.Replier
	conv    *tutor.Conversation
	input   components.TextInput
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a tutor chat backed by r.
func New(r tutor.Replier) *ChatScreen {
	return &ChatScreen{
		replier: r,
		conv:    tutor.NewConversation(),
		input:   components.NewTextInput("Tanyakan materi pelajaran...", 500),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Tutor AI"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Kirim"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.conv.Finish(msg.reply, msg.err)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.send()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	history, ok := s.conv.Begin(text)
	if !ok {
		return nil
	}
	s.input.Reset()

	r := s.replier
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		reply, err := r.TutorReply(ctx, text, history)
		return replyMsg{reply: reply, err: err}
	}
}

func (s *ChatScreen) View(width, height int) string {
	cw := min(max(width-8, 20), 90)
	s.input.SetWidth(cw - 4)

	var blocks []string
	for _, t := range s.conv.Turns() {
		blocks = append(blocks, renderTurn(t, width, cw))
	}
	if s.conv.Pending() {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  Tutor sedang mengetik..."))
	}

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw).
		Render(s.input.View())
	inputBox = lipgloss.PlaceHorizontal(width, lipgloss.Center, inputBox)

	avail := max(height-lipgloss.Height(inputBox)-1, 1)
	transcript := tail(strings.Join(blocks, "\n\n"), avail)
	pad := strings.Repeat("\n", max(avail-lipgloss.Height(transcript), 0))

	return transcript + pad + "\n" + inputBox
}

// renderTurn aligns tutor turns left and learner turns right.
func renderTurn(t content.Turn, width, cw int) string {
	bubbleWidth := cw * 3 / 4
	if t.Author == content.AuthorLearner {
		bubble := theme.LearnerBubble.Width(bubbleWidth).Render(t.Text)
		return lipgloss.PlaceHorizontal(width-2, lipgloss.Right, bubble)
	}
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  🤖 Tutor")
	return label + "\n" + lipgloss.NewStyle().PaddingLeft(2).
		Render(theme.TutorBubble.Width(bubbleWidth).Render(t.Text))
}

// tail keeps the last n lines of s.
func tail(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
