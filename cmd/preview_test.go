package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduquest/internal/content"
)

type fixedContent struct {
	questions []content.Question
	word      content.WordChallenge
	puzzle    content.PuzzleChallenge
}

func (f fixedContent) QuizQuestions(context.Context, content.Subject) ([]content.Question, error) {
	return f.questions, nil
}
func (f fixedContent) WordChallenge(context.Context, content.Subject) (content.WordChallenge, error) {
	return f.word, nil
}
func (f fixedContent) PuzzleChallenge(context.Context, content.Subject) (content.PuzzleChallenge, error) {
	return f.puzzle, nil
}
func (f fixedContent) TutorReply(context.Context, string, []content.Turn) (string, error) {
	return "", nil
}

func TestPreviewQuiz(t *testing.T) {
	qs := make([]content.Question, 5)
	for i := range qs {
		qs[i] = content.Question{ID: i + 1, Prompt: "p", Options: []string{"a", "b", "c", "d"}, Correct: 2, Explanation: "e"}
	}
	var out bytes.Buffer
	// One invalid line is re-asked; then C, 3, a, b, c.
	in := strings.NewReader("x\nC\n3\na\nb\nc\n")

	err := previewQuiz(context.Background(), fixedContent{questions: qs}, content.Math, in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(pilih A-D)")
	assert.Contains(t, out.String(), "Skor: 3/5  (+300 XP)")
}

func TestPreviewWord(t *testing.T) {
	ch := content.WordChallenge{Word: "SEL", Hint: "unit kehidupan", Explanation: "e"}
	var out bytes.Buffer
	in := strings.NewReader("s\ns\nq\ne\nl\n")

	err := previewWord(context.Background(), fixedContent{word: ch}, content.Science, in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "masukkan satu huruf baru")
	assert.Contains(t, out.String(), "Berhasil!")
	assert.Contains(t, out.String(), "salah: Q")
}

func TestPreviewWordInputClosed(t *testing.T) {
	ch := content.WordChallenge{Word: "SEL", Hint: "h", Explanation: "e"}
	var out bytes.Buffer
	err := previewWord(context.Background(), fixedContent{word: ch}, content.Science, strings.NewReader("s\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestPreviewPuzzleGiveUp(t *testing.T) {
	ch := content.PuzzleChallenge{
		Concept:     "Demokrasi",
		Definition:  "pemerintahan dari rakyat untuk rakyat",
		Segments:    []string{"pemerintahan", "dari", "rakyat", "untuk", "rakyat"},
		Explanation: "e",
	}
	var out bytes.Buffer
	in := strings.NewReader("9\n1 1\n\n")

	err := previewPuzzle(context.Background(), fixedContent{puzzle: ch}, content.History, in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `nomor "9" tidak valid`)
	assert.Contains(t, out.String(), "dipakai dua kali")
	assert.Contains(t, out.String(), "Definisi: pemerintahan dari rakyat untuk rakyat")
	assert.NotContains(t, out.String(), "Tepat sekali")
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"a", 0, true},
		{" D ", 3, true},
		{"2", 1, true},
		{"e", 0, false},
		{"5", 0, false},
		{"ab", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseOption(tt.in, 4)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestParseOrder(t *testing.T) {
	got, err := parseOrder("3 1 2", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, got)

	_, err = parseOrder("1 x", 3)
	assert.Error(t, err)
	_, err = parseOrder("0", 3)
	assert.Error(t, err)
	_, err = parseOrder("2 2", 3)
	assert.Error(t, err)
}
