package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/game"
	"github.com/abhisek/eduquest/internal/llm"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play one LLM-generated round on stdin (no database, no timer)",
	Long: `Generate a quiz, word or puzzle round and play it line by line.

This is a stateless developer tool: no database, no events, no countdown.
Useful for evaluating generated content and prompt changes.`,
}

func init() {
	previewCmd.PersistentFlags().StringP("subject", "s", "math", "Subject slug: "+strings.Join(content.Slugs(), ", "))

	for _, c := range []*cobra.Command{
		{Use: "quiz", Short: "Preview a five-question quiz", RunE: previewRunner(previewQuiz)},
		{Use: "word", Short: "Preview a word-guess round", RunE: previewRunner(previewWord)},
		{Use: "puzzle", Short: "Preview a definition puzzle", RunE: previewRunner(previewPuzzle)},
	} {
		previewCmd.AddCommand(c)
	}
}

type previewFunc func(ctx context.Context, p content.Provider, subject content.Subject, in io.Reader, out io.Writer) error

func previewRunner(f previewFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		slug, _ := cmd.Flags().GetString("subject")
		subject, err := content.SubjectBySlug(slug)
		if err != nil {
			return err
		}

		// No EventRepo: logging skipped.
		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		gen := content.NewGenerator(provider, content.DefaultConfig())
		return f(ctx, gen, subject, os.Stdin, os.Stdout)
	}
}

func previewQuiz(ctx context.Context, p content.Provider, subject content.Subject, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Generating quiz for %s...\n\n", subject.Label)
	questions, err := p.QuizQuestions(ctx, subject)
	if err != nil {
		return fmt.Errorf("generate quiz: %w", err)
	}

	s := game.NewSession[*game.Quiz](subject, 0)
	s.Start(game.NewQuiz(questions))
	scanner := bufio.NewScanner(in)

	for s.Playing() {
		q := s.Game
		question := q.Question()
		fmt.Fprintf(out, "── Soal %d/%d ──\n%s\n", q.Current+1, len(q.Questions), question.Prompt)
		for i, opt := range question.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+i, opt)
		}

		fmt.Fprint(out, "\nJawaban (A-D): ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return scanner.Err()
		}
		idx, ok := parseOption(scanner.Text(), len(question.Options))
		if !ok {
			fmt.Fprintln(out, "(pilih A-D)")
			continue
		}

		s.Dispatch(game.SelectOption{Index: idx})
		s.Dispatch(game.SubmitAnswer{})
		if q.LastCorrect() {
			fmt.Fprintln(out, "\033[32m✓ Benar!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Kurang tepat.\033[0m Jawaban: %c) %s\n",
				'A'+question.Correct, question.Options[question.Correct])
		}
		fmt.Fprintf(out, "Penjelasan: %s\n\n", question.Explanation)
		s.Dispatch(game.Advance{})
	}

	fmt.Fprintf(out, "── Skor: %d/%d  (+%d XP) ──\n", s.Game.Score, len(s.Game.Questions), s.Game.XP(s.Reason))
	return nil
}

// parseOption accepts a letter A-D or a number 1-4.
func parseOption(s string, n int) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0, false
	}
	var idx int
	switch c := s[0]; {
	case c >= 'A' && c <= 'Z':
		idx = int(c - 'A')
	case c >= '1' && c <= '9':
		idx = int(c - '1')
	default:
		return 0, false
	}
	return idx, idx < n
}

func previewWord(ctx context.Context, p content.Provider, subject content.Subject, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Generating word for %s...\n\n", subject.Label)
	ch, err := p.WordChallenge(ctx, subject)
	if err != nil {
		return fmt.Errorf("generate word: %w", err)
	}

	limits := game.DefaultLimits()
	s := game.NewSession[*game.Word](subject, 0)
	s.Start(game.NewWord(ch, limits.WordLives))
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Petunjuk: %s\n", ch.Hint)
	for s.Playing() {
		w := s.Game
		fmt.Fprintf(out, "\n%s   nyawa: %d\n", w.Masked(), w.Lives)
		if misses := w.Misses(); len(misses) > 0 {
			fmt.Fprintf(out, "salah: %s\n", string(misses))
		}
		fmt.Fprint(out, "Huruf: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return scanner.Err()
		}
		letters := []rune(strings.TrimSpace(scanner.Text()))
		if len(letters) != 1 || !s.Dispatch(game.GuessLetter{Letter: letters[0]}) {
			fmt.Fprintln(out, "(masukkan satu huruf baru A-Z)")
		}
	}

	if s.Reason == game.ReasonSolved {
		fmt.Fprintf(out, "\n\033[32m✓ Berhasil!\033[0m %s\n", ch.Word)
	} else {
		fmt.Fprintf(out, "\n\033[31m✗ Nyawa habis.\033[0m Jawabannya: %s\n", ch.Word)
	}
	fmt.Fprintf(out, "Penjelasan: %s\n", ch.Explanation)
	return nil
}

func previewPuzzle(ctx context.Context, p content.Provider, subject content.Subject, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Generating puzzle for %s...\n\n", subject.Label)
	ch, err := p.PuzzleChallenge(ctx, subject)
	if err != nil {
		return fmt.Errorf("generate puzzle: %w", err)
	}

	now := uint64(time.Now().UnixNano())
	s := game.NewSession[*game.Puzzle](subject, 0)
	s.Start(game.NewPuzzle(ch, rand.New(rand.NewPCG(now, now>>17))))
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Susun definisi dari: %s\n", ch.Concept)
	for s.Playing() {
		pool := append([]string(nil), s.Game.Pool...)
		fmt.Fprintln(out)
		for i, seg := range pool {
			fmt.Fprintf(out, "  %d) %s\n", i+1, seg)
		}
		fmt.Fprint(out, "Urutan (mis. 3 1 2), kosong untuk menyerah: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		order, err := parseOrder(line, len(pool))
		if err != nil {
			fmt.Fprintf(out, "(%v)\n", err)
			continue
		}
		for _, i := range order {
			s.Dispatch(game.PlaceSegment{Segment: pool[i]})
		}
		s.Dispatch(game.CheckAnswer{})
		if s.Playing() {
			fmt.Fprintf(out, "\033[31m✗ Belum tepat:\033[0m %s\n", s.Game.Arrangement())
			s.Dispatch(game.ResetArrangement{})
		}
	}

	if s.Reason == game.ReasonSolved {
		fmt.Fprintln(out, "\n\033[32m✓ Tepat sekali!\033[0m")
	}
	fmt.Fprintf(out, "Definisi: %s\nPenjelasan: %s\n", ch.Definition, ch.Explanation)
	return nil
}

// parseOrder parses 1-based indexes into 0-based ones. Every index must be
// in range and used at most once.
func parseOrder(line string, n int) ([]int, error) {
	seen := make(map[int]bool)
	var order []int
	for _, f := range strings.Fields(line) {
		i, err := strconv.Atoi(f)
		if err != nil || i < 1 || i > n {
			return nil, fmt.Errorf("nomor %q tidak valid", f)
		}
		if seen[i] {
			return nil, fmt.Errorf("nomor %d dipakai dua kali", i)
		}
		seen[i] = true
		order = append(order, i-1)
	}
	return order, nil
}
