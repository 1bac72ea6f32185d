package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/game"
	"github.com/abhisek/eduquest/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished games and XP totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("game")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo := s.EventRepo()
		opts := store.QueryOpts{Limit: limit}
		if kind != "" {
			opts.Limit = 0
		}
		results, err := repo.QueryGameResults(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query game results: %w", err)
		}
		totals, err := repo.GameTotals(cmd.Context())
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}

		printHistory(cmd.OutOrStdout(), results, totals, kind, limit)
		return nil
	},
}

func printHistory(w io.Writer, results []store.GameResultRecord, totals []store.GameTotals, kind string, limit int) {
	games := newTable([]string{"Waktu", "Permainan", "Mapel", "Hasil", "Skor", "XP", "Detik"}, 4, 5, 6)

	rows := 0
	for _, r := range results {
		if kind != "" && r.Game != kind {
			continue
		}
		if limit > 0 && rows == limit {
			break
		}
		rows++

		subject := r.Subject
		if subj, err := content.SubjectBySlug(r.Subject); err == nil {
			subject = subj.Label
		}
		games.Row(
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			game.KindLabel(r.Game),
			truncate(subject, 16),
			game.ParseReason(r.Reason).Label(),
			fmt.Sprintf("%d/%d", r.Score, r.Total),
			strconv.Itoa(r.XP),
			strconv.Itoa(r.SecondsUsed),
		)
	}

	if rows == 0 {
		fmt.Fprintln(w, "Belum ada permainan yang selesai.")
		return
	}
	fmt.Fprintln(w, games.String())

	var xp int
	sum := newTable([]string{"Permainan", "Dimainkan", "Menang", "XP"}, 1, 2, 3)
	for _, t := range totals {
		xp += t.XP
		sum.Row(game.KindLabel(t.Game), strconv.Itoa(t.Played), strconv.Itoa(t.Cleared), strconv.Itoa(t.XP))
	}
	sum.Row("TOTAL", "", "", strconv.Itoa(xp))
	fmt.Fprintln(w)
	fmt.Fprintln(w, sum.String())
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of games to show")
	historyCmd.Flags().StringP("game", "g", "", "Filter by game (quiz, word, puzzle)")
}
