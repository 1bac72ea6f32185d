package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/eduquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eduquest",
	Short: "AI study games for middle schoolers",
	Long: `EduQuest is a terminal study arcade for SMP students.

Play quizzes, guess subject words, assemble concept definitions and chat
with an AI tutor. Content is generated on the fly by an LLM provider
configured through EDUQUEST_* environment variables.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUQUEST_DB env var)")

	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDUQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
