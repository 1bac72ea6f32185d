package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduquest/internal/app"
	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/llm"
	"github.com/abhisek/eduquest/internal/selfupdate"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Events:  eventRepo,
		Version: version,
		Checker: selfupdate.NewChecker(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Games and the tutor will be unavailable.")
	} else {
		opts.Content = content.NewGenerator(provider, content.DefaultConfig())
		opts.Status = provider.ModelID()
	}

	return app.Run(opts)
}
