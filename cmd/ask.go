package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/llm"
	"github.com/abhisek/eduquest/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the AI tutor (interactive when no question is given)",
	Long: `Send a question to the AI tutor.

With a question argument, prints one reply and exits. Without one, starts a
line-by-line chat on stdin; an empty line or EOF ends it. Requests are logged
to the database like TUI requests.`,
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	gen := content.NewGenerator(provider, content.DefaultConfig())
	conv := tutor.NewConversation()

	if len(args) > 0 {
		reply, ok := conv.Ask(ctx, gen, strings.Join(args, " "))
		if !ok {
			return fmt.Errorf("empty question")
		}
		fmt.Println(reply)
		return conv.Err
	}

	fmt.Println("Tutor:", tutor.Greeting)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nKamu: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		reply, ok := conv.Ask(ctx, gen, scanner.Text())
		if !ok {
			return nil
		}
		fmt.Println("\nTutor:", reply)
		if conv.Err != nil {
			fmt.Fprintln(os.Stderr, "(error:", conv.Err, ")")
		}
	}
}
