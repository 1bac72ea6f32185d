package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduquest/internal/content"
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Subject catalogue",
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available subjects",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-8s  %-16s  %-5s  %s\n", "Slug", "Label", "Level", "Description")
		fmt.Println(strings.Repeat("─", 80))
		for _, s := range content.Subjects() {
			label := s.Label
			if s.Popular {
				label += " *"
			}
			fmt.Printf("%-8s  %-16s  %-5s  %s\n",
				s.Slug, label, strings.Repeat("★", s.Difficulty), s.Description)
		}
		fmt.Println("\n* popular")
	},
}

func init() {
	subjectCmd.AddCommand(subjectListCmd)
}
