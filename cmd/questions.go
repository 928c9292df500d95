package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the built-in question set",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, q := range quiz.DefaultQuestions() {
			fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
			for j, a := range q.Answers {
				fmt.Fprintf(out, "   %d) %s\n", j+1, a)
			}
			fmt.Fprintf(out, "   image: %s\n\n", q.ImageURL)
		}
	},
}
