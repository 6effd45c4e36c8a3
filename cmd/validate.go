package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/histquiz/internal/bank"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a question bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok\n", args[0])
		fmt.Fprintf(out, "  title:     %s\n", b.Title)
		fmt.Fprintf(out, "  questions: %d\n", len(b.Questions))
		for i, q := range b.Questions {
			fmt.Fprintf(out, "  %2d. %s (%d options)\n", i+1, q.Question, len(q.Options))
		}
		return nil
	},
}
