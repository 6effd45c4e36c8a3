package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/histquiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.EventRepo()
		runs, err := repo.RecentRuns(ctx, limit)
		if err != nil {
			return err
		}
		questionStats, err := repo.QuestionAccuracy(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 && len(questionStats) == 0 {
			fmt.Fprintln(out, "No results recorded yet. Run with --record to keep a log.")
			return nil
		}

		runsTable := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("COMPLETED", "BANK", "SCORE")
		for _, r := range runs {
			runsTable.Row(r.CompletedAt.Local().Format("2006-01-02 15:04"), r.BankTitle,
				fmt.Sprintf("%d/%d", r.Score, r.Total))
		}

		questionsTable := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("BANK", "#", "QUESTION", "CORRECT")
		for _, q := range questionStats {
			questionsTable.Row(q.BankTitle, fmt.Sprintf("%d", q.QuestionIndex+1), q.QuestionText,
				fmt.Sprintf("%d/%d (%.0f%%)", q.Correct, q.Attempts, q.Accuracy()*100))
		}

		fmt.Fprintln(out, "Recent runs")
		fmt.Fprintln(out, runsTable.String())
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Per-question accuracy")
		fmt.Fprintln(out, questionsTable.String())
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent runs to show (0 = all)")
}
