package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/histquiz/internal/bank"
	"github.com/abhisek/histquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "histquiz",
	Short: "Multiple-choice quiz in the terminal",
	Long:  "histquiz: answer one question at a time, see why each answer is right or wrong, and restart whenever you like.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite answer log (overrides HISTQUIZ_DB env var)")

	rootCmd.Flags().String("bank", "", "Question bank file, YAML or JSON (overrides HISTQUIZ_BANK env var)")
	rootCmd.Flags().Bool("record", false, "Append answers and results to the answer log")
	rootCmd.Flags().Bool("skip-welcome", false, "Start the quiz immediately")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then HISTQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBank loads the bank named by --bank, then HISTQUIZ_BANK, falling
// back to the built-in bank.
func resolveBank(cmd *cobra.Command) (*bank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		path = os.Getenv("HISTQUIZ_BANK")
	}
	if path == "" {
		return bank.Default(), nil
	}
	return bank.Load(path)
}
