package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/histquiz/internal/app"
	"github.com/abhisek/histquiz/internal/store"
)

// runApp loads the bank, opens the answer log if requested, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	closeLog, err := setupDebugLog()
	if err != nil {
		return fmt.Errorf("debug log: %w", err)
	}
	defer closeLog()

	b, err := resolveBank(cmd)
	if err != nil {
		return err
	}

	skip, _ := cmd.Flags().GetBool("skip-welcome")
	opts := app.Options{Bank: b, SkipWelcome: skip}

	if record, _ := cmd.Flags().GetBool("record"); record {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Answer log unavailable:", err)
			fmt.Fprintln(os.Stderr, "Continuing without recording.")
		} else {
			defer st.Close()
			opts.EventRepo = st.EventRepo()
		}
	}

	return app.Run(opts)
}

// setupDebugLog routes the standard logger to the file named by
// HISTQUIZ_DEBUG. Without it, log output is discarded so nothing is
// written over the TUI.
func setupDebugLog() (func(), error) {
	path := os.Getenv("HISTQUIZ_DEBUG")
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "histquiz")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}
