package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/platform/tui"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryDrop  int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled sessions",
	Long: `List the most recent journaled sessions, newest first.

Every game writes its options and each command with its outcome to the
journal. Sessions can be replayed but never resumed.

Examples:
  pipemania history
  pipemania history -n 50
  pipemania history --tui
  pipemania history --delete 12`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the journal interactively")
	historyCmd.Flags().Int64Var(&flagHistoryDrop, "delete", 0, "Delete a session by ID")
}

func runHistory(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagHistoryDrop > 0 {
		if err := store.DeleteSession(flagHistoryDrop); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted session #%d\n", flagHistoryDrop)
		return
	}

	if flagHistoryTUI {
		cfg := loadConfig()
		width, height := terminalSize()
		if _, err := tui.RunHistory(store, config.ExpandHome(cfg.Layouts.Dir), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	sessions, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions journaled yet.")
		return
	}

	fmt.Println("Recent sessions")
	fmt.Println()
	fmt.Printf("  %-6s  %-16s  %-12s  %-10s  %6s  %4s  %s\n", "ID", "Board", "Layout", "Seed", "Cmds", "Rej", "Date")
	fmt.Printf("  %-6s  %-16s  %-12s  %-10s  %6s  %4s  %s\n", "--", "-----", "------", "----", "----", "---", "----")
	for _, s := range sessions {
		layout := s.LayoutID
		if layout == "" {
			layout = "-"
		}
		fmt.Printf("  %-6s  %-16s  %-12s  %-10d  %6d  %4d  %s\n",
			fmt.Sprintf("#%d", s.ID),
			s.Variant,
			layout,
			s.Seed%10_000_000_000,
			s.Commands,
			s.Rejected,
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
