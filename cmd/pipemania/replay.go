package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/games/pipemania"
)

var flagReplayCommands bool

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Rebuild a journaled session",
	Long: `Rebuild a journaled session from its options and commands and print
the final board. Water is drawn with heavy lines. Commands whose outcome
differs on replay are reported.

Examples:
  pipemania replay 12
  pipemania replay 12 --commands`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayCommands, "commands", false, "Print every journaled command")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid session ID %q\n", args[0])
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	rec, err := store.SessionByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	entries, err := store.Commands(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	cfg := loadConfig()
	opts := rec.Options
	opts.LayoutID = rec.LayoutID
	res, err := pipemania.Replay(opts, entries, config.ExpandHome(cfg.Layouts.Dir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("Session #%d  %s  %s\n", rec.ID, rec.Variant, rec.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("%d commands, %d rejected\n\n", rec.Commands, rec.Rejected)

	if flagReplayCommands {
		for _, e := range entries {
			fmt.Printf("  %4d  %-24s  %s\n", e.Seq, e.Cmd, e.Outcome)
		}
		fmt.Println()
	}

	fmt.Print(res.Board)

	if len(res.Mismatches) > 0 {
		fmt.Println()
		fmt.Printf("%d commands replayed differently:\n", len(res.Mismatches))
		for _, m := range res.Mismatches {
			fmt.Printf("  %s\n", m)
		}
	}
}
