package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FelipeeMaia/pipemania/internal/games/pipemania"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered board variant and its size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if len(pipemania.Variants) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range pipemania.Variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")
	for _, v := range pipemania.Variants {
		cols, rows := v.Cols, v.Rows
		if cols == 0 {
			cols, rows = cfg.Board.Cols, cfg.Board.Rows
		}
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, v.ID, fmt.Sprintf("%dx%d", cols, rows), v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pipemania play <id>' to play a board.")
}
