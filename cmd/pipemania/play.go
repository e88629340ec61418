package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/pipes/layouts"
	"github.com/FelipeeMaia/pipemania/internal/platform/tui"
	"github.com/FelipeeMaia/pipemania/internal/registry"
)

var (
	flagDifficulty string
	flagLayout     string
	flagNoJournal  bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing. Without a variant, a menu lets you pick the board,
the difficulty and browse the journal.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Lay the active piece
  X            - Block/free the cell under the cursor
  F            - Recompute the flow
  R            - New board
  P            - Pause
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Few blocked cells
  normal - Standard board
  hard   - Crowded board
  fixed  - Same number of blocks every game

Examples:
  pipemania play
  pipemania play pipemania_wide
  pipemania play --difficulty hard
  pipemania play --layout crossroads
  pipemania play --seed 42 --no-journal`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Play a hand-made layout by ID")
	playCmd.Flags().BoolVar(&flagNoJournal, "no-journal", false, "Do not journal this session")
}

func runPlay(_ *cobra.Command, args []string) {
	env := loadEnv(!flagNoJournal)
	if env.Store != nil {
		defer env.Store.Close()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if len(args) == 0 && flagDifficulty == "" && flagLayout == "" {
		if err := tui.RunSession(env, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := "pipemania"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pipemania list' to see available boards.")
		os.Exit(1)
	}

	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		preset = p
	}

	var layout *pipes.Layout
	if flagLayout != "" {
		lay, err := layouts.Resolve(config.ExpandHome(env.Config.Layouts.Dir), flagLayout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: layout %q: %v\n", flagLayout, err)
			fmt.Fprintln(os.Stderr, "Run 'pipemania layouts' to see available layouts.")
			os.Exit(1)
		}
		layout = &lay.Layout
	}

	// Ask for the board when only a variant was given
	if preset == "" && layout == nil {
		title := gameID
		for _, g := range registry.List() {
			if g.ID == gameID {
				title = g.Title
			}
		}
		sel, err := tui.RunSetupSelector(title, env.Layouts, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if sel == nil {
			return
		}
		preset, layout = sel.Preset, sel.Layout
	}

	game, err := registry.Create(gameID, env.Settings(preset, layout))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	if state := game.State(); state.Failed {
		fmt.Fprintf(os.Stderr, "Board setup failed: %s\n", state.Status)
		os.Exit(1)
	}
}
