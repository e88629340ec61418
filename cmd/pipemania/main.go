// pipemania is a terminal pipe-connection puzzle.
//
// Usage:
//
//	pipemania list               - List board variants
//	pipemania play [variant]     - Play a board (menu when no variant is given)
//	pipemania serve              - Start SSH server for remote play
//	pipemania history            - Show journaled sessions
//	pipemania replay <session>   - Rebuild a journaled session
//	pipemania layouts            - List hand-made board layouts
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set journal path (default: ~/.pipemania/journal.db)
//	--config <path>     - Use a custom config YAML
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/core"
	// Import games to register them
	_ "github.com/FelipeeMaia/pipemania/internal/games/pipemania"
	"github.com/FelipeeMaia/pipemania/internal/platform/tui"
	"github.com/FelipeeMaia/pipemania/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pipemania",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipemania",
	Short: "Pipemania - lay pipes and watch the water flow",
	Long: `Pipemania is a terminal puzzle: move the cursor over the grid, lay the
next piece from the queue and see how far water flows from the starter.

Available commands:
  list     - Show board variants
  play     - Play a board
  serve    - Start SSH server for remote play
  history  - Show journaled sessions
  replay   - Rebuild a journaled session
  layouts  - List hand-made layouts

Examples:
  pipemania play
  pipemania play pipemania_mini --difficulty hard
  pipemania play --layout spiral
  pipemania serve --ssh :2222
  pipemania replay 12`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pipemania/journal.db", "Path to journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(layoutsCmd)
}

// loadConfig loads the config or exits.
func loadConfig() config.PipeConfig {
	cfg, err := config.LoadPipe(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the journal or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}
	store.SetLogger(logger.WithPrefix("journal"))
	return store
}

// loadEnv builds the shared session environment. The journal is opened
// only when enabled; a journal that cannot be opened is skipped.
func loadEnv(journal bool) tui.Env {
	env := tui.Env{
		Config: loadConfig(),
		Logger: logger,
	}
	if err := env.LoadLayouts(); err != nil {
		logger.Warn("could not load layouts", "error", err)
	}

	if journal && env.Config.Journal.Enabled {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open journal: %v\n", err)
		} else {
			store.SetLogger(logger.WithPrefix("journal"))
			env.Store = store
		}
	}
	return env
}

// terminalSize returns the size of stdout, the default screen if unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	def := core.DefaultConfig()
	return def.ScreenW, def.ScreenH
}
