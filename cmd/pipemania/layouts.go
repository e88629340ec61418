package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/games/pipemania"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/pipes/layouts"
	"github.com/FelipeeMaia/pipemania/internal/pipes/layouts/formats"
)

var flagLayoutsExport bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts [id]",
	Short: "List hand-made board layouts",
	Long: `Without an ID, list the built-in layouts and those found in the
configured layouts directory (YAML or HCL). With an ID, print the layout.

Examples:
  pipemania layouts
  pipemania layouts spiral
  pipemania layouts wall --export > wall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLayouts,
}

func init() {
	layoutsCmd.Flags().BoolVar(&flagLayoutsExport, "export", false, "Print the layout as YAML")
}

func runLayouts(_ *cobra.Command, args []string) {
	env := loadEnv(false)

	if len(args) == 1 {
		showLayout(env.Config, args[0])
		return
	}

	if len(env.Layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()
	fmt.Printf("  %-14s  %-16s  %-6s  %7s  %5s  %s\n", "ID", "Name", "Size", "Blocked", "Pipes", "Source")
	fmt.Printf("  %-14s  %-16s  %-6s  %7s  %5s  %s\n", "--", "----", "----", "-------", "-----", "------")
	for _, l := range env.Layouts {
		fmt.Printf("  %-14s  %-16s  %-6s  %7d  %5d  %s\n",
			l.ID, l.Name, fmt.Sprintf("%dx%d", l.Cols, l.Rows), len(l.Blocked), len(l.Pipes), l.FilePath)
	}

	fmt.Println()
	fmt.Println("Run 'pipemania play --layout <id>' to play a layout.")
}

func showLayout(cfg config.PipeConfig, id string) {
	lay, err := layouts.Resolve(config.ExpandHome(cfg.Layouts.Dir), id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: layout %q: %v\n", id, err)
		os.Exit(1)
	}

	if flagLayoutsExport {
		data, err := formats.MarshalYAML(lay.Layout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	opts := cfg.Options(flagSeed)
	opts.Layout = &lay.Layout
	s, err := pipes.NewSession(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s)  %dx%d\n", lay.Name, lay.ID, lay.Cols, lay.Rows)
	fmt.Print(pipemania.RenderASCII(s.Snapshot()))
}
