package config

import (
	_ "embed"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

//go:embed defaults/pipemania.yaml
var defaultPipeYAML []byte

// DefaultPipeConfig returns the default configuration.
func DefaultPipeConfig() PipeConfig {
	return PipeConfig{
		Board: BoardConfig{
			Cols: pipes.DefaultCols,
			Rows: pipes.DefaultRows,
		},
		Inventory: InventoryConfig{
			Size: pipes.DefaultInventorySize,
		},
		Setup: SetupConfig{
			MinBlocked: 4,
			MaxBlocked: 8,
			Attempts:   pipes.DefaultSetupAttempts,
		},
		Layouts: LayoutsConfig{
			Dir: "~/.pipemania/layouts",
		},
		Journal: JournalConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPipeYAML
}
