// Package config provides YAML-based configuration loading and difficulty
// presets for pipemania.
package config

import (
	"fmt"
	"strings"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

// PipeConfig contains all configuration for a pipemania session.
type PipeConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Inventory InventoryConfig `yaml:"inventory"`
	Setup     SetupConfig     `yaml:"setup"`
	Layouts   LayoutsConfig   `yaml:"layouts"`
	Journal   JournalConfig   `yaml:"journal"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// InventoryConfig defines the piece queue.
type InventoryConfig struct {
	Size int `yaml:"size"`
}

// SetupConfig defines random board generation.
type SetupConfig struct {
	MinBlocked int `yaml:"min_blocked"`
	MaxBlocked int `yaml:"max_blocked"`
	Attempts   int `yaml:"attempts"` // Starter search attempts before giving up
}

// LayoutsConfig points at user layout files.
type LayoutsConfig struct {
	Dir string `yaml:"dir"` // Searched before the built-in layouts; "~/" expands to home
}

// JournalConfig controls the command journal.
type JournalConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Options converts the config to session options for the given seed.
func (c PipeConfig) Options(seed int64) pipes.Options {
	return pipes.Options{
		Cols:          c.Board.Cols,
		Rows:          c.Board.Rows,
		InventorySize: c.Inventory.Size,
		MinBlocked:    c.Setup.MinBlocked,
		MaxBlocked:    c.Setup.MaxBlocked,
		SetupAttempts: c.Setup.Attempts,
		Seed:          seed,
	}
}

// Validate reports configuration values that can never produce a board.
func (c PipeConfig) Validate() error {
	switch {
	case c.Board.Cols < 2 || c.Board.Rows < 2:
		return fmt.Errorf("config: board %dx%d is smaller than 2x2", c.Board.Cols, c.Board.Rows)
	case c.Inventory.Size < 1:
		return fmt.Errorf("config: inventory size %d must be positive", c.Inventory.Size)
	case c.Setup.MinBlocked < 0 || c.Setup.MaxBlocked < c.Setup.MinBlocked:
		return fmt.Errorf("config: invalid blocked range [%d, %d]", c.Setup.MinBlocked, c.Setup.MaxBlocked)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset resolves a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Few blocked cells"
	case DifficultyNormal:
		return "Standard board"
	case DifficultyHard:
		return "Crowded board"
	case DifficultyFixed:
		return "Same number of blocks every game"
	default:
		return ""
	}
}

// ApplyPreset adjusts the blocked range for a difficulty preset. Ranges are
// given for the 9x7 board and scaled to the configured area.
func ApplyPreset(cfg *PipeConfig, preset DifficultyPreset) {
	var lo, hi int
	switch preset {
	case DifficultyEasy:
		lo, hi = 2, 4
	case DifficultyNormal:
		lo, hi = 4, 8
	case DifficultyHard:
		lo, hi = 8, 14
	case DifficultyFixed:
		lo, hi = 6, 6
	default:
		return
	}

	area := cfg.Board.Cols * cfg.Board.Rows
	ref := pipes.DefaultCols * pipes.DefaultRows
	cfg.Setup.MinBlocked = lo * area / ref
	cfg.Setup.MaxBlocked = hi * area / ref
}
