package tui

import (
	"github.com/charmbracelet/log"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/pipes/layouts"
	"github.com/FelipeeMaia/pipemania/internal/registry"
	"github.com/FelipeeMaia/pipemania/internal/storage"
)

// Env is shared by every terminal session: the loaded config, the
// available layouts and the journal store (nil when journaling is off).
type Env struct {
	Config  config.PipeConfig
	Layouts []layouts.Layout
	Store   *storage.Store
	Logger  *log.Logger
}

// LoadLayouts loads the built-in layouts followed by the ones found in
// the configured directory. Directory layouts shadow built-ins with the same ID.
func (e *Env) LoadLayouts() error {
	builtin, err := layouts.Builtin().LoadAll()
	if err != nil {
		return err
	}

	byID := make(map[string]int, len(builtin))
	for i, l := range builtin {
		byID[l.ID] = i
	}
	e.Layouts = builtin

	dir := config.ExpandHome(e.Config.Layouts.Dir)
	if dir == "" {
		return nil
	}
	loader := layouts.NewLoader(dir)
	loader.Logger = e.Logger
	custom, err := loader.LoadAll()
	if err != nil {
		// A missing directory is normal.
		if e.Logger != nil {
			e.Logger.Debug("no custom layouts", "dir", dir, "error", err)
		}
		return nil
	}
	for _, l := range custom {
		if i, ok := byID[l.ID]; ok {
			e.Layouts[i] = l
			continue
		}
		byID[l.ID] = len(e.Layouts)
		e.Layouts = append(e.Layouts, l)
	}
	return nil
}

// Settings builds the registry settings for a game.
func (e Env) Settings(preset config.DifficultyPreset, layout *pipes.Layout) registry.Settings {
	s := registry.Settings{
		Config: e.Config,
		Preset: preset,
		Layout: layout,
	}
	if e.Store != nil && e.Config.Journal.Enabled {
		s.Journal = e.Store
	}
	return s
}
