// Package layouts loads hand-authored boards from YAML and HCL files.
// This package depends on pipes but pipes does not depend on layouts.
package layouts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/pipes/layouts/formats"
)

//go:embed builtin
var builtinFS embed.FS

// ErrNotFound is returned when no layout has the requested ID.
var ErrNotFound = errors.New("layouts: not found")

// Layout is a parsed board together with where it came from.
type Layout struct {
	pipes.Layout
	FilePath string
}

// Loader handles loading layouts from a file tree.
type Loader struct {
	FS     fs.FS
	Root   string
	Logger *log.Logger
}

// NewLoader creates a loader reading from a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// Builtin creates a loader over the layouts compiled into the binary.
func Builtin() *Loader {
	return &Loader{FS: builtinFS, Root: "builtin"}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped. Returns layouts sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		layout, err := l.LoadFile(p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping layout", "file", p, "err", err)
			}
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("layouts: walking %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadFile loads and validates a single layout file.
func (l *Loader) LoadFile(p string) (Layout, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: reading %s: %w", p, err)
	}

	parsed, err := Parse(data, p)
	if err != nil {
		return Layout{}, err
	}

	return Layout{Layout: parsed, FilePath: p}, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, lay := range layouts {
		if lay.ID == id {
			return lay, nil
		}
	}

	return Layout{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Parse decodes layout data, choosing the format by the file extension of
// name, and validates the result. A missing ID is taken from the file name.
func Parse(data []byte, name string) (pipes.Layout, error) {
	ext := strings.ToLower(path.Ext(name))

	var (
		layout pipes.Layout
		err    error
	)
	switch {
	case contains(formats.YAMLExtensions(), ext):
		layout, err = formats.ParseYAML(data)
	case contains(formats.HCLExtensions(), ext):
		layout, err = formats.ParseHCL(data, name)
	default:
		return pipes.Layout{}, fmt.Errorf("layouts: unsupported format %q", ext)
	}
	if err != nil {
		return pipes.Layout{}, fmt.Errorf("layouts: parsing %s: %w", name, err)
	}

	if layout.ID == "" {
		layout.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if layout.Name == "" {
		layout.Name = layout.ID
	}
	if err := layout.Validate(); err != nil {
		return pipes.Layout{}, fmt.Errorf("layouts: %s: %w", name, err)
	}
	return layout, nil
}

// Resolve finds a layout by ID, first in dir (when set) and then among the
// built-in layouts.
func Resolve(dir, id string) (Layout, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			if lay, err := NewLoader(dir).LoadByID(id); err == nil {
				return lay, nil
			}
		}
	}
	return Builtin().LoadByID(id)
}

// SupportedExtensions returns every layout file extension.
func SupportedExtensions() []string {
	return append(formats.YAMLExtensions(), formats.HCLExtensions()...)
}

func isSupportedExtension(ext string) bool {
	return contains(SupportedExtensions(), ext)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
