// Package formats provides pluggable board layout file parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Size    YAMLSize      `yaml:"size"`
	Starter pipes.Coord   `yaml:"starter"`
	Blocked []pipes.Coord `yaml:"blocked,omitempty"`
	Pipes   []YAMLPipe    `yaml:"pipes,omitempty"`
}

// YAMLSize represents board dimensions. Zero means the default size.
type YAMLSize struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// YAMLPipe is a pre-laid pipe.
type YAMLPipe struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind"`
}

// ParseYAML parses a YAML layout file.
func ParseYAML(data []byte) (pipes.Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return pipes.Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	layout := pipes.Layout{
		ID:      yl.ID,
		Name:    yl.Name,
		Cols:    orDefault(yl.Size.Cols, pipes.DefaultCols),
		Rows:    orDefault(yl.Size.Rows, pipes.DefaultRows),
		Starter: yl.Starter,
		Blocked: yl.Blocked,
	}

	for _, p := range yl.Pipes {
		kind, err := parsePipeKind(p.Kind)
		if err != nil {
			return pipes.Layout{}, err
		}
		layout.Pipes = append(layout.Pipes, pipes.PlacedPipe{At: pipes.C(p.X, p.Y), Kind: kind})
	}

	return layout, nil
}

// MarshalYAML renders a layout in the YAML file format.
func MarshalYAML(l pipes.Layout) ([]byte, error) {
	yl := YAMLLayout{
		ID:      l.ID,
		Name:    l.Name,
		Size:    YAMLSize{Cols: l.Cols, Rows: l.Rows},
		Starter: l.Starter,
		Blocked: l.Blocked,
	}
	for _, p := range l.Pipes {
		yl.Pipes = append(yl.Pipes, YAMLPipe{X: p.At.X, Y: p.At.Y, Kind: p.Kind.String()})
	}
	return yaml.Marshal(yl)
}

// YAMLExtensions returns the file extensions handled by ParseYAML.
func YAMLExtensions() []string {
	return []string{".yaml", ".yml"}
}

func parsePipeKind(s string) (pipes.Kind, error) {
	kind, ok := pipes.ParseKind(s)
	if !ok || kind == pipes.None {
		return pipes.None, fmt.Errorf("unknown pipe kind %q", s)
	}
	return kind, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
