package formats

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

// hclLayoutFile is the top-level structure of an HCL layout file.
type hclLayoutFile struct {
	Layouts []*hclLayout `hcl:"layout,block"`
}

type hclLayout struct {
	ID      string     `hcl:"id,label"`
	Name    string     `hcl:"name,optional"`
	Cols    int        `hcl:"cols,optional"`
	Rows    int        `hcl:"rows,optional"`
	Starter []int      `hcl:"starter"`
	Blocked [][]int    `hcl:"blocked,optional"`
	Pipes   []*hclPipe `hcl:"pipe,block"`
}

type hclPipe struct {
	Kind string `hcl:"kind,label"`
	At   []int  `hcl:"at"`
}

// EvalContext returns the variables available to layout expressions:
// default_cols and default_rows.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_cols": cty.NumberIntVal(pipes.DefaultCols),
			"default_rows": cty.NumberIntVal(pipes.DefaultRows),
		},
	}
}

// ParseHCL parses an HCL layout file. The file must hold exactly one layout block:
//
//	layout "corner" {
//	  name    = "Corner"
//	  cols    = default_cols
//	  rows    = default_rows
//	  starter = [0, 0]
//	  blocked = [[4, 3], [5, 3]]
//
//	  pipe "horizontal" {
//	    at = [1, 0]
//	  }
//	}
func ParseHCL(data []byte, filename string) (pipes.Layout, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return pipes.Layout{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclLayoutFile
	diags = gohcl.DecodeBody(file.Body, EvalContext(), &parsed)
	if diags.HasErrors() {
		return pipes.Layout{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if len(parsed.Layouts) != 1 {
		return pipes.Layout{}, fmt.Errorf("%s: expected one layout block, found %d", filename, len(parsed.Layouts))
	}

	hl := parsed.Layouts[0]
	starter, err := coordOf(hl.Starter)
	if err != nil {
		return pipes.Layout{}, fmt.Errorf("%s: starter: %w", filename, err)
	}

	layout := pipes.Layout{
		ID:      hl.ID,
		Name:    hl.Name,
		Cols:    orDefault(hl.Cols, pipes.DefaultCols),
		Rows:    orDefault(hl.Rows, pipes.DefaultRows),
		Starter: starter,
	}

	for _, b := range hl.Blocked {
		c, err := coordOf(b)
		if err != nil {
			return pipes.Layout{}, fmt.Errorf("%s: blocked: %w", filename, err)
		}
		layout.Blocked = append(layout.Blocked, c)
	}

	for _, p := range hl.Pipes {
		kind, err := parsePipeKind(p.Kind)
		if err != nil {
			return pipes.Layout{}, fmt.Errorf("%s: %w", filename, err)
		}
		c, err := coordOf(p.At)
		if err != nil {
			return pipes.Layout{}, fmt.Errorf("%s: pipe %q: %w", filename, p.Kind, err)
		}
		layout.Pipes = append(layout.Pipes, pipes.PlacedPipe{At: c, Kind: kind})
	}

	return layout, nil
}

// HCLExtensions returns the file extensions handled by ParseHCL.
func HCLExtensions() []string {
	return []string{".hcl"}
}

func coordOf(xy []int) (pipes.Coord, error) {
	if len(xy) != 2 {
		return pipes.Coord{}, fmt.Errorf("coordinate needs [x, y], got %v", xy)
	}
	return pipes.C(xy[0], xy[1]), nil
}
