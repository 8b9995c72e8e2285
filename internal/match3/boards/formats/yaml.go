// Package formats provides pluggable board file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/match3/internal/match3/core"
)

// YAMLBoard represents the YAML structure for a board file.
// Width, height and row-major cells are the persisted board shape;
// the remaining keys describe fixtures.
type YAMLBoard struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name,omitempty"`
	Width    int               `yaml:"width"`
	Height   int               `yaml:"height"`
	Cells    []string          `yaml:"cells,flow"`
	Refills  []string          `yaml:"refills,omitempty,flow"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Board represents a parsed board file ready for use.
type Board struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Cells    []string
	Refills  []string // Values queued for refills after the initial fill
	Metadata map[string]string
}

// ParseYAML parses a YAML board file.
func ParseYAML(data []byte) (Board, error) {
	var yb YAMLBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	b := Board{
		ID:       yb.ID,
		Name:     yb.Name,
		Width:    yb.Width,
		Height:   yb.Height,
		Cells:    yb.Cells,
		Refills:  yb.Refills,
		Metadata: yb.Metadata,
	}

	// Reject shapes the engine cannot load
	if _, err := b.ToCore(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// MarshalYAML encodes a board in the persisted shape.
func MarshalYAML(b Board) ([]byte, error) {
	yb := YAMLBoard{
		ID:       b.ID,
		Name:     b.Name,
		Width:    b.Width,
		Height:   b.Height,
		Cells:    b.Cells,
		Refills:  b.Refills,
		Metadata: b.Metadata,
	}
	data, err := yaml.Marshal(&yb)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FromCore captures an engine board.
func FromCore(id, name string, b *core.Board[string]) Board {
	return Board{
		ID:     id,
		Name:   name,
		Width:  b.Width(),
		Height: b.Height(),
		Cells:  b.Cells(),
	}
}

// ToCore creates an engine board from the stored cells.
func (b *Board) ToCore() (*core.Board[string], error) {
	return core.FromCells(b.Width, b.Height, b.Cells)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
