// Package boards provides board fixture loading for match3.
// This package depends on core but core does not depend on boards.
package boards

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/match3/internal/match3/boards/formats"
	"github.com/vovakirdan/match3/internal/match3/core"
)

// Fixture represents a complete board definition loaded from disk.
type Fixture struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Cells    []string
	Refills  []string
	Metadata map[string]string
	FilePath string
}

// ToBoard creates an engine board from the fixture.
func (f *Fixture) ToBoard() (*core.Board[string], error) {
	return core.FromCells(f.Width, f.Height, f.Cells)
}

// Loader handles loading board fixtures from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new fixture loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all board files.
// Invalid files are skipped. Returns fixtures sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Fixture, error) {
	fixtures, _, err := l.walk()
	return fixtures, err
}

// LoadAllStrict loads every board file like LoadAll and also returns one
// error per file that failed to load. err is set only when the walk itself fails.
func (l *Loader) LoadAllStrict() (fixtures []Fixture, invalid []error, err error) {
	return l.walk()
}

func (l *Loader) walk() ([]Fixture, []error, error) {
	var fixtures []Fixture
	var invalid []error

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		fixture, err := LoadFile(path)
		if err != nil {
			invalid = append(invalid, err)
			return nil
		}

		fixtures = append(fixtures, fixture)
		return nil
	})

	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].ID < fixtures[j].ID
	})

	return fixtures, invalid, nil
}

// LoadByID loads a specific fixture by ID.
func (l *Loader) LoadByID(id string) (Fixture, error) {
	fixtures, err := l.LoadAll()
	if err != nil {
		return Fixture{}, err
	}

	for _, f := range fixtures {
		if f.ID == id {
			return f, nil
		}
	}

	return Fixture{}, fmt.Errorf("board not found: %s", id)
}

// ListIDs returns all fixture IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	fixtures, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(fixtures))
	for i, f := range fixtures {
		ids[i] = f.ID
	}
	return ids, nil
}

// LoadFile loads a single board file.
// A file without an ID takes its base name as ID.
func LoadFile(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Fixture{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return Fixture{
		ID:       id,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Cells:    parsed.Cells,
		Refills:  parsed.Refills,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// SaveFile writes a board to path in the persisted YAML shape.
func SaveFile(path, id, name string, b *core.Board[string]) error {
	data, err := formats.MarshalYAML(formats.FromCore(id, name, b))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Board, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Board{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
