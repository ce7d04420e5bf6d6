// Package seed reads the initial player collection from disk.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// ErrDuplicate is returned when two seed records share an id or squad number.
var ErrDuplicate = errors.New("duplicate seed record")

// Loader reads a seed file. JSON is the default format; files ending in
// .yaml or .yml are decoded as YAML.
type Loader struct {
	path string
}

// NewLoader constructs a Loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the configured seed file path.
func (l *Loader) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Load reads and checks the seed file. A missing or malformed file is an
// error the caller is expected to treat as fatal.
func (l *Loader) Load() ([]players.Player, error) {
	if l == nil || l.path == "" {
		return nil, errors.New("seed file not configured")
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	items, err := decode(f, formatFor(l.path))
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", l.path, err)
	}
	if err := checkUnique(items); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", l.path, err)
	}
	return items, nil
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func decode(r io.Reader, f format) ([]players.Player, error) {
	var items []players.Player
	switch f {
	case formatYAML:
		if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&items); err != nil {
			return nil, err
		}
	default:
		if err := json.NewDecoder(r).Decode(&items); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []players.Player{}
	}
	return items, nil
}

func checkUnique(items []players.Player) error {
	ids := make(map[uint32]struct{}, len(items))
	squads := make(map[uint32]struct{}, len(items))
	for i, p := range items {
		if _, ok := ids[p.ID]; ok {
			return fmt.Errorf("%w: id %d at index %d", ErrDuplicate, p.ID, i)
		}
		if _, ok := squads[p.SquadNumber]; ok {
			return fmt.Errorf("%w: squad number %d at index %d", ErrDuplicate, p.SquadNumber, i)
		}
		ids[p.ID] = struct{}{}
		squads[p.SquadNumber] = struct{}{}
	}
	return nil
}
