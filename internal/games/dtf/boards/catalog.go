// Package boards provides the board catalog: the built-in layouts shipped
// with the binary plus any board files found in a directory.
// This package depends on core but core does not depend on boards.
package boards

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards/formats"
	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
	"github.com/vovakirdan/destroy-the-flags/internal/storage"
)

//go:embed builtin/*
var builtinFS embed.FS

// ErrBoardNotFound is returned when no board has the requested ID.
var ErrBoardNotFound = errors.New("board not found")

// Source values for Board.Source.
const (
	SourceBuiltin = "builtin"
	SourceLibrary = "library"
)

// Board is a named board definition.
type Board struct {
	formats.Board
	Source string // SourceBuiltin, SourceLibrary or the file path
}

// RulesFor returns base adjusted by the board's overrides.
func (b Board) RulesFor(base core.Rules) core.Rules {
	return b.Rules.Apply(base)
}

// New builds a fresh game board from the definition.
func (b Board) New(base core.Rules) (*core.Board, error) {
	board, err := core.ReadBoard(strings.NewReader(b.Layout), b.RulesFor(base))
	if err != nil {
		return nil, fmt.Errorf("boards: %s: %w", b.ID, err)
	}
	return board, nil
}

// Library is the board store the catalog reads from.
type Library interface {
	ListBoards() ([]storage.BoardRecord, error)
}

// Catalog lists boards from the built-ins, an optional directory and an
// optional library. Later sources replace earlier boards with the same ID:
// built-ins, then the directory, then the library.
type Catalog struct {
	Dir     string
	Library Library
}

// NewCatalog creates a catalog. An empty dir means built-ins only.
func NewCatalog(dir string) *Catalog {
	return &Catalog{Dir: dir}
}

// Builtins returns the boards shipped with the binary, sorted by ID.
func Builtins() ([]Board, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("boards: reading built-ins: %w", err)
	}
	var out []Board
	for _, e := range entries {
		path := "builtin/" + e.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("boards: reading %s: %w", path, err)
		}
		b, err := Parse(data, e.Name())
		if err != nil {
			return nil, fmt.Errorf("boards: %w", err)
		}
		b.Source = SourceBuiltin
		out = append(out, b)
	}
	sortBoards(out)
	return out, nil
}

// List returns every board, sorted by ID. Unreadable files in the
// directory are skipped; a missing directory is not an error.
func (c *Catalog) List() ([]Board, error) {
	builtins, err := Builtins()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Board, len(builtins))
	for _, b := range builtins {
		byID[b.ID] = b
	}

	if c.Dir != "" {
		local, err := c.loadDir()
		if err != nil {
			return nil, err
		}
		for _, b := range local {
			byID[b.ID] = b
		}
	}

	if c.Library != nil {
		records, err := c.Library.ListBoards()
		if err != nil {
			return nil, fmt.Errorf("boards: %w", err)
		}
		for _, r := range records {
			b, err := FromRecord(r)
			if err != nil {
				// Skip layouts that no longer parse
				continue
			}
			byID[b.ID] = b
		}
	}

	out := make([]Board, 0, len(byID))
	for _, b := range byID {
		out = append(out, b)
	}
	sortBoards(out)
	return out, nil
}

func (c *Catalog) loadDir() ([]Board, error) {
	var out []Board
	err := filepath.WalkDir(c.Dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == c.Dir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}
		b, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		out = append(out, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boards: walking directory %s: %w", c.Dir, err)
	}
	return out, nil
}

// Get returns the board with the given ID.
func (c *Catalog) Get(id string) (Board, error) {
	all, err := c.List()
	if err != nil {
		return Board{}, err
	}
	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}
	return Board{}, fmt.Errorf("boards: %w: %s", ErrBoardNotFound, id)
}

// Resolve returns the board named by ref: a path to a board file if one
// exists, otherwise a catalog ID.
func (c *Catalog) Resolve(ref string) (Board, error) {
	if isSupportedExtension(filepath.Ext(ref)) {
		if _, err := os.Stat(ref); err == nil {
			return LoadFile(ref)
		}
	}
	return c.Get(ref)
}

// IDs returns every board ID in sorted order.
func (c *Catalog) IDs() ([]string, error) {
	all, err := c.List()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, b := range all {
		ids[i] = b.ID
	}
	return ids, nil
}

// LoadFile loads a single board file.
func LoadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("boards: reading file %s: %w", path, err)
	}
	b, err := Parse(data, filepath.Base(path))
	if err != nil {
		return Board{}, fmt.Errorf("boards: parsing file %s: %w", path, err)
	}
	b.Source = path
	return b, nil
}

// Parse routes data to the parser for name's extension. The ID defaults
// to name without its extension.
func Parse(data []byte, name string) (Board, error) {
	ext := strings.ToLower(filepath.Ext(name))
	id := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	var (
		fb  formats.Board
		err error
	)
	switch ext {
	case ".yaml", ".yml":
		fb, err = formats.ParseYAML(data, id)
	case ".txt", ".dtf":
		fb, err = formats.ParseText(data, id)
	default:
		return Board{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Board{}, err
	}
	return Board{Board: fb}, nil
}

// Encode renders b in the format for name's extension.
func Encode(b Board, name string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return formats.FormatYAML(b.Board)
	case ".txt", ".dtf":
		return formats.FormatText(b.Board), nil
	default:
		return nil, fmt.Errorf("unsupported extension: %s", filepath.Ext(name))
	}
}

// FromRecord converts a stored board.
func FromRecord(r storage.BoardRecord) (Board, error) {
	fb, err := formats.New(r.ID, r.Name, r.Description, r.Layout, formats.RulesOverride{
		MovesPerTurn: r.MovesPerTurn,
		StunTurns:    r.StunTurns,
		ShieldTurns:  r.ShieldTurns,
	})
	if err != nil {
		return Board{}, err
	}
	return Board{Board: fb, Source: SourceLibrary}, nil
}

// ToRecord converts a board for storage.
func ToRecord(b Board) storage.BoardRecord {
	return storage.BoardRecord{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		Layout:       strings.Join(formats.LayoutRows(b.Layout), "\n") + "\n",
		MovesPerTurn: b.Rules.MovesPerTurn,
		StunTurns:    b.Rules.StunTurns,
		ShieldTurns:  b.Rules.ShieldTurns,
	}
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func sortBoards(bs []Board) {
	sort.Slice(bs, func(i, j int) bool {
		return bs[i].ID < bs[j].ID
	})
}
