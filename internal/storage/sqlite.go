// Package storage provides the SQLite board library: named board layouts
// imported by the player and offered alongside the built-ins. Only the
// starting layout is stored; games in progress are never saved.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when no board has the requested ID.
var ErrNotFound = errors.New("storage: board not found")

// Store manages the SQLite database connection for the board library.
type Store struct {
	db *sql.DB
}

// BoardRecord is a stored board layout.
type BoardRecord struct {
	ID           string
	Name         string
	Description  string
	Layout       string // board text format
	MovesPerTurn int    // 0 keeps the configured rules
	StunTurns    int
	ShieldTurns  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			layout TEXT NOT NULL,
			moves_per_turn INTEGER NOT NULL DEFAULT 0,
			stun_turns INTEGER NOT NULL DEFAULT 0,
			shield_turns INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_boards_name ON boards(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBoard inserts a board or replaces the one with the same ID.
// The original creation time is kept on replace.
func (s *Store) SaveBoard(r BoardRecord) error {
	if r.ID == "" {
		return fmt.Errorf("storage: board ID is empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO boards (id, name, description, layout, moves_per_turn, stun_turns, shield_turns)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			layout = excluded.layout,
			moves_per_turn = excluded.moves_per_turn,
			stun_turns = excluded.stun_turns,
			shield_turns = excluded.shield_turns,
			updated_at = CURRENT_TIMESTAMP`,
		r.ID, r.Name, r.Description, r.Layout, r.MovesPerTurn, r.StunTurns, r.ShieldTurns,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save board %s: %w", r.ID, err)
	}
	return nil
}

const boardColumns = `id, name, description, layout, moves_per_turn, stun_turns, shield_turns, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanBoard(row scanner) (BoardRecord, error) {
	var r BoardRecord
	var createdAt, updatedAt any
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Layout,
		&r.MovesPerTurn, &r.StunTurns, &r.ShieldTurns, &createdAt, &updatedAt)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	r.UpdatedAt = parseTime(updatedAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// LoadBoard retrieves a board by ID.
func (s *Store) LoadBoard(id string) (BoardRecord, error) {
	r, err := scanBoard(s.db.QueryRow(
		`SELECT `+boardColumns+` FROM boards WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return BoardRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return BoardRecord{}, fmt.Errorf("storage: cannot query board: %w", err)
	}
	return r, nil
}

// ListBoards retrieves every stored board ordered by ID.
func (s *Store) ListBoards() ([]BoardRecord, error) {
	rows, err := s.db.Query(`SELECT ` + boardColumns + ` FROM boards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var records []BoardRecord
	for rows.Next() {
		r, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeleteBoard removes a board. Deleting a missing board returns ErrNotFound.
func (s *Store) DeleteBoard(id string) error {
	res, err := s.db.Exec("DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete board: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// CountBoards returns the number of stored boards.
func (s *Store) CountBoards() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM boards").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count boards: %w", err)
	}
	return n, nil
}
