package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Board text format: one line per row, space-separated tokens, one token
// per square. A token starting with '*' is an empty square; anything else
// is a 4-character piece token (see ParsePiece). Blank lines and lines
// starting with '#' are skipped.

// emptyToken is written for empty squares so columns stay aligned.
const emptyToken = "****"

// parseRows reads every row of the text format.
func parseRows(r io.Reader) ([][]*Piece, error) {
	var rows [][]*Piece
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		tokens := strings.Fields(text)
		row := make([]*Piece, len(tokens))
		for x, tok := range tokens {
			if strings.HasPrefix(tok, "*") {
				continue
			}
			p, err := ParsePiece(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, x, err)
			}
			row[x] = &p
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}
	return rows, nil
}

// ReadBoard parses a board, taking its size from the text.
// Every row must have the same number of squares.
func ReadBoard(r io.Reader, rules Rules) (*Board, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	rows, err := parseRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("board has no rows")
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d squares, want %d", y, len(row), width)
		}
	}

	b := NewBoardWithRules(width, len(rows), rules)
	b.grid = rows
	return b, nil
}

// ParseBoard is ReadBoard over a string with the default rules.
func ParseBoard(s string) (*Board, error) {
	return ReadBoard(strings.NewReader(s), DefaultRules())
}

// Load replaces the board contents with a layout of the same size and
// resets turn state. On error the board is left untouched.
func (b *Board) Load(r io.Reader) error {
	rows, err := parseRows(r)
	if err != nil {
		return err
	}
	if len(rows) != b.height {
		return fmt.Errorf("board has %d rows, want %d", len(rows), b.height)
	}
	for y, row := range rows {
		if len(row) != b.width {
			return fmt.Errorf("row %d has %d squares, want %d", y, len(row), b.width)
		}
	}
	b.grid = rows
	b.resetTurn()
	return nil
}

// WriteText writes the board layout in the text format. Per-turn state and
// statuses are not part of the format.
func (b *Board) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if p := b.grid[y][x]; p != nil {
				bw.WriteString(p.Token())
			} else {
				bw.WriteString(emptyToken)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// MarshalText implements encoding.TextMarshaler.
func (b *Board) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if err := b.WriteText(&sb); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
