// Package core provides the rules engine for Destroy the Flags.
// It is UI-agnostic and deterministic: every command runs to completion
// before returning and reports what happened as a list of events.
package core

import (
	"fmt"
	"hash/fnv"
)

// Outcome is the result of the win check.
type Outcome int

const (
	NoWinner Outcome = iota // both sides still have a living flag
	GoldWins
	RedWins
	Tie // neither side has a living flag
)

// String returns the outcome code: "", "G", "R" or "TIE".
func (o Outcome) String() string {
	switch o {
	case GoldWins:
		return "G"
	case RedWins:
		return "R"
	case Tie:
		return "TIE"
	default:
		return ""
	}
}

// Board is the game grid plus turn state. It is not safe for concurrent
// use; callers that share a board across goroutines must serialize access.
type Board struct {
	width          int
	height         int
	grid           [][]*Piece // grid[y][x], nil means empty
	whoseTurn      Player
	movesRemaining int
	rules          Rules

	listeners []Listener
	pending   []Event // events raised by the command in progress
}

// NewBoard creates an empty board with the default rules.
func NewBoard(width, height int) *Board {
	return NewBoardWithRules(width, height, DefaultRules())
}

// NewBoardWithRules creates an empty board with custom rules.
// Panics if the dimensions or rules are invalid.
func NewBoardWithRules(width, height int, rules Rules) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("core: invalid board size %dx%d", width, height))
	}
	if err := rules.Validate(); err != nil {
		panic("core: " + err.Error())
	}
	b := &Board{
		width:  width,
		height: height,
		rules:  rules,
	}
	b.grid = make([][]*Piece, height)
	for y := range b.grid {
		b.grid[y] = make([]*Piece, width)
	}
	b.resetTurn()
	return b
}

// resetTurn puts Gold on move with a full budget.
func (b *Board) resetTurn() {
	b.whoseTurn = Gold
	b.movesRemaining = b.rules.MovesPerTurn
}

// AddListener registers a listener. Listeners are called in registration order.
func (b *Board) AddListener(l Listener) {
	b.listeners = append(b.listeners, l)
}

// emit records an event for the current command and pushes it to listeners.
func (b *Board) emit(e Event) {
	b.pending = append(b.pending, e)
	for _, l := range b.listeners {
		l.HandleEvent(e)
	}
}

// begin starts a command's event buffer.
func (b *Board) begin() {
	b.pending = nil
}

// finish returns the events raised since begin.
func (b *Board) finish() []Event {
	events := b.pending
	b.pending = nil
	return events
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Rules returns the rules this board plays by.
func (b *Board) Rules() Rules {
	return b.rules
}

// WhoseTurn returns the active player.
func (b *Board) WhoseTurn() Player {
	return b.whoseTurn
}

// MovesRemaining returns how many actions the active player has left.
func (b *Board) MovesRemaining() int {
	return b.movesRemaining
}

// IsOnBoard reports whether p lies inside the grid.
func (b *Board) IsOnBoard(p Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// mustBeOnBoard panics for out-of-bounds coordinates, a caller error.
func (b *Board) mustBeOnBoard(p Position) {
	if !b.IsOnBoard(p) {
		panic(fmt.Sprintf("core: position %s outside %dx%d board", p, b.width, b.height))
	}
}

// at returns the occupant of p, or nil.
func (b *Board) at(p Position) *Piece {
	b.mustBeOnBoard(p)
	return b.grid[p.Y][p.X]
}

// HasPiece reports whether p is occupied. Rubble counts as a piece.
func (b *Board) HasPiece(p Position) bool {
	return b.at(p) != nil
}

// PieceAt returns a copy of the piece at p and whether there is one.
func (b *Board) PieceAt(p Position) (Piece, bool) {
	piece := b.at(p)
	if piece == nil {
		return Piece{}, false
	}
	return *piece, true
}

// Place puts a piece on p, replacing any occupant. Used for setup.
func (b *Board) Place(p Position, piece Piece) {
	b.mustBeOnBoard(p)
	cp := piece
	b.grid[p.Y][p.X] = &cp
}

// Remove empties p. Used for setup.
func (b *Board) Remove(p Position) {
	b.mustBeOnBoard(p)
	b.grid[p.Y][p.X] = nil
}

// Clear removes every piece, leaving turn state alone.
func (b *Board) Clear() {
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = nil
		}
	}
}

// Positions returns every occupied square in row-major order.
func (b *Board) Positions() []Position {
	var out []Position
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.grid[y][x] != nil {
				out = append(out, P(x, y))
			}
		}
	}
	return out
}

// Winner counts living flags per player. A side with none loses; if both
// have none it is a tie. Pure; depends only on grid contents.
func (b *Board) Winner() Outcome {
	gold, red := 0, 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.grid[y][x]
			if p == nil || p.Kind != KindFlag || !p.IsAlive() {
				continue
			}
			if p.Owner == Gold {
				gold++
			} else {
				red++
			}
		}
	}
	switch {
	case gold == 0 && red == 0:
		return Tie
	case gold == 0:
		return RedWins
	case red == 0:
		return GoldWins
	default:
		return NoWinner
	}
}

// IsGameOver reports whether a winner (or tie) has been decided.
func (b *Board) IsGameOver() bool {
	return b.Winner() != NoWinner
}

// Distance returns the number of orthogonal steps between two squares.
func (b *Board) Distance(a, c Position) int {
	return a.Manhattan(c)
}

// IsValidMoveStart reports whether p holds a piece of the active player.
func (b *Board) IsValidMoveStart(p Position) bool {
	if !b.IsOnBoard(p) {
		return false
	}
	piece := b.at(p)
	return piece != nil && piece.Owner == b.whoseTurn
}

// IsValidMove reports whether the piece at a may walk to c.
func (b *Board) IsValidMove(a, c Position) bool {
	if !b.IsOnBoard(a) || !b.IsOnBoard(c) {
		return false
	}
	piece := b.at(a)
	if piece == nil {
		return false
	}
	if target := b.at(c); target != nil && !piece.CanTake(*target) {
		return false
	}
	return piece.Owner == b.whoseTurn &&
		b.Distance(a, c) == 1 &&
		piece.CanMove()
}

// IsRotatable reports whether the piece at p may rotate now.
func (b *Board) IsRotatable(p Position) bool {
	if !b.IsOnBoard(p) {
		return false
	}
	piece := b.at(p)
	return piece != nil && piece.IsRotatable() && piece.HasMovesRemaining()
}

// CanBeFired reports whether the piece at p may fire kind now: slingshots
// fire rocks, obelisks fire everything else, once per turn.
func (b *Board) CanBeFired(p Position, kind Projectile) bool {
	if !b.IsOnBoard(p) {
		return false
	}
	piece := b.at(p)
	if piece == nil {
		return false
	}
	matches := (piece.Kind == KindSlingshot && kind == Rock) ||
		(piece.Kind == KindObelisk && kind != Rock)
	return matches && piece.HasMovesRemaining() && !piece.Fired
}

// MovePiece walks the piece at a to c, discarding any occupant of c.
// Panics if IsValidMove(a, c) is false.
func (b *Board) MovePiece(a, c Position) []Event {
	if !b.IsValidMove(a, c) {
		panic(fmt.Sprintf("core: invalid move %s -> %s", a, c))
	}
	b.begin()
	piece := b.grid[a.Y][a.X]
	b.grid[c.Y][c.X] = piece
	b.grid[a.Y][a.X] = nil
	piece.Moves++
	b.emit(PieceMoved{From: a, To: c})
	b.consumeAction()
	return b.finish()
}

// RotatePiece turns the piece at p one step. Panics if IsRotatable(p) is false.
func (b *Board) RotatePiece(p Position, r Rotation) []Event {
	if !b.IsRotatable(p) {
		panic(fmt.Sprintf("core: piece at %s cannot rotate", p))
	}
	if r != Clockwise && r != CounterClockwise {
		panic(fmt.Sprintf("core: invalid rotation %d", r))
	}
	b.begin()
	piece := b.grid[p.Y][p.X]
	piece.Facing = piece.Facing.Rotate(r)
	b.emit(PieceRotated{At: p, Rotation: r})
	b.consumeAction()
	return b.finish()
}

// Clone returns a deep copy of the board without listeners.
func (b *Board) Clone() *Board {
	c := &Board{
		width:          b.width,
		height:         b.height,
		whoseTurn:      b.whoseTurn,
		movesRemaining: b.movesRemaining,
		rules:          b.rules,
	}
	c.grid = make([][]*Piece, b.height)
	for y := range b.grid {
		c.grid[y] = make([]*Piece, b.width)
		for x, p := range b.grid[y] {
			if p != nil {
				cp := *p
				c.grid[y][x] = &cp
			}
		}
	}
	return c
}

// Hash returns a hash of the full game state, for determinism checks.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "T:%c:%d;", byte(b.whoseTurn), b.movesRemaining)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.grid[y][x]
			if p == nil {
				continue
			}
			fmt.Fprintf(h, "%d,%d:%+v;", x, y, *p)
		}
	}
	return h.Sum64()
}
