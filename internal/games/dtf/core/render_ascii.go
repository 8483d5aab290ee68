package core

import (
	"fmt"
	"strings"
)

var arrows = [NumDirections]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Arrow returns an arrow glyph pointing in direction d.
func (d Direction) Arrow() rune {
	if d >= NumDirections {
		return '?'
	}
	return arrows[d]
}

// Glyph returns the piece's type letter: upper case for Gold, lower case
// for Red, '#' for rubble.
func Glyph(p Piece) rune {
	if !p.IsAlive() {
		return '#'
	}
	c := rune(p.Kind.Code())
	if p.Owner == Red {
		c = c - 'A' + 'a'
	}
	return c
}

// marker returns the second character of a rendered square.
func marker(p Piece) rune {
	switch {
	case p.IsRotatable():
		return p.Facing.Arrow()
	case p.Kind == KindTorch && p.Lit:
		return '*'
	default:
		return ' '
	}
}

// RenderASCII draws the board as text for debugging, tests and the CLI.
//
// Format:
//   - header line with turn, actions left and outcome
//   - one row per line, two characters per square: glyph then marker
//     (facing arrow for rotatable pieces, '*' for a lit torch)
//   - empty squares are ". "
func RenderASCII(b *Board) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Turn: %s | Actions: %d/%d", b.whoseTurn.Name(), b.movesRemaining, b.rules.MovesPerTurn))
	if o := b.Winner(); o != NoWinner {
		sb.WriteString(" | Result: " + o.String())
	}
	sb.WriteString("\n")

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.grid[y][x]
			if p == nil {
				sb.WriteString(". ")
				continue
			}
			sb.WriteRune(Glyph(*p))
			sb.WriteRune(marker(*p))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderTrajectory draws the board with the projectile's path overlaid
// as '+' on empty squares.
func RenderTrajectory(b *Board, t Trajectory) string {
	onPath := make(map[Position]bool, len(t.Path))
	for _, p := range t.Path {
		onPath[p] = true
	}

	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.grid[y][x]
			switch {
			case p != nil:
				sb.WriteRune(Glyph(*p))
				sb.WriteRune(marker(*p))
			case onPath[P(x, y)]:
				sb.WriteString("+ ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
