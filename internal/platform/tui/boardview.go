package tui

import (
	"github.com/vovakirdan/destroy-the-flags/internal/core"
	dtf "github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

// Each square is drawn four cells wide: left bracket, glyph, marker and a
// right slot holding either a bracket or a status letter.
const squareWidth = 4

// boardView is everything needed to draw one frame of the board.
type boardView struct {
	board    *dtf.Board
	cursor   dtf.Position
	selected *dtf.Position
	path     []dtf.Position // preview or flight trail, origin first
	head     int            // index into path of the projectile, -1 for none
}

// boardScreenSize returns the screen size of a framed board.
func boardScreenSize(b *dtf.Board) (w, h int) {
	return b.Width()*squareWidth + 2, b.Height() + 2
}

// drawBoard renders v into s with the frame at the top-left corner.
func drawBoard(s *core.Screen, v boardView) {
	b := v.board
	w, h := boardScreenSize(b)
	frame := core.NewRect(0, 0, w, h)
	s.DrawBox(frame, core.ColorFrame)
	inner := frame.Inner()

	trail := make(map[dtf.Position]bool, len(v.path))
	last := len(v.path) - 1
	if v.head >= 0 {
		last = v.head
	}
	for i := 1; i <= last && i < len(v.path); i++ {
		trail[v.path[i]] = true
	}
	var headPos *dtf.Position
	if v.head > 0 && v.head < len(v.path) {
		headPos = &v.path[v.head]
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			pos := dtf.P(x, y)
			sq := inner.Tile(x, y, squareWidth)

			glyph, glyphColor := '·', core.ColorEmpty
			marker, markerColor := ' ', core.ColorDefault
			status := ' '

			piece, ok := b.PieceAt(pos)
			switch {
			case ok:
				glyph = dtf.Glyph(piece)
				glyphColor = pieceColor(piece)
				marker, markerColor = pieceMarker(piece)
				status = statusLetter(piece)
			case trail[pos]:
				glyph, glyphColor = '+', core.ColorPath
			}
			if headPos != nil && *headPos == pos {
				if ok {
					glyphColor = core.ColorProjectile
				} else {
					glyph, glyphColor = '•', core.ColorProjectile
				}
			}

			left, right := ' ', status
			bracketColor := core.ColorStatus
			switch {
			case pos == v.cursor:
				left, right, bracketColor = '[', ']', core.ColorCursor
			case v.selected != nil && *v.selected == pos:
				left, right, bracketColor = '(', ')', core.ColorSelected
			}

			s.SetColored(sq.X, sq.Y, left, bracketColor)
			s.SetColored(sq.X+1, sq.Y, glyph, glyphColor)
			s.SetColored(sq.X+2, sq.Y, marker, markerColor)
			s.SetColored(sq.X+3, sq.Y, right, bracketColor)
		}
	}
}

func pieceColor(p dtf.Piece) core.Color {
	switch {
	case !p.IsAlive():
		return core.ColorRubble
	case p.Owner == dtf.Gold:
		return core.ColorGold
	default:
		return core.ColorRed
	}
}

// pieceMarker returns the facing arrow of rotatable pieces and the flame
// of lit torches.
func pieceMarker(p dtf.Piece) (rune, core.Color) {
	switch {
	case !p.IsAlive():
		return ' ', core.ColorDefault
	case p.IsRotatable():
		return p.Facing.Arrow(), pieceColor(p)
	case p.Kind == dtf.KindTorch && p.Lit:
		return '*', core.ColorLit
	}
	return ' ', core.ColorDefault
}

// statusLetter returns the most important status effect on p.
func statusLetter(p dtf.Piece) rune {
	switch {
	case !p.IsAlive():
		return ' '
	case p.Stunned:
		return 'z'
	case p.Shielded:
		return 'o'
	case p.Rooted:
		return 'r'
	}
	return ' '
}
