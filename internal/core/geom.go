// Package core provides the terminal-independent primitives of the game
// client: a character buffer, semantic colors, input actions and runtime
// settings. It has no external dependencies (especially no Bubble Tea) so
// rendering into it stays pure and testable.
package core

// Rect is an area of the screen measured in cells.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inner returns the area left inside a one-cell frame. A rect too small
// to hold a frame has an empty inside.
func (r Rect) Inner() Rect {
	if r.W < 2 || r.H < 2 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

// Tile returns the rect of column col and row row when r is cut into
// tiles w cells wide and one cell high.
func (r Rect) Tile(col, row, w int) Rect {
	return Rect{X: r.X + col*w, Y: r.Y + row, W: w, H: 1}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
