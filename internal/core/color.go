package core

// Color is the semantic role of a screen cell. The TUI theme decides what
// each role looks like, so game drawing never names a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGold          // Gold pieces
	ColorRed           // Red pieces
	ColorRubble        // Destroyed pieces
	ColorEmpty         // Empty squares
	ColorCursor        // Cursor brackets
	ColorSelected      // Selected piece brackets
	ColorPath          // Aim preview and flight trail
	ColorProjectile    // Projectile head during flight
	ColorLit           // Lit torch marker
	ColorStatus        // Status effect markers
	ColorFrame         // Board border
	ColorDim           // Secondary text
)

// String returns the role name, used in theme tests and debug output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGold:
		return "gold"
	case ColorRed:
		return "red"
	case ColorRubble:
		return "rubble"
	case ColorEmpty:
		return "empty"
	case ColorCursor:
		return "cursor"
	case ColorSelected:
		return "selected"
	case ColorPath:
		return "path"
	case ColorProjectile:
		return "projectile"
	case ColorLit:
		return "lit"
	case ColorStatus:
		return "status"
	case ColorFrame:
		return "frame"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}

// Colors returns every role in declaration order.
func Colors() []Color {
	cs := make([]Color, 0, int(ColorDim)+1)
	for c := ColorDefault; c <= ColorDim; c++ {
		cs = append(cs, c)
	}
	return cs
}
