package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a square on the board.
// X increases to the right, Y increases downward (origin top-left).
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance to another position.
func (p Position) Manhattan(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// ParsePosition parses "x,y" (parentheses and spaces allowed).
func ParsePosition(s string) (Position, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid position %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return P(x, y), nil
}

// Direction is one of the eight compass directions.
// The ordinal order is significant: it indexes the reflection table.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of compass directions.
const NumDirections = 8

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var directionOffsets = [NumDirections][2]int{
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
}

// String returns the short compass name of the direction.
func (d Direction) String() string {
	if d >= NumDirections {
		return "Unknown"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Offset returns the (dx, dy) unit step for this direction.
// North decreases Y (screen coordinates).
func (d Direction) Offset() (dx, dy int) {
	if d >= NumDirections {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

// Angle returns the heading in degrees, clockwise from North.
func (d Direction) Angle() float64 {
	return float64(d) * 45.0
}

// Rotate returns the direction one 45 degree step away, wrapping mod 8.
func (d Direction) Rotate(r Rotation) Direction {
	switch r {
	case Clockwise:
		return (d + 1) % NumDirections
	case CounterClockwise:
		return (d + NumDirections - 1) % NumDirections
	default:
		return d
	}
}

// ParseDirection accepts a compass name (N, NE, north, ...) or an ordinal 0..7.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= NumDirections {
			return 0, fmt.Errorf("direction ordinal %d out of range 0..7", n)
		}
		return Direction(n), nil
	}
	switch s {
	case "NORTH":
		return North, nil
	case "NORTHEAST":
		return NorthEast, nil
	case "EAST":
		return East, nil
	case "SOUTHEAST":
		return SouthEast, nil
	case "SOUTH":
		return South, nil
	case "SOUTHWEST":
		return SouthWest, nil
	case "WEST":
		return West, nil
	case "NORTHWEST":
		return NorthWest, nil
	}
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Rotation is a single 45 degree turn.
type Rotation int8

const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = -1
)

// String returns the rotation name.
func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CCW"
	default:
		return "Unknown"
	}
}

// Angle returns the signed turn in degrees.
func (r Rotation) Angle() float64 {
	return float64(r) * 45.0
}

// ParseRotation accepts cw/clockwise/+ and ccw/counterclockwise/-.
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cw", "clockwise", "+", "right":
		return Clockwise, nil
	case "ccw", "counterclockwise", "counter_clockwise", "-", "left":
		return CounterClockwise, nil
	}
	return 0, fmt.Errorf("unknown rotation %q", s)
}
