// Package script reads and plays back action scripts: plain-text lists of
// moves, rotations and shots applied to a board in order. Scripts drive the
// CLI's run command, TUI replays and end-to-end tests.
//
// Syntax, one action per line, '#' starts a comment:
//
//	move 3,4 3,5
//	rotate 2,2 cw
//	fire 1,1 ROCK
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

// Errors returned by Parse and Run.
var (
	ErrSyntax        = errors.New("syntax error")
	ErrIllegalAction = errors.New("illegal action")
	ErrGameOver      = errors.New("game is over")
)

// Verb is the kind of action.
type Verb int

const (
	Move Verb = iota
	Rotate
	Fire
)

var verbNames = [...]string{"move", "rotate", "fire"}

// String returns the script keyword for the verb.
func (v Verb) String() string {
	if v < 0 || int(v) >= len(verbNames) {
		return "unknown"
	}
	return verbNames[v]
}

// Action is one scripted command.
type Action struct {
	Line int // 1-based source line, 0 for actions built in code
	Verb Verb
	From core.Position
	To   core.Position // Move only

	Rotation   core.Rotation   // Rotate only
	Projectile core.Projectile // Fire only
}

// MoveAction builds a move.
func MoveAction(from, to core.Position) Action {
	return Action{Verb: Move, From: from, To: to}
}

// RotateAction builds a rotation.
func RotateAction(at core.Position, r core.Rotation) Action {
	return Action{Verb: Rotate, From: at, Rotation: r}
}

// FireAction builds a shot.
func FireAction(at core.Position, kind core.Projectile) Action {
	return Action{Verb: Fire, From: at, Projectile: kind}
}

// String formats the action in script syntax.
func (a Action) String() string {
	switch a.Verb {
	case Move:
		return fmt.Sprintf("move %d,%d %d,%d", a.From.X, a.From.Y, a.To.X, a.To.Y)
	case Rotate:
		return fmt.Sprintf("rotate %d,%d %s", a.From.X, a.From.Y, strings.ToLower(a.Rotation.String()))
	case Fire:
		return fmt.Sprintf("fire %d,%d %s", a.From.X, a.From.Y, a.Projectile)
	default:
		return "unknown"
	}
}

// Parse reads a script. Errors wrap ErrSyntax and name the line.
func Parse(r io.Reader) ([]Action, error) {
	var actions []Action
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		a, err := parseAction(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrSyntax, err)
		}
		a.Line = line
		actions = append(actions, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return actions, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]Action, error) {
	return Parse(strings.NewReader(s))
}

func parseAction(fields []string) (Action, error) {
	verb := strings.ToLower(fields[0])
	args := fields[1:]
	if len(args) != 2 {
		return Action{}, fmt.Errorf("%s takes 2 arguments, got %d", verb, len(args))
	}
	at, err := core.ParsePosition(args[0])
	if err != nil {
		return Action{}, err
	}

	switch verb {
	case "move":
		to, err := core.ParsePosition(args[1])
		if err != nil {
			return Action{}, err
		}
		return MoveAction(at, to), nil
	case "rotate":
		r, err := core.ParseRotation(args[1])
		if err != nil {
			return Action{}, err
		}
		return RotateAction(at, r), nil
	case "fire":
		kind, err := core.ParseProjectile(args[1])
		if err != nil {
			return Action{}, err
		}
		return FireAction(at, kind), nil
	default:
		return Action{}, fmt.Errorf("unknown verb %q", fields[0])
	}
}

// Write writes actions in script syntax, one per line.
func Write(w io.Writer, actions []Action) error {
	bw := bufio.NewWriter(w)
	for _, a := range actions {
		if _, err := fmt.Fprintln(bw, a.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
