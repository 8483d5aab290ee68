package script

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

// Result summarizes a script run.
type Result struct {
	Applied int          // actions applied before stopping
	Events  []core.Event // every event raised, in order
	Winner  core.Outcome
}

// Check reports why a cannot be applied to b right now, or nil if it can.
// Unlike the board's own predicates it also requires the acting piece to
// belong to the player on move. Errors wrap ErrIllegalAction or ErrGameOver.
func Check(b *core.Board, a Action) error {
	if b.IsGameOver() {
		return ErrGameOver
	}
	if !b.IsOnBoard(a.From) {
		return fmt.Errorf("%w: %s is off the board", ErrIllegalAction, a.From)
	}
	if !b.HasPiece(a.From) {
		return fmt.Errorf("%w: no piece at %s", ErrIllegalAction, a.From)
	}
	if !b.IsValidMoveStart(a.From) {
		return fmt.Errorf("%w: piece at %s does not belong to %s", ErrIllegalAction, a.From, b.WhoseTurn().Name())
	}

	switch a.Verb {
	case Move:
		if !b.IsValidMove(a.From, a.To) {
			return fmt.Errorf("%w: cannot move %s -> %s", ErrIllegalAction, a.From, a.To)
		}
	case Rotate:
		if a.Rotation != core.Clockwise && a.Rotation != core.CounterClockwise {
			return fmt.Errorf("%w: invalid rotation", ErrIllegalAction)
		}
		if !b.IsRotatable(a.From) {
			return fmt.Errorf("%w: piece at %s cannot rotate", ErrIllegalAction, a.From)
		}
	case Fire:
		if !b.CanBeFired(a.From, a.Projectile) {
			return fmt.Errorf("%w: piece at %s cannot fire %s", ErrIllegalAction, a.From, a.Projectile)
		}
	default:
		return fmt.Errorf("%w: unknown verb", ErrIllegalAction)
	}
	return nil
}

// Apply checks a and runs it on b, returning the events it raised.
func Apply(b *core.Board, a Action) ([]core.Event, error) {
	if err := Check(b, a); err != nil {
		return nil, err
	}
	switch a.Verb {
	case Move:
		return b.MovePiece(a.From, a.To), nil
	case Rotate:
		return b.RotatePiece(a.From, a.Rotation), nil
	default:
		return b.FirePiece(a.From, a.Projectile), nil
	}
}

// Run applies actions in order and stops at the first one that fails.
// The returned Result covers the actions applied up to that point.
// A nil logger disables logging.
func Run(b *core.Board, actions []Action, logger *log.Logger) (Result, error) {
	var res Result
	for _, a := range actions {
		events, err := Apply(b, a)
		if err != nil {
			res.Winner = b.Winner()
			if a.Line > 0 {
				return res, fmt.Errorf("line %d: %s: %w", a.Line, a, err)
			}
			return res, fmt.Errorf("%s: %w", a, err)
		}
		res.Applied++
		res.Events = append(res.Events, events...)
		if logger != nil {
			logger.Debug("applied", "action", a.String(), "events", len(events), "turn", b.WhoseTurn().Name())
		}
	}
	res.Winner = b.Winner()
	if logger != nil {
		logger.Info("script finished", "applied", res.Applied, "winner", res.Winner.String())
	}
	return res, nil
}
