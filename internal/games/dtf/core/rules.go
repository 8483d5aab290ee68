package core

import "fmt"

// Default rule constants.
const (
	DefaultMovesPerTurn = 3
	DefaultStunTurns    = 4
	DefaultShieldTurns  = 4
)

// Rules holds the tunable numbers of the game.
type Rules struct {
	MovesPerTurn int // actions per player turn
	StunTurns    int // turn flips a stun lasts
	ShieldTurns  int // turn flips a shield lasts
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		MovesPerTurn: DefaultMovesPerTurn,
		StunTurns:    DefaultStunTurns,
		ShieldTurns:  DefaultShieldTurns,
	}
}

// Validate checks that every number is positive.
func (r Rules) Validate() error {
	if r.MovesPerTurn <= 0 {
		return fmt.Errorf("moves per turn must be positive, got %d", r.MovesPerTurn)
	}
	if r.StunTurns <= 0 {
		return fmt.Errorf("stun turns must be positive, got %d", r.StunTurns)
	}
	if r.ShieldTurns <= 0 {
		return fmt.Errorf("shield turns must be positive, got %d", r.ShieldTurns)
	}
	return nil
}
