package core

import (
	"errors"
	"fmt"
)

// Player identifies one side of the game.
type Player byte

const (
	Gold Player = 'G'
	Red  Player = 'R'
)

// String returns the one-letter player code.
func (p Player) String() string {
	switch p {
	case Gold, Red:
		return string(rune(p))
	default:
		return "?"
	}
}

// Name returns a human-readable player name.
func (p Player) Name() string {
	switch p {
	case Gold:
		return "Gold"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Gold {
		return Red
	}
	return Gold
}

// PieceKind tags the piece variant.
type PieceKind uint8

const (
	KindFlag PieceKind = iota
	KindBoulder
	KindObelisk
	KindReflector
	KindSlingshot
	KindTorch
)

// kindInfo is the per-variant behaviour table.
type kindInfo struct {
	name         string
	code         byte
	maxHitPoints int
	movesPerTurn int
	rotatable    bool
}

var kinds = [...]kindInfo{
	KindFlag:      {name: "Flag", code: 'F', maxHitPoints: 1, movesPerTurn: 0},
	KindBoulder:   {name: "Boulder", code: 'B', maxHitPoints: 4, movesPerTurn: 1},
	KindObelisk:   {name: "Obelisk", code: 'X', maxHitPoints: 2, movesPerTurn: 2, rotatable: true},
	KindReflector: {name: "Reflector", code: 'R', maxHitPoints: 1, movesPerTurn: 3, rotatable: true},
	KindSlingshot: {name: "Slingshot", code: 'V', maxHitPoints: 1, movesPerTurn: 2, rotatable: true},
	KindTorch:     {name: "Torch", code: 'T', maxHitPoints: 1, movesPerTurn: 3},
}

// String returns the variant name.
func (k PieceKind) String() string {
	if int(k) >= len(kinds) {
		return "Unknown"
	}
	return kinds[k].name
}

// Code returns the one-letter type code used in the board text format.
func (k PieceKind) Code() byte {
	return kinds[k].code
}

// MaxHitPoints returns the fixed maximum hit points of the variant.
func (k PieceKind) MaxHitPoints() int {
	return kinds[k].maxHitPoints
}

// MovesPerTurn returns how many actions a piece of this variant may take per turn.
func (k PieceKind) MovesPerTurn() int {
	return kinds[k].movesPerTurn
}

// IsRotatable reports whether pieces of this variant can change facing.
func (k PieceKind) IsRotatable() bool {
	return kinds[k].rotatable
}

// isHeavy reports whether the variant is immune to burning, rooting and torch capture.
func (k PieceKind) isHeavy() bool {
	return k == KindBoulder || k == KindObelisk
}

// KindFromCode maps a type code to its variant.
func KindFromCode(c byte) (PieceKind, bool) {
	for i, info := range kinds {
		if info.code == c {
			return PieceKind(i), true
		}
	}
	return 0, false
}

// ErrUnknownPieceType is returned when a token carries an unrecognized type code.
var ErrUnknownPieceType = errors.New("invalid piece type")

// ErrInvalidToken is returned for tokens that are malformed in any other way.
var ErrInvalidToken = errors.New("invalid piece token")

// Piece is a board occupant. The Board mutates pieces in place;
// callers only ever see copies.
type Piece struct {
	Kind      PieceKind
	Owner     Player
	HitPoints int
	Facing    Direction

	// Per-turn bookkeeping.
	Moves int
	Fired bool

	// Status effects.
	Stunned       bool
	StunCounter   int
	Shielded      bool
	ShieldCounter int
	Rooted        bool
	Burned        bool

	// Lit only applies to torches.
	Lit bool
}

// NewPiece creates an undamaged piece. Torches start lit.
func NewPiece(kind PieceKind, owner Player, facing Direction) Piece {
	return Piece{
		Kind:      kind,
		Owner:     owner,
		HitPoints: kind.MaxHitPoints(),
		Facing:    facing,
		Lit:       kind == KindTorch,
	}
}

// ParsePiece decodes a 4-character token: owner, type code,
// damage taken from max hit points, facing ordinal.
func ParsePiece(token string) (Piece, error) {
	if len(token) != 4 {
		return Piece{}, fmt.Errorf("%w %q: want 4 characters", ErrInvalidToken, token)
	}

	owner := Player(token[0])
	if owner != Gold && owner != Red {
		return Piece{}, fmt.Errorf("%w %q: unknown owner %q", ErrInvalidToken, token, token[0])
	}

	kind, ok := KindFromCode(token[1])
	if !ok {
		return Piece{}, fmt.Errorf("%w: %s", ErrUnknownPieceType, token[1:2])
	}

	if token[2] < '0' || token[2] > '9' {
		return Piece{}, fmt.Errorf("%w %q: damage must be a digit", ErrInvalidToken, token)
	}
	damage := int(token[2] - '0')
	if damage > kind.MaxHitPoints() {
		return Piece{}, fmt.Errorf("%w %q: damage %d exceeds %s max hit points %d",
			ErrInvalidToken, token, damage, kind, kind.MaxHitPoints())
	}

	if token[3] < '0' || token[3] > '7' {
		return Piece{}, fmt.Errorf("%w %q: facing must be 0..7", ErrInvalidToken, token)
	}

	p := NewPiece(kind, owner, Direction(token[3]-'0'))
	p.HitPoints = kind.MaxHitPoints() - damage
	return p, nil
}

// Token encodes the piece back into the 4-character board format.
// Transient state (moves, statuses, torch light) is not encoded.
func (p Piece) Token() string {
	damage := p.MaxHitPoints() - p.HitPoints
	return fmt.Sprintf("%c%c%d%d", byte(p.Owner), p.Kind.Code(), damage, p.Facing)
}

// String returns a short description, e.g. "G Slingshot hp=1/1 facing E".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s hp=%d/%d facing %s", p.Owner, p.Kind, p.HitPoints, p.MaxHitPoints(), p.Facing)
}

// MaxHitPoints returns the variant's maximum hit points.
func (p Piece) MaxHitPoints() int {
	return p.Kind.MaxHitPoints()
}

// MovesPerTurn returns the variant's per-turn action allotment.
func (p Piece) MovesPerTurn() int {
	return p.Kind.MovesPerTurn()
}

// HasMovesRemaining reports whether the piece is below its per-turn allotment.
func (p Piece) HasMovesRemaining() bool {
	return p.Moves < p.MovesPerTurn()
}

// IsRotatable reports whether the piece can change facing.
func (p Piece) IsRotatable() bool {
	return p.Kind.IsRotatable()
}

// IsAlive reports whether the piece still has hit points. Dead pieces are rubble.
func (p Piece) IsAlive() bool {
	return p.HitPoints > 0
}

// CanTake reports whether p may move onto the square held by defender.
// A lit torch can take anything but a boulder or obelisk; every other
// piece needs strictly more max hit points. Shielded pieces can't be taken.
func (p Piece) CanTake(defender Piece) bool {
	if defender.Shielded {
		return false
	}
	if p.Kind == KindTorch {
		return p.Lit && !defender.Kind.isHeavy()
	}
	return p.MaxHitPoints() > defender.MaxHitPoints()
}

// CanMove reports whether statuses and damage allow the piece to walk.
// Rotating and firing ignore these.
func (p Piece) CanMove() bool {
	return !p.Rooted && !p.Stunned && !p.Burned && p.IsAlive() && p.HasMovesRemaining()
}
