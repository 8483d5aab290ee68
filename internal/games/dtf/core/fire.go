package core

import "fmt"

const absorbed = -1

// reflections maps [reflector facing][incoming heading] to the outgoing
// heading, or absorbed. Rows repeat with period 4: a mirror's behaviour only
// depends on its axis, so facing N and S (NE and SW, ...) reflect alike.
var reflections = [NumDirections][NumDirections]int8{
	{4, 3, absorbed, 1, 0, 7, absorbed, 5},
	{6, 5, 4, absorbed, 2, 1, 0, absorbed},
	{absorbed, 7, 6, 5, absorbed, 3, 2, 1},
	{2, absorbed, 0, 7, 6, absorbed, 4, 3},
	{4, 3, absorbed, 1, 0, 7, absorbed, 5},
	{6, 5, 4, absorbed, 2, 1, 0, absorbed},
	{absorbed, 7, 6, 5, absorbed, 3, 2, 1},
	{2, absorbed, 0, 7, 6, absorbed, 4, 3},
}

// Reflect returns the heading of a projectile travelling in incoming after
// it meets a reflector facing facing. ok is false if the reflector absorbs it.
func Reflect(facing, incoming Direction) (out Direction, ok bool) {
	i := reflections[facing%NumDirections][incoming%NumDirections]
	if i == absorbed {
		return 0, false
	}
	return Direction(i), true
}

// Trajectory is the traced flight of a projectile.
type Trajectory struct {
	// Path holds every square visited, starting at the origin. The last
	// entry is where the projectile stopped, possibly off the board.
	Path []Position
	// Directions[i] is the heading of the step from Path[i] to Path[i+1].
	Directions []Direction
	// Struck is true when the flight ended on an occupied square.
	Struck bool
	// Absorbed is true when a reflector swallowed the projectile.
	Absorbed bool
	// Looped is true when the flight bounced between reflectors back into
	// a square and heading it had already taken. Path then ends on the
	// first repeated square.
	Looped bool
}

// End returns the square where the projectile stopped.
func (t Trajectory) End() Position {
	return t.Path[len(t.Path)-1]
}

// Bounces returns the number of times the heading changed.
func (t Trajectory) Bounces() int {
	n := 0
	for i := 1; i < len(t.Directions); i++ {
		if t.Directions[i] != t.Directions[i-1] {
			n++
		}
	}
	return n
}

// Trace marches a projectile from origin heading d until it leaves the
// board or meets an occupied square. Reflectors redirect it by the
// reflection table; any other occupant stops it. The origin square itself
// is never tested. Trace does not modify the board.
//
// A flight from an occupied origin always ends, since returning to the
// origin stops it. From an empty or reflector origin it can circle between
// reflectors; Trace stops as soon as a square is left in a heading it was
// already left in and reports Looped.
func (b *Board) Trace(origin Position, d Direction) Trajectory {
	t := Trajectory{Path: []Position{origin}}
	pos := origin
	seen := make(map[Position]uint8)

	for {
		if b.IsOnBoard(pos) {
			bit := uint8(1) << d
			if seen[pos]&bit != 0 {
				t.Looped = true
				return t
			}
			seen[pos] |= bit
		}

		pos = pos.Add(d)
		t.Path = append(t.Path, pos)
		t.Directions = append(t.Directions, d)

		if !b.IsOnBoard(pos) {
			return t
		}
		occupant := b.grid[pos.Y][pos.X]
		if occupant == nil {
			continue
		}
		if occupant.Kind != KindReflector {
			t.Struck = true
			return t
		}

		out, ok := Reflect(occupant.Facing, d)
		if !ok {
			t.Struck = true
			t.Absorbed = true
			return t
		}
		d = out
	}
}

// FirePiece fires kind from the piece at a along its facing. The
// ProjectileFired event is raised before the effect is applied.
// Panics if CanBeFired(a, kind) is false.
func (b *Board) FirePiece(a Position, kind Projectile) []Event {
	if !b.CanBeFired(a, kind) {
		panic(fmt.Sprintf("core: piece at %s cannot fire %s", a, kind))
	}
	b.begin()
	firer := b.grid[a.Y][a.X]
	t := b.Trace(a, firer.Facing)

	b.emit(ProjectileFired{
		Path:       append([]Position(nil), t.Path...),
		Directions: append([]Direction(nil), t.Directions...),
		Kind:       kind,
	})

	if t.Struck {
		b.resolve(t.End(), kind)
	}

	firer.Moves++
	firer.Fired = true
	b.consumeAction()
	return b.finish()
}

// resolve applies kind's effect to the occupant of pos.
func (b *Board) resolve(pos Position, kind Projectile) {
	target := b.grid[pos.Y][pos.X]
	if target == nil {
		return
	}

	switch kind {
	case Rock:
		b.douse(pos, target)
		if target.HitPoints > 0 {
			target.HitPoints--
		}

	case Fire:
		if target.Kind == KindTorch {
			if !target.Lit && !target.Shielded && target.HitPoints > 0 {
				target.Lit = true
				b.emit(FireLit{At: pos})
			}
		} else if !target.Kind.isHeavy() {
			// Burning ignores shields.
			if !target.Burned {
				target.Burned = true
				b.emit(PieceBurned{At: pos})
			}
			target.HitPoints = 0
		}

	case Water:
		b.douse(pos, target)

	case Root:
		if !target.Kind.isHeavy() && !target.Rooted && !target.Shielded {
			target.Rooted = true
			b.emit(PieceRooted{At: pos})
		}

	case Shield:
		if !target.Shielded {
			b.douse(pos, target)
			target.Shielded = true
			target.ShieldCounter = b.rules.ShieldTurns
			b.emit(PieceShielded{At: pos})
		}

	case Stun:
		b.douse(pos, target)
		target.Stunned = true
		target.StunCounter = b.rules.StunTurns
		b.emit(PieceStunned{At: pos})

	case Heal:
		if target.Shielded {
			return
		}
		if target.HitPoints < target.MaxHitPoints() {
			target.HitPoints++
		}
		if target.Stunned {
			target.Stunned = false
			target.StunCounter = 0
			b.emit(PieceUnstunned{At: pos})
		}
		if target.Rooted {
			target.Rooted = false
			b.emit(PieceUnrooted{At: pos})
		}
	}
}

// douse puts out a lit, unshielded torch.
func (b *Board) douse(pos Position, target *Piece) {
	if target.Kind == KindTorch && target.Lit && !target.Shielded {
		target.Lit = false
		b.emit(FireUnlit{At: pos})
	}
}
