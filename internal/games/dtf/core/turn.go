package core

// consumeAction spends one action of the active player's budget and
// passes the turn when it runs out.
func (b *Board) consumeAction() {
	b.movesRemaining--
	if b.movesRemaining == 0 {
		b.nextPlayer()
	}
}

// nextPlayer hands control to the other side and ages every status timer.
// The sweep covers both players' pieces on every flip.
func (b *Board) nextPlayer() {
	b.whoseTurn = b.whoseTurn.Other()
	b.movesRemaining = b.rules.MovesPerTurn

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.grid[y][x]
			if p == nil {
				continue
			}
			p.Moves = 0
			p.Fired = false
			if p.Stunned {
				p.StunCounter--
				if p.StunCounter <= 0 {
					p.Stunned = false
					p.StunCounter = 0
					b.emit(PieceUnstunned{At: P(x, y)})
				}
			}
			if p.Shielded {
				p.ShieldCounter--
				if p.ShieldCounter <= 0 {
					p.Shielded = false
					p.ShieldCounter = 0
					b.emit(PieceUnshielded{At: P(x, y)})
				}
			}
		}
	}

	b.emit(TurnPassed{Player: b.whoseTurn})
}
