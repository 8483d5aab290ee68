package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

func mustParse(t *testing.T, layout string) *core.Board {
	t.Helper()
	b, err := core.ParseBoard(layout)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func mustPiece(t *testing.T, b *core.Board, p core.Position) core.Piece {
	t.Helper()
	piece, ok := b.PieceAt(p)
	if !ok {
		t.Fatalf("no piece at %s", p)
	}
	return piece
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNewBoard(t *testing.T) {
	b := core.NewBoard(11, 9)
	if b.Width() != 11 || b.Height() != 9 {
		t.Errorf("size = %dx%d", b.Width(), b.Height())
	}
	if b.WhoseTurn() != core.Gold {
		t.Errorf("WhoseTurn = %s, want G", b.WhoseTurn())
	}
	if b.MovesRemaining() != core.DefaultMovesPerTurn {
		t.Errorf("MovesRemaining = %d", b.MovesRemaining())
	}
	if len(b.Positions()) != 0 {
		t.Error("new board should be empty")
	}
	expectPanic(t, "zero width", func() { core.NewBoard(0, 3) })
	expectPanic(t, "bad rules", func() { core.NewBoardWithRules(3, 3, core.Rules{}) })
}

func TestIsValidMove(t *testing.T) {
	b := mustParse(t, `
GR00 **** RV00
GB00 **** ****
GF00 **** RF00
`)
	tests := []struct {
		name string
		from core.Position
		to   core.Position
		want bool
	}{
		{"orthogonal step", core.P(0, 0), core.P(1, 0), true},
		{"diagonal step", core.P(0, 0), core.P(1, 1), false},
		{"two squares", core.P(0, 0), core.P(2, 0), false},
		{"onto own weaker piece", core.P(0, 1), core.P(0, 0), true},
		{"onto stronger piece", core.P(0, 0), core.P(0, 1), false},
		{"flag is immobile", core.P(0, 2), core.P(1, 2), false},
		{"not your piece", core.P(2, 0), core.P(1, 0), false},
		{"empty start", core.P(1, 1), core.P(1, 2), false},
		{"off board", core.P(0, 0), core.P(-1, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsValidMove(tt.from, tt.to); got != tt.want {
				t.Errorf("IsValidMove(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsValidMoveStart(t *testing.T) {
	b := mustParse(t, "GF00 **** RF00")
	if !b.IsValidMoveStart(core.P(0, 0)) {
		t.Error("gold piece should be a valid start on gold's turn")
	}
	if b.IsValidMoveStart(core.P(2, 0)) {
		t.Error("red piece is not a valid start on gold's turn")
	}
	if b.IsValidMoveStart(core.P(1, 0)) || b.IsValidMoveStart(core.P(9, 9)) {
		t.Error("empty or off-board squares are not valid starts")
	}
}

func TestMovePieceSpendsBudget(t *testing.T) {
	b := mustParse(t, `
GR00 **** **** ****
GF00 **** **** RF00
`)
	start := b.Hash()

	events := b.MovePiece(core.P(0, 0), core.P(1, 0))
	if len(events) != 1 {
		t.Fatalf("events = %v, want one PieceMoved", events)
	}
	if e, ok := events[0].(core.PieceMoved); !ok || e.From != core.P(0, 0) || e.To != core.P(1, 0) {
		t.Errorf("event = %v", events[0])
	}
	if b.HasPiece(core.P(0, 0)) || !b.HasPiece(core.P(1, 0)) {
		t.Error("piece did not move")
	}
	if b.WhoseTurn() != core.Gold || b.MovesRemaining() != 2 {
		t.Errorf("after 1 move: turn %s, remaining %d", b.WhoseTurn(), b.MovesRemaining())
	}
	if b.Hash() == start {
		t.Error("hash should change after a move")
	}

	b.MovePiece(core.P(1, 0), core.P(2, 0))
	if b.WhoseTurn() != core.Gold || b.MovesRemaining() != 1 {
		t.Errorf("after 2 moves: turn %s, remaining %d", b.WhoseTurn(), b.MovesRemaining())
	}

	events = b.MovePiece(core.P(2, 0), core.P(3, 0))
	if b.WhoseTurn() != core.Red || b.MovesRemaining() != core.DefaultMovesPerTurn {
		t.Errorf("after 3 moves: turn %s, remaining %d", b.WhoseTurn(), b.MovesRemaining())
	}
	last := events[len(events)-1]
	if tp, ok := last.(core.TurnPassed); !ok || tp.Player != core.Red {
		t.Errorf("last event = %v, want TurnPassed to Red", last)
	}
}

func TestMoveTakesPiece(t *testing.T) {
	b := mustParse(t, "GB00 RV00 GF00 RF00")
	b.MovePiece(core.P(0, 0), core.P(1, 0))
	p := mustPiece(t, b, core.P(1, 0))
	if p.Kind != core.KindBoulder || p.Owner != core.Gold {
		t.Errorf("square holds %v, want the gold boulder", p)
	}
	if b.HasPiece(core.P(0, 0)) {
		t.Error("origin should be empty")
	}
}

func TestPerPieceMoveAllowance(t *testing.T) {
	b := mustParse(t, `
GB00 **** **** ****
GF00 **** **** RF00
`)
	b.MovePiece(core.P(0, 0), core.P(1, 0))
	if b.IsValidMove(core.P(1, 0), core.P(2, 0)) {
		t.Error("boulder has one move per turn")
	}
}

func TestRotatePiece(t *testing.T) {
	b := mustParse(t, "GV00 GB00 GF00 RF00")

	events := b.RotatePiece(core.P(0, 0), core.Clockwise)
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	if p := mustPiece(t, b, core.P(0, 0)); p.Facing != core.NorthEast {
		t.Errorf("facing = %s, want NE", p.Facing)
	}
	if p := mustPiece(t, b, core.P(0, 0)); p.Moves != 0 {
		t.Errorf("rotation counted as a move: Moves = %d", p.Moves)
	}
	if b.MovesRemaining() != 2 {
		t.Errorf("MovesRemaining = %d, want 2", b.MovesRemaining())
	}

	if b.IsRotatable(core.P(1, 0)) {
		t.Error("boulders do not rotate")
	}
	expectPanic(t, "rotate boulder", func() { b.RotatePiece(core.P(1, 0), core.Clockwise) })
	expectPanic(t, "zero rotation", func() { b.RotatePiece(core.P(0, 0), core.Rotation(0)) })
}

func TestRootedPieceCanStillRotate(t *testing.T) {
	b := mustParse(t, "GV00 **** GF00 RF00")
	p := mustPiece(t, b, core.P(0, 0))
	p.Rooted = true
	b.Place(core.P(0, 0), p)

	if b.IsValidMove(core.P(0, 0), core.P(1, 0)) {
		t.Error("rooted piece should not walk")
	}
	if !b.IsRotatable(core.P(0, 0)) {
		t.Error("rooted piece should still rotate")
	}
}

func TestInvalidCommandsPanic(t *testing.T) {
	b := mustParse(t, "GV00 **** GF00 RF00")
	expectPanic(t, "diagonal move", func() { b.MovePiece(core.P(0, 0), core.P(1, 1)) })
	expectPanic(t, "move from empty", func() { b.MovePiece(core.P(1, 0), core.P(0, 0)) })
	expectPanic(t, "rotate empty", func() { b.RotatePiece(core.P(1, 0), core.Clockwise) })
	expectPanic(t, "slingshot fires fire", func() { b.FirePiece(core.P(0, 0), core.Fire) })
	expectPanic(t, "off-board query", func() { b.HasPiece(core.P(7, 0)) })
	expectPanic(t, "off-board place", func() { b.Place(core.P(-1, 0), core.Piece{}) })
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   core.Outcome
	}{
		{"both alive", "GF00 RF00", core.NoWinner},
		{"red flag dead", "GF00 RF10", core.GoldWins},
		{"gold flag dead", "GF10 RF00", core.RedWins},
		{"red flag missing", "GF00 ****", core.GoldWins},
		{"both dead", "GF10 RF10", core.Tie},
		{"empty board", "**** ****", core.Tie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.layout)
			if got := b.Winner(); got != tt.want {
				t.Errorf("Winner = %q, want %q", got, tt.want)
			}
			if b.IsGameOver() != (tt.want != core.NoWinner) {
				t.Errorf("IsGameOver = %v", b.IsGameOver())
			}
		})
	}
}

func TestListenersReceiveEventsInOrder(t *testing.T) {
	b := mustParse(t, "GV02 **** **** **** RF00\nGF00 **** **** **** ****")

	var order []string
	b.AddListener(core.ListenerFunc(func(e core.Event) { order = append(order, "first:"+e.String()) }))
	rec := core.NewRecorder()
	b.AddListener(rec)
	b.AddListener(core.ListenerFunc(func(e core.Event) { order = append(order, "third:"+e.String()) }))

	events := b.MovePiece(core.P(0, 0), core.P(1, 0))
	if len(order) != 2 || !strings.HasPrefix(order[0], "first:") || !strings.HasPrefix(order[1], "third:") {
		t.Errorf("listener order = %v", order)
	}
	if rec.Len() != len(events) {
		t.Errorf("recorder has %d events, command returned %d", rec.Len(), len(events))
	}
	drained := rec.Drain()
	if len(drained) != 1 || rec.Len() != 0 {
		t.Errorf("Drain returned %d, left %d", len(drained), rec.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustParse(t, "GR00 **** GF00 RF00")
	c := b.Clone()
	if c.Hash() != b.Hash() {
		t.Fatal("clone should hash equal")
	}
	c.MovePiece(core.P(0, 0), core.P(1, 0))
	if !b.HasPiece(core.P(0, 0)) {
		t.Error("moving on the clone changed the original")
	}
	if c.Hash() == b.Hash() {
		t.Error("hashes should diverge")
	}
}

func TestPieceAtReturnsCopy(t *testing.T) {
	b := mustParse(t, "GB00 RF00 GF00")
	p := mustPiece(t, b, core.P(0, 0))
	p.HitPoints = 0
	if got := mustPiece(t, b, core.P(0, 0)); got.HitPoints != 4 {
		t.Errorf("board piece changed through copy: hp = %d", got.HitPoints)
	}
}
