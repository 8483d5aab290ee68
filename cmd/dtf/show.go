package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
	dtf "github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

var showCmd = &cobra.Command{
	Use:   "show <board>",
	Short: "Print a board",
	Long: `Print a board from the catalog or a file as text, with the rules it
plays under.

Each square is two characters: the piece letter (upper case Gold, lower case
Red, # for rubble) and its facing arrow, or * for a lit torch.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := show(os.Stdout, args[0]); err != nil {
			fail(err)
		}
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace <board> <x,y> [direction]",
	Short: "Show where a piece would shoot",
	Long: `Trace the projectile a piece at x,y would fire and print its path
over the board. The direction defaults to the piece's facing.

Examples:
  dtf trace mirrors 0,3
  dtf trace standard 5,7 NE`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		if err := trace(os.Stdout, args); err != nil {
			fail(err)
		}
	},
}

func show(w io.Writer, ref string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.openLibrary(false); err != nil {
		return err
	}

	b, err := a.catalog.Resolve(ref)
	if err != nil {
		return err
	}
	return writeBoard(w, b, a.cfg.Rules.Core())
}

// writeBoard prints a board's header, rules and layout.
func writeBoard(w io.Writer, b boards.Board, base dtf.Rules) error {
	board, err := b.New(base)
	if err != nil {
		return err
	}
	rules := board.Rules()

	fmt.Fprintf(w, "%s (%s, %dx%d, %s)\n", b.Name, b.ID, b.Width, b.Height, b.Source)
	if b.Description != "" {
		fmt.Fprintln(w, b.Description)
	}
	fmt.Fprintf(w, "Rules: %d actions per turn, stun %d, shield %d\n",
		rules.MovesPerTurn, rules.StunTurns, rules.ShieldTurns)
	fmt.Fprintln(w)
	_, err = io.WriteString(w, dtf.RenderASCII(board))
	return err
}

func trace(w io.Writer, args []string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.openLibrary(false); err != nil {
		return err
	}

	b, err := a.catalog.Resolve(args[0])
	if err != nil {
		return err
	}
	board, err := b.New(a.cfg.Rules.Core())
	if err != nil {
		return err
	}
	at, err := dtf.ParsePosition(args[1])
	if err != nil {
		return err
	}

	var dir *dtf.Direction
	if len(args) == 3 {
		d, err := dtf.ParseDirection(args[2])
		if err != nil {
			return err
		}
		dir = &d
	}
	return writeTrace(w, board, at, dir)
}

// writeTrace prints the flight of a shot from at, heading dir or the
// facing of the piece there.
func writeTrace(w io.Writer, board *dtf.Board, at dtf.Position, dir *dtf.Direction) error {
	if !board.IsOnBoard(at) {
		return fmt.Errorf("%s is off the board", at)
	}
	piece, ok := board.PieceAt(at)
	if !ok {
		return fmt.Errorf("no piece at %s", at)
	}
	heading := piece.Facing
	if dir != nil {
		heading = *dir
	}

	t := board.Trace(at, heading)
	_, err := io.WriteString(w, dtf.RenderTrajectory(board, t))
	if err != nil {
		return err
	}

	steps := make([]string, len(t.Path))
	for i, p := range t.Path {
		steps[i] = p.String()
	}
	fmt.Fprintf(w, "\nPath: %s\n", strings.Join(steps, " "))
	fmt.Fprintf(w, "Bounces: %d\n", t.Bounces())

	end := t.End()
	switch {
	case t.Looped:
		fmt.Fprintf(w, "Circles between reflectors back to %s\n", end)
	case t.Absorbed:
		fmt.Fprintf(w, "Absorbed by the reflector at %s\n", end)
	case t.Struck:
		target, _ := board.PieceAt(end)
		fmt.Fprintf(w, "Strikes the %s %s at %s\n", target.Owner.Name(), target.Kind, end)
	default:
		fmt.Fprintf(w, "Leaves the board at %s\n", end)
	}
	return nil
}
