package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
	dtf "github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/script"
	"github.com/vovakirdan/destroy-the-flags/internal/logging"
)

var flagShowEvents bool

var runCmd = &cobra.Command{
	Use:   "run <board> <script>",
	Short: "Apply an action script to a board",
	Long: `Load a board, apply the actions of a script in order and print the
final board. Stops at the first illegal action.

Script syntax, one action per line, # starts a comment:
  move   x,y x,y
  rotate x,y cw|ccw
  fire   x,y ROCK|FIRE|WATER|ROOT|SHIELD|STUN|HEAL

Replays saved with ctrl+s during play use the same syntax.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScript(os.Stdout, args[0], args[1]); err != nil {
			fail(err)
		}
	},
}

func init() {
	runCmd.Flags().BoolVar(&flagShowEvents, "events", false, "Print every event raised")
}

func runScript(w io.Writer, ref, scriptPath string) error {
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

	f, err := os.Open(scriptPath)
	if err != nil {
		return err
	}
	defer f.Close()
	actions, err := script.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", scriptPath, err)
	}

	return playScript(w, b, a.cfg.Rules.Core(), actions, a.logger)
}

// playScript applies actions to a fresh copy of b and prints the outcome.
// The final board is printed even when an action fails.
func playScript(w io.Writer, b boards.Board, base dtf.Rules, actions []script.Action, logger *log.Logger) error {
	board, err := b.New(base)
	if err != nil {
		return err
	}
	logging.LogBoard(logger, board)

	res, runErr := script.Run(board, actions, logger)

	if flagShowEvents {
		for _, e := range res.Events {
			fmt.Fprintf(w, "%-16s %s\n", logging.EventName(e), e)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Applied %d of %d actions\n", res.Applied, len(actions))
	if _, err := io.WriteString(w, dtf.RenderASCII(board)); err != nil {
		return err
	}
	if res.Winner != dtf.NoWinner {
		fmt.Fprintf(w, "Winner: %s\n", outcomeName(res.Winner))
	}
	return runErr
}

func outcomeName(o dtf.Outcome) string {
	switch o {
	case dtf.GoldWins:
		return "Gold"
	case dtf.RedWins:
		return "Red"
	case dtf.Tie:
		return "tie, both flags destroyed"
	default:
		return "none"
	}
}
