package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/destroy-the-flags/internal/core"
	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
	"github.com/vovakirdan/destroy-the-flags/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a hot-seat game",
	Long: `Start a two-player game on one terminal. The board is a catalog ID
or a path to a board file; without one a picker lists every board,
starting on the configured default.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Select a piece, then move it to the cursor
  [ / ]        - Rotate counter-clockwise / clockwise
  F            - Fire a slingshot
  1-6          - Fire an obelisk: fire, water, root, shield, stun, heal
  R            - Reload the board
  Ctrl+S       - Save the actions played as a script
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  dtf play
  dtf play mirrors
  dtf play ./arena.yaml --preset siege`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(args); err != nil {
		fail(err)
	}
}

func play(args []string) error {
	// The board owns the terminal, so logs only go to a file.
	a, err := newApp(io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.openLibrary(false); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	theme, ok := tui.ThemeByName(a.cfg.UI.Theme)
	if !ok {
		theme = tui.DefaultTheme()
	}
	tui.SetTheme(theme)

	var b boards.Board
	if len(args) == 1 {
		if b, err = a.catalog.Resolve(args[0]); err != nil {
			return err
		}
	} else {
		list, err := a.catalog.List()
		if err != nil {
			return err
		}
		chosen, picked, err := tui.RunPicker(list, a.cfg.Board.Default, width, height, theme)
		if err != nil {
			return err
		}
		if !picked {
			return nil
		}
		b = chosen
	}

	a.logger.Info("starting game", "board", b.ID, "source", b.Source)
	return tui.Run(tui.Options{
		Board:  b,
		Rules:  a.cfg.Rules.Core(),
		Logger: a.logger,
		Config: core.RuntimeConfig{
			ScreenW:      width,
			ScreenH:      height,
			AnimationFPS: a.cfg.UI.AnimationFPS,
			ShowPreview:  a.cfg.UI.ShowPreview,
			LogLines:     a.cfg.UI.LogLines,
		},
		Theme: theme,
	})
}
