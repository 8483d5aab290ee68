package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
)

var flagImportID string

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "Manage the board library",
	Long: `Boards come from three places, later ones replacing earlier ones with
the same ID: the built-ins shipped with dtf, the board directory, and the
library database.`,
}

var boardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every available board",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listBoards(os.Stdout); err != nil {
			fail(err)
		}
	},
}

var boardsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a board file in the library",
	Long: `Validate a board file and store it in the library database. The ID
comes from the file (YAML id, or the file name) unless --id is given.

Examples:
  dtf boards import ./arena.txt
  dtf boards import ./arena.yaml --id arena2`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := importBoard(os.Stdout, args[0], flagImportID); err != nil {
			fail(err)
		}
	},
}

var boardsExportCmd = &cobra.Command{
	Use:   "export <board> <file>",
	Short: "Write a board to a file",
	Long: `Write any available board to a file. The extension picks the format:
.yaml/.yml keeps the rule overrides, .txt/.dtf writes the raw layout.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := exportBoard(os.Stdout, args[0], args[1]); err != nil {
			fail(err)
		}
	},
}

var boardsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a board from the library",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := removeBoard(os.Stdout, args[0]); err != nil {
			fail(err)
		}
	},
}

func init() {
	boardsImportCmd.Flags().StringVar(&flagImportID, "id", "", "Store under this ID")

	boardsCmd.AddCommand(boardsListCmd)
	boardsCmd.AddCommand(boardsImportCmd)
	boardsCmd.AddCommand(boardsExportCmd)
	boardsCmd.AddCommand(boardsRemoveCmd)
}

func listBoards(w io.Writer) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.openLibrary(false); err != nil {
		return err
	}

	list, err := a.catalog.List()
	if err != nil {
		return err
	}
	writeBoardList(w, list)
	return nil
}

// writeBoardList prints boards as an aligned table.
func writeBoardList(w io.Writer, list []boards.Board) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No boards available.")
		return
	}

	fmt.Fprintln(w, "Available boards:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // header widths
	for _, b := range list {
		maxIDLen = max(maxIDLen, len(b.ID))
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %-*s  %-5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Source")
	fmt.Fprintf(w, "  %-*s  %-*s  %-5s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------")

	for _, b := range list {
		size := fmt.Sprintf("%dx%d", b.Width, b.Height)
		fmt.Fprintf(w, "  %-*s  %-*s  %-5s  %s\n", maxIDLen, b.ID, maxNameLen, b.Name, size, b.Source)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'dtf play <id>' to play a board.")
}

func importBoard(w io.Writer, path, id string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.openLibrary(true); err != nil {
		return err
	}

	b, err := boards.LoadFile(path)
	if err != nil {
		return err
	}
	if id != "" {
		b.ID = id
	}
	if err := a.store.SaveBoard(boards.ToRecord(b)); err != nil {
		return err
	}
	a.logger.Info("board imported", "id", b.ID, "path", path)
	fmt.Fprintf(w, "Imported %s (%dx%d) as %q\n", b.Name, b.Width, b.Height, b.ID)
	return nil
}

func exportBoard(w io.Writer, ref, path string) error {
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
	data, err := boards.Encode(b, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	if ext := strings.ToLower(filepath.Ext(path)); (ext == ".txt" || ext == ".dtf") && !b.Rules.IsZero() {
		fmt.Fprintf(w, "Note: %s has rule overrides, which the text format does not keep\n", b.ID)
	}
	fmt.Fprintf(w, "Exported %s to %s\n", b.ID, path)
	return nil
}

func removeBoard(w io.Writer, id string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.openLibrary(true); err != nil {
		return err
	}

	if err := a.store.DeleteBoard(id); err != nil {
		return err
	}
	a.logger.Info("board removed", "id", id)
	fmt.Fprintf(w, "Removed %s from the library\n", id)
	return nil
}
