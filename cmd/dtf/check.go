package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate board files",
	Long: `Parse each board file (.txt, .dtf, .yaml or .yml) and report whether it
loads. Exits with an error if any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkFiles(os.Stdout, args); err != nil {
			fail(err)
		}
	},
}

// checkFiles reports every file and fails if any of them is invalid.
func checkFiles(w io.Writer, paths []string) error {
	bad := 0
	for _, path := range paths {
		b, err := boards.LoadFile(path)
		if err != nil {
			bad++
			fmt.Fprintf(w, "FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "ok    %s: %s %dx%d\n", path, b.ID, b.Width, b.Height)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d boards invalid", bad, len(paths))
	}
	return nil
}
