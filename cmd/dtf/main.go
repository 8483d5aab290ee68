// dtf plays and inspects Destroy the Flags boards in the terminal.
//
// Usage:
//
//	dtf play [board]              - Play a hot-seat game (picker when no board given)
//	dtf show <board>              - Print a board as text
//	dtf trace <board> <x,y>       - Print the flight of the shot a piece would fire
//	dtf check <file>...           - Validate board files
//	dtf run <board> <script>      - Apply an action script and print the result
//	dtf boards list               - List built-in, directory and library boards
//	dtf boards import <file>      - Store a board file in the library
//	dtf boards export <id> <file> - Write a board to a file
//	dtf boards remove <id>        - Delete a board from the library
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.dtf/config.yaml, then ./configs/dtf.yaml)
//	--db <path>         - Board library database
//	--boards-dir <dir>  - Directory scanned for board files
//	--preset <name>     - Rules preset: standard, quick, siege
//	--log-file <path>   - Write logs to a rotating file
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagBoardsDir string
	flagPreset    string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dtf",
	Short: "Destroy the Flags - a turn-based board battle in your terminal",
	Long: `Destroy the Flags is a two-player, turn-based battle on a grid.
Move and rotate your pieces, fire projectiles that bounce off reflectors,
and be the first to destroy the other side's flag.

Available commands:
  play     - Play a hot-seat game
  show     - Print a board
  trace    - Show where a piece would shoot
  check    - Validate board files
  run      - Apply an action script to a board
  boards   - Manage the board library

Examples:
  dtf play
  dtf play mirrors --preset quick
  dtf show standard
  dtf trace standard 1,4
  dtf run duel opening.txt
  dtf boards import ./arena.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the board library database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagBoardsDir, "boards-dir", "", "Directory of board files (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Rules preset: standard, quick, siege")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file, rotated")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(boardsCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
