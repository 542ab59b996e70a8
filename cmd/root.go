package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate Sudoku variant puzzles",
	Long: `sudoku generates puzzles for classic Sudoku and a collection of
variant rules: killer cages, thermometers, German whispers, kropki dots,
sandwich sums, jigsaw regions and more. Variant constraints are derived
from a completed solution, then clues are removed while the puzzle keeps
a single solution.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
