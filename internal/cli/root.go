package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hyper4d",
	Short: "A solver for the 2x2x2x2 hypercube twisty puzzle",
	Long: `hyper4d is a three-phase IDA* solver for the 2x2x2x2 ("2^4") four-dimensional
Rubik's-style puzzle, along with the offline pipeline that generates the move
and pruning tables the solver depends on.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(genTablesCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(solveCmd)
}
