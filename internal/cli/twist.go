package cli

import (
	"fmt"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply a move sequence and show the resulting state",
	Long: `twist applies a space-separated sequence of canonical moves (in piece
notation, e.g. "RI RF'") to a solved puzzle and reports the coordinate
values of the resulting state, the same coordinates the search and
table-generation packages operate on.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := puzzle.ParseMoveSequence(args[0])
		if err != nil {
			return err
		}

		c := puzzle.Solved()
		for _, m := range moves {
			c = c.Apply(m)
		}

		fmt.Printf("moves applied: %d\n", len(moves))
		fmt.Printf("K4=%d C3=%d IO=%d I=%d O=%d\n", c.GetK4Coord(), c.GetC3Coord(), c.GetIOCoord(), c.GetICoord(), c.GetOCoord())
		if c.Equal(puzzle.Solved()) {
			fmt.Println("status: solved")
		} else {
			fmt.Println("status: scrambled")
		}
		return nil
	},
}
