package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
	"github.com/ehrlich-b/hyper4d/internal/search"
	"github.com/ehrlich-b/hyper4d/internal/tables"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <tables-dir> <scramble>",
	Short: "Solve a scramble using the three-phase IDA* search",
	Long: `solve loads the move and pruning tables from <tables-dir> (as produced by
gentables) and searches for solutions to <scramble>, a space-separated
sequence of canonical moves in piece notation. Ever-shorter solutions are
printed as they are found; unless the search was stopped early by --timeout
or an interrupt, the last one printed before the command exits is optimal.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, scramble := args[0], args[1]
		maxLen, _ := cmd.Flags().GetInt("max-len")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		layout := tables.NewLayout(dir)
		t, err := search.LoadTables(layout)
		if err != nil {
			return fmt.Errorf("solve: loading tables: %w", err)
		}
		defer t.Close()

		moves, err := puzzle.ParseMoveSequence(scramble)
		if err != nil {
			return err
		}
		start := puzzle.Solved()
		for _, m := range moves {
			start = start.Apply(m)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		if timeout > 0 {
			var timeoutCancel context.CancelFunc
			ctx, timeoutCancel = context.WithTimeout(ctx, timeout)
			defer timeoutCancel()
		}

		results := search.Solve(ctx, t, start, maxLen, search.Options{
			OnLowerBoundAdvance: func(bound int) {
				fmt.Printf("lower bound: %d\n", bound)
			},
		})

		found := false
		for sol := range results {
			found = true
			fmt.Printf("solution (%d moves): %s\n", len(sol.Moves), formatMoves(sol.Moves))
		}
		if !found {
			fmt.Println("no solution found before the search stopped")
		}
		return nil
	},
}

func formatMoves(moves []int) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = puzzle.TwistNames[m]
	}
	return strings.Join(names, " ")
}

func init() {
	solveCmd.Flags().Int("max-len", -1, "initial upper bound on solution length (-1 = unbounded)")
	solveCmd.Flags().Duration("timeout", 0, "stop searching after this long, keeping the best solution found so far (0 = no timeout)")
}
