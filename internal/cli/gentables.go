package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ehrlich-b/hyper4d/internal/tables"
	"github.com/spf13/cobra"
)

var genTablesCmd = &cobra.Command{
	Use:   "gentables <dir>",
	Short: "Generate the move and pruning tables the solver reads",
	Long: `gentables runs the full offline table-generation pipeline: the six move
tables followed by the three phase pruning tables, writing every one as a
memory-mapped file under <dir>. A full run touches tens of gigabytes of
pruning-table data and can take hours; --http-status serves a /status JSON
endpoint that reports the run's stage as "generating" with fixed counts
(done 0 of 1), so it shows that a run is in progress but not how far it
has got.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		workers, _ := cmd.Flags().GetInt("workers")
		httpStatus, _ := cmd.Flags().GetString("http-status")

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating table directory: %w", err)
		}
		layout := tables.NewLayout(dir)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		if httpStatus != "" {
			tracker := tables.NewTracker()
			tracker.Begin("generating", 1)
			server := tables.NewProgressServer(tracker)
			go func() {
				if err := server.Start(httpStatus); err != nil {
					fmt.Fprintf(os.Stderr, "status server: %v\n", err)
				}
			}()
		}

		fmt.Printf("generating tables into %s\n", dir)
		if err := tables.GenerateAll(ctx, layout, workers); err != nil {
			return fmt.Errorf("gentables: %w", err)
		}
		fmt.Println("done")
		return nil
	},
}

func init() {
	genTablesCmd.Flags().IntP("workers", "w", 0, "concurrent column workers for move-table generation (0 = no limit, one per move column)")
	genTablesCmd.Flags().String("http-status", "", "address (e.g. :8080) to serve a run-in-progress status endpoint on while the run proceeds")
}
