package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/engine"
	"github.com/katalvlaran/submatch/internal/ledger"
	"github.com/katalvlaran/submatch/schedule/library"
)

var countCmd = &cobra.Command{
	Use:   "count <pattern>",
	Short: "Count embeddings of a named pattern in the data graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		name := args[0]
		s, ok := library.All()[name]
		if !ok {
			return fmt.Errorf("unknown pattern %q (see `submatch schedules`)", name)
		}

		path := graphPath()
		if path == "" {
			return fmt.Errorf("no graph path given (--graph or engine.default_graph_path)")
		}
		g, err := csr.LoadFile(path)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := engine.CountMatches(g, s, cfg.Engine.ThreadCount)
		if err != nil {
			return err
		}
		elapsed := since(start)
		log.Info("counted %s: %d matches (%d threads, %dms)", name, result, cfg.Engine.ThreadCount, elapsed)
		fmt.Println(result)

		return store.Record(context.Background(), ledger.Run{
			Operation:   "count_matches",
			PatternName: name,
			GraphPath:   path,
			ThreadCount: cfg.Engine.ThreadCount,
			Result:      result,
			DurationMS:  elapsed,
			CreatedAt:   time.Now(),
		})
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
