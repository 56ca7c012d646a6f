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

var fsmCmd = &cobra.Command{
	Use:   "fsm <pattern>",
	Short: "Compute the minimum-image support of a named pattern",
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
		support, err := engine.FSMSupport(g, s, cfg.Engine.ThreadCount)
		if err != nil {
			return err
		}
		elapsed := since(start)
		log.Info("support for %s: %d (%d threads, %dms)", name, support, cfg.Engine.ThreadCount, elapsed)
		fmt.Println(support)

		return store.Record(context.Background(), ledger.Run{
			Operation:   "fsm_support",
			PatternName: name,
			GraphPath:   path,
			ThreadCount: cfg.Engine.ThreadCount,
			Result:      int64(support),
			DurationMS:  elapsed,
			CreatedAt:   time.Now(),
		})
	},
}

func init() {
	rootCmd.AddCommand(fsmCmd)
}
