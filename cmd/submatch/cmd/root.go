package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/submatch/internal/applog"
	"github.com/katalvlaran/submatch/internal/config"
	"github.com/katalvlaran/submatch/internal/ledger"
)

var (
	flagConfigPath string
	flagGraphPath  string
	flagThreads    int
	flagVerbose    bool

	cfg   *config.Config
	log   applog.Logger
	store *ledger.Store
)

var rootCmd = &cobra.Command{
	Use:   "submatch",
	Short: "Parallel subgraph-matching and frequent-subgraph-mining engine",
	Long: `submatch counts occurrences of a fixed pattern inside a data graph
using a schedule-driven recursive backtracking engine, with a bypass fast
path for triangle counting and a minimum-image-support engine for
frequent subgraph mining.`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if flagThreads > 0 {
			cfg.Engine.ThreadCount = flagThreads
		}

		level := applog.ParseLevel(cfg.Log.Level)
		if flagVerbose {
			level = applog.LevelDebug
		}
		log = applog.New(level, c.OutOrStderr())

		s, err := ledger.Open(cfg.Ledger.DSN)
		if err != nil {
			return err
		}
		store = s
		return nil
	},
	PersistentPostRunE: func(c *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the CLI, returning the first error encountered.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to submatch.yaml")
	rootCmd.PersistentFlags().StringVar(&flagGraphPath, "graph", "", "path to a data graph edge list (overrides engine.default_graph_path)")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker goroutine count (0 = use config default)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug-level logging")
}

func graphPath() string {
	if flagGraphPath != "" {
		return flagGraphPath
	}
	return cfg.Engine.DefaultGraphPath
}

func since(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
