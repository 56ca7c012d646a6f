package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded engine runs",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		runs, err := store.Recent(context.Background(), historyLimit)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Printf("%-16s %-20s graph=%-24s threads=%-3d result=%-10d %dms %s\n",
				r.Operation, r.PatternName, r.GraphPath, r.ThreadCount, r.Result, r.DurationMS,
				r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
