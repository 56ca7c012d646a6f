package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/submatch/schedule/library"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "List the named patterns available to `count` and `fsm`",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		all := library.All()
		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s := all[name]
			fmt.Printf("%-20s size=%d redundancy=%d\n", name, s.Size(), s.InExclusionOptimizeRedundancy())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schedulesCmd)
}
